package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name           string
		configuredKey  string
		path           string
		providedKey    string
		expectedStatus int
	}{
		{
			name:           "Chave correta libera a requisição",
			configuredKey:  "segredo",
			path:           "/v1/sync/run",
			providedKey:    "segredo",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Chave errada retorna 401",
			configuredKey:  "segredo",
			path:           "/v1/sync/run",
			providedKey:    "outra",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Sem chave no header retorna 401",
			configuredKey:  "segredo",
			path:           "/v1/sync/run",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Servidor sem chave configurada bloqueia tudo",
			configuredKey:  "",
			path:           "/v1/sync/run",
			providedKey:    "qualquer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Healthcheck fica liberado sem chave",
			configuredKey:  "segredo",
			path:           "/healthcheck",
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := APIKeyAuth(tt.configuredKey)(next)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set("X-API-Key", tt.providedKey)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
