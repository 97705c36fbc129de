package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/vfg2006/ad-spend-sync/pkg/apiErrors"
)

// APIKeyAuth protege os endpoints de disparo com uma chave de serviço no
// header X-API-Key. O healthcheck fica liberado. Sem chave configurada, os
// endpoints protegidos ficam indisponíveis.
func APIKeyAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			if apiKey == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAPIKey, "Chave de API não configurada no servidor", nil)
				return
			}

			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAPIKey, "Chave de API inválida", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
