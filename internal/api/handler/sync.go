package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-spend-sync/internal/scheduler"
	"github.com/vfg2006/ad-spend-sync/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TriggerSpendSync dispara manualmente a sincronização diária de gastos.
// A execução roda em background; a resposta confirma apenas o disparo.
func TriggerSpendSync(service *scheduler.SpendSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerSpendSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de gastos não disponível", nil)
			return
		}

		if running, _, _ := service.Status(); running {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Sincronização de gastos já em andamento", nil)
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Sincronização de gastos iniciada com sucesso",
		})
	}
}

// GetSpendSyncStatus retorna o estado da sincronização de gastos
func GetSpendSyncStatus(service *scheduler.SpendSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSpendSyncStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de gastos não disponível", nil)
			return
		}

		running, lastStarted, lastCompleted := service.Status()

		status := map[string]any{
			"running": running,
		}
		if !lastStarted.IsZero() {
			status["last_started_at"] = lastStarted.UTC().Format(time.RFC3339)
		}
		if !lastCompleted.IsZero() {
			status["last_completed_at"] = lastCompleted.UTC().Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
