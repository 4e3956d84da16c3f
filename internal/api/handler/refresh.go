package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/revenue-attribution-api/internal/domain"
	"github.com/vfg2006/revenue-attribution-api/internal/scheduler"
	"github.com/vfg2006/revenue-attribution-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-attribution-api/pkg/log"
)

// RefreshTrigger dispara uma execução síncrona do pipeline de receita
type RefreshTrigger interface {
	TriggerManualSync() (*domain.RunResult, error)
	GetStatus() map[string]any
}

// TriggerUpdate reexecuta o pipeline de atribuição de receita sob demanda e
// responde apenas quando a execução termina. Sucesso responde 200 e falha
// responde 500, sempre com status, mensagem e saída da execução.
func TriggerUpdate(service RefreshTrigger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("trigger-update: execução manual do pipeline solicitada")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de receita não disponível", nil)
			return
		}

		result, err := service.TriggerManualSync()

		response := map[string]any{
			"status":  string(domain.RunStatusSuccess),
			"message": "",
			"output":  "",
		}
		if result != nil {
			response["status"] = string(result.Status)
			response["message"] = result.Message
			response["output"] = result.Output
		}

		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			logger.WithError(err).Error("trigger-update: execução manual do pipeline falhou")
			w.WriteHeader(http.StatusInternalServerError)
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("trigger-update: erro ao codificar resposta")
		}
	})
}

// GetRefreshStatus retorna o estado do agendador de atualização de receita
func GetRefreshStatus(service RefreshTrigger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de receita não disponível", nil)
			return
		}

		writeJSON(w, service.GetStatus())
	})
}

// Garante em tempo de compilação que o agendador satisfaz a interface usada
// pelos handlers
var _ RefreshTrigger = (*scheduler.RevenueRefreshService)(nil)
