package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/revenue-attribution-api/infrastructure/snapshot"
	"github.com/vfg2006/revenue-attribution-api/pkg/log"
)

// GetRevenue retorna o snapshot pivotado de receita por responsável.
// Falhas de leitura do snapshot (arquivo ausente ou corrompido) são
// recuperadas localmente e devolvidas como payload estruturado com status
// 200, preservando o contrato do consumidor atual; um contrato mais estrito
// usaria um status não-2xx aqui.
func GetRevenue(store snapshot.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, err := store.ReadRecords()
		if err != nil {
			logger.WithError(err).Warn("revenue: erro ao ler o snapshot de receita")
			writeJSON(w, map[string]any{"error": err.Error()})
			return
		}

		logger.WithField("records", len(records)).Info("revenue: snapshot de receita retornado")
		writeJSON(w, map[string]any{"data": records})
	})
}

// GetLastUpdated retorna o marcador de atualização do snapshot
func GetLastUpdated(store snapshot.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		timestamp, err := store.ReadLastUpdated()
		if err != nil {
			logger.WithError(err).Warn("last-updated: erro ao ler o marcador de atualização")
			writeJSON(w, map[string]any{"error": err.Error()})
			return
		}

		writeJSON(w, map[string]any{"last_updated": timestamp})
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("erro ao codificar resposta JSON")
	}
}
