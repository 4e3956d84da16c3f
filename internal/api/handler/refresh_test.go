package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

// stubTrigger implementa RefreshTrigger para os testes dos handlers
type stubTrigger struct {
	result *domain.RunResult
	err    error
	status map[string]any
}

func (s *stubTrigger) TriggerManualSync() (*domain.RunResult, error) {
	return s.result, s.err
}

func (s *stubTrigger) GetStatus() map[string]any {
	return s.status
}

func TestTriggerUpdateSuccess(t *testing.T) {
	trigger := &stubTrigger{
		result: &domain.RunResult{
			Status:  domain.RunStatusSuccess,
			Message: "snapshot de receita atualizado com sucesso",
			Output:  `{"owners": 3}`,
		},
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/trigger-update", nil)

	TriggerUpdate(trigger).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "snapshot de receita atualizado com sucesso", body["message"])
	assert.Equal(t, `{"owners": 3}`, body["output"])
}

func TestTriggerUpdateFailure(t *testing.T) {
	trigger := &stubTrigger{
		result: &domain.RunResult{
			Status:  domain.RunStatusError,
			Message: "erro ao calcular o snapshot de receita",
			Output:  "conexão recusada",
		},
		err: errors.New("conexão recusada"),
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/trigger-update", nil)

	TriggerUpdate(trigger).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "erro ao calcular o snapshot de receita", body["message"])
}

func TestTriggerUpdateServiceUnavailable(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/trigger-update", nil)

	TriggerUpdate(nil).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestGetRefreshStatus(t *testing.T) {
	trigger := &stubTrigger{
		status: map[string]any{
			"enabled":       true,
			"cron_schedule": "0 5 * * *",
			"running":       false,
		},
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/refresh-status", nil)

	GetRefreshStatus(trigger).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"enabled":true,"cron_schedule":"0 5 * * *","running":false}`, recorder.Body.String())
}
