package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	storemocks "github.com/vfg2006/revenue-attribution-api/infrastructure/snapshot/mocks"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

func TestGetRevenueReturnsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storemocks.NewMockStore(ctrl)

	total := decimal.RequireFromString("110")
	store.EXPECT().ReadRecords().Return([]domain.SnapshotRecord{
		{
			OwnerEmail: "a@x.com",
			Totals: map[string]*decimal.Decimal{
				"jan_2025": nil,
				"feb_2025": &total,
			},
		},
	}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/revenue", nil)

	GetRevenue(store).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":[{"owner_email":"a@x.com","jan_2025":null,"feb_2025":110}]}`, recorder.Body.String())
}

func TestGetRevenueSnapshotUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storemocks.NewMockStore(ctrl)

	store.EXPECT().ReadRecords().Return(nil, errors.New("erro ao ler o snapshot"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/revenue", nil)

	GetRevenue(store).ServeHTTP(recorder, request)

	// Falha de leitura vira payload estruturado, não erro HTTP
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "erro ao ler o snapshot")
	assert.NotContains(t, body, "data")
}

func TestGetLastUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storemocks.NewMockStore(ctrl)

	store.EXPECT().ReadLastUpdated().Return("2025-06-01T05:00:00Z", nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/last_updated", nil)

	GetLastUpdated(store).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"last_updated":"2025-06-01T05:00:00Z"}`, recorder.Body.String())
}

func TestGetLastUpdatedMarkerMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storemocks.NewMockStore(ctrl)

	store.EXPECT().ReadLastUpdated().Return("", errors.New("erro ao ler o marcador de atualização"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/last_updated", nil)

	GetLastUpdated(store).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "marcador de atualização")
}
