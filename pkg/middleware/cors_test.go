package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorsHeaders(t *testing.T) {
	handler := Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/revenue", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Headers"))
}

func TestCorsPreflightShortCircuits(t *testing.T) {
	called := false
	handler := Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodOptions, "/revenue", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, called)
}
