package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/timestamper/internal/testutil"
)

func TestRecoveryUsesHandler(t *testing.T) {
	var recovered any
	h := Recovery(testutil.NopLogger(), func(w http.ResponseWriter, _ *http.Request, err any) {
		recovered = err
		w.WriteHeader(http.StatusTeapot)
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "boom", recovered)
}

func TestRecoveryDefaultHandler(t *testing.T) {
	h := Recovery(testutil.NopLogger(), nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestLoggingCapturesStatusAndSize(t *testing.T) {
	var captured *ResponseWriter
	h := Logging(testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		captured = w.(*ResponseWriter)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/v1/times/x?player=Steve", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, http.StatusCreated, captured.Status())
	assert.Equal(t, 5, captured.Size())
}
