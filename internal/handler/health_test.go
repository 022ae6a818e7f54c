package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockPool struct {
	pingErr error
}

func (m *mockPool) Ping(ctx context.Context) error { return m.pingErr }
func (m *mockPool) Close()                         {}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()

	HandleHealthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database Available", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(&mockPool{})(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("Database Unavailable", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(&mockPool{pingErr: errors.New("connection refused")})(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unavailable"`)
	})
}
