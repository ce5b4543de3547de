package ping

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	serverTime string
	err        error
}

func (f *fakePinger) ServerTime(_ context.Context) (string, error) {
	return f.serverTime, f.err
}

type nopLogger struct{}

func (nopLogger) Error(format string, args ...any) {}

func TestHandle_ReturnsServerTime(t *testing.T) {
	h := NewHandler(&fakePinger{serverTime: "2025-10-13T10:00:00Z"}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2025-10-13T10:00:00Z", resp.ServerTime)
}

func TestHandle_DatabaseDown(t *testing.T) {
	h := NewHandler(&fakePinger{err: errors.New("connection refused")}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error")
}
