package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parserStub struct{}

func (parserStub) Parse(string) (session.Identity, error) {
	return session.Identity{}, session.ErrInvalidToken
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	cfg := config.New()
	cfg.Http.Host, cfg.Http.Port = "127.0.0.1", "0"
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg, parserStub{})
}

func TestApplication_Health(t *testing.T) {
	a := newTestApp(t)

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestApplication_Metrics(t *testing.T) {
	a := newTestApp(t)

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestApplication_StarterFailureAbortsStart(t *testing.T) {
	a := newTestApp(t)
	boom := errors.New("index build failed")
	a.SetStarters(StarterFunc(func(context.Context) error { return boom }))

	err := a.Start(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestApplication_StartStop(t *testing.T) {
	a := newTestApp(t)

	started := false
	a.SetStarters(StarterFunc(func(context.Context) error {
		started = true
		return nil
	}))
	closed := false
	a.OnStop(func(context.Context) error {
		closed = true
		return nil
	})

	require.NoError(t, a.Start(context.Background()))
	require.NoError(t, a.Stop())
	assert.True(t, started)
	assert.True(t, closed)
}
