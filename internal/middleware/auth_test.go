package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-service/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	sessions := session.NewManager("0123456789abcdef", time.Hour)
	token, _, err := sessions.Issue(session.Identity{UserID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		prepare func(r *http.Request)
		wantID  string
		wantOK  bool
	}{
		{
			name:    "bearer header",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantID:  "u1",
			wantOK:  true,
		},
		{
			name: "cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
			},
			wantID: "u1",
			wantOK: true,
		},
		{
			name:    "anonymous",
			prepare: func(r *http.Request) {},
		},
		{
			name:    "invalid token",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer garbage") },
		},
		{
			name:    "wrong scheme",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Basic "+token) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				gotID session.Identity
				gotOK bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotOK = session.FromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := middleware.Authenticate(logger, sessions)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.prepare(req)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Equal(t, tc.wantOK, gotOK)
			assert.Equal(t, tc.wantID, gotID.UserID)
		})
	}
}
