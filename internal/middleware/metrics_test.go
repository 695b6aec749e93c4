package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/pkg/session"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsBySession(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/users/wishlist/{productId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	anonymous := httptest.NewRequest(http.MethodGet, "/users/wishlist/p1", nil)
	r.ServeHTTP(httptest.NewRecorder(), anonymous)

	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/users/wishlist/p1", nil)
		req = req.WithContext(session.WithIdentity(req.Context(), session.Identity{UserID: "u1"}))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	labels := func(authenticated string) prometheus.Labels {
		return prometheus.Labels{
			"method":        http.MethodGet,
			"route":         "/users/wishlist/{productId}",
			"status":        "204",
			"authenticated": authenticated,
		}
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.With(labels("false"))))
	assert.Equal(t, 2.0, testutil.ToFloat64(httpRequestsTotal.With(labels("true"))))
}

func TestMetrics_UnroutedRequest(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/known", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/nowhere", nil))

	got := testutil.ToFloat64(httpRequestsTotal.With(prometheus.Labels{
		"method":        http.MethodPost,
		"route":         "unknown",
		"status":        "404",
		"authenticated": "false",
	}))
	assert.Equal(t, 1.0, got)
}
