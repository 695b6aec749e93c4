package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "defaults with secret",
			env:  map[string]string{"SESSION_SECRET": "0123456789abcdef"},
		},
		{
			name:    "missing secret",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "short secret",
			env:     map[string]string{"SESSION_SECRET": "short"},
			wantErr: true,
		},
		{
			name: "unknown env",
			env: map[string]string{
				"SESSION_SECRET": "0123456789abcdef",
				"ENV":            "dev",
			},
			wantErr: true,
		},
		{
			name: "kafka enabled with bad broker",
			env: map[string]string{
				"SESSION_SECRET": "0123456789abcdef",
				"KAFKA_ENABLED":  "true",
				"KAFKA_BROKERS":  "not a broker",
			},
			wantErr: true,
		},
		{
			name: "sample ratio out of range",
			env: map[string]string{
				"SESSION_SECRET":     "0123456789abcdef",
				"OTEL_SAMPLER_RATIO": "2",
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_ParsesTypedValues(t *testing.T) {
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("MONGO_MAX_POOL_SIZE", "not-a-number")
	t.Setenv("ALLOWED_CORS_ORIGINS", "http://a.com,http://b.com")

	cfg := New()

	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, 100, cfg.Mongo.MaxPoolSize)
	require.Len(t, cfg.Cors.AllowedOrigins, 2)
	assert.Equal(t, "http://b.com", cfg.Cors.AllowedOrigins[1])
}
