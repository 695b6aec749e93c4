package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	token, expiresAt, err := m.Issue(Identity{UserID: "u1", Email: "a@b.c"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	id, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "u1", Email: "a@b.c"}, id)
}

func TestManager_ParseRejects(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	other, _, err := NewManager("another-secret-another-secret", time.Hour).Issue(Identity{UserID: "u1"})
	require.NoError(t, err)

	expired, _, err := NewManager(testSecret, -time.Minute).Issue(Identity{UserID: "u1"})
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, _, err := m.Issue(Identity{})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: other},
		{name: "expired", token: expired},
		{name: "none algorithm", token: noneAlg},
		{name: "empty subject", token: noSubject},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Parse(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestContextIdentity(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: "u1"})
	id, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id.UserID)

	_, ok = FromContext(WithIdentity(context.Background(), Identity{}))
	assert.False(t, ok)
}
