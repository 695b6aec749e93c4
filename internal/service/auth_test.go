package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/shop-service/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	exp := time.Now().Add(time.Hour)

	t.Run("OK", func(t *testing.T) {
		users := mocks.NewMockUserStore(t)
		tokens := mocks.NewMockTokenIssuer(t)

		users.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
			return u.Email == "ann@example.com" &&
				u.Role == entities.RoleCustomer &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
		})).RunAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			u.ID = "u1"
			return u, nil
		}).Once()
		tokens.EXPECT().Issue(session.Identity{UserID: "u1", Email: "ann@example.com"}).Return("token", exp, nil).Once()

		svc := service.NewAuthService(discardLogger(), users, tokens)
		s, err := svc.Register(context.Background(), "Ann", " Ann@Example.com ", "secret1")
		require.NoError(t, err)

		assert.Equal(t, "token", s.Token)
		assert.Equal(t, "u1", s.User.ID)
		assert.NotEqual(t, "secret1", s.User.PasswordHash)
	})

	t.Run("short password", func(t *testing.T) {
		svc := service.NewAuthService(discardLogger(), mocks.NewMockUserStore(t), mocks.NewMockTokenIssuer(t))
		_, err := svc.Register(context.Background(), "Ann", "ann@example.com", "123")

		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "password", ve.Field)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := service.NewAuthService(discardLogger(), mocks.NewMockUserStore(t), mocks.NewMockTokenIssuer(t))
		_, err := svc.Register(context.Background(), "Ann", "not-an-email", "secret1")
		assert.True(t, entities.IsValidation(err))
	})

	t.Run("display name form is not an email", func(t *testing.T) {
		svc := service.NewAuthService(discardLogger(), mocks.NewMockUserStore(t), mocks.NewMockTokenIssuer(t))
		_, err := svc.Register(context.Background(), "Ann", "Ann <ann@example.com>", "secret1")

		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "email", ve.Field)
	})

	t.Run("email taken", func(t *testing.T) {
		users := mocks.NewMockUserStore(t)
		users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrEmailTaken).Once()

		svc := service.NewAuthService(discardLogger(), users, mocks.NewMockTokenIssuer(t))
		_, err := svc.Register(context.Background(), "Ann", "ann@example.com", "secret1")
		assert.ErrorIs(t, err, entities.ErrEmailTaken)
		assert.True(t, entities.IsConflict(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := service.HashPassword("secret1")
	require.NoError(t, err)
	stored := entities.User{ID: "u1", Email: "ann@example.com", PasswordHash: hash}

	testCases := []struct {
		name         string
		email        string
		password     string
		mockBehavior func(users *mocks.MockUserStore, tokens *mocks.MockTokenIssuer)
		wantErr      error
	}{
		{
			name:     "OK",
			email:    "ann@example.com",
			password: "secret1",
			mockBehavior: func(users *mocks.MockUserStore, tokens *mocks.MockTokenIssuer) {
				users.EXPECT().GetUserByEmail(mock.Anything, "ann@example.com").Return(stored, nil).Once()
				tokens.EXPECT().Issue(session.Identity{UserID: "u1", Email: "ann@example.com"}).Return("token", time.Now(), nil).Once()
			},
		},
		{
			name:     "wrong password",
			email:    "ann@example.com",
			password: "secret2",
			mockBehavior: func(users *mocks.MockUserStore, tokens *mocks.MockTokenIssuer) {
				users.EXPECT().GetUserByEmail(mock.Anything, "ann@example.com").Return(stored, nil).Once()
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "bob@example.com",
			password: "secret1",
			mockBehavior: func(users *mocks.MockUserStore, tokens *mocks.MockTokenIssuer) {
				users.EXPECT().GetUserByEmail(mock.Anything, "bob@example.com").Return(entities.User{}, entities.ErrUserNotFound).Once()
			},
			wantErr: entities.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserStore(t)
			tokens := mocks.NewMockTokenIssuer(t)
			tc.mockBehavior(users, tokens)

			svc := service.NewAuthService(discardLogger(), users, tokens)
			s, err := svc.Login(context.Background(), tc.email, tc.password)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", s.Token)
		})
	}
}

func TestAuthService_Profile(t *testing.T) {
	svc := service.NewAuthService(discardLogger(), mocks.NewMockUserStore(t), mocks.NewMockTokenIssuer(t))
	_, err := svc.Profile(context.Background(), "")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}
