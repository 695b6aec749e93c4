package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/handler/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler(t *testing.T) {
	ann := entities.User{ID: "u1", Name: "Ann", Email: "ann@example.com", Role: entities.RoleCustomer}
	sess := entities.Session{Token: "token", ExpiresAt: time.Now().Add(time.Hour), User: ann}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		userID       string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantToken    bool
	}{
		{
			name:   "register",
			method: http.MethodPost,
			target: "/auth/register",
			body:   `{"name":"Ann","email":"ann@example.com","password":"secret1"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Register(mock.Anything, "Ann", "ann@example.com", "secret1").Return(sess, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantToken:  true,
		},
		{
			name:         "register short password",
			method:       http.MethodPost,
			target:       "/auth/register",
			body:         `{"name":"Ann","email":"ann@example.com","password":"123"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "register taken email",
			method: http.MethodPost,
			target: "/auth/register",
			body:   `{"name":"Ann","email":"ann@example.com","password":"secret1"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Register(mock.Anything, "Ann", "ann@example.com", "secret1").Return(entities.Session{}, entities.ErrEmailTaken).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "login",
			method: http.MethodPost,
			target: "/auth/login",
			body:   `{"email":"ann@example.com","password":"secret1"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "ann@example.com", "secret1").Return(sess, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name:   "login bad credentials",
			method: http.MethodPost,
			target: "/auth/login",
			body:   `{"email":"ann@example.com","password":"nope"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "ann@example.com", "nope").Return(entities.Session{}, entities.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "me without session",
			method:       http.MethodGet,
			target:       "/users/me",
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:   "me",
			method: http.MethodGet,
			target: "/users/me",
			userID: "u1",
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Profile(mock.Anything, "u1").Return(ann, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, handler.NewAuthHandler(discardLogger(), svc, false), tc.method, tc.target, tc.body, tc.userID)

			assert.Equal(t, tc.wantStatus, status)
			if tc.wantToken {
				assert.Equal(t, "token", body["token"])
				user := body["user"].(map[string]any)
				assert.Equal(t, "ann@example.com", user["email"])
				assert.NotContains(t, user, "password")
			}
		})
	}
}
