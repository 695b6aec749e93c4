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
	"github.com/stretchr/testify/require"
)

func TestWishlistHandler(t *testing.T) {
	entries := []entities.WishlistEntry{{ProductID: "p1", Name: "Mug", Slug: "mug", Price: 10, AddedAt: time.Now()}}

	testCases := []struct {
		name         string
		method       string
		path         string
		body         string
		userID       string
		mockBehavior func(svc *mocks.MockWishlistService)
		wantStatus   int
		wantError    string
	}{
		{
			name:         "no session",
			method:       http.MethodGet,
			mockBehavior: func(svc *mocks.MockWishlistService) {},
			wantStatus:   http.StatusUnauthorized,
			wantError:    "unauthorized",
		},
		{
			name:   "get",
			method: http.MethodGet,
			userID: "u1",
			mockBehavior: func(svc *mocks.MockWishlistService) {
				svc.EXPECT().GetWishlist(mock.Anything, "u1").Return(entries, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "add",
			method: http.MethodPost,
			body:   `{"productId":"p1"}`,
			userID: "u1",
			mockBehavior: func(svc *mocks.MockWishlistService) {
				svc.EXPECT().AddItem(mock.Anything, "u1", "p1").Return(entries, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "add without product",
			method:       http.MethodPost,
			body:         `{}`,
			userID:       "u1",
			mockBehavior: func(svc *mocks.MockWishlistService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "add duplicate",
			method: http.MethodPost,
			body:   `{"productId":"p1"}`,
			userID: "u1",
			mockBehavior: func(svc *mocks.MockWishlistService) {
				svc.EXPECT().AddItem(mock.Anything, "u1", "p1").Return(nil, entities.ErrAlreadyInWishlist).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "product already in wishlist",
		},
		{
			name:   "add unknown product",
			method: http.MethodPost,
			body:   `{"productId":"ghost"}`,
			userID: "u1",
			mockBehavior: func(svc *mocks.MockWishlistService) {
				svc.EXPECT().AddItem(mock.Anything, "u1", "ghost").Return(nil, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantError:  "product not found",
		},
		{
			name:   "remove by query",
			method: http.MethodDelete,
			path:   "?productId=p9",
			userID: "u1",
			mockBehavior: func(svc *mocks.MockWishlistService) {
				svc.EXPECT().RemoveItem(mock.Anything, "u1", "p9").Return(entries, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "remove by path",
			method: http.MethodDelete,
			path:   "/p1",
			userID: "u1",
			mockBehavior: func(svc *mocks.MockWishlistService) {
				svc.EXPECT().RemoveItem(mock.Anything, "u1", "p1").Return([]entities.WishlistEntry{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, prefix := range []string{"/users/wishlist", "/wishlist"} {
		for _, tc := range testCases {
			t.Run(prefix+" "+tc.name, func(t *testing.T) {
				svc := mocks.NewMockWishlistService(t)
				tc.mockBehavior(svc)

				h := handler.NewWishlistHandler(discardLogger(), svc, prefix, "test")
				status, body := serve(t, h, tc.method, prefix+tc.path, tc.body, tc.userID)

				assert.Equal(t, tc.wantStatus, status)
				if tc.wantError != "" {
					assert.Equal(t, tc.wantError, body["error"])
				}
				if status == http.StatusOK {
					require.Contains(t, body, "wishlist")
					assert.IsType(t, []any{}, body["wishlist"])
				}
			})
		}
	}
}
