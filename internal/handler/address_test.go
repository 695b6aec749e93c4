package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/handler/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressHandler(t *testing.T) {
	book := entities.AddressBook{
		{ID: "a1", Label: "home", Street: "1 Rd", City: "Dhaka", State: "Dhaka", ZipCode: "1000", Country: "Bangladesh", IsDefault: true},
	}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		userID       string
		mockBehavior func(svc *mocks.MockAddressService)
		wantStatus   int
	}{
		{
			name:         "no session",
			method:       http.MethodGet,
			target:       "/users/address",
			mockBehavior: func(svc *mocks.MockAddressService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:   "list",
			method: http.MethodGet,
			target: "/users/address",
			userID: "u1",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().ListAddresses(mock.Anything, "u1").Return(book, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "add",
			method: http.MethodPost,
			target: "/users/address",
			body:   `{"street":"1 Rd","city":"Dhaka","state":"Dhaka","zipCode":"1000"}`,
			userID: "u1",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().AddAddress(mock.Anything, "u1", entities.AddressInput{
					Street: "1 Rd", City: "Dhaka", State: "Dhaka", ZipCode: "1000",
				}).Return(book, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "add invalid",
			method: http.MethodPost,
			target: "/users/address",
			body:   `{"city":"Dhaka"}`,
			userID: "u1",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().AddAddress(mock.Anything, "u1", mock.Anything).
					Return(nil, &entities.ValidationError{Field: "street", Reason: "is required"}).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "update by body id",
			method: http.MethodPut,
			target: "/users/address",
			body:   `{"addressId":"a1","isDefault":true}`,
			userID: "u1",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().UpdateAddress(mock.Anything, "u1", "a1", mock.MatchedBy(func(p entities.AddressPatch) bool {
					return p.IsDefault != nil && *p.IsDefault && p.City == nil
				})).Return(book, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "update without id",
			method:       http.MethodPut,
			target:       "/users/address",
			body:         `{"city":"Dhaka"}`,
			userID:       "u1",
			mockBehavior: func(svc *mocks.MockAddressService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "remove unknown",
			method: http.MethodDelete,
			target: "/users/address?addressId=a9",
			userID: "u1",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().RemoveAddress(mock.Anything, "u1", "a9").Return(nil, entities.ErrAddressNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "remove by path",
			method: http.MethodDelete,
			target: "/users/address/a1",
			userID: "u1",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().RemoveAddress(mock.Anything, "u1", "a1").Return(entities.AddressBook{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "user record missing",
			method: http.MethodGet,
			target: "/users/address",
			userID: "ghost",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().ListAddresses(mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAddressService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, handler.NewAddressHandler(discardLogger(), svc), tc.method, tc.target, tc.body, tc.userID)

			assert.Equal(t, tc.wantStatus, status)
			if status >= http.StatusBadRequest {
				assert.Equal(t, false, body["success"])
				assert.NotEmpty(t, body["error"])
				return
			}
			require.Contains(t, body, "addresses")
			assert.IsType(t, []any{}, body["addresses"])
		})
	}
}
