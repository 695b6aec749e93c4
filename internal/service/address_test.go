package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressService_AddAddress(t *testing.T) {
	dhaka := entities.AddressInput{Street: "1 Rd", City: "Dhaka", State: "Dhaka", ZipCode: "1000"}

	t.Run("first address becomes default with fallbacks", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1"}, nil).Once()
		users.EXPECT().SaveAddresses(mock.Anything, "u1", mock.MatchedBy(func(b entities.AddressBook) bool {
			return len(b) == 1 && b[0].IsDefault
		})).Return(nil).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		book, err := svc.AddAddress(context.Background(), "u1", dhaka)
		require.NoError(t, err)

		require.Len(t, book, 1)
		assert.True(t, book[0].IsDefault)
		assert.Equal(t, "Bangladesh", book[0].Country)
		assert.Equal(t, "home", book[0].Label)
		assert.NotEmpty(t, book[0].ID)
	})

	t.Run("new default clears the old one", func(t *testing.T) {
		existing := entities.AddressBook{{ID: "a1", Street: "x", City: "x", State: "x", ZipCode: "x", IsDefault: true}}
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1", Addresses: existing}, nil).Once()
		users.EXPECT().SaveAddresses(mock.Anything, "u1", mock.Anything).Return(nil).Once()

		in := dhaka
		in.IsDefault = true

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		book, err := svc.AddAddress(context.Background(), "u1", in)
		require.NoError(t, err)

		require.Len(t, book, 2)
		assert.False(t, book[0].IsDefault)
		assert.True(t, book[1].IsDefault)
	})

	t.Run("missing street", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1"}, nil).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		_, err := svc.AddAddress(context.Background(), "u1", entities.AddressInput{City: "Dhaka", State: "Dhaka", ZipCode: "1000"})

		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "street", ve.Field)
	})

	t.Run("no identity", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		_, err := svc.AddAddress(context.Background(), "", dhaka)
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "ghost").Return(entities.User{}, entities.ErrUserNotFound).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		_, err := svc.AddAddress(context.Background(), "ghost", dhaka)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("unknown user wins over invalid fields", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "ghost").Return(entities.User{}, entities.ErrUserNotFound).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		_, err := svc.AddAddress(context.Background(), "ghost", entities.AddressInput{City: "Dhaka"})
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.False(t, entities.IsValidation(err))
	})

	t.Run("store fails", func(t *testing.T) {
		dbError := errors.New("db error")
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1"}, nil).Once()
		users.EXPECT().SaveAddresses(mock.Anything, "u1", mock.Anything).Return(dbError).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		_, err := svc.AddAddress(context.Background(), "u1", dhaka)
		assert.ErrorIs(t, err, dbError)
	})
}

func fixedID() string { return "a-new" }

func twoAddresses() entities.AddressBook {
	return entities.AddressBook{
		{ID: "a1", Label: "home", Street: "1 Rd", City: "Dhaka", State: "Dhaka", ZipCode: "1000", Country: "Bangladesh", IsDefault: true},
		{ID: "a2", Label: "work", Street: "2 Rd", City: "Dhaka", State: "Dhaka", ZipCode: "1205", Country: "Bangladesh"},
	}
}

func TestAddressService_UpdateAddress(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1", Addresses: twoAddresses()}, nil).Once()
		users.EXPECT().SaveAddresses(mock.Anything, "u1", mock.Anything).Return(nil).Once()

		city := "Chittagong"
		svc := service.NewAddressService(discardLogger(), users, fixedID)
		book, err := svc.UpdateAddress(context.Background(), "u1", "a2", entities.AddressPatch{City: &city})
		require.NoError(t, err)

		assert.Equal(t, "Chittagong", book[1].City)
		assert.Equal(t, "2 Rd", book[1].Street)
		assert.True(t, book[0].IsDefault)
	})

	t.Run("set default moves the flag", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1", Addresses: twoAddresses()}, nil).Once()
		users.EXPECT().SaveAddresses(mock.Anything, "u1", mock.Anything).Return(nil).Once()

		yes := true
		svc := service.NewAddressService(discardLogger(), users, fixedID)
		book, err := svc.UpdateAddress(context.Background(), "u1", "a2", entities.AddressPatch{IsDefault: &yes})
		require.NoError(t, err)

		assert.False(t, book[0].IsDefault)
		assert.True(t, book[1].IsDefault)
	})

	t.Run("unknown address", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1", Addresses: twoAddresses()}, nil).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		_, err := svc.UpdateAddress(context.Background(), "u1", "a9", entities.AddressPatch{})
		assert.ErrorIs(t, err, entities.ErrAddressNotFound)
	})
}

func TestAddressService_RemoveAddress(t *testing.T) {
	t.Run("removing default promotes first remaining", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1", Addresses: twoAddresses()}, nil).Once()
		users.EXPECT().SaveAddresses(mock.Anything, "u1", mock.Anything).Return(nil).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		book, err := svc.RemoveAddress(context.Background(), "u1", "a1")
		require.NoError(t, err)

		require.Len(t, book, 1)
		assert.Equal(t, "a2", book[0].ID)
		assert.True(t, book[0].IsDefault)
	})

	t.Run("removing the last address", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1", Addresses: twoAddresses()[:1]}, nil).Once()
		users.EXPECT().SaveAddresses(mock.Anything, "u1", mock.MatchedBy(func(b entities.AddressBook) bool {
			return len(b) == 0
		})).Return(nil).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		book, err := svc.RemoveAddress(context.Background(), "u1", "a1")
		require.NoError(t, err)
		assert.Empty(t, book)
	})

	t.Run("unknown address", func(t *testing.T) {
		users := mocks.NewMockUserRepo(t)
		users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{ID: "u1", Addresses: twoAddresses()}, nil).Once()

		svc := service.NewAddressService(discardLogger(), users, fixedID)
		_, err := svc.RemoveAddress(context.Background(), "u1", "a9")
		assert.ErrorIs(t, err, entities.ErrAddressNotFound)
	})
}
