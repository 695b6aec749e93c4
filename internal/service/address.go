package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	SaveAddresses(ctx context.Context, userID string, book entities.AddressBook) error
	SaveWishlist(ctx context.Context, userID string, items entities.WishlistItems) error
}

type addressService struct {
	logger *slog.Logger
	users  UserRepo
	newID  func() string
}

// NewAddressService takes the id generator of the store that persists the
// address book.
func NewAddressService(logger *slog.Logger, users UserRepo, newID func() string) *addressService {
	return &addressService{
		logger: logger.With(slog.String("service", "address")),
		users:  users,
		newID:  newID,
	}
}

func (s *addressService) ListAddresses(ctx context.Context, userID string) (entities.AddressBook, error) {
	u, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	return u.Addresses, nil
}

func (s *addressService) AddAddress(ctx context.Context, userID string, in entities.AddressInput) (entities.AddressBook, error) {
	u, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	addr, err := entities.NewAddress(s.newID(), in)
	if err != nil {
		return nil, err
	}

	book := u.Addresses
	book.Add(addr)
	return s.save(ctx, userID, book)
}

func (s *addressService) UpdateAddress(ctx context.Context, userID, addressID string, patch entities.AddressPatch) (entities.AddressBook, error) {
	u, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	book := u.Addresses
	if err := book.Update(addressID, patch); err != nil {
		return nil, err
	}
	return s.save(ctx, userID, book)
}

func (s *addressService) RemoveAddress(ctx context.Context, userID, addressID string) (entities.AddressBook, error) {
	u, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	book := u.Addresses
	if err := book.Remove(addressID); err != nil {
		return nil, err
	}
	return s.save(ctx, userID, book)
}

// save normalizes the book once more before writing it; the write is a
// plain overwrite of the user's address list.
func (s *addressService) save(ctx context.Context, userID string, book entities.AddressBook) (entities.AddressBook, error) {
	if book == nil {
		book = entities.AddressBook{}
	}
	book.Normalize()

	if err := s.users.SaveAddresses(ctx, userID, book); err != nil {
		return nil, fmt.Errorf("failed to save addresses: %w", err)
	}
	s.logger.Debug("addresses saved", slog.String("user_id", userID), slog.Int("count", len(book)))
	return book, nil
}

func loadUser(ctx context.Context, users UserRepo, userID string) (entities.User, error) {
	if userID == "" {
		return entities.User{}, entities.ErrUnauthorized
	}
	return users.GetUserByID(ctx, userID)
}
