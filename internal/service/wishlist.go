package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type ProductFinder interface {
	FindProduct(ctx context.Context, ref string) (entities.Product, error)
	ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
}

// userWishlistService manages the wishlist embedded in the user document.
type userWishlistService struct {
	logger   *slog.Logger
	users    UserRepo
	products ProductFinder
}

func NewUserWishlistService(logger *slog.Logger, users UserRepo, products ProductFinder) *userWishlistService {
	return &userWishlistService{
		logger:   logger.With(slog.String("service", "user_wishlist")),
		users:    users,
		products: products,
	}
}

func (s *userWishlistService) GetWishlist(ctx context.Context, userID string) ([]entities.WishlistEntry, error) {
	u, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	return resolveWishlist(ctx, s.products, u.Wishlist)
}

func (s *userWishlistService) AddItem(ctx context.Context, userID, productRef string) ([]entities.WishlistEntry, error) {
	u, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindProduct(ctx, productRef)
	if err != nil {
		return nil, err
	}

	items := u.Wishlist
	if err := items.Add(product.ID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.users.SaveWishlist(ctx, userID, items); err != nil {
		return nil, fmt.Errorf("failed to save wishlist: %w", err)
	}

	s.logger.Debug("wishlist item added", slog.String("user_id", userID), slog.String("product_id", product.ID))
	return resolveWishlist(ctx, s.products, items)
}

func (s *userWishlistService) RemoveItem(ctx context.Context, userID, productRef string) ([]entities.WishlistEntry, error) {
	u, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	productID, err := wishlistProductID(ctx, s.products, productRef)
	if err != nil {
		return nil, err
	}

	items := u.Wishlist
	if items.Remove(productID) {
		if err := s.users.SaveWishlist(ctx, userID, items); err != nil {
			return nil, fmt.Errorf("failed to save wishlist: %w", err)
		}
	}
	return resolveWishlist(ctx, s.products, items)
}

// wishlistProductID maps a product reference to the id stored in wishlists.
// References to products that no longer exist are taken as stored ids so
// stale entries can still be removed.
func wishlistProductID(ctx context.Context, products ProductFinder, ref string) (string, error) {
	p, err := products.FindProduct(ctx, ref)
	if errors.Is(err, entities.ErrProductNotFound) {
		return ref, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find product: %w", err)
	}
	return p.ID, nil
}

func resolveWishlist(ctx context.Context, products ProductFinder, items entities.WishlistItems) ([]entities.WishlistEntry, error) {
	if len(items) == 0 {
		return []entities.WishlistEntry{}, nil
	}
	found, err := products.ProductsByIDs(ctx, items.ProductIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wishlist products: %w", err)
	}
	return entities.ResolveWishlist(items, found), nil
}
