package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type WishlistRepo interface {
	FindWishlist(ctx context.Context, userID string) (entities.Wishlist, error)
	UpsertWishlist(ctx context.Context, w entities.Wishlist) error
}

// wishlistService manages the standalone wishlist collection keyed by the
// session identity. It shares no state with userWishlistService.
type wishlistService struct {
	logger   *slog.Logger
	repo     WishlistRepo
	products ProductFinder
}

func NewWishlistService(logger *slog.Logger, repo WishlistRepo, products ProductFinder) *wishlistService {
	return &wishlistService{
		logger:   logger.With(slog.String("service", "wishlist")),
		repo:     repo,
		products: products,
	}
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID string) ([]entities.WishlistEntry, error) {
	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return resolveWishlist(ctx, s.products, w.Items)
}

func (s *wishlistService) AddItem(ctx context.Context, userID, productRef string) ([]entities.WishlistEntry, error) {
	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindProduct(ctx, productRef)
	if err != nil {
		return nil, err
	}

	if err := w.Items.Add(product.ID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertWishlist(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to save wishlist: %w", err)
	}

	s.logger.Debug("wishlist item added", slog.String("user_id", userID), slog.String("product_id", product.ID))
	return resolveWishlist(ctx, s.products, w.Items)
}

func (s *wishlistService) RemoveItem(ctx context.Context, userID, productRef string) ([]entities.WishlistEntry, error) {
	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	productID, err := wishlistProductID(ctx, s.products, productRef)
	if err != nil {
		return nil, err
	}

	if w.Items.Remove(productID) {
		if err := s.repo.UpsertWishlist(ctx, w); err != nil {
			return nil, fmt.Errorf("failed to save wishlist: %w", err)
		}
	}
	return resolveWishlist(ctx, s.products, w.Items)
}

// load returns the stored wishlist or an empty one for users that have
// never saved an item.
func (s *wishlistService) load(ctx context.Context, userID string) (entities.Wishlist, error) {
	if userID == "" {
		return entities.Wishlist{}, entities.ErrUnauthorized
	}

	w, err := s.repo.FindWishlist(ctx, userID)
	if errors.Is(err, entities.ErrWishlistNotFound) {
		return entities.Wishlist{UserID: userID, Items: entities.WishlistItems{}}, nil
	}
	if err != nil {
		return entities.Wishlist{}, fmt.Errorf("failed to load wishlist: %w", err)
	}
	return w, nil
}
