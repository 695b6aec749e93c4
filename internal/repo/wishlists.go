package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoRepo) FindWishlist(ctx context.Context, userID string) (entities.Wishlist, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return entities.Wishlist{}, entities.ErrWishlistNotFound
	}

	var w Wishlist
	if err := r.findOne(ctx, wishlistsCollection, bson.M{"userId": uid}, &w, entities.ErrWishlistNotFound); err != nil {
		return entities.Wishlist{}, err
	}
	return WishlistToEntity(w), nil
}

// UpsertWishlist replaces the items of the user's wishlist document,
// creating it on first write.
func (r *mongoRepo) UpsertWishlist(ctx context.Context, w entities.Wishlist) error {
	uid, err := primitive.ObjectIDFromHex(w.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", w.UserID, err)
	}
	items, err := WishlistItemsFromEntity(w.Items)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}

	now := time.Now()
	update := bson.M{
		"$set":         bson.M{"items": items, "updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection(wishlistsCollection).UpdateOne(ctx, bson.M{"userId": uid}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert wishlist: %w", err)
	}
	return nil
}
