package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoRepo) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return entities.User{}, entities.ErrUserNotFound
	}

	var u User
	if err := r.findOne(ctx, usersCollection, bson.M{"_id": id}, &u, entities.ErrUserNotFound); err != nil {
		return entities.User{}, err
	}
	return UserToEntity(u), nil
}

func (r *mongoRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var u User
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.findOne(ctx, usersCollection, filter, &u, entities.ErrUserNotFound); err != nil {
		return entities.User{}, err
	}
	return UserToEntity(u), nil
}

func (r *mongoRepo) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	doc := User{
		Name:      u.Name,
		Email:     strings.ToLower(strings.TrimSpace(u.Email)),
		Password:  u.PasswordHash,
		Role:      u.Role,
		Addresses: []Address{},
		Wishlist:  []WishlistItem{},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	res, err := r.collection(usersCollection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return entities.User{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = id
	return UserToEntity(doc), nil
}

func (r *mongoRepo) SaveAddresses(ctx context.Context, userID string, book entities.AddressBook) error {
	docs, err := AddressesFromEntity(book)
	if err != nil {
		return fmt.Errorf("invalid address id: %w", err)
	}
	return r.setUserFields(ctx, userID, bson.M{"addresses": docs})
}

func (r *mongoRepo) SaveWishlist(ctx context.Context, userID string, items entities.WishlistItems) error {
	docs, err := WishlistItemsFromEntity(items)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}
	return r.setUserFields(ctx, userID, bson.M{"wishlist": docs})
}

// setUserFields overwrites the given fields of a user document; the last
// writer wins.
func (r *mongoRepo) setUserFields(ctx context.Context, userID string, fields bson.M) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return entities.ErrUserNotFound
	}
	fields["updatedAt"] = time.Now()

	res, err := r.collection(usersCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
