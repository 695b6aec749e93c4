package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ordersCollection     = "orders"
	usersCollection      = "users"
	productsCollection   = "products"
	categoriesCollection = "categories"
	wishlistsCollection  = "wishlists"
)

type mongoRepo struct {
	db *mongo.Database
}

func NewMongoRepo(db *mongo.Database) *mongoRepo {
	return &mongoRepo{db: db}
}

// NewID returns the hex form of a fresh ObjectID, the id format of every
// document and embedded entry in the store.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func (r *mongoRepo) collection(name string) *mongo.Collection {
	return r.db.Collection(name)
}

// findOne decodes the first document matching filter into dest and
// translates a miss into notFound.
func (r *mongoRepo) findOne(ctx context.Context, coll string, filter any, dest any, notFound error) error {
	err := r.collection(coll).FindOne(ctx, filter).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return err
}

// findByRef looks a document up by ObjectID first and by slug second.
func (r *mongoRepo) findByRef(ctx context.Context, coll string, ref string, dest any, notFound error) error {
	if id, err := primitive.ObjectIDFromHex(ref); err == nil {
		err := r.findOne(ctx, coll, bson.M{"_id": id}, dest, notFound)
		if !errors.Is(err, notFound) {
			return err
		}
	}
	return r.findOne(ctx, coll, bson.M{"slug": ref}, dest, notFound)
}

func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}
