package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

var indexes = map[string][]mongo.IndexModel{
	usersCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	productsCollection: {
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	categoriesCollection: {
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	wishlistsCollection: {
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	ordersCollection: {
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	},
}

// EnsureIndexes creates the indexes of every collection concurrently.
func (r *mongoRepo) EnsureIndexes(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for coll, models := range indexes {
		g.Go(func() error {
			if _, err := r.collection(coll).Indexes().CreateMany(ctx, models); err != nil {
				return fmt.Errorf("failed to create %s indexes: %w", coll, err)
			}
			return nil
		})
	}
	return g.Wait()
}
