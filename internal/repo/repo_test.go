package repo

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func ns(mt *mtest.T, coll string) string {
	return mt.DB.Name() + "." + coll
}

func productDoc(id primitive.ObjectID, slug string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Mug"},
		{Key: "slug", Value: slug},
		{Key: "price", Value: 10.5},
		{Key: "images", Value: bson.A{}},
		{Key: "stock", Value: 3},
		{Key: "featured", Value: false},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now())},
		{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(time.Now())},
	}
}

// filterKeys returns the keys of the filter sent with the next recorded
// find command.
func filterKeys(mt *mtest.T) []string {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "find", evt.CommandName)

	elems, err := evt.Command.Lookup("filter").Document().Elements()
	require.NoError(mt, err)
	keys := make([]string, 0, len(elems))
	for _, e := range elems {
		keys = append(keys, e.Key())
	}
	return keys
}

func TestMongoRepo_FindProduct(t *testing.T) {
	mt := newMockT(t)
	id := primitive.NewObjectID()

	mt.Run("object id match wins", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, productsCollection), mtest.FirstBatch, productDoc(id, "mug")))

		p, err := NewMongoRepo(mt.DB).FindProduct(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), p.ID)

		assert.Equal(mt, []string{"_id"}, filterKeys(mt))
		assert.Nil(mt, mt.GetStartedEvent(), "slug lookup must not run after an id hit")
	})

	mt.Run("hex miss falls back to slug", func(mt *mtest.T) {
		// a slug that happens to look like an ObjectID
		ref := primitive.NewObjectID().Hex()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, productsCollection), mtest.FirstBatch),
			mtest.CreateCursorResponse(0, ns(mt, productsCollection), mtest.FirstBatch, productDoc(id, ref)),
		)

		p, err := NewMongoRepo(mt.DB).FindProduct(context.Background(), ref)
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), p.ID)
		assert.Equal(mt, ref, p.Slug)

		assert.Equal(mt, []string{"_id"}, filterKeys(mt))
		assert.Equal(mt, []string{"slug"}, filterKeys(mt))
	})

	mt.Run("non hex ref goes straight to slug", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, productsCollection), mtest.FirstBatch, productDoc(id, "mug")))

		p, err := NewMongoRepo(mt.DB).FindProduct(context.Background(), "mug")
		require.NoError(mt, err)
		assert.Equal(mt, "mug", p.Slug)
		assert.Equal(mt, []string{"slug"}, filterKeys(mt))
	})

	mt.Run("miss on both keys", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, productsCollection), mtest.FirstBatch),
			mtest.CreateCursorResponse(0, ns(mt, productsCollection), mtest.FirstBatch),
		)

		_, err := NewMongoRepo(mt.DB).FindProduct(context.Background(), id.Hex())
		assert.ErrorIs(mt, err, entities.ErrProductNotFound)
	})
}

func orderDoc(id primitive.ObjectID, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "email", Value: "ann@example.com"},
		{Key: "items", Value: bson.A{bson.D{
			{Key: "productId", Value: "p1"},
			{Key: "name", Value: "Mug"},
			{Key: "price", Value: 10.0},
			{Key: "quantity", Value: 1},
		}}},
		{Key: "status", Value: "pending"},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(createdAt)},
		{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(createdAt)},
	}
}

func TestMongoRepo_ListOrders(t *testing.T) {
	mt := newMockT(t)

	mt.Run("newest first", func(mt *mtest.T) {
		newer, older := primitive.NewObjectID(), primitive.NewObjectID()
		now := time.Now()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, ordersCollection), mtest.FirstBatch,
			orderDoc(newer, now),
			orderDoc(older, now.Add(-time.Hour)),
		))

		orders, err := NewMongoRepo(mt.DB).ListOrders(context.Background())
		require.NoError(mt, err)
		require.Len(mt, orders, 2)
		assert.Equal(mt, newer.Hex(), orders[0].ID)
		assert.Equal(mt, older.Hex(), orders[1].ID)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		sort, err := evt.Command.Lookup("sort").Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, sort, 1)
		assert.Equal(mt, "createdAt", sort[0].Key())
		assert.EqualValues(mt, -1, sort[0].Value().AsInt64())
	})
}

func TestMongoRepo_UpdateOrderStatus(t *testing.T) {
	mt := newMockT(t)

	mt.Run("missing order", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := NewMongoRepo(mt.DB).UpdateOrderStatus(context.Background(), primitive.NewObjectID().Hex(), entities.StatusShipped, time.Now())
		assert.ErrorIs(mt, err, entities.ErrOrderNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		_, err := NewMongoRepo(mt.DB).UpdateOrderStatus(context.Background(), "42", entities.StatusShipped, time.Now())
		assert.ErrorIs(mt, err, entities.ErrOrderNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("returns updated order", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		doc := orderDoc(id, time.Now())
		doc[3] = bson.E{Key: "status", Value: "shipped"}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc}))

		o, err := NewMongoRepo(mt.DB).UpdateOrderStatus(context.Background(), id.Hex(), entities.StatusShipped, time.Now())
		require.NoError(mt, err)
		assert.Equal(mt, entities.StatusShipped, o.Status)
	})
}

func TestMongoRepo_SaveAddresses(t *testing.T) {
	mt := newMockT(t)
	book := entities.AddressBook{{ID: NewID(), Label: "home", Street: "1 Rd", City: "Dhaka", State: "Dhaka", ZipCode: "1000", Country: "Bangladesh", IsDefault: true}}

	mt.Run("no matching user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := NewMongoRepo(mt.DB).SaveAddresses(context.Background(), primitive.NewObjectID().Hex(), book)
		assert.ErrorIs(mt, err, entities.ErrUserNotFound)
	})

	mt.Run("matched user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := NewMongoRepo(mt.DB).SaveAddresses(context.Background(), primitive.NewObjectID().Hex(), book)
		assert.NoError(mt, err)
	})

	mt.Run("malformed user id", func(mt *mtest.T) {
		err := NewMongoRepo(mt.DB).SaveAddresses(context.Background(), "u1", book)
		assert.ErrorIs(mt, err, entities.ErrUserNotFound)
	})
}

func TestMongoRepo_CreateUser(t *testing.T) {
	mt := newMockT(t)
	u := entities.User{Name: "Ann", Email: " Ann@Example.com ", PasswordHash: "hash", Role: entities.RoleCustomer}

	mt.Run("OK", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := NewMongoRepo(mt.DB).CreateUser(context.Background(), u)
		require.NoError(mt, err)
		assert.NotEmpty(mt, created.ID)
		assert.Equal(mt, "ann@example.com", created.Email)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := NewMongoRepo(mt.DB).CreateUser(context.Background(), u)
		assert.ErrorIs(mt, err, entities.ErrEmailTaken)
	})
}
