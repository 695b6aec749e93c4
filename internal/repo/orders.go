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

func (r *mongoRepo) CreateOrder(ctx context.Context, o entities.Order) (string, error) {
	res, err := r.collection(ordersCollection).InsertOne(ctx, OrderFromEntity(o))
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (r *mongoRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	var order Order
	if err := r.findOne(ctx, ordersCollection, bson.M{"_id": id}, &order, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order), nil
}

func (r *mongoRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection(ordersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []Order
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, OrderToEntity(d))
	}
	return orders, nil
}

func (r *mongoRepo) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, at time.Time) (entities.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":          string(status),
		"statusUpdatedAt": at,
		"updatedAt":       at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order Order
	err = r.collection(ordersCollection).FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if err != nil {
		if isNoDocuments(err) {
			return entities.Order{}, entities.ErrOrderNotFound
		}
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	return OrderToEntity(order), nil
}
