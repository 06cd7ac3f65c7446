package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sincmart/internal/domain/entity"
	"sincmart/internal/domain/repository"
	"sincmart/internal/infrastructure/mongodb"
	"sincmart/pkg/errors"
)

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(client *mongodb.Client) repository.OrderRepository {
	return &mongoOrderRepository{
		collection: client.Collection("Orders"),
	}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.Timestamp.IsZero() {
		order.Timestamp = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	return nil
}

func (r *mongoOrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Internal("Failed to list orders", err)
	}
	defer cursor.Close(ctx)

	orders := []*entity.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, errors.Internal("Failed to decode orders", err)
	}

	return orders, nil
}
