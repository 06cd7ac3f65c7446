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

type mongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(client *mongodb.Client) repository.ReviewRepository {
	return &mongoReviewRepository{
		collection: client.Collection("reviews"),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}

	return nil
}

func (r *mongoReviewRepository) ListByProductID(ctx context.Context, productID string) ([]*entity.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}
	defer cursor.Close(ctx)

	reviews := []*entity.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, errors.Internal("Failed to decode reviews", err)
	}

	return reviews, nil
}
