package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sincmart/internal/domain/entity"
	"sincmart/internal/domain/repository"
	"sincmart/internal/infrastructure/mongodb"
	"sincmart/pkg/errors"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(client *mongodb.Client) repository.ProductRepository {
	return &mongoProductRepository{
		collection: client.Collection("Products"),
	}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	return nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("Invalid product id", err)
	}

	var product entity.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	return &product, nil
}

func (r *mongoProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}
	defer cursor.Close(ctx)

	products := []*entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Internal("Failed to decode products", err)
	}

	return products, nil
}

func (r *mongoProductRepository) ListPaged(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
	}

	opts := options.Find().SetSkip(int64(offset)).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list products", err)
	}
	defer cursor.Close(ctx)

	products := []*entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, errors.Internal("Failed to decode products", err)
	}

	return products, total, nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, errors.BadRequest("Invalid product id", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, errors.Internal("Failed to delete product", err)
	}

	return result.DeletedCount, nil
}
