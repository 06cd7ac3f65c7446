package repository

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sincmart/internal/domain/entity"
	"sincmart/internal/domain/repository"
	"sincmart/internal/infrastructure/mongodb"
	"sincmart/pkg/errors"
)

type mongoReportRepository struct {
	collection *mongo.Collection
}

func NewMongoReportRepository(client *mongodb.Client) repository.ReportRepository {
	return &mongoReportRepository{
		collection: client.Collection("reports"),
	}
}

func (r *mongoReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		// Report writes surface their own error code, distinct from reviews.
		return errors.New("REPORT_STORE", "Failed to post report", http.StatusInternalServerError, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}

	return nil
}

func (r *mongoReportRepository) ListByProductID(ctx context.Context, productID string) ([]*entity.Report, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, errors.Internal("Failed to list reports", err)
	}
	defer cursor.Close(ctx)

	reports := []*entity.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, errors.Internal("Failed to decode reports", err)
	}

	return reports, nil
}
