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

type mongoQuestionRepository struct {
	collection *mongo.Collection
}

func NewMongoQuestionRepository(client *mongodb.Client) repository.QuestionRepository {
	return &mongoQuestionRepository{
		collection: client.Collection("QandA"),
	}
}

func (r *mongoQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, question)
	if err != nil {
		return errors.Internal("Failed to create question", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		question.ID = oid
	}

	return nil
}

func (r *mongoQuestionRepository) ListByProductID(ctx context.Context, productID string) ([]*entity.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, errors.Internal("Failed to list questions", err)
	}
	defer cursor.Close(ctx)

	questions := []*entity.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, errors.Internal("Failed to decode questions", err)
	}

	return questions, nil
}

func (r *mongoQuestionRepository) SetAnswer(ctx context.Context, id string, answer string) (*entity.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("Invalid question id", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var question entity.Question
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"answer": answer}},
		opts,
	).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Question", err)
		}
		return nil, errors.Internal("Failed to update answer", err)
	}

	return &question, nil
}
