package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question starts with an empty answer; the answer is set later in place.
type Question struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId"`
	Question  string             `json:"question" bson:"question"`
	Answer    string             `json:"answer" bson:"answer"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
