package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is an append-only record keyed by productId. The product id is
// never checked against the Products collection.
type Review struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId"`
	UserName  string             `json:"userName,omitempty" bson:"userName,omitempty"`
	UserEmail string             `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	UserPhoto string             `json:"userPhoto,omitempty" bson:"userPhoto,omitempty"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
