package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is an append-only record keyed by productId.
type Report struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID     string             `json:"productId" bson:"productId"`
	Reason        string             `json:"reason" bson:"reason"`
	Details       string             `json:"details,omitempty" bson:"details,omitempty"`
	ReporterEmail string             `json:"reporterEmail,omitempty" bson:"reporterEmail,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}
