package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string                 `json:"name" bson:"name"`
	Description string                 `json:"description,omitempty" bson:"description,omitempty"`
	Category    string                 `json:"category,omitempty" bson:"category,omitempty"`
	Price       float64                `json:"price" bson:"price"`
	ImageURL    string                 `json:"imageURL,omitempty" bson:"imageURL,omitempty"`
	Attributes  map[string]interface{} `json:"attributes,omitempty" bson:"attributes,omitempty"`
	CreatedAt   time.Time              `json:"createdAt" bson:"createdAt"`
}
