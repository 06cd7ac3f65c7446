package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderStatusPending = "pending"

type Purchaser struct {
	DisplayName string `json:"displayName" bson:"displayName"`
	Email       string `json:"email" bson:"email"`
	PhotoURL    string `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Timestamp   string `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
}

type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is created at checkout and never mutated or deleted afterwards.
type Order struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Purchaser Purchaser          `json:"purchaser" bson:"purchaser"`
	Items     []OrderItem        `json:"items" bson:"items"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
	Status    string             `json:"status" bson:"status"`
}
