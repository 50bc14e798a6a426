package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	Food     primitive.ObjectID `bson:"food" json:"food"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order is an immutable snapshot of a cart plus table assignment.
// Only Status changes after placement, and only along ValidTransitions.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Items       []OrderItem        `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	TableNumber string             `bson:"tableNumber" json:"tableNumber"`
	Status      OrderStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
