package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	Food     primitive.ObjectID `bson:"food" json:"food"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Cart is the per-user staging area for line items. At most one cart
// exists per user (unique index on user). TotalAmount is a display
// cache maintained incrementally from caller-supplied deltas; the
// authoritative total is computed at order placement from catalog
// prices. Version guards concurrent merges.
type Cart struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Items       []CartItem         `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Version     int64              `bson:"version" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Merge folds the incoming items into the cart's lines, keyed by food
// id. Quantities below 1 count as 1. Existing lines are incremented,
// unknown foods are appended in input order.
func (c *Cart) Merge(items []CartItem) {
	for _, in := range items {
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		merged := false
		for i := range c.Items {
			if c.Items[i].Food == in.Food {
				c.Items[i].Quantity += qty
				merged = true
				break
			}
		}
		if !merged {
			c.Items = append(c.Items, CartItem{Food: in.Food, Quantity: qty})
		}
	}
}
