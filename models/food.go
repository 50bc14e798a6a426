package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a catalog entry. Managers create foods; nothing deletes them,
// so cart and order lines may hold weak references indefinitely.
type Food struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title" binding:"required"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price" binding:"required,gte=0"`
	PreviousPrice float64            `bson:"previousPrice,omitempty" json:"previousPrice,omitempty"`
	Category      string             `bson:"category" json:"category" binding:"required"`
	IsVeg         bool               `bson:"isVeg" json:"isVeg"`
	ImageURL      string             `bson:"imageurl" json:"imageurl"`
	ARModelURL    string             `bson:"ARmodelUrl,omitempty" json:"ARmodelUrl,omitempty"`
	Rating        float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Reviews       int                `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Ingredients   []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	SpiceLevel    string             `bson:"spiceLevel,omitempty" json:"spiceLevel,omitempty"`
	Speciality    string             `bson:"speciality,omitempty" json:"speciality,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
