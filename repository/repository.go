// Package repository defines the data-access interfaces the services
// depend on, with MongoDB implementations for production and in-memory
// implementations for tests and local development.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/models"
)

var (
	ErrNotFound = errors.New("document not found")

	// ErrVersionConflict means a conditional cart update matched no
	// document: another writer bumped the version first.
	ErrVersionConflict = errors.New("cart version conflict")

	// ErrDuplicateCart means an insert hit the unique index on
	// carts.user: a cart for that user already exists.
	ErrDuplicateCart = errors.New("cart already exists for user")
)

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type FoodRepository interface {
	Insert(ctx context.Context, food *models.Food) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error)
	FindAll(ctx context.Context) ([]models.Food, error)
	FindByCategory(ctx context.Context, category string) ([]models.Food, error)
}

type CartRepository interface {
	// FindByUser returns every cart document for the user, in natural
	// storage order. The unique index keeps this to at most one, but
	// callers treat it as a list (placement consumes the first match
	// and clears the rest).
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Cart, error)
	Insert(ctx context.Context, cart *models.Cart) error
	// UpdateVersioned overwrites items and totalAmount only when the
	// stored version still matches cart.Version, then bumps it.
	UpdateVersioned(ctx context.Context, cart *models.Cart) error
	DeleteByUser(ctx context.Context, user primitive.ObjectID) (int64, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Order, error)
	// UpdateStatusGuarded moves the order to the given status only if
	// its current status is `from`, and reports whether it matched.
	UpdateStatusGuarded(ctx context.Context, id primitive.ObjectID, from, to models.OrderStatus) (bool, error)
}

// Transactor runs a function inside a single transactional boundary so
// order placement can insert the order and clear the cart atomically.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
