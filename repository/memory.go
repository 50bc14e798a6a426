package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/models"
)

// In-memory implementations backing tests and local runs without a
// database. They mirror the mongo semantics the services rely on:
// natural insertion order, versioned cart updates, guarded status
// updates and the unique cart-per-user constraint.

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *InMemoryUserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

type InMemoryFoodRepository struct {
	mu    sync.RWMutex
	foods []models.Food
}

func NewInMemoryFoodRepository() *InMemoryFoodRepository {
	return &InMemoryFoodRepository{}
}

func (r *InMemoryFoodRepository) Insert(ctx context.Context, food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if food.ID.IsZero() {
		food.ID = primitive.NewObjectID()
	}
	r.foods = append(r.foods, *food)
	return nil
}

func (r *InMemoryFoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, food := range r.foods {
		if food.ID == id {
			f := food
			return &f, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryFoodRepository) FindAll(ctx context.Context) ([]models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Food, len(r.foods))
	copy(out, r.foods)
	return out, nil
}

func (r *InMemoryFoodRepository) FindByCategory(ctx context.Context, category string) ([]models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Food
	for _, food := range r.foods {
		if food.Category == category {
			out = append(out, food)
		}
	}
	return out, nil
}

type InMemoryCartRepository struct {
	mu    sync.Mutex
	carts []models.Cart
}

func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{}
}

func (r *InMemoryCartRepository) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Cart
	for _, cart := range r.carts {
		if cart.User == user {
			c := cart
			c.Items = append([]models.CartItem(nil), cart.Items...)
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryCartRepository) Insert(ctx context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.carts {
		if existing.User == cart.User {
			return ErrDuplicateCart
		}
	}
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	stored := *cart
	stored.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts = append(r.carts, stored)
	return nil
}

func (r *InMemoryCartRepository) UpdateVersioned(ctx context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.carts {
		if r.carts[i].ID == cart.ID && r.carts[i].Version == cart.Version {
			r.carts[i].Items = append([]models.CartItem(nil), cart.Items...)
			r.carts[i].TotalAmount = cart.TotalAmount
			r.carts[i].Version++
			return nil
		}
	}
	return ErrVersionConflict
}

func (r *InMemoryCartRepository) DeleteByUser(ctx context.Context, user primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []models.Cart
	var deleted int64
	for _, cart := range r.carts {
		if cart.User == user {
			deleted++
			continue
		}
		kept = append(kept, cart)
	}
	r.carts = kept
	return deleted, nil
}

type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

func (r *InMemoryOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	stored := *order
	stored.Items = append([]models.OrderItem(nil), order.Items...)
	r.orders = append(r.orders, stored)
	return nil
}

func (r *InMemoryOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == id {
			o := order
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *InMemoryOrderRepository) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, order := range r.orders {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *InMemoryOrderRepository) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, order := range r.orders {
		if order.User == user {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *InMemoryOrderRepository) UpdateStatusGuarded(ctx context.Context, id primitive.ObjectID, from, to models.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id && r.orders[i].Status == from {
			r.orders[i].Status = to
			return true, nil
		}
	}
	return false, nil
}

// InMemoryTransactor satisfies Transactor without transactional
// semantics; the in-memory stores are process-local anyway.
type InMemoryTransactor struct{}

func (InMemoryTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
