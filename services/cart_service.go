package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/models"
	"restaurant/repository"
)

// maxMergeRetries bounds the optimistic-concurrency loop in AddToCart.
const maxMergeRetries = 3

type CartService struct {
	users repository.UserRepository
	foods repository.FoodRepository
	carts repository.CartRepository
}

func NewCartService(users repository.UserRepository, foods repository.FoodRepository, carts repository.CartRepository) *CartService {
	return &CartService{users: users, foods: foods, carts: carts}
}

// CartLineView is a cart line with the food document resolved from the
// catalog for display.
type CartLineView struct {
	Food     models.Food `json:"food"`
	Quantity int         `json:"quantity"`
}

type CartView struct {
	Items       []CartLineView `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
}

// AddToCart merges items into the user's cart, creating it on first
// use. totalDelta is the caller-declared amount being added and is
// folded into the cached totalAmount as-is; the authoritative total is
// only ever computed at order placement. The merge runs as a versioned
// read-modify-write retried on conflict, so concurrent adds for the
// same user cannot silently drop each other's lines.
func (s *CartService) AddToCart(ctx context.Context, user primitive.ObjectID, items []models.CartItem, totalDelta float64) (*models.Cart, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if _, err := s.users.FindByID(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	for attempt := 0; attempt < maxMergeRetries; attempt++ {
		carts, err := s.carts.FindByUser(ctx, user)
		if err != nil {
			return nil, err
		}

		if len(carts) == 0 {
			cart := &models.Cart{
				ID:        primitive.NewObjectID(),
				User:      user,
				CreatedAt: time.Now(),
			}
			cart.Merge(items)
			cart.TotalAmount = totalDelta
			err := s.carts.Insert(ctx, cart)
			if errors.Is(err, repository.ErrDuplicateCart) {
				// Another request created the cart first; merge into it.
				continue
			}
			if err != nil {
				return nil, err
			}
			return cart, nil
		}

		cart := carts[0]
		cart.Merge(items)
		cart.TotalAmount += totalDelta
		err = s.carts.UpdateVersioned(ctx, &cart)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		cart.Version++
		return &cart, nil
	}
	return nil, ErrCartContention
}

// GetAllCartItems returns the user's cart lines with food details and
// the cached total. Lines whose food no longer resolves are skipped.
func (s *CartService) GetAllCartItems(ctx context.Context, user primitive.ObjectID) (*CartView, error) {
	if _, err := s.users.FindByID(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	carts, err := s.carts.FindByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, ErrCartNotFound
	}

	cart := carts[0]
	view := &CartView{TotalAmount: cart.TotalAmount, Items: []CartLineView{}}
	for _, line := range cart.Items {
		food, err := s.foods.FindByID(ctx, line.Food)
		if err != nil {
			continue
		}
		view.Items = append(view.Items, CartLineView{Food: *food, Quantity: line.Quantity})
	}
	return view, nil
}
