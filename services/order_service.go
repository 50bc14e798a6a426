package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/models"
	"restaurant/repository"
)

type OrderService struct {
	users  repository.UserRepository
	foods  repository.FoodRepository
	carts  repository.CartRepository
	orders repository.OrderRepository
	tx     repository.Transactor
}

func NewOrderService(
	users repository.UserRepository,
	foods repository.FoodRepository,
	carts repository.CartRepository,
	orders repository.OrderRepository,
	tx repository.Transactor,
) *OrderService {
	return &OrderService{users: users, foods: foods, carts: carts, orders: orders, tx: tx}
}

// PlaceOrder snapshots the user's cart into an order. The total is
// recomputed from current catalog prices, not taken from the cart's
// cached totalAmount. The order insert and the removal of every cart
// document for the user happen inside one transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, user primitive.ObjectID, tableNumber string) (*models.Order, error) {
	if strings.TrimSpace(tableNumber) == "" {
		return nil, ErrTableNumberRequired
	}
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
		return nil, ErrCartEmpty
	}

	// Snapshot the first cart document; any stragglers are cleared
	// below without contributing lines.
	cart := carts[0]
	items := make([]models.OrderItem, 0, len(cart.Items))
	var total float64
	for _, line := range cart.Items {
		food, err := s.foods.FindByID(ctx, line.Food)
		if err != nil {
			return nil, fmt.Errorf("resolve food %s: %w", line.Food.Hex(), err)
		}
		items = append(items, models.OrderItem{Food: line.Food, Quantity: line.Quantity})
		total += float64(line.Quantity) * food.Price
	}

	order := &models.Order{
		ID:          primitive.NewObjectID(),
		User:        user,
		Items:       items,
		TotalAmount: total,
		TableNumber: tableNumber,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.Insert(ctx, order); err != nil {
			return err
		}
		_, err := s.carts.DeleteByUser(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order to the given status. The status must
// parse into the closed enumeration and the move must be allowed by
// the transition table.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !order.Status.CanTransition(parsed) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, parsed)
	}

	ok, err := s.orders.UpdateStatusGuarded(ctx, id, order.Status, parsed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStatusConflict
	}
	order.Status = parsed
	return order, nil
}

// Cancel transitions an order to cancelled. Double-cancel is a
// conflict; cancelling a delivered order is an invalid transition.
func (s *OrderService) Cancel(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if !order.Status.CanTransition(models.StatusCancelled) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, models.StatusCancelled)
	}

	ok, err := s.orders.UpdateStatusGuarded(ctx, id, order.Status, models.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStatusConflict
	}
	order.Status = models.StatusCancelled
	return order, nil
}

// Display projections. User and food references are resolved for the
// dashboard; lines whose food no longer exists are skipped, a missing
// user leaves the user block empty.

type OrderUserView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderFoodView struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Price       float64            `json:"price"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	ImageURL    string             `json:"imageurl"`
	Ingredients []string           `json:"ingredients,omitempty"`
}

type OrderLineView struct {
	Food     OrderFoodView `json:"food"`
	Quantity int           `json:"quantity"`
}

type OrderView struct {
	ID          primitive.ObjectID `json:"id"`
	User        OrderUserView      `json:"user"`
	Items       []OrderLineView    `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	TableNumber string             `json:"tableNumber"`
	Status      models.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (s *OrderService) ListAll(ctx context.Context) ([]OrderView, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, orders)
}

func (s *OrderService) ListPending(ctx context.Context) ([]OrderView, error) {
	orders, err := s.orders.FindByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, orders)
}

func (s *OrderService) ListByUser(ctx context.Context, user primitive.ObjectID) ([]OrderView, error) {
	orders, err := s.orders.FindByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, orders)
}

func (s *OrderService) project(ctx context.Context, orders []models.Order) ([]OrderView, error) {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{
			ID:          order.ID,
			Items:       []OrderLineView{},
			TotalAmount: order.TotalAmount,
			TableNumber: order.TableNumber,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		}
		if user, err := s.users.FindByID(ctx, order.User); err == nil {
			view.User = OrderUserView{Name: user.Name, Email: user.Email, Phone: user.Phone}
		}
		for _, line := range order.Items {
			food, err := s.foods.FindByID(ctx, line.Food)
			if err != nil {
				continue
			}
			view.Items = append(view.Items, OrderLineView{
				Food: OrderFoodView{
					ID:          food.ID,
					Title:       food.Title,
					Price:       food.Price,
					Description: food.Description,
					Category:    food.Category,
					ImageURL:    food.ImageURL,
					Ingredients: food.Ingredients,
				},
				Quantity: line.Quantity,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
