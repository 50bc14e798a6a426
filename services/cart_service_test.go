package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/models"
	"restaurant/repository"
)

type cartFixture struct {
	users *repository.InMemoryUserRepository
	foods *repository.InMemoryFoodRepository
	carts *repository.InMemoryCartRepository
	svc   *CartService
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	f := &cartFixture{
		users: repository.NewInMemoryUserRepository(),
		foods: repository.NewInMemoryFoodRepository(),
		carts: repository.NewInMemoryCartRepository(),
	}
	f.svc = NewCartService(f.users, f.foods, f.carts)
	return f
}

func (f *cartFixture) addUser(t *testing.T) primitive.ObjectID {
	t.Helper()
	user := &models.User{Name: "Asha", Email: "asha@example.com", Phone: "555-0101", Role: models.RoleCustomer, CreatedAt: time.Now()}
	require.NoError(t, f.users.Insert(context.Background(), user))
	return user.ID
}

func (f *cartFixture) addFood(t *testing.T, title string, price float64) primitive.ObjectID {
	t.Helper()
	food := &models.Food{Title: title, Price: price, Category: "mains"}
	require.NoError(t, f.foods.Insert(context.Background(), food))
	return food.ID
}

func TestAddToCartCreatesCart(t *testing.T) {
	f := newCartFixture(t)
	user := f.addUser(t)
	food := f.addFood(t, "Paneer Tikka", 20)

	cart, err := f.svc.AddToCart(context.Background(), user, []models.CartItem{{Food: food, Quantity: 2}}, 40)
	require.NoError(t, err)

	assert.Equal(t, user, cart.User)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, food, cart.Items[0].Food)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 40.0, cart.TotalAmount)
	assert.False(t, cart.CreatedAt.IsZero())
}

func TestAddToCartMergesExistingLines(t *testing.T) {
	f := newCartFixture(t)
	user := f.addUser(t)
	f1 := f.addFood(t, "Paneer Tikka", 10)
	f2 := f.addFood(t, "Garlic Naan", 15)

	_, err := f.svc.AddToCart(context.Background(), user, []models.CartItem{{Food: f1, Quantity: 2}}, 40)
	require.NoError(t, err)

	cart, err := f.svc.AddToCart(context.Background(), user, []models.CartItem{
		{Food: f1, Quantity: 1},
		{Food: f2, Quantity: 1},
	}, 15)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, f2, cart.Items[1].Food)
	assert.Equal(t, 1, cart.Items[1].Quantity)
	assert.Equal(t, 55.0, cart.TotalAmount)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	f := newCartFixture(t)
	user := f.addUser(t)
	food := f.addFood(t, "Masala Chai", 3)

	cart, err := f.svc.AddToCart(context.Background(), user, []models.CartItem{{Food: food}}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddToCartUnknownUser(t *testing.T) {
	f := newCartFixture(t)
	food := f.addFood(t, "Paneer Tikka", 20)

	unknown := primitive.NewObjectID()
	_, err := f.svc.AddToCart(context.Background(), unknown, []models.CartItem{{Food: food, Quantity: 1}}, 20)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// No cart may be written for the unknown user.
	carts, err := f.carts.FindByUser(context.Background(), unknown)
	require.NoError(t, err)
	assert.Empty(t, carts)
}

func TestAddToCartRejectsEmptyItems(t *testing.T) {
	f := newCartFixture(t)
	user := f.addUser(t)

	_, err := f.svc.AddToCart(context.Background(), user, nil, 0)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestGetAllCartItemsResolvesFood(t *testing.T) {
	f := newCartFixture(t)
	user := f.addUser(t)
	food := f.addFood(t, "Paneer Tikka", 20)

	_, err := f.svc.AddToCart(context.Background(), user, []models.CartItem{{Food: food, Quantity: 2}}, 40)
	require.NoError(t, err)

	view, err := f.svc.GetAllCartItems(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Paneer Tikka", view.Items[0].Food.Title)
	assert.Equal(t, 20.0, view.Items[0].Food.Price)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 40.0, view.TotalAmount)
}

func TestGetAllCartItemsMissingCart(t *testing.T) {
	f := newCartFixture(t)
	user := f.addUser(t)

	_, err := f.svc.GetAllCartItems(context.Background(), user)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestGetAllCartItemsUnknownUser(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.GetAllCartItems(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetAllCartItemsSkipsOrphanedLines(t *testing.T) {
	f := newCartFixture(t)
	user := f.addUser(t)
	food := f.addFood(t, "Paneer Tikka", 20)

	_, err := f.svc.AddToCart(context.Background(), user, []models.CartItem{
		{Food: food, Quantity: 1},
		{Food: primitive.NewObjectID(), Quantity: 1}, // dangling reference
	}, 20)
	require.NoError(t, err)

	view, err := f.svc.GetAllCartItems(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Paneer Tikka", view.Items[0].Food.Title)
}
