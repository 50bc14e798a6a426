package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/models"
)

func TestInMemoryCartVersioning(t *testing.T) {
	repo := NewInMemoryCartRepository()
	user := primitive.NewObjectID()

	cart := &models.Cart{User: user, Items: []models.CartItem{{Food: primitive.NewObjectID(), Quantity: 1}}}
	require.NoError(t, repo.Insert(context.Background(), cart))

	// Second insert for the same user violates the unique constraint.
	assert.ErrorIs(t, repo.Insert(context.Background(), &models.Cart{User: user}), ErrDuplicateCart)

	// Update at the stored version succeeds and bumps it.
	cart.TotalAmount = 12
	require.NoError(t, repo.UpdateVersioned(context.Background(), cart))

	// A writer still holding the old version loses.
	stale := *cart
	assert.ErrorIs(t, repo.UpdateVersioned(context.Background(), &stale), ErrVersionConflict)

	carts, err := repo.FindByUser(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, carts, 1)
	assert.Equal(t, 12.0, carts[0].TotalAmount)
	assert.Equal(t, int64(1), carts[0].Version)
}

func TestInMemoryCartDeleteByUser(t *testing.T) {
	repo := NewInMemoryCartRepository()
	user := primitive.NewObjectID()
	other := primitive.NewObjectID()

	require.NoError(t, repo.Insert(context.Background(), &models.Cart{User: user}))
	require.NoError(t, repo.Insert(context.Background(), &models.Cart{User: other}))

	deleted, err := repo.DeleteByUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.FindByUser(context.Background(), other)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestInMemoryOrderStatusGuard(t *testing.T) {
	repo := NewInMemoryOrderRepository()

	order := &models.Order{User: primitive.NewObjectID(), Status: models.StatusPending}
	require.NoError(t, repo.Insert(context.Background(), order))

	ok, err := repo.UpdateStatusGuarded(context.Background(), order.ID, models.StatusPending, models.StatusPreparing)
	require.NoError(t, err)
	assert.True(t, ok)

	// Guard fails when the expected status no longer matches.
	ok, err = repo.UpdateStatusGuarded(context.Background(), order.ID, models.StatusPending, models.StatusCancelled)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, stored.Status)
}

func TestInMemoryUserFindByEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()

	user := &models.User{Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, repo.Insert(context.Background(), user))

	found, err := repo.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryFoodByCategory(t *testing.T) {
	repo := NewInMemoryFoodRepository()

	require.NoError(t, repo.Insert(context.Background(), &models.Food{Title: "Paneer Tikka", Category: "starters"}))
	require.NoError(t, repo.Insert(context.Background(), &models.Food{Title: "Biryani", Category: "mains"}))

	starters, err := repo.FindByCategory(context.Background(), "starters")
	require.NoError(t, err)
	require.Len(t, starters, 1)
	assert.Equal(t, "Paneer Tikka", starters[0].Title)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
