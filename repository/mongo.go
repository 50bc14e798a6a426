package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant/database"
	"restaurant/models"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{coll: coll}
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type MongoFoodRepository struct {
	coll *mongo.Collection
}

func NewMongoFoodRepository(coll *mongo.Collection) *MongoFoodRepository {
	return &MongoFoodRepository{coll: coll}
}

func (r *MongoFoodRepository) Insert(ctx context.Context, food *models.Food) error {
	_, err := r.coll.InsertOne(ctx, food)
	return err
}

func (r *MongoFoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	var food models.Food
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *MongoFoodRepository) FindAll(ctx context.Context) ([]models.Food, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *MongoFoodRepository) FindByCategory(ctx context.Context, category string) ([]models.Food, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

type MongoCartRepository struct {
	coll *mongo.Collection
}

func NewMongoCartRepository(coll *mongo.Collection) *MongoCartRepository {
	return &MongoCartRepository{coll: coll}
}

func (r *MongoCartRepository) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Cart, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user": user})
	if err != nil {
		return nil, err
	}
	var carts []models.Cart
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *MongoCartRepository) Insert(ctx context.Context, cart *models.Cart) error {
	_, err := r.coll.InsertOne(ctx, cart)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCart
	}
	return err
}

func (r *MongoCartRepository) UpdateVersioned(ctx context.Context, cart *models.Cart) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": cart.ID, "version": cart.Version},
		bson.M{
			"$set": bson.M{"items": cart.Items, "totalAmount": cart.TotalAmount},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *MongoCartRepository) DeleteByUser(ctx context.Context, user primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"user": user})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(coll *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{coll: coll}
}

func (r *MongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	_, err := r.coll.InsertOne(ctx, order)
	return err
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoOrderRepository) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MongoOrderRepository) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Order, error) {
	return r.find(ctx, bson.M{"user": user})
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoOrderRepository) UpdateStatusGuarded(ctx context.Context, id primitive.ObjectID, from, to models.OrderStatus) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// MongoTransactor runs functions inside a session transaction on the
// shared client.
type MongoTransactor struct{}

func (MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.WithTransaction(ctx, fn)
}
