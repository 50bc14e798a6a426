package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

func ConnectMongo() {
	uri := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	if uri == "" || dbName == "" {
		log.Fatal("MONGO_URI or DB_NAME not set in environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("connected to MongoDB")
}

var UserCollection *mongo.Collection
var FoodCollection *mongo.Collection
var CartCollection *mongo.Collection
var OrderCollection *mongo.Collection
var BlacklistCollection *mongo.Collection

func InitCollections() {
	UserCollection = DB.Collection("users")
	FoodCollection = DB.Collection("foods")
	CartCollection = DB.Collection("carts")
	OrderCollection = DB.Collection("orders")
	BlacklistCollection = DB.Collection("blacklist_tokens")
}

// EnsureIndexes creates the indexes the services rely on. The unique
// index on carts.user enforces the one-cart-per-user invariant even
// under concurrent first inserts.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := CartCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("failed to create carts.user index:", err)
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("failed to create users.email index:", err)
	}
}

// WithTransaction runs fn inside a mongo session transaction. The
// server must be a replica set or mongos for transactions to work.
func WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
