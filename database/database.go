package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bistro/config"
	"bistro/model"
)

const dbName = "bistroDB"

// Store owns the mongo client and the collection handles. It is constructed
// once in main and passed to every component that touches the database;
// Close must be called on shutdown.
type Store struct {
	client *mongo.Client

	Users    *mongo.Collection
	Menu     *mongo.Collection
	Reviews  *mongo.Collection
	Carts    *mongo.Collection
	Payments *mongo.Collection
	Bookings *mongo.Collection
}

func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		client:   client,
		Users:    db.Collection("users"),
		Menu:     db.Collection("menu"),
		Reviews:  db.Collection("reviews"),
		Carts:    db.Collection("cart"),
		Payments: db.Collection("payments"),
		Bookings: db.Collection("bookings"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// UserRole reports the role stored for the given email, or "" when no user
// document exists. The admin guard treats both the same way.
func (s *Store) UserRole(ctx context.Context, email string) (string, error) {
	var user model.User
	err := s.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(user.Role), nil
}
