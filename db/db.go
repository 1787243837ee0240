package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client              *mongo.Client
	FavoritesCollection *mongo.Collection
)

// Init connects to MongoDB and wires the collections. The service cannot
// run without its store, so a failed connect aborts startup.
func Init(uri, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	FavoritesCollection = Client.Database(dbName).Collection("favorites")
}
