package database

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

// defaultDBName is used when the connection string carries no database name.
const defaultDBName = "Ecommerce"

func Connect(mongoURI string) error {
	// Use longer timeout for Atlas connections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	log.Printf("Attempting to connect to MongoDB...")
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	// Ping the database with a separate context
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return err
	}

	Client = client
	DB = client.Database(dbNameFromURI(mongoURI))

	log.Println("✅ Connected to MongoDB")
	return nil
}

// dbNameFromURI extracts the database name from a connection string of the
// form mongodb://.../database_name?...; falls back to the default name.
func dbNameFromURI(mongoURI string) string {
	if mongoURI == "" {
		return defaultDBName
	}
	parts := strings.Split(mongoURI, "/")
	if len(parts) <= 3 {
		return defaultDBName
	}
	dbPart := strings.Split(parts[len(parts)-1], "?")[0]
	if dbPart == "" {
		return defaultDBName
	}
	return dbPart
}

func Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return Client.Disconnect(ctx)
}
