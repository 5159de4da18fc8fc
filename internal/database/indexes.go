package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureUserIndexes creates the unique email index. Registration relies on it
// to reject duplicate emails atomically.
func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating email_unique index")
	_, err := db.Collection("users").Indexes().CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: email index error:", err)
		return err
	}
	return nil
}

// EnsureRegulationIndexes creates the unique country index. Adding a
// regulation relies on it to reject duplicate countries atomically.
func EnsureRegulationIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	countryIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "country_name", Value: 1}},
		Options: options.Index().
			SetName("country_name_unique").
			SetUnique(true),
	}

	log.Println("EnsureRegulationIndexes: creating country_name_unique index")
	_, err := db.Collection("regulations").Indexes().CreateOne(ctx, countryIndex)
	if err != nil {
		log.Println("EnsureRegulationIndexes: country index error:", err)
		return err
	}
	return nil
}

// EnsureRoutePlanIndexes indexes creator_id for the per-user plan listing.
func EnsureRoutePlanIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	creatorIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "creator_id", Value: 1}},
		Options: options.Index().SetName("creator_id_index"),
	}

	log.Println("EnsureRoutePlanIndexes: creating creator_id_index index")
	_, err := db.Collection("route_plans").Indexes().CreateOne(ctx, creatorIndex)
	if err != nil {
		log.Println("EnsureRoutePlanIndexes: creator_id index error:", err)
		return err
	}
	return nil
}
