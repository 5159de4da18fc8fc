package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/auth"
	"roadtrip/internal/config"
	"roadtrip/internal/database"
	"roadtrip/internal/handlers"
	"roadtrip/internal/middleware"
	"roadtrip/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)
	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureRegulationIndexes(db); err != nil {
		log.Printf("regulation index warning: %v", err)
	}
	if err := database.EnsureRoutePlanIndexes(db); err != nil {
		log.Printf("route plan index warning: %v", err)
	}

	users := store.NewMongoUserStore(db)
	regulations := store.NewMongoRegulationStore(db)
	plans := store.NewMongoRoutePlanStore(db)
	tokens := auth.NewTokenService(
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	)

	r := gin.Default()
	r.Use(middleware.CORS())

	handlers.Routes(r, users, regulations, plans, tokens)

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
