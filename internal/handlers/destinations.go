package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roadtrip/internal/middleware"
	"roadtrip/internal/models"
	"roadtrip/internal/store"
)

// SaveDestination appends a destination to the caller's list and returns the
// updated account. Ids are assigned here, on first persist.
func SaveDestination(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)

		var dest models.Destination
		if err := c.ShouldBindJSON(&dest); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if err := dest.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := users.FindByID(ctx, userID); err != nil {
			log.Println("[DESTINATION] [ERROR] user lookup failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		dest.ID = primitive.NewObjectID().Hex()
		if err := users.PushDestination(ctx, userID, dest); err != nil {
			log.Println("[DESTINATION] [ERROR] save destination failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			log.Println("[DESTINATION] [ERROR] user reload failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		log.Println("[DESTINATION] [INFO] destination saved:", dest.ID)
		c.JSON(http.StatusOK, user)
	}
}

// GetDestinations returns the caller's full destination list.
func GetDestinations(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			log.Println("[DESTINATION] [ERROR] user lookup failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, user.Destinations)
	}
}

// UpdateDestination replaces the destination whose id matches the payload.
// The positional store update leaves the list untouched when the id is
// unknown.
func UpdateDestination(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)

		var dest models.Destination
		if err := c.ShouldBindJSON(&dest); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if dest.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "destination id is required"})
			return
		}
		if err := dest.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := users.ReplaceDestination(ctx, userID, dest); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "destination not found"})
				return
			}
			log.Println("[DESTINATION] [ERROR] update destination failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			log.Println("[DESTINATION] [ERROR] user reload failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		log.Println("[DESTINATION] [INFO] destination updated:", dest.ID)
		c.JSON(http.StatusOK, user)
	}
}
