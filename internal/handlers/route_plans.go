package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/middleware"
	"roadtrip/internal/models"
	"roadtrip/internal/store"
)

type RoutePlanRequest struct {
	Name  string               `json:"name" binding:"required"`
	Route []models.Destination `json:"route" binding:"required"`
}

// CreateRoutePlan persists a named route for the caller. Creator and creation
// time are server-assigned; plans are immutable after this point.
func CreateRoutePlan(plans store.RoutePlanStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)

		var req RoutePlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and route are required"})
			return
		}
		for i := range req.Route {
			if req.Route[i].Type != models.DestinationRoute {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("route entries must have type %q", models.DestinationRoute)})
				return
			}
			if err := req.Route[i].Validate(); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		plan := models.RoutePlan{
			Name:        req.Name,
			Route:       req.Route,
			DateCreated: time.Now().UTC(),
			CreatorID:   userID,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := plans.Insert(ctx, &plan); err != nil {
			log.Println("[ROUTEPLAN] [ERROR] create route plan failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create route plan"})
			return
		}

		log.Println("[ROUTEPLAN] [INFO] route plan created:", plan.Name)
		c.JSON(http.StatusOK, plan)
	}
}

// GetMyRoutePlans lists the plans created by the caller, nobody else's.
func GetMyRoutePlans(plans store.RoutePlanStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := plans.FindByCreator(ctx, userID)
		if err != nil {
			log.Println("[ROUTEPLAN] [ERROR] list route plans failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}
