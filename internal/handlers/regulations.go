package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/models"
	"roadtrip/internal/store"
)

// AddRegulation inserts the regulation document for a new country. The unique
// country index rejects a second document for the same country.
func AddRegulation(regulations store.RegulationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var regulation models.RoadRegulation
		if err := c.ShouldBindJSON(&regulation); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := regulations.Insert(ctx, &regulation); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": "road regulation for this country already exists"})
				return
			}
			log.Println("[REGULATION] [ERROR] insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert road regulation"})
			return
		}

		log.Println("[REGULATION] [INFO] regulation added:", regulation.CountryName)
		c.JSON(http.StatusOK, regulation)
	}
}

// GetAllRegulations returns the whole catalogue.
func GetAllRegulations(regulations store.RegulationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := regulations.All(ctx)
		if err != nil {
			log.Println("[REGULATION] [ERROR] listing failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetRegulationByCountry looks up one country's regulation document.
func GetRegulationByCountry(regulations store.RegulationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		regulation, err := regulations.FindByCountry(ctx, c.Param("country_name"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "road regulation for this country not found"})
				return
			}
			log.Println("[REGULATION] [ERROR] lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, regulation)
	}
}
