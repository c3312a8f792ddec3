package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/models"
	"estate-backend/internal/services"
)

// CreateBuyer is the public contact-form entry point; every other buyer route
// is admin-only.
func CreateBuyer(buyers *services.BuyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buyer models.Buyer
		if err := c.ShouldBindJSON(&buyer); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id, err := buyers.Create(ctx, &buyer)
		if err != nil {
			log.Println("[BUYER] [ERROR] create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func GetBuyers(buyers *services.BuyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := buyers.GetAll(ctx)
		if err != nil {
			log.Println("[BUYER] [ERROR] list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetBuyer(buyers *services.BuyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		buyer, err := buyers.Get(ctx, c.Param("id"))
		if err != nil {
			respondNotFoundOrError(c, err)
			return
		}
		c.JSON(http.StatusOK, buyer)
	}
}

func UpdateBuyer(buyers *services.BuyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buyer models.Buyer
		if err := c.ShouldBindJSON(&buyer); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := buyers.Update(ctx, c.Param("id"), &buyer); err != nil {
			log.Println("[BUYER] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

func DeleteBuyer(buyers *services.BuyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := buyers.Delete(ctx, c.Param("id")); err != nil {
			log.Println("[BUYER] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

func GetBuyersByStatus(buyers *services.BuyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.BuyerStatus(strings.ToUpper(c.Param("status")))
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := buyers.ByStatus(ctx, status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetBuyersByApartment(buyers *services.BuyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := buyers.ByApartment(ctx, c.Param("apartmentId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetBuyersByDateRange filters buyers on creation time; startDate and endDate
// are RFC3339 query parameters, inclusive both ends.
func GetBuyersByDateRange(buyers *services.BuyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Query("startDate")))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
			return
		}
		end, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Query("endDate")))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := buyers.ByDateRange(ctx, start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
