package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/models"
	"estate-backend/internal/services"
)

func GetApartments(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := apartments.GetAll(ctx)
		if err != nil {
			log.Println("[APARTMENT] [ERROR] list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetApartment(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		apartment, err := apartments.Get(ctx, c.Param("id"))
		if err != nil {
			respondNotFoundOrError(c, err)
			return
		}
		c.JSON(http.StatusOK, apartment)
	}
}

// CreateApartment accepts a multipart request with an "apartment" JSON part
// and an optional "model" file part.
func CreateApartment(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var apartment models.Apartment
		if err := parseEntityPart(c, "apartment", &apartment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apartment.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
			return
		}

		model, err := optionalFilePart(c, "model")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id, err := apartments.Create(ctx, &apartment, model)
		if err != nil {
			log.Println("[APARTMENT] [ERROR] create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func UpdateApartment(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var apartment models.Apartment
		if err := parseEntityPart(c, "apartment", &apartment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apartment.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
			return
		}

		model, err := optionalFilePart(c, "model")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := apartments.Update(ctx, c.Param("id"), &apartment, model); err != nil {
			log.Println("[APARTMENT] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

// CreateApartmentSimple is the plain-JSON variant used by the management UI.
func CreateApartmentSimple(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var apartment models.Apartment
		if err := c.ShouldBindJSON(&apartment); err != nil {
			respondValidationError(c, err)
			return
		}
		if apartment.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if _, err := apartments.Create(ctx, &apartment, nil); err != nil {
			log.Println("[APARTMENT] [ERROR] create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, apartment)
	}
}

func UpdateApartmentSimple(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var apartment models.Apartment
		if err := c.ShouldBindJSON(&apartment); err != nil {
			respondValidationError(c, err)
			return
		}
		if apartment.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id := c.Param("id")
		if err := apartments.Update(ctx, id, &apartment, nil); err != nil {
			log.Println("[APARTMENT] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		apartment.ID = id
		c.JSON(http.StatusOK, apartment)
	}
}

func DeleteApartment(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := apartments.Delete(ctx, c.Param("id")); err != nil {
			log.Println("[APARTMENT] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}

func GetApartmentsByStatus(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.ApartmentStatus(strings.ToUpper(c.Param("status")))
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := apartments.ByStatus(ctx, status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetApartmentsByFloor(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := apartments.ByFloor(ctx, c.Param("floorId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetApartmentsByType(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := apartments.ByType(ctx, c.Param("type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetApartmentsByPriceRange filters on minPrice <= price <= maxPrice,
// inclusive both ends.
func GetApartmentsByPriceRange(apartments *services.ApartmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		minPrice, err := strconv.ParseFloat(strings.TrimSpace(c.Query("minPrice")), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minPrice"})
			return
		}
		maxPrice, err := strconv.ParseFloat(strings.TrimSpace(c.Query("maxPrice")), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := apartments.ByPriceRange(ctx, minPrice, maxPrice)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
