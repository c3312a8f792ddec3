package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/models"
	"estate-backend/internal/services"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a signed bearer token.
func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		token, user, err := auth.Login(ctx, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				log.Println("[AUTH] [ERROR] login invalid credentials")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			case errors.Is(err, services.ErrAccountDisabled):
				log.Println("[AUTH] [ERROR] login disabled account:", req.Email)
				c.JSON(http.StatusForbidden, gin.H{"error": "account is disabled"})
			default:
				log.Println("[AUTH] [ERROR] login failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			}
			return
		}

		log.Println("[AUTH] [INFO] login succeeded:", user.Email)
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// Register creates an account and logs it in immediately.
func Register(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		user := &models.User{
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		}

		id, token, err := auth.Register(ctx, user)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateEmail) {
				log.Println("[AUTH] [ERROR] register email exists:", req.Email)
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			log.Println("[AUTH] [ERROR] register failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		log.Println("[AUTH] [INFO] user registered:", user.Email)
		c.JSON(http.StatusCreated, gin.H{
			"token":  token,
			"userId": id,
		})
	}
}
