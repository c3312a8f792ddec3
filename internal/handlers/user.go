package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/models"
	"estate-backend/internal/services"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Enabled  *bool  `json:"enabled"`
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Enabled  *bool  `json:"enabled"`
}

func CreateUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user := models.User{
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
			Enabled:  true,
		}
		if user.Role == "" {
			user.Role = models.RoleUser
		}
		if req.Enabled != nil {
			user.Enabled = *req.Enabled
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if _, err := users.Create(ctx, &user); err != nil {
			if errors.Is(err, services.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			log.Println("[USER] [ERROR] create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func GetUsers(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := users.GetAll(ctx)
		if err != nil {
			log.Println("[USER] [ERROR] list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		user, err := users.Get(ctx, c.Param("id"))
		if err != nil {
			respondNotFoundOrError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func UpdateUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id := c.Param("id")
		existing, err := users.Get(ctx, id)
		if err != nil {
			respondNotFoundOrError(c, err)
			return
		}

		user := models.User{
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
			Enabled:  existing.Enabled,
		}
		if req.Enabled != nil {
			user.Enabled = *req.Enabled
		}

		if err := users.Update(ctx, id, &user); err != nil {
			log.Println("[USER] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		updated, err := users.Get(ctx, id)
		if err != nil {
			respondNotFoundOrError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := users.Delete(ctx, c.Param("id")); err != nil {
			log.Println("[USER] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusOK)
	}
}
