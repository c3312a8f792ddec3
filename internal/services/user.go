package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"estate-backend/internal/models"
	"estate-backend/internal/repository"
)

// ErrDuplicateEmail is returned when creating a user whose email is already
// taken. Uniqueness is checked here, not enforced by the store.
var ErrDuplicateEmail = errors.New("email already registered")

type UserService struct {
	repo *repository.Repository[models.User]
}

func NewUserService(repo *repository.Repository[models.User]) *UserService {
	return &UserService{repo: repo}
}

// Create hashes the password and persists a new user after verifying the
// email is not already in use.
func (s *UserService) Create(ctx context.Context, user *models.User) (string, error) {
	user.Email = normalizeEmail(user.Email)

	existing, err := s.repo.FindByField(ctx, "email", user.Email)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return "", ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	user.Password = string(hash)

	id, err := s.repo.Save(ctx, user)
	if err != nil {
		return "", err
	}
	user.ID = id
	return id, nil
}

// Update merges the supplied fields; the password is re-hashed only when a
// new one is supplied.
func (s *UserService) Update(ctx context.Context, id string, user *models.User) error {
	if user.Email != "" {
		user.Email = normalizeEmail(user.Email)
	}
	if strings.TrimSpace(user.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		user.Password = string(hash)
	} else {
		user.Password = ""
	}

	user.ID = id
	return s.repo.Update(ctx, id, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := s.repo.FindByField(ctx, "email", normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, repository.ErrNotFound
	}
	return users[0], nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
