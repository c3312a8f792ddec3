package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"estate-backend/internal/models"
	"estate-backend/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// AuthService verifies credentials against the user collection and issues
// signed bearer tokens carrying the caller's email and role.
type AuthService struct {
	users  *UserService
	secret string
	ttl    time.Duration
}

func NewAuthService(users *UserService, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

// Login checks the password against the stored hash and returns a signed
// token plus the authenticated user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !user.Enabled {
		return "", nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates the account (defaulting to the USER role) and logs it in
// immediately, returning the new id and a token.
func (s *AuthService) Register(ctx context.Context, user *models.User) (string, string, error) {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.Enabled = true

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return "", "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", "", err
	}
	return id, token, nil
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
