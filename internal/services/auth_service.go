package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"tidylist/internal/apperrors"
	"tidylist/internal/models"
	"tidylist/internal/repositories"
)

const (
	emailInUseMessage     = "this email is already in use"
	invalidCredsMessage   = "invalid credentials"
	registerFailedMessage = "an error occurred while registering, please try again"
)

// AuthService handles registration, login, and token issuance/verification.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. tokenTTL bounds the lifetime of
// issued tokens.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new user with a bcrypt-hashed password. The returned
// user never carries the hash. Duplicate emails conflict; the unique index on
// users.email backs the pre-check under concurrent registrations.
func (s *AuthService) Register(email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, apperrors.Internal(registerFailedMessage, err)
	}
	if existing != nil {
		return nil, apperrors.Conflict(emailInUseMessage)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(registerFailedMessage, err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict(emailInUseMessage)
		}
		return nil, apperrors.Internal(registerFailedMessage, err)
	}

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates the credentials and returns the user (hash cleared)
// plus a signed token. Unknown email and wrong password produce the same
// error so the endpoint is not an email-existence oracle.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", apperrors.Internal("login failed, please try again", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", apperrors.Unauthenticated(invalidCredsMessage)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", apperrors.Internal("login failed, please try again", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// issueToken signs an HS256 token over the user's public identity fields.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        user.ID,
		"email":     user.Email,
		"createdAt": user.CreatedAt.Format(time.RFC3339),
		"updatedAt": user.UpdatedAt.Format(time.RFC3339),
		"iat":       now.Unix(),
		"exp":       now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses and verifies a token, returning its claims. Malformed
// tokens, bad signatures, wrong algorithms, and expired tokens all fail the
// same way.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthenticated("invalid token")
	}
	return claims, nil
}
