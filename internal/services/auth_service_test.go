package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"tidylist/internal/apperrors"
	"tidylist/internal/models"
	"tidylist/internal/repositories"
	"tidylist/internal/services"
)

const testJWTSecret = "test_jwt_secret"

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func assertKind(t *testing.T, err error, kind apperrors.Kind) *apperrors.Error {
	t.Helper()
	var appErr *apperrors.Error
	assert.ErrorAs(t, err, &appErr)
	if appErr != nil {
		assert.Equal(t, kind, appErr.Kind)
	}
	return appErr
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 24*time.Hour)

	// Successful registration stores a bcrypt hash and returns the user
	// with the hash cleared.
	var persisted *models.User
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		persisted = args.Get(0).(*models.User)
	}).Return(nil).Once()

	user, err := authService.Register("test@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.NotNil(t, persisted)
	assert.NotEqual(t, "password123", persisted.PasswordHash)
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByEmail", "test@example.com").Return(&models.User{ID: "user-1"}, nil).Once()
	_, err = authService.Register("test@example.com", "password123")
	assertKind(t, err, apperrors.KindConflict)
	mockRepo.AssertExpectations(t)

	// A concurrent registration winning the race surfaces as the same conflict
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicate).Once()
	_, err = authService.Register("test@example.com", "password123")
	assertKind(t, err, apperrors.KindConflict)
	mockRepo.AssertExpectations(t)

	// Unexpected persistence failure is downgraded to a generic internal error
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(fmt.Errorf("connection reset")).Once()
	_, err = authService.Register("test@example.com", "password123")
	appErr := assertKind(t, err, apperrors.KindInternal)
	assert.NotContains(t, appErr.Message, "connection reset")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 24*time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now().Add(-time.Hour),
	}

	// Successful login returns the user without the hash plus a verifiable token
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	loggedIn, token, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.Empty(t, loggedIn.PasswordHash)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["id"])
	assert.Equal(t, "test@example.com", claims["email"])
	assert.NotNil(t, claims["iat"])
	assert.NotNil(t, claims["exp"])
	_, hasHash := claims["passwordHash"]
	assert.False(t, hasHash)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, errWrongPassword := authService.Login("test@example.com", "wrongpassword")
	assertKind(t, errWrongPassword, apperrors.KindUnauthenticated)
	mockRepo.AssertExpectations(t)

	// Unknown email produces an identical error: no email-existence oracle
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, nil).Once()
	_, _, errUnknownEmail := authService.Login("nobody@example.com", "password123")
	assertKind(t, errUnknownEmail, apperrors.KindUnauthenticated)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 24*time.Hour)

	// Malformed token
	_, err := authService.ValidateToken("not.a.token")
	assertKind(t, err, apperrors.KindUnauthenticated)

	// Token signed with a different secret
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	foreignString, _ := foreign.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(foreignString)
	assertKind(t, err, apperrors.KindUnauthenticated)

	// Expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredString)
	assertKind(t, err, apperrors.KindUnauthenticated)

	// Valid token
	valid := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	validString, _ := valid.SignedString([]byte(testJWTSecret))
	claims, err := authService.ValidateToken(validString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["id"])
}
