package services_test

import (
	"fmt"
	"testing"
	"time"

	"canteen/internal/models"
	"canteen/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret", time.Hour)

	mockRepo.On("GetByUsername", "staff1").Return(nil, fmt.Errorf("user with username staff1 not found")).Once()
	mockRepo.On("GetByEmail", "staff1@canteen.local").Return(nil, fmt.Errorf("user with email staff1@canteen.local not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user := &models.User{Username: "staff1", Email: "staff1@canteen.local", Password: "secret123"}
	err := service.RegisterUser(user)

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret", time.Hour)

	mockRepo.On("GetByUsername", "staff1").Return(&models.User{Username: "staff1"}, nil).Once()

	err := service.RegisterUser(&models.User{Username: "staff1", Email: "new@canteen.local", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrDuplicateUser)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret", time.Hour)

	mockRepo.On("GetByUsername", "staff2").Return(nil, fmt.Errorf("user with username staff2 not found")).Once()
	mockRepo.On("GetByEmail", "staff1@canteen.local").Return(&models.User{Email: "staff1@canteen.local"}, nil).Once()

	err := service.RegisterUser(&models.User{Username: "staff2", Email: "staff1@canteen.local", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrDuplicateUser)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret", time.Hour)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{ID: "abc-123", Username: "staff1", Email: "staff1@canteen.local", Password: string(hashed)}

	mockRepo.On("GetByUsername", "staff1").Return(stored, nil).Once()

	token, err := service.LoginUser("staff1", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "abc-123", claims["user_id"])
	assert.Equal(t, "staff1", claims["username"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret", time.Hour)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := &models.User{Username: "staff1", Password: string(hashed)}
	mockRepo.On("GetByUsername", "staff1").Return(stored, nil).Once()

	token, err := service.LoginUser("staff1", "wrong")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	issuer := services.NewAuthService(mockRepo, "secret_a", time.Hour)
	verifier := services.NewAuthService(mockRepo, "secret_b", time.Hour)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	mockRepo.On("GetByUsername", "staff1").Return(&models.User{Username: "staff1", Password: string(hashed)}, nil).Once()

	token, err := issuer.LoginUser("staff1", "secret123")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
