package user

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(id uint, username string) (string, error)

func TestMain(m *testing.M) {
	// Patch GenerateJWT for all tests
	orig := GenerateJWT
	GenerateJWT = func(id uint, username string) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(id, username)
		}
		return orig(id, username)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func TestUserService_Register(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	created := &User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "hashed"}
	mockRepo.On("FindByUsernameOrEmail", "alice", "alice@example.com").Return(nil, nil)
	mockRepo.On("CreateUser", "alice", "alice@example.com", mock.AnythingOfType("string")).Return(created, nil)
	mockGenerateJWT = func(id uint, username string) (string, error) { return "token123", nil }

	resp, err := service.Register(&RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", resp.Token)
	assert.Equal(t, uint(1), resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	var storedHash string
	mockRepo.On("FindByUsernameOrEmail", "bob", "bob@example.com").Return(nil, nil)
	mockRepo.On("CreateUser", "bob", "bob@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(&User{ID: 2, Username: "bob", Email: "bob@example.com"}, nil)
	mockGenerateJWT = func(id uint, username string) (string, error) { return "tok", nil }

	_, err := service.Register(&RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "hunter2"})
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("hunter2")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	for _, req := range []*RegisterRequest{
		{Email: "a@b.com", Password: "x"},
		{Username: "a", Password: "x"},
		{Username: "a", Email: "a@b.com"},
	} {
		resp, err := service.Register(req)
		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "please provide username, email, and password")
	}
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_Conflict(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	existing := &User{ID: 1, Username: "alice", Email: "alice@example.com"}
	mockRepo.On("FindByUsernameOrEmail", "alice", "other@example.com").Return(existing, nil)

	resp, err := service.Register(&RegisterRequest{Username: "alice", Email: "other@example.com", Password: "secret"})
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username or email is already taken")
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcryptCost)
	found := &User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: string(hash)}
	mockRepo.On("FindByEmail", "alice@example.com").Return(found, nil)
	mockGenerateJWT = func(id uint, username string) (string, error) { return "tok456", nil }

	resp, err := service.Login(&LoginRequest{Email: "alice@example.com", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "tok456", resp.Token)
	assert.Equal(t, uint(7), resp.User.ID)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_SameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcryptCost)
	found := &User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: string(hash)}
	mockRepo.On("FindByEmail", "alice@example.com").Return(found, nil)
	mockRepo.On("FindByEmail", "ghost@example.com").Return(nil, nil)

	_, errWrongPassword := service.Login(&LoginRequest{Email: "alice@example.com", Password: "nope"})
	_, errUnknownEmail := service.Login(&LoginRequest{Email: "ghost@example.com", Password: "secret"})

	assert.Error(t, errWrongPassword)
	assert.Error(t, errUnknownEmail)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_MissingFields(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	resp, err := service.Login(&LoginRequest{Email: "alice@example.com"})
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "please provide email and password")
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetCurrentUser(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	found := &User{ID: 3, Username: "alice", Email: "alice@example.com"}
	mockRepo.On("FindByID", uint(3)).Return(found, nil)

	u, err := service.GetCurrentUser(3)
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetCurrentUser_Gone(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("FindByID", uint(99)).Return(nil, nil)

	u, err := service.GetCurrentUser(99)
	assert.Nil(t, u)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_RepositoryError(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("FindByUsernameOrEmail", "err", "err@example.com").Return(nil, errors.New("db down"))

	_, err := service.Register(&RegisterRequest{Username: "err", Email: "err@example.com", Password: "x"})
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
