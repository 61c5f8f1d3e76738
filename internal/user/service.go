package user

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/thesrcielos/DebateJudge/internal/apperrors"
)

const bcryptCost = 10

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.NewAppError(400, "please provide username, email, and password", nil)
	}

	existing, err := s.repo.FindByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(409, "username or email is already taken", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error hashing password", err)
	}

	created, err := s.repo.CreateUser(req.Username, req.Email, string(hash))
	if err != nil {
		return nil, err
	}

	token, errJWT := GenerateJWT(created.ID, created.Username)
	if errJWT != nil {
		return nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}

	return &AuthResponse{User: created.Public(), Token: token}, nil
}

func (s *UserService) Login(req *LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewAppError(400, "please provide email and password", nil)
	}

	found, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	token, errJWT := GenerateJWT(found.ID, found.Username)
	if errJWT != nil {
		return nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}

	return &AuthResponse{User: found.Public(), Token: token}, nil
}

func (s *UserService) GetCurrentUser(id uint) (*User, error) {
	found, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.NewAppError(404, "user not found", nil)
	}

	return found, nil
}

// Same message for an unknown email and a wrong password, so a caller
// cannot probe which accounts exist.
func invalidCredentials() error {
	return apperrors.NewAppError(401, "invalid email or password", nil)
}
