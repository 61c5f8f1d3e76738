package user

import (
	"errors"

	"github.com/thesrcielos/DebateJudge/internal/apperrors"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(username, email, passwordHash string) (*User, error)
	FindByUsernameOrEmail(username, email string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByID(id uint) (*User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(username, email, passwordHash string) (*User, error) {
	newUser := User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := r.db.Create(&newUser).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating user", err)
	}

	return &newUser, nil
}

func (r *GormUserRepository) FindByUsernameOrEmail(username, email string) (*User, error) {
	var u User
	result := r.db.Where("username = ? OR email = ?", username, email).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error looking up user", result.Error)
	}

	return &u, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*User, error) {
	var u User
	result := r.db.Where("email = ?", email).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error looking up user", result.Error)
	}

	return &u, nil
}

func (r *GormUserRepository) FindByID(id uint) (*User, error) {
	var u User
	result := r.db.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error looking up user", result.Error)
	}

	return &u, nil
}
