package debate

import (
	"errors"

	"github.com/thesrcielos/DebateJudge/internal/apperrors"
	"gorm.io/gorm"
)

type DebateRepository interface {
	SaveDebate(d *Debate) error
	GetDebates(userID uint) ([]Debate, error)
	GetDebate(id string) (*Debate, error)
	DeleteDebate(id string) error
}

type GormDebateRepository struct {
	db *gorm.DB
}

func NewGormDebateRepository(db *gorm.DB) *GormDebateRepository {
	return &GormDebateRepository{db: db}
}

func (r *GormDebateRepository) SaveDebate(d *Debate) error {
	if err := r.db.Create(d).Error; err != nil {
		return apperrors.NewAppError(500, "error saving debate", err)
	}
	return nil
}

func (r *GormDebateRepository) GetDebates(userID uint) ([]Debate, error) {
	debates := []Debate{}
	result := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&debates)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting debates", result.Error)
	}
	return debates, nil
}

func (r *GormDebateRepository) GetDebate(id string) (*Debate, error) {
	var d Debate
	result := r.db.Where("id = ?", id).First(&d)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting debate", result.Error)
	}
	return &d, nil
}

func (r *GormDebateRepository) DeleteDebate(id string) error {
	if err := r.db.Delete(&Debate{}, "id = ?", id).Error; err != nil {
		return apperrors.NewAppError(500, "error deleting debate", err)
	}
	return nil
}
