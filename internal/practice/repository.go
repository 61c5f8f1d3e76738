package practice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thesrcielos/DebateJudge/internal/apperrors"
)

var ctx = context.Background()

const (
	problemKeyPrefix    = "problem:"
	submissionKeyPrefix = "submission:"
	problemIndexKey     = "problems_id"
	submissionIndexKey  = "submissions_id"
)

type PracticeRepository interface {
	SaveProblem(p *Problem) error
	GetProblem(id string) (*Problem, error)
	GetProblems() ([]Problem, error)
	SaveSubmission(s *Submission) error
	GetSubmission(id string) (*Submission, error)
}

type RedisPracticeRepository struct {
	db *redis.Client
}

func NewRedisPracticeRepository(db *redis.Client) *RedisPracticeRepository {
	return &RedisPracticeRepository{db: db}
}

func (r *RedisPracticeRepository) SaveProblem(p *Problem) error {
	data, err := json.Marshal(p)
	if err != nil {
		return apperrors.NewAppError(500, "error serializing problem data", err)
	}

	if err := r.db.Set(ctx, problemKeyPrefix+p.ID, data, 0).Err(); err != nil {
		return apperrors.NewAppError(500, "error saving problem", err)
	}

	timestamp := float64(time.Now().UnixNano())
	if err := r.db.ZAddNX(ctx, problemIndexKey, redis.Z{Score: timestamp, Member: p.ID}).Err(); err != nil {
		return apperrors.NewAppError(500, "error saving problem ID", err)
	}

	return nil
}

func (r *RedisPracticeRepository) GetProblem(id string) (*Problem, error) {
	val, err := r.db.Get(ctx, problemKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "error getting problem", err)
	}

	var p Problem
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, apperrors.NewAppError(500, "error unmarshalling problem data", err)
	}

	return &p, nil
}

func (r *RedisPracticeRepository) GetProblems() ([]Problem, error) {
	// Oldest first, so the listing keeps the original insertion order.
	problemIDs, err := r.db.ZRange(ctx, problemIndexKey, 0, -1).Result()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error getting problem IDs", err)
	}

	problems := []Problem{}
	for _, id := range problemIDs {
		p, err := r.GetProblem(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		problems = append(problems, *p)
	}

	return problems, nil
}

func (r *RedisPracticeRepository) SaveSubmission(s *Submission) error {
	data, err := json.Marshal(s)
	if err != nil {
		return apperrors.NewAppError(500, "error serializing submission data", err)
	}

	if err := r.db.Set(ctx, submissionKeyPrefix+s.ID, data, 0).Err(); err != nil {
		return apperrors.NewAppError(500, "error saving submission", err)
	}

	timestamp := float64(time.Now().UnixNano())
	if err := r.db.ZAddNX(ctx, submissionIndexKey, redis.Z{Score: timestamp, Member: s.ID}).Err(); err != nil {
		return apperrors.NewAppError(500, "error saving submission ID", err)
	}

	return nil
}

func (r *RedisPracticeRepository) GetSubmission(id string) (*Submission, error) {
	val, err := r.db.Get(ctx, submissionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "error getting submission", err)
	}

	var s Submission
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, apperrors.NewAppError(500, "error unmarshalling submission data", err)
	}

	return &s, nil
}
