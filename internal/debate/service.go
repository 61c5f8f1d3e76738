package debate

import (
	"github.com/google/uuid"
	"github.com/thesrcielos/DebateJudge/internal/apperrors"
)

const (
	fallbackJustification = "No justification provided"
	fallbackImprovements  = "No improvements suggested"
)

type DebateService struct {
	repo   DebateRepository
	scorer Scorer
}

func NewDebateService(repo DebateRepository, scorer Scorer) *DebateService {
	return &DebateService{repo: repo, scorer: scorer}
}

// Judge scores both sides with the external model and persists the verdict.
// Nothing is written unless both calls come back with usable scores.
func (s *DebateService) Judge(userID uint, req *JudgeRequest) (*Debate, error) {
	if req.SideA == "" || req.SideB == "" {
		return nil, apperrors.NewAppError(400, "both side A and side B arguments are required", nil)
	}

	resultA, err := s.scorer.Score(req.SideA, req.Topic)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error evaluating side A arguments", err)
	}

	resultB, err := s.scorer.Score(req.SideB, req.Topic)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error evaluating side B arguments", err)
	}

	// A zero score is indistinguishable from an absent one in the model reply.
	if resultA.Score == 0 || resultB.Score == 0 {
		return nil, apperrors.NewAppError(500, "invalid model response - missing persuasiveness scores", nil)
	}

	winner := WinnerDraw
	if resultA.Score > resultB.Score {
		winner = WinnerSideA
	} else if resultB.Score > resultA.Score {
		winner = WinnerSideB
	}

	d := &Debate{
		ID:     uuid.New().String(),
		UserID: userID,
		Topic:  req.Topic,
		SideA:  req.SideA,
		SideB:  req.SideB,
		ScoreA: resultA.Score,
		ScoreB: resultB.Score,
		Winner: winner,
		Feedback: Feedback{
			SideA: sideFeedback(resultA),
			SideB: sideFeedback(resultB),
		},
	}

	if err := s.repo.SaveDebate(d); err != nil {
		return nil, err
	}

	return d, nil
}

func sideFeedback(r *ScoreResult) SideFeedback {
	f := SideFeedback{Justification: r.Justification, Improvements: r.Improvements}
	if f.Justification == "" {
		f.Justification = fallbackJustification
	}
	if f.Improvements == "" {
		f.Improvements = fallbackImprovements
	}
	return f
}

func (s *DebateService) History(userID uint) ([]Debate, error) {
	return s.repo.GetDebates(userID)
}

func (s *DebateService) GetDebate(id string, requesterID uint) (*Debate, error) {
	d, err := s.repo.GetDebate(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.NewAppError(404, "debate not found", nil)
	}
	if d.UserID != requesterID {
		return nil, apperrors.NewAppError(401, "not authorized", nil)
	}

	return d, nil
}

func (s *DebateService) DeleteDebate(id string, requesterID uint) error {
	d, err := s.repo.GetDebate(id)
	if err != nil {
		return err
	}
	if d == nil {
		return apperrors.NewAppError(404, "debate not found", nil)
	}
	if d.UserID != requesterID {
		return apperrors.NewAppError(401, "not authorized to delete this debate", nil)
	}

	return s.repo.DeleteDebate(id)
}
