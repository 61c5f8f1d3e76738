package practice

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/thesrcielos/DebateJudge/internal/apperrors"
)

type PracticeService struct {
	repo       PracticeRepository
	judgeDelay time.Duration
}

func NewPracticeService(repo PracticeRepository) *PracticeService {
	return &PracticeService{repo: repo, judgeDelay: 1500 * time.Millisecond}
}

func (s *PracticeService) CreateProblem(p *Problem) (*Problem, error) {
	if p.Title == "" {
		return nil, apperrors.NewAppError(400, "problem title is required", nil)
	}

	p.ID = "p" + uuid.New().String()[:8]
	if err := s.repo.SaveProblem(p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *PracticeService) GetProblems() ([]Problem, error) {
	return s.repo.GetProblems()
}

func (s *PracticeService) GetProblem(id string) (*Problem, error) {
	p, err := s.repo.GetProblem(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewAppError(404, "problem not found", nil)
	}

	return p, nil
}

// CreateSubmission queues a submission. There is no real judge worker; a
// timer marks it accepted after a short delay.
func (s *PracticeService) CreateSubmission(sub *Submission) (*Submission, error) {
	sub.ID = "s" + uuid.New().String()[:8]
	sub.Status = StatusQueued
	sub.Result = nil

	if err := s.repo.SaveSubmission(sub); err != nil {
		return nil, err
	}

	time.AfterFunc(s.judgeDelay, func() { s.completeSubmission(sub.ID) })
	return sub, nil
}

func (s *PracticeService) completeSubmission(id string) {
	sub, err := s.repo.GetSubmission(id)
	if err != nil || sub == nil {
		log.Println("error completing submission", id, err)
		return
	}

	sub.Status = StatusDone
	sub.Result = &SubmissionResult{Verdict: "Accepted", Stdout: "3\n"}
	if err := s.repo.SaveSubmission(sub); err != nil {
		log.Println("error saving judged submission:", err)
	}
}

func (s *PracticeService) GetSubmission(id string) (*Submission, error) {
	sub, err := s.repo.GetSubmission(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperrors.NewAppError(404, "submission not found", nil)
	}

	return sub, nil
}

// SeedDemoData inserts the demo problem on an empty store.
func (s *PracticeService) SeedDemoData() error {
	problems, err := s.repo.GetProblems()
	if err != nil {
		return err
	}
	if len(problems) > 0 {
		return nil
	}

	_, err = s.CreateProblem(&Problem{
		Title:       "Sum Two Numbers",
		Difficulty:  "easy",
		Description: "Add two integers.",
	})
	return err
}
