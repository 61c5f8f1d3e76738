package practice

import (
	"github.com/stretchr/testify/mock"
)

type MockPracticeRepository struct {
	mock.Mock
}

func (m *MockPracticeRepository) SaveProblem(p *Problem) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPracticeRepository) GetProblem(id string) (*Problem, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*Problem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPracticeRepository) GetProblems() ([]Problem, error) {
	args := m.Called()
	if p := args.Get(0); p != nil {
		return p.([]Problem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPracticeRepository) SaveSubmission(s *Submission) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockPracticeRepository) GetSubmission(id string) (*Submission, error) {
	args := m.Called(id)
	if s := args.Get(0); s != nil {
		return s.(*Submission), args.Error(1)
	}
	return nil, args.Error(1)
}
