package debate

import (
	"github.com/stretchr/testify/mock"
)

type MockDebateRepository struct {
	mock.Mock
}

func (m *MockDebateRepository) SaveDebate(d *Debate) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockDebateRepository) GetDebates(userID uint) ([]Debate, error) {
	args := m.Called(userID)
	if d := args.Get(0); d != nil {
		return d.([]Debate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDebateRepository) GetDebate(id string) (*Debate, error) {
	args := m.Called(id)
	if d := args.Get(0); d != nil {
		return d.(*Debate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDebateRepository) DeleteDebate(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) Score(arguments, topic string) (*ScoreResult, error) {
	args := m.Called(arguments, topic)
	if r := args.Get(0); r != nil {
		return r.(*ScoreResult), args.Error(1)
	}
	return nil, args.Error(1)
}
