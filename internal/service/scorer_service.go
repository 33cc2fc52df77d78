package service

import (
	"github.com/lshigami/Talapoin/internal/model"
)

// Points awarded for a correct answer, by difficulty.
const (
	PointsEasy   = 1
	PointsMedium = 2
	PointsHard   = 3
)

type ScorerService interface {
	Score(question *model.Question, answerGiven string) (isCorrect bool, points int)
}

type scorerService struct{}

func NewScorerService() ScorerService {
	return &scorerService{}
}

// Score compares the given answer with the question's correct option using
// exact, case-sensitive equality. Incorrect answers always score zero; an
// unrecognized difficulty also scores zero.
func (s *scorerService) Score(question *model.Question, answerGiven string) (bool, int) {
	if answerGiven != question.CorrectOption {
		return false, 0
	}
	switch question.Difficulty {
	case model.DifficultyEasy:
		return true, PointsEasy
	case model.DifficultyMedium:
		return true, PointsMedium
	case model.DifficultyHard:
		return true, PointsHard
	default:
		return true, 0
	}
}
