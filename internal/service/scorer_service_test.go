package service

import (
	"testing"

	"github.com/lshigami/Talapoin/internal/model"
)

func TestScoreCorrectAnswerByDifficulty(t *testing.T) {
	scorer := NewScorerService()
	cases := []struct {
		difficulty string
		want       int
	}{
		{model.DifficultyEasy, 1},
		{model.DifficultyMedium, 2},
		{model.DifficultyHard, 3},
	}
	for _, c := range cases {
		q := &model.Question{
			Options:       model.OptionMap{"A": "x", "B": "y"},
			CorrectOption: "B",
			Difficulty:    c.difficulty,
		}
		isCorrect, points := scorer.Score(q, "B")
		if !isCorrect {
			t.Fatalf("%s: expected correct answer", c.difficulty)
		}
		if points != c.want {
			t.Fatalf("%s: expected %d points, got %d", c.difficulty, c.want, points)
		}
	}
}

func TestScoreIncorrectAnswerAwardsZero(t *testing.T) {
	scorer := NewScorerService()
	q := &model.Question{CorrectOption: "A", Difficulty: model.DifficultyHard}

	isCorrect, points := scorer.Score(q, "B")
	if isCorrect || points != 0 {
		t.Fatalf("expected (false, 0), got (%v, %d)", isCorrect, points)
	}
}

func TestScoreIsCaseSensitive(t *testing.T) {
	scorer := NewScorerService()
	q := &model.Question{CorrectOption: "B", Difficulty: model.DifficultyMedium}

	if isCorrect, points := scorer.Score(q, "b"); isCorrect || points != 0 {
		t.Fatalf("lowercase answer must not match, got (%v, %d)", isCorrect, points)
	}
	if isCorrect, points := scorer.Score(q, " B"); isCorrect || points != 0 {
		t.Fatalf("padded answer must not match, got (%v, %d)", isCorrect, points)
	}
}

func TestScoreUnknownDifficultyAwardsZero(t *testing.T) {
	scorer := NewScorerService()
	q := &model.Question{CorrectOption: "A", Difficulty: "legendary"}

	isCorrect, points := scorer.Score(q, "A")
	if !isCorrect {
		t.Fatal("answer itself is correct")
	}
	if points != 0 {
		t.Fatalf("unknown difficulty must award 0 points, got %d", points)
	}
}
