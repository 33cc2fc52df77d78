package service

import (
	"testing"

	"github.com/lshigami/Talapoin/internal/apperror"
	"github.com/lshigami/Talapoin/internal/dto"
)

func TestCreateQuestion(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	resp, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Text:          "Best interview format?",
		Options:       map[string]string{"A": "Unstructured", "B": "Structured"},
		CorrectOption: "B",
		Difficulty:    "medium",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.ID == 0 || resp.CorrectOption != "B" || resp.Difficulty != "medium" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCreateQuestionEmptyOptions(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Text:          "No options",
		Options:       map[string]string{},
		CorrectOption: "A",
		Difficulty:    "easy",
	})
	wantKind(t, err, apperror.KindBadRequest)
}

func TestCreateQuestionCorrectOptionNotAKey(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Text:          "Mismatched key",
		Options:       map[string]string{"A": "x", "B": "y"},
		CorrectOption: "C",
		Difficulty:    "easy",
	})
	wantKind(t, err, apperror.KindBadRequest)
}

func TestCreateQuestionInvalidDifficulty(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Text:          "Too spicy",
		Options:       map[string]string{"A": "x"},
		CorrectOption: "A",
		Difficulty:    "legendary",
	})
	wantKind(t, err, apperror.KindBadRequest)
}

func TestGetQuestionNotFound(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	_, err := svc.GetQuestion(42)
	wantKind(t, err, apperror.KindNotFound)
}
