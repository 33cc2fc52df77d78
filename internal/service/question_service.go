package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Talapoin/internal/apperror"
	"github.com/lshigami/Talapoin/internal/dto"
	"github.com/lshigami/Talapoin/internal/model"
	"github.com/lshigami/Talapoin/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	GetAllQuestions() ([]dto.QuestionResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if len(req.Options) == 0 {
		return nil, apperror.BadRequest("options must not be empty")
	}
	if _, ok := req.Options[req.CorrectOption]; !ok {
		return nil, apperror.BadRequest("correct_option must be one of the option keys")
	}
	if !model.ValidDifficulty(req.Difficulty) {
		return nil, apperror.BadRequest("difficulty must be one of: easy, medium, hard")
	}

	question := model.Question{
		Text:          req.Text,
		Options:       model.OptionMap(req.Options),
		CorrectOption: req.CorrectOption,
		Difficulty:    req.Difficulty,
	}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("question with ID %d not found", id))
		}
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}
