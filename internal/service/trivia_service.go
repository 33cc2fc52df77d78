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

type TriviaService interface {
	CreateTrivia(req dto.CreateTriviaRequest) (*dto.TriviaResponse, error)
	GetTrivia(id uint) (*dto.TriviaResponse, error)
	GetAllTrivias() ([]dto.TriviaResponse, error)
	DeleteTrivia(id uint) error
	GetPlayerQuestions(triviaID, userID uint) ([]dto.PlayerQuestionResponse, error)
}

type triviaService struct {
	triviaRepo   repository.TriviaRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewTriviaService(
	triviaRepo repository.TriviaRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
) TriviaService {
	return &triviaService{
		triviaRepo:   triviaRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

// CreateTrivia validates every referenced id, then creates the trivia and both
// link collections atomically. A failed creation leaves no partial record.
func (s *triviaService) CreateTrivia(req dto.CreateTriviaRequest) (*dto.TriviaResponse, error) {
	questions, err := s.questionRepo.FindByIDs(req.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve question ids: %w", err)
	}
	if len(questions) != len(uniqueIDs(req.QuestionIDs)) {
		return nil, apperror.BadRequest("some question does not exist")
	}

	users, err := s.userRepo.FindByIDs(req.UserIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve user ids: %w", err)
	}
	if len(users) != len(uniqueIDs(req.UserIDs)) {
		return nil, apperror.BadRequest("some user does not exist")
	}

	trivia := model.Trivia{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.triviaRepo.CreateWithLinks(&trivia, req.QuestionIDs, req.UserIDs); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create trivia")
		return nil, err
	}

	return &dto.TriviaResponse{
		ID:          trivia.ID,
		Name:        trivia.Name,
		Description: trivia.Description,
		QuestionIDs: req.QuestionIDs,
		UserIDs:     req.UserIDs,
		CreatedAt:   trivia.CreatedAt,
	}, nil
}

func (s *triviaService) GetTrivia(id uint) (*dto.TriviaResponse, error) {
	trivia, err := s.triviaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("trivia with ID %d not found", id))
		}
		return nil, err
	}

	questionLinks, err := s.triviaRepo.FindQuestionLinks(id)
	if err != nil {
		return nil, err
	}
	userLinks, err := s.triviaRepo.FindUserLinks(id)
	if err != nil {
		return nil, err
	}

	resp := dto.TriviaResponse{
		ID:          trivia.ID,
		Name:        trivia.Name,
		Description: trivia.Description,
		CreatedAt:   trivia.CreatedAt,
	}
	for _, link := range questionLinks {
		resp.QuestionIDs = append(resp.QuestionIDs, link.QuestionID)
	}
	for _, link := range userLinks {
		resp.UserIDs = append(resp.UserIDs, link.UserID)
	}
	return &resp, nil
}

func (s *triviaService) GetAllTrivias() ([]dto.TriviaResponse, error) {
	trivias, err := s.triviaRepo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TriviaResponse, 0, len(trivias))
	copier.Copy(&resp, &trivias)
	return resp, nil
}

// DeleteTrivia removes the trivia and its link collections. Participation rows
// are retained, matching the recorded-answers-survive-the-quiz behavior.
func (s *triviaService) DeleteTrivia(id uint) error {
	if _, err := s.triviaRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound(fmt.Sprintf("trivia with ID %d not found", id))
		}
		return err
	}
	return s.triviaRepo.Delete(id)
}

// GetPlayerQuestions returns the trivia's questions for an assigned user,
// stripped of the correct option and the difficulty.
func (s *triviaService) GetPlayerQuestions(triviaID, userID uint) ([]dto.PlayerQuestionResponse, error) {
	assigned, err := s.triviaRepo.UserAssigned(triviaID, userID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperror.NotFound("user is not assigned to this trivia")
	}

	questions, err := s.questionRepo.FindByTriviaID(triviaID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.PlayerQuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, dto.PlayerQuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return resp, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
