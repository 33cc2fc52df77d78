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

type ParticipationService interface {
	SubmitAnswer(triviaID uint, req dto.SubmitAnswerRequest) (*dto.ParticipationResponse, error)
}

type participationService struct {
	triviaRepo        repository.TriviaRepository
	questionRepo      repository.QuestionRepository
	participationRepo repository.ParticipationRepository
	scorer            ScorerService
}

func NewParticipationService(
	triviaRepo repository.TriviaRepository,
	questionRepo repository.QuestionRepository,
	participationRepo repository.ParticipationRepository,
	scorer ScorerService,
) ParticipationService {
	return &participationService{
		triviaRepo:        triviaRepo,
		questionRepo:      questionRepo,
		participationRepo: participationRepo,
		scorer:            scorer,
	}
}

// SubmitAnswer runs the eligibility checks in a fixed order, each with its own
// failure mode, then scores the answer and records the participation:
//  1. trivia exists            -> 404
//  2. user assigned to trivia  -> 403
//  3. question in trivia       -> 400
//  4. not answered before      -> 400
//
// Callers rely on the first violated check being the one reported.
func (s *participationService) SubmitAnswer(triviaID uint, req dto.SubmitAnswerRequest) (*dto.ParticipationResponse, error) {
	if _, err := s.triviaRepo.FindByID(triviaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("trivia with ID %d not found", triviaID))
		}
		return nil, err
	}

	assigned, err := s.triviaRepo.UserAssigned(triviaID, req.UserID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperror.Forbidden("user is not assigned to this trivia")
	}

	inTrivia, err := s.triviaRepo.QuestionAssigned(triviaID, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if !inTrivia {
		return nil, apperror.BadRequest("question does not belong to this trivia")
	}

	answered, err := s.participationRepo.Exists(req.UserID, triviaID, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if answered {
		return nil, apperror.BadRequest("question already answered")
	}

	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("load question %d: %w", req.QuestionID, err)
	}

	isCorrect, points := s.scorer.Score(question, req.AnswerGiven)

	participation := model.Participation{
		UserID:        req.UserID,
		TriviaID:      triviaID,
		QuestionID:    req.QuestionID,
		AnswerGiven:   req.AnswerGiven,
		IsCorrect:     isCorrect,
		PointsAwarded: points,
	}
	if err := s.participationRepo.Create(&participation); err != nil {
		log.Error().Err(err).
			Uint("triviaID", triviaID).
			Uint("userID", req.UserID).
			Uint("questionID", req.QuestionID).
			Msg("Failed to record participation")
		return nil, err
	}

	var resp dto.ParticipationResponse
	copier.Copy(&resp, &participation)
	return &resp, nil
}
