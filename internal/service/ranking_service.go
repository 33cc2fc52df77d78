package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lshigami/Talapoin/internal/apperror"
	"github.com/lshigami/Talapoin/internal/dto"
	"github.com/lshigami/Talapoin/internal/repository"
	"gorm.io/gorm"
)

type RankingService interface {
	GetRanking(triviaID uint) (*dto.RankingResponse, error)
	GetUserScore(triviaID, userID uint) (*dto.UserScoreResponse, error)
}

type rankingService struct {
	triviaRepo        repository.TriviaRepository
	userRepo          repository.UserRepository
	participationRepo repository.ParticipationRepository
}

func NewRankingService(
	triviaRepo repository.TriviaRepository,
	userRepo repository.UserRepository,
	participationRepo repository.ParticipationRepository,
) RankingService {
	return &rankingService{
		triviaRepo:        triviaRepo,
		userRepo:          userRepo,
		participationRepo: participationRepo,
	}
}

// GetRanking sums each assigned user's points and orders them descending.
// The sort is stable, so users with equal totals keep assignment order and
// still receive distinct consecutive positions.
func (s *rankingService) GetRanking(triviaID uint) (*dto.RankingResponse, error) {
	trivia, err := s.triviaRepo.FindByID(triviaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("trivia with ID %d not found", triviaID))
		}
		return nil, err
	}

	links, err := s.triviaRepo.FindUserLinks(triviaID)
	if err != nil {
		return nil, err
	}

	participations, err := s.participationRepo.FindByTrivia(triviaID)
	if err != nil {
		return nil, err
	}
	totals := make(map[uint]int, len(links))
	for _, p := range participations {
		totals[p.UserID] += p.PointsAwarded
	}

	userIDs := make([]uint, 0, len(links))
	for _, link := range links {
		userIDs = append(userIDs, link.UserID)
	}
	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	entries := make([]dto.RankingEntry, 0, len(links))
	for _, link := range links {
		entries = append(entries, dto.RankingEntry{
			UserID:      link.UserID,
			UserName:    names[link.UserID],
			TotalPoints: totals[link.UserID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Position = i + 1
	}

	return &dto.RankingResponse{
		TriviaID:   trivia.ID,
		TriviaName: trivia.Name,
		Ranking:    entries,
	}, nil
}

// GetUserScore totals one user's recorded answers for a trivia. Unknown ids
// yield zero totals rather than an error.
func (s *rankingService) GetUserScore(triviaID, userID uint) (*dto.UserScoreResponse, error) {
	participations, err := s.participationRepo.FindByTriviaAndUser(triviaID, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.UserScoreResponse{
		UserID:   userID,
		TriviaID: triviaID,
	}
	for _, p := range participations {
		resp.TotalPoints += p.PointsAwarded
		resp.TotalAnswered++
		if p.IsCorrect {
			resp.TotalCorrect++
		}
	}
	return &resp, nil
}
