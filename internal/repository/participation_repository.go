package repository

import (
	"github.com/lshigami/Talapoin/internal/model"
	"gorm.io/gorm"
)

type ParticipationRepository interface {
	Create(participation *model.Participation) error
	Exists(userID, triviaID, questionID uint) (bool, error)
	FindByTrivia(triviaID uint) ([]model.Participation, error)
	FindByTriviaAndUser(triviaID, userID uint) ([]model.Participation, error)
}

type participationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) Create(participation *model.Participation) error {
	return r.db.Create(participation).Error
}

func (r *participationRepository) Exists(userID, triviaID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Participation{}).
		Where("user_id = ? AND trivia_id = ? AND question_id = ?", userID, triviaID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *participationRepository) FindByTrivia(triviaID uint) ([]model.Participation, error) {
	var participations []model.Participation
	if err := r.db.Where("trivia_id = ?", triviaID).Find(&participations).Error; err != nil {
		return nil, err
	}
	return participations, nil
}

func (r *participationRepository) FindByTriviaAndUser(triviaID, userID uint) ([]model.Participation, error) {
	var participations []model.Participation
	err := r.db.
		Where("trivia_id = ? AND user_id = ?", triviaID, userID).
		Order("answered_at asc").
		Find(&participations).Error
	if err != nil {
		return nil, err
	}
	return participations, nil
}
