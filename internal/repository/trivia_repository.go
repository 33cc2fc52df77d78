package repository

import (
	"fmt"

	"github.com/lshigami/Talapoin/internal/model"
	"gorm.io/gorm"
)

type TriviaRepository interface {
	CreateWithLinks(trivia *model.Trivia, questionIDs, userIDs []uint) error
	FindByID(id uint) (*model.Trivia, error)
	FindAll() ([]model.Trivia, error)
	Delete(id uint) error
	UserAssigned(triviaID, userID uint) (bool, error)
	QuestionAssigned(triviaID, questionID uint) (bool, error)
	FindUserLinks(triviaID uint) ([]model.TriviaUser, error)
	FindQuestionLinks(triviaID uint) ([]model.TriviaQuestion, error)
}

type triviaRepository struct {
	db *gorm.DB
}

func NewTriviaRepository(db *gorm.DB) TriviaRepository {
	return &triviaRepository{db: db}
}

// CreateWithLinks creates the trivia and one link row per referenced question
// and user in a single transaction, so a failure leaves no partial trivia.
func (r *triviaRepository) CreateWithLinks(trivia *model.Trivia, questionIDs, userIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trivia).Error; err != nil {
			return err
		}
		for _, questionID := range questionIDs {
			link := model.TriviaQuestion{TriviaID: trivia.ID, QuestionID: questionID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("link question %d: %w", questionID, err)
			}
		}
		for _, userID := range userIDs {
			link := model.TriviaUser{TriviaID: trivia.ID, UserID: userID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("link user %d: %w", userID, err)
			}
		}
		return nil
	})
}

func (r *triviaRepository) FindByID(id uint) (*model.Trivia, error) {
	var trivia model.Trivia
	if err := r.db.First(&trivia, id).Error; err != nil {
		return nil, err
	}
	return &trivia, nil
}

func (r *triviaRepository) FindAll() ([]model.Trivia, error) {
	var trivias []model.Trivia
	if err := r.db.Order("created_at desc").Find(&trivias).Error; err != nil {
		return nil, err
	}
	return trivias, nil
}

// Delete removes the trivia and both link collections in one transaction.
// Participation rows are intentionally retained.
func (r *triviaRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trivia_id = ?", id).Delete(&model.TriviaQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trivia_id = ?", id).Delete(&model.TriviaUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Trivia{}, id).Error
	})
}

func (r *triviaRepository) UserAssigned(triviaID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.TriviaUser{}).
		Where("trivia_id = ? AND user_id = ?", triviaID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *triviaRepository) QuestionAssigned(triviaID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.TriviaQuestion{}).
		Where("trivia_id = ? AND question_id = ?", triviaID, questionID).
		Count(&count).Error
	return count > 0, err
}

// FindUserLinks returns assignment links in insertion order; the ranking keeps
// this order for equal scores.
func (r *triviaRepository) FindUserLinks(triviaID uint) ([]model.TriviaUser, error) {
	var links []model.TriviaUser
	if err := r.db.Where("trivia_id = ?", triviaID).Order("id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *triviaRepository) FindQuestionLinks(triviaID uint) ([]model.TriviaQuestion, error) {
	var links []model.TriviaQuestion
	if err := r.db.Where("trivia_id = ?", triviaID).Order("id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
