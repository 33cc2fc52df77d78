package model

import (
	"time"

	"gorm.io/gorm"
)

type Trivia struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Name        string           `json:"name" gorm:"not null"`
	Description string           `json:"description,omitempty"`
	Questions   []TriviaQuestion `json:"questions,omitempty" gorm:"foreignKey:TriviaID;constraint:OnDelete:CASCADE;"`
	Users       []TriviaUser     `json:"users,omitempty" gorm:"foreignKey:TriviaID;constraint:OnDelete:CASCADE;"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TriviaQuestion links a question into a trivia.
type TriviaQuestion struct {
	ID         uint `gorm:"primarykey" json:"id"`
	TriviaID   uint `json:"trivia_id" gorm:"not null;index"`
	QuestionID uint `json:"question_id" gorm:"not null;index"`
}

// TriviaUser entitles a user to play a trivia.
type TriviaUser struct {
	ID       uint `gorm:"primarykey" json:"id"`
	TriviaID uint `json:"trivia_id" gorm:"not null;index"`
	UserID   uint `json:"user_id" gorm:"not null;index"`
}
