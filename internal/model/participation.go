package model

import (
	"time"
)

// Participation records one answer by one user to one question within one trivia.
// Rows are never updated or deleted; the composite unique index closes the
// duplicate-submission race left open by the check-then-insert sequence.
type Participation struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_participation_once"`
	TriviaID      uint      `json:"trivia_id" gorm:"not null;uniqueIndex:idx_participation_once"`
	QuestionID    uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_participation_once"`
	AnswerGiven   string    `json:"answer_given" gorm:"not null"`
	IsCorrect     bool      `json:"is_correct"`
	PointsAwarded int       `json:"points_awarded"`
	AnsweredAt    time.Time `json:"answered_at" gorm:"autoCreateTime"`
}
