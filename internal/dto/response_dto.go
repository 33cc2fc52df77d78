package dto

import "time"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type QuestionResponse struct {
	ID            uint              `json:"id"`
	Text          string            `json:"text"`
	Options       map[string]string `json:"options"`
	CorrectOption string            `json:"correct_option"`
	Difficulty    string            `json:"difficulty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// PlayerQuestionResponse is the question view exposed to players.
// It must never carry the correct option or the difficulty.
type PlayerQuestionResponse struct {
	ID      uint              `json:"id"`
	Text    string            `json:"text"`
	Options map[string]string `json:"options"`
}

type TriviaResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	QuestionIDs []uint    `json:"question_ids,omitempty"`
	UserIDs     []uint    `json:"user_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ParticipationResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	TriviaID      uint      `json:"trivia_id"`
	QuestionID    uint      `json:"question_id"`
	AnswerGiven   string    `json:"answer_given"`
	IsCorrect     bool      `json:"is_correct"`
	PointsAwarded int       `json:"points_awarded"`
	AnsweredAt    time.Time `json:"answered_at"`
}

type UserScoreResponse struct {
	UserID        uint `json:"user_id"`
	TriviaID      uint `json:"trivia_id"`
	TotalPoints   int  `json:"total_points"`
	TotalAnswered int  `json:"total_answered"`
	TotalCorrect  int  `json:"total_correct"`
}

type RankingEntry struct {
	Position    int    `json:"position"`
	UserID      uint   `json:"user_id"`
	UserName    string `json:"user_name"`
	TotalPoints int    `json:"total_points"`
}

type RankingResponse struct {
	TriviaID   uint           `json:"trivia_id"`
	TriviaName string         `json:"trivia_name"`
	Ranking    []RankingEntry `json:"ranking"`
}

// QuestionSuggestionResponse is an AI-generated draft in the same shape as
// CreateQuestionRequest so admins can POST it back unchanged.
type QuestionSuggestionResponse struct {
	Text          string            `json:"text"`
	Options       map[string]string `json:"options"`
	CorrectOption string            `json:"correct_option"`
	Difficulty    string            `json:"difficulty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
