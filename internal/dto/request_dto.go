package dto

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreateQuestionRequest struct {
	Text          string            `json:"text" binding:"required"`
	Options       map[string]string `json:"options" binding:"required"`
	CorrectOption string            `json:"correct_option" binding:"required"`
	Difficulty    string            `json:"difficulty" binding:"required,oneof=easy medium hard"`
}

type CreateTriviaRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	QuestionIDs []uint `json:"question_ids" binding:"required,min=1"`
	UserIDs     []uint `json:"user_ids" binding:"required,min=1"`
}

type SubmitAnswerRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	QuestionID  uint   `json:"question_id" binding:"required"`
	AnswerGiven string `json:"answer_given" binding:"required"`
}

// GenerateQuestionRequest asks the AI generator for a draft question.
// The draft is returned for review, never persisted directly.
type GenerateQuestionRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard"`
}
