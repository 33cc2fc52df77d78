package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Talapoin/internal/dto"
	"github.com/rs/zerolog/log"
)

// CreateQuestionHandler godoc
// @Summary Create a new question
// @Description Add a multiple-choice question. The correct option must be one of the option keys and difficulty one of easy, medium, hard.
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or question invariants violated"
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	questionResp, err := ctrl.questionSvc.CreateQuestion(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, questionResp)
}

// GetAllQuestionsHandler godoc
// @Summary List all questions
// @Tags questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (ctrl *Controller) GetAllQuestionsHandler(c *gin.Context) {
	questions, err := ctrl.questionSvc.GetAllQuestions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionHandler godoc
// @Summary Get a question by ID
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	questionResp, err := ctrl.questionSvc.GetQuestion(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questionResp)
}

// GenerateQuestionHandler godoc
// @Summary (Admin) Generate a question draft with AI
// @Description Drafts a multiple-choice question for the given topic and difficulty. The draft is not persisted; review it and POST it to /questions.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionRequest true "Topic and difficulty"
// @Success 200 {object} dto.QuestionSuggestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 503 {object} dto.ErrorResponse "Generator not configured"
// @Router /admin/questions/generate [post]
func (ctrl *Controller) GenerateQuestionHandler(c *gin.Context) {
	var req dto.GenerateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	suggestion, err := ctrl.generatorSvc.GenerateQuestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
