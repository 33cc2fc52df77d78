package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Talapoin/internal/dto"
	"github.com/rs/zerolog/log"
)

// CreateTriviaHandler godoc
// @Summary Create a new trivia
// @Description Create a trivia and assign existing questions and users to it. All referenced ids must resolve; otherwise nothing is created.
// @Tags trivias
// @Accept json
// @Produce json
// @Param trivia body dto.CreateTriviaRequest true "Trivia data with question and user ids"
// @Success 201 {object} dto.TriviaResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unresolved ids"
// @Router /trivias [post]
func (ctrl *Controller) CreateTriviaHandler(c *gin.Context) {
	var req dto.CreateTriviaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateTriviaRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	triviaResp, err := ctrl.triviaSvc.CreateTrivia(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, triviaResp)
}

// GetAllTriviasHandler godoc
// @Summary List all trivias
// @Tags trivias
// @Produce json
// @Success 200 {array} dto.TriviaResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivias [get]
func (ctrl *Controller) GetAllTriviasHandler(c *gin.Context) {
	trivias, err := ctrl.triviaSvc.GetAllTrivias()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trivias)
}

// GetTriviaHandler godoc
// @Summary Get a trivia by ID
// @Description Retrieve a trivia with its assigned question and user ids
// @Tags trivias
// @Produce json
// @Param id path int true "Trivia ID"
// @Success 200 {object} dto.TriviaResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Trivia not found"
// @Router /trivias/{id} [get]
func (ctrl *Controller) GetTriviaHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	triviaResp, err := ctrl.triviaSvc.GetTrivia(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, triviaResp)
}

// DeleteTriviaHandler godoc
// @Summary Delete a trivia
// @Description Remove a trivia and its question/user assignments. Recorded answers are kept.
// @Tags trivias
// @Param id path int true "Trivia ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Trivia not found"
// @Router /trivias/{id} [delete]
func (ctrl *Controller) DeleteTriviaHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.triviaSvc.DeleteTrivia(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPlayerQuestionsHandler godoc
// @Summary Get a trivia's questions as seen by a player
// @Description Question list for an assigned user. Responses never include the correct option or the difficulty.
// @Tags participation
// @Produce json
// @Param id path int true "Trivia ID"
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.PlayerQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "User not assigned to this trivia"
// @Router /trivias/{id}/users/{user_id}/questions [get]
func (ctrl *Controller) GetPlayerQuestionsHandler(c *gin.Context) {
	triviaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	questions, err := ctrl.triviaSvc.GetPlayerQuestions(triviaID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}
