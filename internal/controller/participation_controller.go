package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Talapoin/internal/dto"
	"github.com/rs/zerolog/log"
)

// SubmitAnswerHandler godoc
// @Summary Submit an answer for a trivia question
// @Description Validates eligibility, scores the answer by question difficulty and records the participation. Each (user, trivia, question) triple may be answered once.
// @Tags participation
// @Accept json
// @Produce json
// @Param id path int true "Trivia ID"
// @Param answer body dto.SubmitAnswerRequest true "Answer data"
// @Success 201 {object} dto.ParticipationResponse
// @Failure 400 {object} dto.ErrorResponse "Question not in trivia, or already answered"
// @Failure 403 {object} dto.ErrorResponse "User not assigned to this trivia"
// @Failure 404 {object} dto.ErrorResponse "Trivia not found"
// @Router /trivias/{id}/answers [post]
func (ctrl *Controller) SubmitAnswerHandler(c *gin.Context) {
	triviaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	participation, err := ctrl.participationSvc.SubmitAnswer(triviaID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, participation)
}

// GetUserScoreHandler godoc
// @Summary Get one user's score in a trivia
// @Description Total points, answered count and correct count for one user
// @Tags participation
// @Produce json
// @Param id path int true "Trivia ID"
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserScoreResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /trivias/{id}/users/{user_id}/score [get]
func (ctrl *Controller) GetUserScoreHandler(c *gin.Context) {
	triviaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	score, err := ctrl.rankingSvc.GetUserScore(triviaID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

// GetRankingHandler godoc
// @Summary Get the ranking for a trivia
// @Description All assigned users ordered by total points descending. Positions are distinct consecutive integers, ties keep assignment order.
// @Tags participation
// @Produce json
// @Param id path int true "Trivia ID"
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Trivia not found"
// @Router /trivias/{id}/ranking [get]
func (ctrl *Controller) GetRankingHandler(c *gin.Context) {
	triviaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ranking, err := ctrl.rankingSvc.GetRanking(triviaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}
