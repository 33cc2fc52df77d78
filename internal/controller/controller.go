package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Talapoin/internal/apperror"
	"github.com/lshigami/Talapoin/internal/dto"
	"github.com/lshigami/Talapoin/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	userSvc          service.UserService
	questionSvc      service.QuestionService
	triviaSvc        service.TriviaService
	participationSvc service.ParticipationService
	rankingSvc       service.RankingService
	generatorSvc     service.QuestionGeneratorService
}

func NewController(
	userSvc service.UserService,
	questionSvc service.QuestionService,
	triviaSvc service.TriviaService,
	participationSvc service.ParticipationService,
	rankingSvc service.RankingService,
	generatorSvc service.QuestionGeneratorService,
) *Controller {
	return &Controller{
		userSvc:          userSvc,
		questionSvc:      questionSvc,
		triviaSvc:        triviaSvc,
		participationSvc: participationSvc,
		rankingSvc:       rankingSvc,
		generatorSvc:     generatorSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.RootHandler)
	router.GET("/health", ctrl.HealthHandler)

	apiV1 := router.Group("/api/v1")
	{
		users := apiV1.Group("/users")
		users.POST("", ctrl.CreateUserHandler)
		users.GET("", ctrl.GetAllUsersHandler)
		users.GET("/:id", ctrl.GetUserHandler)

		questions := apiV1.Group("/questions")
		questions.POST("", ctrl.CreateQuestionHandler)
		questions.GET("", ctrl.GetAllQuestionsHandler)
		questions.GET("/:id", ctrl.GetQuestionHandler)

		trivias := apiV1.Group("/trivias")
		trivias.POST("", ctrl.CreateTriviaHandler)
		trivias.GET("", ctrl.GetAllTriviasHandler)
		trivias.GET("/:id", ctrl.GetTriviaHandler)
		trivias.DELETE("/:id", ctrl.DeleteTriviaHandler)
		trivias.GET("/:id/users/:user_id/questions", ctrl.GetPlayerQuestionsHandler)
		trivias.GET("/:id/users/:user_id/score", ctrl.GetUserScoreHandler)
		trivias.POST("/:id/answers", ctrl.SubmitAnswerHandler)
		trivias.GET("/:id/ranking", ctrl.GetRankingHandler)

		admin := apiV1.Group("/admin")
		admin.POST("/questions/generate", ctrl.GenerateQuestionHandler)
	}
}

// RootHandler godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (ctrl *Controller) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Talapoin trivia API",
		"docs":    "/swagger/index.html",
	})
}

// HealthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseIDParam parses a path parameter as an unsigned id, responding 400 itself
// on malformed input.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP statuses. Anything outside the
// domain taxonomy is an internal error and is logged as such.
func respondError(c *gin.Context, err error) {
	status := apperror.StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		c.JSON(status, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
