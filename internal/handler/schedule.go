package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WathsalaM369/stress-management-coach/internal/logger"
	"github.com/WathsalaM369/stress-management-coach/internal/model"
	"github.com/WathsalaM369/stress-management-coach/internal/scheduler"
	"github.com/WathsalaM369/stress-management-coach/internal/service"
)

// ScheduleHandler manipula requisições de geração de cronograma
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

// NewScheduleHandler cria um novo handler de cronogramas
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// GenerateSchedule gera um cronograma otimizado
// @Summary      Gera cronograma otimizado
// @Description  Distribui tarefas nas janelas de tempo considerando o nível de estresse
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.ScheduleRequest true "Tarefas, janelas e contexto de estresse"
// @Success      200 {object} service.ScheduleOutput
// @Failure      400 {object} model.ErrorResponse
// @Failure      401 {object} model.ErrorResponse
// @Failure      500 {object} model.ErrorResponse
// @Router       /api/v1/schedule [post]
func (h *ScheduleHandler) GenerateSchedule(c *gin.Context) {
	var req model.ScheduleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Error:   "payload inválido",
			Details: err.Error(),
		})
		return
	}

	out, err := h.scheduleService.GenerateSchedule(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// handleError trata erros e retorna resposta apropriada
func (h *ScheduleHandler) handleError(c *gin.Context, err error) {
	log := logger.FromGin(c)

	switch {
	case errors.Is(err, scheduler.ErrNoTasks),
		errors.Is(err, scheduler.ErrNoTimeWindows),
		errors.Is(err, scheduler.ErrInvalidTimeWindow),
		errors.Is(err, scheduler.ErrInvalidStressLevel):
		log.Warn().Err(err).Msg("Requisição de cronograma inválida")
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Error:   "requisição inválida",
			Details: err.Error(),
		})
	default:
		log.Error().Err(err).Msg("Erro ao gerar cronograma")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Success: false,
			Error:   "erro interno",
			Details: err.Error(),
		})
	}
}
