package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WathsalaM369/stress-management-coach/internal/logger"
	"github.com/WathsalaM369/stress-management-coach/internal/model"
	"github.com/WathsalaM369/stress-management-coach/internal/service"
)

// EstimateHandler manipula requisições de estimativa de estresse
type EstimateHandler struct {
	scheduleService *service.ScheduleService
}

// NewEstimateHandler cria um novo handler de estimativa
func NewEstimateHandler(scheduleService *service.ScheduleService) *EstimateHandler {
	return &EstimateHandler{
		scheduleService: scheduleService,
	}
}

// EstimateStress estima o nível de estresse a partir de texto livre
// @Summary      Estima nível de estresse
// @Description  Analisa um texto descrevendo como o usuário se sente e retorna score, nível e humor
// @Tags         stress
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.EstimateStressRequest true "Texto para análise"
// @Success      200 {object} estimator.Result
// @Failure      400 {object} model.ErrorResponse
// @Failure      401 {object} model.ErrorResponse
// @Router       /api/v1/estimate-stress [post]
func (h *EstimateHandler) EstimateStress(c *gin.Context) {
	var req model.EstimateStressRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Error:   "payload inválido",
			Details: err.Error(),
		})
		return
	}

	result, err := h.scheduleService.EstimateStress(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, model.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{
				Success: false,
				Error:   "requisição inválida",
				Details: err.Error(),
			})
			return
		}

		logger.FromGin(c).Error().Err(err).Msg("Erro ao estimar estresse")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Success: false,
			Error:   "erro interno",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
