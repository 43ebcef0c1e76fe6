package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WathsalaM369/stress-management-coach/internal/logger"
	"github.com/WathsalaM369/stress-management-coach/internal/model"
	"github.com/WathsalaM369/stress-management-coach/internal/repository"
	"github.com/WathsalaM369/stress-management-coach/internal/service"
)

// HistoryHandler manipula consultas ao histórico de cronogramas
type HistoryHandler struct {
	historyRepo *repository.HistoryRepository
	excel       *service.ExcelGenerator
}

// NewHistoryHandler cria um novo handler de histórico
func NewHistoryHandler(historyRepo *repository.HistoryRepository, excel *service.ExcelGenerator) *HistoryHandler {
	return &HistoryHandler{
		historyRepo: historyRepo,
		excel:       excel,
	}
}

// List retorna os cronogramas mais recentes
// @Summary      Lista histórico de cronogramas
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Quantidade máxima de registros (padrão 20, máximo 100)"
// @Success      200 {array} repository.HistoryEntry
// @Failure      500 {object} model.ErrorResponse
// @Router       /api/v1/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.historyRepo.List(c.Request.Context(), limit)
	if err != nil {
		logger.FromGin(c).Error().Err(err).Msg("Erro ao consultar histórico")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Success: false,
			Error:   "erro ao consultar histórico",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(entries),
		"entries": entries,
	})
}

// GetByID retorna um cronograma específico com o resultado completo
// @Summary      Busca cronograma por ID
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID do cronograma"
// @Success      200 {object} repository.HistoryEntry
// @Failure      404 {object} model.ErrorResponse
// @Failure      500 {object} model.ErrorResponse
// @Router       /api/v1/history/{id} [get]
func (h *HistoryHandler) GetByID(c *gin.Context) {
	entry, err := h.historyRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Export gera um arquivo Excel com o cronograma
// @Summary      Exporta cronograma em Excel
// @Tags         history
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id path string true "ID do cronograma"
// @Success      200 {file} binary
// @Failure      404 {object} model.ErrorResponse
// @Failure      500 {object} model.ErrorResponse
// @Router       /api/v1/history/{id}/export [get]
func (h *HistoryHandler) Export(c *gin.Context) {
	entry, err := h.historyRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	buffer, err := h.excel.Generate(entry.Result)
	if err != nil {
		logger.FromGin(c).Error().Err(err).Msg("Erro ao gerar Excel")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Success: false,
			Error:   "erro ao gerar arquivo Excel",
			Details: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("cronograma_%s.xlsx", entry.CreatedAt.Format("2006-01-02_15-04-05"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	c.Header("X-Total-Tasks", fmt.Sprintf("%d", entry.TotalTasks))
	c.Header("X-Scheduled-Tasks", fmt.Sprintf("%d", entry.ScheduledTasks))

	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buffer.Bytes())
}

// handleError trata erros e retorna resposta apropriada
func (h *HistoryHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrScheduleNotFound) {
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Success: false,
			Error:   "cronograma não encontrado",
			Details: "verifique o ID informado",
		})
		return
	}

	logger.FromGin(c).Error().Err(err).Msg("Erro ao consultar histórico")
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{
		Success: false,
		Error:   "erro interno",
		Details: err.Error(),
	})
}
