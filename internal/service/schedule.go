package service

import (
	"context"
	"strings"

	"github.com/WathsalaM369/stress-management-coach/internal/estimator"
	"github.com/WathsalaM369/stress-management-coach/internal/logger"
	"github.com/WathsalaM369/stress-management-coach/internal/metrics"
	"github.com/WathsalaM369/stress-management-coach/internal/model"
	"github.com/WathsalaM369/stress-management-coach/internal/repository"
	"github.com/WathsalaM369/stress-management-coach/internal/scheduler"
	"github.com/WathsalaM369/stress-management-coach/internal/websocket"
)

// defaultStressLevel é usado quando a requisição não traz nível nem texto
const defaultStressLevel = 5

// ScheduleService orquestra a geração de cronogramas: resolve o contexto
// de estresse, executa o motor de agendamento e cuida dos efeitos
// colaterais (histórico e eventos). O motor em si permanece puro.
type ScheduleService struct {
	engine  *scheduler.Engine
	history *repository.HistoryRepository // nil desabilita persistência
	hub     *websocket.Hub                // nil desabilita eventos
}

// NewScheduleService cria um novo serviço de agendamento
func NewScheduleService(engine *scheduler.Engine, history *repository.HistoryRepository, hub *websocket.Hub) *ScheduleService {
	return &ScheduleService{
		engine:  engine,
		history: history,
		hub:     hub,
	}
}

// ScheduleOutput contém o resultado e, quando persistido, o ID no histórico
type ScheduleOutput struct {
	Result    *model.ScheduleResult `json:"result"`
	HistoryID string                `json:"history_id,omitempty"`
}

// GenerateSchedule resolve o contexto de estresse e gera o cronograma
func (s *ScheduleService) GenerateSchedule(ctx context.Context, req model.ScheduleRequest) (*ScheduleOutput, error) {
	log := logger.Get(ctx)

	stress := s.resolveStress(req)
	log.Info().
		Int("tasks", len(req.Tasks)).
		Int("windows", len(req.TimeWindows)).
		Int("stress_level", stress.Level).
		Str("mood", stress.Mood).
		Msg("Iniciando geração de cronograma")

	result, err := s.engine.Schedule(req.Tasks, req.TimeWindows, stress)
	if err != nil {
		metrics.Global().RecordSchedule(false)
		return nil, err
	}
	metrics.Global().RecordSchedule(true)

	log.Info().
		Int("scheduled", result.TaskAnalysis.ScheduledTasks).
		Int("total", result.TaskAnalysis.TotalTasks).
		Float64("work_hours", result.Insights.TotalWorkHours).
		Msg("Cronograma gerado")

	out := &ScheduleOutput{Result: result}

	// Persistência nunca falha a requisição: o cronograma já foi gerado
	if s.history != nil {
		id, err := s.history.Save(ctx, result)
		if err != nil {
			log.Error().Err(err).Msg("Erro ao persistir cronograma no histórico")
		} else {
			out.HistoryID = id
		}
	}

	if s.hub != nil {
		s.hub.BroadcastSchedule(websocket.ScheduleEvent{
			ScheduleID:        out.HistoryID,
			StressLevel:       result.StressAnalysis.Level,
			TotalTasks:        result.TaskAnalysis.TotalTasks,
			ScheduledTasks:    result.TaskAnalysis.ScheduledTasks,
			TotalWorkHours:    result.Insights.TotalWorkHours,
			AverageConfidence: result.Insights.AverageConfidence,
		})
	}

	return out, nil
}

// EstimateStress analisa um texto livre e retorna a estimativa de estresse
func (s *ScheduleService) EstimateStress(ctx context.Context, text string) (estimator.Result, error) {
	if strings.TrimSpace(text) == "" {
		return estimator.Result{}, model.ErrEmptyText
	}

	metrics.Global().RecordStressEstimate()
	result := estimator.Estimate(text)

	logger.Get(ctx).Info().
		Float64("stress_score", result.StressScore).
		Str("stress_level", result.StressLevel).
		Str("mood", result.Mood).
		Msg("Estresse estimado a partir de texto")

	return result, nil
}

// resolveStress determina o nível e humor efetivos da requisição: nível
// explícito tem precedência; na ausência dele o texto é analisado; sem
// nenhum dos dois assume-se estresse médio.
func (s *ScheduleService) resolveStress(req model.ScheduleRequest) model.StressContext {
	stress := model.StressContext{Level: defaultStressLevel, Mood: req.Mood}

	switch {
	case req.StressLevel != nil:
		stress.Level = *req.StressLevel
	case strings.TrimSpace(req.StressText) != "":
		estimate := estimator.Estimate(req.StressText)
		stress.Level = estimate.Level()
		if stress.Mood == "" {
			stress.Mood = estimate.Mood
		}
	}

	return stress
}
