package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
	"github.com/google/uuid"
)

// HistoryEntry representa um cronograma persistido no histórico
type HistoryEntry struct {
	ID                string                `json:"id"`
	CreatedAt         time.Time             `json:"created_at"`
	StressLevel       int                   `json:"stress_level"`
	Mood              string                `json:"mood"`
	TotalTasks        int                   `json:"total_tasks"`
	ScheduledTasks    int                   `json:"scheduled_tasks"`
	TotalWorkHours    float64               `json:"total_work_hours"`
	AverageConfidence float64               `json:"average_confidence"`
	Result            *model.ScheduleResult `json:"result,omitempty"`
}

// HistoryRepository persiste cronogramas gerados no PostgreSQL.
// O motor de agendamento nunca acessa esta camada; apenas o service grava
// o resultado depois que o cronograma já foi produzido.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository cria um novo repositório de histórico
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Save grava um resultado completo e retorna o ID gerado
func (r *HistoryRepository) Save(ctx context.Context, result *model.ScheduleResult) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("serializar resultado: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO schedule_history
			(id, created_at, stress_level, mood, total_tasks, scheduled_tasks,
			 total_work_hours, average_confidence, result)
		VALUES ($1, NOW(), $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		id,
		result.StressAnalysis.Level,
		result.StressAnalysis.Mood,
		result.TaskAnalysis.TotalTasks,
		result.TaskAnalysis.ScheduledTasks,
		result.Insights.TotalWorkHours,
		result.Insights.AverageConfidence,
		payload,
	)
	if err != nil {
		return "", fmt.Errorf("inserir histórico: %w", err)
	}

	return id, nil
}

// List retorna as entradas mais recentes (sem o resultado completo)
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT id, created_at, stress_level, mood, total_tasks,
		       scheduled_tasks, total_work_hours, average_confidence
		FROM schedule_history
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listar histórico: %w", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.StressLevel, &e.Mood,
			&e.TotalTasks, &e.ScheduledTasks, &e.TotalWorkHours, &e.AverageConfidence); err != nil {
			return nil, fmt.Errorf("ler linha do histórico: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetByID retorna uma entrada completa, incluindo o resultado serializado
func (r *HistoryRepository) GetByID(ctx context.Context, id string) (*HistoryEntry, error) {
	query := `
		SELECT id, created_at, stress_level, mood, total_tasks,
		       scheduled_tasks, total_work_hours, average_confidence, result
		FROM schedule_history
		WHERE id = $1
	`

	var e HistoryEntry
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.CreatedAt, &e.StressLevel, &e.Mood,
		&e.TotalTasks, &e.ScheduledTasks, &e.TotalWorkHours, &e.AverageConfidence,
		&payload,
	)
	if err == sql.ErrNoRows {
		return nil, model.ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar histórico: %w", err)
	}

	var result model.ScheduleResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("desserializar resultado: %w", err)
	}
	e.Result = &result

	return &e, nil
}
