package model

// TaskPriority representa a prioridade de uma tarefa
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskType classifica o tipo de trabalho inferido do título da tarefa
type TaskType string

const (
	TaskTypeDeepWork       TaskType = "deep_work"
	TaskTypeCreative       TaskType = "creative"
	TaskTypeAdministrative TaskType = "administrative"
	TaskTypeRoutine        TaskType = "routine"
)

// Task representa uma tarefa a ser agendada
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// EstimatedDuration em minutos; 0 assume o default de 60
	EstimatedDuration int          `json:"estimated_duration"`
	Priority          TaskPriority `json:"priority"`
	Category          string       `json:"category"`
	// Deadline em RFC3339; vazio significa sem pressão de prazo.
	// Valores não parseáveis degradam para urgência mínima, não falham.
	Deadline   string `json:"deadline,omitempty"`
	IsFlexible *bool  `json:"is_flexible,omitempty"`
}

// DurationMinutes retorna a duração estimada aplicando o default de 60 minutos
func (t Task) DurationMinutes() int {
	if t.EstimatedDuration <= 0 {
		return 60
	}
	return t.EstimatedDuration
}

// Flexible indica se a tarefa pode ser adiada (default: true)
func (t Task) Flexible() bool {
	return t.IsFlexible == nil || *t.IsFlexible
}
