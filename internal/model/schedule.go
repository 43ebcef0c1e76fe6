package model

// ScheduleStatus representa o estado final de um item do cronograma
type ScheduleStatus string

const (
	StatusComplete     ScheduleStatus = "complete"
	StatusPartial      ScheduleStatus = "partial"
	StatusScaled       ScheduleStatus = "scaled"
	StatusNotScheduled ScheduleStatus = "not_scheduled"
)

// StressContext carrega o nível de estresse e humor usados no agendamento
type StressContext struct {
	Level int    `json:"level"`
	Mood  string `json:"mood,omitempty"`
}

// ScheduleItem representa a alocação (ou não) de uma tarefa em um bloco.
// Existe exatamente um item por tarefa de entrada; Window é nil quando a
// tarefa não foi agendada.
type ScheduleItem struct {
	Task             Task           `json:"task"`
	Window           *TimeWindow    `json:"window,omitempty"`
	AllocatedMinutes int            `json:"allocated_minutes"`
	Status           ScheduleStatus `json:"status"`
	Confidence       float64        `json:"confidence"`
	DeadlineUrgency  float64        `json:"deadline_urgency"`
	Notes            []string       `json:"notes"`
}

// Scheduled indica se a tarefa recebeu algum tempo alocado
func (i ScheduleItem) Scheduled() bool {
	return i.AllocatedMinutes > 0
}

// StressAnalysis resume o impacto do estresse no agendamento
type StressAnalysis struct {
	Level              int      `json:"level"`
	Mood               string   `json:"mood,omitempty"`
	Impact             string   `json:"impact"`
	RecommendedActions []string `json:"recommended_actions"`
}

// TaskAnalysis resume a contagem de tarefas do cronograma
type TaskAnalysis struct {
	TotalTasks     int `json:"total_tasks"`
	ScheduledTasks int `json:"scheduled_tasks"`
}

// WorkloadAlert sinaliza cronogramas que excedem limites saudáveis de trabalho
type WorkloadAlert struct {
	Type            string  `json:"type"`
	Message         string  `json:"message"`
	SuggestedAction string  `json:"suggested_action"`
	TotalWorkHours  float64 `json:"total_work_hours"`
	StressLevel     int     `json:"stress_level"`
}

// PostponementSuggestion sugere adiar uma tarefa quando o estresse está muito alto
type PostponementSuggestion struct {
	TaskID           string `json:"task_id"`
	TaskTitle        string `json:"task_title"`
	Reason           string `json:"reason"`
	SuggestedNewTime string `json:"suggested_new_time"`
}

// Insights agrega as métricas e recomendações do cronograma final
type Insights struct {
	TotalWorkHours          float64                  `json:"total_work_hours"`
	AverageConfidence       float64                  `json:"average_confidence"`
	Recommendations         []string                 `json:"recommendations"`
	WorkloadAlerts          []WorkloadAlert          `json:"workload_alerts"`
	PostponementSuggestions []PostponementSuggestion `json:"postponement_suggestions"`
}

// ScheduleResult é o resultado completo de uma chamada de agendamento.
// Items preserva a ordem das tarefas de entrada, não a ordem de prioridade.
type ScheduleResult struct {
	Items          []ScheduleItem `json:"items"`
	StressAnalysis StressAnalysis `json:"stress_analysis"`
	TaskAnalysis   TaskAnalysis   `json:"task_analysis"`
	Insights       Insights       `json:"insights"`
}
