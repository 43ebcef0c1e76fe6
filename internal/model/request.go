package model

// ScheduleRequest representa o payload de entrada para geração de cronograma.
// StressLevel (0-10) pode ser omitido quando StressText é enviado; nesse caso
// o nível é resolvido pelo estimador de estresse.
type ScheduleRequest struct {
	Tasks       []Task       `json:"tasks" binding:"required,min=1"`
	TimeWindows []TimeWindow `json:"time_windows" binding:"required,min=1"`
	StressLevel *int         `json:"stress_level,omitempty"`
	StressText  string       `json:"stress_text,omitempty"`
	Mood        string       `json:"mood,omitempty"`
}

// EstimateStressRequest representa o payload para estimativa de estresse
type EstimateStressRequest struct {
	Text string `json:"text" binding:"required"`
}

// Response representa a resposta padrão da API
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse representa uma resposta de erro
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
