package model

import "time"

// TimeWindow representa um bloco de tempo disponível para agendamento
type TimeWindow struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Label     string    `json:"label,omitempty"`
}

// DurationMinutes retorna a duração do bloco em minutos (arredondada, nunca negativa)
func (w TimeWindow) DurationMinutes() int {
	minutes := int(w.EndTime.Sub(w.StartTime).Round(time.Minute) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// Valid indica se o bloco tem duração positiva
func (w TimeWindow) Valid() bool {
	return w.EndTime.After(w.StartTime)
}
