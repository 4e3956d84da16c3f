package domain

import "time"

// RunStatus representa o desfecho de uma execução do pipeline de receita
type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

// RunResult representa o resultado de uma execução do pipeline de atribuição
// de receita, disparada por agendamento ou manualmente
type RunResult struct {
	ID         string        `json:"id"`
	Status     RunStatus     `json:"status"`
	Message    string        `json:"message"`
	Output     string        `json:"output,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Duration   time.Duration `json:"-"`
}
