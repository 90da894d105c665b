package reschedule_agendamento

import (
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	rescheduleAgendamento "github.com/m04kA/SMC-AgendamentoService/internal/usecase/reschedule_agendamento"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date   string `json:"date"`   // "2025-11-20"
	Period string `json:"period"` // "manha" | "tarde"
}

// AgendamentoResponse HTTP response model
type AgendamentoResponse struct {
	ID                 int64   `json:"id"`
	NoteNumber         string  `json:"noteNumber"`
	InstallationNumber string  `json:"installationNumber"`
	ResponsibleParty   string  `json:"responsibleParty"`
	Locality           string  `json:"locality"`
	OriginalDate       string  `json:"originalDate"`
	OriginalPeriod     string  `json:"originalPeriod"`
	CurrentDate        string  `json:"currentDate"`
	CurrentPeriod      string  `json:"currentPeriod"`
	Status             string  `json:"status"`
	RescheduleCount    int     `json:"rescheduleCount"`
	RescheduledAt      *string `json:"rescheduledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(noteNumber string) (*rescheduleAgendamento.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &rescheduleAgendamento.Request{
		NoteNumber: noteNumber,
		Date:       date,
		Period:     domain.Period(r.Period),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAgendamento.Response) *AgendamentoResponse {
	out := &AgendamentoResponse{
		ID:                 resp.ID,
		NoteNumber:         resp.NoteNumber,
		InstallationNumber: resp.InstallationNumber,
		ResponsibleParty:   resp.ResponsibleParty,
		Locality:           resp.Locality,
		OriginalDate:       resp.OriginalDate.Format(domain.DateFormat),
		OriginalPeriod:     string(resp.OriginalPeriod),
		CurrentDate:        resp.CurrentDate.Format(domain.DateFormat),
		CurrentPeriod:      string(resp.CurrentPeriod),
		Status:             resp.Status,
		RescheduleCount:    resp.RescheduleCount,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.RescheduledAt != nil {
		rescheduledStr := resp.RescheduledAt.Format(time.RFC3339)
		out.RescheduledAt = &rescheduledStr
	}

	return out
}
