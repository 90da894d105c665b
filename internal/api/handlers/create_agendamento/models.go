package create_agendamento

import (
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	createAgendamento "github.com/m04kA/SMC-AgendamentoService/internal/usecase/create_agendamento"
)

// CreateAgendamentoRequest HTTP request model
type CreateAgendamentoRequest struct {
	NoteNumber         string `json:"noteNumber"`
	InstallationNumber string `json:"installationNumber"`
	ResponsibleParty   string `json:"responsibleParty"`
	Locality           string `json:"locality"`
	Date               string `json:"date"`   // "2025-11-10"
	Period             string `json:"period"` // "manha" | "tarde"
}

// AgendamentoResponse HTTP response model
type AgendamentoResponse struct {
	ID                 int64  `json:"id"`
	NoteNumber         string `json:"noteNumber"`
	InstallationNumber string `json:"installationNumber"`
	ResponsibleParty   string `json:"responsibleParty"`
	Locality           string `json:"locality"`
	OriginalDate       string `json:"originalDate"`
	OriginalPeriod     string `json:"originalPeriod"`
	CurrentDate        string `json:"currentDate"`
	CurrentPeriod      string `json:"currentPeriod"`
	Status             string `json:"status"`
	RescheduleCount    int    `json:"rescheduleCount"`
	CreatedAt          string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAgendamentoRequest) ToUseCaseRequest() (*createAgendamento.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAgendamento.Request{
		NoteNumber:         r.NoteNumber,
		InstallationNumber: r.InstallationNumber,
		ResponsibleParty:   r.ResponsibleParty,
		Locality:           r.Locality,
		Date:               date,
		Period:             domain.Period(r.Period),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAgendamento.Response) *AgendamentoResponse {
	return &AgendamentoResponse{
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
}
