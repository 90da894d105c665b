package reschedule_agendamento

import (
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

// Request модель запроса на перенос агендаменто
type Request struct {
	NoteNumber string        // Номер нотификации существующего агендаменто
	Date       time.Time     // Новая дата
	Period     domain.Period // Новый период
}

// Response модель ответа с перенесённым агендаменто
type Response struct {
	ID                 int64
	NoteNumber         string
	InstallationNumber string
	ResponsibleParty   string
	Locality           string
	OriginalDate       time.Time
	OriginalPeriod     domain.Period
	CurrentDate        time.Time
	CurrentPeriod      domain.Period
	Status             string
	RescheduleCount    int
	RescheduledAt      *time.Time
	CreatedAt          time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:                 b.ID,
		NoteNumber:         b.NoteNumber,
		InstallationNumber: b.InstallationNumber,
		ResponsibleParty:   b.ResponsibleParty,
		Locality:           b.Locality,
		OriginalDate:       b.OriginalDate,
		OriginalPeriod:     b.OriginalPeriod,
		CurrentDate:        b.CurrentDate,
		CurrentPeriod:      b.CurrentPeriod,
		Status:             string(b.Status),
		RescheduleCount:    b.RescheduleCount,
		RescheduledAt:      b.RescheduledAt,
		CreatedAt:          b.CreatedAt,
	}
}
