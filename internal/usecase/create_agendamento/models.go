package create_agendamento

import (
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

// Request модель запроса на создание агендаменто
type Request struct {
	NoteNumber         string        // Номер нотификации (709 + 8 цифр)
	InstallationNumber string        // Номер инсталляции
	ResponsibleParty   string        // Ответственный
	Locality           string        // Код локалидаде
	Date               time.Time     // Дата агендаменто (без времени)
	Period             domain.Period // Период (manha/tarde)
}

// Response модель ответа с созданным агендаменто
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
		CreatedAt:          b.CreatedAt,
	}
}
