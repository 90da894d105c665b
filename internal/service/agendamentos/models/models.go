package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на список агендаментов бэк-офиса
type ListBookingsRequest struct {
	Locality *string    `json:"locality,omitempty"` // Фильтр по локалидаде (опционально)
	Status   *string    `json:"status,omitempty"`   // Фильтр по статусу (опционально)
	Date     *time.Time `json:"date,omitempty"`     // Фильтр по текущей дате (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Locality: r.Locality,
		Date:     r.Date,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// BulkDeleteRequest запрос на массовое удаление по номерам нотификаций
type BulkDeleteRequest struct {
	NoteNumbers []string `json:"noteNumbers"`
}

// Response модели

// BookingResponse ответ с данными агендаменто
type BookingResponse struct {
	ID                 int64   `json:"id"`
	NoteNumber         string  `json:"noteNumber"`
	InstallationNumber string  `json:"installationNumber"`
	ResponsibleParty   string  `json:"responsibleParty"`
	Locality           string  `json:"locality"`
	OriginalDate       string  `json:"originalDate"` // "2025-11-10"
	OriginalPeriod     string  `json:"originalPeriod"`
	CurrentDate        string  `json:"currentDate"`
	CurrentPeriod      string  `json:"currentPeriod"`
	Status             string  `json:"status"`
	RescheduleCount    int     `json:"rescheduleCount"`
	RescheduledAt      *string `json:"rescheduledAt,omitempty"` // ISO 8601
	CreatedAt          string  `json:"createdAt"`               // ISO 8601
}

// BookingDetailsResponse ответ GET по номеру нотификации:
// данные агендаменто плюс признак и причина блокировки переноса
type BookingDetailsResponse struct {
	BookingResponse
	Reschedulable bool    `json:"reagendavel"`
	BlockReason   *string `json:"motivoBloqueio,omitempty"`
}

// BookingListResponse ответ со списком агендаментов
type BookingListResponse struct {
	Bookings []BookingResponse `json:"agendamentos"`
}

// BulkDeleteResponse результат массового удаления
type BulkDeleteResponse struct {
	Deleted int64 `json:"excluidos"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		NoteNumber:         b.NoteNumber,
		InstallationNumber: b.InstallationNumber,
		ResponsibleParty:   b.ResponsibleParty,
		Locality:           b.Locality,
		OriginalDate:       b.OriginalDate.Format(domain.DateFormat),
		OriginalPeriod:     string(b.OriginalPeriod),
		CurrentDate:        b.CurrentDate.Format(domain.DateFormat),
		CurrentPeriod:      string(b.CurrentPeriod),
		Status:             string(b.Status),
		RescheduleCount:    b.RescheduleCount,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}

	if b.RescheduledAt != nil {
		rescheduledStr := b.RescheduledAt.Format(time.RFC3339)
		resp.RescheduledAt = &rescheduledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainBookingWithEligibility собирает детальный ответ с причиной
// блокировки переноса
func FromDomainBookingWithEligibility(b *domain.Booking, block domain.RescheduleBlock) *BookingDetailsResponse {
	resp := &BookingDetailsResponse{
		BookingResponse: *FromDomainBooking(b),
		Reschedulable:   block == domain.BlockNone,
	}

	if block != domain.BlockNone {
		reason := string(block)
		resp.BlockReason = &reason
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
