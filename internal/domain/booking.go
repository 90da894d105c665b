package domain

import "time"

// BookingStatus represents the status of an inspection booking
type BookingStatus string

const (
	StatusScheduled   BookingStatus = "scheduled"
	StatusRescheduled BookingStatus = "rescheduled"
	StatusCompleted   BookingStatus = "completed"
)

// Booking represents a scheduled inspection slot.
// OriginalDate/OriginalPeriod are set at creation and never change;
// CurrentDate/CurrentPeriod move exactly once on a successful reschedule.
type Booking struct {
	ID                 int64
	NoteNumber         string
	InstallationNumber string
	ResponsibleParty   string
	Locality           string

	OriginalDate   time.Time
	OriginalPeriod Period
	CurrentDate    time.Time
	CurrentPeriod  Period

	Status          BookingStatus
	RescheduleCount int
	RescheduledAt   *time.Time

	CreatedAt time.Time
}

// IsCompleted returns true if the booking reached its terminal status
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// CanBeRescheduled returns true if the booking is still eligible for its
// single allowed reschedule
func (b *Booking) CanBeRescheduled() bool {
	return !b.IsCompleted() && b.RescheduleCount == 0
}

// CountsTowardsOccupancy returns true if the booking occupies capacity in
// its current slot
func (b *Booking) CountsTowardsOccupancy() bool {
	return b.Status != StatusCompleted
}

// BookingsFilter фильтр для выборки агендаментов в бэк-офисе
type BookingsFilter struct {
	Locality *string        // Фильтр по локалидаде (опционально)
	Status   *BookingStatus // Фильтр по статусу (опционально)
	Date     *time.Time     // Фильтр по текущей дате агендаменто (опционально)
}
