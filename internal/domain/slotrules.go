package domain

import (
	"errors"
	"time"
)

// Slot validation errors, in the order the rules are applied
var (
	// ErrNonBusinessDay requested date falls on a weekend
	ErrNonBusinessDay = errors.New("domain: date is not a business day")

	// ErrHorizonExceeded requested date is beyond the booking horizon
	ErrHorizonExceeded = errors.New("domain: date exceeds booking horizon")

	// ErrInsufficientLeadTime requested date is too close to today
	ErrInsufficientLeadTime = errors.New("domain: insufficient lead time")

	// ErrSlotFull slot already holds SlotCapacity non-completed bookings
	ErrSlotFull = errors.New("domain: slot is full")
)

// RescheduleBlock names the reason a booking cannot (or should not) be
// rescheduled. BlockLeadTimeExpired is advisory: it flags that the window
// to reschedule the current date has lapsed, but does not block the write
// path, which validates the new date on its own.
type RescheduleBlock string

const (
	BlockNone             RescheduleBlock = ""
	BlockAlreadyCompleted RescheduleBlock = "already_completed"
	BlockLimitReached     RescheduleBlock = "reschedule_limit_reached"
	BlockLeadTimeExpired  RescheduleBlock = "lead_time_expired"
)

// DateOnly truncates t to midnight, keeping its location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsBusinessDay reports whether t falls on Monday through Friday.
// Holidays are not excluded.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// AddBusinessDays advances base by n business days: a weekend base first
// rolls forward to Monday, then the date steps forward one calendar day at
// a time, counting only the steps that land on a weekday. The result is
// the same calendar date regardless of which weekend day the base falls
// on.
func AddBusinessDays(base time.Time, n int) time.Time {
	d := DateOnly(base)
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	for counted := 0; counted < n; {
		d = d.AddDate(0, 0, 1)
		if IsBusinessDay(d) {
			counted++
		}
	}
	return d
}

// ValidateSlot decides whether (date, period) is an admissible target for
// a new booking or a reschedule. Rules apply in order, first failure wins:
//
//  1. date must be a business day;
//  2. date must not exceed today + horizonDays calendar days
//     (horizonDays <= 0 disables the check);
//  3. date must be no earlier than today advanced by LeadBusinessDays
//     business days;
//  4. the slot must hold fewer than SlotCapacity non-completed bookings.
//
// today is passed in by the caller to keep the rules deterministic.
func ValidateSlot(date, today time.Time, occupancy, horizonDays int) error {
	d := DateOnly(date)
	t := DateOnly(today)

	if !IsBusinessDay(d) {
		return ErrNonBusinessDay
	}

	if horizonDays > 0 && d.After(t.AddDate(0, 0, horizonDays)) {
		return ErrHorizonExceeded
	}

	if d.Before(AddBusinessDays(t, LeadBusinessDays)) {
		return ErrInsufficientLeadTime
	}

	if occupancy >= SlotCapacity {
		return ErrSlotFull
	}

	return nil
}

// RescheduleBlockOf returns the first applicable reason the booking cannot
// be rescheduled, in priority order: already completed, reschedule limit
// reached, lead-time window expired (advisory). BlockNone means the
// booking is freely reschedulable.
func RescheduleBlockOf(b *Booking, today time.Time) RescheduleBlock {
	if b.IsCompleted() {
		return BlockAlreadyCompleted
	}
	if b.RescheduleCount >= MaxRescheduleCount {
		return BlockLimitReached
	}
	if DateOnly(b.CurrentDate).Before(AddBusinessDays(DateOnly(today), LeadBusinessDays)) {
		return BlockLeadTimeExpired
	}
	return BlockNone
}
