package domain

import "regexp"

// Period is the coarse time-of-day bucket a booking occupies
type Period string

const (
	PeriodManha Period = "manha"
	PeriodTarde Period = "tarde"
)

// AllPeriods lists every period offered per date.
// A date is fully booked only when all of them are at capacity.
var AllPeriods = []Period{PeriodManha, PeriodTarde}

// IsValidPeriod reports whether p is one of the offered periods
func IsValidPeriod(p Period) bool {
	for _, valid := range AllPeriods {
		if p == valid {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusScheduled, StatusRescheduled, StatusCompleted:
		return true
	}
	return false
}

// Business rule constants
const (
	// SlotCapacity максимум незавершённых агендаментов на слот (дата+период+локалидаде)
	SlotCapacity = 2

	// LeadBusinessDays минимальный запас рабочих дней до даты агендаменто
	LeadBusinessDays = 2

	// DefaultMaxAdvanceDays горизонт бронирования по умолчанию (календарные дни)
	DefaultMaxAdvanceDays = 30

	// MaxRescheduleCount допустимое число переносов на агендаменто
	MaxRescheduleCount = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// noteNumberPattern номер нотификации: 11 цифр, начинается с "709"
// (допускается ведущий ноль перед 709)
var noteNumberPattern = regexp.MustCompile(`^(?:709\d{8}|0709\d{7})$`)

// IsValidNoteNumber reports whether the note number matches the business
// format (11 digits starting with an optional zero and then 709)
func IsValidNoteNumber(note string) bool {
	return noteNumberPattern.MatchString(note)
}
