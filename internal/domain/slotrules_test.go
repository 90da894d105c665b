package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Reference week: 2025-11-07 is a Friday, 2025-11-10 a Monday.

func TestAddBusinessDays(t *testing.T) {
	tests := []struct {
		name     string
		base     time.Time
		n        int
		expected time.Time
	}{
		{
			name:     "friday plus two lands on tuesday",
			base:     date(2025, time.November, 7),
			n:        2,
			expected: date(2025, time.November, 11),
		},
		{
			name:     "saturday plus two lands on wednesday",
			base:     date(2025, time.November, 8),
			n:        2,
			expected: date(2025, time.November, 12),
		},
		{
			name:     "sunday plus two lands on wednesday",
			base:     date(2025, time.November, 9),
			n:        2,
			expected: date(2025, time.November, 12),
		},
		{
			name:     "monday plus two lands on wednesday",
			base:     date(2025, time.November, 10),
			n:        2,
			expected: date(2025, time.November, 12),
		},
		{
			name:     "thursday plus two skips the weekend",
			base:     date(2025, time.November, 6),
			n:        2,
			expected: date(2025, time.November, 10),
		},
		{
			name:     "zero days keeps a weekday base",
			base:     date(2025, time.November, 11),
			n:        0,
			expected: date(2025, time.November, 11),
		},
		{
			name:     "zero days rolls a weekend base to monday",
			base:     date(2025, time.November, 8),
			n:        0,
			expected: date(2025, time.November, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddBusinessDays(tt.base, tt.n))
		})
	}
}

func TestAddBusinessDaysAlwaysLandsOnWeekday(t *testing.T) {
	base := date(2025, time.November, 1)
	for i := 0; i < 14; i++ {
		result := AddBusinessDays(base.AddDate(0, 0, i), LeadBusinessDays)
		assert.True(t, IsBusinessDay(result), "base %s landed on %s",
			base.AddDate(0, 0, i).Weekday(), result.Weekday())
	}
}

func TestValidateSlot(t *testing.T) {
	today := date(2025, time.November, 10) // Monday

	tests := []struct {
		name        string
		slotDate    time.Time
		occupancy   int
		horizonDays int
		expected    error
	}{
		{
			name:        "saturday is rejected",
			slotDate:    date(2025, time.November, 15),
			occupancy:   0,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    ErrNonBusinessDay,
		},
		{
			name:        "sunday is rejected",
			slotDate:    date(2025, time.November, 16),
			occupancy:   0,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    ErrNonBusinessDay,
		},
		{
			name:        "weekend rejection wins over a full slot",
			slotDate:    date(2025, time.November, 15),
			occupancy:   5,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    ErrNonBusinessDay,
		},
		{
			name:        "date beyond the horizon is rejected",
			slotDate:    today.AddDate(0, 0, 31), // Thursday 2025-12-11
			occupancy:   0,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    ErrHorizonExceeded,
		},
		{
			name:        "horizon check is disabled when horizonDays is zero",
			slotDate:    today.AddDate(0, 0, 31),
			occupancy:   0,
			horizonDays: 0,
			expected:    nil,
		},
		{
			name:        "tomorrow violates the lead time",
			slotDate:    date(2025, time.November, 11),
			occupancy:   0,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    ErrInsufficientLeadTime,
		},
		{
			name:        "lead-time boundary date is accepted",
			slotDate:    date(2025, time.November, 12), // AddBusinessDays(monday, 2)
			occupancy:   0,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    nil,
		},
		{
			name:        "one existing booking leaves room",
			slotDate:    date(2025, time.November, 12),
			occupancy:   1,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    nil,
		},
		{
			name:        "slot at capacity is rejected",
			slotDate:    date(2025, time.November, 12),
			occupancy:   2,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    ErrSlotFull,
		},
		{
			name:        "slot over capacity is rejected",
			slotDate:    date(2025, time.November, 12),
			occupancy:   3,
			horizonDays: DefaultMaxAdvanceDays,
			expected:    ErrSlotFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlot(tt.slotDate, today, tt.occupancy, tt.horizonDays)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestRescheduleBlockOf(t *testing.T) {
	today := date(2025, time.November, 10) // Monday

	tests := []struct {
		name     string
		booking  Booking
		expected RescheduleBlock
	}{
		{
			name: "completed booking is blocked even with reschedules left",
			booking: Booking{
				Status:          StatusCompleted,
				RescheduleCount: 0,
				CurrentDate:     date(2025, time.November, 20),
			},
			expected: BlockAlreadyCompleted,
		},
		{
			name: "completed beats reschedule limit",
			booking: Booking{
				Status:          StatusCompleted,
				RescheduleCount: 1,
				CurrentDate:     date(2025, time.November, 20),
			},
			expected: BlockAlreadyCompleted,
		},
		{
			name: "single reschedule already used",
			booking: Booking{
				Status:          StatusRescheduled,
				RescheduleCount: 1,
				CurrentDate:     date(2025, time.November, 20),
			},
			expected: BlockLimitReached,
		},
		{
			name: "lead-time window lapsed is advisory",
			booking: Booking{
				Status:          StatusScheduled,
				RescheduleCount: 0,
				CurrentDate:     date(2025, time.November, 11),
			},
			expected: BlockLeadTimeExpired,
		},
		{
			name: "freely reschedulable",
			booking: Booking{
				Status:          StatusScheduled,
				RescheduleCount: 0,
				CurrentDate:     date(2025, time.November, 20),
			},
			expected: BlockNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RescheduleBlockOf(&tt.booking, today))
		})
	}
}

func TestIsValidNoteNumber(t *testing.T) {
	tests := []struct {
		note  string
		valid bool
	}{
		{"70912345678", true},
		{"07091234567", true},
		{"70812345678", false},
		{"7091234567", false},
		{"709123456789", false},
		{"7091234567a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidNoteNumber(tt.note))
		})
	}
}

func TestBookingCanBeRescheduled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusScheduled, RescheduleCount: 0}).CanBeRescheduled())
	assert.False(t, (&Booking{Status: StatusScheduled, RescheduleCount: 1}).CanBeRescheduled())
	assert.False(t, (&Booking{Status: StatusCompleted, RescheduleCount: 0}).CanBeRescheduled())
	assert.False(t, (&Booking{Status: StatusRescheduled, RescheduleCount: 1}).CanBeRescheduled())
}
