package domain

import "time"

// SlotOccupancy holds the number of non-completed bookings occupying a
// (date, period) slot within a locality
type SlotOccupancy struct {
	Date   time.Time
	Period Period
	Count  int
}

// IsFull returns true if the slot has no remaining capacity
func (s *SlotOccupancy) IsFull() bool {
	return s.Count >= SlotCapacity
}

// DayAvailability aggregates slot occupancy for a single date
type DayAvailability struct {
	Date        time.Time
	FullPeriods []Period // Periods at or over capacity
	FullyBooked bool     // True when every offered period is full
}
