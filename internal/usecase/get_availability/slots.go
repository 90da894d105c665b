package get_availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

// buildAvailability агрегирует занятость слотов по датам.
// Период считается заполненным при достижении вместимости слота; дата
// считается полностью занятой, только когда заполнены все периоды.
func buildAvailability(slots []domain.SlotOccupancy) []domain.DayAvailability {
	fullByDate := make(map[time.Time][]domain.Period)

	for _, slot := range slots {
		if !slot.IsFull() {
			continue
		}
		key := domain.DateOnly(slot.Date)
		fullByDate[key] = append(fullByDate[key], slot.Period)
	}

	days := make([]domain.DayAvailability, 0, len(fullByDate))
	for date, fullPeriods := range fullByDate {
		days = append(days, domain.DayAvailability{
			Date:        date,
			FullPeriods: fullPeriods,
			FullyBooked: len(fullPeriods) == len(domain.AllPeriods),
		})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}
