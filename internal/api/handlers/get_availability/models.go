package get_availability

import (
	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	getAvailability "github.com/m04kA/SMC-AgendamentoService/internal/usecase/get_availability"
)

// DayAvailabilityResponse занятость одной даты
type DayAvailabilityResponse struct {
	Date        string   `json:"data"`
	FullPeriods []string `json:"periodosLotados"`
	FullyBooked bool     `json:"totalmenteOcupado"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Locality         string                    `json:"localidade"`
	Days             []DayAvailabilityResponse `json:"dias"`
	FullyBookedDates []string                  `json:"datasTotalmenteOcupadas"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Locality:         resp.Locality,
		Days:             make([]DayAvailabilityResponse, 0, len(resp.Days)),
		FullyBookedDates: make([]string, 0),
	}

	for _, day := range resp.Days {
		periods := make([]string, 0, len(day.FullPeriods))
		for _, p := range day.FullPeriods {
			periods = append(periods, string(p))
		}

		dateStr := day.Date.Format(domain.DateFormat)
		out.Days = append(out.Days, DayAvailabilityResponse{
			Date:        dateStr,
			FullPeriods: periods,
			FullyBooked: day.FullyBooked,
		})

		if day.FullyBooked {
			out.FullyBookedDates = append(out.FullyBookedDates, dateStr)
		}
	}

	return out
}
