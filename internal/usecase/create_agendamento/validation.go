package create_agendamento

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, localities []string) error {
	if strings.TrimSpace(req.NoteNumber) == "" {
		return fmt.Errorf("%w: noteNumber is required", ErrInvalidInput)
	}

	if !domain.IsValidNoteNumber(req.NoteNumber) {
		return ErrInvalidNoteNumber
	}

	if strings.TrimSpace(req.InstallationNumber) == "" {
		return fmt.Errorf("%w: installationNumber is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ResponsibleParty) == "" {
		return fmt.Errorf("%w: responsibleParty is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Locality) == "" {
		return fmt.Errorf("%w: locality is required", ErrInvalidInput)
	}

	if err := validateLocality(req.Locality, localities); err != nil {
		return err
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidPeriod(req.Period) {
		return ErrInvalidPeriod
	}

	return nil
}

// validateLocality проверяет локалидаде по настроенному списку.
// Пустой список означает открытое множество кодов.
func validateLocality(locality string, localities []string) error {
	if len(localities) == 0 {
		return nil
	}
	for _, l := range localities {
		if strings.EqualFold(l, locality) {
			return nil
		}
	}
	return ErrInvalidLocality
}

// mapSlotRulesError транслирует ошибки доменных правил в ошибки usecase
func mapSlotRulesError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNonBusinessDay):
		return ErrNonBusinessDay
	case errors.Is(err, domain.ErrHorizonExceeded):
		return ErrDateTooFarInFuture
	case errors.Is(err, domain.ErrInsufficientLeadTime):
		return ErrInsufficientLeadTime
	case errors.Is(err, domain.ErrSlotFull):
		return ErrSlotFull
	default:
		return fmt.Errorf("%w: unexpected slot rules error: %v", ErrInternal, err)
	}
}
