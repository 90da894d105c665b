package agendamento

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	"github.com/m04kA/SMC-AgendamentoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendamentoService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"note_number",
	"installation_number",
	"responsible_party",
	"locality",
	"original_date",
	"original_period",
	"booking_date",
	"booking_period",
	"status",
	"reschedule_count",
	"rescheduled_at",
	"created_at",
}

// Repository репозиторий для работы с агендаментами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория агендаментов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый агендаменто.
// Уникальность номера нотификации обеспечивается констрейнтом в БД;
// нарушение транслируется в ErrDuplicateNoteNumber.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("agendamentos").
		Columns(
			"note_number",
			"installation_number",
			"responsible_party",
			"locality",
			"original_date",
			"original_period",
			"booking_date",
			"booking_period",
			"status",
			"reschedule_count",
		).
		Values(
			booking.NoteNumber,
			booking.InstallationNumber,
			booking.ResponsibleParty,
			booking.Locality,
			booking.OriginalDate,
			booking.OriginalPeriod,
			booking.CurrentDate,
			booking.CurrentPeriod,
			booking.Status,
			booking.RescheduleCount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateNoteNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByNoteNumber получает агендаменто по номеру нотификации
func (r *Repository) GetByNoteNumber(ctx context.Context, noteNumber string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("agendamentos").
		Where(squirrel.Eq{"note_number": noteNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNoteNumber - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNoteNumber - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// CountSlot подсчитывает незавершённые агендаменты в слоте (дата+период+локалидаде).
// Внутри транзакции строки блокируются через FOR UPDATE, чтобы проверка
// вместимости и последующая запись были атомарными.
func (r *Repository) CountSlot(ctx context.Context, date time.Time, period domain.Period, locality string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("agendamentos").
		Where(squirrel.Eq{
			"booking_date":   date,
			"booking_period": period,
			"locality":       locality,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCompleted})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountSlot - scan row: %v", ErrScanRow, err)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountSlot - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListWithFilter получает агендаменты с фильтрацией по локалидаде, статусу и дате
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("agendamentos")

	if filter.Locality != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"locality": *filter.Locality})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC", "booking_period ASC", "created_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Reschedule выполняет единственный разрешённый перенос агендаменто.
// Условный UPDATE защищает инварианты: завершённый или уже перенесённый
// агендаменто не затрагивается, и тогда возвращается ErrNotReschedulable.
func (r *Repository) Reschedule(ctx context.Context, noteNumber string, date time.Time, period domain.Period) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("agendamentos").
		Set("booking_date", date).
		Set("booking_period", period).
		Set("status", domain.StatusRescheduled).
		Set("reschedule_count", squirrel.Expr("reschedule_count + 1")).
		Set("rescheduled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"note_number": noteNumber, "reschedule_count": 0}).
		Where(squirrel.NotEq{"status": domain.StatusCompleted}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotReschedulable
	}

	return nil
}

// Complete переводит агендаменто в терминальный статус completed
func (r *Repository) Complete(ctx context.Context, noteNumber string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("agendamentos").
		Set("status", domain.StatusCompleted).
		Where(squirrel.Eq{"note_number": noteNumber}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Complete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет агендаменто (физическое удаление, только бэк-офис)
func (r *Repository) Delete(ctx context.Context, noteNumber string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("agendamentos").
		Where(squirrel.Eq{"note_number": noteNumber}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteByNoteNumbers удаляет пачку агендаментов, возвращает число удалённых
func (r *Repository) DeleteByNoteNumbers(ctx context.Context, noteNumbers []string) (int64, error) {
	if len(noteNumbers) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("agendamentos").
		Where(squirrel.Eq{"note_number": noteNumbers}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByNoteNumbers - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByNoteNumbers - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByNoteNumbers - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// OccupiedSlots возвращает занятость слотов по локалидаде, начиная с fromDate.
// Учитываются только незавершённые агендаменты.
func (r *Repository) OccupiedSlots(ctx context.Context, locality string, fromDate time.Time) ([]domain.SlotOccupancy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_date", "booking_period", "COUNT(*)").
		From("agendamentos").
		Where(squirrel.Eq{"locality": locality}).
		Where(squirrel.GtOrEq{"booking_date": fromDate}).
		Where(squirrel.NotEq{"status": domain.StatusCompleted}).
		GroupBy("booking_date", "booking_period").
		OrderBy("booking_date ASC", "booking_period ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.SlotOccupancy, 0)
	for rows.Next() {
		var slot domain.SlotOccupancy
		if err := rows.Scan(&slot.Date, &slot.Period, &slot.Count); err != nil {
			return nil, fmt.Errorf("%w: OccupiedSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.NoteNumber,
		&booking.InstallationNumber,
		&booking.ResponsibleParty,
		&booking.Locality,
		&booking.OriginalDate,
		&booking.OriginalPeriod,
		&booking.CurrentDate,
		&booking.CurrentPeriod,
		&booking.Status,
		&booking.RescheduleCount,
		&booking.RescheduledAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс агендаментов
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
