package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClubBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ClubBookingService/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"user_email",
	"court_id",
	"court_type",
	"booking_date",
	"slots",
	"base_price",
	"status",
	"payment_status",
	"coupon_used",
	"paid_amount",
	"payment_date",
	"approved_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_email",
			"court_id",
			"court_type",
			"booking_date",
			"slots",
			"base_price",
			"status",
			"payment_status",
		).
		Values(
			booking.UserEmail,
			booking.CourtID,
			booking.CourtType,
			booking.Date,
			pq.Array(booking.Slots),
			booking.BasePrice,
			booking.Status,
			booking.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, execError("Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, новые первыми
// Если используется транзакция и задан корт с датой, строки блокируются (FOR UPDATE):
// так создание и одобрение бронирования видят согласованный набор занятых слотов
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.UserEmail != nil {
		selectBuilder = selectBuilder.Where("lower(user_email) = lower(?)", *filter.UserEmail)
	}
	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date DESC", "id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	if dbmetrics.IsInTransaction(ctx) && filter.CourtID != nil && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError("List - execute query", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		if txmanager.IsSerializationFailure(err) {
			return nil, execError("List - rows error", err)
		}
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// TransitionStatus меняет статус только если текущий статус равен from.
// approvedAt записывается, если передан
// Возвращает ErrStatusConflict, если строка не обновилась
func (r *Repository) TransitionStatus(ctx context.Context, id int64, from, to domain.BookingStatus, approvedAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	if approvedAt != nil {
		updateBuilder = updateBuilder.Set("approved_at", *approvedAt)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, "TransitionStatus", query, args)
}

// MarkPaid записывает оплату. Условие payment_status <> 'paid' проверяется
// в том же UPDATE, поэтому повторная оплата не пройдет даже при гонке
func (r *Repository) MarkPaid(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("payment_status", domain.PaymentPaid).
		Set("paid_amount", booking.PaidAmount).
		Set("payment_date", booking.PaymentDate).
		Set("coupon_used", booking.CouponUsed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID, "status": domain.StatusApproved}).
		Where(squirrel.NotEq{"payment_status": domain.PaymentPaid}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, "MarkPaid", query, args)
}

func (r *Repository) execGuarded(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return execError(op+" - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserEmail,
		&booking.CourtID,
		&booking.CourtType,
		&booking.Date,
		pq.Array(&booking.Slots),
		&booking.BasePrice,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CouponUsed,
		&booking.PaidAmount,
		&booking.PaymentDate,
		&booking.ApprovedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// execError помечает конфликт сериализации как txmanager.ErrSerialization
func execError(op string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", txmanager.ErrSerialization, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
