package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClubBookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var paymentColumns = []string{
	"id",
	"booking_id",
	"user_email",
	"amount",
	"original_amount",
	"discount",
	"coupon_used",
	"payment_method",
	"card_last_four",
	"transaction_id",
	"status",
	"payment_date",
	"created_at",
}

// Repository репозиторий платежей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает платеж. На booking_id и transaction_id стоят уникальные индексы
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"user_email",
			"amount",
			"original_amount",
			"discount",
			"coupon_used",
			"payment_method",
			"card_last_four",
			"transaction_id",
			"status",
			"payment_date",
		).
		Values(
			p.BookingID,
			p.UserEmail,
			p.Amount,
			p.OriginalAmount,
			p.Discount,
			p.CouponUsed,
			p.PaymentMethod,
			p.CardLastFour,
			p.TransactionID,
			p.Status,
			p.PaymentDate,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, ErrDuplicatePayment
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	return p, nil
}

// GetByID получает платеж по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payment: %v", ErrScanRow, err)
	}
	return p, nil
}

// List получает историю платежей, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.PaymentsFilter) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(paymentColumns...).
		From("payments").
		OrderBy("payment_date DESC", "id DESC")

	if filter.UserEmail != nil {
		selectBuilder = selectBuilder.Where("lower(user_email) = lower(?)", *filter.UserEmail)
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	var createdAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.UserEmail,
		&p.Amount,
		&p.OriginalAmount,
		&p.Discount,
		&p.CouponUsed,
		&p.PaymentMethod,
		&p.CardLastFour,
		&p.TransactionID,
		&p.Status,
		&p.PaymentDate,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	return &p, nil
}
