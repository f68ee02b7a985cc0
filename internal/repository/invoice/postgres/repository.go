package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/paybridge/internal/model"
)

const table = "invoices"

var paidStatuses = []string{
	string(model.StatusPaid),
	string(model.StatusTestPaid),
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewInvoiceRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) InvoiceByID(ctx context.Context, id string) (*model.Invoice, error) {
	q := r.sb.
		Select("id", "owner", "email", "amount", "status").
		From(table).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var inv model.Invoice
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&inv.ID,
		&inv.Owner,
		&inv.Email,
		&inv.Amount,
		&inv.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInvoiceNotFound
		}
		return nil, err
	}

	return &inv, nil
}

// MarkPaid reports false when the row exists but is already paid, so
// concurrent duplicate notifications produce a single transition.
func (r *repository) MarkPaid(ctx context.Context, params model.MarkPaidParams) (bool, error) {
	if params.ID == "" {
		return false, errors.New("empty invoice id")
	}

	q := r.sb.
		Update(table).
		SetMap(sq.Eq{
			"amount":     params.Amount,
			"status":     string(params.Status),
			"paid_at":    sq.Expr("now()"),
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": params.ID}).
		Where(sq.NotEq{"status": paidStatuses})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return false, err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}
	if ct.RowsAffected() > 0 {
		return true, nil
	}

	if _, err := r.InvoiceByID(ctx, params.ID); err != nil {
		return false, err
	}

	return false, nil
}

func (r *repository) ListByOwner(ctx context.Context, owner string) ([]model.Invoice, error) {
	q := r.sb.
		Select("id", "owner", "email", "amount", "status").
		From(table).
		Where(sq.Eq{"owner": owner}).
		OrderBy("created_at", "id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Invoice, error) {
		var inv model.Invoice
		err := row.Scan(&inv.ID, &inv.Owner, &inv.Email, &inv.Amount, &inv.Status)
		return inv, err
	})
	if err != nil {
		return nil, err
	}

	return invoices, nil
}
