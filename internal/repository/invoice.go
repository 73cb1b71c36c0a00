package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InvoiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInvoiceRepo(db *dbpg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

const invoiceColumns = `id, member_id, issued_at, due_date, total_amount, status, notes, updated_at`

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := row.Scan(
		&inv.ID, &inv.MemberID, &inv.IssuedAt, &inv.DueDate,
		&inv.TotalAmount, &inv.Status, &inv.Notes, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO invoices (` + invoiceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query,
		inv.ID, inv.MemberID, inv.IssuedAt, inv.DueDate,
		inv.TotalAmount, inv.Status, inv.Notes, inv.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrMemberNotFound
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	itemQuery := `INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price)
				  VALUES ($1, $2, $3, $4, $5)`
	for _, it := range inv.Items {
		if _, err = tx.ExecContext(ctx, itemQuery, it.ID, inv.ID, it.Description, it.Quantity, it.UnitPrice); err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}

	if err = r.loadDetails(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

const (
	itemsQuery    = `SELECT id, invoice_id, description, quantity, unit_price FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	paymentsQuery = `SELECT id, invoice_id, amount, method, reference, paid_at FROM payments WHERE invoice_id = $1 ORDER BY paid_at`
)

func scanItems(rows *sql.Rows) ([]domain.LineItem, error) {
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var it domain.LineItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	return items, nil
}

func scanPayments(rows *sql.Rows) ([]domain.Payment, error) {
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.Method, &p.Reference, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (r *InvoiceRepository) loadDetails(ctx context.Context, inv *domain.Invoice) error {
	itemRows, err := r.db.QueryWithRetry(ctx, r.strategy, itemsQuery, inv.ID)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	if inv.Items, err = scanItems(itemRows); err != nil {
		return err
	}

	payRows, err := r.db.QueryWithRetry(ctx, r.strategy, paymentsQuery, inv.ID)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	inv.Payments, err = scanPayments(payRows)
	return err
}

// loadDetailsTx reads items and payments inside tx, after the invoice row is
// locked, so the payment log cannot change underneath.
func loadDetailsTx(ctx context.Context, tx *sql.Tx, inv *domain.Invoice) error {
	itemRows, err := tx.QueryContext(ctx, itemsQuery, inv.ID)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	if inv.Items, err = scanItems(itemRows); err != nil {
		return err
	}

	payRows, err := tx.QueryContext(ctx, paymentsQuery, inv.ID)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	inv.Payments, err = scanPayments(payRows)
	return err
}

func (r *InvoiceRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE member_id = $1 ORDER BY issued_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		res = append(res, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	for _, inv := range res {
		if err = r.loadDetails(ctx, inv); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// RecordPayment locks the invoice row, recomputes the paid amount from the
// payment log and appends the payment together with the status change. The
// returned invoice is the view read under the lock plus the new payment.
func (r *InvoiceRepository) RecordPayment(ctx context.Context, p *domain.Payment) (*domain.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	inv, err := scanInvoice(tx.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, p.InvoiceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("lock invoice: %w", err)
	}

	if err = loadDetailsTx(ctx, tx, inv); err != nil {
		return nil, err
	}

	next, err := inv.ApplyPayment(inv.Paid(), p.Amount)
	if err != nil {
		return nil, err
	}

	payQuery := `INSERT INTO payments (id, invoice_id, amount, method, reference, paid_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, payQuery, p.ID, p.InvoiceID, p.Amount, p.Method, p.Reference, p.PaidAt); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx,
		`UPDATE invoices SET status = $2, updated_at = $3 WHERE id = $1`,
		p.InvoiceID, next, now); err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	inv.Payments = append(inv.Payments, *p)
	inv.Status = next
	inv.UpdatedAt = now
	return inv, nil
}
