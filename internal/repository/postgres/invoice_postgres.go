package postgres

import (
	"context"
	"database/sql"

	"biztime/internal/model"
	"biztime/internal/repository"
)

// InvoicePostgres is a PostgreSQL implementation of repository.InvoiceRepository.
type InvoicePostgres struct {
	db *sql.DB
}

// NewInvoicePostgres creates a new InvoicePostgres repository.
func NewInvoicePostgres(db *sql.DB) *InvoicePostgres {
	return &InvoicePostgres{db: db}
}

var _ repository.InvoiceRepository = (*InvoicePostgres)(nil)

func scanInvoiceSummary(row scanner, i *model.InvoiceSummary) error {
	return row.Scan(&i.ID, &i.CompCode)
}

func scanInvoice(row scanner, i *model.Invoice) error {
	return row.Scan(&i.ID, &i.CompCode, &i.Amt, &i.Paid, &i.AddDate, &i.PaidDate)
}

func scanInvoiceDetail(row scanner, d *model.InvoiceDetail) error {
	return row.Scan(&d.ID, &d.Amt, &d.Paid, &d.AddDate, &d.PaidDate, &d.Code, &d.Name, &d.Description)
}

func scanID(row scanner, id *int64) error {
	return row.Scan(id)
}

// List returns all invoices in storage order.
func (r *InvoicePostgres) List(ctx context.Context) (repository.Result[model.InvoiceSummary], error) {
	const q = `SELECT id, comp_code FROM invoices`
	return query(ctx, r.db, scanInvoiceSummary, q)
}

// FindByID fetches one invoice flattened with the columns of its company.
func (r *InvoicePostgres) FindByID(ctx context.Context, id int64) (repository.Result[model.InvoiceDetail], error) {
	const q = `
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date, c.code, c.name, c.description
		FROM invoices AS i
		JOIN companies AS c ON i.comp_code = c.code
		WHERE i.id = $1
	`
	return query(ctx, r.db, scanInvoiceDetail, q, id)
}

// ListIDsByCompany returns invoice ids for a company in insertion order.
func (r *InvoicePostgres) ListIDsByCompany(ctx context.Context, code string) (repository.Result[int64], error) {
	const q = `
		SELECT id FROM invoices
		WHERE comp_code = $1
		ORDER BY id
	`
	return query(ctx, r.db, scanID, q, code)
}

// Create inserts an invoice. An unknown comp_code surfaces as the driver's
// foreign key violation error.
func (r *InvoicePostgres) Create(ctx context.Context, in model.InvoiceInput) (repository.Result[model.Invoice], error) {
	const q = `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`
	return query(ctx, r.db, scanInvoice, q, in.CompCode, in.Amt)
}

// UpdateAmount changes only the amount of an invoice.
func (r *InvoicePostgres) UpdateAmount(ctx context.Context, id int64, amt model.Amount) (repository.Result[model.Invoice], error) {
	const q = `
		UPDATE invoices SET amt = $2
		WHERE id = $1
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`
	return query(ctx, r.db, scanInvoice, q, id, amt)
}

// Delete removes an invoice by id.
func (r *InvoicePostgres) Delete(ctx context.Context, id int64) (repository.Result[struct{}], error) {
	const q = `DELETE FROM invoices WHERE id = $1`
	return exec(ctx, r.db, q, id)
}
