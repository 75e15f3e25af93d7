package repository

import (
	"context"

	"biztime/internal/model"
)

// InvoiceRepository defines data access for invoices using SQL queries only.
type InvoiceRepository interface {
	// List returns every invoice projected to id and comp_code.
	List(ctx context.Context) (Result[model.InvoiceSummary], error)

	// FindByID returns the invoice joined with its company.
	FindByID(ctx context.Context, id int64) (Result[model.InvoiceDetail], error)

	// ListIDsByCompany returns the ids of every invoice billed to the company.
	ListIDsByCompany(ctx context.Context, code string) (Result[int64], error)

	// Create inserts an invoice; paid, add_date and paid_date take their column defaults.
	Create(ctx context.Context, in model.InvoiceInput) (Result[model.Invoice], error)

	// UpdateAmount changes only amt and returns the updated row, if one matched.
	UpdateAmount(ctx context.Context, id int64, amt model.Amount) (Result[model.Invoice], error)

	// Delete removes the invoice. Count is the number of rows deleted.
	Delete(ctx context.Context, id int64) (Result[struct{}], error)
}
