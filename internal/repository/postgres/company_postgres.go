package postgres

import (
	"context"
	"database/sql"

	"biztime/internal/model"
	"biztime/internal/repository"
)

// CompanyPostgres is a PostgreSQL implementation of repository.CompanyRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CompanyPostgres struct {
	db *sql.DB
}

// NewCompanyPostgres creates a new CompanyPostgres repository.
func NewCompanyPostgres(db *sql.DB) *CompanyPostgres {
	return &CompanyPostgres{db: db}
}

var _ repository.CompanyRepository = (*CompanyPostgres)(nil)

func scanCompanySummary(row scanner, c *model.CompanySummary) error {
	return row.Scan(&c.Code, &c.Name)
}

func scanCompany(row scanner, c *model.Company) error {
	return row.Scan(&c.Code, &c.Name, &c.Description)
}

// List returns all companies in storage order.
func (r *CompanyPostgres) List(ctx context.Context) (repository.Result[model.CompanySummary], error) {
	const q = `SELECT code, name FROM companies`
	return query(ctx, r.db, scanCompanySummary, q)
}

// FindByCode fetches a single company by its code.
func (r *CompanyPostgres) FindByCode(ctx context.Context, code string) (repository.Result[model.Company], error) {
	const q = `
		SELECT code, name, description
		FROM companies
		WHERE code = $1
	`
	return query(ctx, r.db, scanCompany, q, code)
}

// Create inserts a new company row and returns the stored record.
// A duplicate code surfaces as the driver's unique violation error.
func (r *CompanyPostgres) Create(ctx context.Context, in model.CompanyInput) (repository.Result[model.Company], error) {
	const q = `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`
	return query(ctx, r.db, scanCompany, q, in.Code, in.Name, in.Description)
}

// Update changes name and description. The code itself is never updated.
func (r *CompanyPostgres) Update(ctx context.Context, code string, in model.CompanyInput) (repository.Result[model.Company], error) {
	const q = `
		UPDATE companies SET name = $2, description = $3
		WHERE code = $1
		RETURNING code, name, description
	`
	return query(ctx, r.db, scanCompany, q, code, in.Name, in.Description)
}

// Delete removes a company by code. Its invoices go with it (ON DELETE CASCADE).
func (r *CompanyPostgres) Delete(ctx context.Context, code string) (repository.Result[struct{}], error) {
	const q = `DELETE FROM companies WHERE code = $1`
	return exec(ctx, r.db, q, code)
}
