package model

import "time"

// Invoice is a row of the invoices table.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      Amount     `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceSummary is the projection used by the invoice listing.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail is an invoice flattened together with its company's columns.
type InvoiceDetail struct {
	ID          int64      `json:"id"`
	Amt         Amount     `json:"amt"`
	Paid        bool       `json:"paid"`
	AddDate     time.Time  `json:"add_date"`
	PaidDate    *time.Time `json:"paid_date"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
}

// InvoiceInput is the data accepted when creating an invoice. Only Amt is used on edit.
type InvoiceInput struct {
	CompCode string `json:"comp_code"`
	Amt      Amount `json:"amt"`
}
