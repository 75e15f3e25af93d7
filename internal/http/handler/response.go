package handler

import "biztime/internal/model"

// Response envelopes. Every success body wraps its payload in a single named key.

type companiesResponse struct {
	Companies []model.CompanySummary `json:"companies"`
}

type companyResponse struct {
	Company *model.Company `json:"company"`
}

type companyDetailResponse struct {
	Company *model.CompanyDetail `json:"company"`
}

type invoicesResponse struct {
	Invoices []model.InvoiceSummary `json:"invoices"`
}

type invoiceResponse struct {
	Invoice *model.Invoice `json:"invoice"`
}

type invoiceDetailResponse struct {
	Invoice *model.InvoiceDetail `json:"invoice"`
}

type statusResponse struct {
	Status string `json:"status"`
}

var deleted = statusResponse{Status: "deleted"}
