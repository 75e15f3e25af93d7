package model

// Company is a row of the companies table.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanySummary is the projection used by the company listing.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a single company with the ids of its invoices attached.
// Invoices is never nil so it always renders as a JSON array.
type CompanyDetail struct {
	Company
	Invoices []int64 `json:"invoices"`
}

// CompanyInput is the data accepted when creating or editing a company.
// Code is ignored on edit.
type CompanyInput struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
