package model

// Package model contains the domain shapes served by the API.
// They carry JSON tags only; persistence lives in the repository layer.

import (
	"github.com/shopspring/decimal"
)

// Amount is an invoice amount kept at whatever precision the database returns.
// It decodes from a JSON number or a numeric string and always encodes as a bare number.
type Amount struct {
	decimal.Decimal
}

// AmountFromInt returns a whole-number Amount.
func AmountFromInt(v int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(v)}
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
