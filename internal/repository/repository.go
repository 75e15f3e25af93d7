package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// Result is the outcome of a single parameterized statement: the rows it
// returned and how many rows it returned or affected.
type Result[T any] struct {
	Rows  []T
	Count int64
}

// RowCount reports how many rows the statement returned or affected.
func (r Result[T]) RowCount() int64 {
	return r.Count
}

// First returns the first row. Callers check RowCount beforehand.
func (r Result[T]) First() T {
	return r.Rows[0]
}
