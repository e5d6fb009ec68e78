// Package queries contains the read side of the application: thin handlers
// that run raw SQL projections over the relational store and return plain
// response structs. They bypass the aggregates and the unit of work on
// purpose; reads never mutate state and never open a transaction.
//
// Absent rows are values, not errors: single-row lookups return a nil
// response, aggregate lookups return zero values.
package queries
