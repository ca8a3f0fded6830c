// Package postgres provides PostgreSQL implementations of the persistence
// interfaces defined in internal/store, backed by the pgx driver through
// database/sql. Driver-level errors are mapped to store sentinel errors at
// this boundary so no pgx types leak upward.
package postgres
