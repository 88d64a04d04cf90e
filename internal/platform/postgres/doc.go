// Package postgres provides the PostgreSQL implementation of the task
// persistence interface defined in the internal/store package. It handles
// query execution and the mapping between the task attribute bag and the
// JSONB column holding it.
package postgres
