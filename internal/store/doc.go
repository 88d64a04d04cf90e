// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanisms (the durable
// relational store and the counter cache) from the application's core logic,
// allowing business rules to remain independent of specific database
// technologies or persistence details.
package store
