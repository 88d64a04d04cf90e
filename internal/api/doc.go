// Package api contains the HTTP layer: request handlers, the mapping from
// internal errors to status codes and client-safe messages, and the request
// and response models for the task and stats endpoints.
package api
