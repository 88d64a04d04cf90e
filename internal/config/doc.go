// Package config handles configuration loading and validation from the
// environment. It provides type-safe access to the server, database, and
// cache settings needed by other components while keeping configuration
// details separate from business logic.
package config
