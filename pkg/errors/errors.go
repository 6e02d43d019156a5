package errors

import "errors"

// Pool errors
var (
	// ErrPoolExhausted is returned when no connection becomes available
	// before the acquire timeout elapses
	ErrPoolExhausted = errors.New("connection pool exhausted")

	// ErrPoolClosed is returned when acquiring from a pool that has been
	// shut down
	ErrPoolClosed = errors.New("connection pool closed")

	// ErrLeaseReleased is returned when a lease is used after its release
	ErrLeaseReleased = errors.New("lease already released")
)

// Connection errors
var (
	// ErrConnectionFailed is returned when opening a backend session fails
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrConnectionClosed is returned when operating on a closed connection
	ErrConnectionClosed = errors.New("connection closed")
)

// Driver errors
var (
	// ErrDriverNotRegistered is returned when no driver is registered
	// under the requested name
	ErrDriverNotRegistered = errors.New("driver not registered")
)

// Configuration errors
var (
	// ErrConfigNotFound is returned when the configuration file is not found
	ErrConfigNotFound = errors.New("configuration not found")

	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")
)
