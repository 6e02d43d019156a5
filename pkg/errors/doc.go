// Package errors provides standardized error definitions for the dbpool
// module. All sentinel errors are centralized here so that callers can test
// failure modes with errors.Is across package boundaries.
package errors
