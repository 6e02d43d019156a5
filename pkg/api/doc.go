// Package api provides the HTTP surface of the dbpoold daemon: a health
// endpoint, pool statistics, and an exec/query passthrough that checks a
// connection out of the pool per request.
package api
