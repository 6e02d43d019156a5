// Package driver abstracts the backend database wire layer behind a small
// open/ping/exec/query contract. Concrete drivers register themselves by
// name; the pool looks them up through the same registry, which also lets
// tests substitute an in-memory fake.
//
// Two drivers ship with the module: "mysql" (go-sql-driver) and "sqlite"
// (mattn/go-sqlite3). Both route through database/sql with the internal
// pool clamped to one session per Conn.
package driver
