package driver

import (
	"context"

	_ "github.com/mattn/go-sqlite3"
)

func init() {
	Register(sqliteDriver{})
}

// sqliteDriver opens file-backed SQLite sessions. Params.Database is the
// database file path (or ":memory:"); host, port and credentials are unused.
type sqliteDriver struct{}

func (sqliteDriver) Name() string { return "sqlite" }

func (sqliteDriver) Open(ctx context.Context, p Params) (Conn, error) {
	path := p.Database
	if path == "" {
		path = ":memory:"
	}
	return openSQL(ctx, "sqlite3", path)
}
