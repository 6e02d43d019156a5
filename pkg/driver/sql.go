package driver

import (
	"context"
	"database/sql"
	"fmt"

	errs "dbpool/pkg/errors"
)

// sqlConn adapts one *sql.DB to the Conn interface. The DB is clamped to a
// single underlying session so the pool's own accounting stays authoritative;
// database/sql is used purely as the driver access layer, not as a second
// pool.
type sqlConn struct {
	db *sql.DB
}

func openSQL(ctx context.Context, driverName, dsn string) (Conn, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrConnectionFailed, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", errs.ErrConnectionFailed, err)
	}
	return &sqlConn{db: db}, nil
}

func (c *sqlConn) Ping(ctx context.Context) error {
	if c.db == nil {
		return errs.ErrConnectionClosed
	}
	return c.db.PingContext(ctx)
}

func (c *sqlConn) Exec(ctx context.Context, statement string, args ...any) error {
	if c.db == nil {
		return errs.ErrConnectionClosed
	}
	_, err := c.db.ExecContext(ctx, statement, args...)
	return err
}

func (c *sqlConn) Query(ctx context.Context, statement string, args ...any) (Rows, error) {
	if c.db == nil {
		return nil, errs.ErrConnectionClosed
	}
	return c.db.QueryContext(ctx, statement, args...)
}

func (c *sqlConn) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
