package pool

import (
	"context"
	"sync"

	"dbpool/pkg/driver"
	errs "dbpool/pkg/errors"
)

// Lease is exclusive ownership of one checked-out Connection. Exactly one
// Lease exists per outstanding connection; a connection is owned by the idle
// set or by a Lease, never both. Callers release with Close, typically
// deferred:
//
//	lease, err := p.Acquire()
//	if err != nil { ... }
//	defer lease.Close()
//
// Close on a Lease whose pool has already shut down closes the connection
// instead of returning it; the pool's accounting is finished at that point.
type Lease struct {
	pool *Pool
	conn *Connection
	once sync.Once
}

// Conn returns the leased connection. Nil after release.
func (l *Lease) Conn() *Connection {
	return l.conn
}

// Exec runs a statement on the leased connection.
func (l *Lease) Exec(ctx context.Context, statement string, args ...any) error {
	if l.conn == nil {
		return errs.ErrLeaseReleased
	}
	return l.conn.Exec(ctx, statement, args...)
}

// Query runs a query on the leased connection.
func (l *Lease) Query(ctx context.Context, statement string, args ...any) (driver.Rows, error) {
	if l.conn == nil {
		return nil, errs.ErrLeaseReleased
	}
	return l.conn.Query(ctx, statement, args...)
}

// Close hands the connection back: healthy connections rejoin the idle set,
// anything else is discarded and accounted. Idempotent.
func (l *Lease) Close() error {
	l.once.Do(func() {
		conn := l.conn
		l.conn = nil
		if conn != nil {
			l.pool.release(conn)
		}
	})
	return nil
}
