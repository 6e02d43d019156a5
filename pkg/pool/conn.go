package pool

import (
	"context"
	"time"

	"dbpool/pkg/driver"
	errs "dbpool/pkg/errors"
)

// probeTimeout bounds the liveness ping so a dead backend cannot stall the
// acquire path indefinitely.
const probeTimeout = time.Second

// Connection wraps one live backend session together with its idle-time
// origin. A Connection has exactly one owner at any moment (the pool's idle
// set or a Lease), so it carries no locking of its own.
type Connection struct {
	drv        driver.Driver
	sess       driver.Conn
	lastActive time.Time
}

func newConnection(ctx context.Context, drv driver.Driver, p driver.Params) (*Connection, error) {
	sess, err := drv.Open(ctx, p)
	if err != nil {
		return nil, err
	}
	return &Connection{drv: drv, sess: sess}, nil
}

// alive is the health probe: a cheap ping, never an application statement.
func (c *Connection) alive() bool {
	if c.sess == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	return c.sess.Ping(ctx) == nil
}

// reconnect closes any existing session and opens a fresh one. On failure
// the Connection is left without a session and must be discarded.
func (c *Connection) reconnect(ctx context.Context, p driver.Params) error {
	if c.sess != nil {
		_ = c.sess.Close()
		c.sess = nil
	}
	sess, err := c.drv.Open(ctx, p)
	if err != nil {
		return err
	}
	c.sess = sess
	return nil
}

// touch resets the idle-time origin to now.
func (c *Connection) touch() {
	c.lastActive = time.Now()
}

// idleFor reports how long the connection has sat idle.
func (c *Connection) idleFor() time.Duration {
	return time.Since(c.lastActive)
}

func (c *Connection) close() error {
	if c.sess == nil {
		return nil
	}
	err := c.sess.Close()
	c.sess = nil
	return err
}

// Exec runs a statement on the underlying session.
func (c *Connection) Exec(ctx context.Context, statement string, args ...any) error {
	if c.sess == nil {
		return errs.ErrConnectionClosed
	}
	return c.sess.Exec(ctx, statement, args...)
}

// Query runs a query on the underlying session.
func (c *Connection) Query(ctx context.Context, statement string, args ...any) (driver.Rows, error) {
	if c.sess == nil {
		return nil, errs.ErrConnectionClosed
	}
	return c.sess.Query(ctx, statement, args...)
}
