package driver

import (
	"context"
	"fmt"
	"sync"

	errs "dbpool/pkg/errors"
)

// Params carries everything needed to open one backend session.
type Params struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// Rows is the result-set surface exposed to callers. *sql.Rows satisfies it.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// Conn is one live backend session. Implementations are not safe for
// concurrent use; the pool guarantees a single owner at a time.
type Conn interface {
	// Ping is a cheap liveness probe; it must not run application statements.
	Ping(ctx context.Context) error
	Exec(ctx context.Context, statement string, args ...any) error
	Query(ctx context.Context, statement string, args ...any) (Rows, error)
	Close() error
}

// Driver opens sessions against one backend kind.
type Driver interface {
	Name() string
	Open(ctx context.Context, p Params) (Conn, error)
}

var registry = struct {
	mu      sync.RWMutex
	drivers map[string]Driver
}{drivers: make(map[string]Driver)}

// Register makes a driver available under its name. Later registrations
// replace earlier ones, which lets tests substitute fakes.
func Register(d Driver) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.drivers[d.Name()] = d
}

// Lookup returns the driver registered under name.
func Lookup(name string) (Driver, error) {
	registry.mu.RLock()
	d, ok := registry.drivers[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrDriverNotRegistered, name)
	}
	return d, nil
}
