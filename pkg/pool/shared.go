package pool

import (
	"sync"

	"dbpool/pkg/config"
)

var (
	sharedMu sync.Mutex
	shared   *Pool
)

// Init constructs the process-wide pool from a config source and installs it
// as the shared instance. Call once at startup, before any Shared use; a
// later Init replaces the handle but does not close the previous pool.
func Init(src config.Source) (*Pool, error) {
	p, err := New(FromSource(src))
	if err != nil {
		return nil, err
	}
	sharedMu.Lock()
	shared = p
	sharedMu.Unlock()
	return p, nil
}

// Shared returns the process-wide pool, lazily constructing one from the
// compiled-in defaults if Init was never called.
func Shared() *Pool {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		p, err := New(DefaultConfig())
		if err != nil {
			// Defaults always validate and the mysql driver is always
			// registered, so this is unreachable in practice.
			panic(err)
		}
		shared = p
	}
	return shared
}
