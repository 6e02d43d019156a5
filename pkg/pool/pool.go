package pool

import (
	"context"
	"sync"
	"time"

	"dbpool/pkg/driver"
	errs "dbpool/pkg/errors"
	"dbpool/pkg/logger"
)

// State is the pool lifecycle state. Transitions are one-way:
// Running -> ShuttingDown -> Closed.
type State int32

const (
	Running State = iota
	ShuttingDown
	Closed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting_down"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Pool is a bounded, self-replenishing set of backend connections. One mutex
// guards the idle set, the live counter and the state; signaling between
// acquirers, releasers and the background loops goes through a broadcast
// channel that is closed and replaced under that mutex, which is what allows
// waiters to also honor a timeout and the shutdown signal.
type Pool struct {
	cfg Config
	drv driver.Driver
	log *logger.Logger

	mu        sync.Mutex
	idle      []*Connection // FIFO: acquire pops the head, release appends
	liveCount int           // connections that exist, idle or leased
	state     State
	signal    chan struct{} // closed on every "idle set changed" broadcast

	done chan struct{} // closed once, at shutdown
	wg   sync.WaitGroup
}

// New constructs a pool, warms it to InitSize and starts the replenisher and
// reaper loops. Initial dial failures are logged and absorbed; the
// replenisher will keep retrying, so a temporarily unreachable backend does
// not fail construction.
func New(cfg Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	drv, err := driver.Lookup(cfg.Driver)
	if err != nil {
		return nil, err
	}

	p := &Pool{
		cfg:    cfg,
		drv:    drv,
		log:    logger.Get().With("component", "pool", "driver", cfg.Driver),
		signal: make(chan struct{}),
		done:   make(chan struct{}),
	}

	for i := 0; i < cfg.InitSize; i++ {
		ctx, cancel := p.dialContext()
		conn, err := newConnection(ctx, drv, cfg.params())
		cancel()
		if err != nil {
			p.log.Warn("initial connection failed", "error", err)
			continue
		}
		conn.touch()
		p.idle = append(p.idle, conn)
		p.liveCount++
	}

	p.wg.Add(2)
	go p.replenisher()
	go p.reaper()

	p.log.Info("pool started",
		"init_size", cfg.InitSize, "max_size", cfg.MaxSize,
		"live", p.liveCount, "max_idle_time", cfg.MaxIdleTime)
	return p, nil
}

// Acquire checks out a connection using the configured acquire timeout.
func (p *Pool) Acquire() (*Lease, error) {
	return p.AcquireTimeout(p.cfg.AcquireTimeout)
}

// AcquireTimeout checks out a connection, waiting up to timeout for one to
// become available. A connection that fails its health probe is given exactly
// one reconnect; if that also fails it is discarded and the wait continues
// within the remaining budget, so a broken connection is never handed out.
// Returns ErrPoolExhausted when the budget elapses and ErrPoolClosed once
// shutdown has begun.
func (p *Pool) AcquireTimeout(timeout time.Duration) (*Lease, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	p.mu.Lock()
	for {
		if p.state != Running {
			p.mu.Unlock()
			return nil, errs.ErrPoolClosed
		}

		for len(p.idle) == 0 {
			wait := p.signal
			p.mu.Unlock()
			select {
			case <-wait:
			case <-timer.C:
				p.log.Warn("acquire timed out", "timeout", timeout)
				return nil, errs.ErrPoolExhausted
			case <-p.done:
				return nil, errs.ErrPoolClosed
			}
			p.mu.Lock()
			if p.state != Running {
				p.mu.Unlock()
				return nil, errs.ErrPoolClosed
			}
		}

		conn := p.idle[0]
		p.idle = p.idle[1:]

		if !conn.alive() {
			p.log.Warn("invalid connection on acquire, reconnecting")
			ctx, cancel := p.dialContext()
			err := conn.reconnect(ctx, p.cfg.params())
			cancel()
			if err != nil {
				p.liveCount--
				p.broadcast()
				p.log.ErrorWithErr("reconnect failed, discarding connection", err,
					"live", p.liveCount)
				continue // source another connection within the budget
			}
			conn.touch()
			p.log.Info("connection reestablished on acquire")
		}

		p.broadcast() // the idle set shrank; the replenisher may react
		p.mu.Unlock()
		return &Lease{pool: p, conn: conn}, nil
	}
}

// release is the return half of the lease protocol. A healthy connection
// rejoins the idle set with a fresh idle origin; an unhealthy one, or any
// connection returned after shutdown began, is closed.
func (p *Pool) release(conn *Connection) {
	p.mu.Lock()
	if p.state != Running {
		p.liveCount--
		p.mu.Unlock()
		_ = conn.close()
		return
	}
	if !conn.alive() {
		_ = conn.close()
		p.liveCount--
		p.log.Warn("released connection failed probe, discarded", "live", p.liveCount)
	} else {
		conn.touch()
		p.idle = append(p.idle, conn)
	}
	p.broadcast()
	p.mu.Unlock()
}

// Close shuts the pool down: no new acquires, the idle set is drained and
// closed, and both background loops are joined before the state reaches
// Closed. Outstanding leases stay usable; releasing one after Close simply
// closes its connection. Safe to call more than once.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.state != Running {
		p.mu.Unlock()
		return nil
	}
	p.state = ShuttingDown
	close(p.done)
	for _, conn := range p.idle {
		_ = conn.close()
		p.liveCount--
	}
	p.idle = nil
	p.broadcast()
	p.mu.Unlock()

	p.wg.Wait()

	p.mu.Lock()
	p.state = Closed
	outstanding := p.liveCount
	p.mu.Unlock()

	p.log.Info("pool closed", "outstanding_leases", outstanding)
	return nil
}

// Stats returns a point-in-time snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Open:  p.liveCount,
		Idle:  len(p.idle),
		InUse: p.liveCount - len(p.idle),
		State: p.state.String(),
	}
}

// Stats is a snapshot of pool counters. InUse equals the number of
// outstanding leases.
type Stats struct {
	Open  int    `json:"open"`
	Idle  int    `json:"idle"`
	InUse int    `json:"in_use"`
	State string `json:"state"`
}

// broadcast wakes every waiter. Callers must hold p.mu.
func (p *Pool) broadcast() {
	close(p.signal)
	p.signal = make(chan struct{})
}

func (p *Pool) dialContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), p.cfg.ConnectTimeout)
}
