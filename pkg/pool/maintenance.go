package pool

import "time"

// replenishRetryDelay spaces out redials when the backend is unreachable so
// the replenisher does not spin against a dead host.
const replenishRetryDelay = 500 * time.Millisecond

// replenisher runs for the lifetime of the pool. It sleeps while supply
// meets demand (idle non-empty) or no capacity remains, and otherwise dials
// one connection at a time up to MaxSize.
func (p *Pool) replenisher() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for p.state == Running && (len(p.idle) > 0 || p.liveCount >= p.cfg.MaxSize) {
			wait := p.signal
			p.mu.Unlock()
			select {
			case <-wait:
			case <-p.done:
				return
			}
			p.mu.Lock()
		}
		if p.state != Running {
			p.mu.Unlock()
			return
		}

		ctx, cancel := p.dialContext()
		conn, err := newConnection(ctx, p.drv, p.cfg.params())
		cancel()
		if err != nil {
			p.log.ErrorWithErr("replenish dial failed", err)
		} else {
			conn.touch()
			p.idle = append(p.idle, conn)
			p.liveCount++
			p.log.Debug("replenished connection", "live", p.liveCount, "idle", len(p.idle))
		}
		p.broadcast()
		p.mu.Unlock()

		if err != nil {
			select {
			case <-p.done:
				return
			case <-time.After(replenishRetryDelay):
			}
		}
	}
}

// reaper runs for the lifetime of the pool, sweeping the idle set every
// MaxIdleTime.
func (p *Pool) reaper() {
	defer p.wg.Done()
	ticker := time.NewTicker(p.cfg.MaxIdleTime)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
		}
		p.sweep()
	}
}

// sweep walks every idle connection once. Probe failures get one reconnect
// and are dropped if it fails; connections idle past MaxIdleTime are evicted
// while liveCount stays above the InitSize floor. Survivors are kept in
// order. If the sweep left the pool under InitSize the replenisher is woken.
func (p *Pool) sweep() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Running {
		return
	}

	var dropped, evicted int
	kept := p.idle[:0]
	for _, conn := range p.idle {
		if !conn.alive() {
			ctx, cancel := p.dialContext()
			err := conn.reconnect(ctx, p.cfg.params())
			cancel()
			if err != nil {
				_ = conn.close()
				p.liveCount--
				dropped++
				continue
			}
		}
		if conn.idleFor() >= p.cfg.MaxIdleTime && p.liveCount > p.cfg.InitSize {
			_ = conn.close()
			p.liveCount--
			evicted++
			continue
		}
		kept = append(kept, conn)
	}
	p.idle = kept

	if dropped > 0 || evicted > 0 {
		p.log.Info("reaper sweep",
			"dropped", dropped, "evicted", evicted,
			"live", p.liveCount, "idle", len(p.idle))
	}
	if p.liveCount < p.cfg.InitSize {
		p.broadcast()
	}
}
