package health

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// ComponentHealth represents the health status of a single component
type ComponentHealth struct {
	Name        string    `json:"name"`
	Status      Status    `json:"status"`
	Description string    `json:"description,omitempty"`
	LastChecked time.Time `json:"last_checked"`
}

// Report represents overall process health
type Report struct {
	Status        Status            `json:"status"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	Timestamp     time.Time         `json:"timestamp"`
	Goroutines    int               `json:"goroutines"`
	MemoryMB      uint64            `json:"memory_mb"`
	CPUPercent    float64           `json:"cpu_percent"`
	Components    []ComponentHealth `json:"components"`
}

// Monitor tracks component health and process-level metrics
type Monitor struct {
	startTime  time.Time
	mu         sync.RWMutex
	components map[string]*ComponentHealth
	proc       *process.Process
}

// NewMonitor creates a new health monitor
func NewMonitor() *Monitor {
	// Process handle failures are tolerated; the report just omits
	// memory/cpu figures.
	proc, _ := process.NewProcess(int32(os.Getpid()))
	return &Monitor{
		startTime:  time.Now(),
		components: make(map[string]*ComponentHealth),
		proc:       proc,
	}
}

// SetComponentStatus updates the status of a component
func (m *Monitor) SetComponentStatus(name string, status Status, description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components[name] = &ComponentHealth{
		Name:        name,
		Status:      status,
		Description: description,
		LastChecked: time.Now(),
	}
}

// Report assembles a point-in-time health report. Overall status is the
// worst of all component statuses.
func (m *Monitor) Report() Report {
	m.mu.RLock()
	components := make([]ComponentHealth, 0, len(m.components))
	overall := StatusHealthy
	for _, c := range m.components {
		components = append(components, *c)
		switch c.Status {
		case StatusUnhealthy:
			overall = StatusUnhealthy
		case StatusDegraded:
			if overall == StatusHealthy {
				overall = StatusDegraded
			}
		}
	}
	m.mu.RUnlock()

	r := Report{
		Status:        overall,
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
		Timestamp:     time.Now(),
		Goroutines:    runtime.NumGoroutine(),
		Components:    components,
	}
	if m.proc != nil {
		if mem, err := m.proc.MemoryInfo(); err == nil {
			r.MemoryMB = mem.RSS / 1024 / 1024
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			r.CPUPercent = cpu
		}
	}
	return r
}
