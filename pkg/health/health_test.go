package health

import (
	"testing"
)

// TestReportEmpty tests a report with no registered components
func TestReportEmpty(t *testing.T) {
	m := NewMonitor()
	r := m.Report()
	if r.Status != StatusHealthy {
		t.Errorf("empty monitor should be healthy, got %s", r.Status)
	}
	if r.Goroutines <= 0 {
		t.Error("goroutine count missing")
	}
}

// TestWorstComponentWins tests overall status aggregation
func TestWorstComponentWins(t *testing.T) {
	m := NewMonitor()
	m.SetComponentStatus("pool", StatusHealthy, "")
	if r := m.Report(); r.Status != StatusHealthy {
		t.Errorf("expected healthy, got %s", r.Status)
	}

	m.SetComponentStatus("backend", StatusDegraded, "slow pings")
	if r := m.Report(); r.Status != StatusDegraded {
		t.Errorf("expected degraded, got %s", r.Status)
	}

	m.SetComponentStatus("pool", StatusUnhealthy, "pool closed")
	r := m.Report()
	if r.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy, got %s", r.Status)
	}
	if len(r.Components) != 2 {
		t.Errorf("expected 2 components, got %d", len(r.Components))
	}
}

// TestComponentUpdateReplaces tests that re-setting a component overwrites it
func TestComponentUpdateReplaces(t *testing.T) {
	m := NewMonitor()
	m.SetComponentStatus("pool", StatusUnhealthy, "starting")
	m.SetComponentStatus("pool", StatusHealthy, "")
	r := m.Report()
	if r.Status != StatusHealthy {
		t.Errorf("expected healthy after update, got %s", r.Status)
	}
	if len(r.Components) != 1 {
		t.Errorf("expected 1 component, got %d", len(r.Components))
	}
}
