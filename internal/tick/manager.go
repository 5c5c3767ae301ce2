// Package tick runs the single-threaded encounter loop: a periodic tick,
// a trigger input and cooperative tasks, all serialized on one goroutine.
package tick

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Default loop cadence.
const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultTaskInterval = 25 * time.Millisecond
)

// Config sets the loop cadence.
type Config struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	TaskInterval time.Duration `yaml:"task_interval"`
}

// DefaultConfig returns the stock cadence.
func DefaultConfig() Config {
	return Config{
		TickInterval: DefaultTickInterval,
		TaskInterval: DefaultTaskInterval,
	}
}

// Handlers are the loop callbacks. Nil handlers are skipped.
type Handlers struct {
	OnTick    func(now time.Time)
	OnTrigger func(now time.Time)
}

// Manager drives the encounter loop. OnTick, OnTrigger and task steps never
// run concurrently with each other.
type Manager struct {
	cfg      Config
	handlers Handlers

	triggerCh chan struct{}
	stopCh    chan struct{}
	stopOnce  sync.Once

	mu      sync.Mutex
	pending []Task // enqueued, not yet stepped

	active    []Task // owned by the loop goroutine
	taskCount atomic.Int32
	ticks     atomic.Uint64
}

// NewManager creates a loop manager. Zero intervals fall back to defaults.
func NewManager(cfg Config, handlers Handlers) *Manager {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.TaskInterval <= 0 {
		cfg.TaskInterval = DefaultTaskInterval
	}
	return &Manager{
		cfg:       cfg,
		handlers:  handlers,
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Start runs the loop (blocks until context is canceled or Stop is called).
func (m *Manager) Start(ctx context.Context) error {
	tickTicker := time.NewTicker(m.cfg.TickInterval)
	defer tickTicker.Stop()
	taskTicker := time.NewTicker(m.cfg.TaskInterval)
	defer taskTicker.Stop()

	slog.Info("encounter loop started",
		"tick_interval", m.cfg.TickInterval,
		"task_interval", m.cfg.TaskInterval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("encounter loop stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("encounter loop stopped")
			return nil

		case now := <-tickTicker.C:
			m.tick(now)

		case now := <-taskTicker.C:
			m.StepTasks(now)

		case <-m.triggerCh:
			if m.handlers.OnTrigger != nil {
				m.handlers.OnTrigger(time.Now())
			}
		}
	}
}

// Stop stops the loop. Safe to call more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Trigger queues one trigger event. Safe for concurrent use; events arriving
// while one is already queued are coalesced.
func (m *Manager) Trigger() {
	select {
	case m.triggerCh <- struct{}{}:
	default:
	}
}

// Enqueue schedules a cooperative task. Safe for concurrent use.
func (m *Manager) Enqueue(t Task) {
	m.mu.Lock()
	m.pending = append(m.pending, t)
	m.mu.Unlock()
	m.taskCount.Add(1)
}

// StepTasks steps every scheduled task once and drops finished ones.
// Tasks enqueued during the pass are first stepped on the next pass.
func (m *Manager) StepTasks(now time.Time) {
	m.mu.Lock()
	m.active = append(m.active, m.pending...)
	m.pending = m.pending[:0]
	m.mu.Unlock()

	if len(m.active) == 0 {
		return
	}

	kept := m.active[:0]
	for _, t := range m.active {
		if t.Step(now) {
			m.taskCount.Add(-1)
			continue
		}
		kept = append(kept, t)
	}
	clear(m.active[len(kept):])
	m.active = kept
}

// TaskCount returns the number of unfinished tasks.
func (m *Manager) TaskCount() int {
	return int(m.taskCount.Load())
}

// Ticks returns the number of ticks run so far.
func (m *Manager) Ticks() uint64 {
	return m.ticks.Load()
}

func (m *Manager) tick(now time.Time) {
	n := m.ticks.Add(1)
	if m.handlers.OnTick != nil {
		m.handlers.OnTick(now)
	}
	if IsDebugEnabled() {
		slog.Debug("encounter tick completed", "tick", n, "tasks", m.TaskCount())
	}
}
