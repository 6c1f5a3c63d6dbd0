package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/filebrowser/api/src/config"
	"github.com/filebrowser/api/src/domain/files"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const probeTimeout = 30 * time.Second

// StoreProbe is the read-only view of the store the monitor needs.
type StoreProbe interface {
	List(ctx context.Context) files.Result[[]string]
}

// StoreMonitor periodically lists the store and logs availability changes.
// It never alters stored files.
type StoreMonitor struct {
	mu       sync.Mutex
	runner   *cron.Cron
	probe    StoreProbe
	logger   *logrus.Logger
	schedule string
	healthy  bool
}

// NewStoreMonitor creates a monitor for the configured schedule.
func NewStoreMonitor(probe StoreProbe, cfg *config.Config, logger *logrus.Logger) *StoreMonitor {
	return &StoreMonitor{
		probe:    probe,
		logger:   logger,
		schedule: strings.TrimSpace(cfg.Monitor.Schedule),
		healthy:  true,
	}
}

// Start registers the probe job and starts the cron runner.
func (m *StoreMonitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.runner != nil {
		return fmt.Errorf("store monitor already started")
	}

	runner := cron.New()
	job := func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		m.Check(ctx)
	}

	if _, err := runner.AddFunc(m.schedule, job); err != nil {
		return fmt.Errorf("register store monitor job: %w", err)
	}

	runner.Start()
	m.runner = runner

	m.logger.WithField("schedule", m.schedule).Info("store monitor started")
	return nil
}

// Stop stops the runner; the returned context is done once a running probe finishes.
func (m *StoreMonitor) Stop() context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.runner == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}

	ctx := m.runner.Stop()
	m.runner = nil
	return ctx
}

// Check runs one probe and reports whether the store is reachable.
// Only transitions are logged above debug level.
func (m *StoreMonitor) Check(ctx context.Context) bool {
	result := m.probe.List(ctx)
	healthy := result.IsSuccessful()

	m.mu.Lock()
	previous := m.healthy
	m.healthy = healthy
	m.mu.Unlock()

	switch {
	case previous && !healthy:
		m.logger.WithFields(logrus.Fields{
			"kind":  result.Kind(),
			"error": result.ErrorMessage(),
		}).Warn("store monitor: store unavailable")
	case !previous && healthy:
		m.logger.WithField("files", len(result.Payload())).Info("store monitor: store recovered")
	default:
		m.logger.WithField("healthy", healthy).Debug("store monitor: probe finished")
	}

	return healthy
}

// Healthy returns the outcome of the last probe
func (m *StoreMonitor) Healthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.healthy
}
