package scheduler

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/filebrowser/api/src/config"
	"github.com/filebrowser/api/src/domain/files"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toggleProbe struct {
	down  atomic.Bool
	calls atomic.Int32
}

func (p *toggleProbe) List(ctx context.Context) files.Result[[]string] {
	p.calls.Add(1)
	if p.down.Load() {
		return files.Failure[[]string](files.ErrStoreUnavailable)
	}
	return files.Success([]string{"a.txt"})
}

func newMonitor(probe StoreProbe, schedule string) (*StoreMonitor, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	cfg := &config.Config{Monitor: config.MonitorConfig{Enabled: true, Schedule: schedule}}
	return NewStoreMonitor(probe, cfg, logger), &buf
}

func TestStoreMonitor_LogsTransitions(t *testing.T) {
	probe := &toggleProbe{}
	monitor, logs := newMonitor(probe, "@every 1h")
	ctx := context.Background()

	assert.True(t, monitor.Check(ctx))
	assert.NotContains(t, logs.String(), "store unavailable")

	probe.down.Store(true)
	assert.False(t, monitor.Check(ctx))
	assert.False(t, monitor.Healthy())
	assert.Contains(t, logs.String(), "store monitor: store unavailable")

	probe.down.Store(false)
	assert.True(t, monitor.Check(ctx))
	assert.True(t, monitor.Healthy())
	assert.Contains(t, logs.String(), "store monitor: store recovered")
}

func TestStoreMonitor_StartRunsJob(t *testing.T) {
	probe := &toggleProbe{}
	monitor, _ := newMonitor(probe, "@every 1s")

	require.NoError(t, monitor.Start())
	assert.Error(t, monitor.Start(), "second start must fail")

	require.Eventually(t, func() bool { return probe.calls.Load() > 0 }, 5*time.Second, 50*time.Millisecond)

	<-monitor.Stop().Done()
	<-monitor.Stop().Done()
}

func TestStoreMonitor_InvalidSchedule(t *testing.T) {
	monitor, _ := newMonitor(&toggleProbe{}, "not a schedule")

	assert.Error(t, monitor.Start())
}
