package notify

import (
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/coderelay/mcpsync/internal/log"
)

const (
	// DefaultQueueSize bounds how many undelivered notifications may wait
	// for the dispatch worker. Past that, new sends vanish quietly.
	DefaultQueueSize = 256

	closeTimeout = 5 * time.Second
)

// Level classifies a notification for the MCP host. Values follow the
// MCP logging level strings.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Host receives leveled log messages from the dispatch worker.
type Host interface {
	Notify(level Level, message string) error
}

// Channel forwards diagnostics to an optionally-bound host without ever
// affecting the caller: Send never blocks, never fails and never retries.
// A single dispatch worker issues delivery attempts in call order and
// discards whatever the host does with them.
type Channel struct {
	log  *zap.Logger
	pool pond.Pool

	mu   sync.RWMutex
	host Host

	closed  atomic.Bool
	sent    atomic.Uint64
	dropped atomic.Uint64
	failed  atomic.Uint64
}

func NewChannel() *Channel {
	return &Channel{
		log:  log.Named("notify"),
		pool: pond.NewPool(1, pond.WithNonBlocking(true), pond.WithQueueSize(DefaultQueueSize)),
	}
}

// Bind attaches host as the delivery target, replacing any previous one.
// There is no unbind; rebinding is the only transition. The handle swap is
// guarded so an in-flight Send never observes a torn value.
func (c *Channel) Bind(host Host) {
	c.mu.Lock()
	c.host = host
	c.mu.Unlock()
}

// Send attempts one best-effort delivery of message at level. With no
// host bound the message is dropped on the spot, with no buffering for a
// later bind. Levels are not filtered here; gating on configuration is
// the caller's job.
func (c *Channel) Send(level Level, message string) {
	if c.closed.Load() {
		c.dropped.Inc()
		return
	}
	c.mu.RLock()
	host := c.host
	c.mu.RUnlock()
	if host == nil {
		c.dropped.Inc()
		return
	}
	c.pool.Submit(func() {
		c.deliver(host, level, message)
	})
}

// deliver runs on the dispatch worker. Errors and panics coming out of
// the host stay here: they are counted, logged locally and forgotten.
func (c *Channel) deliver(host Host, level Level, message string) {
	defer func() {
		if r := recover(); r != nil {
			c.failed.Inc()
			c.log.Debug("Notification delivery panicked", zap.Any("panic", r))
		}
	}()
	if err := host.Notify(level, message); err != nil {
		c.failed.Inc()
		c.log.Debug("Notification delivery failed",
			zap.String("level", string(level)),
			zap.Error(err))
		return
	}
	c.sent.Inc()
}

// Stats is a point-in-time snapshot of delivery accounting. Numbers are
// advisory: a caller still cannot tell a delivered message from a
// silently dropped one at send time.
type Stats struct {
	Sent    uint64 `json:"sent"`
	Dropped uint64 `json:"dropped"`
	Failed  uint64 `json:"failed"`
}

func (c *Channel) Stats() Stats {
	return Stats{
		Sent:    c.sent.Load(),
		Dropped: c.dropped.Load(),
		Failed:  c.failed.Load(),
	}
}

// Close stops accepting sends and waits briefly for queued deliveries.
// Attempts still queued after the wait are abandoned with the process.
func (c *Channel) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}

	stopped := make(chan struct{})
	go func() {
		c.pool.StopAndWait()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(closeTimeout):
		c.log.Warn("Timed out waiting for queued notifications",
			zap.Int64("running", c.pool.RunningWorkers()))
	}

	st := c.Stats()
	c.log.Debug("Notification channel closed",
		zap.Uint64("sent", st.Sent),
		zap.Uint64("dropped", st.Dropped),
		zap.Uint64("failed", st.Failed))
}
