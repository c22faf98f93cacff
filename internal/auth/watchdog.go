package auth

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-admin-data/internal/logging"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

const defaultWatchdogInterval = 60 * time.Second

// ExpireFunc is notified once when the session lapses. It runs on the
// watchdog goroutine and must not block.
type ExpireFunc func()

// Watchdog polls the token store and forces a logout when the bearer token
// expires. Malformed tokens count as expired so a corrupted session can
// never linger.
type Watchdog struct {
	store    interfaces.TokenStore
	interval time.Duration
	onExpire ExpireFunc
	logger   interfaces.Logger
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// WatchdogOption mutates watchdog construction.
type WatchdogOption func(*Watchdog)

// WithInterval overrides the polling cadence.
func WithInterval(interval time.Duration) WatchdogOption {
	return func(w *Watchdog) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

// WithOnExpire registers the expiry callback.
func WithOnExpire(fn ExpireFunc) WatchdogOption {
	return func(w *Watchdog) {
		w.onExpire = fn
	}
}

// WithWatchdogLogger injects the watchdog logger.
func WithWatchdogLogger(logger interfaces.Logger) WatchdogOption {
	return func(w *Watchdog) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatchdog builds a stopped watchdog over the shared token store.
func NewWatchdog(store interfaces.TokenStore, opts ...WatchdogOption) *Watchdog {
	watchdog := &Watchdog{
		store:    store,
		interval: defaultWatchdogInterval,
		logger:   logging.NoOp(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(watchdog)
	}
	return watchdog
}

// Start begins polling. Calling Start on a running watchdog is a no-op. The
// watchdog stops when the context is cancelled or Stop is called.
func (w *Watchdog) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	w.cancel = cancel
	w.done = done

	// run closes the local channel, never the field: Stop nils the field
	// before the goroutine exits.
	go w.run(ctx, done)
	w.logger.Debug("watchdog.started", "interval", w.interval.String())
}

// Stop halts polling and waits for the loop to exit.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	done := w.done
	w.cancel = nil
	w.done = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	w.logger.Debug("watchdog.stopped")
}

func (w *Watchdog) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.sweep(ctx) {
				return
			}
		}
	}
}

// sweep performs one expiry check. It returns true once the session has been
// cleared so the loop can stop; an absent token means nothing to watch yet.
func (w *Watchdog) sweep(ctx context.Context) bool {
	token, err := w.store.Get(ctx)
	if err != nil {
		w.logger.Warn("watchdog.store.unreadable", "error", err)
		return false
	}
	if token == "" {
		return false
	}
	if !Expired(token, w.now()) {
		return false
	}

	if err := w.store.Clear(ctx); err != nil {
		w.logger.Error("watchdog.clear.failed", "error", err)
		return false
	}

	w.logger.Info("watchdog.session.expired")
	if w.onExpire != nil {
		w.onExpire()
	}
	return true
}
