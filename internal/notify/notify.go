// Package notify delivers best-effort registration side effects: appending a
// row to the event spreadsheet and emailing a confirmation. Sinks never fail
// the registration; outcomes are only visible in logs.
package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/govtec-events/backend/internal/models"
)

// Sink is one best-effort destination for a stored registration. Attempt
// must not panic past its boundary; any underlying fault (auth, network,
// missing config) is reported as false.
type Sink interface {
	Name() string
	Attempt(ctx context.Context, reg *models.Registration) bool
}

// Notifier hands a stored registration to the notification machinery. The
// inline Dispatcher blocks until every sink has finished or timed out; the
// queue-backed notifier returns as soon as the job is enqueued.
type Notifier interface {
	Notify(ctx context.Context, reg *models.Registration)
}

// Dispatcher runs every sink concurrently, each under its own timeout. A
// sink that panics, errors or exceeds the timeout counts as failed; one
// sink's failure never suppresses the others.
type Dispatcher struct {
	sinks   []Sink
	timeout time.Duration
	logger  *zap.Logger
}

// NewDispatcher creates a dispatcher over the given sinks.
func NewDispatcher(sinks []Sink, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{sinks: sinks, timeout: timeout, logger: logger}
}

// Notify attempts every sink and waits for all of them. Failures are logged
// and swallowed.
func (d *Dispatcher) Notify(ctx context.Context, reg *models.Registration) {
	var wg sync.WaitGroup
	for _, sink := range d.sinks {
		wg.Add(1)
		go func(sink Sink) {
			defer wg.Done()
			d.run(ctx, sink, reg)
		}(sink)
	}
	wg.Wait()
}

// run executes one sink attempt under the dispatcher timeout. The attempt
// goroutine may outlive the timeout; its result is then discarded.
func (d *Dispatcher) run(ctx context.Context, sink Sink, reg *models.Registration) {
	attemptCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	done := make(chan bool, 1)
	go func() {
		done <- d.safeAttempt(attemptCtx, sink, reg)
	}()

	var ok bool
	select {
	case ok = <-done:
	case <-attemptCtx.Done():
		d.logger.Warn("notification sink timed out",
			zap.String("sink", sink.Name()),
			zap.String("formatted_id", reg.FormattedID()),
			zap.Duration("timeout", d.timeout),
		)
		return
	}

	if ok {
		d.logger.Info("notification sink succeeded",
			zap.String("sink", sink.Name()),
			zap.String("formatted_id", reg.FormattedID()),
		)
	} else {
		d.logger.Warn("notification sink failed",
			zap.String("sink", sink.Name()),
			zap.String("formatted_id", reg.FormattedID()),
		)
	}
}

func (d *Dispatcher) safeAttempt(ctx context.Context, sink Sink, reg *models.Registration) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notification sink panicked",
				zap.String("sink", sink.Name()),
				zap.Any("panic", r),
			)
			ok = false
		}
	}()
	return sink.Attempt(ctx, reg)
}
