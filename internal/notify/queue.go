package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/govtec-events/backend/internal/models"
)

// Enqueuer hands notification jobs to a background worker.
type Enqueuer interface {
	EnqueueNotification(ctx context.Context, reg models.Registration) error
}

// QueueNotifier decouples sink attempts from the request: it enqueues one
// job carrying the full record and returns immediately. Enqueue failures are
// logged and swallowed, same as sink failures.
type QueueNotifier struct {
	queue  Enqueuer
	logger *zap.Logger
}

// NewQueueNotifier creates a queue-backed notifier.
func NewQueueNotifier(queue Enqueuer, logger *zap.Logger) *QueueNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueueNotifier{queue: queue, logger: logger}
}

// Notify enqueues the notification job for the stored registration.
func (n *QueueNotifier) Notify(ctx context.Context, reg *models.Registration) {
	if err := n.queue.EnqueueNotification(ctx, *reg); err != nil {
		n.logger.Error("enqueue notification failed",
			zap.Error(err),
			zap.String("formatted_id", reg.FormattedID()),
		)
	}
}
