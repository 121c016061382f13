package emails

import (
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	queueCapacity = 256
	workersCount  = 2
)

type emailTask struct {
	to      string
	subject string
	html    string
	text    string
}

// EmailWorker dispatches queued emails on a small fixed pool. Delivery is
// best effort: failures are logged, never retried, and never visible to
// the request that queued the message.
type EmailWorker struct {
	sender EmailSender
	logger *slog.Logger

	queue   chan emailTask
	group   *errgroup.Group
	stopped atomic.Bool
}

func NewEmailWorker(sender EmailSender, logger *slog.Logger) *EmailWorker {
	return &EmailWorker{
		sender: sender,
		logger: logger,
		queue:  make(chan emailTask, queueCapacity),
	}
}

func (w *EmailWorker) Start() {
	group := &errgroup.Group{}
	w.group = group

	for i := 0; i < workersCount; i++ {
		group.Go(func() error {
			for task := range w.queue {
				if err := w.sender.Send(task.to, task.subject, task.html, task.text); err != nil {
					w.logger.Error("failed to send email",
						"to", task.to, "subject", task.subject, "error", err)
				}
			}

			return nil
		})
	}
}

// Enqueue hands a message to the pool without blocking the caller. When
// the queue is full, or the worker has already stopped, the message is
// dropped and logged.
func (w *EmailWorker) Enqueue(to, subject, html, text string) {
	if w.stopped.Load() {
		w.logger.Error("email worker stopped, dropping message", "to", to, "subject", subject)
		return
	}

	select {
	case w.queue <- emailTask{to: to, subject: subject, html: html, text: text}:
	default:
		w.logger.Error("email queue full, dropping message", "to", to, "subject", subject)
	}
}

// Stop closes the queue and waits for the pool to drain the backlog.
func (w *EmailWorker) Stop() {
	if w.group == nil || !w.stopped.CompareAndSwap(false, true) {
		return
	}

	close(w.queue)
	_ = w.group.Wait()
}

// QueueLength is exposed for tests.
func (w *EmailWorker) QueueLength() int {
	return len(w.queue)
}
