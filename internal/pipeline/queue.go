package pipeline

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/internal/entity"
)

// Job is one message queued for background processing.
type Job struct {
	UserID  uuid.UUID
	Message entity.RawMessage
}

// MessageQueue processes jobs on a fixed worker pool. Shutdown drains the
// queue before returning.
type MessageQueue struct {
	proc    *Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*MessageQueue)

func WithWorkers(n int) Option {
	return func(q *MessageQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *MessageQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *MessageQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewMessageQueue(proc *Processor, logger *slog.Logger, opts ...Option) *MessageQueue {
	q := &MessageQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *MessageQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					outcome, err := q.proc.ProcessMessage(ctx, job.UserID, job.Message)
					cancel()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "message_id", job.Message.ID, "error", err)
					} else {
						q.logger.Info("message processed", "worker_id", workerID, "message_id", job.Message.ID, "outcome", outcome)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *MessageQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "message_id", job.Message.ID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued message for processing", "message_id", job.Message.ID)
	default:
		q.logger.Warn("queue full, applying backpressure", "message_id", job.Message.ID)
		q.ch <- job
	}
	return nil
}

func (q *MessageQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
