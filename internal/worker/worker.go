// Package worker drains the checkout side-effect queue: one sold-count or
// coupon-usage increment per task, applied idempotently.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"henawys-art/internal/domain"
	"henawys-art/internal/messaging"
)

type taskRepo interface {
	Process(ctx context.Context, t domain.SideEffectTask) (bool, error)
}

type Worker struct {
	subscriber messaging.Subscriber
	tasks      taskRepo
	logger     *log.Logger
}

func New(subscriber messaging.Subscriber, tasks taskRepo, logger *log.Logger) *Worker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Worker{subscriber: subscriber, tasks: tasks, logger: logger}
}

// Run consumes until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	return w.subscriber.Consume(ctx, w.Handle)
}

// Handle decodes and applies one task. A malformed payload is an error the
// broker will redeliver; a duplicate task is accepted silently.
func (w *Worker) Handle(ctx context.Context, payload []byte) error {
	var t domain.SideEffectTask
	if err := json.Unmarshal(payload, &t); err != nil {
		return fmt.Errorf("decode task: %w", err)
	}
	if t.ID == "" {
		return fmt.Errorf("task without id (order=%s kind=%s)", t.OrderID, t.Kind)
	}

	applied, err := w.tasks.Process(ctx, t)
	if err != nil {
		return fmt.Errorf("process task %s: %w", t.ID, err)
	}
	if !applied {
		w.logger.Printf("worker: skipped duplicate task id=%s", t.ID)
	}
	return nil
}
