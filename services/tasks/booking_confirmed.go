package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travelagent/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmed = "booking:confirmed"

// NewBookingConfirmedTask builds the task sent after a booking is stored.
func NewBookingConfirmedTask(notice models.BookingNotice) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(notice)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmed, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second)}
	return task, opts, nil
}

// ParseBookingConfirmed decodes a task payload built by NewBookingConfirmedTask.
func ParseBookingConfirmed(task *asynq.Task) (models.BookingNotice, error) {
	var notice models.BookingNotice
	if err := json.Unmarshal(task.Payload(), &notice); err != nil {
		return notice, fmt.Errorf("invalid %s payload: %w", TypeBookingConfirmed, err)
	}
	return notice, nil
}

// Enqueuer hands booking notices to the background worker.
type Enqueuer interface {
	EnqueueBookingConfirmed(ctx context.Context, notice models.BookingNotice) error
}

// AsynqEnqueuer enqueues tasks on Redis through asynq.
type AsynqEnqueuer struct {
	client *asynq.Client
}

func NewAsynqEnqueuer(opt asynq.RedisClientOpt) *AsynqEnqueuer {
	return &AsynqEnqueuer{client: asynq.NewClient(opt)}
}

func (e *AsynqEnqueuer) EnqueueBookingConfirmed(ctx context.Context, notice models.BookingNotice) error {
	task, opts, err := NewBookingConfirmedTask(notice)
	if err != nil {
		return err
	}
	if _, err := e.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeBookingConfirmed, err)
	}
	return nil
}

func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}

// NoopEnqueuer drops notices. Used when background tasks are disabled.
type NoopEnqueuer struct{}

func (NoopEnqueuer) EnqueueBookingConfirmed(ctx context.Context, notice models.BookingNotice) error {
	return nil
}
