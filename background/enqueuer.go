package background

import (
	"context"
	"encoding/json"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/frilo-app/frilo-api/schema"
)

// TaskSender publishes task signatures to the broker
type TaskSender interface {
	SendTaskWithContext(ctx context.Context, signature *tasks.Signature) (*result.AsyncResult, error)
}

// Enqueuer hands push fan-out to the background worker
type Enqueuer struct {
	sender TaskSender
}

func NewEnqueuer(sender TaskSender) *Enqueuer {
	return &Enqueuer{sender: sender}
}

func (e *Enqueuer) Push(ctx context.Context, n *schema.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	_, err = e.sender.SendTaskWithContext(ctx, &tasks.Signature{
		Name: PushNotificationTask,
		Args: []tasks.Arg{
			{Type: "string", Value: string(payload)},
		},
		RetryCount: 3,
	})
	return err
}
