package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "todoez/internal/delivery/context"
	"todoez/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/task-events"

// localHTTPPublisher posts push-shaped messages straight to the notifier,
// standing in for a Pub/Sub push subscription during development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that posts to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishTaskAssigned sends the event and fails on any non-2xx answer.
func (p *localHTTPPublisher) PublishTaskAssigned(ctx context.Context, event *service.TaskAssignedEvent) error {
	pushMsg, err := NewTaskAssignedPush(event, uuid.NewString(), localSubscription)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	deliverycontext.LoggerFrom(ctx, p.logger).Info("[LocalPubSub] Task assignment delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("task_id", event.TaskID),
	)

	return nil
}

// Close is a no-op.
func (p *localHTTPPublisher) Close() error {
	return nil
}
