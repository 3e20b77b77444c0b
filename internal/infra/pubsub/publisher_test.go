package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoez/config"
	deliverycontext "todoez/internal/delivery/context"
	"todoez/internal/domain/constants"
	"todoez/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.TaskAssignedEvent {
	return &service.TaskAssignedEvent{
		RequestID:      "req-1",
		TaskID:         "0b8c3a49-8f7e-4b55-9d1e-3f7b3cf2d6a1",
		ProjectID:      "f3c1e5de-55c4-4f0e-9c0c-0d4a2d1f1a10",
		AssigneeUserID: "5b1d6a3e-8a9b-4d5c-b6e7-f8091a2b3c4d",
		Content:        "Fix login redirect",
	}
}

func TestLocalHTTPPublisher_PublishTaskAssigned(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishTaskAssigned(context.Background(), event))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.EventTaskAssigned, received.EventType())
	assert.Equal(t, event.TaskID, received.Message.Attributes[constants.AttrTaskID])
	assert.NotEmpty(t, received.Message.MessageID)

	decoded, err := received.DecodeTaskAssigned()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishTaskAssigned(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "503")
}

func TestPushMessage_DecodeTaskAssigned(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""
	msg, err := NewTaskAssignedPush(event, "m-1", localSubscription)
	require.NoError(t, err)
	msg.Message.Attributes[constants.AttrRequestID] = "from-attributes"

	decoded, err := msg.DecodeTaskAssigned()
	require.NoError(t, err)
	assert.Equal(t, "from-attributes", decoded.RequestID)

	msg.Message.Data = "%%%not-base64"
	_, err = msg.DecodeTaskAssigned()
	assert.ErrorContains(t, err, "decode message data")
}

func TestPushMessage_EventTypeDefault(t *testing.T) {
	var msg PushMessage

	assert.Equal(t, constants.EventTaskAssigned, msg.EventType())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantNoop bool
		wantErr  string
	}{
		{name: "not configured", pubsub: nil, wantNoop: true},
		{name: "none provider", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderNone}, wantNoop: true},
		{name: "local provider", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8090/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
			lc.RequireStart().RequireStop()
		})
	}
}
