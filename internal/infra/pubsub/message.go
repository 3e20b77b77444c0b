package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"todoez/internal/domain/constants"
	"todoez/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the body Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// taskAssignedAttributes are attached to every task assignment message for filtering and tracing.
func taskAssignedAttributes(event *service.TaskAssignedEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrEventType: constants.EventTaskAssigned,
		constants.AttrTaskID:    event.TaskID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}

// NewTaskAssignedPush wraps the event the same way a Pub/Sub push subscription would.
func NewTaskAssignedPush(event *service.TaskAssignedEvent, messageID, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = taskAssignedAttributes(event)
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// EventType returns the event type attribute, defaulting to task assignment
// for messages published without attributes.
func (m *PushMessage) EventType() string {
	if eventType := m.Message.Attributes[constants.AttrEventType]; eventType != "" {
		return eventType
	}

	return constants.EventTaskAssigned
}

// DecodeTaskAssigned decodes the base64 payload into a task assignment event.
func (m *PushMessage) DecodeTaskAssigned() (*service.TaskAssignedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.TaskAssignedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse task assigned event")
	}
	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes[constants.AttrRequestID]
	}

	return &event, nil
}
