package notification

import (
	"context"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls    [][]string
	response func(tokens []string) (*messaging.BatchResponse, error)
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.calls = append(f.calls, message.Tokens)

	return f.response(message.Tokens)
}

func allSucceed(tokens []string) (*messaging.BatchResponse, error) {
	responses := make([]*messaging.SendResponse, len(tokens))
	for i := range tokens {
		responses[i] = &messaging.SendResponse{Success: true, MessageID: fmt.Sprintf("m-%d", i)}
	}

	return &messaging.BatchResponse{SuccessCount: len(tokens), Responses: responses}, nil
}

func TestFirebaseService_SendBatchNotification_Chunks(t *testing.T) {
	sender := &fakeSender{response: allSucceed}
	svc := &firebaseService{client: sender}

	tokens := make([]string, 1203)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	result, err := svc.SendBatchNotification(context.Background(), tokens, "Task assigned", "Fix login", nil)
	require.NoError(t, err)
	assert.Equal(t, 1203, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)

	require.Len(t, sender.calls, 3)
	assert.Len(t, sender.calls[0], 500)
	assert.Len(t, sender.calls[1], 500)
	assert.Len(t, sender.calls[2], 203)
}

func TestFirebaseService_SendBatchNotification_NoTokens(t *testing.T) {
	sender := &fakeSender{response: allSucceed}
	svc := &firebaseService{client: sender}

	result, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, sender.calls)
}

func TestFirebaseService_SendBatchNotification_Error(t *testing.T) {
	sender := &fakeSender{response: func([]string) (*messaging.BatchResponse, error) {
		return nil, errors.New("unavailable")
	}}
	svc := &firebaseService{client: sender}

	_, err := svc.SendBatchNotification(context.Background(), []string{"a"}, "t", "b", nil)
	assert.ErrorContains(t, err, "failed to send multicast notification")
}
