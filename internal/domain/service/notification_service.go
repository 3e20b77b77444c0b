package service

import (
	"context"
)

// PushResult summarizes a multicast push.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed.
}

// NotificationService sends push notifications to devices.
type NotificationService interface {
	// SendBatchNotification sends one notification to every token.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (*PushResult, error)
}
