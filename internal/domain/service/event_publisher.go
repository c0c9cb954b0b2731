package service

import (
	"context"
	"time"
)

// Account lifecycle event types.
const (
	EventAccountCreated = "account.created"
	EventAccountDeleted = "account.deleted"
)

// AccountEvent represents an account lifecycle change published for
// downstream consumers (e.g., CRM sync, welcome mail). It carries no
// credential material.
type AccountEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	AccountID  string    `json:"account_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event for async processing.
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
