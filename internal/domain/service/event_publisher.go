package service

import (
	"context"
	"time"
)

// CalculationEvent announces a change to a calculation record.
type CalculationEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	EventType     string    `json:"event_type"`
	CalculationID string    `json:"calculation_id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type,omitempty"`
	Inputs        []float64 `json:"inputs,omitempty"`
	Result        float64   `json:"result,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCalculationEvent publishes a calculation change notification
	PublishCalculationEvent(ctx context.Context, event *CalculationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
