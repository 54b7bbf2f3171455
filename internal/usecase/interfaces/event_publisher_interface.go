package interfaces

import "context"

// IEventPublisher emits the logical notify events (status changes, approval
// requests/decisions, invoice generation). Delivery is best-effort: use cases
// log and continue when publishing fails.

type IEventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
