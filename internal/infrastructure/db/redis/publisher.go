package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

const notificationsChannel = "seobuddy:notifications"

// notificationEvent is the wire shape published for the ops/chat widget.
type notificationEvent struct {
	Type       string    `json:"type"`
	LeadID     string    `json:"lead_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Source     string    `json:"source,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher pushes lead notifications onto the Redis pub/sub channel the
// notification widget subscribes to.
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a Publisher wrapping the given Redis client.
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// PublishLead announces a newly captured lead. Subscribers may be absent;
// publishing to an empty channel is not an error.
func (p *Publisher) PublishLead(ctx context.Context, lead domain.Lead) error {
	payload, err := json.Marshal(notificationEvent{
		Type:       "lead.captured",
		LeadID:     lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		Source:     lead.Source,
		OccurredAt: lead.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := p.client.Publish(ctx, notificationsChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
