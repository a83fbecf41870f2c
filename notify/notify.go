package notify

import (
	"context"
	"time"

	"platepix/backend/models"
)

// InquiryEvent is published after an inquiry has been stored.
type InquiryEvent struct {
	Type           string          `json:"type"`
	ID             string          `json:"id"`
	RestaurantName string          `json:"restaurant_name"`
	ContactName    string          `json:"contact_name"`
	Phone          string          `json:"phone"`
	City           *string         `json:"city,omitempty"`
	Platform       models.Platform `json:"platform"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

const EventInquiryCreated = "inquiry.created"

func NewInquiryEvent(id string, inq models.Inquiry, now time.Time) InquiryEvent {
	return InquiryEvent{
		Type:           EventInquiryCreated,
		ID:             id,
		RestaurantName: inq.RestaurantName,
		ContactName:    inq.ContactName,
		Phone:          inq.Phone,
		City:           inq.City,
		Platform:       inq.Platform,
		OccurredAt:     now.UTC(),
	}
}

// Publisher hands new-lead events to whoever follows up on them.
type Publisher interface {
	Publish(ctx context.Context, ev InquiryEvent) error
	// Health reports whether events can currently be delivered.
	Health(ctx context.Context) error
	Close() error
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, InquiryEvent) error { return nil }
func (Nop) Health(context.Context) error                { return ErrDisabled }
func (Nop) Close() error                                { return nil }
