package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"platepix/backend/models"
)

func TestNewInquiryEvent(t *testing.T) {
	city := "Pune"
	inq := models.Inquiry{
		RestaurantName: "Spice Hub",
		ContactName:    "Asha",
		Phone:          "9999999999",
		City:           &city,
	}.WithDefaults()
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("IST", 19800))

	ev := NewInquiryEvent("65f1c0ffee0000000000abcd", inq, now)

	if ev.Type != EventInquiryCreated {
		t.Errorf("expected type %s, got %s", EventInquiryCreated, ev.Type)
	}
	if ev.Platform != models.PlatformBoth {
		t.Errorf("expected platform Both, got %s", ev.Platform)
	}
	if ev.OccurredAt.Location() != time.UTC {
		t.Error("expected OccurredAt in UTC")
	}

	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["id"] != "65f1c0ffee0000000000abcd" || m["city"] != "Pune" {
		t.Errorf("unexpected payload: %s", b)
	}
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), InquiryEvent{}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := p.Health(context.Background()); !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestNewRedisPublisher_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if _, err := NewRedisPublisher("not a url", "q", logger); err == nil {
		t.Error("expected error for invalid url")
	}
	if _, err := NewRedisPublisher("redis://localhost:6379/0", "", logger); err == nil {
		t.Error("expected error for empty queue name")
	}
}

func TestRedisPublisher_UnreachableServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := NewRedisPublisher("redis://127.0.0.1:1/0", "inquiry_events", logger)
	if err != nil {
		t.Fatalf("constructor should not dial: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Publish(ctx, InquiryEvent{Type: EventInquiryCreated}); err == nil {
		t.Error("expected publish to fail")
	}
	if err := p.Health(ctx); err == nil {
		t.Error("expected health check to fail")
	}
}
