// Package feed is the per-user event feed the storefront client drains for
// toasts and navigation directives. Publishing is fire-and-forget: a user who
// never polls again simply never sees the event, and a failed write is logged
// rather than failing the operation that produced it.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/infra/kv"
	"storefront/internal/pkg/clock"

	"github.com/google/uuid"
)

const maxEventsPerUser = 50

type EventType string

const (
	EventToast    EventType = "toast"
	EventNavigate EventType = "navigate"
)

type Variant string

const (
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
)

type Event struct {
	Type        EventType `json:"type"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Variant     Variant   `json:"variant,omitempty"`
	Path        string    `json:"path,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Feed struct {
	kv    kv.Store
	codec kv.Codec
	clock clock.Clock
}

func NewFeed(kvStore kv.Store, clk clock.Clock) *Feed {
	return &Feed{kv: kvStore, codec: kv.NewCodec(), clock: clk}
}

func feedKey(userID uuid.UUID) string {
	return fmt.Sprintf("feed:%s", userID)
}

func (f *Feed) Notify(ctx context.Context, userID uuid.UUID, title, description string, success bool) {
	variant := VariantSuccess
	if !success {
		variant = VariantDestructive
	}
	f.publish(ctx, userID, Event{
		Type:        EventToast,
		Title:       title,
		Description: description,
		Variant:     variant,
		OccurredAt:  f.clock.Now(),
	})
}

func (f *Feed) Navigate(ctx context.Context, userID uuid.UUID, path string) {
	if path == "" {
		return
	}
	f.publish(ctx, userID, Event{
		Type:       EventNavigate,
		Path:       path,
		OccurredAt: f.clock.Now(),
	})
}

// Drain pops and returns all queued events for the user.
func (f *Feed) Drain(ctx context.Context, userID uuid.UUID) ([]Event, error) {
	raw, err := f.kv.PopAll(ctx, feedKey(userID))
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(raw))
	for _, data := range raw {
		var ev Event
		if err := f.codec.Decode(data, &ev); err != nil {
			slog.Warn("skipping unreadable feed event", "user_id", userID, "error", err.Error())
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (f *Feed) publish(ctx context.Context, userID uuid.UUID, ev Event) {
	data, err := f.codec.Encode(ev)
	if err != nil {
		slog.Warn("failed to encode feed event", "user_id", userID, "error", err.Error())
		return
	}
	if err := f.kv.RPush(ctx, feedKey(userID), data, maxEventsPerUser); err != nil {
		slog.Warn("failed to publish feed event", "user_id", userID, "type", ev.Type, "error", err.Error())
	}
}
