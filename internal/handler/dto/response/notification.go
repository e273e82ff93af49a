package response

import (
	"time"

	"storefront/internal/infra/feed"
)

type NotificationResponse struct {
	Type        string    `json:"type"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Variant     string    `json:"variant,omitempty"`
	Path        string    `json:"path,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type NotificationListResponse struct {
	Events []NotificationResponse `json:"events"`
}

func FromFeedEvents(events []feed.Event) *NotificationListResponse {
	out := make([]NotificationResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NotificationResponse{
			Type:        string(e.Type),
			Title:       e.Title,
			Description: e.Description,
			Variant:     string(e.Variant),
			Path:        e.Path,
			OccurredAt:  e.OccurredAt,
		})
	}
	return &NotificationListResponse{Events: out}
}
