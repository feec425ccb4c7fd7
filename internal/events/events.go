package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeCreated = "created"
	TypeUpdated = "updated"
	TypeDeleted = "deleted"
)

// Event describes a committed mutation of a project or plan.
type Event struct {
	Type        string     `json:"type"`
	Entity      string     `json:"entity"`
	GUID        uuid.UUID  `json:"guid"`
	ProjectGUID *uuid.UUID `json:"project_guid,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

// Publisher delivers change events. Delivery is best effort: callers log
// failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// NopPublisher drops every event. Used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
