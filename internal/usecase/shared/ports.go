package shared

import (
	"context"
	"time"

	"meetgrid/internal/domain/meeting"

	"github.com/google/uuid"
)

// ActorProfile is the normalized identity record every role-specific schema
// is adapted to. The core never sees the role-specific shapes.
type ActorProfile struct {
	ID             uuid.UUID
	Role           meeting.Role
	Email          string
	DisplayName    string
	OpenToMeetings bool
	// AvailableDays restricts which UTC days the actor accepts meetings on.
	// nil means no restriction.
	AvailableDays []time.Time
}

// AvailableOn reports whether day (midnight UTC) is acceptable for this
// actor. An absent allow-list permits every day.
func (p *ActorProfile) AvailableOn(day time.Time) bool {
	if p.AvailableDays == nil {
		return true
	}
	for _, d := range p.AvailableDays {
		if d.Year() == day.Year() && d.Month() == day.Month() && d.Day() == day.Day() {
			return true
		}
	}
	return false
}

// ActorDirectory resolves a role-tagged reference through the role -> adapter
// map into the normalized profile.
type ActorDirectory interface {
	Resolve(ctx context.Context, ref meeting.ActorRef) (*ActorProfile, error)
}

type EventBounds struct {
	ID       uuid.UUID
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
}

type EventDirectory interface {
	BoundsByID(ctx context.Context, id uuid.UUID) (*EventBounds, error)
}

// Notifier dispatches a notification. Fire-and-forget: failures are surfaced
// to the caller for logging but never roll back committed state.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
