package meeting

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidActorRef = errors.New("invalid actor reference")

// ActorRef is a role-tagged participant identity.
type ActorRef struct {
	ID   uuid.UUID
	Role Role
}

func NewActorRef(id uuid.UUID, role Role) (ActorRef, error) {
	if id == uuid.Nil || !role.IsValid() {
		return ActorRef{}, ErrInvalidActorRef
	}
	return ActorRef{ID: id, Role: role}, nil
}

func (a ActorRef) Equal(o ActorRef) bool {
	return a.ID == o.ID && a.Role == o.Role
}

func (a ActorRef) IsZero() bool {
	return a.ID == uuid.Nil
}

func (a ActorRef) String() string {
	return a.Role.String() + ":" + a.ID.String()
}

// HistoryEntry is one immutable line of a request's audit trail.
type HistoryEntry struct {
	Actor  ActorRef
	Action Action
	At     time.Time
	Note   string
}
