package meeting

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEventRequired     = errors.New("event is required")
	ErrSubjectRequired   = errors.New("subject is required")
	ErrMissingSlot       = errors.New("slot is required")
	ErrSameParticipant   = errors.New("sender and receiver must differ")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrActorNotAllowed   = errors.New("actor not allowed to perform this transition")
	ErrNoProposedSlot    = errors.New("no proposed slot to finalize")
)

// Request is the meeting-request aggregate. Status only changes through the
// transition methods below; every successful transition appends exactly one
// history entry. Requests are never physically deleted — decline and cancel
// are terminal statuses, not removal.
type Request struct {
	id            uuid.UUID
	eventID       uuid.UUID
	sender        ActorRef
	receiver      ActorRef
	subject       string
	message       string
	requestedAt   Slot
	proposedNewAt Slot // zero when no proposal is open
	acceptedAt    *time.Time
	status        Status
	history       []HistoryEntry
	pending       []HistoryEntry // entries appended since load, not yet persisted
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRequest(
	eventID uuid.UUID,
	sender, receiver ActorRef,
	subject, message string,
	slot Slot,
	now time.Time,
) (*Request, error) {
	if eventID == uuid.Nil {
		return nil, ErrEventRequired
	}
	if sender.IsZero() || receiver.IsZero() || !sender.Role.IsParticipant() || !receiver.Role.IsParticipant() {
		return nil, ErrInvalidActorRef
	}
	if sender.Equal(receiver) {
		return nil, ErrSameParticipant
	}
	if subject == "" {
		return nil, ErrSubjectRequired
	}
	if slot.IsZero() {
		return nil, ErrMissingSlot
	}

	r := &Request{
		id:          uuid.New(),
		eventID:     eventID,
		sender:      sender,
		receiver:    receiver,
		subject:     subject,
		message:     message,
		requestedAt: slot,
		status:      StatusPending,
	}
	r.appendHistory(sender, ActionRequested, message, now)
	return r, nil
}

func ReconstructRequest(
	id, eventID uuid.UUID,
	sender, receiver ActorRef,
	subject, message string,
	requestedAt, proposedNewAt Slot,
	acceptedAt *time.Time,
	status Status,
	history []HistoryEntry,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:            id,
		eventID:       eventID,
		sender:        sender,
		receiver:      receiver,
		subject:       subject,
		message:       message,
		requestedAt:   requestedAt,
		proposedNewAt: proposedNewAt,
		acceptedAt:    acceptedAt,
		status:        status,
		history:       history,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Accept moves pending -> accepted (receiver) or finalizes an open proposal
// (original sender): requestedAt takes the proposed slot and the proposal is
// cleared.
func (r *Request) Accept(actor ActorRef, now time.Time) error {
	switch r.status {
	case StatusPending:
		if !actor.Equal(r.receiver) {
			return ErrActorNotAllowed
		}
	case StatusRescheduleProposed:
		if !actor.Equal(r.sender) {
			return ErrActorNotAllowed
		}
		if r.proposedNewAt.IsZero() {
			return ErrNoProposedSlot
		}
		r.requestedAt = r.proposedNewAt
		r.proposedNewAt = Slot{}
	default:
		return ErrInvalidTransition
	}

	r.status = StatusAccepted
	at := now
	r.acceptedAt = &at
	r.appendHistory(actor, ActionAccepted, "", now)
	return nil
}

// ProposeNewTime moves pending -> reschedule_proposed. Receiver only; the
// caller has already validated the new slot against window and conflicts.
func (r *Request) ProposeNewTime(actor ActorRef, newSlot Slot, note string, now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	if !actor.Equal(r.receiver) {
		return ErrActorNotAllowed
	}
	if newSlot.IsZero() {
		return ErrMissingSlot
	}

	r.proposedNewAt = newSlot
	r.status = StatusRescheduleProposed
	r.appendHistory(actor, ActionRescheduleProposed, note, now)
	return nil
}

func (r *Request) Decline(actor ActorRef, note string, now time.Time) error {
	switch r.status {
	case StatusPending:
		if !actor.Equal(r.receiver) {
			return ErrActorNotAllowed
		}
	case StatusRescheduleProposed:
		if !actor.Equal(r.sender) {
			return ErrActorNotAllowed
		}
	case StatusAccepted:
		if !r.IsParticipant(actor) {
			return ErrActorNotAllowed
		}
	default:
		return ErrInvalidTransition
	}

	r.status = StatusDeclined
	r.appendHistory(actor, ActionDeclined, note, now)
	return nil
}

// Cancel moves accepted -> cancelled, by either participant or an admin
// override.
func (r *Request) Cancel(actor ActorRef, adminOverride bool, now time.Time) error {
	if r.status != StatusAccepted {
		return ErrInvalidTransition
	}
	if !r.IsParticipant(actor) && !adminOverride {
		return ErrActorNotAllowed
	}

	r.status = StatusCancelled
	r.appendHistory(actor, ActionCancelled, "", now)
	return nil
}

func (r *Request) IsParticipant(actor ActorRef) bool {
	return actor.Equal(r.sender) || actor.Equal(r.receiver)
}

func (r *Request) Participants() [2]ActorRef {
	return [2]ActorRef{r.sender, r.receiver}
}

func (r *Request) appendHistory(actor ActorRef, action Action, note string, at time.Time) {
	entry := HistoryEntry{Actor: actor, Action: action, At: at.UTC(), Note: note}
	r.history = append(r.history, entry)
	r.pending = append(r.pending, entry)
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) EventID() uuid.UUID     { return r.eventID }
func (r *Request) Sender() ActorRef       { return r.sender }
func (r *Request) Receiver() ActorRef     { return r.receiver }
func (r *Request) Subject() string        { return r.subject }
func (r *Request) Message() string        { return r.message }
func (r *Request) RequestedAt() Slot      { return r.requestedAt }
func (r *Request) ProposedNewAt() Slot    { return r.proposedNewAt }
func (r *Request) AcceptedAt() *time.Time { return r.acceptedAt }
func (r *Request) Status() Status         { return r.status }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
func (r *Request) UpdatedAt() time.Time   { return r.updatedAt }

func (r *Request) History() []HistoryEntry {
	out := make([]HistoryEntry, len(r.history))
	copy(out, r.history)
	return out
}

// PendingHistory returns the entries appended since the aggregate was loaded,
// in order. The persistence layer writes exactly these on save.
func (r *Request) PendingHistory() []HistoryEntry {
	out := make([]HistoryEntry, len(r.pending))
	copy(out, r.pending)
	return out
}
