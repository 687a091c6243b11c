package readstore

import (
	"context"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/infra/db"

	"github.com/google/uuid"
)

// ConflictReadStore answers whether a slot is busy for either participant.
// It consults two independent guards: live meeting requests holding the
// slot, and rows in the slot-lock ledger.
type ConflictReadStore struct {
	db db.DBTX
}

func NewConflictReadStore(dbtx db.DBTX) *ConflictReadStore {
	return &ConflictReadStore{db: dbtx}
}

func (s *ConflictReadStore) SlotBusy(ctx context.Context, eventID uuid.UUID, slot meeting.Slot, excludeMeetingID uuid.UUID, participants ...meeting.ActorRef) (bool, error) {
	p := normalizePair(participants)

	held, err := s.requestHoldsSlot(ctx, eventID, slot, excludeMeetingID, p)
	if err != nil {
		return false, err
	}
	if held {
		return true, nil
	}
	return s.ledgerHoldsSlot(ctx, eventID, slot, p)
}

func (s *ConflictReadStore) requestHoldsSlot(ctx context.Context, eventID uuid.UUID, slot meeting.Slot, excludeMeetingID uuid.UUID, p [2]meeting.ActorRef) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM meeting_requests
		WHERE event_id = $1 AND id <> $2
		  AND status IN ('pending', 'accepted', 'reschedule_proposed')
		  AND (requested_at = $3 OR proposed_new_at = $3)
		  AND ((sender_id = $4 AND sender_role = $5) OR (receiver_id = $4 AND receiver_role = $5)
		    OR (sender_id = $6 AND sender_role = $7) OR (receiver_id = $6 AND receiver_role = $7))
	)`

	var busy bool
	err := s.db.QueryRow(ctx, q,
		eventID, excludeMeetingID, slot.Start(),
		p[0].ID, p[0].Role.String(),
		p[1].ID, p[1].Role.String(),
	).Scan(&busy)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check meeting requests for slot", err)
	}
	return busy, nil
}

func (s *ConflictReadStore) ledgerHoldsSlot(ctx context.Context, eventID uuid.UUID, slot meeting.Slot, p [2]meeting.ActorRef) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM slot_locks
		WHERE event_id = $1 AND slot_starts_at = $2
		  AND ((actor_id = $3 AND actor_role = $4) OR (actor_id = $5 AND actor_role = $6))
	)`

	var busy bool
	err := s.db.QueryRow(ctx, q,
		eventID, slot.Start(),
		p[0].ID, p[0].Role.String(),
		p[1].ID, p[1].Role.String(),
	).Scan(&busy)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot locks", err)
	}
	return busy, nil
}

func normalizePair(participants []meeting.ActorRef) [2]meeting.ActorRef {
	var p [2]meeting.ActorRef
	switch len(participants) {
	case 0:
	case 1:
		p[0], p[1] = participants[0], participants[0]
	default:
		p[0], p[1] = participants[0], participants[1]
	}
	return p
}
