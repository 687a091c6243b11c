package repository

import (
	"context"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/infra/db"

	"github.com/google/uuid"
)

// SlotLockRepository writes the slot ledger. The UNIQUE constraint on
// (event_id, actor_id, actor_role, slot_starts_at) is the sole hard
// mutual-exclusion primitive in the system.
type SlotLockRepository struct {
	db db.DBTX
}

func NewSlotLockRepository(dbtx db.DBTX) *SlotLockRepository {
	return &SlotLockRepository{db: dbtx}
}

// InsertPair inserts both participants' lock rows in one statement, so a
// uniqueness violation on either row fails the insert as a whole.
func (r *SlotLockRepository) InsertPair(ctx context.Context, eventID, meetingID uuid.UUID, slot meeting.Slot, participants [2]meeting.ActorRef) error {
	const q = `INSERT INTO slot_locks (event_id, actor_id, actor_role, slot_starts_at, meeting_id)
		VALUES ($1, $2, $3, $4, $5), ($1, $6, $7, $4, $5)`

	_, err := r.db.Exec(ctx, q,
		eventID,
		participants[0].ID, participants[0].Role.String(),
		slot.Start(), meetingID,
		participants[1].ID, participants[1].Role.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert slot locks", err)
	}
	return nil
}

func (r *SlotLockRepository) DeletePair(ctx context.Context, eventID uuid.UUID, slot meeting.Slot, participants [2]meeting.ActorRef) error {
	const q = `DELETE FROM slot_locks
		WHERE event_id = $1 AND slot_starts_at = $2
		  AND ((actor_id = $3 AND actor_role = $4) OR (actor_id = $5 AND actor_role = $6))`

	_, err := r.db.Exec(ctx, q,
		eventID, slot.Start(),
		participants[0].ID, participants[0].Role.String(),
		participants[1].ID, participants[1].Role.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot locks", err)
	}
	return nil
}
