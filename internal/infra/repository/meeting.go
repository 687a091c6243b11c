package repository

import (
	"context"
	"errors"
	"time"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/infra/db"
	"meetgrid/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MeetingRepository struct {
	db db.DBTX
}

func NewMeetingRepository(dbtx db.DBTX) *MeetingRepository {
	return &MeetingRepository{db: dbtx}
}

func (r *MeetingRepository) Create(ctx context.Context, req *meeting.Request) error {
	const q = `INSERT INTO meeting_requests
		(id, event_id, sender_id, sender_role, receiver_id, receiver_role,
		 subject, message, requested_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`

	_, err := r.db.Exec(ctx, q,
		req.ID(), req.EventID(),
		req.Sender().ID, req.Sender().Role.String(),
		req.Receiver().ID, req.Receiver().Role.String(),
		req.Subject(), req.Message(),
		req.RequestedAt().Start(), req.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create meeting request", err)
	}

	return r.insertHistory(ctx, req.ID(), req.PendingHistory())
}

// FindForUpdate loads the aggregate with a row lock held until the
// surrounding transaction ends.
func (r *MeetingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*meeting.Request, error) {
	const q = `SELECT id, event_id, sender_id, sender_role, receiver_id, receiver_role,
		subject, message, requested_at, proposed_new_at, accepted_at, status,
		created_at, updated_at
		FROM meeting_requests WHERE id = $1 FOR UPDATE`

	var (
		meetingID, eventID     uuid.UUID
		senderID, receiverID   uuid.UUID
		senderRl, receiverRl   string
		subject                string
		message                *string
		requestedAt            time.Time
		proposedAt, acceptedAt *time.Time
		status                 string
		createdAt, updatedAt   time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&meetingID, &eventID, &senderID, &senderRl, &receiverID, &receiverRl,
		&subject, &message, &requestedAt, &proposedAt, &acceptedAt, &status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("meeting request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meeting request", err)
	}

	history, err := r.loadHistory(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	proposed := meeting.Slot{}
	if proposedAt != nil {
		proposed = meeting.NormalizeSlot(*proposedAt)
	}

	return meeting.ReconstructRequest(
		meetingID, eventID,
		meeting.ActorRef{ID: senderID, Role: meeting.Role(senderRl)},
		meeting.ActorRef{ID: receiverID, Role: meeting.Role(receiverRl)},
		subject, ptr.Deref(message, ""),
		meeting.NormalizeSlot(requestedAt), proposed,
		acceptedAt,
		meeting.Status(status),
		history,
		createdAt, updatedAt,
	), nil
}

// Update persists the aggregate guarded on the status it was loaded with and
// appends its pending history entries.
func (r *MeetingRepository) Update(ctx context.Context, req *meeting.Request, prevStatus meeting.Status) error {
	const q = `UPDATE meeting_requests
		SET status = $1, requested_at = $2, proposed_new_at = $3, accepted_at = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6`

	var proposed *time.Time
	if !req.ProposedNewAt().IsZero() {
		proposed = ptr.To(req.ProposedNewAt().Start())
	}

	tag, err := r.db.Exec(ctx, q,
		req.Status().String(), req.RequestedAt().Start(), proposed, req.AcceptedAt(),
		req.ID(), prevStatus.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update meeting request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("meeting request status changed concurrently", nil, infra.KindStaleUpdate)
	}

	return r.insertHistory(ctx, req.ID(), req.PendingHistory())
}

func (r *MeetingRepository) insertHistory(ctx context.Context, meetingID uuid.UUID, entries []meeting.HistoryEntry) error {
	const q = `INSERT INTO meeting_history (meeting_id, actor_id, actor_role, action, note, occurred_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`

	for _, e := range entries {
		if _, err := r.db.Exec(ctx, q,
			meetingID, e.Actor.ID, e.Actor.Role.String(), string(e.Action), e.Note, e.At,
		); err != nil {
			return infra.WrapRepoErr("failed to append meeting history", err)
		}
	}
	return nil
}

func (r *MeetingRepository) loadHistory(ctx context.Context, meetingID uuid.UUID) ([]meeting.HistoryEntry, error) {
	const q = `SELECT actor_id, actor_role, action, COALESCE(note, ''), occurred_at
		FROM meeting_history WHERE meeting_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, q, meetingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load meeting history", err)
	}
	defer rows.Close()

	var history []meeting.HistoryEntry
	for rows.Next() {
		var (
			actorID   uuid.UUID
			actorRole string
			action    string
			note      string
			at        time.Time
		)
		if err := rows.Scan(&actorID, &actorRole, &action, &note, &at); err != nil {
			return nil, infra.WrapRepoErr("failed to scan meeting history", err)
		}
		history = append(history, meeting.HistoryEntry{
			Actor:  meeting.ActorRef{ID: actorID, Role: meeting.Role(actorRole)},
			Action: meeting.Action(action),
			At:     at,
			Note:   note,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read meeting history", err)
	}
	return history, nil
}
