package readstore

import (
	"context"
	"errors"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/infra/db"
	"meetgrid/internal/usecase/queries"
	"meetgrid/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MeetingReadStore struct {
	db db.DBTX
}

func NewMeetingReadStore(dbtx db.DBTX) *MeetingReadStore {
	return &MeetingReadStore{db: dbtx}
}

const meetingColumns = `id, event_id, sender_id, sender_role, receiver_id, receiver_role,
	subject, message, requested_at, proposed_new_at, accepted_at, status, created_at, updated_at`

func (s *MeetingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MeetingRecord, error) {
	q := `SELECT ` + meetingColumns + ` FROM meeting_requests WHERE id = $1`

	rec, err := s.scanMeeting(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("meeting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meeting", err)
	}

	history, err := s.loadHistory(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.History = history
	return rec, nil
}

func (s *MeetingReadStore) FindByActor(ctx context.Context, actorID uuid.UUID, actorRole string) ([]*queries.MeetingRecord, error) {
	q := `SELECT ` + meetingColumns + ` FROM meeting_requests
		WHERE (sender_id = $1 AND sender_role = $2) OR (receiver_id = $1 AND receiver_role = $2)
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q, actorID, actorRole)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meetings", err)
	}
	defer rows.Close()

	var recs []*queries.MeetingRecord
	for rows.Next() {
		rec, err := s.scanMeeting(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan meeting", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read meetings", err)
	}
	return recs, nil
}

// SnapshotByID is the lightweight projection the command side and the
// reminder worker read; history is never loaded here.
func (s *MeetingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.MeetingSnapshot, error) {
	const q = `SELECT id, event_id, sender_id, sender_role, receiver_id, receiver_role,
		subject, requested_at, status
		FROM meeting_requests WHERE id = $1`

	var (
		snap                 shared.MeetingSnapshot
		senderRl, receiverRl string
		status               string
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.EventID,
		&snap.Sender.ID, &senderRl, &snap.Receiver.ID, &receiverRl,
		&snap.Subject, &snap.RequestedAt, &status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("meeting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meeting", err)
	}
	snap.Sender.Role = meeting.Role(senderRl)
	snap.Receiver.Role = meeting.Role(receiverRl)
	snap.Status = meeting.Status(status)
	return &snap, nil
}

func (s *MeetingReadStore) scanMeeting(row pgx.Row) (*queries.MeetingRecord, error) {
	var rec queries.MeetingRecord
	err := row.Scan(
		&rec.ID, &rec.EventID,
		&rec.SenderID, &rec.SenderRole, &rec.ReceiverID, &rec.ReceiverRole,
		&rec.Subject, &rec.Message,
		&rec.RequestedAt, &rec.ProposedNewAt, &rec.AcceptedAt,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *MeetingReadStore) loadHistory(ctx context.Context, meetingID uuid.UUID) ([]queries.HistoryRecord, error) {
	const q = `SELECT actor_id, actor_role, action, note, occurred_at
		FROM meeting_history WHERE meeting_id = $1 ORDER BY id`

	rows, err := s.db.Query(ctx, q, meetingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load meeting history", err)
	}
	defer rows.Close()

	var history []queries.HistoryRecord
	for rows.Next() {
		var h queries.HistoryRecord
		if err := rows.Scan(&h.ActorID, &h.ActorRole, &h.Action, &h.Note, &h.At); err != nil {
			return nil, infra.WrapRepoErr("failed to scan meeting history", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read meeting history", err)
	}
	return history, nil
}

var _ queries.MeetingReadStore = (*MeetingReadStore)(nil)
