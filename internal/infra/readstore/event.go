package readstore

import (
	"context"
	"errors"

	"meetgrid/internal/infra"
	"meetgrid/internal/infra/db"
	"meetgrid/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

func (s *EventReadStore) BoundsByID(ctx context.Context, id uuid.UUID) (*shared.EventBounds, error) {
	const q = `SELECT id, name, starts_at, ends_at FROM events WHERE id = $1`

	var bounds shared.EventBounds
	err := s.db.QueryRow(ctx, q, id).Scan(&bounds.ID, &bounds.Name, &bounds.StartsAt, &bounds.EndsAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	return &bounds, nil
}

var _ shared.EventDirectory = (*EventReadStore)(nil)
