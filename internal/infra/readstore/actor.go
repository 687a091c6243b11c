package readstore

import (
	"context"
	"errors"
	"fmt"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/infra/db"
	"meetgrid/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ActorDirectory adapts the role-specific participant tables to the single
// profile shape the use cases consume. Each role keeps its own schema; the
// adapter for the reference's role is picked here.
type ActorDirectory struct {
	db      db.DBTX
	readers map[meeting.Role]profileReader
}

type profileReader func(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ActorProfile, error)

func NewActorDirectory(dbtx db.DBTX) *ActorDirectory {
	return &ActorDirectory{
		db: dbtx,
		readers: map[meeting.Role]profileReader{
			meeting.RoleAttendee:  readAttendee,
			meeting.RoleExhibitor: readExhibitor,
			meeting.RoleSpeaker:   readSpeaker,
		},
	}
}

func (d *ActorDirectory) Resolve(ctx context.Context, ref meeting.ActorRef) (*shared.ActorProfile, error) {
	read, ok := d.readers[ref.Role]
	if !ok {
		return nil, infra.WrapRepoErr(fmt.Sprintf("no directory for role %q", ref.Role), nil, infra.KindNotFound)
	}
	return read(ctx, d.db, ref.ID)
}

func readAttendee(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ActorProfile, error) {
	const q = `SELECT id, full_name, email, open_to_meetings, available_days
		FROM attendees WHERE id = $1`

	p := shared.ActorProfile{Role: meeting.RoleAttendee}
	err := dbtx.QueryRow(ctx, q, id).Scan(&p.ID, &p.DisplayName, &p.Email, &p.OpenToMeetings, &p.AvailableDays)
	if err != nil {
		return nil, wrapProfileErr("attendee", err)
	}
	return &p, nil
}

func readExhibitor(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ActorProfile, error) {
	const q = `SELECT id, contact_name, company_name, email, open_to_meetings, available_days
		FROM exhibitors WHERE id = $1`

	p := shared.ActorProfile{Role: meeting.RoleExhibitor}
	var contact, company string
	err := dbtx.QueryRow(ctx, q, id).Scan(&p.ID, &contact, &company, &p.Email, &p.OpenToMeetings, &p.AvailableDays)
	if err != nil {
		return nil, wrapProfileErr("exhibitor", err)
	}
	p.DisplayName = fmt.Sprintf("%s (%s)", contact, company)
	return &p, nil
}

func readSpeaker(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ActorProfile, error) {
	const q = `SELECT id, full_name, email, open_to_meetings, available_days
		FROM speakers WHERE id = $1`

	p := shared.ActorProfile{Role: meeting.RoleSpeaker}
	err := dbtx.QueryRow(ctx, q, id).Scan(&p.ID, &p.DisplayName, &p.Email, &p.OpenToMeetings, &p.AvailableDays)
	if err != nil {
		return nil, wrapProfileErr("speaker", err)
	}
	return &p, nil
}

func wrapProfileErr(role string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(role+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+role, err)
}

var _ shared.ActorDirectory = (*ActorDirectory)(nil)
