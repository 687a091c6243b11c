package queries

import (
	"context"
	"time"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/pkg/errs"
	"meetgrid/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMeetingNotFound = errs.New("meeting not found")
	ErrNotParticipant  = errs.New("actor is not a participant of this meeting")
	ErrNotExportable   = errs.New("only accepted meetings are exportable")
)

// MeetingDurationMinutes is fixed by the 30-minute slot grid.
const MeetingDurationMinutes = 30

// Read models (DTO for read side)
type ActorView struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
}

type HistoryEntryView struct {
	ActorID   uuid.UUID `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Action    string    `json:"action"`
	At        time.Time `json:"at"`
	Note      *string   `json:"note,omitempty"`
}

type MeetingView struct {
	ID            uuid.UUID          `json:"id"`
	EventID       uuid.UUID          `json:"event_id"`
	Sender        ActorView          `json:"sender"`
	Receiver      ActorView          `json:"receiver"`
	Subject       string             `json:"subject"`
	Message       *string            `json:"message,omitempty"`
	RequestedAt   time.Time          `json:"requested_at"`
	ProposedNewAt *time.Time         `json:"proposed_new_at,omitempty"`
	AcceptedAt    *time.Time         `json:"accepted_at,omitempty"`
	Status        string             `json:"status"`
	History       []HistoryEntryView `json:"history"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type MeetingListItem struct {
	ID          uuid.UUID `json:"id"`
	EventID     uuid.UUID `json:"event_id"`
	Subject     string    `json:"subject"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
	Counterpart ActorView `json:"counterpart"`
	CreatedAt   time.Time `json:"created_at"`
}

// CalendarEvent is the export payload an external ICS generator consumes;
// the core never produces file bytes.
type CalendarEvent struct {
	Subject          string    `json:"subject"`
	StartsAt         time.Time `json:"starts_at"`
	DurationMinutes  int       `json:"duration_minutes"`
	ParticipantNames []string  `json:"participant_names"`
}

// MeetingRecord is the raw read-store row with actor references unresolved.
type MeetingRecord struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	SenderID      uuid.UUID
	SenderRole    string
	ReceiverID    uuid.UUID
	ReceiverRole  string
	Subject       string
	Message       *string
	RequestedAt   time.Time
	ProposedNewAt *time.Time
	AcceptedAt    *time.Time
	Status        string
	History       []HistoryRecord
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type HistoryRecord struct {
	ActorID   uuid.UUID
	ActorRole string
	Action    string
	At        time.Time
	Note      *string
}

type MeetingQueries interface {
	GetByID(ctx context.Context, actor meeting.ActorRef, id uuid.UUID) (*MeetingView, error)
	ListByActor(ctx context.Context, actor meeting.ActorRef) ([]*MeetingListItem, error)
	CalendarExport(ctx context.Context, actor meeting.ActorRef, id uuid.UUID) (*CalendarEvent, error)
}

type MeetingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MeetingRecord, error)
	FindByActor(ctx context.Context, actorID uuid.UUID, actorRole string) ([]*MeetingRecord, error)
}

type meetingQueriesImpl struct {
	store     MeetingReadStore
	directory shared.ActorDirectory
}

func NewMeetingQueries(store MeetingReadStore, directory shared.ActorDirectory) MeetingQueries {
	return &meetingQueriesImpl{store: store, directory: directory}
}

func (q *meetingQueriesImpl) GetByID(ctx context.Context, actor meeting.ActorRef, id uuid.UUID) (*MeetingView, error) {
	rec, err := q.findVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return q.toView(ctx, rec)
}

func (q *meetingQueriesImpl) ListByActor(ctx context.Context, actor meeting.ActorRef) ([]*MeetingListItem, error) {
	recs, err := q.store.FindByActor(ctx, actor.ID, actor.Role.String())
	if err != nil {
		return nil, err
	}

	items := make([]*MeetingListItem, 0, len(recs))
	for _, rec := range recs {
		counterpartID, counterpartRole := rec.ReceiverID, rec.ReceiverRole
		if counterpartID == actor.ID && counterpartRole == actor.Role.String() {
			counterpartID, counterpartRole = rec.SenderID, rec.SenderRole
		}
		items = append(items, &MeetingListItem{
			ID:          rec.ID,
			EventID:     rec.EventID,
			Subject:     rec.Subject,
			Status:      rec.Status,
			RequestedAt: rec.RequestedAt,
			Counterpart: q.resolveView(ctx, counterpartID, counterpartRole),
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}

func (q *meetingQueriesImpl) CalendarExport(ctx context.Context, actor meeting.ActorRef, id uuid.UUID) (*CalendarEvent, error) {
	rec, err := q.findVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != meeting.StatusAccepted.String() {
		return nil, ErrNotExportable
	}

	sender := q.resolveView(ctx, rec.SenderID, rec.SenderRole)
	receiver := q.resolveView(ctx, rec.ReceiverID, rec.ReceiverRole)
	return &CalendarEvent{
		Subject:          rec.Subject,
		StartsAt:         rec.RequestedAt,
		DurationMinutes:  MeetingDurationMinutes,
		ParticipantNames: []string{sender.DisplayName, receiver.DisplayName},
	}, nil
}

func (q *meetingQueriesImpl) findVisible(ctx context.Context, actor meeting.ActorRef, id uuid.UUID) (*MeetingRecord, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}

	if actor.Role == meeting.RoleAdmin {
		return rec, nil
	}
	isSender := rec.SenderID == actor.ID && rec.SenderRole == actor.Role.String()
	isReceiver := rec.ReceiverID == actor.ID && rec.ReceiverRole == actor.Role.String()
	if !isSender && !isReceiver {
		return nil, ErrNotParticipant
	}
	return rec, nil
}

func (q *meetingQueriesImpl) toView(ctx context.Context, rec *MeetingRecord) (*MeetingView, error) {
	history := make([]HistoryEntryView, len(rec.History))
	for i, h := range rec.History {
		history[i] = HistoryEntryView{
			ActorID:   h.ActorID,
			ActorRole: h.ActorRole,
			Action:    h.Action,
			At:        h.At,
			Note:      h.Note,
		}
	}

	return &MeetingView{
		ID:            rec.ID,
		EventID:       rec.EventID,
		Sender:        q.resolveView(ctx, rec.SenderID, rec.SenderRole),
		Receiver:      q.resolveView(ctx, rec.ReceiverID, rec.ReceiverRole),
		Subject:       rec.Subject,
		Message:       rec.Message,
		RequestedAt:   rec.RequestedAt,
		ProposedNewAt: rec.ProposedNewAt,
		AcceptedAt:    rec.AcceptedAt,
		Status:        rec.Status,
		History:       history,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}, nil
}

// resolveView degrades to the bare reference when the profile is missing;
// read paths never fail on a dangling directory entry.
func (q *meetingQueriesImpl) resolveView(ctx context.Context, id uuid.UUID, role string) ActorView {
	view := ActorView{ID: id, Role: role}
	profile, err := q.directory.Resolve(ctx, meeting.ActorRef{ID: id, Role: meeting.Role(role)})
	if err != nil {
		return view
	}
	view.DisplayName = profile.DisplayName
	view.Email = profile.Email
	return view
}
