package shared

import (
	"context"
	"time"

	"meetgrid/internal/domain/meeting"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: pool-backed command reads for use outside a transaction
	Reads() CommandReads
	// Reminders: pool-backed reminder store; reminder scheduling is
	// deliberately not transactionally coupled to state transitions
	Reminders() ReminderRepository
}

type Tx interface {
	Meetings() MeetingRepository
	SlotLocks() SlotLockRepository
	Reads() CommandReads
}

type MeetingRepository interface {
	Create(ctx context.Context, r *meeting.Request) error
	// FindForUpdate loads the aggregate with a row lock for the duration of
	// the transaction.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*meeting.Request, error)
	// Update persists the aggregate guarded on its previous status and
	// appends the aggregate's pending history entries.
	Update(ctx context.Context, r *meeting.Request, prevStatus meeting.Status) error
}

type SlotLockRepository interface {
	// InsertPair inserts one lock row per participant as a single statement;
	// a uniqueness violation on either row fails the whole insert.
	InsertPair(ctx context.Context, eventID, meetingID uuid.UUID, slot meeting.Slot, participants [2]meeting.ActorRef) error
	DeletePair(ctx context.Context, eventID uuid.UUID, slot meeting.Slot, participants [2]meeting.ActorRef) error
}

// ReminderJob is the write-side snapshot of a scheduled reminder.
type ReminderJob struct {
	MeetingID uuid.UUID
	FireAt    time.Time
	Attempts  int32
	Status    string
}

type ReminderRepository interface {
	// Schedule upserts the job keyed by meeting id; re-scheduling replaces.
	Schedule(ctx context.Context, meetingID uuid.UUID, fireAt time.Time) error
	Cancel(ctx context.Context, meetingID uuid.UUID) error
	// ClaimDue atomically claims up to limit due jobs for processing.
	ClaimDue(ctx context.Context, now time.Time, limit int32) ([]ReminderJob, error)
	MarkSent(ctx context.Context, meetingID uuid.UUID) error
	MarkCancelled(ctx context.Context, meetingID uuid.UUID) error
	// MarkFailed records the failure; requeue returns the job to the queue
	// for another attempt.
	MarkFailed(ctx context.Context, meetingID uuid.UUID, lastError string, requeue bool) error
}

// MeetingSnapshot is the minimal write-side view used by guards and the
// reminder worker.
type MeetingSnapshot struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	Sender      meeting.ActorRef
	Receiver    meeting.ActorRef
	Subject     string
	RequestedAt time.Time
	Status      meeting.Status
}

type CommandReads interface {
	MeetingByID(ctx context.Context, id uuid.UUID) (*MeetingSnapshot, error)
	// SlotBusy runs both conflict checks for the candidate slot: holding
	// requests involving either participant and existing lock rows.
	// excludeMeetingID ignores the request being transitioned itself.
	SlotBusy(ctx context.Context, eventID uuid.UUID, slot meeting.Slot, excludeMeetingID uuid.UUID, participants ...meeting.ActorRef) (bool, error)
}
