//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/pkg/clock"
	"meetgrid/internal/usecase/commands"
	"meetgrid/internal/usecase/shared"
	"meetgrid/tests/common/builder"
	portsmock "meetgrid/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// In-memory unit of work backing the command tests. Transactions are not
// simulated; each scenario asserts on the final state only.

type lockKey struct {
	eventID uuid.UUID
	actorID uuid.UUID
	role    meeting.Role
	slot    time.Time
}

type reminderRec struct {
	fireAt   time.Time
	status   string
	attempts int32
}

type fakeState struct {
	meetings  map[uuid.UUID]*meeting.Request
	locks     map[lockKey]uuid.UUID
	reminders map[uuid.UUID]*reminderRec
}

func newFakeState() *fakeState {
	return &fakeState{
		meetings:  map[uuid.UUID]*meeting.Request{},
		locks:     map[lockKey]uuid.UUID{},
		reminders: map[uuid.UUID]*reminderRec{},
	}
}

func (s *fakeState) put(req *meeting.Request) {
	s.meetings[req.ID()] = cloneRequest(req)
}

func (s *fakeState) lock(eventID uuid.UUID, ref meeting.ActorRef, slot meeting.Slot, meetingID uuid.UUID) {
	s.locks[lockKey{eventID, ref.ID, ref.Role, slot.Start()}] = meetingID
}

func (s *fakeState) hasLock(eventID uuid.UUID, ref meeting.ActorRef, slot meeting.Slot) bool {
	_, ok := s.locks[lockKey{eventID, ref.ID, ref.Role, slot.Start()}]
	return ok
}

func cloneRequest(req *meeting.Request) *meeting.Request {
	return meeting.ReconstructRequest(
		req.ID(), req.EventID(), req.Sender(), req.Receiver(),
		req.Subject(), req.Message(),
		req.RequestedAt(), req.ProposedNewAt(), req.AcceptedAt(),
		req.Status(), req.History(), req.CreatedAt(), req.UpdatedAt(),
	)
}

type fakeUoW struct {
	st *fakeState
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{st: u.st})
}

func (u *fakeUoW) Reads() shared.CommandReads {
	return &fakeReads{st: u.st}
}

func (u *fakeUoW) Reminders() shared.ReminderRepository {
	return &fakeReminders{st: u.st}
}

type fakeTx struct {
	st *fakeState
}

func (t *fakeTx) Meetings() shared.MeetingRepository   { return &fakeMeetings{st: t.st} }
func (t *fakeTx) SlotLocks() shared.SlotLockRepository { return &fakeLocks{st: t.st} }
func (t *fakeTx) Reads() shared.CommandReads           { return &fakeReads{st: t.st} }

type fakeMeetings struct {
	st *fakeState
}

func (r *fakeMeetings) Create(_ context.Context, req *meeting.Request) error {
	if _, ok := r.st.meetings[req.ID()]; ok {
		return infra.WrapRepoErr("duplicate meeting", nil, infra.KindDuplicateKey)
	}
	r.st.meetings[req.ID()] = cloneRequest(req)
	return nil
}

func (r *fakeMeetings) FindForUpdate(_ context.Context, id uuid.UUID) (*meeting.Request, error) {
	req, ok := r.st.meetings[id]
	if !ok {
		return nil, infra.WrapRepoErr("meeting request not found", nil, infra.KindNotFound)
	}
	return cloneRequest(req), nil
}

func (r *fakeMeetings) Update(_ context.Context, req *meeting.Request, prevStatus meeting.Status) error {
	cur, ok := r.st.meetings[req.ID()]
	if !ok {
		return infra.WrapRepoErr("meeting request not found", nil, infra.KindNotFound)
	}
	if cur.Status() != prevStatus {
		return infra.WrapRepoErr("status changed concurrently", nil, infra.KindStaleUpdate)
	}
	r.st.meetings[req.ID()] = cloneRequest(req)
	return nil
}

type fakeLocks struct {
	st *fakeState
}

func (r *fakeLocks) InsertPair(_ context.Context, eventID, meetingID uuid.UUID, slot meeting.Slot, participants [2]meeting.ActorRef) error {
	keys := [2]lockKey{
		{eventID, participants[0].ID, participants[0].Role, slot.Start()},
		{eventID, participants[1].ID, participants[1].Role, slot.Start()},
	}
	for _, k := range keys {
		if _, ok := r.st.locks[k]; ok {
			return infra.WrapRepoErr("slot lock already held", nil, infra.KindDuplicateKey)
		}
	}
	for _, k := range keys {
		r.st.locks[k] = meetingID
	}
	return nil
}

func (r *fakeLocks) DeletePair(_ context.Context, eventID uuid.UUID, slot meeting.Slot, participants [2]meeting.ActorRef) error {
	for _, p := range participants {
		delete(r.st.locks, lockKey{eventID, p.ID, p.Role, slot.Start()})
	}
	return nil
}

type fakeReads struct {
	st *fakeState
}

func (r *fakeReads) MeetingByID(_ context.Context, id uuid.UUID) (*shared.MeetingSnapshot, error) {
	req, ok := r.st.meetings[id]
	if !ok {
		return nil, infra.WrapRepoErr("meeting not found", nil, infra.KindNotFound)
	}
	return &shared.MeetingSnapshot{
		ID:          req.ID(),
		EventID:     req.EventID(),
		Sender:      req.Sender(),
		Receiver:    req.Receiver(),
		Subject:     req.Subject(),
		RequestedAt: req.RequestedAt().Start(),
		Status:      req.Status(),
	}, nil
}

func (r *fakeReads) SlotBusy(_ context.Context, eventID uuid.UUID, slot meeting.Slot, excludeMeetingID uuid.UUID, participants ...meeting.ActorRef) (bool, error) {
	for _, m := range r.st.meetings {
		if m.EventID() != eventID || m.ID() == excludeMeetingID || !m.Status().HoldsSlot() {
			continue
		}
		holds := m.RequestedAt().Equal(slot) ||
			(!m.ProposedNewAt().IsZero() && m.ProposedNewAt().Equal(slot))
		if !holds {
			continue
		}
		for _, p := range participants {
			if p.Equal(m.Sender()) || p.Equal(m.Receiver()) {
				return true, nil
			}
		}
	}
	for _, p := range participants {
		if _, ok := r.st.locks[lockKey{eventID, p.ID, p.Role, slot.Start()}]; ok {
			return true, nil
		}
	}
	return false, nil
}

type fakeReminders struct {
	st *fakeState
}

func (r *fakeReminders) Schedule(_ context.Context, meetingID uuid.UUID, fireAt time.Time) error {
	r.st.reminders[meetingID] = &reminderRec{fireAt: fireAt, status: "queued"}
	return nil
}

func (r *fakeReminders) Cancel(_ context.Context, meetingID uuid.UUID) error {
	if rec, ok := r.st.reminders[meetingID]; ok && (rec.status == "queued" || rec.status == "processing") {
		rec.status = "cancelled"
	}
	return nil
}

func (r *fakeReminders) ClaimDue(_ context.Context, now time.Time, limit int32) ([]shared.ReminderJob, error) {
	var jobs []shared.ReminderJob
	for id, rec := range r.st.reminders {
		if rec.status == "queued" && !rec.fireAt.After(now) && int32(len(jobs)) < limit {
			rec.status = "processing"
			jobs = append(jobs, shared.ReminderJob{MeetingID: id, FireAt: rec.fireAt, Attempts: rec.attempts, Status: rec.status})
		}
	}
	return jobs, nil
}

func (r *fakeReminders) MarkSent(_ context.Context, meetingID uuid.UUID) error {
	if rec, ok := r.st.reminders[meetingID]; ok {
		rec.status = "sent"
	}
	return nil
}

func (r *fakeReminders) MarkCancelled(_ context.Context, meetingID uuid.UUID) error {
	if rec, ok := r.st.reminders[meetingID]; ok {
		rec.status = "cancelled"
	}
	return nil
}

func (r *fakeReminders) MarkFailed(_ context.Context, meetingID uuid.UUID, _ string, requeue bool) error {
	if rec, ok := r.st.reminders[meetingID]; ok {
		rec.attempts++
		if requeue {
			rec.status = "queued"
		} else {
			rec.status = "failed"
		}
	}
	return nil
}

// commandsEnv wires a use case against the fakes and role-directory mocks.
type commandsEnv struct {
	uc       commands.MeetingCommands
	st       *fakeState
	clock    *clock.MockClock
	profiles map[meeting.ActorRef]*shared.ActorProfile
	bounds   map[uuid.UUID]*shared.EventBounds
	sent     []string
}

func newCommandsEnv(t *testing.T) *commandsEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &commandsEnv{
		st:       newFakeState(),
		clock:    clock.NewMockClock(time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)),
		profiles: map[meeting.ActorRef]*shared.ActorProfile{},
		bounds:   map[uuid.UUID]*shared.EventBounds{},
	}

	directory := portsmock.NewMockActorDirectory(ctrl)
	directory.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ref meeting.ActorRef) (*shared.ActorProfile, error) {
			if p, ok := env.profiles[ref]; ok {
				return p, nil
			}
			return nil, infra.WrapRepoErr("actor not found", nil, infra.KindNotFound)
		}).AnyTimes()

	events := portsmock.NewMockEventDirectory(ctrl)
	events.EXPECT().BoundsByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*shared.EventBounds, error) {
			if b, ok := env.bounds[id]; ok {
				return b, nil
			}
			return nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
		}).AnyTimes()

	notifier := portsmock.NewMockNotifier(ctrl)
	notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, to, _, _ string) error {
			env.sent = append(env.sent, to)
			return nil
		}).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.uc = commands.NewMeetingCommands(&fakeUoW{st: env.st}, directory, events, notifier, env.clock, logger)
	return env
}

func (e *commandsEnv) register(b *builder.MeetingBuilder) {
	e.bounds[b.EventID] = &shared.EventBounds{
		ID:       b.EventID,
		Name:     "Autumn Expo",
		StartsAt: time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 11, 6, 18, 0, 0, 0, time.UTC),
	}
	e.profiles[b.Sender] = &shared.ActorProfile{
		ID: b.Sender.ID, Role: b.Sender.Role,
		Email: "sender@example.com", DisplayName: "Dana Sender", OpenToMeetings: true,
	}
	e.profiles[b.Receiver] = &shared.ActorProfile{
		ID: b.Receiver.ID, Role: b.Receiver.Role,
		Email: "receiver@example.com", DisplayName: "Robin Receiver", OpenToMeetings: true,
	}
}

func (e *commandsEnv) mustCreate(t *testing.T, b *builder.MeetingBuilder) uuid.UUID {
	t.Helper()
	id, err := e.uc.CreateRequest(context.Background(), b.Sender, commands.CreateRequestInput{
		EventID:      b.EventID,
		ReceiverID:   b.Receiver.ID,
		ReceiverRole: b.Receiver.Role,
		Subject:      b.Subject,
		Message:      b.Message,
		RequestedAt:  b.RequestedAt,
	})
	require.NoError(t, err)
	return id
}

func TestCreateRequest(t *testing.T) {
	t.Run("success stores a pending request on the normalized slot", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder().WithRequestedAt("2025-11-04T09:07:00Z")
		env.register(b)

		id := env.mustCreate(t, b)

		stored := env.st.meetings[id]
		require.NotNil(t, stored)
		assert.Equal(t, meeting.StatusPending, stored.Status())
		assert.Equal(t, "2025-11-04T09:00:00Z", stored.RequestedAt().String())
		assert.Contains(t, env.sent, "receiver@example.com")
	})

	t.Run("unparsable timestamp", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder().WithRequestedAt("next tuesday")
		env.register(b)

		_, err := env.uc.CreateRequest(context.Background(), b.Sender, commands.CreateRequestInput{
			EventID: b.EventID, ReceiverID: b.Receiver.ID, ReceiverRole: b.Receiver.Role,
			Subject: b.Subject, RequestedAt: b.RequestedAt,
		})
		require.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("slot outside the daily window", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder().WithRequestedAt("2025-11-04T08:00:00Z")
		env.register(b)

		_, err := env.uc.CreateRequest(context.Background(), b.Sender, commands.CreateRequestInput{
			EventID: b.EventID, ReceiverID: b.Receiver.ID, ReceiverRole: b.Receiver.Role,
			Subject: b.Subject, RequestedAt: b.RequestedAt,
		})
		require.ErrorIs(t, err, commands.ErrSlotOutsideWindow)
	})

	t.Run("day outside the event span", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder().WithRequestedAt("2025-11-10T09:00:00Z")
		env.register(b)

		_, err := env.uc.CreateRequest(context.Background(), b.Sender, commands.CreateRequestInput{
			EventID: b.EventID, ReceiverID: b.Receiver.ID, ReceiverRole: b.Receiver.Role,
			Subject: b.Subject, RequestedAt: b.RequestedAt,
		})
		require.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("receiver closed to meetings", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		env.profiles[b.Receiver].OpenToMeetings = false

		_, err := env.uc.CreateRequest(context.Background(), b.Sender, commands.CreateRequestInput{
			EventID: b.EventID, ReceiverID: b.Receiver.ID, ReceiverRole: b.Receiver.Role,
			Subject: b.Subject, RequestedAt: b.RequestedAt,
		})
		require.ErrorIs(t, err, commands.ErrNotOpenToMeetings)
	})

	t.Run("receiver unavailable on that day", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		env.profiles[b.Receiver].AvailableDays = []time.Time{
			time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
		}

		_, err := env.uc.CreateRequest(context.Background(), b.Sender, commands.CreateRequestInput{
			EventID: b.EventID, ReceiverID: b.Receiver.ID, ReceiverRole: b.Receiver.Role,
			Subject: b.Subject, RequestedAt: b.RequestedAt,
		})
		require.ErrorIs(t, err, commands.ErrDayNotAvailable)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		delete(env.profiles, b.Receiver)

		_, err := env.uc.CreateRequest(context.Background(), b.Sender, commands.CreateRequestInput{
			EventID: b.EventID, ReceiverID: b.Receiver.ID, ReceiverRole: b.Receiver.Role,
			Subject: b.Subject, RequestedAt: b.RequestedAt,
		})
		require.ErrorIs(t, err, commands.ErrActorNotFound)
	})

	t.Run("slot already requested for the receiver", func(t *testing.T) {
		env := newCommandsEnv(t)
		first := builder.NewMeetingBuilder()
		env.register(first)
		env.mustCreate(t, first)

		// A different sender targeting the same receiver and slot.
		second := builder.NewMeetingBuilder().
			WithEventID(first.EventID).
			WithReceiver(first.Receiver).
			WithRequestedAt(first.RequestedAt)
		env.register(second)

		_, err := env.uc.CreateRequest(context.Background(), second.Sender, commands.CreateRequestInput{
			EventID: second.EventID, ReceiverID: second.Receiver.ID, ReceiverRole: second.Receiver.Role,
			Subject: second.Subject, RequestedAt: second.RequestedAt,
		})
		require.ErrorIs(t, err, commands.ErrSlotConflict)
	})
}

func TestAccept(t *testing.T) {
	t.Run("receiver accepts and both slot locks appear", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		require.NoError(t, env.uc.Accept(context.Background(), b.Receiver, id))

		stored := env.st.meetings[id]
		assert.Equal(t, meeting.StatusAccepted, stored.Status())
		assert.True(t, env.st.hasLock(b.EventID, b.Sender, stored.RequestedAt()))
		assert.True(t, env.st.hasLock(b.EventID, b.Receiver, stored.RequestedAt()))

		rec := env.st.reminders[id]
		require.NotNil(t, rec)
		assert.Equal(t, "queued", rec.status)
		assert.Equal(t, stored.RequestedAt().Start().Add(-commands.ReminderLead), rec.fireAt)
	})

	t.Run("no reminder when the slot is less than the lead away", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		env.clock.Set(time.Date(2025, 11, 4, 8, 30, 0, 0, time.UTC))
		require.NoError(t, env.uc.Accept(context.Background(), b.Receiver, id))

		assert.Nil(t, env.st.reminders[id])
	})

	t.Run("ledger row from a concurrent acceptance loses the race", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		// A lock committed by another transaction after our pre-check would
		// surface as a uniqueness violation on insert.
		slot := env.st.meetings[id].RequestedAt()
		env.st.lock(b.EventID, b.Receiver, slot, uuid.New())

		err := env.uc.Accept(context.Background(), b.Receiver, id)
		require.ErrorIs(t, err, commands.ErrSlotConflict)
		assert.Equal(t, meeting.StatusPending, env.st.meetings[id].Status())
	})

	t.Run("sender cannot accept a pending request", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		err := env.uc.Accept(context.Background(), b.Sender, id)
		require.ErrorIs(t, err, commands.ErrStateConflict)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)

		err := env.uc.Accept(context.Background(), b.Receiver, uuid.New())
		require.ErrorIs(t, err, commands.ErrMeetingNotFound)
	})
}

func TestProposeAndFinalize(t *testing.T) {
	t.Run("finalizing a proposal locks the new slot only", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)
		originalSlot := env.st.meetings[id].RequestedAt()

		require.NoError(t, env.uc.ProposeNewTime(context.Background(), b.Receiver, id, commands.ProposeNewTimeInput{
			ProposedAt: "2025-11-04T14:00:00Z",
			Note:       "afternoon works better",
		}))
		assert.Equal(t, meeting.StatusRescheduleProposed, env.st.meetings[id].Status())

		require.NoError(t, env.uc.Accept(context.Background(), b.Sender, id))

		stored := env.st.meetings[id]
		assert.Equal(t, meeting.StatusAccepted, stored.Status())
		assert.Equal(t, "2025-11-04T14:00:00Z", stored.RequestedAt().String())
		assert.True(t, stored.ProposedNewAt().IsZero())

		assert.True(t, env.st.hasLock(b.EventID, b.Sender, stored.RequestedAt()))
		assert.False(t, env.st.hasLock(b.EventID, b.Sender, originalSlot))
		assert.False(t, env.st.hasLock(b.EventID, b.Receiver, originalSlot))
	})

	t.Run("proposal is rejected when the new slot is busy", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		env.st.lock(b.EventID, b.Sender, mustParse(t, "2025-11-04T14:00:00Z"), uuid.New())

		err := env.uc.ProposeNewTime(context.Background(), b.Receiver, id, commands.ProposeNewTimeInput{
			ProposedAt: "2025-11-04T14:00:00Z",
		})
		require.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("proposal outside the window is rejected", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		err := env.uc.ProposeNewTime(context.Background(), b.Receiver, id, commands.ProposeNewTimeInput{
			ProposedAt: "2025-11-04T20:00:00Z",
		})
		require.ErrorIs(t, err, commands.ErrSlotOutsideWindow)
	})

	t.Run("only the receiver may propose", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		err := env.uc.ProposeNewTime(context.Background(), b.Sender, id, commands.ProposeNewTimeInput{
			ProposedAt: "2025-11-04T14:00:00Z",
		})
		require.ErrorIs(t, err, commands.ErrStateConflict)
	})
}

func TestDecline(t *testing.T) {
	t.Run("declining an accepted meeting releases its locks", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)
		require.NoError(t, env.uc.Accept(context.Background(), b.Receiver, id))
		slot := env.st.meetings[id].RequestedAt()

		require.NoError(t, env.uc.Decline(context.Background(), b.Sender, id, "something came up"))

		assert.Equal(t, meeting.StatusDeclined, env.st.meetings[id].Status())
		assert.False(t, env.st.hasLock(b.EventID, b.Sender, slot))
		assert.False(t, env.st.hasLock(b.EventID, b.Receiver, slot))
		assert.Equal(t, "cancelled", env.st.reminders[id].status)
	})

	t.Run("declining a pending request leaves no locks to release", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		require.NoError(t, env.uc.Decline(context.Background(), b.Receiver, id, ""))
		assert.Equal(t, meeting.StatusDeclined, env.st.meetings[id].Status())
		assert.Empty(t, env.st.locks)
	})

	t.Run("declined slot is immediately requestable again", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)
		require.NoError(t, env.uc.Accept(context.Background(), b.Receiver, id))
		require.NoError(t, env.uc.Decline(context.Background(), b.Receiver, id, ""))

		again := builder.NewMeetingBuilder().
			WithEventID(b.EventID).
			WithReceiver(b.Receiver).
			WithRequestedAt(b.RequestedAt)
		env.register(again)
		env.mustCreate(t, again)
	})
}

func TestCancel(t *testing.T) {
	t.Run("participant cancels and the slot frees up", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)
		require.NoError(t, env.uc.Accept(context.Background(), b.Receiver, id))
		slot := env.st.meetings[id].RequestedAt()

		require.NoError(t, env.uc.Cancel(context.Background(), b.Sender, id))

		assert.Equal(t, meeting.StatusCancelled, env.st.meetings[id].Status())
		assert.False(t, env.st.hasLock(b.EventID, b.Sender, slot))
		assert.Equal(t, "cancelled", env.st.reminders[id].status)
	})

	t.Run("admin cancels on behalf of participants", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)
		require.NoError(t, env.uc.Accept(context.Background(), b.Receiver, id))

		admin := meeting.ActorRef{ID: uuid.New(), Role: meeting.RoleAdmin}
		require.NoError(t, env.uc.Cancel(context.Background(), admin, id))
		assert.Equal(t, meeting.StatusCancelled, env.st.meetings[id].Status())
	})

	t.Run("pending requests cannot be cancelled", func(t *testing.T) {
		env := newCommandsEnv(t)
		b := builder.NewMeetingBuilder()
		env.register(b)
		id := env.mustCreate(t, b)

		err := env.uc.Cancel(context.Background(), b.Sender, id)
		require.ErrorIs(t, err, commands.ErrStateConflict)
	})
}

func mustParse(t *testing.T, raw string) meeting.Slot {
	t.Helper()
	s, err := meeting.ParseSlot(raw)
	require.NoError(t, err)
	return s
}
