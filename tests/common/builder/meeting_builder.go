//go:build unit || e2e

package builder

import (
	"time"

	"meetgrid/internal/domain/meeting"
	reqdto "meetgrid/internal/handler/dto/request"
	"meetgrid/internal/usecase/queries"
	"meetgrid/internal/usecase/shared"

	"github.com/google/uuid"
)

type MeetingBuilder struct {
	EventID     uuid.UUID
	Sender      meeting.ActorRef
	Receiver    meeting.ActorRef
	Subject     string
	Message     string
	RequestedAt string
	Now         time.Time
}

func NewMeetingBuilder() *MeetingBuilder {
	return &MeetingBuilder{
		EventID:     uuid.New(),
		Sender:      meeting.ActorRef{ID: uuid.New(), Role: meeting.RoleAttendee},
		Receiver:    meeting.ActorRef{ID: uuid.New(), Role: meeting.RoleExhibitor},
		Subject:     "Product walkthrough",
		Message:     "Would love a quick demo of the new release.",
		RequestedAt: "2025-11-04T09:00:00Z",
		Now:         time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *MeetingBuilder) With(mutate func(*MeetingBuilder)) *MeetingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *MeetingBuilder) BuildDomain() (*meeting.Request, error) {
	slot, err := meeting.ParseSlot(b.RequestedAt)
	if err != nil {
		return nil, err
	}
	return meeting.NewRequest(b.EventID, b.Sender, b.Receiver, b.Subject, b.Message, slot, b.Now)
}

func (b *MeetingBuilder) BuildCreateRequestDTO() reqdto.CreateMeetingRequest {
	return reqdto.CreateMeetingRequest{
		EventID:      b.EventID,
		ReceiverID:   b.Receiver.ID,
		ReceiverRole: b.Receiver.Role.String(),
		Subject:      b.Subject,
		Message:      b.Message,
		RequestedAt:  b.RequestedAt,
	}
}

func (b *MeetingBuilder) BuildSnapshot() *shared.MeetingSnapshot {
	slot, _ := meeting.ParseSlot(b.RequestedAt)
	return &shared.MeetingSnapshot{
		ID:          uuid.New(),
		EventID:     b.EventID,
		Sender:      b.Sender,
		Receiver:    b.Receiver,
		Subject:     b.Subject,
		RequestedAt: slot.Start(),
		Status:      meeting.StatusAccepted,
	}
}

func (b *MeetingBuilder) BuildView() *queries.MeetingView {
	slot, _ := meeting.ParseSlot(b.RequestedAt)
	return &queries.MeetingView{
		ID:      uuid.New(),
		EventID: b.EventID,
		Sender: queries.ActorView{
			ID:          b.Sender.ID,
			Role:        b.Sender.Role.String(),
			DisplayName: "Dana Sender",
			Email:       "dana@example.com",
		},
		Receiver: queries.ActorView{
			ID:          b.Receiver.ID,
			Role:        b.Receiver.Role.String(),
			DisplayName: "Robin Receiver",
			Email:       "robin@example.com",
		},
		Subject:     b.Subject,
		RequestedAt: slot.Start(),
		Status:      meeting.StatusPending.String(),
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

// Fluent builder methods
func (b *MeetingBuilder) WithEventID(id uuid.UUID) *MeetingBuilder {
	b.EventID = id
	return b
}

func (b *MeetingBuilder) WithSender(ref meeting.ActorRef) *MeetingBuilder {
	b.Sender = ref
	return b
}

func (b *MeetingBuilder) WithReceiver(ref meeting.ActorRef) *MeetingBuilder {
	b.Receiver = ref
	return b
}

func (b *MeetingBuilder) WithSubject(subject string) *MeetingBuilder {
	b.Subject = subject
	return b
}

func (b *MeetingBuilder) WithMessage(message string) *MeetingBuilder {
	b.Message = message
	return b
}

func (b *MeetingBuilder) WithRequestedAt(raw string) *MeetingBuilder {
	b.RequestedAt = raw
	return b
}

func (b *MeetingBuilder) WithNow(now time.Time) *MeetingBuilder {
	b.Now = now
	return b
}
