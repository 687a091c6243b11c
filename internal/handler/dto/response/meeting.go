package response

import (
	"time"

	"meetgrid/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ActorResponse struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
}

type HistoryEntryResponse struct {
	ActorID   uuid.UUID `json:"actorId"`
	ActorRole string    `json:"actorRole"`
	Action    string    `json:"action"`
	At        time.Time `json:"at"`
	Note      *string   `json:"note,omitempty"`
}

type MeetingResponse struct {
	ID            uuid.UUID              `json:"id"`
	EventID       uuid.UUID              `json:"eventId"`
	Sender        ActorResponse          `json:"sender"`
	Receiver      ActorResponse          `json:"receiver"`
	Subject       string                 `json:"subject"`
	Message       *string                `json:"message,omitempty"`
	RequestedAt   time.Time              `json:"requestedAt"`
	ProposedNewAt *time.Time             `json:"proposedNewAt,omitempty"`
	AcceptedAt    *time.Time             `json:"acceptedAt,omitempty"`
	Status        string                 `json:"status"`
	History       []HistoryEntryResponse `json:"history"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type MeetingListResponse struct {
	ID          uuid.UUID     `json:"id"`
	EventID     uuid.UUID     `json:"eventId"`
	Subject     string        `json:"subject"`
	Status      string        `json:"status"`
	RequestedAt time.Time     `json:"requestedAt"`
	Counterpart ActorResponse `json:"counterpart"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type CreateMeetingResponse struct {
	ID uuid.UUID `json:"id"`
}

type CalendarEventResponse struct {
	Subject          string    `json:"subject"`
	StartsAt         time.Time `json:"startsAt"`
	DurationMinutes  int       `json:"durationMinutes"`
	ParticipantNames []string  `json:"participantNames"`
}

func FromMeetingView(rm *queries.MeetingView) *MeetingResponse {
	var resp MeetingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromMeetingListItem(rm *queries.MeetingListItem) *MeetingListResponse {
	var resp MeetingListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCalendarEvent(rm *queries.CalendarEvent) *CalendarEventResponse {
	var resp CalendarEventResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
