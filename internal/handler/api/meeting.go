package api

import (
	"errors"
	"net/http"

	"meetgrid/internal/domain/meeting"
	reqdto "meetgrid/internal/handler/dto/request"
	resdto "meetgrid/internal/handler/dto/response"
	"meetgrid/internal/handler/middleware"
	"meetgrid/internal/usecase/commands"
	"meetgrid/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MeetingHandler struct {
	commands commands.MeetingCommands
	queries  queries.MeetingQueries
}

func NewMeetingHandler(cmd commands.MeetingCommands, qry queries.MeetingQueries) *MeetingHandler {
	return &MeetingHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Request a meeting
// @Description Send a meeting request to another participant for a 30-minute slot
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMeetingRequest true "Meeting request"
// @Success 201 {object} resdto.CreateMeetingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateMeetingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := commands.CreateRequestInput{
		EventID:      req.EventID,
		ReceiverID:   req.ReceiverID,
		ReceiverRole: meeting.Role(req.ReceiverRole),
		Subject:      req.Subject,
		Message:      req.Message,
		RequestedAt:  req.RequestedAt,
	}

	id, err := h.commands.CreateRequest(c.Request.Context(), actor, input)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateMeetingResponse{ID: id})
}

// @Summary Accept a meeting
// @Description Accept a pending request or a counterpart's reschedule proposal
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /meetings/{id}/accept [post]
func (h *MeetingHandler) AcceptMeeting(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.Accept(c.Request.Context(), actor, id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Decline a meeting
// @Description Decline a pending request, a reschedule proposal, or back out of an accepted meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Param request body reqdto.DeclineMeetingRequest false "Optional note"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /meetings/{id}/decline [post]
func (h *MeetingHandler) DeclineMeeting(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.DeclineMeetingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	if err := h.commands.Decline(c.Request.Context(), actor, id, req.Note); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Propose a new time
// @Description Counter a pending request with a different slot
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Param request body reqdto.ProposeNewTimeRequest true "Proposed slot"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /meetings/{id}/reschedule [post]
func (h *MeetingHandler) RescheduleMeeting(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.ProposeNewTimeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := commands.ProposeNewTimeInput{
		ProposedAt: req.ProposedAt,
		Note:       req.Note,
	}

	if err := h.commands.ProposeNewTime(c.Request.Context(), actor, id, input); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel a meeting
// @Description Cancel an accepted meeting as a participant or an admin
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) CancelMeeting(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), actor, id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get meeting
// @Description Get a meeting with its full action history
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 200 {object} resdto.MeetingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMeetingView(view))
}

// @Summary List meetings
// @Description List all meetings the authenticated actor participates in
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MeetingListResponse
// @Failure 401 {object} map[string]string
// @Router /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.queries.ListByActor(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.MeetingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromMeetingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Export meeting for calendar
// @Description Export an accepted meeting as a calendar event payload
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 200 {object} resdto.CalendarEventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /meetings/{id}/calendar [get]
func (h *MeetingHandler) ExportCalendar(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	event, err := h.queries.CalendarExport(c.Request.Context(), actor, id)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarEvent(event))
}

func (h *MeetingHandler) actorAndID(c *gin.Context) (meeting.ActorRef, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return meeting.ActorRef{}, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meeting ID format",
		})
		return meeting.ActorRef{}, uuid.Nil, false
	}

	return actor, id, true
}

func (h *MeetingHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, meeting.ErrActorNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Actor is not allowed to act on this meeting",
		})
	case errors.Is(err, commands.ErrMeetingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Meeting not found",
		})
	case errors.Is(err, commands.ErrActorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Participant not found",
		})
	case errors.Is(err, commands.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, commands.ErrSlotOutsideWindow):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot is outside the event's daily meeting window",
		})
	case errors.Is(err, commands.ErrDayNotAvailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Receiver is not available on that day",
		})
	case errors.Is(err, commands.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meeting request",
		})
	case errors.Is(err, commands.ErrNotOpenToMeetings):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Participant is not open to meetings",
		})
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is already taken for one of the participants",
		})
	case errors.Is(err, commands.ErrStateConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Meeting is not in a state that allows this action",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *MeetingHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrMeetingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Meeting not found",
		})
	case errors.Is(err, queries.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Actor is not a participant of this meeting",
		})
	case errors.Is(err, queries.ErrNotExportable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Only accepted meetings can be exported",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
