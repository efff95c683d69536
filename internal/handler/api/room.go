package api

import (
	"net/http"

	"hotel-booking-core/internal/domain/room"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds         commands.RoomCommands
	availability queries.AvailabilityQueries
}

func NewRoomHandler(cmds commands.RoomCommands, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, availability: availability}
}

// @Summary Room availability
// @Description Check whether a room can be booked for a stay. A negative answer carries a reason code.
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param exclude_booking_id query int false "Booking to ignore"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	stay, err := q.Stay()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out must be after check-in", nil)
		return
	}

	result, err := h.availability.IsAvailable(c.Request.Context(), id, stay, q.ExcludeBookingID)
	if err != nil {
		abortWithUseCaseError(c, err, "Availability check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

// @Summary Change room status
// @Description Set a room available, under maintenance or inactive.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body reqdto.ChangeRoomStatusRequest true "New status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/status [patch]
func (h *RoomHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.ChangeStatus(c.Request.Context(), id, room.Status(req.Status))
	if err != nil {
		abortWithUseCaseError(c, err, "Status change failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomSnapshot(snap))
}
