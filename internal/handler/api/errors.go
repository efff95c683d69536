package api

import (
	"net/http"

	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type statusRule struct {
	target  error
	status  int
	message string
}

// first match wins
var statusRules = []statusRule{
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrRoomTypeNotFound, http.StatusNotFound, "Room type not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrInvalidStay, http.StatusBadRequest, "Check-out must be after check-in"},
	{errs.ErrInvalidStatusChange, http.StatusConflict, "Status change not allowed"},
	{errs.ErrCannotQuote, http.StatusUnprocessableEntity, "Stay cannot be quoted"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
}

type conflictDetail struct {
	RoomID int64  `json:"room_id"`
	Reason string `json:"reason"`
}

// abortWithUseCaseError translates a use case error into the HTTP response.
// Unknown errors become 500 with fallback as the message.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	var unavailable *commands.UnavailableError
	if errs.As(err, &unavailable) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is not available for the requested dates", conflictDetail{
			RoomID: unavailable.RoomID,
			Reason: unavailable.Reason.String(),
		})
		return
	}

	for _, r := range statusRules {
		if errs.Is(err, r.target) {
			httperr.AbortWithError(c, r.status, err, r.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
