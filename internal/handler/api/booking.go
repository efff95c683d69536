package api

import (
	"net/http"
	"strconv"

	"hotel-booking-core/internal/domain/booking"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	tax  queries.TaxQueries
}

func NewBookingHandler(cmds commands.BookingCommands, tax queries.TaxQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, tax: tax}
}

// @Summary Create booking
// @Description Book a room as pending. Totals are recomputed server-side from the same inputs as a quote.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToQuery()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	snap, err := h.cmds.CreateBooking(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err, "Create booking failed")
		return
	}
	res, err := resdto.FromBookingSnapshot(snap)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking", nil)
		return
	}
	c.Header("Location", "/api/bookings/"+strconv.FormatInt(snap.ID, 10))
	c.JSON(http.StatusCreated, res)
}

// @Summary Change booking status
// @Description Confirm or cancel a booking. Confirming re-checks availability excluding the booking itself.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.ChangeBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/status [patch]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.ChangeStatus(c.Request.Context(), id, booking.Status(req.Status))
	if err != nil {
		abortWithUseCaseError(c, err, "Status change failed")
		return
	}
	res, err := resdto.FromBookingSnapshot(snap)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Recalculate booking tax
// @Description Re-derive the tax of a stored booking under the current settings and compare it with the stored breakdown.
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.TaxAuditResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/tax [get]
func (h *BookingHandler) Tax(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	audit, err := h.tax.RecalculateBookingTax(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Tax recalculation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTaxAudit(audit))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	if id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("id must be positive"), "Invalid id", nil)
		return 0, false
	}
	return id, true
}
