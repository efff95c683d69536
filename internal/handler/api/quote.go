package api

import (
	"net/http"

	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Quote a stay
// @Description Price a stay night by night with child cost, extras and tax. Nothing is persisted.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToQuery()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	breakdown, err := h.q.Quote(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err, "Quote failed")
		return
	}
	res, err := resdto.FromBreakdown(breakdown)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render quote", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
