//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/tests/common/builder"
	"hotel-booking-core/tests/common/dbtest"
	"hotel-booking-core/tests/common/httptest"
	"hotel-booking-core/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quotesURL        = "/api/quotes"
	bookingsURL      = "/api/bookings"
	bookingStatusURL = "/api/bookings/%d/status"
	bookingTaxURL    = "/api/bookings/%d/tax"
	availabilityURL  = "/api/rooms/%d/availability?check_in=%s&check_out=%s"
	roomStatusURL    = "/api/rooms/%d/status"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func stayRequest(roomID int64, checkIn, checkOut string) *builder.QuoteBuilder {
	return builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
		b.RoomID = roomID
		b.CheckIn = checkIn
		b.CheckOut = checkOut
	})
}

func (s *BookingSuite) createBooking(roomID int64, checkIn, checkOut string) response.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, stayRequest(roomID, checkIn, checkOut).BuildRequestDTO())
	var created response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created
}

// =============================================================================
// TestQuote
// =============================================================================

func (s *BookingSuite) TestQuote() {
	s.Run("Normal case: prices room, children and extras", func() {
		t := s.T()
		req := stayRequest(dbtest.StandardRoomID, "2030-07-10", "2030-07-12").
			WithChildren(3, 10).
			WithExtra(dbtest.BreakfastExtraID, 1).
			WithExtra(dbtest.ParkingExtraID, 1).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, req)

		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Equal(t, 2, quote.Nights)
		// 2 x 100 + one billed child 2 x 20
		require.True(t, decimal.NewFromInt(240).Equal(quote.RoomTotal), quote.RoomTotal.String())
		// breakfast 15 x 4 persons + parking 12 x 2 nights
		require.True(t, decimal.NewFromInt(84).Equal(quote.ExtrasTotal), quote.ExtrasTotal.String())
		require.True(t, decimal.NewFromInt(324).Equal(quote.Total), quote.Total.String())
	})

	s.Run("Normal case: a type rule outranks a global rule", func() {
		t := s.T()
		dbtest.CreateTestPricingRule(t, s.DB, 0, "2030-07-01", "2030-07-31", "50", "percent", 10)
		ruleID := dbtest.CreateTestPricingRule(t, s.DB, dbtest.StandardTypeID, "2030-07-11", "2030-07-11", "-30", "fixed", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			stayRequest(dbtest.StandardRoomID, "2030-07-10", "2030-07-12").BuildRequestDTO())

		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Len(t, quote.NightlyRates, 2)
		require.True(t, decimal.NewFromInt(150).Equal(quote.NightlyRates[0].Price))
		require.True(t, decimal.NewFromInt(70).Equal(quote.NightlyRates[1].Price))
		require.Equal(t, ruleID, quote.NightlyRates[1].RuleID)
	})

	s.Run("Error case: party larger than the room", func() {
		t := s.T()
		req := stayRequest(dbtest.StandardRoomID, "2030-07-10", "2030-07-12").
			With(func(b *builder.QuoteBuilder) { b.Guests = 3 }).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("Error case: unknown room", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			stayRequest(999, "2030-07-10", "2030-07-12").BuildRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is stored as pending with quoted totals", func() {
		t := s.T()
		created := s.createBooking(dbtest.StandardRoomID, "2030-07-10", "2030-07-12")

		require.Equal(t, "pending", created.Status)
		require.True(t, decimal.NewFromInt(200).Equal(created.Total))
		require.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, created.ID))
	})

	s.Run("Normal case: back-to-back stays share the changeover day", func() {
		s.createBooking(dbtest.StandardRoomID, "2030-07-10", "2030-07-12")
		s.createBooking(dbtest.StandardRoomID, "2030-07-12", "2030-07-14")
	})

	s.Run("Normal case: a stale pending booking does not block", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, dbtest.StandardRoomID, "2030-07-10", "2030-07-12", "pending", time.Now().Add(-2*time.Hour))
		s.createBooking(dbtest.StandardRoomID, "2030-07-11", "2030-07-13")
	})

	s.Run("Error case: overlapping stay is rejected with a reason", func() {
		t := s.T()
		s.createBooking(dbtest.StandardRoomID, "2030-07-10", "2030-07-12")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			stayRequest(dbtest.StandardRoomID, "2030-07-11", "2030-07-13").BuildRequestDTO())
		body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, "ALREADY_BOOKED", body.Detail["reason"])
	})

	s.Run("Error case: room under maintenance", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			stayRequest(dbtest.MaintenanceRoomID, "2030-07-10", "2030-07-12").BuildRequestDTO())
		body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, "ROOM_UNAVAILABLE", body.Detail["reason"])
	})

	s.Run("Concurrency: only one of many identical requests wins", func() {
		t := s.T()
		const attempts = 8
		req := stayRequest(dbtest.FamilyRoomID, "2030-08-01", "2030-08-05").BuildRequestDTO()

		var wg sync.WaitGroup
		codes := make([]int, attempts)
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req).Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicts, "codes: %v", codes)
	})
}

// =============================================================================
// TestChangeBookingStatus
// =============================================================================

func (s *BookingSuite) TestChangeBookingStatus() {
	s.Run("Normal case: pending -> confirmed -> cancelled", func() {
		t := s.T()
		created := s.createBooking(dbtest.StandardRoomID, "2030-07-10", "2030-07-12")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingStatusURL, created.ID), map[string]string{"status": "confirmed"})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		require.Equal(t, "confirmed", dbtest.BookingStatus(t, s.DB, created.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingStatusURL, created.ID), map[string]string{"status": "cancelled"})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		require.Equal(t, "cancelled", dbtest.BookingStatus(t, s.DB, created.ID))

		// cancelled frees the dates
		s.createBooking(dbtest.StandardRoomID, "2030-07-10", "2030-07-12")
	})

	s.Run("Error case: cancelled bookings cannot be confirmed", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, dbtest.StandardRoomID, "2030-07-10", "2030-07-12", "cancelled", time.Now())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingStatusURL, id), map[string]string{"status": "confirmed"})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Error case: confirming is blocked by another live booking", func() {
		t := s.T()
		first := dbtest.CreateTestBooking(t, s.DB, dbtest.StandardRoomID, "2030-07-10", "2030-07-12", "pending", time.Now())
		dbtest.CreateTestBooking(t, s.DB, dbtest.StandardRoomID, "2030-07-11", "2030-07-13", "confirmed", time.Now())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingStatusURL, first), map[string]string{"status": "confirmed"})
		body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, "ALREADY_BOOKED", body.Detail["reason"])
		require.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, first))
	})
}

// =============================================================================
// TestAvailability
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: room status change is visible immediately", func() {
		t := s.T()
		url := fmt.Sprintf(availabilityURL, dbtest.StandardRoomID, "2030-07-10", "2030-07-12")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		var before response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &before)
		require.True(t, before.Available)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(roomStatusURL, dbtest.StandardRoomID), map[string]string{"status": "maintenance"})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		var after response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &after)

		want := response.AvailabilityResponse{
			RoomID:    dbtest.StandardRoomID,
			CheckIn:   "2030-07-10",
			CheckOut:  "2030-07-12",
			Available: false,
			Reason:    "ROOM_UNAVAILABLE",
		}
		if diff := cmp.Diff(want, after); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: a booking can be excluded from the check", func() {
		t := s.T()
		created := s.createBooking(dbtest.StandardRoomID, "2030-07-10", "2030-07-12")
		url := fmt.Sprintf(availabilityURL, dbtest.StandardRoomID, "2030-07-11", "2030-07-12")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		var blocked response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &blocked)
		require.Equal(t, "ALREADY_BOOKED", blocked.Reason)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+fmt.Sprintf("&exclude_booking_id=%d", created.ID), nil)
		var free response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &free)
		require.True(t, free.Available)
	})
}

// =============================================================================
// TestBookingTax
// =============================================================================

func (s *BookingSuite) TestBookingTax() {
	s.Run("Normal case: stored tax matches a recalculation", func() {
		t := s.T()
		created := s.createBooking(dbtest.StandardRoomID, "2030-07-10", "2030-07-12")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingTaxURL, created.ID), nil)
		var audit response.TaxAuditResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &audit)
		require.True(t, audit.Matches)
		require.NotNil(t, audit.Stored)
	})

	s.Run("Error case: unknown booking", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingTaxURL, 999), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}
