package response

import (
	"encoding/json"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/tax"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ExtraChargeResponse struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type BookingResponse struct {
	ID           int64                 `json:"id"`
	RoomID       int64                 `json:"room_id"`
	CheckIn      string                `json:"check_in"`
	CheckOut     string                `json:"check_out"`
	Status       string                `json:"status"`
	Guests       int                   `json:"guests"`
	Children     int                   `json:"children"`
	ChildrenAges []int                 `json:"children_ages"`
	RoomTotal    decimal.Decimal       `json:"room_total"`
	ChildTotal   decimal.Decimal       `json:"child_total"`
	ExtrasTotal  decimal.Decimal       `json:"extras_total"`
	Extras       []ExtraChargeResponse `json:"extras"`
	Total        decimal.Decimal       `json:"total"`
	TaxBreakdown json.RawMessage       `json:"tax_breakdown,omitempty" swaggertype:"object"`
	CreatedAt    time.Time             `json:"created_at"`
}

func FromBookingSnapshot(s *shared.BookingSnapshot) (*BookingResponse, error) {
	res := &BookingResponse{
		ID:           s.ID,
		RoomID:       s.RoomID,
		CheckIn:      s.CheckIn.Format(booking.DateLayout),
		CheckOut:     s.CheckOut.Format(booking.DateLayout),
		Status:       s.Status,
		Guests:       s.Guests,
		Children:     s.Children,
		ChildrenAges: s.ChildrenAges,
		RoomTotal:    s.RoomTotal,
		ChildTotal:   s.ChildTotal,
		ExtrasTotal:  s.ExtrasTotal,
		Extras:       []ExtraChargeResponse{},
		Total:        s.Total,
		TaxBreakdown: s.TaxBreakdown,
		CreatedAt:    s.CreatedAt,
	}
	if res.ChildrenAges == nil {
		res.ChildrenAges = []int{}
	}
	if len(s.Extras) > 0 {
		if err := copier.Copy(&res.Extras, &s.Extras); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type AvailabilityResponse struct {
	RoomID    int64  `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func FromAvailability(r *queries.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:    r.RoomID,
		CheckIn:   r.Stay.CheckIn().Format(booking.DateLayout),
		CheckOut:  r.Stay.CheckOut().Format(booking.DateLayout),
		Available: r.Available,
		Reason:    r.Reason.String(),
	}
}

type TaxAuditResponse struct {
	BookingID    int64           `json:"booking_id"`
	Stored       *tax.BookingTax `json:"stored"`
	Recalculated tax.BookingTax  `json:"recalculated"`
	Matches      bool            `json:"matches"`
}

func FromTaxAudit(a *queries.TaxAudit) *TaxAuditResponse {
	return &TaxAuditResponse{
		BookingID:    a.BookingID,
		Stored:       a.Stored,
		Recalculated: a.Recalculated,
		Matches:      a.Matches,
	}
}

type RoomResponse struct {
	ID          int64           `json:"id"`
	TypeID      int64           `json:"type_id"`
	CustomPrice decimal.Decimal `json:"custom_price"`
	Status      string          `json:"status"`
}

func FromRoomSnapshot(s *shared.RoomSnapshot) *RoomResponse {
	return &RoomResponse{
		ID:          s.ID,
		TypeID:      s.TypeID,
		CustomPrice: s.CustomPrice,
		Status:      s.Status,
	}
}
