package shared

import (
	"encoding/json"
	"time"

	"hotel-booking-core/internal/domain/booking"

	"github.com/shopspring/decimal"
)

// Snapshots are the persistence-facing shapes exchanged between repositories,
// the catalog cache and use cases. JSON tags define the cached encoding.

type RoomSnapshot struct {
	ID          int64           `json:"id"`
	TypeID      int64           `json:"type_id"`
	CustomPrice decimal.Decimal `json:"custom_price"`
	Status      string          `json:"status"`
}

type RoomTypeSnapshot struct {
	ID                int64           `json:"id"`
	BasePrice         decimal.Decimal `json:"base_price"`
	MaxAdults         int             `json:"max_adults"`
	MaxChildren       int             `json:"max_children"`
	ChildAgeFreeLimit int             `json:"child_age_free_limit"`
	ChildRate         decimal.Decimal `json:"child_rate"`
}

type PricingRuleSnapshot struct {
	ID        int64           `json:"id"`
	TypeID    int64           `json:"type_id"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Amount    decimal.Decimal `json:"amount"`
	Operation string          `json:"operation"`
	Priority  int             `json:"priority"`
}

type ExtraSnapshot struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	PricingType string          `json:"pricing_type"`
	ControlType string          `json:"control_type"`
}

// Minimal snapshot for booking reads; never cached
type BookingSnapshot struct {
	ID           int64
	RoomID       int64
	CheckIn      time.Time
	CheckOut     time.Time
	Status       string
	Guests       int
	Children     int
	ChildrenAges []int
	RoomTotal    decimal.Decimal
	ChildTotal   decimal.Decimal
	ExtrasTotal  decimal.Decimal
	Extras       []booking.ExtraCharge
	Total        decimal.Decimal
	TaxBreakdown json.RawMessage
	CreatedAt    time.Time
}
