// internal/core/domain/movement.go
package domain

import (
	"time"
)

// MovementType represents the direction of an inventory movement
type MovementType string

// Movement type constants
const (
	TypeShipping  MovementType = "shipping"
	TypeReceiving MovementType = "receiving"
)

// Valid reports whether the movement type is a known value
func (t MovementType) Valid() bool {
	return t == TypeShipping || t == TypeReceiving
}

// Movement represents a single shipping or receiving event for a commodity.
// Quantity and type are mutable after creation; every mutation of a movement
// is paired with exactly one history entry.
type Movement struct {
	ID             int64        `json:"id"`
	Type           MovementType `json:"type"`
	Quantity       int64        `json:"quantity"`
	CommodityID    int64        `json:"commodity"`
	CommodityName  string       `json:"commodity_name,omitempty"`
	TradePartnerID *int64       `json:"trade_partner"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Validate performs domain validation on the movement
func (m *Movement) Validate() error {
	fields := map[string]string{}
	if !m.Type.Valid() {
		fields["type"] = "type must be shipping or receiving"
	}
	if m.Quantity < 0 {
		fields["quantity"] = "quantity cannot be negative"
	}
	if m.CommodityID <= 0 {
		fields["commodity"] = "commodity is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
