// internal/core/domain/commodity.go
package domain

import "time"

// TradePartner is an external counterparty that supplies or receives
// commodities. Partners are referenced, never owned: deleting a partner
// nulls the references held by commodities and movements.
type TradePartner struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the trade partner
func (p *TradePartner) Validate() error {
	if p.Name == "" {
		return &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}
	return nil
}

// Commodity is a tradeable good. It owns its movements: deleting a
// commodity cascades to every movement recorded against it.
type Commodity struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	TradePartnerID *int64    `json:"trade_partner"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate performs domain validation on the commodity
func (c *Commodity) Validate() error {
	if c.Name == "" {
		return &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}
	return nil
}

// User is the actor identity resolved by the authentication layer.
// Mutations may carry no actor at all (system actions).
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
