// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
)

// InventoryService defines the application service port for inventory
// movements, their aggregation and their audit history. Every mutation is
// paired with exactly one audit entry inside a single transaction.
type InventoryService interface {
	CreateMovement(ctx context.Context, input CreateMovementInput, actor *domain.User) (*domain.Movement, error)
	UpdateMovement(ctx context.Context, id int64, input UpdateMovementInput, actor *domain.User) (*domain.Movement, error)
	DeleteMovement(ctx context.Context, id int64, actor *domain.User) error
	GetMovement(ctx context.Context, id int64) (*domain.Movement, error)
	ListMovements(ctx context.Context, params MovementListParams) (*MovementList, error)
	Summary(ctx context.Context, page, pageSize int) (*SummaryList, error)
	Glutted(ctx context.Context, threshold int64) ([]*domain.GluttedCommodity, error)
	History(ctx context.Context, params HistoryListParams) (*HistoryList, error)
}

// CreateMovementInput carries the fields for a new movement
type CreateMovementInput struct {
	Type           domain.MovementType
	Quantity       int64
	CommodityID    int64
	TradePartnerID *int64
}

// UpdateMovementInput carries a partial update: nil fields keep their
// prior values.
type UpdateMovementInput struct {
	Type           *domain.MovementType
	Quantity       *int64
	CommodityID    *int64
	TradePartnerID *int64
}

// MovementList holds one page of movements
type MovementList struct {
	Items      []*domain.Movement `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalCount int64              `json:"total_count"`
	TotalPages int                `json:"total_pages"`
}

// SummaryList holds one page of per-commodity aggregates
type SummaryList struct {
	Items      []*domain.SummaryRow `json:"items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalCount int64                `json:"total_count"`
	TotalPages int                  `json:"total_pages"`
}

// HistoryList holds one page of audit entries
type HistoryList struct {
	Items      []*domain.HistoryEntry `json:"items"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalCount int64                  `json:"total_count"`
	TotalPages int                    `json:"total_pages"`
}

// CatalogService defines the application service port for the thin
// trade-partner and commodity CRUD.
type CatalogService interface {
	CreatePartner(ctx context.Context, p *domain.TradePartner) error
	UpdatePartner(ctx context.Context, id int64, p *domain.TradePartner) (*domain.TradePartner, error)
	DeletePartner(ctx context.Context, id int64) error
	GetPartner(ctx context.Context, id int64) (*domain.TradePartner, error)
	ListPartners(ctx context.Context, page, pageSize int) ([]*domain.TradePartner, int64, error)

	CreateCommodity(ctx context.Context, c *domain.Commodity) error
	UpdateCommodity(ctx context.Context, id int64, c *domain.Commodity) (*domain.Commodity, error)
	DeleteCommodity(ctx context.Context, id int64) error
	GetCommodity(ctx context.Context, id int64) (*domain.Commodity, error)
	ListCommodities(ctx context.Context, page, pageSize int) ([]*domain.Commodity, int64, error)
}
