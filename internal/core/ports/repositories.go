// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
)

// MovementRepository defines the persistence port for inventory movements.
// Mutating methods take a Querier so the service can run them inside the
// transaction that also appends the audit entry.
type MovementRepository interface {
	Create(ctx context.Context, q Querier, m *domain.Movement) error
	Update(ctx context.Context, q Querier, m *domain.Movement) error
	Delete(ctx context.Context, q Querier, id int64) error
	// FindByIDForUpdate locks the row for the duration of the transaction.
	FindByIDForUpdate(ctx context.Context, q Querier, id int64) (*domain.Movement, error)
	FindByID(ctx context.Context, id int64) (*domain.Movement, error)
	FindAll(ctx context.Context, params MovementListParams) ([]*domain.Movement, int64, error)
	// Summary and Glutted take a Querier so both queries of a report can
	// share one read snapshot.
	Summary(ctx context.Context, q Querier, limit, offset int) ([]*domain.SummaryRow, error)
	SummaryCount(ctx context.Context, q Querier) (int64, error)
	Glutted(ctx context.Context, q Querier, threshold int64) ([]*domain.GluttedCommodity, error)
}

// HistoryRepository defines the persistence port for the audit log. The
// surface is deliberately append-plus-read: no update or delete exists.
type HistoryRepository interface {
	Append(ctx context.Context, q Querier, entry *domain.HistoryEntry) error
	FindAll(ctx context.Context, params HistoryListParams) ([]*domain.HistoryEntry, int64, error)
}

// CommodityRepository defines the persistence port for commodities
type CommodityRepository interface {
	Create(ctx context.Context, c *domain.Commodity) error
	Update(ctx context.Context, c *domain.Commodity) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Commodity, error)
	FindAll(ctx context.Context, limit, offset int) ([]*domain.Commodity, int64, error)
}

// TradePartnerRepository defines the persistence port for trade partners
type TradePartnerRepository interface {
	Create(ctx context.Context, p *domain.TradePartner) error
	Update(ctx context.Context, p *domain.TradePartner) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.TradePartner, error)
	FindAll(ctx context.Context, limit, offset int) ([]*domain.TradePartner, int64, error)
}

// MovementListParams holds filters and pagination for listing movements
type MovementListParams struct {
	CommodityID    int64
	TradePartnerID int64
	Type           domain.MovementType
	Page           int
	PageSize       int
}

// HistoryListParams holds filters and pagination for listing audit entries
type HistoryListParams struct {
	MovementID int64
	Page       int
	PageSize   int
}
