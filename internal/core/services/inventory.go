// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
)

// TxRunner is the transactional contract the service needs from the
// database adapter. Both mutation orchestration and snapshot reads run
// through it.
type TxRunner interface {
	Transaction(ctx context.Context, fn func(pgx.Tx) error) error
	TransactionWithOptions(ctx context.Context, opts pgx.TxOptions, fn func(pgx.Tx) error) error
}

// InventoryService orchestrates movement mutations with their audit
// entries and serves the aggregation queries. Every successful
// create/update/delete commits together with exactly one history row; if
// either write fails, both roll back.
type InventoryService struct {
	movements   ports.MovementRepository
	history     ports.HistoryRepository
	commodities ports.CommodityRepository
	db          TxRunner
	logger      *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(
	movements ports.MovementRepository,
	history ports.HistoryRepository,
	commodities ports.CommodityRepository,
	db TxRunner,
	logger *slog.Logger,
) *InventoryService {
	return &InventoryService{
		movements:   movements,
		history:     history,
		commodities: commodities,
		db:          db,
		logger:      logger.With(slog.String("service", "inventory")),
	}
}

// CreateMovement persists a new movement and its ADD audit entry in one
// transaction. Validation failures return before any write.
func (s *InventoryService) CreateMovement(ctx context.Context, input ports.CreateMovementInput, actor *domain.User) (*domain.Movement, error) {
	m := &domain.Movement{
		Type:           input.Type,
		Quantity:       input.Quantity,
		CommodityID:    input.CommodityID,
		TradePartnerID: input.TradePartnerID,
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCommodity(ctx, m.CommodityID); err != nil {
		return nil, err
	}

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := s.movements.Create(ctx, tx, m); err != nil {
			return fmt.Errorf("failed to create movement: %w", err)
		}

		entry := domain.NewHistoryEntry(domain.ActionAdd, m, actor)
		if err := s.history.Append(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "movement created",
		slog.Int64("movement_id", m.ID),
		slog.String("type", string(m.Type)),
		slog.Int64("quantity", m.Quantity))

	return m, nil
}

// UpdateMovement applies a partial update and records a MODIFY audit entry
// with the post-update state, all in one transaction. Fields absent from
// the input keep their prior values.
func (s *InventoryService) UpdateMovement(ctx context.Context, id int64, input ports.UpdateMovementInput, actor *domain.User) (*domain.Movement, error) {
	if input.CommodityID != nil {
		if err := s.checkCommodity(ctx, *input.CommodityID); err != nil {
			return nil, err
		}
	}

	var updated *domain.Movement
	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		m, err := s.movements.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to load movement: %w", err)
		}
		if m == nil {
			return &domain.NotFoundError{Resource: "movement", ID: id}
		}

		if input.Type != nil {
			m.Type = *input.Type
		}
		if input.Quantity != nil {
			m.Quantity = *input.Quantity
		}
		if input.CommodityID != nil {
			m.CommodityID = *input.CommodityID
		}
		if input.TradePartnerID != nil {
			m.TradePartnerID = input.TradePartnerID
		}

		if err := m.Validate(); err != nil {
			return err
		}

		if err := s.movements.Update(ctx, tx, m); err != nil {
			return fmt.Errorf("failed to update movement: %w", err)
		}

		entry := domain.NewHistoryEntry(domain.ActionModify, m, actor)
		if err := s.history.Append(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}

		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "movement updated", slog.Int64("movement_id", id))
	return updated, nil
}

// DeleteMovement captures the row state, deletes it and records a DELETE
// audit entry from the captured state, all in one transaction. The entry
// carries no movement reference since the row is gone.
func (s *InventoryService) DeleteMovement(ctx context.Context, id int64, actor *domain.User) error {
	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		m, err := s.movements.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to load movement: %w", err)
		}
		if m == nil {
			return &domain.NotFoundError{Resource: "movement", ID: id}
		}

		if err := s.movements.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete movement: %w", err)
		}

		entry := domain.NewHistoryEntry(domain.ActionDelete, m, actor)
		if err := s.history.Append(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "movement deleted", slog.Int64("movement_id", id))
	return nil
}

// GetMovement retrieves a movement by ID
func (s *InventoryService) GetMovement(ctx context.Context, id int64) (*domain.Movement, error) {
	m, err := s.movements.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}
	if m == nil {
		return nil, &domain.NotFoundError{Resource: "movement", ID: id}
	}
	return m, nil
}

// ListMovements retrieves movements with filtering and pagination
func (s *InventoryService) ListMovements(ctx context.Context, params ports.MovementListParams) (*ports.MovementList, error) {
	params.Page, params.PageSize = NormalizePage(params.Page, params.PageSize)

	items, total, err := s.movements.FindAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	return &ports.MovementList{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: total,
		TotalPages: totalPages(total, params.PageSize),
	}, nil
}

// Summary computes the per-commodity aggregate, ordered by commodity ID.
// Count and page run inside one read-only transaction so the result
// reflects a single snapshot even under concurrent writes.
func (s *InventoryService) Summary(ctx context.Context, page, pageSize int) (*ports.SummaryList, error) {
	page, pageSize = NormalizePage(page, pageSize)

	var (
		items []*domain.SummaryRow
		total int64
	)
	err := s.db.TransactionWithOptions(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		var err error
		total, err = s.movements.SummaryCount(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to count summary rows: %w", err)
		}
		items, err = s.movements.Summary(ctx, tx, pageSize, (page-1)*pageSize)
		if err != nil {
			return fmt.Errorf("failed to load summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ports.SummaryList{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// Glutted lists commodities whose total quantity meets or exceeds the
// threshold, ordered by total quantity descending. A negative threshold is
// rejected before any query executes.
func (s *InventoryService) Glutted(ctx context.Context, threshold int64) ([]*domain.GluttedCommodity, error) {
	if threshold < 0 {
		return nil, &domain.InvalidArgumentError{Argument: "threshold", Reason: "must not be negative"}
	}

	var rows []*domain.GluttedCommodity
	err := s.db.TransactionWithOptions(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		var err error
		rows, err = s.movements.Glutted(ctx, tx, threshold)
		if err != nil {
			return fmt.Errorf("failed to load glutted commodities: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// History lists audit entries in insertion order, optionally filtered to
// one movement.
func (s *InventoryService) History(ctx context.Context, params ports.HistoryListParams) (*ports.HistoryList, error) {
	params.Page, params.PageSize = NormalizePage(params.Page, params.PageSize)

	items, total, err := s.history.FindAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return &ports.HistoryList{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: total,
		TotalPages: totalPages(total, params.PageSize),
	}, nil
}

// checkCommodity rejects references to commodities that do not exist. The
// foreign key still backstops the race where the commodity vanishes
// between this check and commit.
func (s *InventoryService) checkCommodity(ctx context.Context, id int64) error {
	c, err := s.commodities.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check commodity: %w", err)
	}
	if c == nil {
		return &domain.ValidationError{Fields: map[string]string{
			"commodity": fmt.Sprintf("commodity %d does not exist", id),
		}}
	}
	return nil
}

// NormalizePage clamps paging parameters to their served values. Exported
// so callers that key caches on page/size use the same values the queries
// run with.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageSize > 1000 {
		pageSize = 1000
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}
