// internal/adapters/db/commodity_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
)

// commodityRepository implements ports.CommodityRepository
type commodityRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCommodityRepository creates a new commodity repository
func NewCommodityRepository(db *Database, logger *slog.Logger) ports.CommodityRepository {
	return &commodityRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "commodity")),
	}
}

// Create inserts a new commodity
func (r *commodityRepository) Create(ctx context.Context, c *domain.Commodity) error {
	query := `
		INSERT INTO commodities (name, description, trade_partner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		c.Name, c.Description, c.TradePartnerID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert commodity: %w", err)
	}

	r.logger.DebugContext(ctx, "commodity inserted",
		slog.Int64("commodity_id", c.ID))

	return nil
}

// Update replaces a commodity's fields
func (r *commodityRepository) Update(ctx context.Context, c *domain.Commodity) error {
	query := `
		UPDATE commodities SET
			name = $2, description = $3, trade_partner_id = $4, updated_at = $5
		WHERE id = $1`

	c.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Description, c.TradePartnerID, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update commodity: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("commodity not found: %d", c.ID)
	}

	return nil
}

// Delete removes a commodity
func (r *commodityRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM commodities WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete commodity: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("commodity not found: %d", id)
	}

	r.logger.DebugContext(ctx, "commodity deleted",
		slog.Int64("commodity_id", id))

	return nil
}

// FindByID retrieves a commodity by ID
func (r *commodityRepository) FindByID(ctx context.Context, id int64) (*domain.Commodity, error) {
	query := `
		SELECT id, name, description, trade_partner_id, created_at, updated_at
		FROM commodities
		WHERE id = $1`

	c := &domain.Commodity{}
	var description sql.NullString
	var tradePartnerID sql.NullInt64

	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &description, &tradePartnerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find commodity: %w", err)
	}

	c.Description = description.String
	if tradePartnerID.Valid {
		c.TradePartnerID = &tradePartnerID.Int64
	}

	return c, nil
}

// FindAll retrieves commodities with pagination
func (r *commodityRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.Commodity, int64, error) {
	var totalCount int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM commodities`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count commodities: %w", err)
	}

	query := `
		SELECT id, name, description, trade_partner_id, created_at, updated_at
		FROM commodities
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query commodities: %w", err)
	}
	defer rows.Close()

	var items []*domain.Commodity
	for rows.Next() {
		c := &domain.Commodity{}
		var description sql.NullString
		var tradePartnerID sql.NullInt64

		err := rows.Scan(
			&c.ID, &c.Name, &description, &tradePartnerID, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan commodity: %w", err)
		}

		c.Description = description.String
		if tradePartnerID.Valid {
			c.TradePartnerID = &tradePartnerID.Int64
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, totalCount, nil
}
