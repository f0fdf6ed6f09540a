// internal/adapters/db/trade_partner_repository.go
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

// tradePartnerRepository implements ports.TradePartnerRepository
type tradePartnerRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewTradePartnerRepository creates a new trade partner repository
func NewTradePartnerRepository(db *Database, logger *slog.Logger) ports.TradePartnerRepository {
	return &tradePartnerRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "trade_partner")),
	}
}

// Create inserts a new trade partner
func (r *tradePartnerRepository) Create(ctx context.Context, p *domain.TradePartner) error {
	query := `
		INSERT INTO trade_partners (name, address)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, p.Name, p.Address).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert trade partner: %w", err)
	}

	r.logger.DebugContext(ctx, "trade partner inserted",
		slog.Int64("partner_id", p.ID))

	return nil
}

// Update replaces a trade partner's fields
func (r *tradePartnerRepository) Update(ctx context.Context, p *domain.TradePartner) error {
	query := `
		UPDATE trade_partners SET name = $2, address = $3, updated_at = $4
		WHERE id = $1`

	p.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Address, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update trade partner: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trade partner not found: %d", p.ID)
	}

	return nil
}

// Delete removes a trade partner
func (r *tradePartnerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM trade_partners WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade partner: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trade partner not found: %d", id)
	}

	r.logger.DebugContext(ctx, "trade partner deleted",
		slog.Int64("partner_id", id))

	return nil
}

// FindByID retrieves a trade partner by ID
func (r *tradePartnerRepository) FindByID(ctx context.Context, id int64) (*domain.TradePartner, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM trade_partners
		WHERE id = $1`

	p := &domain.TradePartner{}
	var address sql.NullString

	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find trade partner: %w", err)
	}

	p.Address = address.String

	return p, nil
}

// FindAll retrieves trade partners with pagination
func (r *tradePartnerRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.TradePartner, int64, error) {
	var totalCount int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trade_partners`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count trade partners: %w", err)
	}

	query := `
		SELECT id, name, address, created_at, updated_at
		FROM trade_partners
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trade partners: %w", err)
	}
	defer rows.Close()

	var items []*domain.TradePartner
	for rows.Next() {
		p := &domain.TradePartner{}
		var address sql.NullString

		if err := rows.Scan(&p.ID, &p.Name, &address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan trade partner: %w", err)
		}

		p.Address = address.String
		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, totalCount, nil
}
