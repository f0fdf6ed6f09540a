// internal/adapters/db/movement_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
)

// movementRepository implements ports.MovementRepository
type movementRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewMovementRepository creates a new movement repository
func NewMovementRepository(db *Database, logger *slog.Logger) ports.MovementRepository {
	return &movementRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "movement")),
	}
}

// Create inserts a new movement. It runs on the caller's Querier so the
// insert lands in the same transaction as the audit entry.
func (r *movementRepository) Create(ctx context.Context, q ports.Querier, m *domain.Movement) error {
	query := `
		INSERT INTO movements (type, quantity, commodity_id, trade_partner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		m.Type, m.Quantity, m.CommodityID, m.TradePartnerID,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}

	r.logger.DebugContext(ctx, "movement inserted",
		slog.Int64("movement_id", m.ID),
		slog.Int64("commodity_id", m.CommodityID))

	return nil
}

// Update replaces a movement's fields
func (r *movementRepository) Update(ctx context.Context, q ports.Querier, m *domain.Movement) error {
	query := `
		UPDATE movements SET
			type = $2, quantity = $3, commodity_id = $4,
			trade_partner_id = $5, updated_at = $6
		WHERE id = $1`

	m.UpdatedAt = time.Now()

	tag, err := q.Exec(ctx, query,
		m.ID, m.Type, m.Quantity, m.CommodityID, m.TradePartnerID, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update movement: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("movement not found: %d", m.ID)
	}

	r.logger.DebugContext(ctx, "movement updated",
		slog.Int64("movement_id", m.ID))

	return nil
}

// Delete removes a movement
func (r *movementRepository) Delete(ctx context.Context, q ports.Querier, id int64) error {
	query := `DELETE FROM movements WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete movement: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("movement not found: %d", id)
	}

	r.logger.DebugContext(ctx, "movement deleted",
		slog.Int64("movement_id", id))

	return nil
}

// FindByIDForUpdate loads a movement and locks the row until the caller's
// transaction ends. Returns nil without error when the row is absent.
func (r *movementRepository) FindByIDForUpdate(ctx context.Context, q ports.Querier, id int64) (*domain.Movement, error) {
	query := `
		SELECT id, type, quantity, commodity_id, trade_partner_id, created_at, updated_at
		FROM movements
		WHERE id = $1
		FOR UPDATE`

	m := &domain.Movement{}
	var tradePartnerID sql.NullInt64

	err := q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Type, &m.Quantity, &m.CommodityID,
		&tradePartnerID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock movement: %w", err)
	}

	if tradePartnerID.Valid {
		m.TradePartnerID = &tradePartnerID.Int64
	}

	return m, nil
}

// FindByID retrieves a movement with its commodity name
func (r *movementRepository) FindByID(ctx context.Context, id int64) (*domain.Movement, error) {
	query := `
		SELECT m.id, m.type, m.quantity, m.commodity_id, c.name,
			m.trade_partner_id, m.created_at, m.updated_at
		FROM movements m
		JOIN commodities c ON c.id = m.commodity_id
		WHERE m.id = $1`

	m := &domain.Movement{}
	var tradePartnerID sql.NullInt64

	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Type, &m.Quantity, &m.CommodityID, &m.CommodityName,
		&tradePartnerID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find movement: %w", err)
	}

	if tradePartnerID.Valid {
		m.TradePartnerID = &tradePartnerID.Int64
	}

	return m, nil
}

// countSelect starts a listing count query. It selects a single column so
// the result scans into one destination.
func countSelect(from string) squirrel.SelectBuilder {
	return squirrel.Select("COUNT(*)").From(from).PlaceholderFormat(squirrel.Dollar)
}

// movementListWhere applies the listing filters to a builder, so the page
// query and its count share the same predicates.
func movementListWhere(qb squirrel.SelectBuilder, params ports.MovementListParams) squirrel.SelectBuilder {
	if params.CommodityID > 0 {
		qb = qb.Where(squirrel.Eq{"m.commodity_id": params.CommodityID})
	}
	if params.TradePartnerID > 0 {
		qb = qb.Where(squirrel.Eq{"m.trade_partner_id": params.TradePartnerID})
	}
	if params.Type != "" {
		qb = qb.Where(squirrel.Eq{"m.type": params.Type})
	}
	return qb
}

// FindAll retrieves movements with filtering and pagination
func (r *movementRepository) FindAll(ctx context.Context, params ports.MovementListParams) ([]*domain.Movement, int64, error) {
	qb := movementListWhere(squirrel.Select(
		"m.id", "m.type", "m.quantity", "m.commodity_id", "c.name",
		"m.trade_partner_id", "m.created_at", "m.updated_at",
	).From("movements m").
		Join("commodities c ON c.id = m.commodity_id").
		PlaceholderFormat(squirrel.Dollar), params)

	// commodity_id is NOT NULL, so the count does not need the join
	countQb := movementListWhere(countSelect("movements m"), params)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count movements: %w", err)
	}

	qb = qb.OrderBy("m.created_at DESC, m.id DESC")

	// Apply pagination
	if params.PageSize > 0 {
		qb = qb.Limit(uint64(params.PageSize))
		if params.Page > 1 {
			qb = qb.Offset(uint64((params.Page - 1) * params.PageSize))
		}
	}

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	var items []*domain.Movement
	for rows.Next() {
		m := &domain.Movement{}
		var tradePartnerID sql.NullInt64

		err := rows.Scan(
			&m.ID, &m.Type, &m.Quantity, &m.CommodityID, &m.CommodityName,
			&tradePartnerID, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan movement: %w", err)
		}

		if tradePartnerID.Valid {
			m.TradePartnerID = &tradePartnerID.Int64
		}

		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, totalCount, nil
}

// Summary aggregates movements per commodity, ordered by commodity ID.
// Commodities without movements produce no row; sums coalesce to zero so
// a commodity with only one movement type still reports both columns.
func (r *movementRepository) Summary(ctx context.Context, q ports.Querier, limit, offset int) ([]*domain.SummaryRow, error) {
	query := `
		SELECT c.id, c.name,
			COALESCE(SUM(m.quantity), 0) AS total_quantity,
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'shipping'), 0) AS shipping_quantity,
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'receiving'), 0) AS receiving_quantity
		FROM movements m
		JOIN commodities c ON c.id = m.commodity_id
		GROUP BY c.id, c.name
		ORDER BY c.id ASC
		LIMIT $1 OFFSET $2`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	defer rows.Close()

	var items []*domain.SummaryRow
	for rows.Next() {
		row := &domain.SummaryRow{}
		err := rows.Scan(
			&row.CommodityID, &row.CommodityName,
			&row.TotalQuantity, &row.ShippingQuantity, &row.ReceivingQuantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// SummaryCount returns how many commodities have at least one movement
func (r *movementRepository) SummaryCount(ctx context.Context, q ports.Querier) (int64, error) {
	query := `SELECT COUNT(DISTINCT commodity_id) FROM movements`

	var count int64
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count summary rows: %w", err)
	}

	return count, nil
}

// Glutted lists commodities whose total quantity meets or exceeds the
// threshold, largest totals first.
func (r *movementRepository) Glutted(ctx context.Context, q ports.Querier, threshold int64) ([]*domain.GluttedCommodity, error) {
	query := `
		SELECT c.id, c.name, COALESCE(SUM(m.quantity), 0) AS total_quantity
		FROM movements m
		JOIN commodities c ON c.id = m.commodity_id
		GROUP BY c.id, c.name
		HAVING COALESCE(SUM(m.quantity), 0) >= $1
		ORDER BY total_quantity DESC, c.id ASC`

	rows, err := q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query glutted commodities: %w", err)
	}
	defer rows.Close()

	var items []*domain.GluttedCommodity
	for rows.Next() {
		row := &domain.GluttedCommodity{}
		if err := rows.Scan(&row.CommodityID, &row.CommodityName, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan glutted commodity: %w", err)
		}
		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}
