// internal/adapters/db/history_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
)

// historyRepository implements ports.HistoryRepository. The audit log is
// append-only: no update or delete statement exists anywhere in this file.
type historyRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *Database, logger *slog.Logger) ports.HistoryRepository {
	return &historyRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "history")),
	}
}

// Append inserts an audit entry. It runs on the caller's Querier so the
// entry commits or rolls back together with the movement it records.
func (r *historyRepository) Append(ctx context.Context, q ports.Querier, entry *domain.HistoryEntry) error {
	query := `
		INSERT INTO inventory_history (action, detail, type, quantity, movement_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query,
		entry.Action, entry.Detail, entry.Type, entry.Quantity,
		entry.MovementID, entry.UserID,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	r.logger.DebugContext(ctx, "history entry appended",
		slog.Int64("entry_id", entry.ID),
		slog.String("action", string(entry.Action)))

	return nil
}

// historyListWhere applies the optional movement filter to a builder, so
// the page query and its count share the same predicates.
func historyListWhere(qb squirrel.SelectBuilder, params ports.HistoryListParams) squirrel.SelectBuilder {
	if params.MovementID > 0 {
		qb = qb.Where(squirrel.Eq{"movement_id": params.MovementID})
	}
	return qb
}

// historyListOrder returns the ORDER BY clause for a history listing. The
// unfiltered log reads in insertion order; the per-movement view walks the
// (movement_id, created_at) index.
func historyListOrder(params ports.HistoryListParams) string {
	if params.MovementID > 0 {
		return "created_at ASC, id ASC"
	}
	return "id ASC"
}

// FindAll retrieves audit entries in insertion order
func (r *historyRepository) FindAll(ctx context.Context, params ports.HistoryListParams) ([]*domain.HistoryEntry, int64, error) {
	qb := historyListWhere(squirrel.Select(
		"id", "action", "detail", "type", "quantity",
		"movement_id", "user_id", "created_at",
	).From("inventory_history").
		PlaceholderFormat(squirrel.Dollar), params)

	countQb := historyListWhere(countSelect("inventory_history"), params)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count history entries: %w", err)
	}

	qb = qb.OrderBy(historyListOrder(params))

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
		return nil, 0, fmt.Errorf("failed to query history entries: %w", err)
	}
	defer rows.Close()

	var items []*domain.HistoryEntry
	for rows.Next() {
		entry := &domain.HistoryEntry{}
		var movementID, userID sql.NullInt64

		err := rows.Scan(
			&entry.ID, &entry.Action, &entry.Detail, &entry.Type, &entry.Quantity,
			&movementID, &userID, &entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan history entry: %w", err)
		}

		if movementID.Valid {
			entry.MovementID = &movementID.Int64
		}
		if userID.Valid {
			entry.UserID = &userID.Int64
		}

		items = append(items, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, totalCount, nil
}
