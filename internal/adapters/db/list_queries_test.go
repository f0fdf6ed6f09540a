package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
)

// The count queries must select exactly one column: pgx rejects a Scan
// where the row has more fields than destinations, so a count that drags
// the full pagination SELECT list along fails on any non-empty table.
func TestMovementListCountQuery(t *testing.T) {
	tests := []struct {
		name         string
		params       ports.MovementListParams
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:         "no_filters",
			params:       ports.MovementListParams{},
			expectedSQL:  "SELECT COUNT(*) FROM movements m",
			expectedArgs: nil,
		},
		{
			name: "all_filters",
			params: ports.MovementListParams{
				CommodityID:    7,
				TradePartnerID: 3,
				Type:           domain.TypeShipping,
			},
			expectedSQL:  "SELECT COUNT(*) FROM movements m WHERE m.commodity_id = $1 AND m.trade_partner_id = $2 AND m.type = $3",
			expectedArgs: []interface{}{int64(7), int64(3), domain.TypeShipping},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb := movementListWhere(countSelect("movements m"), tt.params)

			sql, args, err := qb.ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestHistoryListCountQuery(t *testing.T) {
	tests := []struct {
		name         string
		params       ports.HistoryListParams
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:         "no_filter",
			params:       ports.HistoryListParams{},
			expectedSQL:  "SELECT COUNT(*) FROM inventory_history",
			expectedArgs: nil,
		},
		{
			name:         "movement_filter",
			params:       ports.HistoryListParams{MovementID: 42},
			expectedSQL:  "SELECT COUNT(*) FROM inventory_history WHERE movement_id = $1",
			expectedArgs: []interface{}{int64(42)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb := historyListWhere(countSelect("inventory_history"), tt.params)

			sql, args, err := qb.ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestHistoryListOrder(t *testing.T) {
	// The unfiltered log reads in insertion order; the per-movement view
	// orders by created_at over the (movement_id, created_at) index.
	assert.Equal(t, "id ASC", historyListOrder(ports.HistoryListParams{}))
	assert.Equal(t, "created_at ASC, id ASC", historyListOrder(ports.HistoryListParams{MovementID: 42}))
}
