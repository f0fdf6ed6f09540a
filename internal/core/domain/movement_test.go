// internal/core/domain/movement_test.go
package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
)

func TestMovement_Validate(t *testing.T) {
	tests := []struct {
		name          string
		movement      domain.Movement
		expectedError bool
		expectedField string
	}{
		{
			name:          "valid_shipping_movement",
			movement:      domain.Movement{Type: domain.TypeShipping, Quantity: 10, CommodityID: 1},
			expectedError: false,
		},
		{
			name:          "valid_receiving_movement",
			movement:      domain.Movement{Type: domain.TypeReceiving, Quantity: 0, CommodityID: 2},
			expectedError: false,
		},
		{
			name:          "unknown_type",
			movement:      domain.Movement{Type: "transfer", Quantity: 1, CommodityID: 1},
			expectedError: true,
			expectedField: "type",
		},
		{
			name:          "negative_quantity",
			movement:      domain.Movement{Type: domain.TypeShipping, Quantity: -5, CommodityID: 1},
			expectedError: true,
			expectedField: "quantity",
		},
		{
			name:          "missing_commodity",
			movement:      domain.Movement{Type: domain.TypeShipping, Quantity: 5},
			expectedError: true,
			expectedField: "commodity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.movement.Validate()

			if tt.expectedError {
				require.Error(t, err)
				var vErr *domain.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Contains(t, vErr.Fields, tt.expectedField)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMovement_Validate_CollectsAllFields(t *testing.T) {
	m := domain.Movement{Type: "bogus", Quantity: -1}

	err := m.Validate()
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 3)
	assert.Contains(t, err.Error(), "quantity")
	assert.Contains(t, err.Error(), "commodity")
}

func TestNewHistoryEntry(t *testing.T) {
	movement := &domain.Movement{ID: 42, Type: domain.TypeReceiving, Quantity: 7, CommodityID: 3}
	actor := &domain.User{ID: 9, Username: "lauren"}

	tests := []struct {
		name             string
		action           domain.HistoryAction
		actor            *domain.User
		expectedDetail   string
		expectMovementID bool
		expectUserID     bool
	}{
		{
			name:             "add_with_actor",
			action:           domain.ActionAdd,
			actor:            actor,
			expectedDetail:   "inventory (#42) adjusted by lauren (#9)",
			expectMovementID: true,
			expectUserID:     true,
		},
		{
			name:             "modify_with_actor",
			action:           domain.ActionModify,
			actor:            actor,
			expectedDetail:   "inventory (#42) adjusted by lauren (#9)",
			expectMovementID: true,
			expectUserID:     true,
		},
		{
			name:             "delete_drops_movement_reference",
			action:           domain.ActionDelete,
			actor:            actor,
			expectedDetail:   "inventory (#42) deleted by lauren (#9)",
			expectMovementID: false,
			expectUserID:     true,
		},
		{
			name:             "system_actor",
			action:           domain.ActionAdd,
			actor:            nil,
			expectedDetail:   "inventory (#42) adjusted",
			expectMovementID: true,
			expectUserID:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.NewHistoryEntry(tt.action, movement, tt.actor)

			assert.Equal(t, tt.action, entry.Action)
			assert.Equal(t, tt.expectedDetail, entry.Detail)

			// The entry copies the snapshot state rather than referencing it
			assert.Equal(t, domain.TypeReceiving, entry.Type)
			assert.EqualValues(t, 7, entry.Quantity)

			if tt.expectMovementID {
				require.NotNil(t, entry.MovementID)
				assert.EqualValues(t, 42, *entry.MovementID)
			} else {
				assert.Nil(t, entry.MovementID)
			}

			if tt.expectUserID {
				require.NotNil(t, entry.UserID)
				assert.EqualValues(t, 9, *entry.UserID)
			} else {
				assert.Nil(t, entry.UserID)
			}
		})
	}
}

func TestHistoryEntry_SnapshotIndependence(t *testing.T) {
	movement := &domain.Movement{ID: 1, Type: domain.TypeShipping, Quantity: 100, CommodityID: 1}
	entry := domain.NewHistoryEntry(domain.ActionAdd, movement, nil)

	// Later mutations of the movement must not leak into the entry
	movement.Quantity = 5
	movement.Type = domain.TypeReceiving

	assert.Equal(t, domain.TypeShipping, entry.Type)
	assert.EqualValues(t, 100, entry.Quantity)
}
