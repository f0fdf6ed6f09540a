// internal/core/services/inventory_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
	"github.com/ldelaney/tradestock-be/internal/core/services"
	"github.com/ldelaney/tradestock-be/test/helpers"
	"github.com/ldelaney/tradestock-be/test/mocks"
)

type inventoryMocks struct {
	movements   *mocks.MockMovementRepository
	history     *mocks.MockHistoryRepository
	commodities *mocks.MockCommodityRepository
	db          *mocks.MockTxRunner
}

func newInventoryService(t *testing.T) (*services.InventoryService, inventoryMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := inventoryMocks{
		movements:   mocks.NewMockMovementRepository(ctrl),
		history:     mocks.NewMockHistoryRepository(ctrl),
		commodities: mocks.NewMockCommodityRepository(ctrl),
		db:          mocks.NewMockTxRunner(ctrl),
	}

	svc := services.NewInventoryService(m.movements, m.history, m.commodities, m.db, helpers.TestLogger())
	return svc, m
}

// passthroughTx makes the mock runner invoke the closure directly, the way
// the real adapter does inside an open transaction.
func passthroughTx(db *mocks.MockTxRunner) {
	db.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()
	db.EXPECT().
		TransactionWithOptions(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.TxOptions, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()
}

func TestInventoryService_CreateMovement(t *testing.T) {
	ctx := context.Background()
	actor := helpers.CreateTestUser()

	tests := []struct {
		name       string
		input      ports.CreateMovementInput
		actor      *domain.User
		setupMocks func(m inventoryMocks)
		wantErr    bool
		errorCheck func(t *testing.T, err error)
	}{
		{
			name: "creates_movement_with_audit_entry",
			input: ports.CreateMovementInput{
				Type:        domain.TypeReceiving,
				Quantity:    25,
				CommodityID: 3,
			},
			actor: actor,
			setupMocks: func(m inventoryMocks) {
				m.commodities.EXPECT().
					FindByID(gomock.Any(), int64(3)).
					Return(&domain.Commodity{ID: 3, Name: "Copper Wire"}, nil)
				passthroughTx(m.db)
				m.movements.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, mv *domain.Movement) error {
						mv.ID = 42
						return nil
					})
				m.history.EXPECT().
					Append(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, e *domain.HistoryEntry) error {
						assert.Equal(t, domain.ActionAdd, e.Action)
						assert.Equal(t, domain.TypeReceiving, e.Type)
						assert.Equal(t, int64(25), e.Quantity)
						require.NotNil(t, e.MovementID)
						assert.Equal(t, int64(42), *e.MovementID)
						require.NotNil(t, e.UserID)
						assert.Equal(t, actor.ID, *e.UserID)
						assert.Equal(t, "inventory (#42) adjusted by warehouse_clerk (#7)", e.Detail)
						return nil
					})
			},
		},
		{
			name: "system_actor_writes_plain_detail",
			input: ports.CreateMovementInput{
				Type:        domain.TypeShipping,
				Quantity:    5,
				CommodityID: 3,
			},
			actor: nil,
			setupMocks: func(m inventoryMocks) {
				m.commodities.EXPECT().
					FindByID(gomock.Any(), int64(3)).
					Return(&domain.Commodity{ID: 3}, nil)
				passthroughTx(m.db)
				m.movements.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, mv *domain.Movement) error {
						mv.ID = 9
						return nil
					})
				m.history.EXPECT().
					Append(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, e *domain.HistoryEntry) error {
						assert.Nil(t, e.UserID)
						assert.Equal(t, "inventory (#9) adjusted", e.Detail)
						return nil
					})
			},
		},
		{
			name: "rejects_invalid_type_before_any_write",
			input: ports.CreateMovementInput{
				Type:        "transfer",
				Quantity:    10,
				CommodityID: 3,
			},
			actor:      actor,
			setupMocks: func(m inventoryMocks) {},
			wantErr:    true,
			errorCheck: func(t *testing.T, err error) {
				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "type")
			},
		},
		{
			name: "rejects_negative_quantity_before_any_write",
			input: ports.CreateMovementInput{
				Type:        domain.TypeReceiving,
				Quantity:    -1,
				CommodityID: 3,
			},
			actor:      actor,
			setupMocks: func(m inventoryMocks) {},
			wantErr:    true,
			errorCheck: func(t *testing.T, err error) {
				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "quantity")
			},
		},
		{
			name: "rejects_unknown_commodity",
			input: ports.CreateMovementInput{
				Type:        domain.TypeReceiving,
				Quantity:    10,
				CommodityID: 999,
			},
			actor: actor,
			setupMocks: func(m inventoryMocks) {
				m.commodities.EXPECT().
					FindByID(gomock.Any(), int64(999)).
					Return(nil, nil)
			},
			wantErr: true,
			errorCheck: func(t *testing.T, err error) {
				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "commodity")
			},
		},
		{
			name: "audit_failure_fails_the_whole_mutation",
			input: ports.CreateMovementInput{
				Type:        domain.TypeReceiving,
				Quantity:    10,
				CommodityID: 3,
			},
			actor: actor,
			setupMocks: func(m inventoryMocks) {
				m.commodities.EXPECT().
					FindByID(gomock.Any(), int64(3)).
					Return(&domain.Commodity{ID: 3}, nil)
				passthroughTx(m.db)
				m.movements.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				m.history.EXPECT().
					Append(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantErr: true,
			errorCheck: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "audit entry")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newInventoryService(t)
			tt.setupMocks(m)

			result, err := svc.CreateMovement(ctx, tt.input, tt.actor)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				if tt.errorCheck != nil {
					tt.errorCheck(t, err)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotZero(t, result.ID)
			}
		})
	}
}

func TestInventoryService_UpdateMovement(t *testing.T) {
	ctx := context.Background()
	actor := helpers.CreateTestUser()

	newQuantity := int64(70)
	newType := domain.TypeShipping

	tests := []struct {
		name       string
		id         int64
		input      ports.UpdateMovementInput
		setupMocks func(m inventoryMocks)
		wantErr    bool
		errorCheck func(t *testing.T, err error)
		check      func(t *testing.T, m *domain.Movement)
	}{
		{
			name:  "applies_partial_update_and_records_post_state",
			id:    42,
			input: ports.UpdateMovementInput{Quantity: &newQuantity},
			setupMocks: func(m inventoryMocks) {
				passthroughTx(m.db)
				m.movements.EXPECT().
					FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(42)).
					Return(helpers.CreateTestMovement(func(mv *domain.Movement) {
						mv.ID = 42
						mv.Quantity = 10
					}), nil)
				m.movements.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				m.history.EXPECT().
					Append(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, e *domain.HistoryEntry) error {
						assert.Equal(t, domain.ActionModify, e.Action)
						assert.Equal(t, int64(70), e.Quantity)
						require.NotNil(t, e.MovementID)
						assert.Equal(t, int64(42), *e.MovementID)
						return nil
					})
			},
			check: func(t *testing.T, m *domain.Movement) {
				assert.Equal(t, int64(70), m.Quantity)
				assert.Equal(t, domain.TypeReceiving, m.Type)
			},
		},
		{
			name:  "changes_type_only",
			id:    42,
			input: ports.UpdateMovementInput{Type: &newType},
			setupMocks: func(m inventoryMocks) {
				passthroughTx(m.db)
				m.movements.EXPECT().
					FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(42)).
					Return(helpers.CreateTestMovement(func(mv *domain.Movement) {
						mv.ID = 42
						mv.Quantity = 10
					}), nil)
				m.movements.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				m.history.EXPECT().
					Append(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, e *domain.HistoryEntry) error {
						assert.Equal(t, domain.TypeShipping, e.Type)
						assert.Equal(t, int64(10), e.Quantity)
						return nil
					})
			},
			check: func(t *testing.T, m *domain.Movement) {
				assert.Equal(t, domain.TypeShipping, m.Type)
				assert.Equal(t, int64(10), m.Quantity)
			},
		},
		{
			name:  "returns_not_found_for_missing_movement",
			id:    404,
			input: ports.UpdateMovementInput{Quantity: &newQuantity},
			setupMocks: func(m inventoryMocks) {
				passthroughTx(m.db)
				m.movements.EXPECT().
					FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(404)).
					Return(nil, nil)
			},
			wantErr: true,
			errorCheck: func(t *testing.T, err error) {
				var notFound *domain.NotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, int64(404), notFound.ID)
			},
		},
		{
			name: "rejects_update_to_unknown_commodity",
			id:   42,
			input: ports.UpdateMovementInput{
				CommodityID: ptrInt64(999),
			},
			setupMocks: func(m inventoryMocks) {
				m.commodities.EXPECT().
					FindByID(gomock.Any(), int64(999)).
					Return(nil, nil)
			},
			wantErr: true,
			errorCheck: func(t *testing.T, err error) {
				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "commodity")
			},
		},
		{
			name:  "audit_failure_fails_the_whole_mutation",
			id:    42,
			input: ports.UpdateMovementInput{Quantity: &newQuantity},
			setupMocks: func(m inventoryMocks) {
				passthroughTx(m.db)
				m.movements.EXPECT().
					FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(42)).
					Return(helpers.CreateTestMovement(func(mv *domain.Movement) {
						mv.ID = 42
					}), nil)
				m.movements.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				m.history.EXPECT().
					Append(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newInventoryService(t)
			tt.setupMocks(m)

			result, err := svc.UpdateMovement(ctx, tt.id, tt.input, actor)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				if tt.errorCheck != nil {
					tt.errorCheck(t, err)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				if tt.check != nil {
					tt.check(t, result)
				}
			}
		})
	}
}

func TestInventoryService_DeleteMovement(t *testing.T) {
	ctx := context.Background()
	actor := helpers.CreateTestUser()

	t.Run("deletes_and_records_detached_entry", func(t *testing.T) {
		svc, m := newInventoryService(t)
		passthroughTx(m.db)

		m.movements.EXPECT().
			FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(42)).
			Return(helpers.CreateTestMovement(func(mv *domain.Movement) {
				mv.ID = 42
				mv.Type = domain.TypeShipping
				mv.Quantity = 15
			}), nil)
		m.movements.EXPECT().
			Delete(gomock.Any(), gomock.Any(), int64(42)).
			Return(nil)
		m.history.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, e *domain.HistoryEntry) error {
				assert.Equal(t, domain.ActionDelete, e.Action)
				assert.Equal(t, domain.TypeShipping, e.Type)
				assert.Equal(t, int64(15), e.Quantity)
				assert.Nil(t, e.MovementID, "delete entries carry no movement reference")
				assert.Equal(t, "inventory (#42) deleted by warehouse_clerk (#7)", e.Detail)
				return nil
			})

		err := svc.DeleteMovement(ctx, 42, actor)
		require.NoError(t, err)
	})

	t.Run("returns_not_found_for_missing_movement", func(t *testing.T) {
		svc, m := newInventoryService(t)
		passthroughTx(m.db)

		m.movements.EXPECT().
			FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(404)).
			Return(nil, nil)

		err := svc.DeleteMovement(ctx, 404, actor)
		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("audit_failure_fails_the_whole_mutation", func(t *testing.T) {
		svc, m := newInventoryService(t)
		passthroughTx(m.db)

		m.movements.EXPECT().
			FindByIDForUpdate(gomock.Any(), gomock.Any(), int64(42)).
			Return(helpers.CreateTestMovement(), nil)
		m.movements.EXPECT().
			Delete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.history.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		err := svc.DeleteMovement(ctx, 42, actor)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "audit entry")
	})
}

func TestInventoryService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_page_with_totals", func(t *testing.T) {
		svc, m := newInventoryService(t)
		passthroughTx(m.db)

		rows := []*domain.SummaryRow{
			{CommodityID: 1, CommodityName: "Copper Wire", TotalQuantity: 120, ShippingQuantity: 40, ReceivingQuantity: 80},
			{CommodityID: 2, CommodityName: "Steel Rod", TotalQuantity: 30, ShippingQuantity: 30},
		}

		m.movements.EXPECT().
			SummaryCount(gomock.Any(), gomock.Any()).
			Return(int64(2), nil)
		m.movements.EXPECT().
			Summary(gomock.Any(), gomock.Any(), 50, 0).
			Return(rows, nil)

		result, err := svc.Summary(ctx, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, rows, result.Items)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 50, result.PageSize)
		assert.Equal(t, int64(2), result.TotalCount)
		assert.Equal(t, 1, result.TotalPages)
	})

	t.Run("normalizes_page_and_offset", func(t *testing.T) {
		svc, m := newInventoryService(t)
		passthroughTx(m.db)

		m.movements.EXPECT().
			SummaryCount(gomock.Any(), gomock.Any()).
			Return(int64(25), nil)
		m.movements.EXPECT().
			Summary(gomock.Any(), gomock.Any(), 10, 20).
			Return([]*domain.SummaryRow{}, nil)

		result, err := svc.Summary(ctx, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Page)
		assert.Equal(t, 3, result.TotalPages)
	})

	t.Run("propagates_query_errors", func(t *testing.T) {
		svc, m := newInventoryService(t)
		passthroughTx(m.db)

		m.movements.EXPECT().
			SummaryCount(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("relation does not exist"))

		result, err := svc.Summary(ctx, 1, 10)
		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestInventoryService_Glutted(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_commodities_at_or_above_threshold", func(t *testing.T) {
		svc, m := newInventoryService(t)
		passthroughTx(m.db)

		rows := []*domain.GluttedCommodity{
			{CommodityID: 2, CommodityName: "Steel Rod", TotalQuantity: 500},
			{CommodityID: 1, CommodityName: "Copper Wire", TotalQuantity: 120},
		}

		m.movements.EXPECT().
			Glutted(gomock.Any(), gomock.Any(), int64(100)).
			Return(rows, nil)

		result, err := svc.Glutted(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, rows, result)
	})

	t.Run("accepts_zero_threshold", func(t *testing.T) {
		svc, m := newInventoryService(t)
		passthroughTx(m.db)

		m.movements.EXPECT().
			Glutted(gomock.Any(), gomock.Any(), int64(0)).
			Return([]*domain.GluttedCommodity{}, nil)

		result, err := svc.Glutted(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("rejects_negative_threshold_without_querying", func(t *testing.T) {
		svc, _ := newInventoryService(t)

		result, err := svc.Glutted(ctx, -1)
		require.Error(t, err)
		assert.Nil(t, result)

		var invalidArg *domain.InvalidArgumentError
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "threshold", invalidArg.Argument)
	})
}

func TestInventoryService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("lists_entries_with_pagination", func(t *testing.T) {
		svc, m := newInventoryService(t)

		movementID := int64(42)
		entries := []*domain.HistoryEntry{
			{ID: 1, Action: domain.ActionAdd, MovementID: &movementID},
			{ID: 2, Action: domain.ActionModify, MovementID: &movementID},
		}

		m.history.EXPECT().
			FindAll(gomock.Any(), ports.HistoryListParams{MovementID: 42, Page: 1, PageSize: 50}).
			Return(entries, int64(2), nil)

		result, err := svc.History(ctx, ports.HistoryListParams{MovementID: 42})
		require.NoError(t, err)
		assert.Equal(t, entries, result.Items)
		assert.Equal(t, int64(2), result.TotalCount)
	})

	t.Run("propagates_repository_errors", func(t *testing.T) {
		svc, m := newInventoryService(t)

		m.history.EXPECT().
			FindAll(gomock.Any(), gomock.Any()).
			Return(nil, int64(0), errors.New("timeout"))

		result, err := svc.History(ctx, ports.HistoryListParams{})
		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestInventoryService_GetMovement(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_movement", func(t *testing.T) {
		svc, m := newInventoryService(t)

		m.movements.EXPECT().
			FindByID(gomock.Any(), int64(42)).
			Return(helpers.CreateTestMovement(func(mv *domain.Movement) { mv.ID = 42 }), nil)

		result, err := svc.GetMovement(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), result.ID)
	})

	t.Run("returns_not_found", func(t *testing.T) {
		svc, m := newInventoryService(t)

		m.movements.EXPECT().
			FindByID(gomock.Any(), int64(404)).
			Return(nil, nil)

		result, err := svc.GetMovement(ctx, 404)
		require.Error(t, err)
		assert.Nil(t, result)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestInventoryService_ListMovements(t *testing.T) {
	ctx := context.Background()

	svc, m := newInventoryService(t)

	movements := helpers.CreateTestMovements(3)
	m.movements.EXPECT().
		FindAll(gomock.Any(), ports.MovementListParams{CommodityID: 1, Page: 1, PageSize: 50}).
		Return(movements, int64(3), nil)

	result, err := svc.ListMovements(ctx, ports.MovementListParams{CommodityID: 1})
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)
	assert.Equal(t, int64(3), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
}

func ptrInt64(v int64) *int64 {
	return &v
}
