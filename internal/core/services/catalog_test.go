// internal/core/services/catalog_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/services"
	"github.com/ldelaney/tradestock-be/test/helpers"
	"github.com/ldelaney/tradestock-be/test/mocks"
)

func newCatalogService(t *testing.T) (*services.CatalogService, *mocks.MockTradePartnerRepository, *mocks.MockCommodityRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	partners := mocks.NewMockTradePartnerRepository(ctrl)
	commodities := mocks.NewMockCommodityRepository(ctrl)
	svc := services.NewCatalogService(partners, commodities, helpers.TestLogger())
	return svc, partners, commodities
}

func TestCatalogService_CreatePartner(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_valid_partner", func(t *testing.T) {
		svc, partners, _ := newCatalogService(t)

		partners.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.CreatePartner(ctx, &domain.TradePartner{Name: "Acme Trading Co"})
		require.NoError(t, err)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		svc, _, _ := newCatalogService(t)

		err := svc.CreatePartner(ctx, &domain.TradePartner{})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "name")
	})
}

func TestCatalogService_UpdatePartner(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces_fields", func(t *testing.T) {
		svc, partners, _ := newCatalogService(t)

		partners.EXPECT().
			FindByID(gomock.Any(), int64(1)).
			Return(&domain.TradePartner{ID: 1, Name: "Old Name", Address: "Old Address"}, nil)
		partners.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := svc.UpdatePartner(ctx, 1, &domain.TradePartner{Name: "New Name", Address: "New Address"})
		require.NoError(t, err)
		assert.Equal(t, "New Name", result.Name)
		assert.Equal(t, "New Address", result.Address)
	})

	t.Run("returns_not_found", func(t *testing.T) {
		svc, partners, _ := newCatalogService(t)

		partners.EXPECT().
			FindByID(gomock.Any(), int64(404)).
			Return(nil, nil)

		result, err := svc.UpdatePartner(ctx, 404, &domain.TradePartner{Name: "New Name"})
		assert.Nil(t, result)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestCatalogService_DeleteCommodity(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes_existing_commodity", func(t *testing.T) {
		svc, _, commodities := newCatalogService(t)

		commodities.EXPECT().
			FindByID(gomock.Any(), int64(3)).
			Return(&domain.Commodity{ID: 3, Name: "Copper Wire"}, nil)
		commodities.EXPECT().
			Delete(gomock.Any(), int64(3)).
			Return(nil)

		err := svc.DeleteCommodity(ctx, 3)
		require.NoError(t, err)
	})

	t.Run("returns_not_found", func(t *testing.T) {
		svc, _, commodities := newCatalogService(t)

		commodities.EXPECT().
			FindByID(gomock.Any(), int64(404)).
			Return(nil, nil)

		err := svc.DeleteCommodity(ctx, 404)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestCatalogService_UpdateCommodity(t *testing.T) {
	ctx := context.Background()
	partnerID := int64(2)

	svc, _, commodities := newCatalogService(t)

	commodities.EXPECT().
		FindByID(gomock.Any(), int64(3)).
		Return(&domain.Commodity{ID: 3, Name: "Copper Wire"}, nil)
	commodities.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := svc.UpdateCommodity(ctx, 3, &domain.Commodity{
		Name:           "Copper Wire 2mm",
		Description:    "spooled",
		TradePartnerID: &partnerID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Copper Wire 2mm", result.Name)
	assert.Equal(t, "spooled", result.Description)
	require.NotNil(t, result.TradePartnerID)
	assert.Equal(t, int64(2), *result.TradePartnerID)
}

func TestCatalogService_ListCommodities(t *testing.T) {
	ctx := context.Background()

	t.Run("paginates", func(t *testing.T) {
		svc, _, commodities := newCatalogService(t)

		commodities.EXPECT().
			FindAll(gomock.Any(), 10, 10).
			Return([]*domain.Commodity{{ID: 11}}, int64(11), nil)

		items, total, err := svc.ListCommodities(ctx, 2, 10)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(11), total)
	})

	t.Run("propagates_errors", func(t *testing.T) {
		svc, _, commodities := newCatalogService(t)

		commodities.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, int64(0), errors.New("timeout"))

		_, _, err := svc.ListCommodities(ctx, 1, 10)
		require.Error(t, err)
	})
}
