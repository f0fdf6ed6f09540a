// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
)

// CatalogService manages the trade-partner and commodity reference data
// that movements point at. No audit entries are recorded here; only
// inventory mutations are audited.
type CatalogService struct {
	partners    ports.TradePartnerRepository
	commodities ports.CommodityRepository
	logger      *slog.Logger
}

// Statically assert that *CatalogService implements the CatalogService interface.
var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(
	partners ports.TradePartnerRepository,
	commodities ports.CommodityRepository,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		partners:    partners,
		commodities: commodities,
		logger:      logger.With(slog.String("service", "catalog")),
	}
}

// CreatePartner validates and persists a new trade partner
func (s *CatalogService) CreatePartner(ctx context.Context, p *domain.TradePartner) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.partners.Create(ctx, p); err != nil {
		return fmt.Errorf("failed to create trade partner: %w", err)
	}
	s.logger.InfoContext(ctx, "trade partner created", slog.Int64("partner_id", p.ID))
	return nil
}

// UpdatePartner replaces a trade partner's fields
func (s *CatalogService) UpdatePartner(ctx context.Context, id int64, p *domain.TradePartner) (*domain.TradePartner, error) {
	existing, err := s.partners.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load trade partner: %w", err)
	}
	if existing == nil {
		return nil, &domain.NotFoundError{Resource: "trade partner", ID: id}
	}

	existing.Name = p.Name
	existing.Address = p.Address
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.partners.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update trade partner: %w", err)
	}
	return existing, nil
}

// DeletePartner removes a trade partner
func (s *CatalogService) DeletePartner(ctx context.Context, id int64) error {
	existing, err := s.partners.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load trade partner: %w", err)
	}
	if existing == nil {
		return &domain.NotFoundError{Resource: "trade partner", ID: id}
	}
	if err := s.partners.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete trade partner: %w", err)
	}
	s.logger.InfoContext(ctx, "trade partner deleted", slog.Int64("partner_id", id))
	return nil
}

// GetPartner retrieves a trade partner by ID
func (s *CatalogService) GetPartner(ctx context.Context, id int64) (*domain.TradePartner, error) {
	p, err := s.partners.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade partner: %w", err)
	}
	if p == nil {
		return nil, &domain.NotFoundError{Resource: "trade partner", ID: id}
	}
	return p, nil
}

// ListPartners retrieves trade partners with pagination
func (s *CatalogService) ListPartners(ctx context.Context, page, pageSize int) ([]*domain.TradePartner, int64, error) {
	page, pageSize = NormalizePage(page, pageSize)
	items, total, err := s.partners.FindAll(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trade partners: %w", err)
	}
	return items, total, nil
}

// CreateCommodity validates and persists a new commodity
func (s *CatalogService) CreateCommodity(ctx context.Context, c *domain.Commodity) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.commodities.Create(ctx, c); err != nil {
		return fmt.Errorf("failed to create commodity: %w", err)
	}
	s.logger.InfoContext(ctx, "commodity created", slog.Int64("commodity_id", c.ID))
	return nil
}

// UpdateCommodity replaces a commodity's fields
func (s *CatalogService) UpdateCommodity(ctx context.Context, id int64, c *domain.Commodity) (*domain.Commodity, error) {
	existing, err := s.commodities.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load commodity: %w", err)
	}
	if existing == nil {
		return nil, &domain.NotFoundError{Resource: "commodity", ID: id}
	}

	existing.Name = c.Name
	existing.Description = c.Description
	existing.TradePartnerID = c.TradePartnerID
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.commodities.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update commodity: %w", err)
	}
	return existing, nil
}

// DeleteCommodity removes a commodity
func (s *CatalogService) DeleteCommodity(ctx context.Context, id int64) error {
	existing, err := s.commodities.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load commodity: %w", err)
	}
	if existing == nil {
		return &domain.NotFoundError{Resource: "commodity", ID: id}
	}
	if err := s.commodities.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete commodity: %w", err)
	}
	s.logger.InfoContext(ctx, "commodity deleted", slog.Int64("commodity_id", id))
	return nil
}

// GetCommodity retrieves a commodity by ID
func (s *CatalogService) GetCommodity(ctx context.Context, id int64) (*domain.Commodity, error) {
	c, err := s.commodities.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get commodity: %w", err)
	}
	if c == nil {
		return nil, &domain.NotFoundError{Resource: "commodity", ID: id}
	}
	return c, nil
}

// ListCommodities retrieves commodities with pagination
func (s *CatalogService) ListCommodities(ctx context.Context, page, pageSize int) ([]*domain.Commodity, int64, error) {
	page, pageSize = NormalizePage(page, pageSize)
	items, total, err := s.commodities.FindAll(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list commodities: %w", err)
	}
	return items, total, nil
}
