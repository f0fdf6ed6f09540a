// internal/handlers/catalog.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	redis_a "github.com/ldelaney/tradestock-be/internal/adapters/redis_adapter"
	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
)

// CatalogHandler handles trade-partner and commodity HTTP requests
type CatalogHandler struct {
	service     ports.CatalogService
	invalidator *redis_a.CacheManager
	logger      *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service ports.CatalogService, invalidator *redis_a.CacheManager, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:     service,
		invalidator: invalidator,
		logger:      logger.With(slog.String("handler", "catalog")),
	}
}

// ListPartners handles GET /api/v1/trade-partners
func (h *CatalogHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, total, err := h.service.ListPartners(ctx, queryInt(r, "page"), queryInt(r, "page_size"))
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to list trade partners")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"total_count": total,
	})
}

// CreatePartner handles POST /api/v1/trade-partners
func (h *CatalogHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TradePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	partner := req.ToDomain()
	if err := h.service.CreatePartner(ctx, partner); err != nil {
		h.respondServiceError(ctx, w, err, "failed to create trade partner")
		return
	}

	h.respondJSON(w, http.StatusCreated, partner)
}

// GetPartner handles GET /api/v1/trade-partners/{id}
func (h *CatalogHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	partner, err := h.service.GetPartner(ctx, id)
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to get trade partner")
		return
	}

	h.respondJSON(w, http.StatusOK, partner)
}

// UpdatePartner handles PUT /api/v1/trade-partners/{id}
func (h *CatalogHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req TradePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	partner, err := h.service.UpdatePartner(ctx, id, req.ToDomain())
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to update trade partner")
		return
	}

	h.respondJSON(w, http.StatusOK, partner)
}

// DeletePartner handles DELETE /api/v1/trade-partners/{id}
func (h *CatalogHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePartner(ctx, id); err != nil {
		h.respondServiceError(ctx, w, err, "failed to delete trade partner")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Trade partner deleted successfully",
		"id":      id,
	})
}

// ListCommodities handles GET /api/v1/commodities
func (h *CatalogHandler) ListCommodities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, total, err := h.service.ListCommodities(ctx, queryInt(r, "page"), queryInt(r, "page_size"))
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to list commodities")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":       items,
		"total_count": total,
	})
}

// CreateCommodity handles POST /api/v1/commodities
func (h *CatalogHandler) CreateCommodity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CommodityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	commodity := req.ToDomain()
	if err := h.service.CreateCommodity(ctx, commodity); err != nil {
		h.respondServiceError(ctx, w, err, "failed to create commodity")
		return
	}

	h.respondJSON(w, http.StatusCreated, commodity)
}

// GetCommodity handles GET /api/v1/commodities/{id}
func (h *CatalogHandler) GetCommodity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	commodity, err := h.service.GetCommodity(ctx, id)
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to get commodity")
		return
	}

	h.respondJSON(w, http.StatusOK, commodity)
}

// UpdateCommodity handles PUT /api/v1/commodities/{id}
func (h *CatalogHandler) UpdateCommodity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req CommodityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	commodity, err := h.service.UpdateCommodity(ctx, id, req.ToDomain())
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to update commodity")
		return
	}

	// Commodity names are denormalized into summary rows.
	h.invalidate(ctx)
	h.respondJSON(w, http.StatusOK, commodity)
}

// DeleteCommodity handles DELETE /api/v1/commodities/{id}. Deleting a
// commodity cascades to its movements, so movement-derived caches go too.
func (h *CatalogHandler) DeleteCommodity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCommodity(ctx, id); err != nil {
		h.respondServiceError(ctx, w, err, "failed to delete commodity")
		return
	}

	h.invalidate(ctx)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Commodity deleted successfully",
		"id":      id,
	})
}

// Helper methods

func (h *CatalogHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return id, true
}

func (h *CatalogHandler) invalidate(ctx context.Context) {
	if h.invalidator == nil {
		return
	}
	if err := h.invalidator.InvalidateMovementCache(ctx); err != nil {
		h.logger.WarnContext(ctx, "cache invalidation failed",
			slog.String("error", err.Error()))
	}
}

func (h *CatalogHandler) respondServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		h.respondError(w, http.StatusNotFound, notFound.Error())
		return
	}

	h.logger.ErrorContext(ctx, msg, slog.String("error", err.Error()))
	h.respondError(w, http.StatusInternalServerError, "Internal server error")
}

func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request DTOs

// TradePartnerRequest represents the request body for a trade partner
type TradePartnerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *TradePartnerRequest) ToDomain() *domain.TradePartner {
	return &domain.TradePartner{
		Name:    r.Name,
		Address: r.Address,
	}
}

// CommodityRequest represents the request body for a commodity
type CommodityRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	TradePartner *int64 `json:"trade_partner,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *CommodityRequest) ToDomain() *domain.Commodity {
	return &domain.Commodity{
		Name:           r.Name,
		Description:    r.Description,
		TradePartnerID: r.TradePartner,
	}
}
