// internal/handlers/inventory.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	redis_a "github.com/ldelaney/tradestock-be/internal/adapters/redis_adapter"
	"github.com/ldelaney/tradestock-be/internal/core/domain"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
	"github.com/ldelaney/tradestock-be/internal/core/services"
	"github.com/ldelaney/tradestock-be/internal/handlers/middleware"
)

// InventoryHandler handles movement, summary and history HTTP requests
type InventoryHandler struct {
	service     ports.InventoryService
	cache       ports.CacheRepository
	invalidator *redis_a.CacheManager
	logger      *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	service ports.InventoryService,
	cache ports.CacheRepository,
	invalidator *redis_a.CacheManager,
	logger *slog.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		service:     service,
		cache:       cache,
		invalidator: invalidator,
		logger:      logger.With(slog.String("handler", "inventory")),
	}
}

// CreateInventory handles POST /api/v1/inventories
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movement, err := h.service.CreateMovement(ctx, req.ToInput(), middleware.ActorFromContext(ctx))
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to create movement")
		return
	}

	h.invalidate(ctx)
	h.respondJSON(w, http.StatusCreated, movement)
}

// GetInventory handles GET /api/v1/inventories/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	movement, err := h.service.GetMovement(ctx, id)
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to get movement")
		return
	}

	h.respondJSON(w, http.StatusOK, movement)
}

// ListInventory handles GET /api/v1/inventories
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := ports.MovementListParams{
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}
	params.CommodityID = int64(queryInt(r, "commodity"))
	params.TradePartnerID = int64(queryInt(r, "trade_partner"))
	if t := r.URL.Query().Get("type"); t != "" {
		params.Type = domain.MovementType(t)
	}

	result, err := h.service.ListMovements(ctx, params)
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to list movements")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// UpdateInventory handles PUT /api/v1/inventories/{id}
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req UpdateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movement, err := h.service.UpdateMovement(ctx, id, req.ToInput(), middleware.ActorFromContext(ctx))
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to update movement")
		return
	}

	h.invalidate(ctx)
	h.respondJSON(w, http.StatusOK, movement)
}

// DeleteInventory handles DELETE /api/v1/inventories/{id}
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteMovement(ctx, id, middleware.ActorFromContext(ctx)); err != nil {
		h.respondServiceError(ctx, w, err, "failed to delete movement")
		return
	}

	h.invalidate(ctx)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Movement deleted successfully",
		"id":      id,
	})
}

// GetSummary handles GET /api/v1/inventories/summary
func (h *InventoryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Clamp before building the key so aliases of the same page (page=0
	// and page=1, say) share one cache entry.
	page, pageSize := services.NormalizePage(queryInt(r, "page"), queryInt(r, "page_size"))

	cacheKey := redis_a.BuildKey(redis_a.PrefixSummary,
		"page", strconv.Itoa(page), "size", strconv.Itoa(pageSize))

	var result ports.SummaryList
	err := h.cache.GetOrSet(ctx, cacheKey, &result, func() (interface{}, error) {
		return h.service.Summary(ctx, page, pageSize)
	}, 5*time.Minute)
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to load summary")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetGlutted handles GET /api/v1/inventories/glutted
func (h *InventoryHandler) GetGlutted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	threshold := int64(100)
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid threshold format")
			return
		}
		threshold = parsed
	}

	cacheKey := redis_a.BuildKey(redis_a.PrefixGlutted, strconv.FormatInt(threshold, 10))

	var rows []*domain.GluttedCommodity
	if threshold < 0 {
		// Bypass the cache so the service rejects it every time.
		_, err := h.service.Glutted(ctx, threshold)
		h.respondServiceError(ctx, w, err, "failed to load glutted commodities")
		return
	}

	err := h.cache.GetOrSet(ctx, cacheKey, &rows, func() (interface{}, error) {
		return h.service.Glutted(ctx, threshold)
	}, 5*time.Minute)
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to load glutted commodities")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"threshold": threshold,
		"items":     rows,
	})
}

// GetHistory handles GET /api/v1/inventories/history
func (h *InventoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := ports.HistoryListParams{
		MovementID: int64(queryInt(r, "inventory_id")),
		Page:       queryInt(r, "page"),
		PageSize:   queryInt(r, "page_size"),
	}

	result, err := h.service.History(ctx, params)
	if err != nil {
		h.respondServiceError(ctx, w, err, "failed to list history")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Helper methods

func (h *InventoryHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "Invalid movement ID format")
		return 0, false
	}
	return id, true
}

// invalidate drops derived cache entries after a committed mutation. Best
// effort: a cache failure never fails the request.
func (h *InventoryHandler) invalidate(ctx context.Context) {
	if h.invalidator == nil {
		return
	}
	if err := h.invalidator.InvalidateMovementCache(ctx); err != nil {
		h.logger.WarnContext(ctx, "cache invalidation failed",
			slog.String("error", err.Error()))
	}
}

func (h *InventoryHandler) respondServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	var invalidArg *domain.InvalidArgumentError
	if errors.As(err, &invalidArg) {
		h.respondError(w, http.StatusBadRequest, invalidArg.Error())
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

func (h *InventoryHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *InventoryHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Request DTOs

// CreateMovementRequest represents the request body for creating a movement
type CreateMovementRequest struct {
	Type         string `json:"type"`
	Quantity     int64  `json:"quantity"`
	Commodity    int64  `json:"commodity"`
	TradePartner *int64 `json:"trade_partner,omitempty"`
}

// ToInput converts the request to a service input
func (r *CreateMovementRequest) ToInput() ports.CreateMovementInput {
	return ports.CreateMovementInput{
		Type:           domain.MovementType(r.Type),
		Quantity:       r.Quantity,
		CommodityID:    r.Commodity,
		TradePartnerID: r.TradePartner,
	}
}

// UpdateMovementRequest represents a partial movement update; absent fields
// keep their stored values.
type UpdateMovementRequest struct {
	Type         *string `json:"type,omitempty"`
	Quantity     *int64  `json:"quantity,omitempty"`
	Commodity    *int64  `json:"commodity,omitempty"`
	TradePartner *int64  `json:"trade_partner,omitempty"`
}

// ToInput converts the request to a service input
func (r *UpdateMovementRequest) ToInput() ports.UpdateMovementInput {
	input := ports.UpdateMovementInput{
		Quantity:       r.Quantity,
		CommodityID:    r.Commodity,
		TradePartnerID: r.TradePartner,
	}
	if r.Type != nil {
		t := domain.MovementType(*r.Type)
		input.Type = &t
	}
	return input
}
