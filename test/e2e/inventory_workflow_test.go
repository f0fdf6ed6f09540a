//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ldelaney/tradestock-be/internal/adapters/db"
	redis_a "github.com/ldelaney/tradestock-be/internal/adapters/redis_adapter"
	"github.com/ldelaney/tradestock-be/internal/core/services"
	"github.com/ldelaney/tradestock-be/internal/handlers"
	"github.com/ldelaney/tradestock-be/internal/handlers/middleware"
	"github.com/ldelaney/tradestock-be/test/helpers"
)

type InventoryE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *InventoryE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *InventoryE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *InventoryE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()

	// The audit log references the acting user by foreign key.
	_, err := s.testDB.PgxPool.Exec(context.Background(),
		`INSERT INTO users (id, username) VALUES (7, 'warehouse_clerk') ON CONFLICT (id) DO NOTHING`)
	s.Require().NoError(err)
}

func (s *InventoryE2ESuite) TestMovementLifecycle() {
	ids := helpers.SeedCatalog(s.T(), s.testDB.PgxPool, "Copper Wire")

	// 1. Create a movement
	createReq := map[string]interface{}{
		"type":      "receiving",
		"quantity":  10,
		"commodity": ids[0],
	}

	resp := s.makeRequest("POST", "/inventories", createReq)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	movementID := int64(created["id"].(float64))
	s.Greater(movementID, int64(0))

	// 2. Retrieve it
	resp = s.makeRequest("GET", fmt.Sprintf("/inventories/%d", movementID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var retrieved map[string]interface{}
	s.decodeResponse(resp, &retrieved)
	s.Equal("receiving", retrieved["type"])
	s.Equal(float64(10), retrieved["quantity"])

	// 3. Partial update: only the quantity changes
	resp = s.makeRequest("PUT", fmt.Sprintf("/inventories/%d", movementID),
		map[string]interface{}{"quantity": 70})
	s.Equal(http.StatusOK, resp.StatusCode)

	var updated map[string]interface{}
	s.decodeResponse(resp, &updated)
	s.Equal(float64(70), updated["quantity"])
	s.Equal("receiving", updated["type"])

	// 4. List
	resp = s.makeRequest("GET", "/inventories", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var list map[string]interface{}
	s.decodeResponse(resp, &list)
	s.Equal(float64(1), list["total_count"])

	// 5. Delete
	resp = s.makeRequest("DELETE", fmt.Sprintf("/inventories/%d", movementID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("GET", fmt.Sprintf("/inventories/%d", movementID), nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	// 6. Every mutation left exactly one audit entry, in order
	resp = s.makeRequest("GET", "/inventories/history", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var history map[string]interface{}
	s.decodeResponse(resp, &history)
	entries := history["items"].([]interface{})
	s.Require().Len(entries, 3)

	first := entries[0].(map[string]interface{})
	s.Equal("add", first["action"])
	s.Equal(fmt.Sprintf("inventory (#%d) adjusted by warehouse_clerk (#7)", movementID), first["detail"])

	second := entries[1].(map[string]interface{})
	s.Equal("modify", second["action"])
	s.Equal(float64(70), second["quantity"])

	// The delete entry keeps the snapshot but no movement reference.
	third := entries[2].(map[string]interface{})
	s.Equal("delete", third["action"])
	s.Nil(third["inventory"])
	s.Equal(fmt.Sprintf("inventory (#%d) deleted by warehouse_clerk (#7)", movementID), third["detail"])
}

func (s *InventoryE2ESuite) TestSummaryAggregation() {
	// The third commodity never moves and must not appear in the summary.
	ids := helpers.SeedCatalog(s.T(), s.testDB.PgxPool, "Copper Wire", "Pine Lumber", "Wheat Bran")

	movements := []map[string]interface{}{
		{"type": "receiving", "quantity": 2, "commodity": ids[0]},
		{"type": "shipping", "quantity": 1, "commodity": ids[0]},
		{"type": "receiving", "quantity": 4, "commodity": ids[1]},
		{"type": "shipping", "quantity": 3, "commodity": ids[1]},
	}
	for _, m := range movements {
		resp := s.makeRequest("POST", "/inventories", m)
		s.Require().Equal(http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := s.makeRequest("GET", "/inventories/summary", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var summary map[string]interface{}
	s.decodeResponse(resp, &summary)
	rows := summary["items"].([]interface{})
	s.Require().Len(rows, 2)
	s.Equal(float64(2), summary["total_count"])

	// Ordered by commodity ID
	copper := rows[0].(map[string]interface{})
	s.Equal("Copper Wire", copper["commodity_name"])
	s.Equal(float64(3), copper["total_quantity"])
	s.Equal(float64(1), copper["shipping_quantity"])
	s.Equal(float64(2), copper["receiving_quantity"])

	lumber := rows[1].(map[string]interface{})
	s.Equal("Pine Lumber", lumber["commodity_name"])
	s.Equal(float64(7), lumber["total_quantity"])
	s.Equal(float64(3), lumber["shipping_quantity"])
	s.Equal(float64(4), lumber["receiving_quantity"])
}

func (s *InventoryE2ESuite) TestGluttedReport() {
	ids := helpers.SeedCatalog(s.T(), s.testDB.PgxPool, "Zinc Concentrate", "Raw Cotton")

	movements := []map[string]interface{}{
		{"type": "receiving", "quantity": 120, "commodity": ids[0]},
		{"type": "receiving", "quantity": 99, "commodity": ids[1]},
	}
	for _, m := range movements {
		resp := s.makeRequest("POST", "/inventories", m)
		s.Require().Equal(http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// Default threshold of 100 only catches the first commodity
	resp := s.makeRequest("GET", "/inventories/glutted", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var report map[string]interface{}
	s.decodeResponse(resp, &report)
	s.Equal(float64(100), report["threshold"])
	items := report["items"].([]interface{})
	s.Require().Len(items, 1)
	s.Equal("Zinc Concentrate", items[0].(map[string]interface{})["commodity_name"])

	// Boundary: the threshold is inclusive
	resp = s.makeRequest("GET", "/inventories/glutted?threshold=99", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	s.decodeResponse(resp, &report)
	items = report["items"].([]interface{})
	s.Require().Len(items, 2)

	// Highest total first
	s.Equal(float64(120), items[0].(map[string]interface{})["total_quantity"])
	s.Equal(float64(99), items[1].(map[string]interface{})["total_quantity"])

	// Negative thresholds are rejected
	resp = s.makeRequest("GET", "/inventories/glutted?threshold=-5", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *InventoryE2ESuite) TestSummaryExport() {
	ids := helpers.SeedCatalog(s.T(), s.testDB.PgxPool, "Aluminium Ingot")

	resp := s.makeRequest("POST", "/inventories",
		map[string]interface{}{"type": "receiving", "quantity": 5, "commodity": ids[0]})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", "/export/summary.xlsx", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.NoError(err)
	s.NotEmpty(body)
}

func (s *InventoryE2ESuite) TestRejectsInvalidActorHeader() {
	req, err := http.NewRequest("POST", s.baseURL+"/inventories",
		bytes.NewReader([]byte(`{"type":"receiving","quantity":1,"commodity":1}`)))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "not-a-number")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *InventoryE2ESuite) TestHealthCheck() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.Require().NoError(err)

	s.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	s.decodeResponse(resp, &health)
	s.Equal("healthy", health["status"])

	srvcs := health["services"].(map[string]interface{})
	s.Contains(srvcs, "database")
	s.Contains(srvcs, "redis")
}

// Helper methods

func (s *InventoryE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	cfg := helpers.LoadTestConfig()
	database := s.testDB.Database

	cache := redis_a.NewCache(s.testRedis.Client, time.Hour, logger)
	cacheManager := redis_a.NewCacheManager(cache, logger)

	movementRepo := db.NewMovementRepository(database, logger)
	historyRepo := db.NewHistoryRepository(database, logger)
	commodityRepo := db.NewCommodityRepository(database, logger)
	partnerRepo := db.NewTradePartnerRepository(database, logger)

	inventoryService := services.NewInventoryService(movementRepo, historyRepo, commodityRepo, database, logger)
	catalogService := services.NewCatalogService(partnerRepo, commodityRepo, logger)

	inventoryHandler := handlers.NewInventoryHandler(inventoryService, cache, cacheManager, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, cacheManager, logger)
	exportHandler := handlers.NewExportHandler(inventoryService, logger)
	healthHandler := handlers.NewHealthHandler(database, s.testRedis.Client, cfg, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Readiness)

	mux.HandleFunc("GET /api/v1/inventories", inventoryHandler.ListInventory)
	mux.HandleFunc("POST /api/v1/inventories", inventoryHandler.CreateInventory)
	mux.HandleFunc("GET /api/v1/inventories/summary", inventoryHandler.GetSummary)
	mux.HandleFunc("GET /api/v1/inventories/glutted", inventoryHandler.GetGlutted)
	mux.HandleFunc("GET /api/v1/inventories/history", inventoryHandler.GetHistory)
	mux.HandleFunc("GET /api/v1/inventories/{id}", inventoryHandler.GetInventory)
	mux.HandleFunc("PUT /api/v1/inventories/{id}", inventoryHandler.UpdateInventory)
	mux.HandleFunc("DELETE /api/v1/inventories/{id}", inventoryHandler.DeleteInventory)

	mux.HandleFunc("GET /api/v1/trade-partners", catalogHandler.ListPartners)
	mux.HandleFunc("POST /api/v1/trade-partners", catalogHandler.CreatePartner)
	mux.HandleFunc("GET /api/v1/trade-partners/{id}", catalogHandler.GetPartner)
	mux.HandleFunc("PUT /api/v1/trade-partners/{id}", catalogHandler.UpdatePartner)
	mux.HandleFunc("DELETE /api/v1/trade-partners/{id}", catalogHandler.DeletePartner)

	mux.HandleFunc("GET /api/v1/commodities", catalogHandler.ListCommodities)
	mux.HandleFunc("POST /api/v1/commodities", catalogHandler.CreateCommodity)
	mux.HandleFunc("GET /api/v1/commodities/{id}", catalogHandler.GetCommodity)
	mux.HandleFunc("PUT /api/v1/commodities/{id}", catalogHandler.UpdateCommodity)
	mux.HandleFunc("DELETE /api/v1/commodities/{id}", catalogHandler.DeleteCommodity)

	mux.HandleFunc("GET /api/v1/export/summary.xlsx", exportHandler.ExportSummaryExcel)

	var handler http.Handler = mux
	handler = middleware.Actor(cfg.Security.ActorIDHeader)(handler)
	handler = middleware.RequestID(handler)

	return httptest.NewServer(handler)
}

func (s *InventoryE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-Username", "warehouse_clerk")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *InventoryE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestInventoryE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(InventoryE2ESuite))
}
