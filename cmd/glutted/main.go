// cmd/glutted/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ldelaney/tradestock-be/internal/adapters/db"
	"github.com/ldelaney/tradestock-be/internal/core/services"
	"github.com/ldelaney/tradestock-be/internal/pkg/config"
	"github.com/ldelaney/tradestock-be/internal/pkg/logger"
)

// Glutted commodity report. Connects to the same database as the API and
// prints every commodity whose total quantity meets or exceeds the
// threshold, highest first.
func main() {
	var (
		quantity = flag.Int64("quantity", 100, "Minimum total quantity for a commodity to be reported")
		logLevel = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
		timeout  = flag.Duration("timeout", 30*time.Second, "Overall timeout for the report query")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "text")

	if *quantity < 0 {
		fmt.Fprintf(os.Stderr, "error: quantity threshold must not be negative (got %d)\n", *quantity)
		os.Exit(2)
	}

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     2,
		MinConnections:     1,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
	}, slogger.Logger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	movementRepo := db.NewMovementRepository(database, slogger.Logger)
	historyRepo := db.NewHistoryRepository(database, slogger.Logger)
	commodityRepo := db.NewCommodityRepository(database, slogger.Logger)

	service := services.NewInventoryService(movementRepo, historyRepo, commodityRepo, database, slogger.Logger)

	rows, err := service.Glutted(ctx, *quantity)
	if err != nil {
		slogger.Error("failed to load glutted commodities", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(rows) == 0 {
		fmt.Printf("No commodities at or above quantity %d\n", *quantity)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMMODITY\tTOTAL QUANTITY")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d\n", row.CommodityID, row.CommodityName, row.TotalQuantity)
	}
	w.Flush()

	fmt.Printf("\n%d commodities at or above quantity %d\n", len(rows), *quantity)
}
