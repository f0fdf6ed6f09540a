// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sample catalog used to generate realistic-looking rows. Commodity names
// repeat across partners so the summary report aggregates something.
var (
	partnerNames = []string{
		"Harbor Metals Ltd", "Northfield Grain Co", "Baltic Freight Partners",
		"Crescent Chemical Supply", "Pacific Timber Exchange", "Ironline Logistics",
		"Delta Agro Trading", "Summit Ore Holdings",
	}

	commodityNames = []string{
		"Copper Wire", "Rolled Steel", "Soybean Meal", "Crude Palm Oil",
		"Aluminium Ingot", "Wheat Bran", "Pine Lumber", "Zinc Concentrate",
		"Nickel Cathode", "Raw Cotton", "Ammonium Nitrate", "Iron Pellets",
	}

	usernames = []string{"seed_bot", "warehouse_clerk", "dock_supervisor"}
)

type seededCatalog struct {
	partnerIDs   []int64
	commodityIDs []int64
	userIDs      map[string]int64
}

func main() {
	var (
		movements = flag.Int("movements", 500, "Number of movements to generate")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "Random seed, fix it for reproducible data")
		truncate  = flag.Bool("truncate", false, "Truncate all tables before seeding")
		dryRun    = flag.Bool("dry-run", false, "Preview what would be seeded without writing")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	if *movements < 0 {
		logger.Error("movement count must not be negative", slog.Int("movements", *movements))
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))

	if *dryRun {
		fmt.Printf("[DRY RUN] Would seed %d partners, %d commodities, %d users, %d movements (seed %d)\n",
			len(partnerNames), len(commodityNames), len(usernames), *movements, *seed)
		return
	}

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "tradestock"),
		getEnv("DB_PASSWORD", "tradestock_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "tradestock_inventory"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Error("database unreachable", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *truncate {
		if err := truncateTables(ctx, pool); err != nil {
			logger.Error("failed to truncate tables", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("truncated all tables")
	}

	catalog, err := seedCatalog(ctx, pool, logger)
	if err != nil {
		logger.Error("failed to seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created, err := seedMovements(ctx, pool, logger, rng, catalog, *movements)
	if err != nil {
		logger.Error("failed to seed movements", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Trade partners: %d\n", len(catalog.partnerIDs))
	fmt.Printf("Commodities:    %d\n", len(catalog.commodityIDs))
	fmt.Printf("Users:          %d\n", len(catalog.userIDs))
	fmt.Printf("Movements:      %d (with matching audit entries)\n", created)
	fmt.Printf("Random seed:    %d\n", *seed)

	logger.Info("seed operation completed",
		slog.Int("movements_created", created),
		slog.Int64("seed", *seed))
}

func truncateTables(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx,
		`TRUNCATE inventory_history, movements, commodities, trade_partners, users RESTART IDENTITY CASCADE`)
	return err
}

// seedCatalog inserts partners, commodities and users one by one since the
// row counts are small and every ID is needed for the movement batch.
func seedCatalog(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) (*seededCatalog, error) {
	catalog := &seededCatalog{userIDs: make(map[string]int64)}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, name := range partnerNames {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO trade_partners (name, address) VALUES ($1, $2) RETURNING id`,
			name, fmt.Sprintf("%d Dockside Avenue", 100+i*7),
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert trade partner %q: %w", name, err)
		}
		catalog.partnerIDs = append(catalog.partnerIDs, id)
	}

	for i, name := range commodityNames {
		partnerID := catalog.partnerIDs[i%len(catalog.partnerIDs)]
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO commodities (name, description, trade_partner_id) VALUES ($1, $2, $3) RETURNING id`,
			name, fmt.Sprintf("Bulk %s, standard grade", strings.ToLower(name)), partnerID,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert commodity %q: %w", name, err)
		}
		catalog.commodityIDs = append(catalog.commodityIDs, id)
	}

	for _, username := range usernames {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO users (username) VALUES ($1)
			 ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
			 RETURNING id`,
			username,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert user %q: %w", username, err)
		}
		catalog.userIDs[username] = id
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit catalog: %w", err)
	}

	logger.Info("seeded catalog",
		slog.Int("partners", len(catalog.partnerIDs)),
		slog.Int("commodities", len(catalog.commodityIDs)),
		slog.Int("users", len(catalog.userIDs)))
	return catalog, nil
}

// seedMovements writes movements in one batch, then their audit entries in a
// second batch, inside a single transaction. Every movement gets exactly one
// 'add' history row, same as a create through the API would.
func seedMovements(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, rng *rand.Rand, catalog *seededCatalog, count int) (int, error) {
	if count == 0 {
		return 0, nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	type pendingMovement struct {
		movementType string
		quantity     int64
		username     string
		userID       int64
	}

	batch := &pgx.Batch{}
	pending := make([]pendingMovement, 0, count)

	for i := 0; i < count; i++ {
		movementType := "receiving"
		if rng.Intn(2) == 0 {
			movementType = "shipping"
		}
		quantity := int64(rng.Intn(250))
		commodityID := catalog.commodityIDs[rng.Intn(len(catalog.commodityIDs))]

		// Roughly one in five movements has no partner on record.
		var partnerID *int64
		if rng.Intn(5) != 0 {
			partnerID = &catalog.partnerIDs[rng.Intn(len(catalog.partnerIDs))]
		}

		username := usernames[rng.Intn(len(usernames))]

		batch.Queue(
			`INSERT INTO movements (type, quantity, commodity_id, trade_partner_id)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			movementType, quantity, commodityID, partnerID,
		)
		pending = append(pending, pendingMovement{
			movementType: movementType,
			quantity:     quantity,
			username:     username,
			userID:       catalog.userIDs[username],
		})
	}

	br := tx.SendBatch(ctx, batch)
	movementIDs := make([]int64, 0, count)
	for range pending {
		var id int64
		if err := br.QueryRow().Scan(&id); err != nil {
			br.Close()
			return 0, fmt.Errorf("failed to insert movement: %w", err)
		}
		movementIDs = append(movementIDs, id)
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close movement batch: %w", err)
	}

	historyBatch := &pgx.Batch{}
	for i, p := range pending {
		detail := fmt.Sprintf("inventory (#%d) adjusted by %s (#%d)", movementIDs[i], p.username, p.userID)
		historyBatch.Queue(
			`INSERT INTO inventory_history (action, detail, type, quantity, movement_id, user_id)
			 VALUES ('add', $1, $2, $3, $4, $5)`,
			detail, p.movementType, p.quantity, movementIDs[i], p.userID,
		)
	}

	hbr := tx.SendBatch(ctx, historyBatch)
	for range pending {
		if _, err := hbr.Exec(); err != nil {
			hbr.Close()
			return 0, fmt.Errorf("failed to insert audit entry: %w", err)
		}
	}
	if err := hbr.Close(); err != nil {
		return 0, fmt.Errorf("failed to close history batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit movements: %w", err)
	}

	logger.Info("seeded movements", slog.Int("count", len(movementIDs)))
	return len(movementIDs), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
