package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"social-manager/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

// SetupTestDB connects to the Postgres instance described by TEST_DB_* and applies the migrations.
// The test is skipped when no database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := setupPostgresDB(t)
	if err != nil {
		t.Skipf("skipping store test, database unavailable: %v", err)
	}

	if err := runMigrations(db); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	tdb := &TestDB{
		db:    db,
		Store: NewFromDB(db, observability.NewLogger()),
	}
	tdb.Truncate(t)
	return tdb
}

// setupPostgresDB creates a PostgreSQL database connection
func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("TEST_DB_USER", "social_user"),
		envOr("TEST_DB_PASSWORD", "social_password"),
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_NAME", "social_db"))

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// runMigrations applies all migration files to the database
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}

	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}

	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{
			"delivery_logs",
			"message_campaigns",
			"social_accounts",
			"business_credentials",
			"business_accounts",
			"social_api_credentials",
		}
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := tdb.db.Exec(query); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
