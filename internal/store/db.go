package store

import (
	"context"
	"errors"
	"fmt"

	"social-manager/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrStatusConflict is returned when a conditional status transition matched no row.
	ErrStatusConflict = errors.New("campaign status conflict")
	ErrAlreadyExists  = errors.New("already exists")
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	return Store{db: db, logger: logger}, nil
}

// NewFromDB wraps an existing connection pool.
func NewFromDB(db *sqlx.DB, logger *observability.Logger) Store {
	return Store{db: db, logger: logger}
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
