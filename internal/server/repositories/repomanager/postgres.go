package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/docport/internal/server/repositories/documents"
	"github.com/dmitrijs2005/docport/internal/server/repositories/users"
)

const pingTimeout = 8 * time.Second

// PoolOptions bound the shared connection pool. Acquiring a connection
// blocks the request until one is available.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type PostgresRepositoryManager struct {
	db        *sql.DB
	users     users.Repository
	documents documents.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Documents() documents.Repository {
	return m.documents
}

// Close releases the connection pool. Must run on every shutdown path.
func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// NewManager builds a manager around an existing pool. Used directly in
// tests; production code goes through NewPostgresRepositoryManager.
func NewManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		db:        db,
		users:     users.NewPostgresRepository(db),
		documents: documents.NewPostgresRepository(db),
	}
}

// NewPostgresRepositoryManager opens the pgx pool, applies pool limits, and
// fails fast if the database is unreachable.
func NewPostgresRepositoryManager(ctx context.Context, dsn string, opts PoolOptions) (*PostgresRepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return NewManager(db), nil
}
