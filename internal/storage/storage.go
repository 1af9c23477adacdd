package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/config"
)

// Storage owns the connection pool. Reads run directly against the pool,
// writes run inside a transaction obtained from Write.
type Storage struct {
	DB     *sql.DB
	db     bob.DB
	reader *Reader
}

// NewStorage opens a pool with the configured driver ("postgres" for lib/pq,
// "pgx" for pgx's database/sql adapter) and verifies it is reachable.
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	sqlDB, err := sql.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return NewStorageFromDB(sqlDB), nil
}

func NewStorageFromDB(sqlDB *sql.DB) *Storage {
	db := bob.NewDB(sqlDB)
	return &Storage{
		DB:     sqlDB,
		db:     db,
		reader: NewReader(db),
	}
}

func (s *Storage) Read() *Reader {
	return s.reader
}

// Write begins a transaction. The caller must Commit or Rollback the writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
