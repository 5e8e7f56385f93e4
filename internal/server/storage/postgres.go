package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/server/storage/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresStore keeps each collection as a single jsonb row in the
// collections table, upserted whole on every save. Row-oriented storage is
// deliberately not used: the persistence contract is a full-document
// overwrite per collection.
type PostgresStore struct {
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.runMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return s, nil
}

func (s *PostgresStore) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, s.db, ".")
}

func (s *PostgresStore) Load(ctx context.Context, collection string) ([]byte, error) {
	query := `SELECT data FROM collections WHERE name = $1`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, collection).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return data, nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, data []byte) error {
	query := `INSERT INTO collections (name, data, updated_at)
	          VALUES ($1, $2, now())
	          ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, collection, data); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
