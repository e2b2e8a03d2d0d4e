package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/pkg/dberrors"
)

const (
	snapshotTable = "user_snapshots"
	// snapshotRowID is the fixed key of the single snapshot row
	snapshotRowID = 1
)

// PostgresStore keeps the snapshot as one jsonb row in user_snapshots.
// The table is created by the migrations in internal/db.
type PostgresStore struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// NewPostgresStore creates a store on an existing pool. The store owns the pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Name implements Store
func (s *PostgresStore) Name() string {
	return "postgres"
}

func (s *PostgresStore) loadQuery() (string, []interface{}, error) {
	return s.sb.Select("document").
		From(snapshotTable).
		Where(squirrel.Eq{"id": snapshotRowID}).
		Limit(1).
		ToSql()
}

func (s *PostgresStore) saveQuery(document []byte, userCount int) (string, []interface{}, error) {
	return s.sb.Insert(snapshotTable).
		Columns("id", "document", "user_count", "updated_at").
		Values(snapshotRowID, document, userCount, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			document = EXCLUDED.document,
			user_count = EXCLUDED.user_count,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
}

// Load implements Store. A missing row or table reads as an empty snapshot.
func (s *PostgresStore) Load(ctx context.Context) ([]*models.User, error) {
	sql, args, err := s.loadQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot query: %w", err)
	}

	var document []byte
	err = s.pool.QueryRow(ctx, sql, args...).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) || dberrors.IsUndefinedTable(err) {
		return []*models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot row: %w", err)
	}

	users, err := decodeUsers(document)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot row: %w", err)
	}
	return users, nil
}

// Save implements Store
func (s *PostgresStore) Save(ctx context.Context, users []*models.User) error {
	document, err := encodeUsers(users)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	sql, args, err := s.saveQuery(document, len(users))
	if err != nil {
		return fmt.Errorf("failed to build snapshot upsert: %w", err)
	}
	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to write snapshot row: %w", err)
	}
	return nil
}

// Close implements Store
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
