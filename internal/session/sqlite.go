package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-admin-data/internal/logging"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// defaultKey identifies the single session row the data layer maintains.
const defaultKey = "default"

// SQLiteStore persists the bearer token in a SQLite database so a restarted
// process resumes its session.
type SQLiteStore struct {
	db     *bun.DB
	repo   repository.Repository[*Session]
	logger interfaces.Logger
}

var _ interfaces.TokenStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the session database at path and ensures
// the schema exists. Close releases the underlying handle.
func NewSQLiteStore(ctx context.Context, path string, logger interfaces.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.NoOp()
	}

	dsn := fmt.Sprintf("file:%s?_fk=1", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("session: open sqlite database: %w", err)
	}

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if _, err := db.NewCreateTable().
		Model((*Session)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("session: ensure schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		repo:   NewSessionRepository(db),
		logger: logger,
	}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the stored token, or empty when no session row exists.
func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	record, err := s.repo.GetByIdentifier(ctx, defaultKey)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("session: read token: %w", err)
	}
	return record.Token, nil
}

// Set upserts the session row with the new token.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	existing, err := s.repo.GetByIdentifier(ctx, defaultKey)
	if err != nil {
		if !goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return fmt.Errorf("session: read token: %w", err)
		}
		if _, err := s.repo.Create(ctx, &Session{
			ID:        uuid.New(),
			Key:       defaultKey,
			Token:     token,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}); err != nil {
			return fmt.Errorf("session: persist token: %w", err)
		}
		s.logger.Debug("session.token.stored")
		return nil
	}

	existing.Token = token
	existing.UpdatedAt = time.Now()
	if _, err := s.repo.Update(ctx, existing); err != nil {
		return fmt.Errorf("session: update token: %w", err)
	}
	s.logger.Debug("session.token.rotated")
	return nil
}

// Clear removes the session row. Clearing an absent session succeeds.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	existing, err := s.repo.GetByIdentifier(ctx, defaultKey)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil
		}
		return fmt.Errorf("session: read token: %w", err)
	}
	if err := s.repo.Delete(ctx, &Session{ID: existing.ID}); err != nil {
		return fmt.Errorf("session: clear token: %w", err)
	}
	s.logger.Debug("session.token.cleared")
	return nil
}
