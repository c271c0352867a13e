// Package store persists film records in a local SQLite file.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"film-catalog/internal/logger"
	"film-catalog/internal/models"

	"golang.org/x/text/cases"
	_ "modernc.org/sqlite"
)

var ErrClosed = errors.New("store is closed")

const schema = `CREATE TABLE IF NOT EXISTS film (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	director TEXT NOT NULL,
	year TEXT NOT NULL
)`

// Store owns the single connection to the catalog database. Every mutation
// is one autocommitted statement.
type Store struct {
	db     *sql.DB
	path   string
	logger logger.Logger

	mu     sync.Mutex
	closed bool
}

// Open creates the file if needed and ensures the schema. Safe to call on
// every start-up.
func Open(ctx context.Context, path string, log logger.Logger) (*Store, error) {
	// modernc.org/sqlite registers itself as "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=FULL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}

	s := &Store{db: db, path: path, logger: log}
	if err := s.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("Store", "database opened", map[string]interface{}{
		"path": path,
	})
	return s, nil
}

// Initialize ensures the film table exists.
func (s *Store) Initialize(ctx context.Context) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, input models.FilmInput) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return 0, models.ConstraintError{Err: err}
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO film (title, director, year) VALUES (?, ?, ?)`,
		input.Title, input.Director, input.Year)
	if err != nil {
		return 0, fmt.Errorf("insert film: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert film: %w", err)
	}

	s.logger.Debug("Store", "film inserted", map[string]interface{}{"id": id})
	return id, nil
}

func (s *Store) Update(ctx context.Context, id int64, input models.FilmInput) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return models.ConstraintError{Err: err}
	}

	res, err := db.ExecContext(ctx,
		`UPDATE film SET title = ?, director = ?, year = ? WHERE id = ?`,
		input.Title, input.Director, input.Year, id)
	if err != nil {
		return fmt.Errorf("update film %d: %w", id, err)
	}
	if err := expectOneRow(res, id); err != nil {
		return err
	}

	s.logger.Debug("Store", "film updated", map[string]interface{}{"id": id})
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM film WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete film %d: %w", id, err)
	}
	if err := expectOneRow(res, id); err != nil {
		return err
	}

	s.logger.Debug("Store", "film deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *Store) Get(ctx context.Context, id int64) (models.FilmRecord, error) {
	db, err := s.conn()
	if err != nil {
		return models.FilmRecord{}, err
	}

	var r models.FilmRecord
	err = db.QueryRowContext(ctx,
		`SELECT id, title, director, year FROM film WHERE id = ?`, id).
		Scan(&r.ID, &r.Title, &r.Director, &r.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FilmRecord{}, models.NotFoundError{ID: id}
	}
	if err != nil {
		return models.FilmRecord{}, fmt.Errorf("get film %d: %w", id, err)
	}
	return r, nil
}

// ListAll returns every record in id order.
func (s *Store) ListAll(ctx context.Context) ([]models.FilmRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, title, director, year FROM film ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	defer rows.Close()

	var out []models.FilmRecord
	for rows.Next() {
		var r models.FilmRecord
		if err := rows.Scan(&r.ID, &r.Title, &r.Director, &r.Year); err != nil {
			return nil, fmt.Errorf("scan film: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	return out, nil
}

// SearchByTitle matches fragment anywhere in the title, ignoring case.
// SQLite's LOWER only folds ASCII, so matching is done on Unicode case-folded
// strings here instead of in SQL. An empty fragment lists everything.
func (s *Store) SearchByTitle(ctx context.Context, fragment string) ([]models.FilmRecord, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return all, nil
	}

	fold := cases.Fold()
	needle := fold.String(fragment)

	out := make([]models.FilmRecord, 0, len(all))
	for _, r := range all {
		if strings.Contains(fold.String(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM film`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count films: %w", err)
	}
	return n, nil
}

func (s *Store) Path() string {
	return s.path
}

// Close releases the connection. Only the first call does anything.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.logger.Info("Store", "database closed", map[string]interface{}{
		"path": s.path,
	})
	return s.db.Close()
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	return s.db, nil
}

func expectOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("film %d: %w", id, err)
	}
	if n == 0 {
		return models.NotFoundError{ID: id}
	}
	return nil
}
