package enginepages

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/markdown"
)

// Store wraps a SQLite database holding the search index over the content
// table and the per-page view counters.
type Store struct {
	db *sql.DB
}

// SearchHit is one row returned by Store.Search.
type SearchHit struct {
	Brand   string
	Engine  string
	Title   string
	Summary string
}

// ViewCount is the number of recorded views for one path.
type ViewCount struct {
	Path  string
	Views int64
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets page-view writes proceed alongside search reads; busy_timeout
	// makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS engines (
    brand TEXT NOT NULL,
    slug TEXT NOT NULL,
    title TEXT NOT NULL,
    summary TEXT NOT NULL,
    body TEXT NOT NULL,
    PRIMARY KEY (brand, slug)
);
CREATE TABLE IF NOT EXISTS page_views (
    path TEXT PRIMARY KEY,
    views INTEGER NOT NULL DEFAULT 0
);
`)
	return err
}

// IndexTable replaces the search index with the pages of tbl.
func (s *Store) IndexTable(ctx context.Context, tbl content.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM engines`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO engines (brand, slug, title, summary, body) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	err = tbl.Each(func(brand, engine string, p content.EnginePageData) error {
		title := p.Title(engine)
		_, err := stmt.ExecContext(ctx, brand, engine, title, markdown.Plain(p.Description()), searchBody(engine, p))
		if err != nil {
			return fmt.Errorf("index %s/%s: %w", brand, engine, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return tx.Commit()
}

// searchBody flattens the searchable copy of a page into one lowercase string.
func searchBody(engine string, p content.EnginePageData) string {
	parts := []string{engine, p.Title(""), p.Hero.Years}
	for _, s := range p.Hero.Intro {
		parts = append(parts, markdown.Plain(s))
	}
	for _, r := range p.TechnicalSpecifications.EngineSpecs {
		parts = append(parts, r.Parameter, r.Value)
	}
	for _, row := range p.CompatibleModels.Rows {
		parts = append(parts, row[content.ColMake], row[content.ColModels])
	}
	for _, iss := range p.CommonReliabilityIssues.Issues {
		parts = append(parts, iss.Title)
	}
	for _, f := range p.FAQs {
		parts = append(parts, f.Question)
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns up to limit pages whose copy contains query. Title matches
// sort first.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	pattern := "%" + likeEscaper.Replace(q) + "%"
	rows, err := s.db.QueryContext(ctx, `
SELECT brand, slug, title, summary FROM engines
WHERE body LIKE ? ESCAPE '\'
ORDER BY (lower(title) LIKE ? ESCAPE '\') DESC, brand, slug
LIMIT ?`, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var h SearchHit
		if err := rows.Scan(&h.Brand, &h.Engine, &h.Title, &h.Summary); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// RecordView increments the view counter for path.
func (s *Store) RecordView(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO page_views (path, views) VALUES (?, 1)
ON CONFLICT(path) DO UPDATE SET views = views + 1`, path)
	return err
}

// TopViews returns the n most viewed paths, most viewed first.
func (s *Store) TopViews(ctx context.Context, n int) ([]ViewCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, views FROM page_views ORDER BY views DESC, path LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ViewCount
	for rows.Next() {
		var v ViewCount
		if err := rows.Scan(&v.Path, &v.Views); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
