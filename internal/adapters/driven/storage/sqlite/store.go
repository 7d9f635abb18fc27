package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
)

// Ensure Store implements the catalog interfaces.
var (
	_ driven.CatalogProvider = (*Store)(nil)
	_ driven.CatalogWriter   = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	provider    TEXT NOT NULL,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	brand       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	url         TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT '',
	price       INTEGER NOT NULL DEFAULT 0,
	old_price   INTEGER NOT NULL DEFAULT 0,
	in_stock    INTEGER NOT NULL DEFAULT 0,
	tags        TEXT NOT NULL DEFAULT '[]',
	updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_provider ON products(provider);
`

// Store is a SQLite-backed product catalog snapshot.
type Store struct {
	db   *sql.DB
	name string
	path string
}

// NewStore creates a catalog store at the specified data directory.
// If dataDir is empty, defaults to ~/.varesearch/data/catalog.db.
// The name identifies this store when used as a catalog provider.
func NewStore(dataDir, name string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".varesearch", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// WAL mode for concurrent readers during sync.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, name: name, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name returns the provider identifier.
func (s *Store) Name() string { return s.name }

// SaveProducts upserts a batch of feed products. Rows without an ID
// get one assigned so later syncs of the same feed row replace it
// only when the feed carries stable IDs.
func (s *Store) SaveProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products
			(id, provider, name, category, brand, description, url, image_url,
			 price, old_price, in_stock, tags, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			provider = excluded.provider,
			name = excluded.name,
			category = excluded.category,
			brand = excluded.brand,
			description = excluded.description,
			url = excluded.url,
			image_url = excluded.image_url,
			price = excluded.price,
			old_price = excluded.old_price,
			in_stock = excluded.in_stock,
			tags = excluded.tags,
			updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags for %s: %w", p.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Provider, p.Name, p.Category, p.Brand, p.Description,
			p.URL, p.ImageURL, p.Price, p.OldPrice, boolToInt(p.InStock),
			string(tags), now,
		); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// DeleteProvider removes every product of one feed provider,
// used before a full re-sync.
func (s *Store) DeleteProvider(ctx context.Context, provider string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE provider = ?`, provider); err != nil {
		return fmt.Errorf("delete provider %s: %w", provider, err)
	}
	return nil
}

// Count returns the number of stored products.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// FetchProducts returns the skip/limit window of products whose name,
// category or description contains any query word. This is a broad
// pre-filter only; ranking happens in the engine after the merge.
func (s *Store) FetchProducts(ctx context.Context, query string, skip, limit int) ([]domain.Product, error) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return []domain.Product{}, nil
	}

	var clauses []string
	var args []any
	for _, word := range words {
		pattern := "%" + word + "%"
		clauses = append(clauses,
			"(LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	args = append(args, limit, skip)

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, provider, name, category, brand, description, url, image_url,
		       price, old_price, in_stock, tags
		FROM products
		WHERE %s
		ORDER BY id
		LIMIT ? OFFSET ?`, strings.Join(clauses, " OR ")), args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var inStock int
		var tags string
		if err := rows.Scan(&p.ID, &p.Provider, &p.Name, &p.Category, &p.Brand,
			&p.Description, &p.URL, &p.ImageURL, &p.Price, &p.OldPrice,
			&inStock, &tags); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.InStock = inStock != 0
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags for %s: %w", p.ID, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
