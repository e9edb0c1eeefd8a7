// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/pricewise/internal/models"
	"github.com/mmynk/pricewise/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const memoryPath = ":memory:"

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
// ":memory:" opens a private in-memory database.
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != memoryPath {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == memoryPath {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateProduct persists a new product and its roles.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO products (id, name, price, discount, commission, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		product.ID, product.Name, product.Price, product.Discount, product.Commission, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if err := insertRoles(ctx, tx, product); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetProduct retrieves a product by ID, including its roles in order.
func (s *SQLiteStore) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	product := &models.Product{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, price, discount, commission, created_at FROM products WHERE id = ?",
		productID,
	).Scan(&product.ID, &product.Name, &product.Price, &product.Discount, &product.Commission, &product.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	roles, err := s.getRoles(ctx, productID)
	if err != nil {
		return nil, err
	}
	product.Roles = roles
	return product, nil
}

// ListProducts returns every product in insertion order.
func (s *SQLiteStore) ListProducts(ctx context.Context) ([]*models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, discount, commission, created_at FROM products ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Discount, &p.Commission, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	rows.Close()

	for _, p := range products {
		roles, err := s.getRoles(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Roles = roles
	}
	return products, nil
}

// UpdateProduct rewrites the product row and replaces all of its roles.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE products SET name = ?, price = ?, discount = ?, commission = ? WHERE id = ?",
		product.Name, product.Price, product.Discount, product.Commission, product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	} else if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, product.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM roles WHERE product_id = ?", product.ID); err != nil {
		return fmt.Errorf("failed to clear roles: %w", err)
	}
	if err := insertRoles(ctx, tx, product); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteProduct removes a product; its roles cascade.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, productID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, productID)
	}
	return nil
}

func insertRoles(ctx context.Context, tx *sql.Tx, product *models.Product) error {
	for i, role := range product.Roles {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO roles (product_id, role_id, name, percent, position) VALUES (?, ?, ?, ?, ?)",
			product.ID, role.ID, role.Name, role.Percent, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert role: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) getRoles(ctx context.Context, productID string) ([]models.Role, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT role_id, name, percent FROM roles WHERE product_id = ? ORDER BY position",
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.ID, &r.Name, &r.Percent); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roles: %w", err)
	}
	return roles, nil
}
