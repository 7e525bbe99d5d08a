package sqlitestore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mughalk/csc301-a2/domain"
	"github.com/mughalk/csc301-a2/service"
)

const productsSchema = `CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY,
	productname TEXT NOT NULL,
	description TEXT NOT NULL,
	price       REAL NOT NULL,
	quantity    INTEGER NOT NULL)`

// Products implements interfaces.ProductStore on SQLite.
type Products struct {
	db *sql.DB
}

// NewProducts opens (creating if needed) the product database in dir.
//
// Called from cmd/productservice at startup.
func NewProducts(dir string) (*Products, error) {
	db, err := open(dir, "products.db", productsSchema)
	if err != nil {
		return nil, err
	}
	return &Products{db: db}, nil
}

// Create inserts the product. A duplicate id yields entity_conflict.
func (p *Products) Create(ctx context.Context, product domain.Product) error {
	var exists int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM products WHERE id = ?`, product.ID).Scan(&exists)
	if err != nil {
		return service.NewInternalServerError("product lookup failed", err)
	}
	if exists > 0 {
		return service.NewEntityConflictError("Product id already exists", nil)
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO products(id, productname, description, price, quantity) VALUES(?,?,?,?,?)`,
		product.ID, product.ProductName, product.Description, product.Price, product.Quantity)
	if err != nil {
		if isConstraintViolation(err) {
			return service.NewEntityConflictError("Product id already exists", err)
		}
		return service.NewInternalServerError("product insert failed", err)
	}
	return nil
}

// Get returns the product by id, or entity_not_found.
func (p *Products) Get(ctx context.Context, id int) (domain.Product, error) {
	var product domain.Product
	err := p.db.QueryRowContext(ctx,
		`SELECT id, productname, description, price, quantity FROM products WHERE id = ?`, id).
		Scan(&product.ID, &product.ProductName, &product.Description, &product.Price, &product.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, service.NewEntityNotFoundError("Product not found", err)
	}
	if err != nil {
		return domain.Product{}, service.NewInternalServerError("product query failed", err)
	}
	return product, nil
}

// Update applies the set fields of update to the product and returns the new record.
// A missing product yields entity_not_found.
func (p *Products) Update(ctx context.Context, id int, update domain.ProductUpdate) (domain.Product, error) {
	existing, err := p.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if update.ProductName != nil {
		existing.ProductName = *update.ProductName
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.Price != nil {
		existing.Price = *update.Price
	}
	if update.Quantity != nil {
		existing.Quantity = *update.Quantity
	}
	_, err = p.db.ExecContext(ctx,
		`UPDATE products SET productname = ?, description = ?, price = ?, quantity = ? WHERE id = ?`,
		existing.ProductName, existing.Description, existing.Price, existing.Quantity, id)
	if err != nil {
		return domain.Product{}, service.NewInternalServerError("product update failed", err)
	}
	return existing, nil
}

// Delete removes the product only when productname, price and quantity all match the
// stored record. Missing product → entity_not_found; mismatch → field_mismatch.
func (p *Products) Delete(ctx context.Context, id int, productname string, price float64, quantity int) error {
	if _, err := p.Get(ctx, id); err != nil {
		return err
	}
	res, err := p.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = ? AND productname = ? AND price = ? AND quantity = ?`,
		id, productname, price, quantity)
	if err != nil {
		return service.NewInternalServerError("product delete failed", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return service.NewInternalServerError("product delete failed", err)
	}
	if affected == 0 {
		return service.NewFieldMismatchError("Delete failed: fields do not match", nil)
	}
	return nil
}

// Close closes the database.
func (p *Products) Close() error {
	return p.db.Close()
}
