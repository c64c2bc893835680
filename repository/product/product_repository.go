package product

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/db"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.Product, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Product, error)
	Create(ctx context.Context, snapshot model.ProductSnapshot) (uint64, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, snapshot model.ProductSnapshot) (uint64, error)
	GetReplacementTx(ctx context.Context, tx *sqlx.Tx, sourceID uint64) (uint64, error)
	InsertReplacementTx(ctx context.Context, tx *sqlx.Tx, sourceID, productID uint64) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = `id, name, description, image_url, price, office, created_at`

	listProductsQuery  = `SELECT ` + productColumns + ` FROM product ORDER BY id LIMIT ? OFFSET ?`
	countProductsQuery = `SELECT COUNT(*) FROM product`
	getProductQuery    = `SELECT ` + productColumns + ` FROM product WHERE id = ?`
	insertProductQuery = `INSERT INTO product (name, description, image_url, price, office, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	deleteProductQuery = `DELETE FROM product WHERE id = ?`

	getReplacementQuery    = `SELECT product_id FROM product_replacement WHERE source_product_id = ?`
	insertReplacementQuery = `INSERT INTO product_replacement (source_product_id, product_id) VALUES (?, ?)`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.Product, int64, error) {
	offset := (page - 1) * perPage

	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, listProductsQuery, perPage, offset); err != nil {
		return nil, 0, err
	}

	// get total count
	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := s.conn.GetContext(ctx, &p, getProductQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByIDTx takes a shared lock on the product row so it cannot be deleted while a
// transfer snapshots or credits it. Other transfers may read it concurrently.
func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Product, error) {
	var p model.Product
	if err := tx.GetContext(ctx, &p, getProductQuery+db.ForShare(tx), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) Create(ctx context.Context, snapshot model.ProductSnapshot) (uint64, error) {
	return insertProduct(ctx, s.conn, snapshot)
}

// InsertTx recreates a catalog product from a transfer item snapshot.
func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, snapshot model.ProductSnapshot) (uint64, error) {
	return insertProduct(ctx, tx, snapshot)
}

// GetReplacementTx returns the product recreated for a deleted source product, or 0.
// The mapping row is locked so two credits of the same source agree on one product.
// It is removed together with the replacement product.
func (s *SQL) GetReplacementTx(ctx context.Context, tx *sqlx.Tx, sourceID uint64) (uint64, error) {
	var productID uint64
	if err := tx.GetContext(ctx, &productID, getReplacementQuery+db.ForUpdate(tx), sourceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return productID, nil
}

func (s *SQL) InsertReplacementTx(ctx context.Context, tx *sqlx.Tx, sourceID, productID uint64) error {
	_, err := tx.ExecContext(ctx, insertReplacementQuery, sourceID, productID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func insertProduct(ctx context.Context, ex sqlx.ExecerContext, snapshot model.ProductSnapshot) (uint64, error) {
	res, err := ex.ExecContext(ctx, insertProductQuery,
		snapshot.Name, snapshot.Description, snapshot.ImageURL, snapshot.Price, snapshot.Office, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
