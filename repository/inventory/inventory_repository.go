package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/db"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
)

type InventoryRepository interface {
	Get(ctx context.Context, userID, productID uint64) (*model.InventoryEntry, error)
	GetEntryTx(ctx context.Context, tx *sqlx.Tx, userID, productID uint64) (*model.InventoryEntry, error)
	DebitTx(ctx context.Context, tx *sqlx.Tx, userID, productID uint64, quantity int64) error
	CreditTx(ctx context.Context, tx *sqlx.Tx, userID, productID uint64, quantity int64) error
	ListByUser(ctx context.Context, userID uint64) ([]model.UserProduct, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	getEntryQuery    = `SELECT id, user_id, product_id, count_in_stock FROM inventory_entry WHERE user_id = ? AND product_id = ?`
	updateCountQuery = `UPDATE inventory_entry SET count_in_stock = ? WHERE id = ?`
	deleteEntryQuery = `DELETE FROM inventory_entry WHERE id = ?`

	listByUserQuery = `SELECT ie.id, ie.user_id, ie.product_id, ie.count_in_stock, p.name, p.description, p.image_url, p.price, p.office
FROM inventory_entry ie
JOIN product p ON p.id = ie.product_id
WHERE ie.user_id = ?
ORDER BY p.name, ie.id`
)

var creditQuery = map[string]string{
	constant.DriverMySQL: `INSERT INTO inventory_entry (user_id, product_id, count_in_stock) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE count_in_stock = count_in_stock + VALUES(count_in_stock)`,
	constant.DriverSQLite: `INSERT INTO inventory_entry (user_id, product_id, count_in_stock) VALUES (?, ?, ?)
ON CONFLICT (user_id, product_id) DO UPDATE SET count_in_stock = count_in_stock + excluded.count_in_stock`,
}

func (r *SQL) Get(ctx context.Context, userID, productID uint64) (*model.InventoryEntry, error) {
	var entry model.InventoryEntry
	if err := r.conn.GetContext(ctx, &entry, getEntryQuery, userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// GetEntryTx reads and locks the entry for the rest of the transaction.
func (r *SQL) GetEntryTx(ctx context.Context, tx *sqlx.Tx, userID, productID uint64) (*model.InventoryEntry, error) {
	var entry model.InventoryEntry
	if err := tx.GetContext(ctx, &entry, getEntryQuery+db.ForUpdate(tx), userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// DebitTx removes quantity units from the entry, deleting the row when it reaches zero.
// A missing entry holds nothing, so any debit of it is insufficient stock.
func (r *SQL) DebitTx(ctx context.Context, tx *sqlx.Tx, userID, productID uint64, quantity int64) error {
	entry, err := r.GetEntryTx(ctx, tx, userID, productID)
	if err != nil {
		return err
	}
	if entry == nil {
		return cerr.SetCustomErrorf(constant.ErrInsufficientStock, "product %d, requested %d, available 0", productID, quantity)
	}
	if quantity <= 0 {
		return cerr.SetCustomErrorf(constant.ErrInvalidRequest, "quantity must be positive, got %d", quantity)
	}
	if quantity > entry.CountInStock {
		return cerr.SetCustomErrorf(constant.ErrInsufficientStock, "product %d, requested %d, available %d", productID, quantity, entry.CountInStock)
	}

	remaining := entry.CountInStock - quantity
	if remaining == 0 {
		_, err = tx.ExecContext(ctx, deleteEntryQuery, entry.ID)
		return err
	}
	_, err = tx.ExecContext(ctx, updateCountQuery, remaining, entry.ID)
	return err
}

// CreditTx adds quantity units, creating the entry on first acquisition.
func (r *SQL) CreditTx(ctx context.Context, tx *sqlx.Tx, userID, productID uint64, quantity int64) error {
	if quantity <= 0 {
		return cerr.SetCustomErrorf(constant.ErrInvalidRequest, "quantity must be positive, got %d", quantity)
	}
	q, ok := creditQuery[tx.DriverName()]
	if !ok {
		q = creditQuery[constant.DriverMySQL]
	}
	_, err := tx.ExecContext(ctx, q, userID, productID, quantity)
	return err
}

func (r *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.UserProduct, error) {
	items := make([]model.UserProduct, 0)
	if err := r.conn.SelectContext(ctx, &items, listByUserQuery, userID); err != nil {
		return nil, err
	}
	return items, nil
}
