package transfer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/db"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TransferRepository interface {
	InsertTransferTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertTransferTxItem) (uint64, error)
	InsertTransferItemTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertTransferItemTx) (uint64, error)
	InsertTransferHistoryTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertTransferHistoryTx) error
	GetTransferTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) (*model.Transfer, error)
	GetTransferItemsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) ([]model.TransferItem, error)
	UpdateTransferStatusTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, status constant.TransferStatus, message string) (bool, error)
	UpdateHistoryStatusTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, status constant.TransferStatus, message string) error
	GetTransfer(ctx context.Context, transferID uint64) (*model.Transfer, error)
	ListPending(ctx context.Context, userID uint64) ([]model.Transfer, error)
	ListHistory(ctx context.Context, userID uint64) ([]model.TransferHistoryView, error)
	ListSent(ctx context.Context, userID uint64) ([]model.TransferHistoryView, error)
}

func NewTransferRepository(conn *sqlx.DB) TransferRepository {
	return &SQL{conn: conn}
}

const (
	transferColumns = `id, from_user_id, to_user_id, transfer_date, status, message`
	itemColumns     = `id, transfer_id, product_id, source_product_id, quantity, name, description, image_url, price, office`

	insertTransferQuery = `INSERT INTO transfer (from_user_id, to_user_id, transfer_date, status, message) VALUES (?, ?, ?, ?, ?)`
	insertItemQuery     = `INSERT INTO transfer_item (transfer_id, product_id, source_product_id, quantity, name, description, image_url, price, office) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertHistoryQuery  = `INSERT INTO transfer_history (transfer_id, transfer_item_id, product_id, from_user_id, to_user_id, transfer_date, status, message) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	getTransferQuery = `SELECT ` + transferColumns + ` FROM transfer WHERE id = ?`
	getItemsQuery    = `SELECT ` + itemColumns + ` FROM transfer_item WHERE transfer_id = ? ORDER BY id`
	itemsInQuery     = `SELECT ` + itemColumns + ` FROM transfer_item WHERE transfer_id IN (?) ORDER BY transfer_id, id`

	updateTransferStatusQuery = `UPDATE transfer SET status = ?, message = ? WHERE id = ? AND status = ?`
	updateHistoryStatusQuery  = `UPDATE transfer_history SET status = ?, message = ? WHERE transfer_id = ? AND status = ?`

	listPendingQuery = `SELECT ` + transferColumns + ` FROM transfer
WHERE (from_user_id = ? OR to_user_id = ?) AND status = ?
ORDER BY transfer_date DESC, id DESC`

	historyViewBase = `SELECT th.id, th.transfer_id, th.transfer_item_id, th.product_id, th.from_user_id, th.to_user_id,
th.transfer_date, th.status, th.message, ti.quantity, ti.name AS product_name, ti.price, ti.office
FROM transfer_history th
JOIN transfer_item ti ON ti.id = th.transfer_item_id`

	listHistoryQuery = historyViewBase + ` WHERE th.from_user_id = ? OR th.to_user_id = ? ORDER BY th.transfer_date DESC, th.id DESC`
	listSentQuery    = historyViewBase + ` WHERE th.from_user_id = ? ORDER BY th.transfer_date DESC, th.id DESC`
)

func (r *SQL) InsertTransferTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertTransferTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertTransferQuery, req.FromUserID, req.ToUserID, req.TransferDate, req.Status, req.Message)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertTransferItemTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertTransferItemTx) (uint64, error) {
	s := req.Snapshot
	res, err := tx.ExecContext(ctx, insertItemQuery, req.TransferID, req.ProductID, req.ProductID, req.Quantity,
		s.Name, s.Description, s.ImageURL, s.Price, s.Office)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertTransferHistoryTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertTransferHistoryTx) error {
	_, err := tx.ExecContext(ctx, insertHistoryQuery, req.TransferID, req.TransferItemID, req.ProductID,
		req.FromUserID, req.ToUserID, req.TransferDate, req.Status, req.Message)
	return err
}

// GetTransferTx locks the transfer row so the pending check and the status write cannot interleave.
func (r *SQL) GetTransferTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) (*model.Transfer, error) {
	var t model.Transfer
	if err := tx.GetContext(ctx, &t, getTransferQuery+db.ForUpdate(tx), transferID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQL) GetTransferItemsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) ([]model.TransferItem, error) {
	items := make([]model.TransferItem, 0)
	if err := tx.SelectContext(ctx, &items, getItemsQuery, transferID); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateTransferStatusTx only moves a pending transfer; false means it was already processed.
func (r *SQL) UpdateTransferStatusTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, status constant.TransferStatus, message string) (bool, error) {
	res, err := tx.ExecContext(ctx, updateTransferStatusQuery, status, message, transferID, constant.TransferStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *SQL) UpdateHistoryStatusTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, status constant.TransferStatus, message string) error {
	_, err := tx.ExecContext(ctx, updateHistoryStatusQuery, status, message, transferID, constant.TransferStatusPending)
	return err
}

func (r *SQL) GetTransfer(ctx context.Context, transferID uint64) (*model.Transfer, error) {
	var t model.Transfer
	if err := r.conn.GetContext(ctx, &t, getTransferQuery, transferID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	transfers := []model.Transfer{t}
	if err := r.attachItems(ctx, transfers); err != nil {
		return nil, err
	}
	return &transfers[0], nil
}

func (r *SQL) ListPending(ctx context.Context, userID uint64) ([]model.Transfer, error) {
	transfers := make([]model.Transfer, 0)
	if err := r.conn.SelectContext(ctx, &transfers, listPendingQuery, userID, userID, constant.TransferStatusPending); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, transfers); err != nil {
		return nil, err
	}
	return transfers, nil
}

func (r *SQL) ListHistory(ctx context.Context, userID uint64) ([]model.TransferHistoryView, error) {
	rows := make([]model.TransferHistoryView, 0)
	if err := r.conn.SelectContext(ctx, &rows, listHistoryQuery, userID, userID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQL) ListSent(ctx context.Context, userID uint64) ([]model.TransferHistoryView, error) {
	rows := make([]model.TransferHistoryView, 0)
	if err := r.conn.SelectContext(ctx, &rows, listSentQuery, userID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQL) attachItems(ctx context.Context, transfers []model.Transfer) error {
	if len(transfers) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(transfers))
	for _, t := range transfers {
		ids = append(ids, t.ID)
	}

	q, args, err := sqlx.In(itemsInQuery, ids)
	if err != nil {
		return err
	}
	items := make([]model.TransferItem, 0)
	if err := r.conn.SelectContext(ctx, &items, r.conn.Rebind(q), args...); err != nil {
		return err
	}

	byTransfer := make(map[uint64][]model.TransferItem, len(transfers))
	for _, it := range items {
		byTransfer[it.TransferID] = append(byTransfer[it.TransferID], it)
	}
	for i := range transfers {
		transfers[i].Items = byTransfer[transfers[i].ID]
		if transfers[i].Items == nil {
			transfers[i].Items = []model.TransferItem{}
		}
	}
	return nil
}
