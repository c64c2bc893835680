package transfer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/application/notification"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	inventoryrepo "github.com/muhammadheryan/marketplace/repository/inventory"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	transferrepo "github.com/muhammadheryan/marketplace/repository/transfer"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// TransferApp moves inventory between users. A transfer starts Pending, debiting the
// sender, and ends exactly once as Accepted (recipient credited) or Rejected (sender
// credited back). Each operation runs as one transaction.
type TransferApp interface {
	CreateTransfer(ctx context.Context, actorID uint64, req *model.TransferRequest) (*model.TransferResponse, error)
	AcceptTransfer(ctx context.Context, actorID, transferID uint64) (*model.TransferActionResponse, error)
	RejectTransfer(ctx context.Context, actorID, transferID uint64) (*model.TransferActionResponse, error)
	GetTransfer(ctx context.Context, actorID, transferID uint64) (*model.Transfer, error)
	ListPending(ctx context.Context, actorID, userID uint64) ([]model.Transfer, error)
	ListHistory(ctx context.Context, actorID, userID uint64) ([]model.TransferHistoryView, error)
	ListSent(ctx context.Context, actorID, userID uint64) ([]model.TransferHistoryView, error)
}

type transferAppImpl struct {
	txRepo        txrepo.TxRepository
	transferRepo  transferrepo.TransferRepository
	inventoryRepo inventoryrepo.InventoryRepository
	productRepo   productrepo.ProductRepository
	notifier      notification.Notifier
	now           func() time.Time
}

func NewTransferApp(txRepo txrepo.TxRepository, transferRepo transferrepo.TransferRepository, inventoryRepo inventoryrepo.InventoryRepository, productRepo productrepo.ProductRepository, notifier notification.Notifier) TransferApp {
	return &transferAppImpl{
		txRepo:        txRepo,
		transferRepo:  transferRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		notifier:      notifier,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *transferAppImpl) CreateTransfer(ctx context.Context, actorID uint64, req *model.TransferRequest) (*model.TransferResponse, error) {
	if actorID == 0 {
		return nil, cerr.SetCustomError(constant.ErrUnauthorize)
	}
	if req.FromUserID != actorID {
		return nil, cerr.SetCustomErrorf(constant.ErrForbidden, "you can only transfer your own products")
	}
	if req.ToUserID == req.FromUserID {
		return nil, cerr.SetCustomErrorf(constant.ErrInvalidRequest, "cannot transfer to self")
	}
	if req.ToUserID == 0 {
		return nil, cerr.SetCustomErrorf(constant.ErrInvalidRequest, "recipient is required")
	}
	if len(req.Items) == 0 {
		return nil, cerr.SetCustomErrorf(constant.ErrInvalidRequest, "transfer must contain at least one item")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return nil, s.storageError("[CreateTransfer] begin tx", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// validate every item before touching inventory
	products, err := s.validateItemsTx(ctx, tx, actorID, req.Items)
	if err != nil {
		return nil, err
	}

	now := s.now()
	transferID, err := s.transferRepo.InsertTransferTx(ctx, tx, &model.InsertTransferTxItem{
		FromUserID:   actorID,
		ToUserID:     req.ToUserID,
		TransferDate: now,
		Status:       constant.TransferStatusPending,
		Message:      fmt.Sprintf("Transfer request from %d to %d", actorID, req.ToUserID),
	})
	if err != nil {
		return nil, s.storageError("[CreateTransfer] insert transfer", err)
	}

	for _, item := range req.Items {
		itemID, err := s.transferRepo.InsertTransferItemTx(ctx, tx, &model.InsertTransferItemTx{
			TransferID: transferID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Snapshot:   products[item.ProductID].Snapshot(),
		})
		if err != nil {
			return nil, s.storageError("[CreateTransfer] insert item", err, zap.Uint64("product_id", item.ProductID))
		}

		err = s.transferRepo.InsertTransferHistoryTx(ctx, tx, &model.InsertTransferHistoryTx{
			TransferID:     transferID,
			TransferItemID: itemID,
			ProductID:      item.ProductID,
			FromUserID:     actorID,
			ToUserID:       req.ToUserID,
			TransferDate:   now,
			Status:         constant.TransferStatusPending,
			Message:        fmt.Sprintf("Transfer of %d units from %d to %d", item.Quantity, actorID, req.ToUserID),
		})
		if err != nil {
			return nil, s.storageError("[CreateTransfer] insert history", err, zap.Uint64("product_id", item.ProductID))
		}

		if err := s.inventoryRepo.DebitTx(ctx, tx, actorID, item.ProductID, item.Quantity); err != nil {
			return nil, s.storageError("[CreateTransfer] debit sender", err, zap.Uint64("product_id", item.ProductID))
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, s.storageError("[CreateTransfer] commit tx", err)
	}
	committed = true

	logger.Info("[CreateTransfer] transfer pending",
		zap.Uint64("transfer_id", transferID),
		zap.Uint64("from_user_id", actorID),
		zap.Uint64("to_user_id", req.ToUserID),
		zap.Int("items", len(req.Items)))

	s.notify(ctx, model.TransferNotification{
		Event:       constant.TransferEventCreated,
		TransferID:  transferID,
		FromUserID:  actorID,
		ToUserID:    req.ToUserID,
		RecipientID: req.ToUserID,
		ActorID:     actorID,
		ItemsCount:  len(req.Items),
		OccurredAt:  now,
	})

	return &model.TransferResponse{
		Message:    "Transfer request sent",
		TransferID: transferID,
		ItemsCount: len(req.Items),
	}, nil
}

// validateItemsTx locks the sender's entries and checks the requested quantities,
// summing repeated products so the total never exceeds what the sender holds.
func (s *transferAppImpl) validateItemsTx(ctx context.Context, tx *sqlx.Tx, senderID uint64, items []model.TransferItemRequest) (map[uint64]*model.Product, error) {
	products := make(map[uint64]*model.Product, len(items))
	requested := make(map[uint64]int64, len(items))

	// entries are locked in product order
	ordered := make([]model.TransferItemRequest, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ProductID < ordered[j].ProductID })

	for _, item := range ordered {
		entry, err := s.inventoryRepo.GetEntryTx(ctx, tx, senderID, item.ProductID)
		if err != nil {
			return nil, s.storageError("[CreateTransfer] get inventory entry", err, zap.Uint64("product_id", item.ProductID))
		}
		if entry == nil {
			return nil, cerr.SetCustomErrorf(constant.ErrNotFound, "product %d is not in your inventory", item.ProductID)
		}

		product, ok := products[item.ProductID]
		if !ok {
			product, err = s.productRepo.GetByIDTx(ctx, tx, item.ProductID)
			if err != nil {
				return nil, s.storageError("[CreateTransfer] get product", err, zap.Uint64("product_id", item.ProductID))
			}
			if product == nil {
				return nil, cerr.SetCustomErrorf(constant.ErrNotFound, "product %d", item.ProductID)
			}
			products[item.ProductID] = product
		}

		if item.Quantity <= 0 {
			return nil, cerr.SetCustomErrorf(constant.ErrInvalidRequest, "invalid quantity for product %s. Available: %d", product.Name, entry.CountInStock)
		}
		requested[item.ProductID] += item.Quantity
		if requested[item.ProductID] > entry.CountInStock {
			return nil, cerr.SetCustomErrorf(constant.ErrInsufficientStock, "invalid quantity for product %s. Available: %d", product.Name, entry.CountInStock)
		}
	}
	return products, nil
}

// AcceptTransfer credits the recipient. Only the recipient may accept.
func (s *transferAppImpl) AcceptTransfer(ctx context.Context, actorID, transferID uint64) (*model.TransferActionResponse, error) {
	return s.complete(ctx, "[AcceptTransfer]", actorID, transferID, constant.TransferStatusAccepted)
}

// RejectTransfer returns the stock to the sender. Either party may reject.
func (s *transferAppImpl) RejectTransfer(ctx context.Context, actorID, transferID uint64) (*model.TransferActionResponse, error) {
	return s.complete(ctx, "[RejectTransfer]", actorID, transferID, constant.TransferStatusRejected)
}

func (s *transferAppImpl) complete(ctx context.Context, op string, actorID, transferID uint64, outcome constant.TransferStatus) (*model.TransferActionResponse, error) {
	if actorID == 0 {
		return nil, cerr.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return nil, s.storageError(op+" begin tx", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	t, err := s.transferRepo.GetTransferTx(ctx, tx, transferID)
	if err != nil {
		return nil, s.storageError(op+" get transfer", err, zap.Uint64("transfer_id", transferID))
	}
	if t == nil {
		return nil, cerr.SetCustomErrorf(constant.ErrNotFound, "transfer %d", transferID)
	}

	var creditUserID, counterpartID uint64
	var event constant.TransferEvent
	var verb string
	switch outcome {
	case constant.TransferStatusAccepted:
		if t.ToUserID != actorID {
			return nil, cerr.SetCustomErrorf(constant.ErrForbidden, "not your transfer to accept")
		}
		creditUserID, counterpartID, event, verb = t.ToUserID, t.FromUserID, constant.TransferEventAccepted, "accepted"
	case constant.TransferStatusRejected:
		if t.FromUserID != actorID && t.ToUserID != actorID {
			return nil, cerr.SetCustomErrorf(constant.ErrForbidden, "not your transfer to reject")
		}
		creditUserID, event, verb = t.FromUserID, constant.TransferEventRejected, "rejected"
		counterpartID = t.FromUserID
		if actorID == t.FromUserID {
			counterpartID = t.ToUserID
		}
	default:
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if t.Status != constant.TransferStatusPending {
		return nil, cerr.SetCustomErrorf(constant.ErrAlreadyProcessed, "transfer %d is %s", transferID, t.Status)
	}

	items, err := s.transferRepo.GetTransferItemsTx(ctx, tx, transferID)
	if err != nil {
		return nil, s.storageError(op+" get items", err, zap.Uint64("transfer_id", transferID))
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].SourceProductID < items[j].SourceProductID })
	resolved := make(map[uint64]uint64, len(items))
	for i := range items {
		productID, err := s.resolveProductTx(ctx, tx, op, &items[i], resolved)
		if err != nil {
			return nil, err
		}
		if err := s.inventoryRepo.CreditTx(ctx, tx, creditUserID, productID, items[i].Quantity); err != nil {
			return nil, s.storageError(op+" credit", err, zap.Uint64("transfer_id", transferID), zap.Uint64("product_id", productID))
		}
	}

	message := fmt.Sprintf("Transfer %s by user %d", verb, actorID)
	if err := s.transferRepo.UpdateHistoryStatusTx(ctx, tx, transferID, outcome, message); err != nil {
		return nil, s.storageError(op+" update history", err, zap.Uint64("transfer_id", transferID))
	}

	updated, err := s.transferRepo.UpdateTransferStatusTx(ctx, tx, transferID, outcome, message)
	if err != nil {
		return nil, s.storageError(op+" update status", err, zap.Uint64("transfer_id", transferID))
	}
	if !updated {
		return nil, cerr.SetCustomErrorf(constant.ErrAlreadyProcessed, "transfer %d", transferID)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, s.storageError(op+" commit tx", err, zap.Uint64("transfer_id", transferID))
	}
	committed = true

	logger.Info(op+" transfer "+verb,
		zap.Uint64("transfer_id", transferID),
		zap.Uint64("actor_id", actorID),
		zap.Int("items", len(items)))

	s.notify(ctx, model.TransferNotification{
		Event:       event,
		TransferID:  transferID,
		FromUserID:  t.FromUserID,
		ToUserID:    t.ToUserID,
		RecipientID: counterpartID,
		ActorID:     actorID,
		ItemsCount:  len(items),
		OccurredAt:  s.now(),
	})

	return &model.TransferActionResponse{
		Message:    message,
		TransferID: transferID,
		Status:     outcome,
		ItemsCount: len(items),
	}, nil
}

// resolveProductTx returns the catalog product an item credits. A product removed
// since the transfer was created is replaced by one product recreated from the item
// snapshot; every later credit of the same source product lands on that replacement.
func (s *transferAppImpl) resolveProductTx(ctx context.Context, tx *sqlx.Tx, op string, item *model.TransferItem, resolved map[uint64]uint64) (uint64, error) {
	if productID, ok := resolved[item.SourceProductID]; ok && item.SourceProductID != 0 {
		return productID, nil
	}

	if item.ProductID != nil {
		product, err := s.productRepo.GetByIDTx(ctx, tx, *item.ProductID)
		if err != nil {
			return 0, s.storageError(op+" get product", err, zap.Uint64("product_id", *item.ProductID))
		}
		if product != nil {
			resolved[item.SourceProductID] = product.ID
			return product.ID, nil
		}
	}

	if item.SourceProductID != 0 {
		productID, err := s.productRepo.GetReplacementTx(ctx, tx, item.SourceProductID)
		if err != nil {
			return 0, s.storageError(op+" get replacement", err, zap.Uint64("source_product_id", item.SourceProductID))
		}
		if productID != 0 {
			resolved[item.SourceProductID] = productID
			return productID, nil
		}
	}

	productID, err := s.productRepo.InsertTx(ctx, tx, item.Snapshot())
	if err != nil {
		return 0, s.storageError(op+" recreate product", err, zap.Uint64("transfer_item_id", item.ID))
	}
	if item.SourceProductID != 0 {
		if err := s.productRepo.InsertReplacementTx(ctx, tx, item.SourceProductID, productID); err != nil {
			return 0, s.storageError(op+" record replacement", err, zap.Uint64("source_product_id", item.SourceProductID))
		}
		resolved[item.SourceProductID] = productID
	}
	logger.Warn(op+" product recreated from snapshot",
		zap.Uint64("transfer_item_id", item.ID),
		zap.Uint64("source_product_id", item.SourceProductID),
		zap.Uint64("product_id", productID),
		zap.String("name", item.Name))
	return productID, nil
}

func (s *transferAppImpl) GetTransfer(ctx context.Context, actorID, transferID uint64) (*model.Transfer, error) {
	t, err := s.transferRepo.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, s.storageError("[GetTransfer] get transfer", err, zap.Uint64("transfer_id", transferID))
	}
	if t == nil {
		return nil, cerr.SetCustomErrorf(constant.ErrNotFound, "transfer %d", transferID)
	}
	if t.FromUserID != actorID && t.ToUserID != actorID {
		return nil, cerr.SetCustomErrorf(constant.ErrForbidden, "you can only view your own transfers")
	}
	return t, nil
}

func (s *transferAppImpl) ListPending(ctx context.Context, actorID, userID uint64) ([]model.Transfer, error) {
	if actorID != userID {
		return nil, cerr.SetCustomErrorf(constant.ErrForbidden, "you can only view your own transfers")
	}
	transfers, err := s.transferRepo.ListPending(ctx, userID)
	if err != nil {
		return nil, s.storageError("[ListPending] list", err, zap.Uint64("user_id", userID))
	}
	return transfers, nil
}

func (s *transferAppImpl) ListHistory(ctx context.Context, actorID, userID uint64) ([]model.TransferHistoryView, error) {
	if actorID != userID {
		return nil, cerr.SetCustomErrorf(constant.ErrForbidden, "you can only view your own transfers")
	}
	rows, err := s.transferRepo.ListHistory(ctx, userID)
	if err != nil {
		return nil, s.storageError("[ListHistory] list", err, zap.Uint64("user_id", userID))
	}
	return rows, nil
}

func (s *transferAppImpl) ListSent(ctx context.Context, actorID, userID uint64) ([]model.TransferHistoryView, error) {
	if actorID != userID {
		return nil, cerr.SetCustomErrorf(constant.ErrForbidden, "you can only view your own sent transfers")
	}
	rows, err := s.transferRepo.ListSent(ctx, userID)
	if err != nil {
		return nil, s.storageError("[ListSent] list", err, zap.Uint64("user_id", userID))
	}
	return rows, nil
}

// notify hands the event to the dispatcher. Delivery is best effort and never fails the operation.
func (s *transferAppImpl) notify(ctx context.Context, msg model.TransferNotification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyTransfer(ctx, msg); err != nil {
		logger.Warn("[Notify] dispatch transfer notification",
			zap.Uint64("transfer_id", msg.TransferID),
			zap.String("event", string(msg.Event)),
			zap.String("error", err.Error()))
	}
}

// storageError logs unexpected failures and converts them; business errors raised
// by repositories pass through unchanged.
func (s *transferAppImpl) storageError(op string, err error, fields ...zap.Field) error {
	ce := cerr.FromStorage(err)
	switch ce.Type() {
	case constant.ErrInternal, constant.ErrUnavailable:
		logger.Error(op, append(fields, zap.String("error", err.Error()))...)
	}
	return ce
}
