package product

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	inventoryrepo "github.com/muhammadheryan/marketplace/repository/inventory"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	ListUserProducts(ctx context.Context, actorID, userID uint64) ([]model.UserProduct, error)
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
	ProvisionStock(ctx context.Context, req *model.ProvisionRequest) (*model.InventoryEntry, error)
}

type productAppImpl struct {
	txRepo        txrepo.TxRepository
	productRepo   productrepo.ProductRepository
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewProductApp(txRepo txrepo.TxRepository, productRepo productrepo.ProductRepository, inventoryRepo inventoryrepo.InventoryRepository) ProductApp {
	return &productAppImpl{txRepo: txRepo, productRepo: productRepo, inventoryRepo: inventoryRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = constant.DefaultPage
	}
	if perPage <= 0 {
		perPage = constant.DefaultPerPage
	}
	if perPage > constant.MaxPerPage {
		perPage = constant.MaxPerPage
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}
	if result == nil {
		return nil, cerr.SetCustomErrorf(constant.ErrNotFound, "product %d", id)
	}

	return result, nil
}

// ListUserProducts lists what a user holds. Users only see their own inventory.
func (s *productAppImpl) ListUserProducts(ctx context.Context, actorID, userID uint64) ([]model.UserProduct, error) {
	if actorID != userID {
		return nil, cerr.SetCustomErrorf(constant.ErrForbidden, "you can only view your own products")
	}

	items, err := s.inventoryRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListUserProducts] error inventoryRepo.ListByUser", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}
	return items, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if req.Price.IsNegative() {
		return nil, cerr.SetCustomErrorf(constant.ErrInvalidRequest, "price must not be negative")
	}

	snapshot := model.ProductSnapshot{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Office:      req.Office,
	}
	id, err := s.productRepo.Create(ctx, snapshot)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a catalog product. Inventory entries go with it; transfer
// items and history keep their snapshot and lose the product reference.
func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.Uint64("product_id", id), zap.String("error", err.Error()))
		return cerr.FromStorage(err)
	}
	if !deleted {
		return cerr.SetCustomErrorf(constant.ErrNotFound, "product %d", id)
	}
	logger.Info("[DeleteProduct] product removed", zap.Uint64("product_id", id))
	return nil
}

// ProvisionStock credits a user's inventory directly, outside the transfer workflow.
func (s *productAppImpl) ProvisionStock(ctx context.Context, req *model.ProvisionRequest) (*model.InventoryEntry, error) {
	if req.Quantity <= 0 {
		return nil, cerr.SetCustomErrorf(constant.ErrInvalidRequest, "quantity must be positive")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ProvisionStock] begin tx", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	product, err := s.productRepo.GetByIDTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[ProvisionStock] get product", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}
	if product == nil {
		return nil, cerr.SetCustomErrorf(constant.ErrNotFound, "product %d", req.ProductID)
	}

	if err := s.inventoryRepo.CreditTx(ctx, tx, req.UserID, req.ProductID, req.Quantity); err != nil {
		logger.Error("[ProvisionStock] credit", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}

	entry, err := s.inventoryRepo.GetEntryTx(ctx, tx, req.UserID, req.ProductID)
	if err != nil {
		logger.Error("[ProvisionStock] get entry", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ProvisionStock] commit tx", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}
	committed = true

	logger.Info("[ProvisionStock] stock provisioned",
		zap.Uint64("user_id", req.UserID), zap.Uint64("product_id", req.ProductID), zap.Int64("quantity", req.Quantity))
	return entry, nil
}
