package model

import "github.com/shopspring/decimal"

// InventoryEntry is how many units of a product a user holds. Rows never sit at zero.
type InventoryEntry struct {
	ID           uint64 `db:"id" json:"id"`
	UserID       uint64 `db:"user_id" json:"user_id"`
	ProductID    uint64 `db:"product_id" json:"product_id"`
	CountInStock int64  `db:"count_in_stock" json:"count_in_stock"`
}

// UserProduct is an inventory entry joined with its catalog product.
type UserProduct struct {
	ID           uint64          `db:"id" json:"id"`
	UserID       uint64          `db:"user_id" json:"user_id"`
	ProductID    uint64          `db:"product_id" json:"product_id"`
	CountInStock int64           `db:"count_in_stock" json:"count_in_stock"`
	Name         string          `db:"name" json:"name"`
	Description  string          `db:"description" json:"description,omitempty"`
	ImageURL     string          `db:"image_url" json:"image_url,omitempty"`
	Price        decimal.Decimal `db:"price" json:"price"`
	Office       string          `db:"office" json:"office,omitempty"`
}

type ProvisionRequest struct {
	UserID    uint64 `json:"user_id" validate:"required"`
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
}
