package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint64          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description,omitempty"`
	ImageURL    string          `db:"image_url" json:"image_url,omitempty"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Office      string          `db:"office" json:"office,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// Snapshot copies the display fields carried by a transfer item.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Office:      p.Office,
	}
}

// ProductSnapshot is the catalog data frozen into a transfer item at creation time.
type ProductSnapshot struct {
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description,omitempty"`
	ImageURL    string          `db:"image_url" json:"image_url,omitempty"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Office      string          `db:"office" json:"office,omitempty"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	ImageURL    string          `json:"image_url" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	Office      string          `json:"office" validate:"max=100"`
}
