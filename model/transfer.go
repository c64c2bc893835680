package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/shopspring/decimal"
)

type TransferItemRequest struct {
	ProductID uint64 `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity"`
}

type TransferRequest struct {
	FromUserID uint64                `json:"fromUserId" validate:"required"`
	ToUserID   uint64                `json:"toUserId" validate:"required"`
	Items      []TransferItemRequest `json:"items" validate:"required,min=1,dive"`
}

type TransferResponse struct {
	Message    string `json:"message"`
	TransferID uint64 `json:"transferId"`
	ItemsCount int    `json:"itemsCount"`
}

type TransferActionResponse struct {
	Message    string                  `json:"message"`
	TransferID uint64                  `json:"transferId"`
	Status     constant.TransferStatus `json:"status"`
	ItemsCount int                     `json:"itemsCount"`
}

type Transfer struct {
	ID           uint64                  `db:"id" json:"id"`
	FromUserID   uint64                  `db:"from_user_id" json:"fromUserId"`
	ToUserID     uint64                  `db:"to_user_id" json:"toUserId"`
	TransferDate time.Time               `db:"transfer_date" json:"transferDate"`
	Status       constant.TransferStatus `db:"status" json:"status"`
	Message      string                  `db:"message" json:"message"`
	Items        []TransferItem          `db:"-" json:"items"`
}

// TransferItem keeps a snapshot of the product so history survives catalog edits and deletes.
// ProductID is nil once the product has been removed from the catalog; SourceProductID
// always keeps the id the item was sent with.
type TransferItem struct {
	ID              uint64          `db:"id" json:"id"`
	TransferID      uint64          `db:"transfer_id" json:"transferId"`
	ProductID       *uint64         `db:"product_id" json:"productId"`
	SourceProductID uint64          `db:"source_product_id" json:"sourceProductId"`
	Quantity        int64           `db:"quantity" json:"quantity"`
	Name            string          `db:"name" json:"name"`
	Description     string          `db:"description" json:"description,omitempty"`
	ImageURL        string          `db:"image_url" json:"imageUrl,omitempty"`
	Price           decimal.Decimal `db:"price" json:"price"`
	Office          string          `db:"office" json:"office,omitempty"`
}

func (i *TransferItem) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		Name:        i.Name,
		Description: i.Description,
		ImageURL:    i.ImageURL,
		Price:       i.Price,
		Office:      i.Office,
	}
}

type TransferHistory struct {
	ID             uint64                  `db:"id" json:"id"`
	TransferID     uint64                  `db:"transfer_id" json:"transferId"`
	TransferItemID uint64                  `db:"transfer_item_id" json:"transferItemId"`
	ProductID      *uint64                 `db:"product_id" json:"productId"`
	FromUserID     uint64                  `db:"from_user_id" json:"fromUserId"`
	ToUserID       uint64                  `db:"to_user_id" json:"toUserId"`
	TransferDate   time.Time               `db:"transfer_date" json:"transferDate"`
	Status         constant.TransferStatus `db:"status" json:"status"`
	Message        string                  `db:"message" json:"message"`
}

// TransferHistoryView is a history row with the item snapshot for display.
type TransferHistoryView struct {
	TransferHistory
	Quantity    int64           `db:"quantity" json:"quantity"`
	ProductName string          `db:"product_name" json:"productName"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Office      string          `db:"office" json:"office,omitempty"`
}

type InsertTransferTxItem struct {
	FromUserID   uint64
	ToUserID     uint64
	TransferDate time.Time
	Status       constant.TransferStatus
	Message      string
}

type InsertTransferItemTx struct {
	TransferID uint64
	ProductID  uint64
	Quantity   int64
	Snapshot   ProductSnapshot
}

type InsertTransferHistoryTx struct {
	TransferID     uint64
	TransferItemID uint64
	ProductID      uint64
	FromUserID     uint64
	ToUserID       uint64
	TransferDate   time.Time
	Status         constant.TransferStatus
	Message        string
}

// TransferNotification is the event handed to the notification dispatcher after commit.
type TransferNotification struct {
	Event       constant.TransferEvent `json:"event"`
	TransferID  uint64                 `json:"transferId"`
	FromUserID  uint64                 `json:"fromUserId"`
	ToUserID    uint64                 `json:"toUserId"`
	RecipientID uint64                 `json:"recipientId"`
	ActorID     uint64                 `json:"actorId"`
	ItemsCount  int                    `json:"itemsCount"`
	OccurredAt  time.Time              `json:"occurredAt"`
}
