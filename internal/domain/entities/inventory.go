package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// InventoryItem is one medicine line held by a pharmacy outlet.
// (PharmacyOutletID, MedicineName) is unique; adding the same name again restocks.
type InventoryItem struct {
	ID               uuid.UUID       `json:"id"`
	PharmacyOutletID uuid.UUID       `json:"pharmacyOutletId"`
	ProductID        *uuid.UUID      `json:"productId"`
	OrderID          *uuid.UUID      `json:"orderId"`
	MedicineName     string          `json:"medicineName"`
	MedicineBrand    string          `json:"medicineBrand"`
	Category         string          `json:"category"`
	Image            null.String     `json:"image"`
	Stock            int             `json:"stock"`
	Threshold        int             `json:"threshold"`
	Price            decimal.Decimal `json:"price"`
	Expiry           time.Time       `json:"expiry"`
	BatchNumber      null.String     `json:"batchNumber"`
	Product          *Product        `json:"product,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// AddInventoryInput either restocks an existing medicine or creates a new line.
type AddInventoryInput struct {
	PharmacyOutletID uuid.UUID       `json:"pharmacyOutletId" binding:"required"`
	ProductID        *uuid.UUID      `json:"productId"`
	OrderID          *uuid.UUID      `json:"orderId"`
	MedicineName     string          `json:"medicineName" binding:"required,max=255"`
	MedicineBrand    string          `json:"medicineBrand" binding:"required,max=255"`
	Category         string          `json:"category" binding:"required,max=100"`
	Image            string          `json:"image" binding:"omitempty,url"`
	Stock            int             `json:"stock" binding:"gte=0"`
	Threshold        int             `json:"threshold" binding:"gte=0"`
	Price            decimal.Decimal `json:"price" binding:"gte=0"`
	Expiry           time.Time       `json:"expiry" binding:"required"`
	BatchNumber      string          `json:"batchNumber" binding:"max=100"`
}

// UpdateInventoryInput is a partial update; nil fields are kept.
type UpdateInventoryInput struct {
	MedicineName  *string          `json:"medicineName" binding:"omitempty,min=1,max=255"`
	MedicineBrand *string          `json:"medicineBrand" binding:"omitempty,max=255"`
	Category      *string          `json:"category" binding:"omitempty,max=100"`
	Image         *string          `json:"image" binding:"omitempty,url"`
	Stock         *int             `json:"stock" binding:"omitempty,gte=0"`
	Threshold     *int             `json:"threshold" binding:"omitempty,gte=0"`
	Price         *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
	Expiry        *time.Time       `json:"expiry"`
	BatchNumber   *string          `json:"batchNumber" binding:"omitempty,max=100"`
}

// InventoryResult tells the caller whether AddToInventory merged into an existing row.
type InventoryResult struct {
	Item      *InventoryItem
	Restocked bool
}
