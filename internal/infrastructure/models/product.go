package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	VendorOrgID uuid.UUID           `gorm:"type:uuid;not null;index"`
	VendorOrg   *VendorOrganization `gorm:"foreignKey:VendorOrgID;constraint:OnDelete:CASCADE"`
	Name        string              `gorm:"type:varchar(255);not null"`
	Brand       string              `gorm:"type:varchar(255);not null"`
	Category    string              `gorm:"type:varchar(100);not null"`
	Unit        string              `gorm:"type:varchar(50);not null"`
	Description *string             `gorm:"type:text"`
	Image       *string             `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Product) TableName() string {
	return "products"
}

type InventoryItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PharmacyOutletID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_outlet_medicine"`
	PharmacyOutlet   *PharmacyOutlet `gorm:"foreignKey:PharmacyOutletID;constraint:OnDelete:CASCADE"`
	ProductID        *uuid.UUID      `gorm:"type:uuid;index"`
	Product          *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	OrderID          *uuid.UUID      `gorm:"type:uuid;index"`
	Order            *Order          `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL"`
	MedicineName     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_inventory_outlet_medicine"`
	MedicineBrand    string          `gorm:"type:varchar(255);not null"`
	Category         string          `gorm:"type:varchar(100);not null"`
	Image            *string         `gorm:"type:text"`
	Stock            int             `gorm:"not null;default:0"`
	Threshold        int             `gorm:"not null;default:0"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Expiry           time.Time       `gorm:"not null"`
	BatchNumber      *string         `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
