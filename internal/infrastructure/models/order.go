package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	User              *User               `gorm:"foreignKey:UserID"`
	PharmacyOutletID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	PharmacyOutlet    *PharmacyOutlet     `gorm:"foreignKey:PharmacyOutletID"`
	VendorOrgID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	VendorOrg         *VendorOrganization `gorm:"foreignKey:VendorOrgID"`
	OrderDate         time.Time           `gorm:"not null"`
	OrderStatus       string              `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentStatus     string              `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PaymentMethod     string              `gorm:"type:varchar(20);not null"`
	Amount            decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	BlockchainTxHash  *string             `gorm:"type:varchar(255)"`
	BlockchainOrderID *string             `gorm:"type:varchar(255)"`
	OrderItems        []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"not null;check:chk_order_items_quantity,quantity > 0"`
	Category string    `gorm:"type:varchar(100);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type BlockchainRecord struct {
	TxHash    string    `gorm:"type:varchar(255);primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Order     *Order    `gorm:"foreignKey:OrderID"`
	Action    string    `gorm:"type:varchar(50);not null"`
	Timestamp time.Time `gorm:"not null"`
}

func (BlockchainRecord) TableName() string {
	return "blockchain_records"
}

// All lists every model in dependency order for migrations.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Address{},
		&VendorOrganization{},
		&PharmacyOutlet{},
		&Product{},
		&Order{},
		&OrderItem{},
		&InventoryItem{},
		&BlockchainRecord{},
	}
}
