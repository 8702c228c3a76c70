package models

import (
	"time"

	"github.com/google/uuid"
)

type VendorOrganization struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Owner        *User     `gorm:"foreignKey:OwnerID"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	GSTIN        string    `gorm:"column:gstin;type:varchar(20);uniqueIndex;not null"`
	PhoneNumber  string    `gorm:"type:varchar(10);not null"`
	Website      *string   `gorm:"type:text"`
	Street       string    `gorm:"type:varchar(255);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	Pincode      string    `gorm:"type:varchar(10);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (VendorOrganization) TableName() string {
	return "vendor_organizations"
}

type PharmacyOutlet struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Owner        *User     `gorm:"foreignKey:OwnerID"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	GSTIN        string    `gorm:"column:gstin;type:varchar(20);uniqueIndex;not null"`
	PhoneNumber  string    `gorm:"type:varchar(10);not null"`
	Website      *string   `gorm:"type:text"`
	Street       string    `gorm:"type:varchar(255);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	Pincode      string    `gorm:"type:varchar(10);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PharmacyOutlet) TableName() string {
	return "pharmacy_outlets"
}
