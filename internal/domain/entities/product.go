package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product is a catalogue entry published by a vendor organization
type Product struct {
	ID          uuid.UUID   `json:"id"`
	VendorOrgID uuid.UUID   `json:"vendorOrgId"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Category    string      `json:"category"`
	Unit        string      `json:"unit"`
	Description null.String `json:"description"`
	Image       null.String `json:"image"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ProductInput represents input for creating a product
type ProductInput struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Description string    `json:"description"`
	Brand       string    `json:"brand" binding:"required,max=255"`
	Category    string    `json:"category" binding:"required,max=100"`
	Image       string    `json:"image" binding:"omitempty,url"`
	Unit        string    `json:"unit" binding:"required,max=50"`
	VendorOrgID uuid.UUID `json:"vendorOrgId" binding:"required"`
}

// ProductUpdateInput is a partial product update
type ProductUpdateInput struct {
	Name        string `json:"name" binding:"omitempty,max=255"`
	Description string `json:"description"`
	Brand       string `json:"brand" binding:"omitempty,max=255"`
	Category    string `json:"category" binding:"omitempty,max=100"`
	Image       string `json:"image" binding:"omitempty,url"`
	Unit        string `json:"unit" binding:"omitempty,max=50"`
}

// BulkProductInput creates several products at once
type BulkProductInput struct {
	Products []ProductInput `json:"products" binding:"required,min=1,max=500,dive"`
}
