package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VendorOrganization is a supplier business owned by a SUPPLIER user
type VendorOrganization struct {
	ID           uuid.UUID   `json:"id"`
	OwnerID      uuid.UUID   `json:"ownerId"`
	BusinessName string      `json:"businessName"`
	Email        string      `json:"email"`
	GSTIN        string      `json:"gstin"`
	PhoneNumber  string      `json:"phoneNumber"`
	Website      null.String `json:"website"`
	Street       string      `json:"street"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	Pincode      string      `json:"pincode"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// PharmacyOutlet is a retail pharmacy owned by a PHARMACY user
type PharmacyOutlet struct {
	ID           uuid.UUID   `json:"id"`
	OwnerID      uuid.UUID   `json:"ownerId"`
	BusinessName string      `json:"businessName"`
	Email        string      `json:"email"`
	GSTIN        string      `json:"gstin"`
	PhoneNumber  string      `json:"phoneNumber"`
	Website      null.String `json:"website"`
	Street       string      `json:"street"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	Pincode      string      `json:"pincode"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// BusinessInput is the registration payload shared by vendor organizations and pharmacy outlets.
type BusinessInput struct {
	BusinessName string `json:"businessName" binding:"required,min=2,max=255"`
	Email        string `json:"email" binding:"required,email"`
	GSTIN        string `json:"gstin" binding:"required,alphanum,max=20"`
	PhoneNumber  string `json:"phoneNumber" binding:"required,len=10,numeric"`
	Website      string `json:"website" binding:"omitempty,url"`
	Street       string `json:"street" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required,max=10,numeric"`
}

// BusinessUpdateInput is the partial form of BusinessInput; empty fields are kept.
type BusinessUpdateInput struct {
	BusinessName string `json:"businessName" binding:"omitempty,min=2,max=255"`
	Email        string `json:"email" binding:"omitempty,email"`
	GSTIN        string `json:"gstin" binding:"omitempty,alphanum,max=20"`
	PhoneNumber  string `json:"phoneNumber" binding:"omitempty,len=10,numeric"`
	Website      string `json:"website" binding:"omitempty,url"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode" binding:"omitempty,max=10,numeric"`
}
