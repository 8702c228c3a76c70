package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleUser     UserRole = "USER"
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleSupplier UserRole = "SUPPLIER"
	UserRolePharmacy UserRole = "PHARMACY"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin, UserRoleSupplier, UserRolePharmacy:
		return true
	}
	return false
}

// User represents a user entity
type User struct {
	ID                 uuid.UUID   `json:"id"`
	FirstName          string      `json:"firstName"`
	LastName           string      `json:"lastName"`
	Email              string      `json:"email"`
	PasswordHash       string      `json:"-"`
	Role               UserRole    `json:"role"`
	PhoneNumber        null.String `json:"phoneNumber"`
	ProfilePic         null.String `json:"profilePic"`
	WalletAddress      string      `json:"walletAddress"`
	IsDeleted          bool        `json:"-"`
	IsProfileCompleted bool        `json:"isProfileCompleted"`
	Address            *Address    `json:"address,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// Address is the single postal address of a user
type Address struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	ZipCode   string    `json:"zipCode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterInput represents input for creating a user
type RegisterInput struct {
	FirstName     string   `json:"firstName" binding:"required,max=100"`
	LastName      string   `json:"lastName" binding:"required,max=100"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=6"`
	Role          UserRole `json:"role" binding:"omitempty,oneof=USER SUPPLIER PHARMACY"`
	WalletAddress string   `json:"walletAddress" binding:"required,ethaddr"`
	PhoneNumber   string   `json:"phoneNumber" binding:"omitempty,len=10,numeric"`
	ProfilePic    string   `json:"profilePic" binding:"omitempty,url"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateUserInput carries the editable profile fields; empty values are left untouched.
type UpdateUserInput struct {
	FirstName     string `json:"firstName" binding:"omitempty,max=100"`
	LastName      string `json:"lastName" binding:"omitempty,max=100"`
	Email         string `json:"email" binding:"omitempty,email"`
	PhoneNumber   string `json:"phoneNumber" binding:"omitempty,len=10,numeric"`
	ProfilePic    string `json:"profilePic" binding:"omitempty,url"`
	WalletAddress string `json:"walletAddress" binding:"omitempty,ethaddr"`
}

// UpgradeUserInput changes the role of the calling user.
type UpgradeUserInput struct {
	Role UserRole `json:"role" binding:"required,oneof=USER SUPPLIER PHARMACY"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=6"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// AddressInput represents a postal address payload
type AddressInput struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Country string `json:"country" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required,max=10"`
}

// CompleteProfileInput finishes onboarding: role, contact details and address in one call.
type CompleteProfileInput struct {
	Role        UserRole `json:"role" binding:"omitempty,oneof=USER SUPPLIER PHARMACY"`
	PhoneNumber string   `json:"phoneNumber" binding:"omitempty,len=10,numeric"`
	ProfilePic  string   `json:"profilePic" binding:"omitempty,url"`
	Street      string   `json:"street" binding:"required"`
	City        string   `json:"city" binding:"required"`
	State       string   `json:"state" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	ZipCode     string   `json:"zipCode" binding:"required,max=10"`
}

// AddressInput returns the address part of the profile payload.
func (in CompleteProfileInput) AddressInput() AddressInput {
	return AddressInput{
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Country: in.Country,
		ZipCode: in.ZipCode,
	}
}
