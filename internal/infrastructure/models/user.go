package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName          string    `gorm:"type:varchar(100);not null"`
	LastName           string    `gorm:"type:varchar(100);not null"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Role               string    `gorm:"type:varchar(20);not null;default:'USER'"`
	PhoneNumber        *string   `gorm:"type:varchar(10)"`
	ProfilePic         *string   `gorm:"type:text"`
	WalletAddress      string    `gorm:"type:varchar(42);not null"`
	IsDeleted          bool      `gorm:"not null;default:false;index"`
	IsProfileCompleted bool      `gorm:"not null;default:false"`
	Address            *Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (User) TableName() string {
	return "users"
}

type Address struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Street    string    `gorm:"type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(100);not null"`
	Country   string    `gorm:"type:varchar(100);not null"`
	ZipCode   string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Address) TableName() string {
	return "addresses"
}
