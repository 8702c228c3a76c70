package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) active(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).Model(&models.User{}).Where("is_deleted = ?", false)
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:                 user.ID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		Role:               string(user.Role),
		PhoneNumber:        user.PhoneNumber.Ptr(),
		ProfilePic:         user.ProfilePic.Ptr(),
		WalletAddress:      user.WalletAddress,
		IsProfileCompleted: user.IsProfileCompleted,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Omit("Address").Create(m).Error; err != nil {
		return translateError(err)
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a non-deleted user by ID together with the address
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.active(ctx).Preload("Address").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a non-deleted user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.active(ctx).Preload("Address").Where("email = ?", email).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return userToEntity(&m), nil
}

// EmailTaken checks every row, deleted or not, since the column is unique.
func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates the profile columns of a user
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"first_name":           user.FirstName,
		"last_name":            user.LastName,
		"email":                user.Email,
		"role":                 string(user.Role),
		"phone_number":         user.PhoneNumber.Ptr(),
		"profile_pic":          user.ProfilePic.Ptr(),
		"wallet_address":       user.WalletAddress,
		"is_profile_completed": user.IsProfileCompleted,
		"updated_at":           time.Now(),
	}
	return r.updateColumns(ctx, user.ID, updates)
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
}

// UpdateRole changes the role of a user
func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"role":       string(role),
		"updated_at": time.Now(),
	})
}

// SoftDelete flags the user as deleted; the row is retained.
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"is_deleted": true,
		"updated_at": time.Now(),
	})
}

func (r *UserRepository) updateColumns(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.active(ctx).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns non-deleted users, newest first. limit <= 0 returns all.
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	var total int64
	if err := r.active(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.active(ctx).Preload("Address").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.User
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, userToEntity(&ms[i]))
	}
	return users, total, nil
}

func userToEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:                 m.ID,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Role:               entities.UserRole(m.Role),
		PhoneNumber:        null.StringFromPtr(m.PhoneNumber),
		ProfilePic:         null.StringFromPtr(m.ProfilePic),
		WalletAddress:      m.WalletAddress,
		IsDeleted:          m.IsDeleted,
		IsProfileCompleted: m.IsProfileCompleted,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Address != nil {
		u.Address = addressToEntity(m.Address)
	}
	return u
}

// AddressRepository implements address data operations
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// Create creates the address of a user; a second address for the same user is a conflict.
func (r *AddressRepository) Create(ctx context.Context, address *entities.Address) error {
	m := &models.Address{
		ID:        address.ID,
		UserID:    address.UserID,
		Street:    address.Street,
		City:      address.City,
		State:     address.State,
		Country:   address.Country,
		ZipCode:   address.ZipCode,
		CreatedAt: address.CreatedAt,
		UpdatedAt: address.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByUserID gets the address of a user
func (r *AddressRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Address, error) {
	var m models.Address
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return addressToEntity(&m), nil
}

// Update updates the address of a user
func (r *AddressRepository) Update(ctx context.Context, address *entities.Address) error {
	result := GetDB(ctx, r.db).Model(&models.Address{}).
		Where("user_id = ?", address.UserID).
		Updates(map[string]interface{}{
			"street":     address.Street,
			"city":       address.City,
			"state":      address.State,
			"country":    address.Country,
			"zip_code":   address.ZipCode,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUserID removes the address of a user. Missing rows are not an error.
func (r *AddressRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).Where("user_id = ?", userID).Delete(&models.Address{}).Error
}

func addressToEntity(m *models.Address) *entities.Address {
	return &entities.Address{
		ID:        m.ID,
		UserID:    m.UserID,
		Street:    m.Street,
		City:      m.City,
		State:     m.State,
		Country:   m.Country,
		ZipCode:   m.ZipCode,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
