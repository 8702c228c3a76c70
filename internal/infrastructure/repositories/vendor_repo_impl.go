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

// VendorOrganizationRepository implements vendor organization data operations
type VendorOrganizationRepository struct {
	db *gorm.DB
}

// NewVendorOrganizationRepository creates a new vendor organization repository
func NewVendorOrganizationRepository(db *gorm.DB) *VendorOrganizationRepository {
	return &VendorOrganizationRepository{db: db}
}

// Create creates a new vendor organization
func (r *VendorOrganizationRepository) Create(ctx context.Context, org *entities.VendorOrganization) error {
	m := &models.VendorOrganization{
		ID:           org.ID,
		OwnerID:      org.OwnerID,
		BusinessName: org.BusinessName,
		Email:        org.Email,
		GSTIN:        org.GSTIN,
		PhoneNumber:  org.PhoneNumber,
		Website:      org.Website.Ptr(),
		Street:       org.Street,
		City:         org.City,
		State:        org.State,
		Pincode:      org.Pincode,
		IsActive:     org.IsActive,
		CreatedAt:    org.CreatedAt,
		UpdatedAt:    org.UpdatedAt,
	}
	// Select("*") so IsActive=false is written instead of the column default
	if err := GetDB(ctx, r.db).Select("*").Omit("Owner").Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets a vendor organization by ID
func (r *VendorOrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorOrganization, error) {
	var m models.VendorOrganization
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return vendorToEntity(&m), nil
}

// EmailTaken reports whether another organization uses email
func (r *VendorOrganizationRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return columnTaken(GetDB(ctx, r.db).Model(&models.VendorOrganization{}), "email", email, excludeID)
}

// GSTINTaken reports whether another organization uses gstin
func (r *VendorOrganizationRepository) GSTINTaken(ctx context.Context, gstin string, excludeID uuid.UUID) (bool, error) {
	return columnTaken(GetDB(ctx, r.db).Model(&models.VendorOrganization{}), "gstin", gstin, excludeID)
}

// ListByOwner lists the organizations of one supplier
func (r *VendorOrganizationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.VendorOrganization, error) {
	var ms []models.VendorOrganization
	if err := GetDB(ctx, r.db).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return vendorsToEntities(ms), nil
}

// List lists every organization
func (r *VendorOrganizationRepository) List(ctx context.Context) ([]*entities.VendorOrganization, error) {
	var ms []models.VendorOrganization
	if err := GetDB(ctx, r.db).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return vendorsToEntities(ms), nil
}

// Update updates the editable columns of an organization
func (r *VendorOrganizationRepository) Update(ctx context.Context, org *entities.VendorOrganization) error {
	result := GetDB(ctx, r.db).Model(&models.VendorOrganization{}).
		Where("id = ?", org.ID).
		Updates(map[string]interface{}{
			"business_name": org.BusinessName,
			"email":         org.Email,
			"gstin":         org.GSTIN,
			"phone_number":  org.PhoneNumber,
			"website":       org.Website.Ptr(),
			"street":        org.Street,
			"city":          org.City,
			"state":         org.State,
			"pincode":       org.Pincode,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetActive sets the isActive flag
func (r *VendorOrganizationRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := GetDB(ctx, r.db).Model(&models.VendorOrganization{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes an organization
func (r *VendorOrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Where("id = ?", id).Delete(&models.VendorOrganization{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func columnTaken(query *gorm.DB, column, value string, excludeID uuid.UUID) (bool, error) {
	query = query.Where(column+" = ?", value)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func vendorToEntity(m *models.VendorOrganization) *entities.VendorOrganization {
	return &entities.VendorOrganization{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		BusinessName: m.BusinessName,
		Email:        m.Email,
		GSTIN:        m.GSTIN,
		PhoneNumber:  m.PhoneNumber,
		Website:      null.StringFromPtr(m.Website),
		Street:       m.Street,
		City:         m.City,
		State:        m.State,
		Pincode:      m.Pincode,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func vendorsToEntities(ms []models.VendorOrganization) []*entities.VendorOrganization {
	out := make([]*entities.VendorOrganization, 0, len(ms))
	for i := range ms {
		out = append(out, vendorToEntity(&ms[i]))
	}
	return out
}
