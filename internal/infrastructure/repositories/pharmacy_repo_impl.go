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

// PharmacyOutletRepository implements pharmacy outlet data operations
type PharmacyOutletRepository struct {
	db *gorm.DB
}

// NewPharmacyOutletRepository creates a new pharmacy outlet repository
func NewPharmacyOutletRepository(db *gorm.DB) *PharmacyOutletRepository {
	return &PharmacyOutletRepository{db: db}
}

// Create creates a new pharmacy outlet
func (r *PharmacyOutletRepository) Create(ctx context.Context, outlet *entities.PharmacyOutlet) error {
	m := &models.PharmacyOutlet{
		ID:           outlet.ID,
		OwnerID:      outlet.OwnerID,
		BusinessName: outlet.BusinessName,
		Email:        outlet.Email,
		GSTIN:        outlet.GSTIN,
		PhoneNumber:  outlet.PhoneNumber,
		Website:      outlet.Website.Ptr(),
		Street:       outlet.Street,
		City:         outlet.City,
		State:        outlet.State,
		Pincode:      outlet.Pincode,
		IsActive:     outlet.IsActive,
		CreatedAt:    outlet.CreatedAt,
		UpdatedAt:    outlet.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Select("*").Omit("Owner").Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets a pharmacy outlet by ID
func (r *PharmacyOutletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PharmacyOutlet, error) {
	var m models.PharmacyOutlet
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return outletToEntity(&m), nil
}

func (r *PharmacyOutletRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return columnTaken(GetDB(ctx, r.db).Model(&models.PharmacyOutlet{}), "email", email, excludeID)
}

func (r *PharmacyOutletRepository) GSTINTaken(ctx context.Context, gstin string, excludeID uuid.UUID) (bool, error) {
	return columnTaken(GetDB(ctx, r.db).Model(&models.PharmacyOutlet{}), "gstin", gstin, excludeID)
}

// ListByOwner lists the outlets of one pharmacy user
func (r *PharmacyOutletRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.PharmacyOutlet, error) {
	var ms []models.PharmacyOutlet
	if err := GetDB(ctx, r.db).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return outletsToEntities(ms), nil
}

// List lists every outlet
func (r *PharmacyOutletRepository) List(ctx context.Context) ([]*entities.PharmacyOutlet, error) {
	var ms []models.PharmacyOutlet
	if err := GetDB(ctx, r.db).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return outletsToEntities(ms), nil
}

// Update updates the editable columns of an outlet
func (r *PharmacyOutletRepository) Update(ctx context.Context, outlet *entities.PharmacyOutlet) error {
	result := GetDB(ctx, r.db).Model(&models.PharmacyOutlet{}).
		Where("id = ?", outlet.ID).
		Updates(map[string]interface{}{
			"business_name": outlet.BusinessName,
			"email":         outlet.Email,
			"gstin":         outlet.GSTIN,
			"phone_number":  outlet.PhoneNumber,
			"website":       outlet.Website.Ptr(),
			"street":        outlet.Street,
			"city":          outlet.City,
			"state":         outlet.State,
			"pincode":       outlet.Pincode,
			"is_active":     outlet.IsActive,
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

// Delete hard-deletes an outlet
func (r *PharmacyOutletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Where("id = ?", id).Delete(&models.PharmacyOutlet{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func outletToEntity(m *models.PharmacyOutlet) *entities.PharmacyOutlet {
	return &entities.PharmacyOutlet{
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

func outletsToEntities(ms []models.PharmacyOutlet) []*entities.PharmacyOutlet {
	out := make([]*entities.PharmacyOutlet, 0, len(ms))
	for i := range ms {
		out = append(out, outletToEntity(&ms[i]))
	}
	return out
}
