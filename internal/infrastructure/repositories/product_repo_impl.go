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

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := productToModel(product)
	if err := GetDB(ctx, r.db).Omit("VendorOrg").Create(m).Error; err != nil {
		return translateError(err)
	}
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

// CreateBatch inserts products in one statement
func (r *ProductRepository) CreateBatch(ctx context.Context, products []*entities.Product) error {
	if len(products) == 0 {
		return nil
	}
	ms := make([]*models.Product, 0, len(products))
	for _, p := range products {
		ms = append(ms, productToModel(p))
	}
	if err := GetDB(ctx, r.db).Omit("VendorOrg").Create(&ms).Error; err != nil {
		return translateError(err)
	}
	for i, m := range ms {
		products[i].CreatedAt = m.CreatedAt
		products[i].UpdatedAt = m.UpdatedAt
	}
	return nil
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return productToEntity(&m), nil
}

// ListByVendor lists the products of one vendor organization. limit <= 0 returns all.
func (r *ProductRepository) ListByVendor(ctx context.Context, vendorOrgID uuid.UUID, limit, offset int) ([]*entities.Product, int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&models.Product{}).Where("vendor_org_id = ?", vendorOrgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := GetDB(ctx, r.db).Where("vendor_org_id = ?", vendorOrgID).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	var ms []models.Product
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entities.Product, 0, len(ms))
	for i := range ms {
		products = append(products, productToEntity(&ms[i]))
	}
	return products, total, nil
}

// Update updates a product
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	result := GetDB(ctx, r.db).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"brand":       product.Brand,
			"category":    product.Category,
			"unit":        product.Unit,
			"description": product.Description.Ptr(),
			"image":       product.Image.Ptr(),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func productToModel(p *entities.Product) *models.Product {
	return &models.Product{
		ID:          p.ID,
		VendorOrgID: p.VendorOrgID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Unit:        p.Unit,
		Description: p.Description.Ptr(),
		Image:       p.Image.Ptr(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func productToEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		VendorOrgID: m.VendorOrgID,
		Name:        m.Name,
		Brand:       m.Brand,
		Category:    m.Category,
		Unit:        m.Unit,
		Description: null.StringFromPtr(m.Description),
		Image:       null.StringFromPtr(m.Image),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
