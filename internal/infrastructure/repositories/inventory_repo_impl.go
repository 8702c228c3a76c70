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

// InventoryRepository implements inventory data operations
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create creates a new inventory item
func (r *InventoryRepository) Create(ctx context.Context, item *entities.InventoryItem) error {
	m := &models.InventoryItem{
		ID:               item.ID,
		PharmacyOutletID: item.PharmacyOutletID,
		ProductID:        item.ProductID,
		OrderID:          item.OrderID,
		MedicineName:     item.MedicineName,
		MedicineBrand:    item.MedicineBrand,
		Category:         item.Category,
		Image:            item.Image.Ptr(),
		Stock:            item.Stock,
		Threshold:        item.Threshold,
		Price:            item.Price,
		Expiry:           item.Expiry,
		BatchNumber:      item.BatchNumber.Ptr(),
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Omit("PharmacyOutlet", "Product", "Order").Create(m).Error; err != nil {
		return translateError(err)
	}
	item.CreatedAt = m.CreatedAt
	item.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an inventory item by ID
func (r *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InventoryItem, error) {
	var m models.InventoryItem
	if err := GetDB(ctx, r.db).Preload("Product").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return inventoryToEntity(&m), nil
}

// FindByOutletAndName finds the inventory line of a medicine in an outlet
func (r *InventoryRepository) FindByOutletAndName(ctx context.Context, outletID uuid.UUID, medicineName string) (*entities.InventoryItem, error) {
	var m models.InventoryItem
	err := GetDB(ctx, r.db).
		Where("pharmacy_outlet_id = ? AND medicine_name = ?", outletID, medicineName).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return inventoryToEntity(&m), nil
}

// IncrementStock adds amount to stock with a single UPDATE so concurrent restocks never lose writes.
func (r *InventoryRepository) IncrementStock(ctx context.Context, id uuid.UUID, amount int, orderID *uuid.UUID) error {
	updates := map[string]interface{}{
		"stock":      gorm.Expr("stock + ?", amount),
		"updated_at": time.Now(),
	}
	if orderID != nil {
		updates["order_id"] = *orderID
	}
	result := GetDB(ctx, r.db).Model(&models.InventoryItem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByOutlet lists the inventory of one outlet with the linked product
func (r *InventoryRepository) ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]*entities.InventoryItem, error) {
	var ms []models.InventoryItem
	err := GetDB(ctx, r.db).
		Preload("Product").
		Where("pharmacy_outlet_id = ?", outletID).
		Order("medicine_name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.InventoryItem, 0, len(ms))
	for i := range ms {
		items = append(items, inventoryToEntity(&ms[i]))
	}
	return items, nil
}

// Update writes every editable column of an inventory item
func (r *InventoryRepository) Update(ctx context.Context, item *entities.InventoryItem) error {
	result := GetDB(ctx, r.db).Model(&models.InventoryItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"medicine_name":  item.MedicineName,
			"medicine_brand": item.MedicineBrand,
			"category":       item.Category,
			"image":          item.Image.Ptr(),
			"stock":          item.Stock,
			"threshold":      item.Threshold,
			"price":          item.Price,
			"expiry":         item.Expiry,
			"batch_number":   item.BatchNumber.Ptr(),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete deletes an inventory item
func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Where("id = ?", id).Delete(&models.InventoryItem{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func inventoryToEntity(m *models.InventoryItem) *entities.InventoryItem {
	item := &entities.InventoryItem{
		ID:               m.ID,
		PharmacyOutletID: m.PharmacyOutletID,
		ProductID:        m.ProductID,
		OrderID:          m.OrderID,
		MedicineName:     m.MedicineName,
		MedicineBrand:    m.MedicineBrand,
		Category:         m.Category,
		Image:            null.StringFromPtr(m.Image),
		Stock:            m.Stock,
		Threshold:        m.Threshold,
		Price:            m.Price,
		Expiry:           m.Expiry,
		BatchNumber:      null.StringFromPtr(m.BatchNumber),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Product != nil {
		item.Product = productToEntity(m.Product)
	}
	return item
}
