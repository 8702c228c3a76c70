package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	domainRepos "blockpharma.backend/internal/domain/repositories"
	"blockpharma.backend/internal/infrastructure/models"
)

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order row followed by one row per item. Without an
// enclosing UnitOfWork a failing item leaves the earlier rows behind.
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	db := GetDB(ctx, r.db)

	m := &models.Order{
		ID:                order.ID,
		UserID:            order.UserID,
		PharmacyOutletID:  order.PharmacyOutletID,
		VendorOrgID:       order.VendorOrgID,
		OrderDate:         order.OrderDate,
		OrderStatus:       string(order.OrderStatus),
		PaymentStatus:     string(order.PaymentStatus),
		PaymentMethod:     string(order.PaymentMethod),
		Amount:            order.Amount,
		BlockchainTxHash:  order.BlockchainTxHash.Ptr(),
		BlockchainOrderID: order.BlockchainOrderID.Ptr(),
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return translateError(err)
	}
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt

	for i := range order.OrderItems {
		item := &order.OrderItems[i]
		item.OrderID = order.ID
		im := &models.OrderItem{
			ID:       item.ID,
			OrderID:  order.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Category: item.Category,
		}
		if err := db.Create(im).Error; err != nil {
			return fmt.Errorf("order item %d: %w", i+1, translateError(err))
		}
	}
	return nil
}

// GetByID gets an order with items, outlet and organization
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	err := r.withRelations(GetDB(ctx, r.db)).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return orderToEntity(&m), nil
}

// UpdateStatus sets the order status and, when txHash is not empty, the stored hash
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus, txHash string) error {
	updates := map[string]interface{}{
		"order_status": string(status),
		"updated_at":   time.Now(),
	}
	if txHash != "" {
		updates["blockchain_tx_hash"] = txHash
	}
	result := GetDB(ctx, r.db).Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists orders matching filter, newest first
func (r *OrderRepository) List(ctx context.Context, filter domainRepos.OrderFilter) ([]*entities.Order, error) {
	db := GetDB(ctx, r.db)
	query := r.withRelations(db)

	if filter.OutletOwnerID != uuid.Nil {
		owned := db.Session(&gorm.Session{NewDB: true}).Model(&models.PharmacyOutlet{}).
			Select("id").Where("owner_id = ?", filter.OutletOwnerID)
		query = query.Where("pharmacy_outlet_id IN (?)", owned)
	}
	if filter.VendorOwnerID != uuid.Nil {
		owned := db.Session(&gorm.Session{NewDB: true}).Model(&models.VendorOrganization{}).
			Select("id").Where("owner_id = ?", filter.VendorOwnerID)
		query = query.Where("vendor_org_id IN (?)", owned)
	}
	if filter.OutletID != uuid.Nil {
		query = query.Where("pharmacy_outlet_id = ?", filter.OutletID)
	}
	if filter.VendorOrgID != uuid.Nil {
		query = query.Where("vendor_org_id = ?", filter.VendorOrgID)
	}
	if filter.Status != "" {
		query = query.Where("order_status = ?", string(filter.Status))
	}

	var ms []models.Order
	if err := query.Order("order_date DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, orderToEntity(&ms[i]))
	}
	return orders, nil
}

func (r *OrderRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("OrderItems").Preload("PharmacyOutlet").Preload("VendorOrg")
}

func orderToEntity(m *models.Order) *entities.Order {
	o := &entities.Order{
		ID:                m.ID,
		UserID:            m.UserID,
		PharmacyOutletID:  m.PharmacyOutletID,
		VendorOrgID:       m.VendorOrgID,
		OrderDate:         m.OrderDate,
		OrderStatus:       entities.OrderStatus(m.OrderStatus),
		PaymentStatus:     entities.PaymentStatus(m.PaymentStatus),
		PaymentMethod:     entities.PaymentMethod(m.PaymentMethod),
		Amount:            m.Amount,
		BlockchainTxHash:  null.StringFromPtr(m.BlockchainTxHash),
		BlockchainOrderID: null.StringFromPtr(m.BlockchainOrderID),
		OrderItems:        make([]entities.OrderItem, 0, len(m.OrderItems)),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	for _, item := range m.OrderItems {
		o.OrderItems = append(o.OrderItems, entities.OrderItem{
			ID:       item.ID,
			OrderID:  item.OrderID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Category: item.Category,
		})
	}
	if m.PharmacyOutlet != nil {
		o.PharmacyOutlet = outletToEntity(m.PharmacyOutlet)
	}
	if m.VendorOrg != nil {
		o.VendorOrg = vendorToEntity(m.VendorOrg)
	}
	return o
}
