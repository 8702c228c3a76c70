package repositories

import (
	"context"

	"github.com/google/uuid"

	"blockpharma.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	CreateBatch(ctx context.Context, products []*entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListByVendor(ctx context.Context, vendorOrgID uuid.UUID, limit, offset int) ([]*entities.Product, int64, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventoryRepository defines inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entities.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.InventoryItem, error)
	FindByOutletAndName(ctx context.Context, outletID uuid.UUID, medicineName string) (*entities.InventoryItem, error)
	// IncrementStock adds amount to the stored stock in a single statement and
	// links orderID when it is not nil.
	IncrementStock(ctx context.Context, id uuid.UUID, amount int, orderID *uuid.UUID) error
	ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]*entities.InventoryItem, error)
	Update(ctx context.Context, item *entities.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
