package repositories

import (
	"context"

	"github.com/google/uuid"

	"blockpharma.backend/internal/domain/entities"
)

// OrderFilter narrows order listings. Zero values mean "any".
type OrderFilter struct {
	OutletOwnerID uuid.UUID
	VendorOwnerID uuid.UUID
	OutletID      uuid.UUID
	VendorOrgID   uuid.UUID
	Status        entities.OrderStatus
}

// OrderRepository defines order data operations. Reads load items, outlet and organization.
type OrderRepository interface {
	// Create inserts the order row and then each item row. Callers wrap it in a UnitOfWork.
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus, txHash string) error
	List(ctx context.Context, filter OrderFilter) ([]*entities.Order, error)
}

// BlockchainRecordRepository appends audit records
type BlockchainRecordRepository interface {
	Create(ctx context.Context, record *entities.BlockchainRecord) error
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entities.BlockchainRecord, error)
}

// CountsRepository backs the dashboard counters
type CountsRepository interface {
	DashboardCounts(ctx context.Context) (*entities.DashboardCounts, error)
}
