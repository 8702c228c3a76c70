package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/infrastructure/models"
)

// BlockchainRecordRepository implements blockchain audit record operations
type BlockchainRecordRepository struct {
	db *gorm.DB
}

// NewBlockchainRecordRepository creates a new blockchain record repository
func NewBlockchainRecordRepository(db *gorm.DB) *BlockchainRecordRepository {
	return &BlockchainRecordRepository{db: db}
}

// Create appends a record. Reusing a tx hash is a conflict.
func (r *BlockchainRecordRepository) Create(ctx context.Context, record *entities.BlockchainRecord) error {
	m := &models.BlockchainRecord{
		TxHash:    record.TxHash,
		OrderID:   record.OrderID,
		Action:    record.Action,
		Timestamp: record.Timestamp,
	}
	if err := GetDB(ctx, r.db).Omit("Order").Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// ListByOrderID lists the audit trail of an order, oldest first
func (r *BlockchainRecordRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entities.BlockchainRecord, error) {
	var ms []models.BlockchainRecord
	if err := GetDB(ctx, r.db).Where("order_id = ?", orderID).Order("timestamp ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	records := make([]*entities.BlockchainRecord, 0, len(ms))
	for _, m := range ms {
		records = append(records, &entities.BlockchainRecord{
			TxHash:    m.TxHash,
			OrderID:   m.OrderID,
			Action:    m.Action,
			Timestamp: m.Timestamp,
		})
	}
	return records, nil
}
