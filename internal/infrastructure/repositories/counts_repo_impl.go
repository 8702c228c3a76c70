package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/infrastructure/models"
)

// CountsRepository implements the dashboard counters
type CountsRepository struct {
	db *gorm.DB
}

// NewCountsRepository creates a new counts repository
func NewCountsRepository(db *gorm.DB) *CountsRepository {
	return &CountsRepository{db: db}
}

// DashboardCounts runs one COUNT per table. Soft-deleted users are excluded.
func (r *CountsRepository) DashboardCounts(ctx context.Context) (*entities.DashboardCounts, error) {
	db := GetDB(ctx, r.db)
	counts := &entities.DashboardCounts{}

	if err := db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&counts.UsersCount).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if err := db.Model(&models.VendorOrganization{}).Count(&counts.SuppliersCount).Error; err != nil {
		return nil, fmt.Errorf("count vendor organizations: %w", err)
	}
	if err := db.Model(&models.PharmacyOutlet{}).Count(&counts.PharmaciesCount).Error; err != nil {
		return nil, fmt.Errorf("count pharmacy outlets: %w", err)
	}
	if err := db.Model(&models.Order{}).Count(&counts.OrdersCount).Error; err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	return counts, nil
}
