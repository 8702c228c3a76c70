package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/domain/repositories"
	"blockpharma.backend/pkg/logger"
	"blockpharma.backend/pkg/metrics"
	"blockpharma.backend/pkg/utils"
)

// InventoryUsecase handles outlet stock
type InventoryUsecase struct {
	inventoryRepo repositories.InventoryRepository
	outletRepo    repositories.PharmacyOutletRepository
}

// NewInventoryUsecase creates a new inventory usecase
func NewInventoryUsecase(inventoryRepo repositories.InventoryRepository, outletRepo repositories.PharmacyOutletRepository) *InventoryUsecase {
	return &InventoryUsecase{inventoryRepo: inventoryRepo, outletRepo: outletRepo}
}

var errNegativePrice = domainerrors.BadRequest("price must be greater than or equal to 0")

// AddToInventory restocks the line named input.MedicineName in the outlet, or
// creates it when the outlet has no such line yet.
func (u *InventoryUsecase) AddToInventory(ctx context.Context, input *entities.AddInventoryInput) (*entities.InventoryResult, error) {
	if input.Price.IsNegative() {
		return nil, errNegativePrice
	}
	existing, err := u.inventoryRepo.FindByOutletAndName(ctx, input.PharmacyOutletID, input.MedicineName)
	switch {
	case err == nil:
		return u.restock(ctx, existing.ID, input)
	case !errors.Is(err, domainerrors.ErrNotFound):
		return nil, err
	}

	if _, err := u.outletRepo.GetByID(ctx, input.PharmacyOutletID); err != nil {
		return nil, notFound(err, "Pharmacy outlet not found")
	}

	item := &entities.InventoryItem{
		ID:               utils.GenerateUUIDv7(),
		PharmacyOutletID: input.PharmacyOutletID,
		ProductID:        input.ProductID,
		OrderID:          input.OrderID,
		MedicineName:     input.MedicineName,
		MedicineBrand:    input.MedicineBrand,
		Category:         input.Category,
		Stock:            input.Stock,
		Threshold:        input.Threshold,
		Price:            input.Price,
		Expiry:           input.Expiry,
	}
	if input.Image != "" {
		item.Image = null.StringFrom(input.Image)
	}
	if input.BatchNumber != "" {
		item.BatchNumber = null.StringFrom(input.BatchNumber)
	}

	if err := u.inventoryRepo.Create(ctx, item); err != nil {
		if !errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, err
		}
		// a concurrent request created the line first
		existing, findErr := u.inventoryRepo.FindByOutletAndName(ctx, input.PharmacyOutletID, input.MedicineName)
		if findErr != nil {
			return nil, err
		}
		return u.restock(ctx, existing.ID, input)
	}

	metrics.RecordInventoryAdjustment(false)
	logger.Info(ctx, "inventory item added",
		zap.String("outletId", item.PharmacyOutletID.String()),
		zap.String("medicine", item.MedicineName),
	)
	return &entities.InventoryResult{Item: item}, nil
}

func (u *InventoryUsecase) restock(ctx context.Context, id uuid.UUID, input *entities.AddInventoryInput) (*entities.InventoryResult, error) {
	if err := u.inventoryRepo.IncrementStock(ctx, id, input.Stock, input.OrderID); err != nil {
		return nil, notFound(err, "Inventory item not found")
	}
	item, err := u.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Inventory item not found")
	}
	metrics.RecordInventoryAdjustment(true)
	return &entities.InventoryResult{Item: item, Restocked: true}, nil
}

// GetInventoryByPharmacy lists the stock of one outlet
func (u *InventoryUsecase) GetInventoryByPharmacy(ctx context.Context, outletID uuid.UUID) ([]*entities.InventoryItem, error) {
	if _, err := u.outletRepo.GetByID(ctx, outletID); err != nil {
		return nil, notFound(err, "Pharmacy outlet not found")
	}
	return u.inventoryRepo.ListByOutlet(ctx, outletID)
}

// UpdateInventoryItem applies the non-nil fields of input
func (u *InventoryUsecase) UpdateInventoryItem(ctx context.Context, id uuid.UUID, input *entities.UpdateInventoryInput) (*entities.InventoryItem, error) {
	if input.Price != nil && input.Price.IsNegative() {
		return nil, errNegativePrice
	}
	item, err := u.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Inventory item not found")
	}

	if input.MedicineName != nil {
		item.MedicineName = *input.MedicineName
	}
	if input.MedicineBrand != nil {
		item.MedicineBrand = *input.MedicineBrand
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Image != nil {
		item.Image = null.StringFrom(*input.Image)
	}
	if input.Stock != nil {
		item.Stock = *input.Stock
	}
	if input.Threshold != nil {
		item.Threshold = *input.Threshold
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Expiry != nil {
		item.Expiry = *input.Expiry
	}
	if input.BatchNumber != nil {
		item.BatchNumber = null.StringFrom(*input.BatchNumber)
	}

	if err := u.inventoryRepo.Update(ctx, item); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Medicine already exists in this outlet")
		}
		return nil, notFound(err, "Inventory item not found")
	}
	return item, nil
}

// DeleteInventoryItem removes a line
func (u *InventoryUsecase) DeleteInventoryItem(ctx context.Context, id uuid.UUID) error {
	return notFound(u.inventoryRepo.Delete(ctx, id), "Inventory item not found")
}
