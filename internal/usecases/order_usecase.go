package usecases

import (
	"context"
	"errors"
	"time"

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

var now = time.Now

// OrderUsecase handles the order lifecycle
type OrderUsecase struct {
	orderRepo  repositories.OrderRepository
	recordRepo repositories.BlockchainRecordRepository
	outletRepo repositories.PharmacyOutletRepository
	vendorRepo repositories.VendorOrganizationRepository
	uow        repositories.UnitOfWork

	// strictTransitions enforces the status transition table. When false any
	// known status may follow any other.
	strictTransitions bool
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	recordRepo repositories.BlockchainRecordRepository,
	outletRepo repositories.PharmacyOutletRepository,
	vendorRepo repositories.VendorOrganizationRepository,
	uow repositories.UnitOfWork,
	strictTransitions bool,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:         orderRepo,
		recordRepo:        recordRepo,
		outletRepo:        outletRepo,
		vendorRepo:        vendorRepo,
		uow:               uow,
		strictTransitions: strictTransitions,
	}
}

// CreateOrder places an order from an outlet owned by userID. The order, its
// items and the ORDER_CREATED record (when a hash is given) commit together.
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	if input.Amount.IsNegative() {
		return nil, domainerrors.BadRequest("amount must be greater than or equal to 0")
	}
	outlet, err := u.outletRepo.GetByID(ctx, input.PharmacyOutletID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("pharmacyOutletId does not reference an existing outlet")
		}
		return nil, err
	}
	if outlet.OwnerID != userID {
		return nil, domainerrors.Forbidden("You can only order for your own outlets")
	}

	order := &entities.Order{
		ID:               utils.GenerateUUIDv7(),
		UserID:           userID,
		PharmacyOutletID: input.PharmacyOutletID,
		VendorOrgID:      input.VendorOrgID,
		OrderDate:        now(),
		OrderStatus:      entities.OrderStatusPending,
		PaymentStatus:    entities.PaymentStatusPending,
		PaymentMethod:    input.PaymentMethod,
		Amount:           input.Amount,
		OrderItems:       make([]entities.OrderItem, 0, len(input.OrderItems)),
	}
	if input.BlockchainTxHash != "" {
		order.BlockchainTxHash = null.StringFrom(input.BlockchainTxHash)
	}
	if input.BlockchainOrderID != "" {
		order.BlockchainOrderID = null.StringFrom(input.BlockchainOrderID)
	}
	for _, item := range input.OrderItems {
		order.OrderItems = append(order.OrderItems, entities.OrderItem{
			ID:       utils.GenerateUUIDv7(),
			Name:     item.Name,
			Quantity: item.Quantity,
			Category: item.Category,
		})
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.orderRepo.Create(ctx, order); err != nil {
			return err
		}
		if input.BlockchainTxHash == "" {
			return nil
		}
		return u.recordRepo.Create(ctx, &entities.BlockchainRecord{
			TxHash:    input.BlockchainTxHash,
			OrderID:   order.ID,
			Action:    entities.BlockchainActionOrderCreated,
			Timestamp: now(),
		})
	})
	if err != nil {
		return nil, orderWriteError(err)
	}

	metrics.RecordOrderCreated()
	logger.Info(ctx, "order created",
		zap.String("orderId", order.ID.String()),
		zap.Int("items", len(order.OrderItems)),
	)
	return u.loadOrder(ctx, order.ID)
}

// UpdateOrderStatus moves an order of an organization owned by userID to
// input.OrderStatus. A supplied hash is recorded as STATUS_<status> in the
// same transaction as the status change.
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID, userID uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	// a missing order and an order of another supplier answer the same way
	if order == nil || order.VendorOrg == nil || order.VendorOrg.OwnerID != userID {
		return nil, domainerrors.Forbidden("You don't have permission to update this order")
	}

	next := input.OrderStatus
	if !next.IsValid() {
		return nil, domainerrors.BadRequest("orderStatus is invalid")
	}
	if u.strictTransitions && !order.OrderStatus.CanTransitionTo(next) {
		return nil, domainerrors.InvalidTransition("Cannot move order from " + string(order.OrderStatus) + " to " + string(next))
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if input.BlockchainTxHash != "" {
			if err := u.recordRepo.Create(ctx, &entities.BlockchainRecord{
				TxHash:    input.BlockchainTxHash,
				OrderID:   orderID,
				Action:    entities.StatusAction(next),
				Timestamp: now(),
			}); err != nil {
				return err
			}
		}
		return u.orderRepo.UpdateStatus(ctx, orderID, next, input.BlockchainTxHash)
	})
	if err != nil {
		return nil, orderWriteError(err)
	}

	metrics.RecordOrderStatusChange(string(next))
	logger.Info(ctx, "order status changed",
		zap.String("orderId", orderID.String()),
		zap.String("from", string(order.OrderStatus)),
		zap.String("to", string(next)),
	)
	return u.loadOrder(ctx, orderID)
}

// GetOrder returns an order visible to the placing outlet owner or the supplying organization owner
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*entities.Order, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !canView(order, userID) {
		return nil, domainerrors.Forbidden("You don't have permission to view this order")
	}
	return order, nil
}

// ListBlockchainRecords returns the audit trail of a visible order, oldest first
func (u *OrderUsecase) ListBlockchainRecords(ctx context.Context, orderID, userID uuid.UUID) ([]*entities.BlockchainRecord, error) {
	if _, err := u.GetOrder(ctx, orderID, userID); err != nil {
		return nil, err
	}
	return u.recordRepo.ListByOrderID(ctx, orderID)
}

// ListForPharmacist returns the orders of every outlet owned by userID
func (u *OrderUsecase) ListForPharmacist(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	return u.orderRepo.List(ctx, repositories.OrderFilter{OutletOwnerID: userID})
}

// ListForSupplier returns the orders of every organization owned by userID, across all of them
func (u *OrderUsecase) ListForSupplier(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	return u.orderRepo.List(ctx, repositories.OrderFilter{VendorOwnerID: userID})
}

// ListPendingForSupplier returns the PENDING orders addressed to organizations owned by userID
func (u *OrderUsecase) ListPendingForSupplier(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	return u.orderRepo.List(ctx, repositories.OrderFilter{
		VendorOwnerID: userID,
		Status:        entities.OrderStatusPending,
	})
}

// ListForOutlet returns the orders of one outlet owned by userID
func (u *OrderUsecase) ListForOutlet(ctx context.Context, outletID, userID uuid.UUID) ([]*entities.Order, error) {
	outlet, err := u.outletRepo.GetByID(ctx, outletID)
	if err != nil {
		return nil, notFound(err, "Pharmacy outlet not found")
	}
	if outlet.OwnerID != userID {
		return nil, domainerrors.Forbidden("You do not own this outlet")
	}
	return u.orderRepo.List(ctx, repositories.OrderFilter{OutletID: outletID})
}

// ListForVendor returns the orders of one organization owned by userID
func (u *OrderUsecase) ListForVendor(ctx context.Context, vendorOrgID, userID uuid.UUID) ([]*entities.Order, error) {
	org, err := u.vendorRepo.GetByID(ctx, vendorOrgID)
	if err != nil {
		return nil, notFound(err, "Organization not found")
	}
	if org.OwnerID != userID {
		return nil, domainerrors.Forbidden("You do not own this organization")
	}
	return u.orderRepo.List(ctx, repositories.OrderFilter{VendorOrgID: vendorOrgID})
}

func (u *OrderUsecase) loadOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Order not found")
	}
	return order, nil
}

func canView(order *entities.Order, userID uuid.UUID) bool {
	if order.UserID == userID {
		return true
	}
	if order.PharmacyOutlet != nil && order.PharmacyOutlet.OwnerID == userID {
		return true
	}
	return order.VendorOrg != nil && order.VendorOrg.OwnerID == userID
}

// orderWriteError turns store failures of an order write into 400s that name the cause
func orderWriteError(err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.AlreadyExists("Blockchain transaction hash already recorded")
	case errors.Is(err, domainerrors.ErrConstraintViolation):
		return domainerrors.ConstraintViolation("Order references an unknown organization or contains an invalid item")
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Order not found")
	}
	return err
}
