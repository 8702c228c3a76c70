package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRejected   OrderStatus = "REJECTED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled, OrderStatusRejected},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next follows the order lifecycle.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod represents how an order is paid
type PaymentMethod string

const (
	PaymentMethodUPI            PaymentMethod = "UPI"
	PaymentMethodCard           PaymentMethod = "CARD"
	PaymentMethodNetBanking     PaymentMethod = "NET_BANKING"
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodCrypto         PaymentMethod = "CRYPTO"
)

// Order is a purchase placed by a pharmacy outlet with a vendor organization
type Order struct {
	ID                uuid.UUID           `json:"id"`
	UserID            uuid.UUID           `json:"userId"`
	PharmacyOutletID  uuid.UUID           `json:"pharmacyOutletId"`
	VendorOrgID       uuid.UUID           `json:"vendorOrgId"`
	OrderDate         time.Time           `json:"orderDate"`
	OrderStatus       OrderStatus         `json:"orderStatus"`
	PaymentStatus     PaymentStatus       `json:"paymentStatus"`
	PaymentMethod     PaymentMethod       `json:"paymentMethod"`
	Amount            decimal.Decimal     `json:"amount"`
	BlockchainTxHash  null.String         `json:"blockchainTxHash"`
	BlockchainOrderID null.String         `json:"blockchainOrderId"`
	OrderItems        []OrderItem         `json:"orderItems"`
	PharmacyOutlet    *PharmacyOutlet     `json:"pharmacyOutlet,omitempty"`
	VendorOrg         *VendorOrganization `json:"vendorOrg,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// OrderItem is a snapshot line of an order; it does not reference the catalogue.
type OrderItem struct {
	ID       uuid.UUID `json:"id"`
	OrderID  uuid.UUID `json:"orderId"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Category string    `json:"category"`
}

// Blockchain record actions
const (
	BlockchainActionOrderCreated = "ORDER_CREATED"
	blockchainStatusActionPrefix = "STATUS_"
)

// StatusAction returns the audit action recorded for a status change.
func StatusAction(status OrderStatus) string {
	return blockchainStatusActionPrefix + string(status)
}

// BlockchainRecord is an append-only audit entry keyed by transaction hash
type BlockchainRecord struct {
	TxHash    string    `json:"txHash"`
	OrderID   uuid.UUID `json:"orderId"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	PharmacyOutletID  uuid.UUID        `json:"pharmacyOutletId" binding:"required"`
	VendorOrgID       uuid.UUID        `json:"vendorOrgId" binding:"required"`
	PaymentMethod     PaymentMethod    `json:"paymentMethod" binding:"required,oneof=UPI CARD NET_BANKING CASH_ON_DELIVERY CRYPTO"`
	Amount            decimal.Decimal  `json:"amount" binding:"gte=0"`
	OrderItems        []OrderItemInput `json:"orderItems" binding:"required,min=1,dive"`
	BlockchainTxHash  string           `json:"blockchainTxHash" binding:"omitempty,txhash"`
	BlockchainOrderID string           `json:"blockchainOrderId" binding:"max=255"`
}

// OrderItemInput is one requested line of a new order
type OrderItemInput struct {
	Name     string `json:"name" binding:"required,max=255"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Category string `json:"category" binding:"required,max=100"`
}

// UpdateOrderStatusInput represents input for a supplier status change
type UpdateOrderStatusInput struct {
	OrderStatus      OrderStatus `json:"orderStatus" binding:"required,oneof=PENDING CONFIRMED PROCESSING SHIPPED DELIVERED CANCELLED REJECTED"`
	BlockchainTxHash string      `json:"blockchainTxHash" binding:"omitempty,txhash"`
}

// DashboardCounts feeds the admin dashboard
type DashboardCounts struct {
	UsersCount      int64 `json:"usersCount"`
	SuppliersCount  int64 `json:"suppliersCount"`
	PharmaciesCount int64 `json:"pharmaciesCount"`
	OrdersCount     int64 `json:"ordersCount"`
}
