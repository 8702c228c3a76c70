package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/domain/repositories"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID uuid.UUID, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, address *entities.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Address), args.Error(1)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *entities.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock VendorOrganizationRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, org *entities.VendorOrganization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorOrganization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VendorOrganization), args.Error(1)
}

func (m *MockVendorRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) GSTINTaken(ctx context.Context, gstin string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, gstin, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.VendorOrganization, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*entities.VendorOrganization), args.Error(1)
}

func (m *MockVendorRepository) List(ctx context.Context) ([]*entities.VendorOrganization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.VendorOrganization), args.Error(1)
}

func (m *MockVendorRepository) Update(ctx context.Context, org *entities.VendorOrganization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockVendorRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock PharmacyOutletRepository
type MockOutletRepository struct {
	mock.Mock
}

func (m *MockOutletRepository) Create(ctx context.Context, outlet *entities.PharmacyOutlet) error {
	args := m.Called(ctx, outlet)
	return args.Error(0)
}

func (m *MockOutletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PharmacyOutlet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PharmacyOutlet), args.Error(1)
}

func (m *MockOutletRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOutletRepository) GSTINTaken(ctx context.Context, gstin string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, gstin, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOutletRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.PharmacyOutlet, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*entities.PharmacyOutlet), args.Error(1)
}

func (m *MockOutletRepository) List(ctx context.Context) ([]*entities.PharmacyOutlet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.PharmacyOutlet), args.Error(1)
}

func (m *MockOutletRepository) Update(ctx context.Context, outlet *entities.PharmacyOutlet) error {
	args := m.Called(ctx, outlet)
	return args.Error(0)
}

func (m *MockOutletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) CreateBatch(ctx context.Context, products []*entities.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListByVendor(ctx context.Context, vendorOrgID uuid.UUID, limit, offset int) ([]*entities.Product, int64, error) {
	args := m.Called(ctx, vendorOrgID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *entities.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindByOutletAndName(ctx context.Context, outletID uuid.UUID, medicineName string) (*entities.InventoryItem, error) {
	args := m.Called(ctx, outletID, medicineName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) IncrementStock(ctx context.Context, id uuid.UUID, amount int, orderID *uuid.UUID) error {
	args := m.Called(ctx, id, amount, orderID)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]*entities.InventoryItem, error) {
	args := m.Called(ctx, outletID)
	return args.Get(0).([]*entities.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *entities.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus, txHash string) error {
	args := m.Called(ctx, id, status, txHash)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter repositories.OrderFilter) ([]*entities.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.Order), args.Error(1)
}

// Mock BlockchainRecordRepository
type MockBlockchainRecordRepository struct {
	mock.Mock
}

func (m *MockBlockchainRecordRepository) Create(ctx context.Context, record *entities.BlockchainRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockBlockchainRecordRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entities.BlockchainRecord, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]*entities.BlockchainRecord), args.Error(1)
}
