package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blockpharma.backend/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'USER',
		phone_number TEXT,
		profile_pic TEXT,
		wallet_address TEXT NOT NULL,
		is_deleted BOOLEAN NOT NULL DEFAULT 0,
		is_profile_completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE addresses (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		country TEXT NOT NULL,
		zip_code TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBusinessTables(t *testing.T, db *gorm.DB) {
	for _, table := range []string{"vendor_organizations", "pharmacy_outlets"} {
		mustExec(t, db, `CREATE TABLE `+table+` (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL REFERENCES users(id),
			business_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			gstin TEXT NOT NULL UNIQUE,
			phone_number TEXT NOT NULL,
			website TEXT,
			street TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			pincode TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		);`)
	}
}

func createCatalogueTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		vendor_org_id TEXT NOT NULL REFERENCES vendor_organizations(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		brand TEXT NOT NULL,
		category TEXT NOT NULL,
		unit TEXT NOT NULL,
		description TEXT,
		image TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		pharmacy_outlet_id TEXT NOT NULL REFERENCES pharmacy_outlets(id),
		vendor_org_id TEXT NOT NULL REFERENCES vendor_organizations(id),
		order_date DATETIME NOT NULL,
		order_status TEXT NOT NULL DEFAULT 'PENDING',
		payment_status TEXT NOT NULL DEFAULT 'PENDING',
		payment_method TEXT NOT NULL,
		amount TEXT NOT NULL DEFAULT '0',
		blockchain_tx_hash TEXT,
		blockchain_order_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL CONSTRAINT chk_order_items_quantity CHECK (quantity > 0),
		category TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE blockchain_records (
		tx_hash TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id),
		action TEXT NOT NULL,
		timestamp DATETIME NOT NULL
	);`)
}

func createInventoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE inventory_items (
		id TEXT PRIMARY KEY,
		pharmacy_outlet_id TEXT NOT NULL REFERENCES pharmacy_outlets(id) ON DELETE CASCADE,
		product_id TEXT REFERENCES products(id) ON DELETE SET NULL,
		order_id TEXT REFERENCES orders(id) ON DELETE SET NULL,
		medicine_name TEXT NOT NULL,
		medicine_brand TEXT NOT NULL,
		category TEXT NOT NULL,
		image TEXT,
		stock INTEGER NOT NULL DEFAULT 0,
		threshold INTEGER NOT NULL DEFAULT 0,
		price TEXT NOT NULL,
		expiry DATETIME NOT NULL,
		batch_number TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		CONSTRAINT idx_inventory_outlet_medicine UNIQUE (pharmacy_outlet_id, medicine_name)
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createUserTables(t, db)
	createBusinessTables(t, db)
	createCatalogueTables(t, db)
	createOrderTables(t, db)
	createInventoryTable(t, db)
}

func seedUser(t *testing.T, db *gorm.DB, role entities.UserRole) *entities.User {
	t.Helper()
	id := uuid.New()
	u := &entities.User{
		ID:            id,
		FirstName:     "Test",
		LastName:      string(role),
		Email:         id.String()[:8] + "@blockpharma.test",
		PasswordHash:  "hash",
		Role:          role,
		WalletAddress: "0xd1134dDcf76cff8E1D0475648B56CfAA521B5EFd",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func newBusiness(ownerID uuid.UUID, gstin string) (*entities.VendorOrganization, *entities.PharmacyOutlet) {
	org := &entities.VendorOrganization{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		BusinessName: "Himalaya Distributors",
		Email:        gstin + "@vendor.test",
		GSTIN:        gstin,
		PhoneNumber:  "8599663355",
		Street:       "Rajpur Road",
		City:         "Dehradun",
		State:        "Uttarakhand",
		Pincode:      "248001",
		IsActive:     true,
	}
	outlet := &entities.PharmacyOutlet{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		BusinessName: "City Care Pharmacy",
		Email:        gstin + "@outlet.test",
		GSTIN:        gstin,
		PhoneNumber:  "9557002280",
		Street:       "Haridwar Road",
		City:         "Rishikesh",
		State:        "Uttarakhand",
		Pincode:      "249201",
		IsActive:     true,
	}
	return org, outlet
}

// seedParties creates a supplier with one organization and a pharmacist with one outlet.
func seedParties(t *testing.T, db *gorm.DB) (supplier *entities.User, org *entities.VendorOrganization, pharmacist *entities.User, outlet *entities.PharmacyOutlet) {
	t.Helper()
	ctx := context.Background()
	supplier = seedUser(t, db, entities.UserRoleSupplier)
	pharmacist = seedUser(t, db, entities.UserRolePharmacy)

	org, _ = newBusiness(supplier.ID, "GSTINVENDOR"+supplier.ID.String()[:4])
	_, outlet = newBusiness(pharmacist.ID, "GSTINOUTLET"+pharmacist.ID.String()[:4])
	require.NoError(t, NewVendorOrganizationRepository(db).Create(ctx, org))
	require.NoError(t, NewPharmacyOutletRepository(db).Create(ctx, outlet))
	return supplier, org, pharmacist, outlet
}

func newOrder(userID, outletID, orgID uuid.UUID, quantities ...int) *entities.Order {
	o := &entities.Order{
		ID:               uuid.New(),
		UserID:           userID,
		PharmacyOutletID: outletID,
		VendorOrgID:      orgID,
		OrderDate:        time.Now(),
		OrderStatus:      entities.OrderStatusPending,
		PaymentStatus:    entities.PaymentStatusPending,
		PaymentMethod:    entities.PaymentMethodUPI,
		Amount:           decimal.NewFromInt(500),
	}
	for i, q := range quantities {
		o.OrderItems = append(o.OrderItems, entities.OrderItem{
			ID:       uuid.New(),
			Name:     fmt.Sprintf("Medicine %d", i+1),
			Quantity: q,
			Category: "Analgesic",
		})
	}
	return o
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
