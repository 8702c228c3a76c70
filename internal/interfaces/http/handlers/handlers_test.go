package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/infrastructure/datasources/postgres"
	"blockpharma.backend/internal/infrastructure/repositories"
	"blockpharma.backend/internal/interfaces/http/middleware"
	"blockpharma.backend/internal/interfaces/http/validation"
	"blockpharma.backend/internal/usecases"
	"blockpharma.backend/pkg/jwt"
)

const testWallet = "0xd1134dDcf76cff8E1D0475648B56CfAA521B5EFd"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

// newTestServer wires every handler against an in-memory SQLite database.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	userRepo := repositories.NewUserRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	vendorRepo := repositories.NewVendorOrganizationRepository(db)
	outletRepo := repositories.NewPharmacyOutletRepository(db)
	productRepo := repositories.NewProductRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	recordRepo := repositories.NewBlockchainRecordRepository(db)
	uow := repositories.NewUnitOfWork(db)
	tokens := jwt.NewJWTService("handler-test-secret", time.Hour)

	userHandler := NewUserHandler(usecases.NewUserUsecase(userRepo, addressRepo, uow, tokens))
	vendorHandler := NewVendorHandler(usecases.NewVendorUsecase(vendorRepo, userRepo))
	pharmacyHandler := NewPharmacyHandler(usecases.NewPharmacyUsecase(outletRepo, userRepo))
	productHandler := NewProductHandler(usecases.NewProductUsecase(productRepo, vendorRepo, uow))
	inventoryHandler := NewInventoryHandler(usecases.NewInventoryUsecase(inventoryRepo, outletRepo))
	orderHandler := NewOrderHandler(usecases.NewOrderUsecase(orderRepo, recordRepo, outletRepo, vendorRepo, uow, true))
	countsHandler := NewCountsHandler(repositories.NewCountsRepository(db))

	r := gin.New()
	api := r.Group("/api")
	api.GET("/counts", countsHandler.GetCounts)
	api.POST("/user/register", userHandler.Register)
	api.POST("/user/login", userHandler.Login)

	auth := api.Group("", middleware.AuthMiddleware(tokens))
	auth.GET("/user/me", userHandler.Me)
	auth.PUT("/user/complete-profile", userHandler.CompleteProfile)
	auth.DELETE("/user/delete", userHandler.DeleteUser)

	auth.POST("/supplier/add", middleware.RequireRole(entities.UserRoleSupplier), vendorHandler.AddOrganization)
	auth.GET("/supplier/get/:id", vendorHandler.GetOrganization)
	auth.POST("/pharmacy/outlet/add", middleware.RequireRole(entities.UserRolePharmacy), pharmacyHandler.AddOutlet)

	auth.POST("/products", middleware.RequireRole(entities.UserRoleSupplier), productHandler.CreateProduct)
	auth.POST("/products/bulk", middleware.RequireRole(entities.UserRoleSupplier), productHandler.CreateBulk)
	auth.GET("/products/vendor/:vendorOrgId", productHandler.ListByVendor)

	auth.POST("/inventory", inventoryHandler.AddToInventory)
	auth.GET("/inventory/:pharmacyOutletId", inventoryHandler.GetInventoryByPharmacy)

	auth.POST("/orders", middleware.RequireRole(entities.UserRolePharmacy), orderHandler.CreateOrder)
	auth.GET("/orders/all", middleware.RequireRole(entities.UserRolePharmacy), orderHandler.ListForPharmacist)
	auth.GET("/orders/vendor/pending", middleware.RequireRole(entities.UserRoleSupplier), orderHandler.ListPendingForSupplier)
	auth.GET("/orders/vendor/:id", orderHandler.ListForSupplier)
	auth.GET("/orders/organization/:vendorOrgId", orderHandler.ListForVendor)
	auth.PUT("/orders/:id/status", middleware.RequireRole(entities.UserRoleSupplier), orderHandler.UpdateOrderStatus)
	auth.GET("/orders/:id", orderHandler.GetOrder)
	auth.GET("/orders/:id/records", orderHandler.ListRecords)

	return &testServer{router: r, db: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 && strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

// doList is do for endpoints answering with a JSON array.
func (s *testServer) doList(t *testing.T, path, token string) (int, []interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out []interface{}
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

// signUp registers a user with role and returns its id and bearer token.
func (s *testServer) signUp(t *testing.T, email string, role entities.UserRole) (string, string) {
	t.Helper()
	code, body := s.do(t, http.MethodPost, "/api/user/register", "", gin.H{
		"firstName":     "Asha",
		"lastName":      "Rawat",
		"email":         email,
		"password":      "secret123",
		"role":          role,
		"walletAddress": testWallet,
	})
	require.Equal(t, http.StatusCreated, code, body)

	code, body = s.do(t, http.MethodPost, "/api/user/login", "", gin.H{"email": email, "password": "secret123"})
	require.Equal(t, http.StatusOK, code, body)
	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	return user["id"].(string), data["token"].(string)
}

func business(name, gstin string) gin.H {
	return gin.H{
		"businessName": name,
		"email":        strings.ToLower(gstin) + "@blockpharma.test",
		"gstin":        gstin,
		"phoneNumber":  "9557002280",
		"street":       "Rajpur Road",
		"city":         "Dehradun",
		"state":        "Uttarakhand",
		"pincode":      "248001",
	}
}

func dataID(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, body)
	return data["id"].(string)
}

// parties sets up a supplier with an organization and a pharmacist with an outlet.
func (s *testServer) parties(t *testing.T) (supplierToken, orgID, pharmacistToken, outletID string) {
	t.Helper()
	_, supplierToken = s.signUp(t, "supplier@blockpharma.test", entities.UserRoleSupplier)
	_, pharmacistToken = s.signUp(t, "pharmacist@blockpharma.test", entities.UserRolePharmacy)

	code, body := s.do(t, http.MethodPost, "/api/supplier/add", supplierToken, business("Himalaya Distributors", "05ABCDE1234F1Z5"))
	require.Equal(t, http.StatusCreated, code, body)
	orgID = dataID(t, body)

	code, body = s.do(t, http.MethodPost, "/api/pharmacy/outlet/add", pharmacistToken, business("City Care Pharmacy", "05PQRST9876K1Z2"))
	require.Equal(t, http.StatusCreated, code, body)
	outletID = dataID(t, body)
	return supplierToken, orgID, pharmacistToken, outletID
}
