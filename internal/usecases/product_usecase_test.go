package usecases_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/usecases"
	"blockpharma.backend/pkg/utils"
)

type productFixture struct {
	products *MockProductRepository
	vendors  *MockVendorRepository
	uow      *MockUnitOfWork
	uc       *usecases.ProductUsecase
	ownerID  uuid.UUID
	org      *entities.VendorOrganization
}

func newProductFixture() *productFixture {
	f := &productFixture{
		products: new(MockProductRepository),
		vendors:  new(MockVendorRepository),
		uow:      new(MockUnitOfWork),
		ownerID:  uuid.New(),
	}
	f.org = &entities.VendorOrganization{ID: uuid.New(), OwnerID: f.ownerID}
	f.vendors.On("GetByID", mock.Anything, f.org.ID).Return(f.org, nil).Maybe()
	f.uow.On("Do", mock.Anything, mock.Anything).Maybe()
	f.uc = usecases.NewProductUsecase(f.products, f.vendors, f.uow)
	return f
}

func productInput(orgID uuid.UUID, name string) entities.ProductInput {
	return entities.ProductInput{
		Name:        name,
		Brand:       "Cipla",
		Category:    "Analgesic",
		Unit:        "strip",
		Description: "10 tablets",
		VendorOrgID: orgID,
	}
}

func TestProductUsecase_CreateProduct(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	in := productInput(f.org.ID, "Paracetamol 500")

	f.products.On("Create", ctx, mock.AnythingOfType("*entities.Product")).Return(nil).Once()
	p, err := f.uc.CreateProduct(ctx, f.ownerID, &in)
	require.NoError(t, err)
	assert.Equal(t, f.org.ID, p.VendorOrgID)
	assert.Equal(t, "10 tablets", p.Description.String)
	assert.False(t, p.Image.Valid)

	_, err = f.uc.CreateProduct(ctx, uuid.New(), &in)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	unknown := productInput(uuid.New(), "Ghost")
	f.vendors.On("GetByID", ctx, unknown.VendorOrgID).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = f.uc.CreateProduct(ctx, f.ownerID, &unknown)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestProductUsecase_CreateBulk(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	inputs := []entities.ProductInput{
		productInput(f.org.ID, "Paracetamol 500"),
		productInput(f.org.ID, "Cetirizine 10"),
	}

	f.products.On("CreateBatch", ctx, mock.MatchedBy(func(ps []*entities.Product) bool { return len(ps) == 2 })).Return(nil).Once()
	got, err := f.uc.CreateBulk(ctx, f.ownerID, inputs)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	// the organization is looked up once per distinct id
	f.vendors.AssertNumberOfCalls(t, "GetByID", 1)
	f.uow.AssertNumberOfCalls(t, "Do", 1)
}

func TestProductUsecase_CreateBulk_UnknownOrganizationWritesNothing(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	ghost := uuid.New()
	f.vendors.On("GetByID", ctx, ghost).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := f.uc.CreateBulk(ctx, f.ownerID, []entities.ProductInput{
		productInput(f.org.ID, "Paracetamol 500"),
		productInput(ghost, "Ghost"),
	})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	f.products.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestProductUsecase_CreateBulk_StoreFailure(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	f.products.On("CreateBatch", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := f.uc.CreateBulk(ctx, f.ownerID, []entities.ProductInput{productInput(f.org.ID, "A")})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}

func TestProductUsecase_ListByVendor(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	f.products.On("ListByVendor", ctx, f.org.ID, 10, 10).Return([]*entities.Product{{Name: "A"}}, int64(11), nil).Once()

	products, meta, err := f.uc.ListByVendor(ctx, f.org.ID, utils.NormalizePage(2, 10))
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, int64(11), meta.TotalCount)
	assert.Equal(t, 2, meta.TotalPages)

	ghost := uuid.New()
	f.vendors.On("GetByID", ctx, ghost).Return(nil, domainerrors.ErrNotFound).Once()
	_, _, err = f.uc.ListByVendor(ctx, ghost, utils.Page{})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestProductUsecase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	product := &entities.Product{ID: uuid.New(), VendorOrgID: f.org.ID, Name: "Old", Brand: "Cipla"}
	f.products.On("GetByID", ctx, product.ID).Return(product, nil)

	_, err := f.uc.UpdateProduct(ctx, product.ID, uuid.New(), &entities.ProductUpdateInput{Name: "New"})
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	f.products.On("Update", ctx, product).Return(nil).Once()
	updated, err := f.uc.UpdateProduct(ctx, product.ID, f.ownerID, &entities.ProductUpdateInput{Name: "New", Image: "https://cdn.test/p.png"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "Cipla", updated.Brand)
	assert.Equal(t, "https://cdn.test/p.png", updated.Image.String)

	f.products.On("Delete", ctx, product.ID).Return(nil).Once()
	require.NoError(t, f.uc.DeleteProduct(ctx, product.ID, f.ownerID))

	missing := uuid.New()
	f.products.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound)
	err = f.uc.DeleteProduct(ctx, missing, f.ownerID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}
