package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/domain/repositories"
	"blockpharma.backend/pkg/utils"
)

// ProductUsecase handles the vendor catalogue
type ProductUsecase struct {
	productRepo repositories.ProductRepository
	vendorRepo  repositories.VendorOrganizationRepository
	uow         repositories.UnitOfWork
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(
	productRepo repositories.ProductRepository,
	vendorRepo repositories.VendorOrganizationRepository,
	uow repositories.UnitOfWork,
) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo, vendorRepo: vendorRepo, uow: uow}
}

// CreateProduct adds a product to an organization owned by userID
func (u *ProductUsecase) CreateProduct(ctx context.Context, userID uuid.UUID, input *entities.ProductInput) (*entities.Product, error) {
	if err := u.checkVendorOwner(ctx, input.VendorOrgID, userID); err != nil {
		return nil, err
	}
	product := newProduct(input)
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// CreateBulk inserts every product or none. Each referenced organization
// must exist and belong to userID.
func (u *ProductUsecase) CreateBulk(ctx context.Context, userID uuid.UUID, inputs []entities.ProductInput) ([]*entities.Product, error) {
	checked := make(map[uuid.UUID]bool)
	products := make([]*entities.Product, 0, len(inputs))
	for i := range inputs {
		orgID := inputs[i].VendorOrgID
		if !checked[orgID] {
			if err := u.checkVendorOwner(ctx, orgID, userID); err != nil {
				return nil, err
			}
			checked[orgID] = true
		}
		products = append(products, newProduct(&inputs[i]))
	}

	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.productRepo.CreateBatch(ctx, products); err != nil {
			return fmt.Errorf("create products: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns one product
func (u *ProductUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Product not found")
	}
	return product, nil
}

// ListByVendor pages through the catalogue of one organization
func (u *ProductUsecase) ListByVendor(ctx context.Context, vendorOrgID uuid.UUID, page utils.Page) ([]*entities.Product, utils.PageMeta, error) {
	if _, err := u.vendorRepo.GetByID(ctx, vendorOrgID); err != nil {
		return nil, utils.PageMeta{}, notFound(err, "Organization not found")
	}
	products, total, err := u.productRepo.ListByVendor(ctx, vendorOrgID, page.Limit, page.Offset())
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return products, utils.NewPageMeta(total, page), nil
}

// UpdateProduct applies the non-empty fields of input
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id, userID uuid.UUID, input *entities.ProductUpdateInput) (*entities.Product, error) {
	product, err := u.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkVendorOwner(ctx, product.VendorOrgID, userID); err != nil {
		return nil, err
	}

	product.Name = changed(product.Name, input.Name)
	product.Brand = changed(product.Brand, input.Brand)
	product.Category = changed(product.Category, input.Category)
	product.Unit = changed(product.Unit, input.Unit)
	if input.Description != "" {
		product.Description = null.StringFrom(input.Description)
	}
	if input.Image != "" {
		product.Image = null.StringFrom(input.Image)
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, notFound(err, "Product not found")
	}
	return product, nil
}

// DeleteProduct removes a product of an organization owned by userID
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id, userID uuid.UUID) error {
	product, err := u.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := u.checkVendorOwner(ctx, product.VendorOrgID, userID); err != nil {
		return err
	}
	return notFound(u.productRepo.Delete(ctx, id), "Product not found")
}

func (u *ProductUsecase) checkVendorOwner(ctx context.Context, vendorOrgID, userID uuid.UUID) error {
	org, err := u.vendorRepo.GetByID(ctx, vendorOrgID)
	if err != nil {
		return notFound(err, "Vendor organization not found")
	}
	if org.OwnerID != userID {
		return domainerrors.Forbidden("You do not own this organization")
	}
	return nil
}

func newProduct(in *entities.ProductInput) *entities.Product {
	p := &entities.Product{
		ID:          utils.GenerateUUIDv7(),
		VendorOrgID: in.VendorOrgID,
		Name:        in.Name,
		Brand:       in.Brand,
		Category:    in.Category,
		Unit:        in.Unit,
	}
	if in.Description != "" {
		p.Description = null.StringFrom(in.Description)
	}
	if in.Image != "" {
		p.Image = null.StringFrom(in.Image)
	}
	return p
}
