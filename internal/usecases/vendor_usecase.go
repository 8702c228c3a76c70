package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/domain/repositories"
	"blockpharma.backend/pkg/logger"
	"blockpharma.backend/pkg/utils"
)

// VendorUsecase handles vendor organization logic
type VendorUsecase struct {
	vendorRepo repositories.VendorOrganizationRepository
	userRepo   repositories.UserRepository
}

// NewVendorUsecase creates a new vendor usecase
func NewVendorUsecase(vendorRepo repositories.VendorOrganizationRepository, userRepo repositories.UserRepository) *VendorUsecase {
	return &VendorUsecase{vendorRepo: vendorRepo, userRepo: userRepo}
}

// AddOrganization registers an organization for a SUPPLIER user
func (u *VendorUsecase) AddOrganization(ctx context.Context, ownerID uuid.UUID, input *entities.BusinessInput) (*entities.VendorOrganization, error) {
	if _, err := requireRole(ctx, u.userRepo, ownerID, entities.UserRoleSupplier, "Only suppliers can register organizations"); err != nil {
		return nil, err
	}
	if err := checkBusinessUnique(ctx, u.vendorRepo, input.Email, input.GSTIN, uuid.Nil); err != nil {
		return nil, err
	}

	org := &entities.VendorOrganization{
		ID:           utils.GenerateUUIDv7(),
		OwnerID:      ownerID,
		BusinessName: input.BusinessName,
		Email:        input.Email,
		GSTIN:        input.GSTIN,
		PhoneNumber:  input.PhoneNumber,
		Street:       input.Street,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
		IsActive:     true,
	}
	if input.Website != "" {
		org.Website = null.StringFrom(input.Website)
	}

	if err := u.vendorRepo.Create(ctx, org); err != nil {
		return nil, err
	}
	logger.Info(ctx, "vendor organization created", zap.String("orgId", org.ID.String()))
	return org, nil
}

// GetOrganization returns one organization
func (u *VendorUsecase) GetOrganization(ctx context.Context, id uuid.UUID) (*entities.VendorOrganization, error) {
	org, err := u.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Organization not found")
	}
	return org, nil
}

// ListMine returns the organizations owned by ownerID
func (u *VendorUsecase) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*entities.VendorOrganization, error) {
	return u.vendorRepo.ListByOwner(ctx, ownerID)
}

// ListAll returns every organization
func (u *VendorUsecase) ListAll(ctx context.Context) ([]*entities.VendorOrganization, error) {
	return u.vendorRepo.List(ctx)
}

// UpdateOrganization applies a partial update by the owner. Uniqueness is
// rechecked only for values that change.
func (u *VendorUsecase) UpdateOrganization(ctx context.Context, id, userID uuid.UUID, input *entities.BusinessUpdateInput) (*entities.VendorOrganization, error) {
	org, err := u.ownedOrganization(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	f := fieldsFromUpdate(input)
	email, gstin := "", ""
	if f.Email != "" && f.Email != org.Email {
		email = f.Email
	}
	if f.GSTIN != "" && f.GSTIN != org.GSTIN {
		gstin = f.GSTIN
	}
	if err := checkBusinessUnique(ctx, u.vendorRepo, email, gstin, org.ID); err != nil {
		return nil, err
	}

	org.BusinessName = changed(org.BusinessName, f.BusinessName)
	org.Email = changed(org.Email, f.Email)
	org.GSTIN = changed(org.GSTIN, f.GSTIN)
	org.PhoneNumber = changed(org.PhoneNumber, f.PhoneNumber)
	org.Street = changed(org.Street, f.Street)
	org.City = changed(org.City, f.City)
	org.State = changed(org.State, f.State)
	org.Pincode = changed(org.Pincode, f.Pincode)
	if f.Website != "" {
		org.Website = null.StringFrom(f.Website)
	}

	if err := u.vendorRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// DeleteOrganization hard-deletes an organization. The owner or an admin may delete.
func (u *VendorUsecase) DeleteOrganization(ctx context.Context, id, userID uuid.UUID, role entities.UserRole) error {
	if _, err := u.manageableOrganization(ctx, id, userID, role); err != nil {
		return err
	}
	if err := u.vendorRepo.Delete(ctx, id); err != nil {
		return notFound(err, "Organization not found")
	}
	return nil
}

// ToggleStatus flips isActive. The owner or an admin may toggle.
func (u *VendorUsecase) ToggleStatus(ctx context.Context, id, userID uuid.UUID, role entities.UserRole) (*entities.VendorOrganization, error) {
	org, err := u.manageableOrganization(ctx, id, userID, role)
	if err != nil {
		return nil, err
	}
	org.IsActive = !org.IsActive
	if err := u.vendorRepo.SetActive(ctx, id, org.IsActive); err != nil {
		return nil, notFound(err, "Organization not found")
	}
	return org, nil
}

func (u *VendorUsecase) ownedOrganization(ctx context.Context, id, userID uuid.UUID) (*entities.VendorOrganization, error) {
	org, err := u.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.OwnerID != userID {
		return nil, domainerrors.Forbidden("You do not own this organization")
	}
	return org, nil
}

func (u *VendorUsecase) manageableOrganization(ctx context.Context, id, userID uuid.UUID, role entities.UserRole) (*entities.VendorOrganization, error) {
	if role == entities.UserRoleAdmin {
		return u.GetOrganization(ctx, id)
	}
	return u.ownedOrganization(ctx, id, userID)
}
