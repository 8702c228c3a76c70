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

// PharmacyUsecase handles pharmacy outlet logic
type PharmacyUsecase struct {
	outletRepo repositories.PharmacyOutletRepository
	userRepo   repositories.UserRepository
}

// NewPharmacyUsecase creates a new pharmacy usecase
func NewPharmacyUsecase(outletRepo repositories.PharmacyOutletRepository, userRepo repositories.UserRepository) *PharmacyUsecase {
	return &PharmacyUsecase{outletRepo: outletRepo, userRepo: userRepo}
}

// AddOutlet registers an outlet for a PHARMACY user
func (u *PharmacyUsecase) AddOutlet(ctx context.Context, ownerID uuid.UUID, input *entities.BusinessInput) (*entities.PharmacyOutlet, error) {
	if _, err := requireRole(ctx, u.userRepo, ownerID, entities.UserRolePharmacy, "Only pharmacy users can register outlets"); err != nil {
		return nil, err
	}
	if err := checkBusinessUnique(ctx, u.outletRepo, input.Email, input.GSTIN, uuid.Nil); err != nil {
		return nil, err
	}

	outlet := &entities.PharmacyOutlet{
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
		outlet.Website = null.StringFrom(input.Website)
	}

	if err := u.outletRepo.Create(ctx, outlet); err != nil {
		return nil, err
	}
	logger.Info(ctx, "pharmacy outlet created", zap.String("outletId", outlet.ID.String()))
	return outlet, nil
}

// GetOutlet returns one outlet
func (u *PharmacyUsecase) GetOutlet(ctx context.Context, id uuid.UUID) (*entities.PharmacyOutlet, error) {
	outlet, err := u.outletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Pharmacy outlet not found")
	}
	return outlet, nil
}

// ListAll returns every outlet
func (u *PharmacyUsecase) ListAll(ctx context.Context) ([]*entities.PharmacyOutlet, error) {
	return u.outletRepo.List(ctx)
}

// ListMine returns the outlets owned by ownerID
func (u *PharmacyUsecase) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*entities.PharmacyOutlet, error) {
	return u.outletRepo.ListByOwner(ctx, ownerID)
}

// UpdateOutlet applies a partial update by the owner
func (u *PharmacyUsecase) UpdateOutlet(ctx context.Context, id, userID uuid.UUID, input *entities.BusinessUpdateInput) (*entities.PharmacyOutlet, error) {
	outlet, err := u.ownedOutlet(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	f := fieldsFromUpdate(input)
	email, gstin := "", ""
	if f.Email != "" && f.Email != outlet.Email {
		email = f.Email
	}
	if f.GSTIN != "" && f.GSTIN != outlet.GSTIN {
		gstin = f.GSTIN
	}
	if err := checkBusinessUnique(ctx, u.outletRepo, email, gstin, outlet.ID); err != nil {
		return nil, err
	}

	outlet.BusinessName = changed(outlet.BusinessName, f.BusinessName)
	outlet.Email = changed(outlet.Email, f.Email)
	outlet.GSTIN = changed(outlet.GSTIN, f.GSTIN)
	outlet.PhoneNumber = changed(outlet.PhoneNumber, f.PhoneNumber)
	outlet.Street = changed(outlet.Street, f.Street)
	outlet.City = changed(outlet.City, f.City)
	outlet.State = changed(outlet.State, f.State)
	outlet.Pincode = changed(outlet.Pincode, f.Pincode)
	if f.Website != "" {
		outlet.Website = null.StringFrom(f.Website)
	}

	if err := u.outletRepo.Update(ctx, outlet); err != nil {
		return nil, err
	}
	return outlet, nil
}

// DeleteOutlet hard-deletes an outlet owned by userID
func (u *PharmacyUsecase) DeleteOutlet(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := u.ownedOutlet(ctx, id, userID); err != nil {
		return err
	}
	if err := u.outletRepo.Delete(ctx, id); err != nil {
		return notFound(err, "Pharmacy outlet not found")
	}
	return nil
}

func (u *PharmacyUsecase) ownedOutlet(ctx context.Context, id, userID uuid.UUID) (*entities.PharmacyOutlet, error) {
	outlet, err := u.GetOutlet(ctx, id)
	if err != nil {
		return nil, err
	}
	if outlet.OwnerID != userID {
		return nil, domainerrors.Forbidden("You do not own this outlet")
	}
	return outlet, nil
}
