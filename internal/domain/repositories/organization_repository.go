package repositories

import (
	"context"

	"github.com/google/uuid"

	"blockpharma.backend/internal/domain/entities"
)

// VendorOrganizationRepository defines vendor organization data operations
type VendorOrganizationRepository interface {
	Create(ctx context.Context, org *entities.VendorOrganization) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorOrganization, error)
	// EmailTaken and GSTINTaken ignore the row identified by excludeID (uuid.Nil excludes nothing).
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	GSTINTaken(ctx context.Context, gstin string, excludeID uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.VendorOrganization, error)
	List(ctx context.Context) ([]*entities.VendorOrganization, error)
	Update(ctx context.Context, org *entities.VendorOrganization) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PharmacyOutletRepository defines pharmacy outlet data operations
type PharmacyOutletRepository interface {
	Create(ctx context.Context, outlet *entities.PharmacyOutlet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PharmacyOutlet, error)
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	GSTINTaken(ctx context.Context, gstin string, excludeID uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.PharmacyOutlet, error)
	List(ctx context.Context) ([]*entities.PharmacyOutlet, error)
	Update(ctx context.Context, outlet *entities.PharmacyOutlet) error
	Delete(ctx context.Context, id uuid.UUID) error
}
