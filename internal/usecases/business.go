package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/domain/repositories"
)

// uniquenessChecker is implemented by both business repositories
type uniquenessChecker interface {
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	GSTINTaken(ctx context.Context, gstin string, excludeID uuid.UUID) (bool, error)
}

// checkBusinessUnique rejects an email or GSTIN already used by another row.
// Empty values are not checked.
func checkBusinessUnique(ctx context.Context, repo uniquenessChecker, email, gstin string, excludeID uuid.UUID) error {
	if email != "" {
		taken, err := repo.EmailTaken(ctx, email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return domainerrors.AlreadyExists("Email is already registered")
		}
	}
	if gstin != "" {
		taken, err := repo.GSTINTaken(ctx, gstin, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return domainerrors.AlreadyExists("GSTIN is already registered")
		}
	}
	return nil
}

// requireRole loads a user and checks the stored role, which may be newer than the token's.
func requireRole(ctx context.Context, users repositories.UserRepository, userID uuid.UUID, role entities.UserRole, message string) (*entities.User, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	if user.Role != role {
		return nil, domainerrors.Forbidden(message)
	}
	return user, nil
}

// notFound replaces ErrNotFound with a named 404 and passes other errors through
func notFound(err error, message string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(message)
	}
	return err
}

type businessFields struct {
	BusinessName, Email, GSTIN, PhoneNumber, Website, Street, City, State, Pincode string
}

func fieldsFromUpdate(in *entities.BusinessUpdateInput) businessFields {
	return businessFields{
		BusinessName: in.BusinessName,
		Email:        in.Email,
		GSTIN:        in.GSTIN,
		PhoneNumber:  in.PhoneNumber,
		Website:      in.Website,
		Street:       in.Street,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
	}
}

// changed returns the value to store: next when set, otherwise current
func changed(current, next string) string {
	if next == "" {
		return current
	}
	return next
}
