package repositories

import (
	"context"

	"github.com/google/uuid"

	"blockpharma.backend/internal/domain/entities"
)

// UserRepository defines user data operations. Soft-deleted users are
// invisible to every read except EmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error)
}

// AddressRepository defines address data operations
type AddressRepository interface {
	Create(ctx context.Context, address *entities.Address) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Address, error)
	Update(ctx context.Context, address *entities.Address) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
