package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/domain/repositories"
	"blockpharma.backend/pkg/crypto"
	"blockpharma.backend/pkg/logger"
	"blockpharma.backend/pkg/utils"
)

// TokenIssuer is satisfied by *jwt.JWTService
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email, role string) (string, error)
}

var hashPassword = crypto.HashPassword

// UserUsecase handles identity, profile and address logic
type UserUsecase struct {
	userRepo    repositories.UserRepository
	addressRepo repositories.AddressRepository
	uow         repositories.UnitOfWork
	tokens      TokenIssuer
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	addressRepo repositories.AddressRepository,
	uow repositories.UnitOfWork,
	tokens TokenIssuer,
) *UserUsecase {
	return &UserUsecase{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		uow:         uow,
		tokens:      tokens,
	}
}

// Register creates a user. The role defaults to USER.
func (u *UserUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	taken, err := u.userRepo.EmailTaken(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Conflict("User already exists")
	}

	role := input.Role
	if role == "" {
		role = entities.UserRoleUser
	}
	if role == entities.UserRoleAdmin || !role.IsValid() {
		return nil, domainerrors.BadRequest("role is invalid")
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:            utils.GenerateUUIDv7(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		PasswordHash:  passwordHash,
		Role:          role,
		WalletAddress: input.WalletAddress,
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = null.StringFrom(input.PhoneNumber)
	}
	if input.ProfilePic != "" {
		user.ProfilePic = null.StringFrom(input.ProfilePic)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("User already exists")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a token
func (u *UserUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials("Invalid email or password")
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.InvalidCredentials("Invalid email or password")
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: user}, nil
}

// GetUser returns a non-deleted user with the address loaded
func (u *UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser applies the non-empty fields of input
func (u *UserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		taken, err := u.userRepo.EmailTaken(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domainerrors.Conflict("Email is already in use")
		}
		user.Email = input.Email
	}
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = null.StringFrom(input.PhoneNumber)
	}
	if input.ProfilePic != "" {
		user.ProfilePic = null.StringFrom(input.ProfilePic)
	}
	if input.WalletAddress != "" {
		user.WalletAddress = input.WalletAddress
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpgradeUser changes the role of a user. ADMIN cannot be self-assigned.
func (u *UserUsecase) UpgradeUser(ctx context.Context, id uuid.UUID, role entities.UserRole) (*entities.User, error) {
	if role == entities.UserRoleAdmin || !role.IsValid() {
		return nil, domainerrors.BadRequest("role is invalid")
	}
	if err := u.userRepo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	return u.GetUser(ctx, id)
}

// ChangePassword replaces the password when the current one matches
func (u *UserUsecase) ChangePassword(ctx context.Context, id uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.BadRequest("Current password is incorrect")
	}
	if input.CurrentPassword == input.NewPassword {
		return domainerrors.BadRequest("New password must differ from the current password")
	}

	passwordHash, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, id, passwordHash)
}

// DeleteUser soft-deletes the user and removes the address in one transaction
func (u *UserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.SoftDelete(ctx, id); err != nil {
			return err
		}
		return u.addressRepo.DeleteByUserID(ctx, id)
	})
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("User not found")
	}
	return err
}

// CompleteProfile sets the onboarding fields, stores the address and marks
// the profile as completed.
func (u *UserUsecase) CompleteProfile(ctx context.Context, id uuid.UUID, input *entities.CompleteProfileInput) (*entities.User, error) {
	user, err := u.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Role == entities.UserRoleAdmin {
		return nil, domainerrors.BadRequest("role is invalid")
	}

	if input.Role != "" {
		user.Role = input.Role
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = null.StringFrom(input.PhoneNumber)
	}
	if input.ProfilePic != "" {
		user.ProfilePic = null.StringFrom(input.ProfilePic)
	}
	user.IsProfileCompleted = true

	address := newAddress(id, input.AddressInput())
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Update(ctx, user); err != nil {
			return err
		}
		if user.Address != nil {
			return u.addressRepo.Update(ctx, address)
		}
		return u.addressRepo.Create(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "profile completed", zap.String("userId", id.String()), zap.String("role", string(user.Role)))
	user.Address = address
	return user, nil
}

// AddAddress creates the single address of a user
func (u *UserUsecase) AddAddress(ctx context.Context, userID uuid.UUID, input *entities.AddressInput) (*entities.Address, error) {
	if _, err := u.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	address := newAddress(userID, *input)
	if err := u.addressRepo.Create(ctx, address); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Address already exists for this user")
		}
		return nil, err
	}
	return address, nil
}

// UpdateAddress replaces the address of a user
func (u *UserUsecase) UpdateAddress(ctx context.Context, userID uuid.UUID, input *entities.AddressInput) (*entities.Address, error) {
	address := newAddress(userID, *input)
	if err := u.addressRepo.Update(ctx, address); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Address not found")
		}
		return nil, err
	}
	return u.addressRepo.GetByUserID(ctx, userID)
}

// ListUsers returns non-deleted users, one page at a time
func (u *UserUsecase) ListUsers(ctx context.Context, page utils.Page) ([]*entities.User, utils.PageMeta, error) {
	users, total, err := u.userRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return users, utils.NewPageMeta(total, page), nil
}

func newAddress(userID uuid.UUID, in entities.AddressInput) *entities.Address {
	return &entities.Address{
		ID:      utils.GenerateUUIDv7(),
		UserID:  userID,
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Country: in.Country,
		ZipCode: in.ZipCode,
	}
}
