package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
)

func TestUserRepository_CRUDAndList(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		ID:            uuid.New(),
		FirstName:     "Priya",
		LastName:      "Sharma",
		Email:         "priya@blockpharma.test",
		PasswordHash:  "hash",
		Role:          entities.UserRoleUser,
		WalletAddress: "0xd1134dDcf76cff8E1D0475648B56CfAA521B5EFd",
	}
	require.NoError(t, repo.Create(ctx, u))
	require.False(t, u.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.Nil(t, byID.Address)

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	u.FirstName = "Priya Updated"
	u.PhoneNumber = null.StringFrom("9557002280")
	require.NoError(t, repo.Update(ctx, u))
	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "hash2"))
	require.NoError(t, repo.UpdateRole(ctx, u.ID, entities.UserRolePharmacy))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Priya Updated", got.FirstName)
	require.Equal(t, "9557002280", got.PhoneNumber.String)
	require.Equal(t, "hash2", got.PasswordHash)
	require.Equal(t, entities.UserRolePharmacy, got.Role)

	seedUser(t, db, entities.UserRoleSupplier)
	items, total, err := repo.List(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(2), total)

	all, _, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := seedUser(t, db, entities.UserRoleUser)
	dup := &entities.User{
		ID: uuid.New(), FirstName: "X", LastName: "Y", Email: first.Email,
		PasswordHash: "hash", Role: entities.UserRoleUser, WalletAddress: "0x1",
	}
	err := repo.Create(ctx, dup)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	taken, err := repo.EmailTaken(ctx, first.Email)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.EmailTaken(ctx, "free@blockpharma.test")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestUserRepository_SoftDeleteKeepsRow(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, entities.UserRoleUser)
	require.NoError(t, repo.SoftDelete(ctx, u.ID))

	_, err := repo.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = repo.GetByEmail(ctx, u.Email)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.Equal(t, int64(1), countRows(t, db, "users"))

	// the email stays reserved
	taken, err := repo.EmailTaken(ctx, u.Email)
	require.NoError(t, err)
	require.True(t, taken)

	users, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Empty(t, users)
	require.Zero(t, total)

	require.ErrorIs(t, repo.SoftDelete(ctx, u.ID), domainerrors.ErrNotFound)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@blockpharma.test")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.User{ID: id, Role: entities.UserRoleUser})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdatePassword(ctx, id, "hash")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateRole(ctx, id, entities.UserRoleAdmin)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAddressRepository_OnePerUser(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	users := NewUserRepository(db)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, entities.UserRolePharmacy)
	addr := &entities.Address{
		ID: uuid.New(), UserID: u.ID, Street: "Rajpur Road", City: "Dehradun",
		State: "Uttarakhand", Country: "India", ZipCode: "248001",
	}
	require.NoError(t, repo.Create(ctx, addr))

	second := *addr
	second.ID = uuid.New()
	require.ErrorIs(t, repo.Create(ctx, &second), domainerrors.ErrAlreadyExists)

	addr.City = "Rishikesh"
	require.NoError(t, repo.Update(ctx, addr))

	got, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Rishikesh", got.City)

	withAddress, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, withAddress.Address)
	require.Equal(t, "248001", withAddress.Address.ZipCode)

	require.NoError(t, repo.DeleteByUserID(ctx, u.ID))
	_, err = repo.GetByUserID(ctx, u.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, addr), domainerrors.ErrNotFound)
}

func TestAddressRepository_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewAddressRepository(db)

	err := repo.Create(context.Background(), &entities.Address{
		ID: uuid.New(), UserID: uuid.New(), Street: "s", City: "c", State: "st", Country: "in", ZipCode: "1",
	})
	require.ErrorIs(t, err, domainerrors.ErrConstraintViolation)
}
