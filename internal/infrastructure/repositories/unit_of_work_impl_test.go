package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blockpharma.backend/internal/domain/entities"
)

func TestUnitOfWork_DoCommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	u := &UnitOfWorkImpl{db: db}
	users := NewUserRepository(db)

	// commit path
	err := u.Do(context.Background(), func(ctx context.Context) error {
		return users.Create(ctx, &entities.User{
			ID: uuid.New(), FirstName: "A", LastName: "B", Email: "commit@blockpharma.test",
			PasswordHash: "hash", Role: entities.UserRoleUser, WalletAddress: "0x1",
		})
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), countRows(t, db, "users"))

	// rollback path
	err = u.Do(context.Background(), func(ctx context.Context) error {
		if err := users.Create(ctx, &entities.User{
			ID: uuid.New(), FirstName: "A", LastName: "B", Email: "rollback@blockpharma.test",
			PasswordHash: "hash", Role: entities.UserRoleUser, WalletAddress: "0x1",
		}); err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	require.EqualError(t, err, "force rollback")
	require.Equal(t, int64(1), countRows(t, db, "users"), "second insert must be rolled back")
}

func TestUnitOfWork_NestedDoJoinsOuterTransaction(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	u := &UnitOfWorkImpl{db: db}

	err := u.Do(context.Background(), func(ctx context.Context) error {
		outer := GetDB(ctx, db)
		return u.Do(ctx, func(inner context.Context) error {
			require.Same(t, outer, GetDB(inner, db))
			return errors.New("inner failure")
		})
	})
	require.Error(t, err)
}

func TestUnitOfWork_GetDB(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	require.NotNil(t, u.GetDB(context.Background()))

	tx := db.Begin()
	txCtx := context.WithValue(context.Background(), txKey, tx)
	require.Equal(t, tx, u.GetDB(txCtx))
	tx.Rollback()
}

func TestUnitOfWork_DoBeginFailure(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = u.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
}

func TestUnitOfWork_DoCommitFailure_WithHook(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	u := &UnitOfWorkImpl{db: db}

	origCommit := commitTx
	t.Cleanup(func() { commitTx = origCommit })
	commitTx = func(tx *gorm.DB) error {
		return errors.New("forced commit fail")
	}

	err := u.Do(context.Background(), func(ctx context.Context) error {
		return GetDB(ctx, db).Exec("DELETE FROM users").Error
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to commit transaction")
}

func TestUnitOfWork_PanicRollsBack(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	u := &UnitOfWorkImpl{db: db}

	require.Panics(t, func() {
		_ = u.Do(context.Background(), func(ctx context.Context) error {
			seedUser(t, GetDB(ctx, db), entities.UserRoleUser)
			panic("boom")
		})
	})
	require.Equal(t, int64(0), countRows(t, db, "users"))
}
