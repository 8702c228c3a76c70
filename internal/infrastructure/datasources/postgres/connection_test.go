package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blockpharma.backend/internal/config"
)

func TestNewConnection_PingFailure(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "x",
		Password: "x",
		DBName:   "x",
		SSLMode:  "disable",
	}

	db, err := NewConnection(cfg)
	require.Error(t, err)
	require.Nil(t, db)
	require.Contains(t, err.Error(), "failed to ping database")
}

func TestNewConnection_OpenAndPingHooks(t *testing.T) {
	origOpen := sqlOpen
	origPing := dbPing
	t.Cleanup(func() {
		sqlOpen = origOpen
		dbPing = origPing
	})

	cfg := config.DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable",
		MaxOpenConn: 4, MaxIdleConn: 2,
	}

	sqlOpen = func(_, _ string) (*sql.DB, error) {
		return nil, errors.New("open failed")
	}
	db, err := NewConnection(cfg)
	require.Error(t, err)
	require.Nil(t, db)
	require.Contains(t, err.Error(), "failed to open database")

	mockDB, _, mockErr := sqlmock.New()
	require.NoError(t, mockErr)
	t.Cleanup(func() { _ = mockDB.Close() })
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		require.Equal(t, "postgres", driver)
		require.Equal(t, "postgres://u:p@localhost:5432/d?sslmode=disable", dsn)
		return mockDB, nil
	}
	dbPing = func(*sql.DB) error { return nil }

	db, err = NewConnection(cfg)
	require.NoError(t, err)
	require.Equal(t, 4, db.Stats().MaxOpenConnections)
}

func TestNewGormDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := NewGormDB(mockDB)
	require.NoError(t, err)
	require.True(t, db.Config.TranslateError)
	require.Equal(t, "postgres", db.Dialector.Name())

	mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	require.Equal(t, 1, one)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_CreatesEveryTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrate?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	for _, table := range []string{
		"users", "addresses", "vendor_organizations", "pharmacy_outlets", "products",
		"orders", "order_items", "inventory_items", "blockchain_records",
	} {
		require.True(t, db.Migrator().HasTable(table), table)
	}
}
