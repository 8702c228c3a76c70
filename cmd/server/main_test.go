package main

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blockpharma.backend/internal/config"
	plog "blockpharma.backend/pkg/logger"
	"blockpharma.backend/pkg/redis"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origMigrate := migrate
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		migrate = origMigrate
		runServer = origRunServer
	})

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "18080", Env: "development"},
		Database: config.DatabaseConfig{
			Host:        "localhost",
			Port:        5432,
			User:        "postgres",
			Password:    "postgres",
			DBName:      "blockpharma",
			SSLMode:     "disable",
			AutoMigrate: true,
		},
		Redis:  config.RedisConfig{URL: "redis://localhost:6379", IdempotencyTTL: time.Hour},
		JWT:    config.JWTConfig{Secret: "secret", Expiry: time.Hour},
		Orders: config.OrdersConfig{StrictTransitions: true},
	}
}

func sqliteOpener(name string) func(config.DatabaseConfig) (*gorm.DB, func() error, error) {
	return func(config.DatabaseConfig) (*gorm.DB, func() error, error) {
		db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
		if err != nil {
			return nil, nil, err
		}
		return db, func() error { return nil }, nil
	}
}

func TestRunMainProcess_StartsWithoutRedis(t *testing.T) {
	withMainHooks(t)
	openDB = sqliteOpener("main_redis_down")
	initRedis = func(string, string) error {
		redis.SetClient(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"}))
		return errors.New("redis down")
	}
	started := false
	runServer = func(*gin.Engine, string) error {
		started = true
		assert.Nil(t, redis.GetClient())
		return nil
	}

	require.NoError(t, runMainProcess())
	assert.True(t, started)
}

func TestRunMainProcess_RedisNotConfigured(t *testing.T) {
	withMainHooks(t)
	openDB = sqliteOpener("main_redis_unset")
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Redis.URL = ""
		return cfg
	}
	initRedis = func(string, string) error {
		t.Fatal("redis must not be dialled without a URL")
		return nil
	}
	runServer = func(*gin.Engine, string) error { return nil }

	require.NoError(t, runMainProcess())
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)
	openDB = func(config.DatabaseConfig) (*gorm.DB, func() error, error) {
		return nil, nil, errors.New("db open failed")
	}

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestRunMainProcess_MigrateError(t *testing.T) {
	withMainHooks(t)
	openDB = sqliteOpener("main_migrate_err")
	migrate = func(*gorm.DB) error { return errors.New("bad schema") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate")
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)
	openDB = sqliteOpener("main_server_err")
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)
	openDB = sqliteOpener("main_success")

	var routes gin.RoutesInfo
	runServer = func(r *gin.Engine, port string) error {
		assert.Equal(t, "18080", port)
		routes = r.Routes()
		return nil
	}

	require.NoError(t, runMainProcess())
	assert.NotEmpty(t, routes)
}
