package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "shop", Password: "pw", DBName: "storefrontdb", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=shop password=pw dbname=storefrontdb sslmode=disable", cfg.DSN())
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)

	cfg = Config{MaxOpenConns: 3}.withDefaults()
	assert.Equal(t, 3, cfg.MaxOpenConns)
}

func TestOpenGormOverExistingPool(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	configurePool(sqlDB, Config{}.withDefaults())
	assert.Equal(t, 25, sqlDB.Stats().MaxOpenConnections)

	db, err := openGorm(sqlDB)
	require.NoError(t, err)
	assert.Equal(t, "postgres", db.Dialector.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}
