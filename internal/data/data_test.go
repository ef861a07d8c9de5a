package data

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/paras-gg/belajarbareng-fin/internal/conf"
	"github.com/paras-gg/belajarbareng-fin/internal/data/model"
)

// newTestData opens an in-memory database with the production gorm options
// (TranslateError in particular, so uniqueness violations translate the same
// way they do against postgres) and the real schema.
func newTestData(t *testing.T) *Data {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PremiumPackage{}, &model.Profile{}, &model.Transaction{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &Data{db: db}
}

// closeDB kills the underlying pool so the next query fails like a store
// outage would.
func closeDB(t *testing.T, d *Data) {
	t.Helper()
	sqlDB, err := d.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestNewDBRejectsUnknownDriver(t *testing.T) {
	c := &conf.Bootstrap{Data: &conf.Data{}}
	c.Data.Database.Driver = "mysql"
	c.Data.Database.Source = "user:pass@tcp(localhost)/app"

	assert.Panics(t, func() { NewDB(c) })
}
