package data

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/paras-gg/belajarbareng-fin/internal/conf"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewDB,
	NewPremiumPackageRepo,
	NewProfileRepo,
	NewTransactionRepo,
	NewIdentityClient,
	NewMidtransClient,
)

// Data holds the shared database handle. There is deliberately no
// cross-stage transaction manager here: the pending ledger row must commit
// before the gateway call starts, so nothing may span the two.
type Data struct {
	db *gorm.DB
}

// NewData .
func NewData(db *gorm.DB, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)
	cleanup := func() {
		helper.Info("closing the data resources")
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return &Data{db: db}, cleanup, nil
}

// NewDB opens the database pool. TranslateError is required: duplicate-key
// detection in the transaction repo relies on gorm's portable sentinels. The
// DSN carries service-role credentials, so every query here bypasses the
// store's row-level policies.
func NewDB(c *conf.Bootstrap) *gorm.DB {
	var dialector gorm.Dialector
	switch driver := c.Data.DriverName(); driver {
	case "postgres":
		dialector = postgres.Open(c.Data.Database.Source)
	default:
		panic(fmt.Sprintf("unsupported database driver %q", driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	if n := c.Data.Database.MaxIdleConns; n > 0 {
		sqlDB.SetMaxIdleConns(n)
	}
	if n := c.Data.Database.MaxOpenConns; n > 0 {
		sqlDB.SetMaxOpenConns(n)
	}
	if d := c.Data.ConnMaxLifetime(); d > 0 {
		sqlDB.SetConnMaxLifetime(d)
	}
	return db
}
