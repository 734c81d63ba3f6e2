package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var C *gorm.DB

func NewGorm() error {
	source, err := NewSource(viper.GetString("database.driver"), viper.GetString("database.dsn"))
	if err != nil {
		return err
	}
	C = source
	return nil
}

// NewSource opens a connection with the given driver.
// The sqlite driver is limited to a single connection so an in-memory
// database stays the same database for every query.
func NewSource(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	gormLogger := logger.New(&log.Logger, logger.Config{
		SlowThreshold:             0,
		IgnoreRecordNotFoundError: true,
		LogLevel:                  lo.Ternary(viper.GetBool("debug.database"), logger.Info, logger.Silent),
	})

	source, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: viper.GetString("database.prefix"),
		},
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		if conn, err := source.DB(); err == nil {
			conn.SetMaxOpenConns(1)
		}
	}

	return source, nil
}
