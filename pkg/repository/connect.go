package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BrewLake/configs"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

var ErrUnknownDriver = errors.New("unknown warehouse driver")

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	dialector, err := dialectorFor(&conf.Warehouse)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.Warehouse.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.Warehouse.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, err
}

func dialectorFor(conf *configs.Warehouse) (gorm.Dialector, error) {
	switch conf.Driver {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(conf.Path), 0o755); err != nil {
			return nil, err
		}

		return sqlite.Open(conf.Path), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			conf.Host, conf.User, conf.Password, conf.Database, conf.Port)

		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, conf.Driver)
	}
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err != nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}
