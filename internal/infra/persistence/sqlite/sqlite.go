// Package sqlite contains the concrete implementation of the persistence
// layer using GORM over a local SQLite database file.
package sqlite

import (
	"context"
	"log/slog"

	"tracker/config"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/errors"
	"tracker/internal/infra/persistence/model"

	glebsqlite "github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database file and prepares the schema.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.SQLite.Path, newGormSlogLogger(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to a SQLite database at path and migrates the schema.
// Tests use it directly with ":memory:".
func Open(path string, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(glebsqlite.Open(path), &gorm.Config{
		// SQLite serializes writers anyway; skipping GORM's implicit
		// per-statement transaction keeps single-statement commits cheap.
		// Multi-step operations go through the TransactionManager.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// SQLite allows one writer at a time and an in-memory database exists per
	// connection, so the pool must stay at a single connection.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.AuthorizedDeviceModel{},
		&model.LoginAttemptModel{},
		&model.SyllabusItemModel{},
		&model.DailyTaskModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	return db, nil
}
