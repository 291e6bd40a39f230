package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/rafabene/usermanager-backend/internal/domain/ports"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate aplica o schema. Em PostgreSQL usa as migrações SQL versionadas
// (goose); em SQLite, usado em desenvolvimento e testes, usa AutoMigrate.
func Migrate(ctx context.Context, db *gorm.DB, driver string, logg ports.Logger) error {
	if driver == DriverSQLite {
		if err := db.WithContext(ctx).AutoMigrate(AllModels()...); err != nil {
			return fmt.Errorf("automigrate: %w", err)
		}
		logg.Info("schema migrated", "driver", driver, "strategy", "automigrate")
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	logg.Info("schema migrated", "driver", driver, "strategy", "goose", "version", version)
	return nil
}
