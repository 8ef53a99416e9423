package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"employee-tracker/internal/config"
	"employee-tracker/internal/models"
)

func Connect(cfg config.DBConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Type, err)
	}

	log.Info("connected to the database", zap.String("type", cfg.Type), zap.String("name", target(cfg)))
	return database, nil
}

// EnsureSchema creates the department, role and employee tables when missing.
func EnsureSchema(ctx context.Context, database *gorm.DB) error {
	if err := database.WithContext(ctx).AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func target(cfg config.DBConfig) string {
	switch {
	case cfg.Type == config.DBTypeSQLite && cfg.URL == "":
		return cfg.Path
	case cfg.URL != "":
		return "url"
	default:
		return cfg.Host + "/" + cfg.Name
	}
}
