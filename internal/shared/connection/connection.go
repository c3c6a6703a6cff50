package connection

import (
	"fmt"
	"time"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/config"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/department"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/employee"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/user"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const retryInterval = 3 * time.Second

// Connect dials PostgreSQL with bounded retries and configures the pool.
// When every attempt fails it still hands back a lazily-opened handle so the
// process can start; queries against it surface store errors instead.
func Connect(cfg config.Database) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)

	var lastErr error

	for i := 1; i <= cfg.ConnectRetries; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			lastErr = err
			zap.L().Warn("database open failed",
				zap.Int("attempt", i),
				zap.Int("max_attempts", cfg.ConnectRetries),
				zap.Error(err),
			)
			time.Sleep(retryInterval)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			time.Sleep(retryInterval)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			zap.L().Warn("database ping failed",
				zap.Int("attempt", i),
				zap.Int("max_attempts", cfg.ConnectRetries),
				zap.Error(err),
			)
			time.Sleep(retryInterval)
			continue
		}

		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Hour)

		zap.L().Info("database connection established",
			zap.String("host", cfg.Host),
			zap.String("database", cfg.Name),
		)
		return db, nil
	}

	zap.L().Error("database unreachable, starting degraded",
		zap.Int("attempts", cfg.ConnectRetries),
		zap.Error(lastErr),
	)

	// Degraded handle: no ping at open time, so startup succeeds and each
	// query fails with a store error until the database comes back.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		return nil, fmt.Errorf("open degraded database handle: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	return db, nil
}

// Ping reports whether the handle can currently reach the store.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

var seedDepartments = []department.Department{
	{Name: "Engineering", Description: "Software development and infrastructure"},
	{Name: "Human Resources", Description: "People operations and recruitment"},
	{Name: "Finance", Description: "Accounting, budgeting and payroll"},
	{Name: "Marketing", Description: "Brand, campaigns and communications"},
	{Name: "Operations", Description: "Facilities and day-to-day operations"},
}

// Provision creates missing tables and seeds the reference departments.
// Safe to run on every startup: AutoMigrate is additive and the seed only
// fires while the departments table is empty.
func Provision(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&department.Department{},
		&employee.Employee{},
		&user.User{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var count int64
	if err := db.Model(&department.Department{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count departments: %w", err)
	}
	if count == 0 {
		if err := db.Create(&seedDepartments).Error; err != nil {
			return fmt.Errorf("seed departments: %w", err)
		}
		zap.L().Info("seeded reference departments", zap.Int("count", len(seedDepartments)))
	}

	return nil
}

// Close releases the underlying pool. Used by the shutdown path.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
