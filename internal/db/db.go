package db

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barbearia-app/booking-api/internal/config"
	"github.com/barbearia-app/booking-api/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Authoritative double-booking guard: at most one non-canceled
	// appointment per (barber, date, time). Canceled rows stay behind for
	// history and never block the slot.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (barber_id, date, time)
        WHERE status <> 'canceled'
    `).Error; err != nil {
		return nil, fmt.Errorf("create slot index: %w", err)
	}

	if err := seed(db, cfg); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return db, nil
}

// seed bootstraps the admin account and an initial barber pair on an empty
// database so the shop is usable out of the box.
func seed(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword != "" {
		var count int64
		db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)

		if count == 0 {
			hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			admin := models.User{
				Name:         "Administrador",
				Email:        cfg.AdminEmail,
				PasswordHash: string(hashed),
				Role:         models.RoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				return err
			}
		}
	}

	var barbers int64
	db.Model(&models.Barber{}).Count(&barbers)
	if barbers == 0 {
		defaults := []models.Barber{
			{Name: "Barbeiro 1", Active: true},
			{Name: "Barbeiro 2", Active: true},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	return nil
}
