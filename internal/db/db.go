package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/6laercio/saude-integrada-api/internal/config"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsDev() {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	log.Info().
		Int("max_open_conns", cfg.DBMaxOpenConns).
		Int("max_idle_conns", cfg.DBMaxIdleConns).
		Msg("database connected")

	return db, nil
}

// postgresConstraints are applied after AutoMigrate. The exclusion
// constraint is the final authority on double booking.
var postgresConstraints = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
	) THEN
		ALTER TABLE appointments
			ADD CONSTRAINT appointments_no_overlap
			EXCLUDE USING gist (
				doctor_id WITH =,
				tstzrange(start_at, end_at, '[)') WITH &&
			)
			WHERE (status = 'scheduled');
	END IF;
END $$`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Exam{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	for _, stmt := range postgresConstraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}
