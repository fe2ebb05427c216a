// Package gorm persists long-term memory in a relational database:
// preference rows keyed by (user, type, value) and an append-only
// conversation turn log. SQLite serves development, Postgres production.
package gorm

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PreferenceModel is one learned preference row.
type PreferenceModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"index:idx_pref_identity,unique;size:64;not null"`
	Type      string    `gorm:"index:idx_pref_identity,unique;size:32;not null"`
	Value     string    `gorm:"index:idx_pref_identity,unique;size:128;not null"`
	Strength  float64   `gorm:"not null"`
	LastSeen  time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PreferenceModel) TableName() string { return "preferences" }

// TurnModel is one logged conversation turn.
type TurnModel struct {
	ID           string    `gorm:"primaryKey;size:36"`
	UserID       string    `gorm:"index;size:64;not null"`
	SessionID    string    `gorm:"index;size:64;not null"`
	UserText     string    `gorm:"type:text;not null"`
	ResponseText string    `gorm:"type:text"`
	Intent       string    `gorm:"size:32"`
	CreatedAt    time.Time `gorm:"index"`
}

func (TurnModel) TableName() string { return "turns" }

// Open connects with the configured driver and migrates the schema.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}
	if err := db.AutoMigrate(&PreferenceModel{}, &TurnModel{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return db, nil
}
