package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"courtflow/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{TranslateError: true},
	)
}

// Migrate creates the schema and the partial unique index that backstops
// booking races: even if two transactions both pass the overlap scan, only
// one CONFIRMED row per (court_id, start_time) can commit.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Court{},
		&domain.Coach{},
		&domain.CoachAvailability{},
		&domain.Equipment{},
		&domain.Booking{},
		&domain.BookingItem{},
		&domain.PricingRule{},
		&domain.WaitlistEntry{},
	); err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
		 ON bookings (court_id, start_time)
		 WHERE status = 'CONFIRMED'`,
	).Error
}
