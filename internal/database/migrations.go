package database

import (
	"github.com/Gowtham121104/eventura-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.OrganizerProfile{},
		&models.Package{},
		&models.Review{},
		&models.Booking{},
		&models.BookingStatusHistory{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	// Constrain role and status columns
	db.Exec(`ALTER TABLE users DROP CONSTRAINT IF EXISTS users_role_check`)
	db.Exec(`ALTER TABLE users ADD CONSTRAINT users_role_check CHECK (role IN ('client', 'organizer', 'admin'))`)

	db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_status_check`)
	db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_status_check CHECK (status IN ('PENDING', 'CONFIRMED', 'REJECTED', 'CANCELLED', 'COMPLETED'))`)

	db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_type_check`)
	db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_type_check CHECK (booking_type IN ('event', 'service', 'package'))`)

	db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_guest_count_check`)
	db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_guest_count_check CHECK (guest_count >= 0)`)

	return nil
}
