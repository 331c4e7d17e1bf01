package repository

import (
	"context"

	"github.com/Gowtham121104/eventura-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository is the booking store used by the status workflow. The
// tx argument is the transaction the caller is running in; fetch-with-lock
// and the writes that follow it must share one transaction.
type BookingRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	Update(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	AppendHistory(ctx context.Context, tx *gorm.DB, entry *models.BookingStatusHistory) error
	Create(ctx context.Context, booking *models.Booking) error
	FindByClient(ctx context.Context, clientID uint) ([]models.Booking, error)
	FindByStatus(ctx context.Context, status models.BookingStatus, limit, offset int) ([]models.Booking, int64, error)
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// FindByIDForUpdate locks the booking row, serializing concurrent
// approve/reject attempts against the same booking.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Client").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) AppendHistory(ctx context.Context, tx *gorm.DB, entry *models.BookingStatusHistory) error {
	return tx.WithContext(ctx).Create(entry).Error
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByClient(ctx context.Context, clientID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status models.BookingStatus, limit, offset int) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ?", status).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Preload("Client").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	return bookings, total, err
}

func (r *bookingRepository) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	type row struct {
		Status models.BookingStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.BookingStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
