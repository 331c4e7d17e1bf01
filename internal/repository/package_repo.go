package repository

import (
	"context"

	"github.com/Gowtham121104/eventura-backend/internal/models"
	"gorm.io/gorm"
)

// PackageRepository is the read side of the catalog. The recommendation
// engine relies on the rating DESC, price ASC ordering as its tie-break.
type PackageRepository interface {
	FindActiveByEventType(ctx context.Context, eventType string) ([]models.Package, error)
	FindActive(ctx context.Context, eventType string) ([]models.Package, error)
	FindByID(ctx context.Context, id uint) (*models.Package, error)
	Create(ctx context.Context, pkg *models.Package) error
	Update(ctx context.Context, pkg *models.Package) error
	AddReview(ctx context.Context, review *models.Review) error
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) FindActiveByEventType(ctx context.Context, eventType string) ([]models.Package, error) {
	var packages []models.Package
	err := r.db.WithContext(ctx).
		Where("status = ? AND event_type = ?", models.PackageStatusActive, eventType).
		Order("rating DESC, price ASC").
		Find(&packages).Error
	return packages, err
}

// FindActive lists active packages, optionally narrowed to one event type.
func (r *packageRepository) FindActive(ctx context.Context, eventType string) ([]models.Package, error) {
	var packages []models.Package
	q := r.db.WithContext(ctx).Where("status = ?", models.PackageStatusActive)
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}
	err := q.Order("rating DESC, price ASC").Find(&packages).Error
	return packages, err
}

func (r *packageRepository) FindByID(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) Update(ctx context.Context, pkg *models.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

// AddReview inserts the review and recomputes the package's average rating
// in the same transaction.
func (r *packageRepository) AddReview(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE packages
			SET rating = (SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE package_id = ? AND deleted_at IS NULL)
			WHERE id = ?`, review.PackageID, review.PackageID).Error
	})
}
