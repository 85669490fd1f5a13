package repositories

import (
	"context"

	"bloodbridge/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// donorRepository implements DonorRepository interface
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

// Create creates a new donor
func (r *donorRepository) Create(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

// GetByID gets a donor by ID
func (r *donorRepository) GetByID(ctx context.Context, id uint) (*models.Donor, error) {
	var donor models.Donor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&donor).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// ListActive lists donors that have not donated yet
func (r *donorRepository) ListActive(ctx context.Context) ([]*models.Donor, error) {
	var donors []*models.Donor
	err := r.db.WithContext(ctx).Where("is_donated = ?", false).Find(&donors).Error
	return donors, err
}

// ListDonated lists donors that are marked as donated
func (r *donorRepository) ListDonated(ctx context.Context) ([]*models.Donor, error) {
	var donors []*models.Donor
	err := r.db.WithContext(ctx).Where("is_donated = ?", true).Find(&donors).Error
	return donors, err
}

// Update updates a donor
func (r *donorRepository) Update(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Save(donor).Error
}
