package repositories

import (
	"context"

	"bloodbridge/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// requestRepository implements RequestRepository interface
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new blood request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create creates a new blood request
func (r *requestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a blood request by ID
func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.BloodRequest, error) {
	var request models.BloodRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListAll lists all blood requests
func (r *requestRepository) ListAll(ctx context.Context) ([]*models.BloodRequest, error) {
	var requests []*models.BloodRequest
	err := r.db.WithContext(ctx).Find(&requests).Error
	return requests, err
}

// Update updates a blood request
func (r *requestRepository) Update(ctx context.Context, request *models.BloodRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// CountByStatus counts blood requests with the given status
func (r *requestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BloodRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
