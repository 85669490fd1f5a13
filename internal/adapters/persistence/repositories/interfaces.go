package repositories

import (
	"context"

	"bloodbridge/internal/adapters/persistence/models"
)

// AccountRepository defines account repository interface
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// DonorRepository defines donor repository interface
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	GetByID(ctx context.Context, id uint) (*models.Donor, error)
	ListActive(ctx context.Context) ([]*models.Donor, error)
	ListDonated(ctx context.Context) ([]*models.Donor, error)
	Update(ctx context.Context, donor *models.Donor) error
}

// RequestRepository defines blood request repository interface
type RequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) error
	GetByID(ctx context.Context, id uint) (*models.BloodRequest, error)
	ListAll(ctx context.Context) ([]*models.BloodRequest, error)
	Update(ctx context.Context, request *models.BloodRequest) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}
