package services

import (
	"context"
	"errors"
	"time"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Donor service errors
var (
	ErrDonorNotFound    = errors.New("donor not found")
	ErrDonorNotEligible = errors.New("donor is not eligible to donate yet")
)

// DonorService handles donor registry business logic
type DonorService struct {
	donorRepo repositories.DonorRepository
}

// NewDonorService creates a new donor service
func NewDonorService(donorRepo repositories.DonorRepository) *DonorService {
	return &DonorService{donorRepo: donorRepo}
}

// Create registers a new donor from a public submission.
// New donors always start in the active pool.
func (s *DonorService) Create(ctx context.Context, donor *models.Donor) error {
	donor.ID = 0
	donor.IsDonated = false
	return s.donorRepo.Create(ctx, donor)
}

// ListActive returns all donors that have not donated yet
func (s *DonorService) ListActive(ctx context.Context) ([]*models.Donor, error) {
	return s.donorRepo.ListActive(ctx)
}

// ListDonated returns all donors currently marked as donated
func (s *DonorService) ListDonated(ctx context.Context) ([]*models.Donor, error) {
	return s.donorRepo.ListDonated(ctx)
}

// MarkDonated flags a donor as donated and stamps the donation time
func (s *DonorService) MarkDonated(ctx context.Context, id uint) (*models.Donor, error) {
	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	now := time.Now()
	donor.IsDonated = true
	donor.LastDonation = &now

	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

// Reactivate returns a donated donor to the active pool once two calendar
// months have passed since the last donation. The last donation date is
// kept as-is.
func (s *DonorService) Reactivate(ctx context.Context, id uint) (*models.Donor, error) {
	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	if !donor.EligibleAt(time.Now()) {
		return nil, ErrDonorNotEligible
	}

	donor.IsDonated = false

	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

// GetByID gets a donor by ID
func (s *DonorService) GetByID(ctx context.Context, id uint) (*models.Donor, error) {
	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}
	return donor, nil
}
