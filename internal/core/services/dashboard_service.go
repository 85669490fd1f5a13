package services

import (
	"context"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"
)

// DashboardService composes the admin dashboard payload
type DashboardService struct {
	donorRepo   repositories.DonorRepository
	requestRepo repositories.RequestRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(donorRepo repositories.DonorRepository, requestRepo repositories.RequestRepository) *DashboardService {
	return &DashboardService{
		donorRepo:   donorRepo,
		requestRepo: requestRepo,
	}
}

// DashboardData is the composed admin dashboard view, assembled fresh per call
type DashboardData struct {
	Requests      []*models.BloodRequest `json:"requests"`
	Donors        []*models.Donor        `json:"donors"`
	DonatedDonors []*models.Donor        `json:"donatedDonors"`
}

// Get performs three independent reads and composes them into one payload.
// Full collections, no pagination.
func (s *DashboardService) Get(ctx context.Context) (*DashboardData, error) {
	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	donors, err := s.donorRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	donatedDonors, err := s.donorRepo.ListDonated(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Requests:      requests,
		Donors:        donors,
		DonatedDonors: donatedDonors,
	}, nil
}
