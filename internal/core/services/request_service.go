package services

import (
	"context"
	"errors"
	"time"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Request service errors
var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrInvalidReqStatus = errors.New("invalid request status")
)

// RequestService handles blood request registry business logic
type RequestService struct {
	requestRepo repositories.RequestRepository
}

// NewRequestService creates a new request service
func NewRequestService(requestRepo repositories.RequestRepository) *RequestService {
	return &RequestService{requestRepo: requestRepo}
}

// Create registers a new blood request from a public submission.
// Status defaults to pending and the request date to submission time.
func (s *RequestService) Create(ctx context.Context, request *models.BloodRequest) error {
	request.ID = 0
	if request.Status == "" {
		request.Status = models.RequestStatusPending
	} else if !models.IsValidRequestStatus(request.Status) {
		return ErrInvalidReqStatus
	}
	if request.RequestDate.IsZero() {
		request.RequestDate = time.Now()
	}
	return s.requestRepo.Create(ctx, request)
}

// ListAll returns every blood request on record
func (s *RequestService) ListAll(ctx context.Context) ([]*models.BloodRequest, error) {
	return s.requestRepo.ListAll(ctx)
}

// UpdateStatus overwrites a request's status. Completed and cancelled are
// not terminal; any re-transition is allowed.
func (s *RequestService) UpdateStatus(ctx context.Context, id uint, status string) (*models.BloodRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	request.Status = status

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
