package services

import (
	"context"
	"errors"
	"log"

	"bloodbridge/internal/adapters/persistence/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService records messages addressed to donors. No email/SMS dispatch
// is wired up; messages are logged with a reference id so an operator can
// trace them.
type ContactService struct {
	donorRepo repositories.DonorRepository
}

// NewContactService creates a new contact service
func NewContactService(donorRepo repositories.DonorRepository) *ContactService {
	return &ContactService{donorRepo: donorRepo}
}

// ContactDonor records a message for the donor and returns a reference id.
// The donor must exist.
func (s *ContactService) ContactDonor(ctx context.Context, donorID uint, message string) (string, error) {
	donor, err := s.donorRepo.GetByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrDonorNotFound
		}
		return "", err
	}

	reference := uuid.New().String()
	log.Printf("📨 Message %s to donor %d (%s): %s", reference, donor.ID, donor.Email, message)

	return reference, nil
}
