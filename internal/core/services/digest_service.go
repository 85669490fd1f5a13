package services

import (
	"context"
	"log"
	"time"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// DigestService logs a daily operational summary for the admin: how many
// requests are still pending and how many donated donors are due back in the
// active pool. Read-only; it never mutates the store.
type DigestService struct {
	donorRepo   repositories.DonorRepository
	requestRepo repositories.RequestRepository
	cron        *cron.Cron
}

// NewDigestService creates a new digest service
func NewDigestService(donorRepo repositories.DonorRepository, requestRepo repositories.RequestRepository) *DigestService {
	return &DigestService{
		donorRepo:   donorRepo,
		requestRepo: requestRepo,
		cron:        cron.New(),
	}
}

// Start schedules the daily digest at 08:00
func (s *DigestService) Start() {
	s.cron.AddFunc("0 8 * * *", s.runDigest)
	s.cron.Start()
	log.Println("🚀 DigestService started (daily 08:00)")
}

// Stop stops the cron scheduler
func (s *DigestService) Stop() {
	s.cron.Stop()
	log.Println("🛑 DigestService stopped")
}

func (s *DigestService) runDigest() {
	ctx := context.Background()

	pending, err := s.requestRepo.CountByStatus(ctx, models.RequestStatusPending)
	if err != nil {
		log.Printf("❌ Digest: pending request count error: %v", err)
		return
	}

	donated, err := s.donorRepo.ListDonated(ctx)
	if err != nil {
		log.Printf("❌ Digest: donated donor query error: %v", err)
		return
	}

	now := time.Now()
	dueBack := 0
	for _, donor := range donated {
		if donor.EligibleAt(now) {
			dueBack++
		}
	}

	log.Printf("📅 Daily digest: %d pending requests, %d donated donors, %d eligible for reactivation",
		pending, len(donated), dueBack)
}
