package config

import (
	"log"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminAccount(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminAccount seeds the single admin account.
// Idempotent: skipped when the username already exists. The username must be
// unique, so this never produces a second admin row.
func (s *Seeder) seedAdminAccount() error {
	var count int64
	s.db.Model(&models.Account{}).Where("username = ?", s.cfg.Admin.Username).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	if s.cfg.Admin.Password == "" {
		log.Println("⚠️ Skipping admin seed: ADMIN_PASSWORD not set")
		return nil
	}

	hashedPassword, err := password.Hash(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.Account{
		Username: s.cfg.Admin.Username,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin account created: %s", admin.Username)
	return nil
}
