package services

import (
	"context"
	"errors"
	"log"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/config"
	"bloodbridge/internal/pkg/jwt"
	"bloodbridge/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
)

// AuthService handles authentication business logic
type AuthService struct {
	accountRepo repositories.AccountRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(accountRepo repositories.AccountRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an account and returns a signed bearer token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (string, error) {
	account, err := s.accountRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(input.Password, account.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(
		account.Username,
		string(account.Role),
		s.cfg.JWT.Secret,
		s.cfg.JWT.TokenTTLMinutes,
	)
	if err != nil {
		return "", err
	}

	log.Printf("✅ Account logged in: %s", account.Username)
	return token, nil
}

// CreateAccount creates a new account, enforcing username uniqueness
func (s *AuthService) CreateAccount(ctx context.Context, username, plainPassword string, role models.Role) (*models.Account, error) {
	exists, err := s.accountRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountExists
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username: username,
		Password: hashed,
		Role:     role,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	log.Printf("✅ Account created: %s [%s]", account.Username, account.Role)
	return account, nil
}
