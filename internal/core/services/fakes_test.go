package services

import (
	"context"
	"errors"
	"sync"

	"bloodbridge/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory fakes behind the repository interfaces. They copy records on the
// way in and out so mutations only land through Update, like a real store.

type fakeAccountRepo struct {
	mu       sync.Mutex
	nextID   uint
	accounts map[string]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*models.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.Username]; ok {
		return errors.New("duplicate username")
	}
	r.nextID++
	account.ID = r.nextID
	cp := *account
	r.accounts[account.Username] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *account
	return &cp, nil
}

func (r *fakeAccountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.accounts[username]
	return ok, nil
}

type fakeDonorRepo struct {
	mu     sync.Mutex
	nextID uint
	donors map[uint]*models.Donor
	err    error // when set, every call fails with it
}

func newFakeDonorRepo() *fakeDonorRepo {
	return &fakeDonorRepo{donors: make(map[uint]*models.Donor)}
}

func (r *fakeDonorRepo) Create(_ context.Context, donor *models.Donor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	donor.ID = r.nextID
	cp := *donor
	r.donors[donor.ID] = &cp
	return nil
}

func (r *fakeDonorRepo) GetByID(_ context.Context, id uint) (*models.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	donor, ok := r.donors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *donor
	return &cp, nil
}

func (r *fakeDonorRepo) ListActive(_ context.Context) ([]*models.Donor, error) {
	return r.list(false)
}

func (r *fakeDonorRepo) ListDonated(_ context.Context) ([]*models.Donor, error) {
	return r.list(true)
}

func (r *fakeDonorRepo) list(donated bool) ([]*models.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []*models.Donor{}
	for _, donor := range r.donors {
		if donor.IsDonated == donated {
			cp := *donor
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeDonorRepo) Update(_ context.Context, donor *models.Donor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.donors[donor.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *donor
	r.donors[donor.ID] = &cp
	return nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	nextID   uint
	requests map[uint]*models.BloodRequest
	err      error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint]*models.BloodRequest)}
}

func (r *fakeRequestRepo) Create(_ context.Context, request *models.BloodRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	request.ID = r.nextID
	cp := *request
	r.requests[request.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id uint) (*models.BloodRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	request, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *request
	return &cp, nil
}

func (r *fakeRequestRepo) ListAll(_ context.Context) ([]*models.BloodRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []*models.BloodRequest{}
	for _, request := range r.requests {
		cp := *request
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, request *models.BloodRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.requests[request.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *request
	r.requests[request.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, request := range r.requests {
		if request.Status == status {
			count++
		}
	}
	return count, nil
}
