package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_ContactDonor(t *testing.T) {
	repo := newFakeDonorRepo()
	donorSvc := NewDonorService(repo)
	svc := NewContactService(repo)
	ctx := context.Background()

	donor := newTestDonor()
	require.NoError(t, donorSvc.Create(ctx, donor))

	reference, err := svc.ContactDonor(ctx, donor.ID, "A patient at General Hospital needs O+ blood")
	require.NoError(t, err)

	_, parseErr := uuid.Parse(reference)
	assert.NoError(t, parseErr)

	// Each message gets its own reference.
	second, err := svc.ContactDonor(ctx, donor.ID, "follow-up")
	require.NoError(t, err)
	assert.NotEqual(t, reference, second)
}

func TestContactService_ContactDonor_NotFound(t *testing.T) {
	svc := NewContactService(newFakeDonorRepo())

	_, err := svc.ContactDonor(context.Background(), 42, "hello")
	assert.ErrorIs(t, err, ErrDonorNotFound)
}
