package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udyam-portal/internal/registration/models"
)

func TestInMemory_ApplicantRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()

	applicant := models.ApplicantDetails{
		AadhaarNumber: "123456789012",
		Name:          "Asha Rao",
		MobileNumber:  "9876543210",
		Email:         "asha@example.com",
	}

	_, err := store.FindApplicant(ctx, "attempt-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.SaveApplicant(ctx, "attempt-1", applicant))

	got, err := store.FindApplicant(ctx, "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, applicant, got)

	// Attempts are isolated from each other.
	_, err = store.FindApplicant(ctx, "attempt-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemory_SessionRoundtripAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()

	session := models.RegistrationSession{
		Applicant: models.ApplicantDetails{
			AadhaarNumber: "123456789012",
			Name:          "Asha Rao",
			MobileNumber:  "9876543210",
			Email:         "asha@example.com",
		},
		Organization: models.OrganizationDetails{
			OrganizationType: models.OrgProprietorship,
			PAN:              "ABCDE1234F",
			EnterpriseName:   "Rao Textiles",
			SocialCategory:   models.CategoryGeneral,
			Gender:           models.GenderFemale,
		},
		UdyamNumber: "UDYAM-DL-01-000001",
		SubmittedAt: time.Now().UTC(),
	}

	require.NoError(t, store.SaveApplicant(ctx, "attempt-1", session.Applicant))
	require.NoError(t, store.SaveSession(ctx, "attempt-1", session))

	got, err := store.FindSession(ctx, "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	require.NoError(t, store.Clear(ctx, "attempt-1"))

	_, err = store.FindApplicant(ctx, "attempt-1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.FindSession(ctx, "attempt-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
