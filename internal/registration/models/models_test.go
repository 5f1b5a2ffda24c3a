package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udyam-portal/pkg/validation"
)

func TestOrganizationRequest_Details(t *testing.T) {
	base := OrganizationRequest{
		OrganizationType: "proprietorship",
		PAN:              "abcde1234f",
		EnterpriseName:   "  Rao Textiles  ",
		SocialCategory:   "general",
		Gender:           "female",
	}

	t.Run("PAN is normalized to uppercase", func(t *testing.T) {
		d := base.Details()
		assert.Equal(t, "ABCDE1234F", d.PAN)
		assert.Equal(t, "Rao Textiles", d.EnterpriseName)
	})

	t.Run("declared GSTIN is kept and uppercased", func(t *testing.T) {
		req := base
		req.HasGSTIN = true
		req.GSTIN = "07abcde1234f1z5"
		d := req.Details()
		require.NotNil(t, d.GSTIN)
		assert.Equal(t, GSTIN("07ABCDE1234F1Z5"), *d.GSTIN)
	})

	t.Run("clearing the declaration drops a previously entered GSTIN", func(t *testing.T) {
		req := base
		req.HasGSTIN = false
		req.GSTIN = "07ABCDE1234F1Z5"
		d := req.Details()
		assert.Nil(t, d.GSTIN)
	})
}

func TestOrganizationRequest_Validation(t *testing.T) {
	valid := OrganizationRequest{
		OrganizationType: "proprietorship",
		PAN:              "ABCDE1234F",
		EnterpriseName:   "Rao Textiles",
		SocialCategory:   "general",
		Gender:           "female",
	}

	t.Run("valid without GSTIN", func(t *testing.T) {
		require.NoError(t, validation.Validate(&valid))
	})

	t.Run("GSTIN required when declared", func(t *testing.T) {
		req := valid
		req.HasGSTIN = true
		require.Error(t, validation.Validate(&req))
	})

	t.Run("declared GSTIN must be well formed", func(t *testing.T) {
		req := valid
		req.HasGSTIN = true
		req.GSTIN = "07ABCDE1234F1X5"
		require.Error(t, validation.Validate(&req))
	})

	t.Run("undeclared malformed GSTIN does not fail validation", func(t *testing.T) {
		req := valid
		req.GSTIN = ""
		require.NoError(t, validation.Validate(&req))
	})
}

func TestApplicantDetails_AadhaarLastFour(t *testing.T) {
	a := ApplicantDetails{AadhaarNumber: "123456789012"}
	assert.Equal(t, "9012", a.AadhaarLastFour())
}
