package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udyam-portal/internal/audit"
	"udyam-portal/internal/platform/kafka/producer"
	"udyam-portal/internal/registration/models"
	"udyam-portal/internal/registration/otp"
	"udyam-portal/internal/registration/store/session"
	dErrors "udyam-portal/pkg/domain-errors"
	"udyam-portal/pkg/validation"
)

type sinkRecorder struct {
	mu       sync.Mutex
	messages []*producer.Message
}

func (r *sinkRecorder) ProduceAsync(msg *producer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *sinkRecorder) all() []*producer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.messages
}

func newTestService(t *testing.T, opts ...Option) (*Service, *audit.Publisher) {
	t.Helper()
	auditPub := audit.NewPublisher(audit.NewInMemoryStore())
	codes := otp.NewService(otp.NewInMemoryStore(), otp.WithDemoAcceptAny(true))
	base := []Option{WithAuditPublisher(auditPub)}
	svc := NewService(codes, session.NewInMemory(), NewNumberIssuer("DL", "01"), append(base, opts...)...)
	return svc, auditPub
}

func validSendRequest() models.SendOTPRequest {
	return models.SendOTPRequest{
		AadhaarNumber: "234567890123",
		Name:          "Asha Rao",
		MobileNumber:  "9876543210",
		Email:         "asha@example.com",
	}
}

func validOrganizationRequest() models.OrganizationRequest {
	return models.OrganizationRequest{
		OrganizationType: "proprietorship",
		PAN:              "abcde1234f",
		EnterpriseName:   "Rao Textiles",
		SocialCategory:   "general",
		Gender:           "female",
		FiledITR:         true,
	}
}

func TestWorkflow_EndToEnd(t *testing.T) {
	ctx := context.Background()
	sink := &sinkRecorder{}
	svc, auditPub := newTestService(t, WithEvents(sink, "portal.registrations.submitted"))

	issued, err := svc.SendOTP(ctx, "attempt-1", validSendRequest())
	require.NoError(t, err)
	assert.Equal(t, "attempt-1", issued.AttemptID)
	assert.Equal(t, "9876543210", issued.MobileNumber)
	assert.Equal(t, 600, issued.ExpiresInSec)

	verified, err := svc.VerifyOTP(ctx, "attempt-1", models.VerifyOTPRequest{Code: "000000"})
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.Equal(t, "/step2", verified.NextStep)
	assert.Equal(t, "Asha Rao", verified.Applicant.Name)

	submitted, err := svc.SubmitOrganization(ctx, "attempt-1", validOrganizationRequest())
	require.NoError(t, err)
	assert.True(t, validation.ValidUdyamNumber(submitted.UdyamNumber))
	assert.False(t, submitted.SubmittedAt.IsZero())

	confirmation, err := svc.Confirmation(ctx, "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, submitted.UdyamNumber, confirmation.UdyamNumber)
	assert.Equal(t, "ABCDE1234F", confirmation.Organization.PAN)
	assert.Nil(t, confirmation.Organization.GSTIN)

	// One submission event with the issued number.
	msgs := sink.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, "portal.registrations.submitted", msgs[0].Topic)
	var event struct {
		UdyamNumber     string `json:"udyam_number"`
		AadhaarLastFour string `json:"aadhaar_last_four"`
	}
	require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
	assert.Equal(t, submitted.UdyamNumber, event.UdyamNumber)
	assert.Equal(t, "0123", event.AadhaarLastFour)

	// Audit trail covers issue, verify, and submit.
	trail, err := auditPub.List(ctx, "attempt-1")
	require.NoError(t, err)
	actions := make([]string, 0, len(trail))
	for _, e := range trail {
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []string{"otp_issued", "otp_verified", "registration_submitted"}, actions)
}

func TestSendOTP_RejectsInvalidFieldsBeforeDispatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	cases := map[string]func(*models.SendOTPRequest){
		"aadhaar all zeros": func(r *models.SendOTPRequest) { r.AadhaarNumber = "000000000000" },
		"aadhaar too short": func(r *models.SendOTPRequest) { r.AadhaarNumber = "12345" },
		"mobile leading 5":  func(r *models.SendOTPRequest) { r.MobileNumber = "5876543210" },
		"blank name":        func(r *models.SendOTPRequest) { r.Name = "   " },
		"padded short name": func(r *models.SendOTPRequest) { r.Name = "   A    " },
		"bad email":         func(r *models.SendOTPRequest) { r.Email = "not-an-email" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validSendRequest()
			mutate(&req)
			_, err := svc.SendOTP(ctx, "attempt-1", req)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}

	// No challenge exists after rejected sends.
	_, err := svc.VerifyOTP(ctx, "attempt-1", models.VerifyOTPRequest{Code: "123456"})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeWorkflowState))
}

func TestSubmitOrganization_RequiresVerifiedApplicant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.SubmitOrganization(ctx, "attempt-1", validOrganizationRequest())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeWorkflowState))
}

func TestConfirmation_RequiresSubmission(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Confirmation(ctx, "attempt-1")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeWorkflowState))
}

func TestSubmitOrganization_GSTINDeclaration(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.SendOTP(ctx, "attempt-1", validSendRequest())
	require.NoError(t, err)
	_, err = svc.VerifyOTP(ctx, "attempt-1", models.VerifyOTPRequest{Code: "000000"})
	require.NoError(t, err)

	// Declared but empty fails validation.
	req := validOrganizationRequest()
	req.HasGSTIN = true
	_, err = svc.SubmitOrganization(ctx, "attempt-1", req)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	// A stale value with the declaration cleared is dropped, not validated.
	req = validOrganizationRequest()
	req.HasGSTIN = false
	req.GSTIN = "garbage"
	_, err = svc.SubmitOrganization(ctx, "attempt-1", req)
	require.NoError(t, err)

	confirmation, err := svc.Confirmation(ctx, "attempt-1")
	require.NoError(t, err)
	assert.Nil(t, confirmation.Organization.GSTIN)
}

func TestSubmitOrganization_EnterpriseNameFloorAppliesAfterTrimming(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.SendOTP(ctx, "attempt-1", validSendRequest())
	require.NoError(t, err)
	_, err = svc.VerifyOTP(ctx, "attempt-1", models.VerifyOTPRequest{Code: "000000"})
	require.NoError(t, err)

	// 8 raw characters, 1 after trimming: padding must not satisfy the floor.
	req := validOrganizationRequest()
	req.EnterpriseName = "   A    "
	_, err = svc.SubmitOrganization(ctx, "attempt-1", req)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestSubmitOrganization_StoresDeclaredGSTINUppercased(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.SendOTP(ctx, "attempt-1", validSendRequest())
	require.NoError(t, err)
	_, err = svc.VerifyOTP(ctx, "attempt-1", models.VerifyOTPRequest{Code: "000000"})
	require.NoError(t, err)

	req := validOrganizationRequest()
	req.HasGSTIN = true
	req.GSTIN = "07abcde1234f1z5"
	_, err = svc.SubmitOrganization(ctx, "attempt-1", req)
	require.NoError(t, err)

	confirmation, err := svc.Confirmation(ctx, "attempt-1")
	require.NoError(t, err)
	require.NotNil(t, confirmation.Organization.GSTIN)
	assert.Equal(t, "07ABCDE1234F1Z5", confirmation.Organization.GSTIN.String())
}

func TestStartNew_ClearsAttempt(t *testing.T) {
	ctx := context.Background()
	svc, auditPub := newTestService(t)

	_, err := svc.SendOTP(ctx, "attempt-1", validSendRequest())
	require.NoError(t, err)
	_, err = svc.VerifyOTP(ctx, "attempt-1", models.VerifyOTPRequest{Code: "000000"})
	require.NoError(t, err)
	_, err = svc.SubmitOrganization(ctx, "attempt-1", validOrganizationRequest())
	require.NoError(t, err)

	require.NoError(t, svc.StartNew(ctx, "attempt-1"))

	_, err = svc.Confirmation(ctx, "attempt-1")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeWorkflowState))
	_, err = svc.SubmitOrganization(ctx, "attempt-1", validOrganizationRequest())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeWorkflowState))

	trail, err := auditPub.List(ctx, "attempt-1")
	require.NoError(t, err)
	require.NotEmpty(t, trail)
	assert.Equal(t, "registration_reset", trail[len(trail)-1].Action)
}
