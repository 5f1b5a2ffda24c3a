package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"udyam-portal/internal/platform/config"
	"udyam-portal/internal/registration/handler/mocks"
	"udyam-portal/internal/registration/models"
	dErrors "udyam-portal/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/registration-mocks.go -package=mocks Service

func newTestRouter(svc Service) chi.Router {
	r := chi.NewRouter()
	h := New(svc, slog.New(slog.DiscardHandler))
	h.Register(r)
	return r
}

func attemptCookie(id string) *http.Cookie {
	return &http.Cookie{Name: config.AttemptCookieName, Value: id}
}

func TestHandleSendOTP_MintsAttemptCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)
	mockSvc.EXPECT().
		SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, attemptID string, req models.SendOTPRequest) (models.OTPIssueResult, error) {
			assert.NotEmpty(t, attemptID)
			assert.Equal(t, "9876543210", req.MobileNumber)
			return models.OTPIssueResult{AttemptID: attemptID, MobileNumber: req.MobileNumber, ExpiresInSec: 600}, nil
		}).
		Times(1)

	body, err := json.Marshal(models.SendOTPRequest{
		AadhaarNumber: "234567890123",
		Name:          "Asha Rao",
		MobileNumber:  "9876543210",
		Email:         "asha@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/registration/otp/send", bytes.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var minted bool
	for _, c := range w.Result().Cookies() {
		if c.Name == config.AttemptCookieName && c.Value != "" {
			minted = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, minted, "attempt cookie should be set")
}

func TestHandleSendOTP_ReusesExistingAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)
	mockSvc.EXPECT().
		SendOTP(gomock.Any(), "attempt-7", gomock.Any()).
		Return(models.OTPIssueResult{AttemptID: "attempt-7"}, nil).
		Times(1)

	body, err := json.Marshal(models.SendOTPRequest{
		AadhaarNumber: "234567890123",
		Name:          "Asha Rao",
		MobileNumber:  "9876543210",
		Email:         "asha@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/registration/otp/send", bytes.NewReader(body))
	req.AddCookie(attemptCookie("attempt-7"))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleSendOTP_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/registration/otp/send", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleVerifyOTP_NoAttemptRedirectsToStepOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)

	body, _ := json.Marshal(models.VerifyOTPRequest{Code: "123456"})
	req := httptest.NewRequest(http.MethodPost, "/api/registration/otp/verify", bytes.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var res map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "workflow_state", res["error"])
	assert.Equal(t, "/step1", res["redirect_to"])
}

func TestHandleVerifyOTP_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)
	mockSvc.EXPECT().
		VerifyOTP(gomock.Any(), "attempt-7", models.VerifyOTPRequest{Code: "111111"}).
		Return(models.VerifyResult{}, dErrors.New(dErrors.CodeCodeMismatch, "incorrect code")).
		Times(1)

	body, _ := json.Marshal(models.VerifyOTPRequest{Code: "111111"})
	req := httptest.NewRequest(http.MethodPost, "/api/registration/otp/verify", bytes.NewReader(body))
	req.AddCookie(attemptCookie("attempt-7"))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var res map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "code_mismatch", res["error"])
}

func TestHandleSubmitOrganization_WorkflowGuardRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)
	mockSvc.EXPECT().
		SubmitOrganization(gomock.Any(), "attempt-7", gomock.Any()).
		Return(models.SubmissionResult{}, dErrors.New(dErrors.CodeWorkflowState, "identity step not completed")).
		Times(1)

	body, _ := json.Marshal(models.OrganizationRequest{OrganizationType: "proprietorship"})
	req := httptest.NewRequest(http.MethodPost, "/api/registration/organization", bytes.NewReader(body))
	req.AddCookie(attemptCookie("attempt-7"))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var res map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "/step1", res["redirect_to"])
}

func TestHandleSubmitOrganization_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)
	mockSvc.EXPECT().
		SubmitOrganization(gomock.Any(), "attempt-7", gomock.Any()).
		Return(models.SubmissionResult{UdyamNumber: "UDYAM-DL-01-000042"}, nil).
		Times(1)

	body, _ := json.Marshal(models.OrganizationRequest{
		OrganizationType: "proprietorship",
		PAN:              "ABCDE1234F",
		EnterpriseName:   "Rao Textiles",
		SocialCategory:   "general",
		Gender:           "female",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/registration/organization", bytes.NewReader(body))
	req.AddCookie(attemptCookie("attempt-7"))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var res models.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "UDYAM-DL-01-000042", res.UdyamNumber)
}

func TestHandleConfirmation_NoSubmissionRedirectsHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)
	mockSvc.EXPECT().
		Confirmation(gomock.Any(), "attempt-7").
		Return(models.RegistrationSession{}, dErrors.New(dErrors.CodeWorkflowState, "no completed registration for this attempt")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/registration/confirmation", nil)
	req.AddCookie(attemptCookie("attempt-7"))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var res map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "/", res["redirect_to"])
}

func TestHandleReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)
	mockSvc.EXPECT().StartNew(gomock.Any(), "attempt-7").Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/registration/reset", nil)
	req.AddCookie(attemptCookie("attempt-7"))
	w := httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Without a cookie the reset is a no-op success.
	req = httptest.NewRequest(http.MethodPost, "/api/registration/reset", nil)
	w = httptest.NewRecorder()
	newTestRouter(mockSvc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
