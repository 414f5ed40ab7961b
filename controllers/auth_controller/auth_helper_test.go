package auth_controller

import (
	"testing"

	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/stretchr/testify/assert"
)

func validReq() models.SignupRequest {
	return models.SignupRequest{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john.doe@example.com",
		MobileNumber: "9876543210",
		Password:     "secret1",
	}
}

func TestValidateSignup_Valid(t *testing.T) {
	req := validReq()
	assert.Empty(t, validateSignup(&req))
}

func TestValidateSignup_FirstViolationWins(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SignupRequest)
		want   string
	}{
		{
			"missing first name",
			func(r *models.SignupRequest) { r.FirstName = "" },
			"Please fill in all fields.",
		},
		{
			"whitespace-only email counts as missing",
			func(r *models.SignupRequest) { r.Email = "   " },
			"Please fill in all fields.",
		},
		{
			"missing password",
			func(r *models.SignupRequest) { r.Password = "" },
			"Please fill in all fields.",
		},
		{
			"invalid email",
			func(r *models.SignupRequest) { r.Email = "not-an-email" },
			"Please enter a valid email address.",
		},
		{
			"email with spaces",
			func(r *models.SignupRequest) { r.Email = "a b@example.com" },
			"Please enter a valid email address.",
		},
		{
			"short mobile number",
			func(r *models.SignupRequest) { r.MobileNumber = "12345" },
			"Please enter a valid 10-digit mobile number.",
		},
		{
			"mobile number with letters",
			func(r *models.SignupRequest) { r.MobileNumber = "98765abc10" },
			"Please enter a valid 10-digit mobile number.",
		},
		{
			"short password",
			func(r *models.SignupRequest) { r.Password = "12345" },
			"Password must be at least 6 characters long.",
		},
		{
			// Email check fires before the mobile check when both are bad
			"email violation reported before mobile",
			func(r *models.SignupRequest) {
				r.Email = "bad"
				r.MobileNumber = "12"
			},
			"Please enter a valid email address.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReq()
			tt.mutate(&req)
			assert.Equal(t, tt.want, validateSignup(&req))
		})
	}
}

func TestValidateSignup_TrimsFields(t *testing.T) {
	req := validReq()
	req.Email = "  john.doe@example.com  "
	req.MobileNumber = " 9876543210 "

	assert.Empty(t, validateSignup(&req))
	assert.Equal(t, "john.doe@example.com", req.Email)
	assert.Equal(t, "9876543210", req.MobileNumber)
}
