package validation_test

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"kitji-studios-backend/internal/domain"
	"kitji-studios-backend/pkg/validation"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func validRequest() domain.ContactSubmissionRequest {
	return domain.ContactSubmissionRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Company:     "Example Corp",
		ProjectType: "Web Application",
		Budget:      "$10,000 - $25,000",
		Message:     "We want to rebuild our customer portal.",
	}
}

func TestContactRequestValidation(t *testing.T) {
	v := newValidator()

	t.Run("Should accept a fully populated request", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("Should accept a request without optional fields", func(t *testing.T) {
		req := validRequest()
		req.Company = ""
		req.Budget = ""
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("Should accept every enumerated project type and budget range", func(t *testing.T) {
		for _, pt := range validation.ProjectTypes {
			req := validRequest()
			req.ProjectType = pt
			assert.NoError(t, v.Struct(&req), pt)
		}
		for _, b := range validation.BudgetRanges {
			req := validRequest()
			req.Budget = b
			assert.NoError(t, v.Struct(&req), b)
		}
	})

	cases := []struct {
		name    string
		mutate  func(*domain.ContactSubmissionRequest)
		message string
	}{
		{"missing name", func(r *domain.ContactSubmissionRequest) { r.Name = "" }, "Name is required"},
		{"name too long", func(r *domain.ContactSubmissionRequest) { r.Name = strings.Repeat("n", 101) }, "Name must be less than 100 characters"},
		{"missing email", func(r *domain.ContactSubmissionRequest) { r.Email = "" }, "Email is required"},
		{"invalid email", func(r *domain.ContactSubmissionRequest) { r.Email = "not-an-email" }, "Please enter a valid email address"},
		{"email too long", func(r *domain.ContactSubmissionRequest) { r.Email = strings.Repeat("a", 250) + "@example.com" }, "Email must be less than 255 characters"},
		{"company too long", func(r *domain.ContactSubmissionRequest) { r.Company = strings.Repeat("c", 101) }, "Company name must be less than 100 characters"},
		{"missing project type", func(r *domain.ContactSubmissionRequest) { r.ProjectType = "" }, "Project type is required"},
		{"unknown project type", func(r *domain.ContactSubmissionRequest) { r.ProjectType = "Time Travel" }, "Please select a valid project type"},
		{"unknown budget range", func(r *domain.ContactSubmissionRequest) { r.Budget = "one million" }, "Please select a valid budget range"},
		{"missing message", func(r *domain.ContactSubmissionRequest) { r.Message = "" }, "Message is required"},
		{"message too short", func(r *domain.ContactSubmissionRequest) { r.Message = "short" }, "Message must be at least 10 characters"},
		{"message too long", func(r *domain.ContactSubmissionRequest) { r.Message = strings.Repeat("m", 2001) }, "Message must be less than 2000 characters"},
	}

	for _, tc := range cases {
		t.Run("Should reject "+tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := v.Struct(&req)
			assert.Error(t, err)

			messages := validation.FormatValidationErrors(err)
			assert.Contains(t, messages, tc.message)
		})
	}

	t.Run("Should report one message per violated field", func(t *testing.T) {
		req := domain.ContactSubmissionRequest{}

		err := v.Struct(&req)
		assert.Error(t, err)

		messages := validation.FormatValidationErrors(err)
		assert.Len(t, messages, 4)
		assert.Contains(t, messages, "Name is required")
		assert.Contains(t, messages, "Email is required")
		assert.Contains(t, messages, "Project type is required")
		assert.Contains(t, messages, "Message is required")
	})
}
