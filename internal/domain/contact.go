package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by repositories when no submission matches the given id.
var ErrNotFound = errors.New("contact submission not found")

// ContactSubmission is a stored project inquiry. Submissions are immutable:
// they are created once by the contact endpoint and only ever read afterwards.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	ProjectType string    `json:"projectType"`
	Budget      string    `json:"budget,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ContactSubmissionRequest is the untrusted contact form payload.
// Company and Budget are optional; everything else is required.
type ContactSubmissionRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Company     string `json:"company" validate:"omitempty,max=100"`
	ProjectType string `json:"projectType" validate:"required,project_type"`
	Budget      string `json:"budget" validate:"omitempty,budget_range"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
}

// ContactSubmissionResponse is returned by POST /api/contact.
type ContactSubmissionResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	ID      string   `json:"id,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Pagination describes the slice returned by the paginated listing endpoint.
type Pagination struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// PaginatedContactSubmissions wraps a page of submissions for the admin listing.
type PaginatedContactSubmissions struct {
	Success    bool                `json:"success"`
	Data       []ContactSubmission `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

// EmailServiceStatus reports outbound email availability. Computed on demand,
// never persisted.
type EmailServiceStatus struct {
	IsConfigured bool      `json:"isConfigured"`
	IsConnected  bool      `json:"isConnected"`
	Provider     string    `json:"provider"`
	LastChecked  time.Time `json:"lastChecked"`
}

// SubmitResult is the outcome of a successful form submission. EmailSent and
// ConfirmationSent reflect best-effort delivery; either may be false while the
// submission itself succeeded.
type SubmitResult struct {
	Submission       *ContactSubmission
	EmailSent        bool
	ConfirmationSent bool
}

// ValidationError carries the field-level messages for a rejected request.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// ContactRepository is the persistence boundary for submissions.
// Create is the only mutator; reads must not alter state.
type ContactRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) error
	// GetAll returns every submission ordered by CreatedAt descending.
	GetAll(ctx context.Context) ([]ContactSubmission, error)
	// Fetch returns a slice ordered by CreatedAt descending plus the total count.
	Fetch(ctx context.Context, limit, offset int) ([]ContactSubmission, int64, error)
	// GetByID returns ErrNotFound when no submission matches.
	GetByID(ctx context.Context, id string) (*ContactSubmission, error)
}

// EmailService dispatches notification emails. Sends are best-effort: a false
// return means the message was not accepted (unconfigured provider, rejection,
// timeout) and must never fail the surrounding request.
type EmailService interface {
	SendContactEmail(ctx context.Context, contact *ContactSubmissionRequest) bool
	SendConfirmationEmail(ctx context.Context, contact *ContactSubmissionRequest) bool
	Status(ctx context.Context) *EmailServiceStatus
}

// ContactUsecase defines the contact form operations exposed over HTTP.
type ContactUsecase interface {
	// SubmitContact validates, stores and dispatches notifications for a
	// contact form submission. Returns *ValidationError for rejected input.
	SubmitContact(ctx context.Context, req *ContactSubmissionRequest) (*SubmitResult, error)
	GetAllSubmissions(ctx context.Context) ([]ContactSubmission, error)
	// GetSubmissionsPaginated clamps page to >=1 and pageSize to a sane default
	// when outside [1,100].
	GetSubmissionsPaginated(ctx context.Context, page, pageSize int) ([]ContactSubmission, int64, error)
	GetSubmissionByID(ctx context.Context, id string) (*ContactSubmission, error)
	EmailStatus(ctx context.Context) *EmailServiceStatus
}
