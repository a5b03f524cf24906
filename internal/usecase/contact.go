package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"kitji-studios-backend/internal/domain"
	"kitji-studios-backend/pkg/logger"
	"kitji-studios-backend/pkg/validation"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// Budget for each best-effort notification send. A hanging provider call
	// must not stall the response; a timeout counts as a failed send.
	notifyTimeout = 10 * time.Second
)

type contactUsecase struct {
	repo     domain.ContactRepository
	mailer   domain.EmailService
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(repo domain.ContactRepository, mailer domain.EmailService, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		mailer:   mailer,
		validate: validate,
	}
}

// SubmitContact runs the full submission flow: validate, store, then two
// independent best-effort notification sends. Loss of either email never
// rolls back the stored submission.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactSubmissionRequest) (*domain.SubmitResult, error) {
	if req == nil {
		return nil, fmt.Errorf("contact submission request is nil")
	}

	if err := uc.validate.Struct(req); err != nil {
		vErr := &domain.ValidationError{Errors: validation.FormatValidationErrors(err)}
		logger.Log.Warn("Contact form validation failed", "email", req.Email, "errors", vErr.Errors)
		return nil, vErr
	}

	submission := &domain.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Company:     strings.TrimSpace(req.Company),
		ProjectType: strings.TrimSpace(req.ProjectType),
		Budget:      strings.TrimSpace(req.Budget),
		Message:     strings.TrimSpace(req.Message),
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, submission); err != nil {
		logger.Log.Error("Failed to create contact submission", "email", submission.Email, "error", err)
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	logger.Log.Info("Created contact submission", "id", submission.ID, "email", submission.Email)

	result := &domain.SubmitResult{Submission: submission}
	result.EmailSent = uc.notify(ctx, req, uc.mailer.SendContactEmail)
	result.ConfirmationSent = uc.notify(ctx, req, uc.mailer.SendConfirmationEmail)

	logger.Log.Info("Processed contact submission",
		"id", submission.ID, "email", submission.Email,
		"email_sent", result.EmailSent, "confirmation_sent", result.ConfirmationSent)

	return result, nil
}

func (uc *contactUsecase) notify(ctx context.Context, req *domain.ContactSubmissionRequest, send func(context.Context, *domain.ContactSubmissionRequest) bool) bool {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	return send(ctx, req)
}

func (uc *contactUsecase) GetAllSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	submissions, err := uc.repo.GetAll(ctx)
	if err != nil {
		logger.Log.Error("Failed to retrieve contact submissions", "error", err)
		return nil, fmt.Errorf("failed to retrieve contact submissions: %w", err)
	}
	return submissions, nil
}

// GetSubmissionsPaginated clamps out-of-range paging defensively: the HTTP
// layer rejects these with 400, so internal callers always get a sane window.
func (uc *contactUsecase) GetSubmissionsPaginated(ctx context.Context, page, pageSize int) ([]domain.ContactSubmission, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	items, total, err := uc.repo.Fetch(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		logger.Log.Error("Failed to retrieve paginated contact submissions", "page", page, "error", err)
		return nil, 0, fmt.Errorf("failed to retrieve paginated contact submissions: %w", err)
	}
	return items, total, nil
}

func (uc *contactUsecase) GetSubmissionByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("contact submission id cannot be empty")
	}

	submission, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Log.Error("Failed to retrieve contact submission", "id", id, "error", err)
		}
		return nil, err
	}
	return submission, nil
}

func (uc *contactUsecase) EmailStatus(ctx context.Context) *domain.EmailServiceStatus {
	return uc.mailer.Status(ctx)
}
