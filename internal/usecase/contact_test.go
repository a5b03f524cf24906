package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kitji-studios-backend/internal/domain"
	"kitji-studios-backend/internal/usecase"
	"kitji-studios-backend/pkg/logger"
	"kitji-studios-backend/pkg/validation"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repository
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	return m.Called(ctx, submission).Error(0)
}

func (m *MockContactRepo) GetAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSubmission), args.Error(1)
}

func (m *MockContactRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	args := m.Called(ctx, limit, offset)
	var items []domain.ContactSubmission
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.ContactSubmission)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactSubmission), args.Error(1)
}

// Mock Email Service
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendContactEmail(ctx context.Context, contact *domain.ContactSubmissionRequest) bool {
	return m.Called(ctx, contact).Bool(0)
}

func (m *MockEmailService) SendConfirmationEmail(ctx context.Context, contact *domain.ContactSubmissionRequest) bool {
	return m.Called(ctx, contact).Bool(0)
}

func (m *MockEmailService) Status(ctx context.Context) *domain.EmailServiceStatus {
	return m.Called(ctx).Get(0).(*domain.EmailServiceStatus)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func validRequest() *domain.ContactSubmissionRequest {
	return &domain.ContactSubmissionRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ProjectType: "Consulting",
		Message:     "I need help building an internal tool.",
	}
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should store a normalized submission and report both sends", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockMailer := new(MockEmailService)
		uc := usecase.NewContactUsecase(mockRepo, mockMailer, newValidator())

		req := validRequest()
		req.Name = "  Jane Doe  "
		req.Email = "  Jane@Example.COM "

		var stored *domain.ContactSubmission
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ContactSubmission")).
			Return(nil).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.ContactSubmission)
			})
		mockMailer.On("SendContactEmail", mock.Anything, req).Return(true)
		mockMailer.On("SendConfirmationEmail", mock.Anything, req).Return(true)

		result, err := uc.SubmitContact(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, result.EmailSent)
		assert.True(t, result.ConfirmationSent)
		assert.NotEmpty(t, result.Submission.ID)
		assert.False(t, result.Submission.CreatedAt.IsZero())
		assert.Equal(t, "Jane Doe", stored.Name)
		assert.Equal(t, "jane@example.com", stored.Email)
		mockRepo.AssertExpectations(t)
		mockMailer.AssertExpectations(t)
	})

	t.Run("Should reject invalid email without storing or emailing", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockMailer := new(MockEmailService)
		uc := usecase.NewContactUsecase(mockRepo, mockMailer, newValidator())

		req := validRequest()
		req.Email = "not-an-email"

		result, err := uc.SubmitContact(context.Background(), req)

		assert.Nil(t, result)
		var vErr *domain.ValidationError
		assert.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Errors, "Please enter a valid email address")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockMailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
	})

	t.Run("Should reject invalid fields with a message per violation", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*domain.ContactSubmissionRequest)
			message string
		}{
			{"missing name", func(r *domain.ContactSubmissionRequest) { r.Name = "" }, "Name is required"},
			{"name too long", func(r *domain.ContactSubmissionRequest) { r.Name = strings.Repeat("a", 101) }, "Name must be less than 100 characters"},
			{"unknown project type", func(r *domain.ContactSubmissionRequest) { r.ProjectType = "Underwater Welding" }, "Please select a valid project type"},
			{"unknown budget range", func(r *domain.ContactSubmissionRequest) { r.Budget = "$5" }, "Please select a valid budget range"},
			{"message too short", func(r *domain.ContactSubmissionRequest) { r.Message = "too short" }, "Message must be at least 10 characters"},
			{"message too long", func(r *domain.ContactSubmissionRequest) { r.Message = strings.Repeat("a", 2001) }, "Message must be less than 2000 characters"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockRepo := new(MockContactRepo)
				mockMailer := new(MockEmailService)
				uc := usecase.NewContactUsecase(mockRepo, mockMailer, newValidator())

				req := validRequest()
				tc.mutate(req)

				_, err := uc.SubmitContact(context.Background(), req)

				var vErr *domain.ValidationError
				assert.True(t, errors.As(err, &vErr))
				assert.Contains(t, vErr.Errors, tc.message)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Should not email when storage fails", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockMailer := new(MockEmailService)
		uc := usecase.NewContactUsecase(mockRepo, mockMailer, newValidator())

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		result, err := uc.SubmitContact(context.Background(), validRequest())

		assert.Nil(t, result)
		assert.Error(t, err)
		var vErr *domain.ValidationError
		assert.False(t, errors.As(err, &vErr))
		mockMailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
		mockMailer.AssertNotCalled(t, "SendConfirmationEmail", mock.Anything, mock.Anything)
	})

	t.Run("Should succeed when both sends fail", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockMailer := new(MockEmailService)
		uc := usecase.NewContactUsecase(mockRepo, mockMailer, newValidator())

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockMailer.On("SendContactEmail", mock.Anything, mock.Anything).Return(false)
		mockMailer.On("SendConfirmationEmail", mock.Anything, mock.Anything).Return(false)

		result, err := uc.SubmitContact(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.False(t, result.EmailSent)
		assert.False(t, result.ConfirmationSent)
		assert.NotEmpty(t, result.Submission.ID)
	})

	t.Run("Should fail on nil request", func(t *testing.T) {
		uc := usecase.NewContactUsecase(new(MockContactRepo), new(MockEmailService), newValidator())
		_, err := uc.SubmitContact(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestGetSubmissionsPaginated(t *testing.T) {
	t.Run("Should clamp page below 1 and oversized pageSize", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(mockRepo, new(MockEmailService), newValidator())

		mockRepo.On("Fetch", mock.Anything, 20, 0).Return([]domain.ContactSubmission{}, int64(0), nil)

		_, _, err := uc.GetSubmissionsPaginated(context.Background(), 0, 500)

		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "Fetch", mock.Anything, 20, 0)
	})

	t.Run("Should translate page and pageSize into limit and offset", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(mockRepo, new(MockEmailService), newValidator())

		mockRepo.On("Fetch", mock.Anything, 10, 20).Return([]domain.ContactSubmission{}, int64(42), nil)

		_, total, err := uc.GetSubmissionsPaginated(context.Background(), 3, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), total)
		mockRepo.AssertCalled(t, "Fetch", mock.Anything, 10, 20)
	})
}

func TestGetSubmissionByID(t *testing.T) {
	t.Run("Should reject blank ids", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(mockRepo, new(MockEmailService), newValidator())

		for _, id := range []string{"", "   "} {
			_, err := uc.GetSubmissionByID(context.Background(), id)
			assert.Error(t, err)
		}
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should pass through not-found", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(mockRepo, new(MockEmailService), newValidator())

		mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		_, err := uc.GetSubmissionByID(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEmailStatus(t *testing.T) {
	mockMailer := new(MockEmailService)
	uc := usecase.NewContactUsecase(new(MockContactRepo), mockMailer, newValidator())

	mockMailer.On("Status", mock.Anything).Return(&domain.EmailServiceStatus{
		IsConfigured: true,
		Provider:     "SendGrid",
	})

	status := uc.EmailStatus(context.Background())
	assert.True(t, status.IsConfigured)
	assert.Equal(t, "SendGrid", status.Provider)
}
