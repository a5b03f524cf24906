package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kitji-studios-backend/internal/domain"
	"kitji-studios-backend/pkg/apperror"
)

type ContactHandler struct {
	contactUC  domain.ContactUsecase
	salesEmail string
}

// ContactHandlerOptions carries the wiring for the contact routes.
type ContactHandlerOptions struct {
	SalesEmail string
	// RateLimit guards POST /contact; nil disables limiting (tests).
	RateLimit gin.HandlerFunc
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, opts ContactHandlerOptions) {
	handler := &ContactHandler{
		contactUC:  contactUC,
		salesEmail: opts.SalesEmail,
	}

	post := []gin.HandlerFunc{}
	if opts.RateLimit != nil {
		post = append(post, opts.RateLimit)
	}
	post = append(post, handler.SubmitContact)

	api.POST("/contact", post...)
	api.GET("/contact", handler.GetAllSubmissions)
	api.GET("/contact/paginated", handler.GetSubmissionsPaginated)
	api.GET("/contact/email-status", handler.GetEmailStatus)
	api.GET("/contact/:id", handler.GetSubmissionByID)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates and stores a project inquiry, then sends best-effort notification emails. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmissionRequest  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactSubmissionResponse
// @Failure      400      {object}  domain.ContactSubmissionResponse
// @Failure      500      {object}  domain.ContactSubmissionResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ContactSubmissionResponse{
			Success: false,
			Message: "Please check your form data and try again.",
			Errors:  []string{"Invalid request body"},
		})
		return
	}

	result, err := h.contactUC.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, domain.ContactSubmissionResponse{
				Success: false,
				Message: "Please check your form data and try again.",
				Errors:  vErr.Errors,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, domain.ContactSubmissionResponse{
			Success: false,
			Message: "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	// The submission is stored either way; the wording only reflects whether
	// the sales team was notified by email.
	message := fmt.Sprintf("Thank you for your project inquiry! We've received it. For urgent matters, please contact %s directly.", h.salesEmail)
	if result.EmailSent {
		message = "Thank you for your project inquiry! Our sales team has received it and will contact you within 24 hours to discuss next steps."
	}

	c.JSON(http.StatusOK, domain.ContactSubmissionResponse{
		Success: true,
		Message: message,
		ID:      result.Submission.ID,
	})
}

// GetAllSubmissions godoc
// @Summary      List Contact Submissions
// @Description  Returns every stored submission, newest first. Suitable only for small datasets; prefer /contact/paginated.
// @Tags         contact
// @Produce      json
// @Success      200  {array}  domain.ContactSubmission
// @Failure      500  {object}  response.Response
// @Router       /contact [get]
func (h *ContactHandler) GetAllSubmissions(c *gin.Context) {
	submissions, err := h.contactUC.GetAllSubmissions(c.Request.Context())
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Error retrieving contact submissions", err))
		return
	}

	if submissions == nil {
		submissions = []domain.ContactSubmission{}
	}
	c.JSON(http.StatusOK, submissions)
}

// GetSubmissionsPaginated godoc
// @Summary      List Contact Submissions (paginated)
// @Description  Returns a page of submissions, newest first, plus pagination metadata.
// @Tags         contact
// @Produce      json
// @Param        page      query     int  false  "Page number (1-based)"  default(1)
// @Param        pageSize  query     int  false  "Items per page (1-100)"  default(20)
// @Success      200  {object}  domain.PaginatedContactSubmissions
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contact/paginated [get]
func (h *ContactHandler) GetSubmissionsPaginated(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.Error(apperror.BadRequest("Page number must be greater than 0"))
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		c.Error(apperror.BadRequest("Page size must be between 1 and 100"))
		return
	}

	items, totalCount, err := h.contactUC.GetSubmissionsPaginated(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Error retrieving contact submissions", err))
		return
	}

	if items == nil {
		items = []domain.ContactSubmission{}
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	c.JSON(http.StatusOK, domain.PaginatedContactSubmissions{
		Success: true,
		Data:    items,
		Pagination: domain.Pagination{
			Page:            page,
			PageSize:        pageSize,
			TotalCount:      totalCount,
			TotalPages:      totalPages,
			HasNextPage:     int64(page)*int64(pageSize) < totalCount,
			HasPreviousPage: page > 1,
		},
	})
}

// GetSubmissionByID godoc
// @Summary      Get Contact Submission
// @Description  Returns a single submission by id.
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  domain.ContactSubmission
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contact/{id} [get]
func (h *ContactHandler) GetSubmissionByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.Error(apperror.BadRequest("Contact submission ID is required"))
		return
	}

	submission, err := h.contactUC.GetSubmissionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Contact submission not found"))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Error retrieving contact submission", err))
		return
	}

	c.JSON(http.StatusOK, submission)
}

// GetEmailStatus godoc
// @Summary      Email Service Status
// @Description  Reports provider configuration and connectivity. Never sends an email.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  domain.EmailServiceStatus
// @Router       /contact/email-status [get]
func (h *ContactHandler) GetEmailStatus(c *gin.Context) {
	status := h.contactUC.EmailStatus(c.Request.Context())
	c.JSON(http.StatusOK, status)
}
