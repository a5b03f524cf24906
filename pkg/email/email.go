package email

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"kitji-studios-backend/config"
	"kitji-studios-backend/internal/domain"
	"kitji-studios-backend/pkg/logger"
)

const (
	sendGridHost = "https://api.sendgrid.com"
	providerName = "SendGrid"

	// connectivity probe budget; the probe never sends mail
	statusCheckTimeout = 5 * time.Second
)

// Service sends contact notifications through the SendGrid v3 API.
// All sends are best-effort: callers get a bool, never an error.
type Service struct {
	client    *sendgrid.Client
	apiKey    string
	fromEmail string
	fromName  string
	toEmail   string
}

// NewService builds the email service. With no API key configured the service
// still constructs; sends become no-ops that return false.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		apiKey:    cfg.EmailAPIKey,
		fromEmail: cfg.EmailFromAddress,
		fromName:  cfg.EmailFromName,
		toEmail:   cfg.ContactEmailTo,
	}
	if s.apiKey != "" {
		s.client = sendgrid.NewSendClient(s.apiKey)
	}
	return s
}

// IsConfigured reports whether an API key is present.
func (s *Service) IsConfigured() bool {
	return s.apiKey != ""
}

// SendContactEmail sends the internal sales notification for a new inquiry.
// Returns true only when the provider accepted the message.
func (s *Service) SendContactEmail(ctx context.Context, contact *domain.ContactSubmissionRequest) bool {
	if contact == nil {
		return false
	}
	if s.client == nil {
		logger.Log.Warn("Email service not configured. Skipping sales notification", "email", contact.Email)
		return false
	}

	html, err := renderContactEmailHTML(contact)
	if err != nil {
		logger.Log.Error("Failed to render contact notification template", "error", err)
		return false
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("Kitji Studios Sales Team", s.toEmail)
	subject := "New Project Inquiry from " + contact.Name

	msg := mail.NewSingleEmail(from, subject, to, renderContactEmailText(contact), html)

	// Tracking args for the provider dashboard
	if len(msg.Personalizations) > 0 {
		p := msg.Personalizations[0]
		p.SetCustomArg("source", "website_contact_form")
		p.SetCustomArg("contact_email", contact.Email)
		p.SetCustomArg("project_type", contact.ProjectType)
	}

	return s.send(ctx, msg, "sales notification", contact.Email)
}

// SendConfirmationEmail sends the auto-reply confirmation to the submitter.
func (s *Service) SendConfirmationEmail(ctx context.Context, contact *domain.ContactSubmissionRequest) bool {
	if contact == nil {
		return false
	}
	if s.client == nil {
		logger.Log.Warn("Email service not configured. Skipping confirmation", "email", contact.Email)
		return false
	}

	html, err := renderConfirmationEmailHTML(contact)
	if err != nil {
		logger.Log.Error("Failed to render confirmation template", "error", err)
		return false
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(contact.Name, contact.Email)
	subject := "Thank you for contacting Kitji Studios - We'll be in touch soon!"

	msg := mail.NewSingleEmail(from, subject, to, renderConfirmationEmailText(contact), html)

	return s.send(ctx, msg, "confirmation", contact.Email)
}

func (s *Service) send(ctx context.Context, msg *mail.SGMailV3, kind, contactEmail string) bool {
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		logger.Log.Error("Failed to send email", "kind", kind, "email", contactEmail, "error", err)
		return false
	}
	if resp.StatusCode != http.StatusAccepted {
		logger.Log.Error("Email rejected by provider", "kind", kind, "email", contactEmail,
			"status", resp.StatusCode, "body", resp.Body)
		return false
	}

	logger.Log.Info("Email sent", "kind", kind, "email", contactEmail)
	return true
}

// Status reports provider configuration and connectivity. The connectivity
// probe is a lightweight authenticated GET; no email is ever sent from here.
func (s *Service) Status(ctx context.Context) *domain.EmailServiceStatus {
	status := &domain.EmailServiceStatus{
		IsConfigured: s.IsConfigured(),
		Provider:     "None",
		LastChecked:  time.Now().UTC(),
	}

	if status.IsConfigured {
		status.Provider = providerName
		status.IsConnected = s.checkConnectivity(ctx)
	}

	return status
}

func (s *Service) checkConnectivity(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, statusCheckTimeout)
	defer cancel()

	req := sendgrid.GetRequest(s.apiKey, "/v3/scopes", sendGridHost)
	req.Method = http.MethodGet

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		logger.Log.Warn("Email provider connectivity check failed", "error", err)
		return false
	}
	return resp.StatusCode < http.StatusBadRequest
}

var contactEmailHTMLTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>New Project Inquiry - Kitji Studios</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #1e3a8a 0%, #3b82f6 100%); padding: 30px; border-radius: 10px; margin-bottom: 20px;">
        <h1 style="color: white; margin: 0; font-size: 24px;">New Project Inquiry</h1>
        <p style="color: #e0e7ff; margin: 10px 0 0 0;">Received from Kitji Studios website</p>
    </div>

    <div style="background: #f8fafc; padding: 25px; border-radius: 8px; border-left: 4px solid #3b82f6;">
        <h2 style="color: #1e3a8a; margin-top: 0;">Contact Information</h2>
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
        <p><strong>Project Type:</strong> {{.ProjectType}}</p>
        {{if .Budget}}<p><strong>Budget:</strong> {{.Budget}}</p>{{end}}
    </div>

    <div style="background: white; padding: 25px; border-radius: 8px; border: 1px solid #e2e8f0; margin-top: 20px;">
        <h3 style="color: #1e3a8a; margin-top: 0;">Project Details</h3>
        <p style="line-height: 1.6; color: #475569;">{{.MessageHTML}}</p>
    </div>

    <div style="margin-top: 30px; padding: 20px; background: #1e3a8a; border-radius: 8px; text-align: center;">
        <p style="color: white; margin: 0;">
            <strong>Next Steps:</strong> Follow up within 24 hours to discuss project requirements and timeline.
        </p>
    </div>
</body>
</html>`))

var confirmationEmailHTMLTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Thank you for contacting Kitji Studios</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #1e3a8a 0%, #3b82f6 100%); padding: 30px; border-radius: 10px; margin-bottom: 20px;">
        <h1 style="color: white; margin: 0; font-size: 24px;">Thank You, {{.Name}}!</h1>
        <p style="color: #e0e7ff; margin: 10px 0 0 0;">We've received your project inquiry</p>
    </div>

    <div style="background: #f8fafc; padding: 25px; border-radius: 8px;">
        <h2 style="color: #1e3a8a; margin-top: 0;">What happens next?</h2>
        <ul style="color: #475569; line-height: 1.6;">
            <li>Our team will review your {{.ProjectTypeLower}} requirements</li>
            <li>We'll contact you within 24 hours via {{.Email}}</li>
            <li>We'll schedule a consultation to discuss your project in detail</li>
            <li>You'll receive a detailed proposal with timeline and pricing</li>
        </ul>
    </div>

    <div style="margin-top: 20px; padding: 20px; background: white; border-radius: 8px; border: 1px solid #e2e8f0;">
        <h3 style="color: #1e3a8a; margin-top: 0;">In the meantime</h3>
        <p style="color: #475569; line-height: 1.6;">
            Feel free to explore our <a href="https://kitjistudios.com/work" style="color: #3b82f6;">case studies</a>
            and learn more about our <a href="https://kitjistudios.com/team" style="color: #3b82f6;">team</a>.
        </p>
    </div>

    <div style="margin-top: 30px; text-align: center; color: #6b7280; font-size: 14px;">
        <p>Best regards,<br>The Kitji Studios Team</p>
        <p>Email: sales@kitjistudios.com</p>
    </div>
</body>
</html>`))

var contactEmailTextTemplate = texttemplate.Must(texttemplate.New("contact_text").Parse(`New Project Inquiry from Kitji Studios Website

Contact Information:
Name: {{.Name}}
Email: {{.Email}}
{{if .Company}}Company: {{.Company}}
{{end}}Project Type: {{.ProjectType}}
{{if .Budget}}Budget: {{.Budget}}
{{end}}
Project Details:
{{.Message}}

Next Steps: Follow up within 24 hours to discuss project requirements and timeline.`))

var confirmationEmailTextTemplate = texttemplate.Must(texttemplate.New("confirmation_text").Parse(`Thank You, {{.Name}}!

We've received your project inquiry for {{.ProjectTypeLower}}.

What happens next?
- Our team will review your requirements
- We'll contact you within 24 hours via {{.Email}}
- We'll schedule a consultation to discuss your project in detail
- You'll receive a detailed proposal with timeline and pricing

In the meantime, feel free to explore our case studies at https://kitjistudios.com/work
and learn more about our team at https://kitjistudios.com/team.

Best regards,
The Kitji Studios Team
Email: sales@kitjistudios.com`))

type contactEmailData struct {
	Name             string
	Email            string
	Company          string
	ProjectType      string
	ProjectTypeLower string
	Budget           string
	Message          string
	MessageHTML      template.HTML
}

func newContactEmailData(contact *domain.ContactSubmissionRequest) contactEmailData {
	return contactEmailData{
		Name:             contact.Name,
		Email:            contact.Email,
		Company:          contact.Company,
		ProjectType:      contact.ProjectType,
		ProjectTypeLower: strings.ToLower(contact.ProjectType),
		Budget:           contact.Budget,
		Message:          contact.Message,
		MessageHTML:      messageToHTML(contact.Message),
	}
}

// messageToHTML escapes the free-text message and turns newlines into <br>
// so multi-paragraph inquiries keep their shape in the HTML body.
func messageToHTML(message string) template.HTML {
	escaped := template.HTMLEscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func renderContactEmailHTML(contact *domain.ContactSubmissionRequest) (string, error) {
	var buf bytes.Buffer
	if err := contactEmailHTMLTemplate.Execute(&buf, newContactEmailData(contact)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderContactEmailText(contact *domain.ContactSubmissionRequest) string {
	var buf bytes.Buffer
	if err := contactEmailTextTemplate.Execute(&buf, newContactEmailData(contact)); err != nil {
		return contact.Message
	}
	return buf.String()
}

func renderConfirmationEmailHTML(contact *domain.ContactSubmissionRequest) (string, error) {
	var buf bytes.Buffer
	if err := confirmationEmailHTMLTemplate.Execute(&buf, newContactEmailData(contact)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderConfirmationEmailText(contact *domain.ContactSubmissionRequest) string {
	var buf bytes.Buffer
	if err := confirmationEmailTextTemplate.Execute(&buf, newContactEmailData(contact)); err != nil {
		return ""
	}
	return buf.String()
}
