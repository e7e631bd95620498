// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/dcoppard/gallery-backend/internal/apperrors"
	"github.com/dcoppard/gallery-backend/internal/config"
	"github.com/dcoppard/gallery-backend/internal/models"
	"github.com/dcoppard/gallery-backend/internal/utils"
)

// NotificationService delivers visitor messages to the artist's inbox.
// Messages are not persisted; a delivery failure is surfaced to the sender
// so they can retry.
type NotificationService struct {
	config *config.Config
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

type EmailTemplate struct {
	Subject string
	Body    string
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=4000"`
}

type InquiryRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"max=4000"`
}

type OfferRequest struct {
	Name   string  `json:"name" validate:"required,max=120"`
	Email  string  `json:"email" validate:"required,email"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Note   string  `json:"note" validate:"max=4000"`
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{
		config: config,
		send:   smtp.SendMail,
	}
}

// SendContactMessage forwards a general contact-form message to the artist.
// The returned reference code is shown to the sender for follow-up.
func (s *NotificationService) SendContactMessage(req *ContactRequest) (string, error) {
	ref := utils.GenerateReferenceCode()

	data := map[string]interface{}{
		"Name":      req.Name,
		"Email":     req.Email,
		"Message":   req.Message,
		"Reference": ref,
	}

	subject := fmt.Sprintf("Contact message %s from %s", ref, req.Name)
	body, err := s.renderTemplate(s.getEmailTemplate("contact").Body, data)
	if err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	if err := s.sendEmail(s.config.Email.ArtistEmail, req.Email, subject, body); err != nil {
		return "", &apperrors.EmailDeliveryError{To: s.config.Email.ArtistEmail, Err: err}
	}
	return ref, nil
}

// SendInquiry forwards a price or availability inquiry about one painting.
func (s *NotificationService) SendInquiry(req *InquiryRequest, painting *models.Painting) (string, error) {
	ref := utils.GenerateReferenceCode()

	data := map[string]interface{}{
		"Name":       req.Name,
		"Email":      req.Email,
		"Message":    req.Message,
		"Title":      painting.Title,
		"Dimensions": painting.Dimensions,
		"Medium":     painting.Medium,
		"Price":      painting.Price.Display(s.config.Gallery.Currency),
		"DetailURL":  fmt.Sprintf("%s/paintings/%s", s.config.Frontend.BaseURL, painting.ID),
		"Reference":  ref,
	}

	subject := fmt.Sprintf("Inquiry %s - %s", ref, painting.Title)
	body, err := s.renderTemplate(s.getEmailTemplate("inquiry").Body, data)
	if err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	if err := s.sendEmail(s.config.Email.ArtistEmail, req.Email, subject, body); err != nil {
		return "", &apperrors.EmailDeliveryError{To: s.config.Email.ArtistEmail, Err: err}
	}
	return ref, nil
}

// SendOffer forwards a purchase offer. Offers on sold paintings are
// rejected before any email goes out.
func (s *NotificationService) SendOffer(req *OfferRequest, painting *models.Painting) (string, error) {
	if painting.Sold {
		return "", apperrors.NewValidationError(apperrors.FieldError{
			Field:   "painting_id",
			Message: "this painting has already been sold",
		})
	}

	ref := utils.GenerateReferenceCode()

	data := map[string]interface{}{
		"Name":      req.Name,
		"Email":     req.Email,
		"Amount":    fmt.Sprintf("%s%.2f", s.config.Gallery.Currency, req.Amount),
		"Note":      req.Note,
		"Title":     painting.Title,
		"Asking":    painting.Price.Display(s.config.Gallery.Currency),
		"DetailURL": fmt.Sprintf("%s/paintings/%s", s.config.Frontend.BaseURL, painting.ID),
		"Reference": ref,
	}

	subject := fmt.Sprintf("Offer %s - %s", ref, painting.Title)
	body, err := s.renderTemplate(s.getEmailTemplate("offer").Body, data)
	if err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	if err := s.sendEmail(s.config.Email.ArtistEmail, req.Email, subject, body); err != nil {
		return "", &apperrors.EmailDeliveryError{To: s.config.Email.ArtistEmail, Err: err}
	}
	return ref, nil
}

// Helper methods
func (s *NotificationService) sendEmail(to, replyTo, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, skipping email delivery")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.Email.FromName, s.config.Email.FromEmail, to, replyTo, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return s.send(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"contact": {
			Subject: "Contact Message",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>New contact message ({{.Reference}})</h2>
	<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt; wrote:</p>
	<blockquote>{{.Message}}</blockquote>
	<p>Reply directly to this email to answer.</p>
</body>
</html>`,
		},
		"inquiry": {
			Subject: "Painting Inquiry",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Inquiry about "{{.Title}}" ({{.Reference}})</h2>
	<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt; is asking about
	<a href="{{.DetailURL}}">{{.Title}}</a> ({{.Dimensions}}, {{.Medium}}, listed at {{.Price}}).</p>
	{{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}
	<p>Reply directly to this email to answer.</p>
</body>
</html>`,
		},
		"offer": {
			Subject: "Purchase Offer",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Offer of {{.Amount}} on "{{.Title}}" ({{.Reference}})</h2>
	<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt; has offered <strong>{{.Amount}}</strong>
	for <a href="{{.DetailURL}}">{{.Title}}</a> (asking {{.Asking}}).</p>
	{{if .Note}}<blockquote>{{.Note}}</blockquote>{{end}}
	<p>Reply directly to this email to accept or counter.</p>
</body>
</html>`,
		},
	}

	if template, exists := templates[templateType]; exists {
		return template
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}
