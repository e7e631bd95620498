// internal/services/notification_service_test.go
package services

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcoppard/gallery-backend/internal/apperrors"
	"github.com/dcoppard/gallery-backend/internal/config"
	"github.com/dcoppard/gallery-backend/internal/models"
)

type sentMail struct {
	to  []string
	msg string
}

func notificationFixture(sendErr error) (*NotificationService, *[]sentMail) {
	cfg := &config.Config{}
	cfg.Email.SMTPHost = "smtp.example.com"
	cfg.Email.SMTPPort = "587"
	cfg.Email.FromEmail = "noreply@example.com"
	cfg.Email.FromName = "Gallery"
	cfg.Email.ArtistEmail = "artist@example.com"
	cfg.Gallery.Currency = "£"
	cfg.Frontend.BaseURL = "https://gallery.example.com"

	var sent []sentMail
	svc := NewNotificationService(cfg)
	svc.send = func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		if sendErr != nil {
			return sendErr
		}
		sent = append(sent, sentMail{to: to, msg: string(msg)})
		return nil
	}
	return svc, &sent
}

func TestSendContactMessage(t *testing.T) {
	svc, sent := notificationFixture(nil)

	ref, err := svc.SendContactMessage(&ContactRequest{
		Name:    "Jane Reader",
		Email:   "jane@example.com",
		Message: "Do you take commissions?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	require.Len(t, *sent, 1)
	mail := (*sent)[0]
	assert.Equal(t, []string{"artist@example.com"}, mail.to)
	assert.Contains(t, mail.msg, "Jane Reader")
	assert.Contains(t, mail.msg, "Do you take commissions?")
	assert.Contains(t, mail.msg, ref)
	assert.Contains(t, mail.msg, "Reply-To: jane@example.com")
}

func TestSendInquiryIncludesPaintingDetails(t *testing.T) {
	svc, sent := notificationFixture(nil)

	painting := &models.Painting{
		Title:      "Morning Light",
		Dimensions: "24 x 36 inches",
		Medium:     "Oil on canvas",
		Price:      models.FixedPrice(500),
	}

	_, err := svc.SendInquiry(&InquiryRequest{
		Name:  "Jane Reader",
		Email: "jane@example.com",
	}, painting)
	require.NoError(t, err)

	require.Len(t, *sent, 1)
	msg := (*sent)[0].msg
	assert.Contains(t, msg, "Morning Light")
	assert.Contains(t, msg, "24 x 36 inches")
	assert.Contains(t, msg, "£500")
}

func TestSendOfferRejectsSoldPainting(t *testing.T) {
	svc, sent := notificationFixture(nil)

	_, err := svc.SendOffer(&OfferRequest{
		Name:   "Jane Reader",
		Email:  "jane@example.com",
		Amount: 450,
	}, &models.Painting{Title: "Morning Light", Sold: true})

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, *sent)
}

func TestSendOfferDeliveryFailure(t *testing.T) {
	svc, _ := notificationFixture(errors.New("connection refused"))

	_, err := svc.SendOffer(&OfferRequest{
		Name:   "Jane Reader",
		Email:  "jane@example.com",
		Amount: 450,
	}, &models.Painting{Title: "Morning Light"})

	var de *apperrors.EmailDeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "artist@example.com", de.To)
}

func TestReferenceCodesAreUnique(t *testing.T) {
	svc, _ := notificationFixture(nil)

	r1, err := svc.SendContactMessage(&ContactRequest{Name: "A", Email: "a@example.com", Message: "hi"})
	require.NoError(t, err)
	r2, err := svc.SendContactMessage(&ContactRequest{Name: "B", Email: "b@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2)
}
