// internal/handlers/contact.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dcoppard/gallery-backend/internal/apperrors"
	"github.com/dcoppard/gallery-backend/internal/i18n"
	"github.com/dcoppard/gallery-backend/internal/models"
	"github.com/dcoppard/gallery-backend/internal/services"
	"github.com/dcoppard/gallery-backend/internal/utils"
)

// ContactHandler receives visitor messages and forwards them to the artist.
type ContactHandler struct {
	notificationService *services.NotificationService
	paintingService     *services.PaintingService
}

func NewContactHandler(notificationService *services.NotificationService, paintingService *services.PaintingService) *ContactHandler {
	return &ContactHandler{
		notificationService: notificationService,
		paintingService:     paintingService,
	}
}

// POST /contact
func (h *ContactHandler) SendContactMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ref, err := h.notificationService.SendContactMessage(&req)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyMessageSendFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyMessageSent),
		"reference": ref,
	})
}

// POST /paintings/:id/inquiry
func (h *ContactHandler) SendInquiry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	painting, ok := h.lookupPainting(c)
	if !ok {
		return
	}

	var req services.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ref, err := h.notificationService.SendInquiry(&req, painting)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyMessageSendFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyMessageSent),
		"reference": ref,
	})
}

// POST /paintings/:id/offer
func (h *ContactHandler) SendOffer(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	painting, ok := h.lookupPainting(c)
	if !ok {
		return
	}

	var req services.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ref, err := h.notificationService.SendOffer(&req, painting)
	if err != nil {
		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyPaintingSold))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyMessageSendFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyMessageSent),
		"reference": ref,
	})
}

func (h *ContactHandler) lookupPainting(c *gin.Context) (*models.Painting, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid painting ID", nil)
		return nil, false
	}

	painting, err := h.paintingService.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			utils.NotFoundResponse(c, i18n.KeyPaintingNotFound)
			return nil, false
		}
		utils.InternalErrorResponse(c, err.Error())
		return nil, false
	}

	return painting, true
}
