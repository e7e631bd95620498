// internal/handlers/painting.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dcoppard/gallery-backend/internal/apperrors"
	"github.com/dcoppard/gallery-backend/internal/artwork"
	"github.com/dcoppard/gallery-backend/internal/config"
	"github.com/dcoppard/gallery-backend/internal/i18n"
	"github.com/dcoppard/gallery-backend/internal/models"
	"github.com/dcoppard/gallery-backend/internal/services"
	"github.com/dcoppard/gallery-backend/internal/utils"
	"github.com/dcoppard/gallery-backend/internal/viewcache"
)

type PaintingHandler struct {
	paintingService    *services.PaintingService
	submissionService  *services.SubmissionService
	descriptionService *services.DescriptionService
	cfg                *config.Config
}

func NewPaintingHandler(
	paintingService *services.PaintingService,
	submissionService *services.SubmissionService,
	descriptionService *services.DescriptionService,
	cfg *config.Config,
) *PaintingHandler {
	return &PaintingHandler{
		paintingService:    paintingService,
		submissionService:  submissionService,
		descriptionService: descriptionService,
		cfg:                cfg,
	}
}

// paintingView is the wire shape of one painting, with the derived
// presentation fields the storefront needs alongside the record itself.
type paintingView struct {
	models.Painting
	Images       []string `json:"images"`
	AspectRatio  float64  `json:"aspect_ratio"`
	CollageScale float64  `json:"collage_scale"`
	PriceDisplay string   `json:"price_display"`
	Available    bool     `json:"available"`
}

func (h *PaintingHandler) view(p models.Painting) paintingView {
	return paintingView{
		Painting:     p,
		Images:       p.Images(),
		AspectRatio:  artwork.AspectRatio(p.Dimensions),
		CollageScale: artwork.CollageScale(p.Dimensions, h.cfg.Gallery.BaseCollageArea),
		PriceDisplay: p.Price.Display(h.cfg.Gallery.Currency),
		Available:    p.Available(),
	}
}

func (h *PaintingHandler) views(paintings []models.Painting) []paintingView {
	out := make([]paintingView, 0, len(paintings))
	for _, p := range paintings {
		out = append(out, h.view(p))
	}
	return out
}

// filterFromQuery maps the shared query-string filters; the admin listing
// layers its own predicates on top.
func filterFromQuery(c *gin.Context) artwork.Filter {
	filter := artwork.Filter{
		Genre:  c.Query("genre"),
		Search: c.Query("search"),
	}

	switch c.Query("availability") {
	case "available":
		filter.Availability = artwork.AvailabilityAvailable
	case "sold":
		filter.Availability = artwork.AvailabilitySold
	}

	if yearStr := c.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.Year = year
		}
	}

	filter.Featured = triStateFromQuery(c, "featured")

	return filter
}

func triStateFromQuery(c *gin.Context, name string) artwork.TriState {
	if v := c.Query(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			if b {
				return artwork.TriYes
			}
			return artwork.TriNo
		}
	}
	return artwork.TriAny
}

// GET /paintings
func (h *PaintingHandler) GetPaintings(c *gin.Context) {
	filter := filterFromQuery(c)
	// Works still on the easel never reach the public gallery.
	filter.InProgress = artwork.TriNo

	limit := h.cfg.Gallery.PageSize
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	paintings, total, err := h.paintingService.List(c.Request.Context(), viewcache.ViewGallery, filter, limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponseWithMeta(c, gin.H{
		"paintings": h.views(paintings),
	}, gin.H{
		"total":     total,
		"count":     len(paintings),
		"page_size": h.cfg.Gallery.PageSize,
	})
}

// GET /paintings/featured
func (h *PaintingHandler) GetFeaturedPaintings(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	paintings, err := h.paintingService.GetFeatured(c.Request.Context(), limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"paintings": h.views(paintings),
	})
}

// GET /paintings/:id
func (h *PaintingHandler) GetPainting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid painting ID", nil)
		return
	}

	painting, err := h.paintingService.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			utils.NotFoundResponse(c, i18n.KeyPaintingNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	response := gin.H{
		"painting": h.view(*painting),
	}

	if prev, next, err := h.paintingService.Neighbors(c.Request.Context(), id); err == nil {
		response["previous_id"] = prev
		response["next_id"] = next
	}

	// Clients may hold the detail page for as long as the server-side
	// cache would.
	c.Header("Cache-Control", detailCacheControl())
	utils.SuccessResponse(c, response)
}

func detailCacheControl() string {
	return fmt.Sprintf("public, max-age=%d", int(viewcache.DetailTTL.Seconds()))
}

// GET /admin/paintings
// The admin table is page-based, unlike the public gallery's growing
// prefix.
func (h *PaintingHandler) GetAdminPaintings(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := filterFromQuery(c)
	filter.Search = params.Search
	filter.InProgress = triStateFromQuery(c, "in_progress")
	if needs, err := strconv.ParseBool(c.Query("needs_attention")); err == nil {
		filter.NeedsAttention = needs
	}

	paintings, total, err := h.paintingService.List(c.Request.Context(), viewcache.ViewAdmin, filter, 0)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	page := paintings
	if offset := params.Offset(); offset < len(page) {
		page = page[offset:]
	} else {
		page = nil
	}
	page = artwork.Take(page, params.Limit)

	result := utils.CreatePaginationResult(h.views(page), int64(total), params)
	utils.PaginatedResponse(c, result)
}

// GET /admin/dashboard
func (h *PaintingHandler) GetDashboard(c *gin.Context) {
	stats, err := h.paintingService.GetDashboardStats(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}

// POST /admin/paintings
func (h *PaintingHandler) CreatePainting(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	draft, err := draftFromForm(c)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "form"), err.Error())
		return
	}

	primary, err := imageFromForm(c, "image")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	if primary != nil {
		defer primary.File.Close()
	}

	additional, closeAll, err := imagesFromForm(c, "image_versions")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	defer closeAll()

	painting, err := h.submissionService.Create(c.Request.Context(), *draft, primary, additional, nil)
	if err != nil {
		h.writeSubmissionError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyPaintingCreated),
		"painting": h.view(*painting),
	})
}

// PUT /admin/paintings/:id
func (h *PaintingHandler) UpdatePainting(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid painting ID", nil)
		return
	}

	patch, err := patchFromForm(c)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "form"), err.Error())
		return
	}

	primary, err := imageFromForm(c, "image")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	if primary != nil {
		defer primary.File.Close()
	}

	additional, closeAll, err := imagesFromForm(c, "image_versions")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	defer closeAll()

	painting, err := h.submissionService.Update(c.Request.Context(), id, *patch, primary, additional, nil)
	if err != nil {
		h.writeSubmissionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyPaintingUpdated),
		"painting": h.view(*painting),
	})
}

// DELETE /admin/paintings/:id
func (h *PaintingHandler) DeletePainting(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid painting ID", nil)
		return
	}

	if err := h.submissionService.Delete(c.Request.Context(), id, nil); err != nil {
		h.writeSubmissionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPaintingDeleted),
	})
}

// POST /admin/paintings/price-suggestion
func (h *PaintingHandler) SuggestPrice(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		Dimensions        string  `json:"dimensions" validate:"required,dimensions"`
		RatePerSquareInch float64 `json:"rate_per_square_inch"`
		MaterialCosts     float64 `json:"material_costs"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	dims, _ := artwork.ParseDimensions(req.Dimensions)
	rate := req.RatePerSquareInch
	if rate == 0 {
		rate = h.cfg.Gallery.DefaultRatePerSqI
	}

	suggested := artwork.SuggestedPrice(artwork.PricingInput{
		Height:            dims.Height,
		Width:             dims.Width,
		RatePerSquareInch: rate,
		MaterialCosts:     req.MaterialCosts,
	})

	utils.SuccessResponse(c, gin.H{
		"suggested_price": suggested,
		"area":            dims.Area(),
		"rate":            rate,
	})
}

// POST /admin/paintings/:id/description
// Drafts listing copy for an existing record. Body fields override the
// stored ones so the admin can preview against unsaved edits.
func (h *PaintingHandler) GenerateDescription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid painting ID", nil)
		return
	}

	painting, err := h.paintingService.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			utils.NotFoundResponse(c, i18n.KeyPaintingNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	req := services.DescriptionRequest{
		Title:      painting.Title,
		Medium:     painting.Medium,
		Dimensions: painting.Dimensions,
		Genre:      painting.Genre,
	}

	var body services.DescriptionRequest
	if err := c.ShouldBindJSON(&body); err == nil {
		if body.Title != "" {
			req.Title = body.Title
		}
		if body.Medium != "" {
			req.Medium = body.Medium
		}
		if body.Dimensions != "" {
			req.Dimensions = body.Dimensions
		}
		if body.Genre != "" {
			req.Genre = body.Genre
		}
		req.Notes = body.Notes
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"description": h.descriptionService.Generate(&req),
	})
}

// writeSubmissionError maps workflow failures onto HTTP statuses.
func (h *PaintingHandler) writeSubmissionError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", ve.Error(), ve.Fields)
		return
	}

	var ue *apperrors.UploadError
	if errors.As(err, &ue) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), ue.Error())
		return
	}

	if apperrors.IsNotFound(err) {
		utils.NotFoundResponse(c, i18n.KeyPaintingNotFound)
		return
	}

	utils.InternalErrorResponse(c, err.Error())
}

// draftFromForm reads every create-form field from a multipart submission.
func draftFromForm(c *gin.Context) (*services.PaintingDraft, error) {
	draft := &services.PaintingDraft{
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		Dimensions:      c.PostForm("dimensions"),
		Medium:          c.PostForm("medium"),
		Genre:           c.PostForm("genre"),
		ReferenceCredit: c.PostForm("reference_credit"),
	}

	if yearStr := c.PostForm("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, err
		}
		draft.Year = year
	}

	price, err := parsePriceField(c.PostForm("price"))
	if err != nil {
		return nil, err
	}
	draft.Price = price

	draft.Sold = c.PostForm("sold") == "true"
	draft.Featured = c.PostForm("featured") == "true"
	draft.InProgress = c.PostForm("in_progress") == "true"

	if rateStr := c.PostForm("rate_per_square_inch"); rateStr != "" {
		if rate, err := strconv.ParseFloat(rateStr, 64); err == nil {
			draft.RatePerSquareInch = rate
		}
	}
	if costsStr := c.PostForm("material_costs"); costsStr != "" {
		if costs, err := strconv.ParseFloat(costsStr, 64); err == nil {
			draft.MaterialCosts = costs
		}
	}

	return draft, nil
}

// patchFromForm includes only the fields actually present in the form, so
// an untouched field never overwrites stored data.
func patchFromForm(c *gin.Context) (*services.PaintingPatch, error) {
	patch := &services.PaintingPatch{}

	setString := func(name string, dst **string) {
		if v, ok := c.GetPostForm(name); ok {
			*dst = &v
		}
	}
	setBool := func(name string, dst **bool) {
		if v, ok := c.GetPostForm(name); ok {
			b := v == "true"
			*dst = &b
		}
	}

	setString("title", &patch.Title)
	setString("description", &patch.Description)
	setString("dimensions", &patch.Dimensions)
	setString("medium", &patch.Medium)
	setString("genre", &patch.Genre)
	setString("reference_credit", &patch.ReferenceCredit)
	setBool("sold", &patch.Sold)
	setBool("featured", &patch.Featured)
	setBool("in_progress", &patch.InProgress)

	if yearStr, ok := c.GetPostForm("year"); ok {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, err
		}
		patch.Year = &year
	}

	if priceStr, ok := c.GetPostForm("price"); ok {
		price, err := parsePriceField(priceStr)
		if err != nil {
			return nil, err
		}
		patch.Price = &price
	}

	if rateStr, ok := c.GetPostForm("rate_per_square_inch"); ok {
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			return nil, err
		}
		patch.RatePerSquareInch = &rate
	}
	if costsStr, ok := c.GetPostForm("material_costs"); ok {
		costs, err := strconv.ParseFloat(costsStr, 64)
		if err != nil {
			return nil, err
		}
		patch.MaterialCosts = &costs
	}

	return patch, nil
}

// parsePriceField accepts an amount, the enquire sentinel, or blank.
func parsePriceField(s string) (models.Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Price{}, nil
	}
	if strings.EqualFold(s, models.EnquireSentinel) {
		return models.EnquirePrice(), nil
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Price{}, err
	}
	// The column scanner refuses non-positive amounts, so a record written
	// with one could never be read back.
	if amount <= 0 {
		return models.Price{}, fmt.Errorf("price must be positive, got %v", amount)
	}
	return models.FixedPrice(amount), nil
}

func imageFromForm(c *gin.Context, field string) (*services.ImageUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		// Absent file field means no image change was requested.
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &services.ImageUpload{File: file, Header: header}, nil
}

func imagesFromForm(c *gin.Context, field string) ([]*services.ImageUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, nil
	}

	headers := form.File[field]
	uploads := make([]*services.ImageUpload, 0, len(headers))
	closeAll := func() {
		for _, u := range uploads {
			u.File.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		uploads = append(uploads, &services.ImageUpload{File: file, Header: header})
	}

	return uploads, closeAll, nil
}
