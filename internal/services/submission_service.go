// internal/services/submission_service.go
package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/dcoppard/gallery-backend/internal/apperrors"
	"github.com/dcoppard/gallery-backend/internal/artwork"
	"github.com/dcoppard/gallery-backend/internal/models"
)

// SubmissionState enumerates the phases of one admin form submission.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionValidating SubmissionState = "validating"
	SubmissionUploading  SubmissionState = "uploading"
	SubmissionPersisting SubmissionState = "persisting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)

// SubmissionEvent is delivered to the observer on every state transition.
// Upload progress is a simulated stepper driven by completed uploads, not
// wall-clock timers, so tests can assert on the transition sequence.
type SubmissionEvent struct {
	State    SubmissionState
	Progress int // 0-100, meaningful while State == SubmissionUploading
	Err      error
}

// ProgressFunc observes submission state transitions. May be nil.
type ProgressFunc func(SubmissionEvent)

// PaintingStore is the persistence collaborator of the workflow.
type PaintingStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Painting, error)
	Create(ctx context.Context, painting *models.Painting) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Painting, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Painting, error)
}

// ImageStore is the image-storage collaborator of the workflow.
type ImageStore interface {
	UploadImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error)
	DeleteImage(url string) error
}

// ImageUpload pairs an incoming multipart file with its header.
type ImageUpload struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// PaintingDraft carries the full set of form fields for a create.
type PaintingDraft struct {
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Dimensions        string       `json:"dimensions"`
	Medium            string       `json:"medium"`
	Genre             string       `json:"genre"`
	Year              int          `json:"year"`
	Price             models.Price `json:"price"`
	Sold              bool         `json:"sold"`
	Featured          bool         `json:"featured"`
	InProgress        bool         `json:"in_progress"`
	ReferenceCredit   string       `json:"reference_credit"`
	RatePerSquareInch float64      `json:"rate_per_square_inch"`
	MaterialCosts     float64      `json:"material_costs"`
}

// PaintingPatch is a partial update; nil fields are left untouched.
type PaintingPatch struct {
	Title             *string       `json:"title"`
	Description       *string       `json:"description"`
	Dimensions        *string       `json:"dimensions"`
	Medium            *string       `json:"medium"`
	Genre             *string       `json:"genre"`
	Year              *int          `json:"year"`
	Price             *models.Price `json:"price"`
	Sold              *bool         `json:"sold"`
	Featured          *bool         `json:"featured"`
	InProgress        *bool         `json:"in_progress"`
	ReferenceCredit   *string       `json:"reference_credit"`
	RatePerSquareInch *float64      `json:"rate_per_square_inch"`
	MaterialCosts     *float64      `json:"material_costs"`
}

// SubmissionService orchestrates the admin write path: validation, image
// upload, persistence and cleanup. Collaborators sit behind interfaces so
// the state machine is testable without a database or S3.
type SubmissionService struct {
	store  PaintingStore
	images ImageStore
}

func NewSubmissionService(store PaintingStore, images ImageStore) *SubmissionService {
	return &SubmissionService{
		store:  store,
		images: images,
	}
}

// Create validates the draft, uploads the primary and additional images,
// persists the record and reports progress along the way. A missing primary
// image is a validation error; nothing is persisted unless every upload
// succeeded first.
func (s *SubmissionService) Create(ctx context.Context, draft PaintingDraft, primary *ImageUpload, additional []*ImageUpload, observe ProgressFunc) (*models.Painting, error) {
	emit(observe, SubmissionEvent{State: SubmissionValidating})

	if err := validateDraft(draft, primary, additional); err != nil {
		emit(observe, SubmissionEvent{State: SubmissionFailed, Err: err})
		return nil, err
	}

	uploads := append([]*ImageUpload{primary}, additional...)
	urls, err := s.uploadAll(uploads, observe)
	if err != nil {
		emit(observe, SubmissionEvent{State: SubmissionFailed, Err: err})
		return nil, err
	}

	painting := &models.Painting{
		Title:             strings.TrimSpace(draft.Title),
		Description:       draft.Description,
		ImageURL:          urls[0],
		ImageVersions:     urls[1:],
		Dimensions:        draft.Dimensions,
		Medium:            draft.Medium,
		Genre:             draft.Genre,
		Year:              draft.Year,
		Price:             draft.Price,
		Sold:              draft.Sold,
		Featured:          draft.Featured,
		InProgress:        draft.InProgress,
		ReferenceCredit:   draft.ReferenceCredit,
		RatePerSquareInch: draft.RatePerSquareInch,
		MaterialCosts:     draft.MaterialCosts,
	}

	emit(observe, SubmissionEvent{State: SubmissionPersisting, Progress: 100})
	if err := s.store.Create(ctx, painting); err != nil {
		// Persist failed after upload: try not to leave orphaned assets.
		s.cleanupImages(urls)
		emit(observe, SubmissionEvent{State: SubmissionFailed, Err: err})
		return nil, err
	}

	emit(observe, SubmissionEvent{State: SubmissionSucceeded, Progress: 100})
	return painting, nil
}

// Update merges a partial draft onto an existing record. When a new
// primary image is supplied, the old one is deleted only after the new one
// is confirmed uploaded and the record persisted; a failed cleanup is
// logged but never fails the update.
func (s *SubmissionService) Update(ctx context.Context, id uuid.UUID, patch PaintingPatch, newPrimary *ImageUpload, newAdditional []*ImageUpload, observe ProgressFunc) (*models.Painting, error) {
	emit(observe, SubmissionEvent{State: SubmissionValidating})

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		emit(observe, SubmissionEvent{State: SubmissionFailed, Err: err})
		return nil, err
	}

	if err := validatePatch(patch, newAdditional); err != nil {
		emit(observe, SubmissionEvent{State: SubmissionFailed, Err: err})
		return nil, err
	}

	updates := patch.toUpdates()

	var replaced []string

	// Upload before touching the record; never delete-before-replace.
	var uploads []*ImageUpload
	if newPrimary != nil {
		uploads = append(uploads, newPrimary)
	}
	uploads = append(uploads, newAdditional...)

	if len(uploads) > 0 {
		urls, err := s.uploadAll(uploads, observe)
		if err != nil {
			emit(observe, SubmissionEvent{State: SubmissionFailed, Err: err})
			return nil, err
		}

		if newPrimary != nil {
			updates["image_url"] = urls[0]
			if !existing.HasPlaceholderImage() {
				replaced = append(replaced, existing.ImageURL)
			}
			urls = urls[1:]
		}
		if len(newAdditional) > 0 {
			updates["image_versions"] = pq.StringArray(urls)
			replaced = append(replaced, existing.ImageVersions...)
		}
	}

	emit(observe, SubmissionEvent{State: SubmissionPersisting, Progress: 100})
	updated, err := s.store.Update(ctx, id, updates)
	if err != nil {
		emit(observe, SubmissionEvent{State: SubmissionFailed, Err: err})
		return nil, err
	}

	// Old assets go last; losing this race only leaks an image.
	s.cleanupImages(replaced)

	emit(observe, SubmissionEvent{State: SubmissionSucceeded, Progress: 100})
	return updated, nil
}

// Delete removes the record and all of its stored images. Deleting an id
// twice fails with NotFound on the second call.
func (s *SubmissionService) Delete(ctx context.Context, id uuid.UUID, observe ProgressFunc) error {
	emit(observe, SubmissionEvent{State: SubmissionValidating})

	emit(observe, SubmissionEvent{State: SubmissionPersisting})
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		emit(observe, SubmissionEvent{State: SubmissionFailed, Err: err})
		return err
	}

	s.cleanupImages(removed.Images())

	emit(observe, SubmissionEvent{State: SubmissionSucceeded})
	return nil
}

// uploadAll pushes every image to storage, reporting stepped progress.
// Progress is proportional to completed uploads; storage gives us no
// byte-level events.
func (s *SubmissionService) uploadAll(uploads []*ImageUpload, observe ProgressFunc) ([]string, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	emit(observe, SubmissionEvent{State: SubmissionUploading, Progress: 0})

	urls := make([]string, 0, len(uploads))
	for i, upload := range uploads {
		result, err := s.images.UploadImage(upload.File, upload.Header)
		if err != nil {
			// Abort: already-uploaded images from this batch are removed
			// so a failed submission leaves storage unchanged.
			s.cleanupImages(urls)
			return nil, err
		}
		urls = append(urls, result.URL)
		emit(observe, SubmissionEvent{
			State:    SubmissionUploading,
			Progress: (i + 1) * 100 / len(uploads),
		})
	}

	return urls, nil
}

func (s *SubmissionService) cleanupImages(urls []string) {
	for _, url := range urls {
		if url == "" || strings.HasPrefix(url, models.PlaceholderImagePrefix) {
			continue
		}
		if err := s.images.DeleteImage(url); err != nil {
			logrus.WithError(err).WithField("url", url).Warn("Failed to delete stored image")
		}
	}
}

func emit(observe ProgressFunc, event SubmissionEvent) {
	if observe != nil {
		observe(event)
	}
}

func validateDraft(draft PaintingDraft, primary *ImageUpload, additional []*ImageUpload) error {
	var fields []apperrors.FieldError

	if strings.TrimSpace(draft.Title) == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title is required"})
	}
	if _, ok := artwork.ParseDimensions(draft.Dimensions); !ok {
		fields = append(fields, apperrors.FieldError{Field: "dimensions", Message: "dimensions must look like \"24 x 36 inches\""})
	}
	if primary == nil {
		fields = append(fields, apperrors.FieldError{Field: "image", Message: "a primary image is required"})
	}
	if len(additional) > models.MaxImageVersions {
		fields = append(fields, apperrors.FieldError{Field: "image_versions", Message: "at most 3 additional images are allowed"})
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}

func validatePatch(patch PaintingPatch, newAdditional []*ImageUpload) error {
	var fields []apperrors.FieldError

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title cannot be empty"})
	}
	if patch.Dimensions != nil {
		if _, ok := artwork.ParseDimensions(*patch.Dimensions); !ok {
			fields = append(fields, apperrors.FieldError{Field: "dimensions", Message: "dimensions must look like \"24 x 36 inches\""})
		}
	}
	if len(newAdditional) > models.MaxImageVersions {
		fields = append(fields, apperrors.FieldError{Field: "image_versions", Message: "at most 3 additional images are allowed"})
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}

func (p PaintingPatch) toUpdates() map[string]interface{} {
	updates := make(map[string]interface{})

	if p.Title != nil {
		updates["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Dimensions != nil {
		updates["dimensions"] = *p.Dimensions
	}
	if p.Medium != nil {
		updates["medium"] = *p.Medium
	}
	if p.Genre != nil {
		updates["genre"] = *p.Genre
	}
	if p.Year != nil {
		updates["year"] = *p.Year
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.Sold != nil {
		updates["sold"] = *p.Sold
	}
	if p.Featured != nil {
		updates["featured"] = *p.Featured
	}
	if p.InProgress != nil {
		updates["in_progress"] = *p.InProgress
	}
	if p.ReferenceCredit != nil {
		updates["reference_credit"] = *p.ReferenceCredit
	}
	if p.RatePerSquareInch != nil {
		updates["rate_per_square_inch"] = *p.RatePerSquareInch
	}
	if p.MaterialCosts != nil {
		updates["material_costs"] = *p.MaterialCosts
	}

	return updates
}
