// internal/services/submission_service_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcoppard/gallery-backend/internal/apperrors"
	"github.com/dcoppard/gallery-backend/internal/models"
)

// fakePaintingStore is an in-memory PaintingStore for exercising the
// submission workflow without a database.
type fakePaintingStore struct {
	paintings map[uuid.UUID]*models.Painting
	createErr error
	updateErr error
}

func newFakePaintingStore() *fakePaintingStore {
	return &fakePaintingStore{paintings: make(map[uuid.UUID]*models.Painting)}
}

func (f *fakePaintingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Painting, error) {
	p, ok := f.paintings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaintingStore) Create(_ context.Context, painting *models.Painting) error {
	if f.createErr != nil {
		return f.createErr
	}
	if painting.ID == uuid.Nil {
		painting.ID = uuid.New()
	}
	copied := *painting
	f.paintings[painting.ID] = &copied
	return nil
}

func (f *fakePaintingStore) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Painting, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	p, ok := f.paintings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if v, ok := updates["title"].(string); ok {
		p.Title = v
	}
	if v, ok := updates["image_url"].(string); ok {
		p.ImageURL = v
	}
	if v, ok := updates["sold"].(bool); ok {
		p.Sold = v
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaintingStore) Delete(_ context.Context, id uuid.UUID) (*models.Painting, error) {
	p, ok := f.paintings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(f.paintings, id)
	return p, nil
}

// fakeImageStore records uploads and deletions and can fail after a given
// number of successful uploads.
type fakeImageStore struct {
	uploaded  []string
	deleted   []string
	failAfter int // -1 never fails
	count     int
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{failAfter: -1}
}

func (f *fakeImageStore) UploadImage(_ multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	if f.failAfter >= 0 && f.count >= f.failAfter {
		return nil, &apperrors.UploadError{Filename: header.Filename, Err: errors.New("storage unavailable")}
	}
	f.count++
	url := fmt.Sprintf("/uploads/%s", header.Filename)
	f.uploaded = append(f.uploaded, url)
	return &UploadResult{URL: url, Key: header.Filename}, nil
}

func (f *fakeImageStore) DeleteImage(url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func upload(name string) *ImageUpload {
	return &ImageUpload{Header: &multipart.FileHeader{Filename: name}}
}

func recordEvents(events *[]SubmissionEvent) ProgressFunc {
	return func(e SubmissionEvent) {
		*events = append(*events, e)
	}
}

func states(events []SubmissionEvent) []SubmissionState {
	out := make([]SubmissionState, 0, len(events))
	for _, e := range events {
		out = append(out, e.State)
	}
	return out
}

func validDraft() PaintingDraft {
	return PaintingDraft{
		Title:      "Morning Light",
		Dimensions: "24 x 36 inches",
		Medium:     "Oil on canvas",
		Year:       2023,
		Price:      models.FixedPrice(500),
	}
}

func TestSubmissionCreate(t *testing.T) {
	store := newFakePaintingStore()
	images := newFakeImageStore()
	svc := NewSubmissionService(store, images)

	var events []SubmissionEvent
	painting, err := svc.Create(context.Background(), validDraft(),
		upload("front.jpg"), []*ImageUpload{upload("detail.jpg")}, recordEvents(&events))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/front.jpg", painting.ImageURL)
	assert.Equal(t, []string{"/uploads/detail.jpg"}, []string(painting.ImageVersions))
	assert.Len(t, store.paintings, 1)

	assert.Equal(t, []SubmissionState{
		SubmissionValidating,
		SubmissionUploading, // 0
		SubmissionUploading, // front done
		SubmissionUploading, // detail done
		SubmissionPersisting,
		SubmissionSucceeded,
	}, states(events))

	// Progress steps with completed uploads.
	assert.Equal(t, 0, events[1].Progress)
	assert.Equal(t, 50, events[2].Progress)
	assert.Equal(t, 100, events[3].Progress)
}

func TestSubmissionCreateValidationListsEveryMissingField(t *testing.T) {
	store := newFakePaintingStore()
	images := newFakeImageStore()
	svc := NewSubmissionService(store, images)

	var events []SubmissionEvent
	_, err := svc.Create(context.Background(), PaintingDraft{}, nil, nil, recordEvents(&events))
	require.Error(t, err)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)

	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"title", "dimensions", "image"}, fields)

	// Nothing was uploaded or persisted, and the run ended in Failed.
	assert.Empty(t, images.uploaded)
	assert.Empty(t, store.paintings)
	assert.Equal(t, SubmissionFailed, events[len(events)-1].State)
}

func TestSubmissionCreateRejectsTooManyVersions(t *testing.T) {
	svc := NewSubmissionService(newFakePaintingStore(), newFakeImageStore())

	extra := []*ImageUpload{upload("1.jpg"), upload("2.jpg"), upload("3.jpg"), upload("4.jpg")}
	_, err := svc.Create(context.Background(), validDraft(), upload("front.jpg"), extra, nil)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "image_versions", ve.Fields[0].Field)
}

func TestSubmissionCreateUploadFailureAbortsBeforePersist(t *testing.T) {
	store := newFakePaintingStore()
	images := newFakeImageStore()
	images.failAfter = 1 // second upload fails
	svc := NewSubmissionService(store, images)

	var events []SubmissionEvent
	_, err := svc.Create(context.Background(), validDraft(),
		upload("front.jpg"), []*ImageUpload{upload("detail.jpg")}, recordEvents(&events))

	var ue *apperrors.UploadError
	require.ErrorAs(t, err, &ue)

	// The record is untouched and the partial batch was cleaned up.
	assert.Empty(t, store.paintings)
	assert.Equal(t, []string{"/uploads/front.jpg"}, images.deleted)
	assert.NotContains(t, states(events), SubmissionPersisting)
	assert.Equal(t, SubmissionFailed, events[len(events)-1].State)
}

func TestSubmissionCreatePersistFailureCleansUpUploads(t *testing.T) {
	store := newFakePaintingStore()
	store.createErr = &apperrors.PersistenceError{Op: "create", Err: errors.New("connection reset")}
	images := newFakeImageStore()
	svc := NewSubmissionService(store, images)

	_, err := svc.Create(context.Background(), validDraft(), upload("front.jpg"), nil, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"/uploads/front.jpg"}, images.deleted)
}

func TestSubmissionUpdateReplacesImageAfterUpload(t *testing.T) {
	store := newFakePaintingStore()
	images := newFakeImageStore()
	svc := NewSubmissionService(store, images)

	existing := &models.Painting{ID: uuid.New(), Title: "Morning Light", ImageURL: "/uploads/old.jpg"}
	store.paintings[existing.ID] = existing

	var events []SubmissionEvent
	updated, err := svc.Update(context.Background(), existing.ID, PaintingPatch{},
		upload("new.jpg"), nil, recordEvents(&events))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/new.jpg", updated.ImageURL)
	// New image went up before the old one came down.
	assert.Equal(t, []string{"/uploads/new.jpg"}, images.uploaded)
	assert.Equal(t, []string{"/uploads/old.jpg"}, images.deleted)
	assert.Equal(t, SubmissionSucceeded, events[len(events)-1].State)
}

func TestSubmissionUpdateWithoutImageSkipsUploading(t *testing.T) {
	store := newFakePaintingStore()
	images := newFakeImageStore()
	svc := NewSubmissionService(store, images)

	existing := &models.Painting{ID: uuid.New(), Title: "Morning Light", ImageURL: "/uploads/front.jpg"}
	store.paintings[existing.ID] = existing

	title := "Morning Light II"
	var events []SubmissionEvent
	updated, err := svc.Update(context.Background(), existing.ID, PaintingPatch{Title: &title},
		nil, nil, recordEvents(&events))
	require.NoError(t, err)

	assert.Equal(t, "Morning Light II", updated.Title)
	assert.Equal(t, "/uploads/front.jpg", updated.ImageURL)
	assert.Empty(t, images.uploaded)
	assert.Empty(t, images.deleted)
	assert.Equal(t, []SubmissionState{
		SubmissionValidating,
		SubmissionPersisting,
		SubmissionSucceeded,
	}, states(events))
}

func TestSubmissionUpdateUploadFailureLeavesRecordUntouched(t *testing.T) {
	store := newFakePaintingStore()
	images := newFakeImageStore()
	images.failAfter = 0
	svc := NewSubmissionService(store, images)

	existing := &models.Painting{ID: uuid.New(), Title: "Morning Light", ImageURL: "/uploads/old.jpg"}
	store.paintings[existing.ID] = existing

	title := "Renamed"
	_, err := svc.Update(context.Background(), existing.ID, PaintingPatch{Title: &title},
		upload("new.jpg"), nil, nil)

	var ue *apperrors.UploadError
	require.ErrorAs(t, err, &ue)

	kept := store.paintings[existing.ID]
	assert.Equal(t, "Morning Light", kept.Title)
	assert.Equal(t, "/uploads/old.jpg", kept.ImageURL)
	assert.Empty(t, images.deleted)
}

func TestSubmissionUpdateUnknownID(t *testing.T) {
	svc := NewSubmissionService(newFakePaintingStore(), newFakeImageStore())

	_, err := svc.Update(context.Background(), uuid.New(), PaintingPatch{}, nil, nil, nil)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSubmissionDelete(t *testing.T) {
	store := newFakePaintingStore()
	images := newFakeImageStore()
	svc := NewSubmissionService(store, images)

	existing := &models.Painting{
		ID:            uuid.New(),
		Title:         "Morning Light",
		ImageURL:      "/uploads/front.jpg",
		ImageVersions: []string{"/uploads/detail.jpg"},
	}
	store.paintings[existing.ID] = existing

	require.NoError(t, svc.Delete(context.Background(), existing.ID, nil))
	assert.Empty(t, store.paintings)
	assert.Equal(t, []string{"/uploads/front.jpg", "/uploads/detail.jpg"}, images.deleted)

	// Deleting the same record again reports not found.
	err := svc.Delete(context.Background(), existing.ID, nil)
	assert.True(t, apperrors.IsNotFound(err))
}
