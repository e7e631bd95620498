// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dcoppard/gallery-backend/internal/apperrors"
	"github.com/dcoppard/gallery-backend/internal/config"
)

// MaxImageSize mirrors the admin form's client-side limit so oversized
// files are rejected consistently on both sides.
const MaxImageSize = 5 * 1024 * 1024

const imageFolder = "paintings"

var allowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: config}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// UploadImage stores a painting image and returns its public URL. Size and
// type violations come back as *apperrors.UploadError so the submission
// workflow aborts before anything is persisted.
func (s *StorageService) UploadImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > MaxImageSize {
		return nil, &apperrors.UploadError{
			Filename: header.Filename,
			Err:      fmt.Errorf("file size %d bytes exceeds maximum %d bytes", header.Size, MaxImageSize),
		}
	}

	fileExt := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, allowedType := range allowedImageTypes {
		if fileExt == allowedType {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, &apperrors.UploadError{
			Filename: header.Filename,
			Err:      fmt.Errorf("file type %s is not allowed", fileExt),
		}
	}

	if err := s.validateImage(file); err != nil {
		return nil, &apperrors.UploadError{Filename: header.Filename, Err: err}
	}

	// Generate unique object key
	key := s.generateKey(header.Filename)

	// Read file content
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, &apperrors.UploadError{
			Filename: header.Filename,
			Err:      fmt.Errorf("failed to read file: %w", err),
		}
	}

	contentType := header.Header.Get("Content-Type")

	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, key, contentType, header.Filename)
	}

	return s.uploadToLocal(fileBytes, key, contentType)
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType, filename string) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return nil, &apperrors.UploadError{
			Filename: filename,
			Err:      fmt.Errorf("failed to upload to S3: %w", err),
		}
	}

	return &UploadResult{
		URL:      s.publicURL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	// Local development fallback; assets are served from ./uploads.
	url := fmt.Sprintf("http://%s:%s/uploads/%s", s.config.Server.Host, s.config.Server.Port, key)

	return &UploadResult{
		URL:      url,
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

// DeleteImage removes a stored image by its public URL. Unknown URLs
// (placeholders, external references) are ignored.
func (s *StorageService) DeleteImage(url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return nil
	}

	if s.s3Client == nil {
		logrus.WithField("key", key).Info("Local mode: image delete skipped")
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("failed to delete image from S3: %w", err)
	}

	return nil
}

func (s *StorageService) GeneratePresignedURL(key string, expiration time.Duration) (string, error) {
	if s.s3Client == nil {
		return "", fmt.Errorf("S3 client not configured")
	}

	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expiration)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url, nil
}

func (s *StorageService) generateKey(originalName string) string {
	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(originalName))
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s_%s%s", imageFolder, timestamp, id.String()[:8], ext)
}

func (s *StorageService) publicURL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

// keyFromURL reverses publicURL. Only URLs under this service's bucket,
// CloudFront distribution or local uploads path resolve to a key.
func (s *StorageService) keyFromURL(url string) (string, bool) {
	prefixes := []string{
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.config.AWS.S3Bucket, s.config.AWS.Region),
	}
	if s.config.AWS.CloudFrontURL != "" {
		prefixes = append(prefixes, strings.TrimSuffix(s.config.AWS.CloudFrontURL, "/")+"/")
	}
	if idx := strings.Index(url, "/uploads/"); idx >= 0 {
		return url[idx+len("/uploads/"):], true
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(url, prefix) {
			return strings.TrimPrefix(url, prefix), true
		}
	}

	return "", false
}

func (s *StorageService) validateImage(file multipart.File) error {
	// Read first few bytes to check file signature
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}
	buffer = buffer[:n]

	// Reset file pointer
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if !isValidImageType(buffer) {
		return fmt.Errorf("invalid image file")
	}

	return nil
}

func isValidImageType(buffer []byte) bool {
	// JPEG
	if len(buffer) >= 3 && buffer[0] == 0xFF && buffer[1] == 0xD8 && buffer[2] == 0xFF {
		return true
	}

	// PNG
	if len(buffer) >= 8 && buffer[0] == 0x89 && buffer[1] == 0x50 && buffer[2] == 0x4E && buffer[3] == 0x47 {
		return true
	}

	// GIF
	if len(buffer) >= 6 && (string(buffer[0:6]) == "GIF87a" || string(buffer[0:6]) == "GIF89a") {
		return true
	}

	// WebP (RIFF....WEBP)
	if len(buffer) >= 12 && string(buffer[0:4]) == "RIFF" && string(buffer[8:12]) == "WEBP" {
		return true
	}

	return false
}
