// internals/helpers/oss/blob_service.go
package helper

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService is the uniform upload/delete facade used by controllers.

Student create/update is a two-step flow (upload object, then write the row);
controllers call DeleteByPublicURL as compensating cleanup when the row write
fails, so no orphaned object is left behind.
*/
type BlobService interface {
	UploadStudentImage(ctx context.Context, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// --------------------------------------------------
// Aliyun OSS implementation
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv builds the service from ENV. prefix is optional
// (example: "students/").
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadStudentImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "file not found")
	}
	if fh.Size > MaxUploadSize() {
		return "", fiber.NewError(fiber.StatusBadRequest, "image exceeds the 5 MB limit")
	}

	f, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "cannot open uploaded file")
	}
	defer f.Close()

	data, err := ConvertToWebP(f)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "unsupported or corrupt image")
	}

	key, err := b.svc.UploadBytes(ctx, webpName(fh.Filename), "image/webp", data)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "upload to object storage failed")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}

func webpName(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		filename = filename[:i]
	}
	return filename + ".webp"
}

// --------------------------------------------------
// Controller helpers
// --------------------------------------------------

// IsMultipart reports whether the request is multipart/form-data.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

var defaultImageFields = []string{"image", "file", "photo", "profile_image"}

// GetImageFile looks for a file across the usual form field names.
// Returns (nil, nil) when no file was sent so the caller can fall back.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, nil
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

// --------------------------------------------------
// Mock for unit tests
// --------------------------------------------------

type MockBlobService struct {
	UploadStudentImageFn func(ctx context.Context, fh *multipart.FileHeader) (string, error)
	DeleteByPublicURLFn  func(ctx context.Context, publicURL string) error

	Deleted []string
}

func (m *MockBlobService) UploadStudentImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if m.UploadStudentImageFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadStudentImageFn(ctx, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	m.Deleted = append(m.Deleted, publicURL)
	if m.DeleteByPublicURLFn == nil {
		return nil
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}
