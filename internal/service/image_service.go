package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
	"fittrack/fitness-tracker/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // The key client needs to report back on confirm
}

// ConfirmUploadInput describes an object the client finished uploading.
type ConfirmUploadInput struct {
	ObjectKey   string
	FileName    string
	ContentType string
	Size        int64
}

// ImageService hands out presigned URLs for entity images. Images are stored
// under a per-owner prefix so a confirmed key proves who uploaded it.
type ImageService interface {
	RequestUploadURL(ctx context.Context, ownerID primitive.ObjectID, contentType string) (*UploadURLResponse, error)
	ConfirmUpload(ctx context.Context, ownerID primitive.ObjectID, in ConfirmUploadInput) (*domain.Upload, error)
	GetDownloadURL(ctx context.Context, ownerID primitive.ObjectID, uploadID string) (string, error)
	DeleteUpload(ctx context.Context, ownerID primitive.ObjectID, uploadID string) error
}

type imageService struct {
	uploadRepo  repository.UploadRepository
	fileStorage storage.FileStorage
}

// NewImageService creates a new instance of imageService.
func NewImageService(uploadRepo repository.UploadRepository, fileStorage storage.FileStorage) ImageService {
	return &imageService{
		uploadRepo:  uploadRepo,
		fileStorage: fileStorage,
	}
}

func ownerPrefix(ownerID primitive.ObjectID) string {
	return path.Join("images", ownerID.Hex()) + "/"
}

func imageExtension(contentType string) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := strings.CutPrefix(ct, "image/")
	if !ok || ext == "" || strings.ContainsAny(ext, "/;. ") {
		return "", newError(ErrInvalidArgument, "invalid or missing image content type %q", contentType)
	}
	return ext, nil
}

func (s *imageService) RequestUploadURL(ctx context.Context, ownerID primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	ext, err := imageExtension(contentType)
	if err != nil {
		return nil, err
	}

	objectKey := ownerPrefix(ownerID) + fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate upload url: %w", err)
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmUpload records metadata for an object the owner uploaded with a
// presigned URL. Keys outside the owner's prefix are rejected.
func (s *imageService) ConfirmUpload(ctx context.Context, ownerID primitive.ObjectID, in ConfirmUploadInput) (*domain.Upload, error) {
	if in.ObjectKey == "" || path.Clean(in.ObjectKey) != in.ObjectKey || !strings.HasPrefix(in.ObjectKey, ownerPrefix(ownerID)) {
		return nil, newError(ErrInvalidArgument, "object key %q does not belong to this user", in.ObjectKey)
	}
	if _, err := imageExtension(in.ContentType); err != nil {
		return nil, err
	}
	if in.Size < 0 {
		return nil, newError(ErrInvalidArgument, "size must not be negative")
	}

	upload := &domain.Upload{
		UserID:      ownerID,
		S3ObjectKey: in.ObjectKey,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		Size:        in.Size,
	}
	if _, err := s.uploadRepo.Create(ctx, upload); err != nil {
		return nil, repoError(err, "upload")
	}
	return upload, nil
}

func (s *imageService) GetDownloadURL(ctx context.Context, ownerID primitive.ObjectID, uploadID string) (string, error) {
	id, err := parseID(uploadID, "upload")
	if err != nil {
		return "", err
	}
	upload, err := s.uploadRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return "", repoError(err, "upload")
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, upload.S3ObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", fmt.Errorf("generate download url: %w", err)
	}
	return url, nil
}

// DeleteUpload removes the stored object, then its metadata. Metadata is kept
// when the object delete fails so the call can be retried.
func (s *imageService) DeleteUpload(ctx context.Context, ownerID primitive.ObjectID, uploadID string) error {
	id, err := parseID(uploadID, "upload")
	if err != nil {
		return err
	}
	upload, err := s.uploadRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return repoError(err, "upload")
	}
	if err := s.fileStorage.DeleteObject(ctx, upload.S3ObjectKey); err != nil {
		return fmt.Errorf("delete object %s: %w", upload.S3ObjectKey, err)
	}
	if err := s.uploadRepo.Delete(ctx, ownerID, id); err != nil {
		return repoError(err, "upload")
	}
	return nil
}
