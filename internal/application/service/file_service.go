package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
	"go.uber.org/zap"
)

// FileService stores uploaded files and their metadata
type FileService struct {
	files   repository.Accessor[entity.File]
	store   gateway.ObjectStore
	maxSize int64
	log     *zap.Logger
}

// NewFileService creates a new file service. Uploads whose decoded size
// exceeds maxSize bytes are rejected.
func NewFileService(files repository.Accessor[entity.File], store gateway.ObjectStore, maxSize int64, log *zap.Logger) *FileService {
	return &FileService{files: files, store: store, maxSize: maxSize, log: log}
}

// UploadFileInput represents an upload; Data is base64, optionally as a data URL
type UploadFileInput struct {
	Name        string
	ContentType string
	Data        string
}

// Upload decodes the payload, writes it to users/{uid}/files/{id}/{name} and
// records its metadata.
func (s *FileService) Upload(ctx context.Context, caller *identity.Caller, input *UploadFileInput) (*entity.File, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	name := sanitizeFileName(input.Name)
	contentType := strings.TrimSpace(input.ContentType)
	if name == "" || contentType == "" || input.Data == "" {
		return nil, apperror.NewBadRequestError("name, contentType and data are required")
	}

	data, err := decodeBase64(input.Data)
	if err != nil {
		return nil, apperror.NewBadRequestError("data is not valid base64")
	}
	if len(data) == 0 {
		return nil, apperror.NewBadRequestError("data is empty")
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("File exceeds the maximum size of %d bytes", s.maxSize))
	}

	id := uuid.New()
	key := objectKey(caller.ID(), id, name)
	url, err := s.store.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	file := &entity.File{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         url,
		StorageKey:  key,
	}
	file.ID = id
	if err := s.files.For(caller).Create(ctx, file); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.Warn("failed to remove orphaned object", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}
	return file, nil
}

// GetFile retrieves file metadata by ID
func (s *FileService) GetFile(ctx context.Context, caller *identity.Caller, id uuid.UUID) (*entity.File, error) {
	return s.files.For(caller).Get(ctx, id)
}

// ListFiles lists the caller's files
func (s *FileService) ListFiles(ctx context.Context, caller *identity.Caller, opts repository.ListOptions) ([]entity.File, error) {
	return s.files.For(caller).List(ctx, opts)
}

// DeleteFile removes the metadata and then the stored object
func (s *FileService) DeleteFile(ctx context.Context, caller *identity.Caller, id uuid.UUID) error {
	files := s.files.For(caller)
	file, err := files.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := files.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, file.StorageKey); err != nil {
		s.log.Warn("failed to delete stored object", zap.String("key", file.StorageKey), zap.Error(err))
	}
	return nil
}

func objectKey(userID string, id uuid.UUID, name string) string {
	return path.Join("users", userID, "files", id.String(), name)
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	name = path.Base(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}

func decodeBase64(data string) ([]byte, error) {
	if strings.HasPrefix(data, "data:") {
		if _, payload, ok := strings.Cut(data, ";base64,"); ok {
			data = payload
		}
	}
	data = strings.TrimSpace(data)
	if decoded, err := base64.StdEncoding.DecodeString(data); err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
}
