package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/spf13/afero"
)

var errInvalidKey = errors.New("invalid object key")

// ObjectStore keeps uploaded objects on an afero filesystem. Live mode roots
// it in a directory on disk; stub mode keeps everything in memory.
type ObjectStore struct {
	fs      afero.Fs
	baseURL string
	mode    string
}

// NewDiskStore creates a store rooted at dir, creating it when missing
func NewDiskStore(dir, publicBaseURL string) (*ObjectStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &ObjectStore{
		fs:      afero.NewBasePathFs(osFs, dir),
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		mode:    config.ModeLive,
	}, nil
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore(publicBaseURL string) *ObjectStore {
	return &ObjectStore{
		fs:      afero.NewMemMapFs(),
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		mode:    config.ModeStub,
	}
}

func (s *ObjectStore) Mode() string {
	return s.mode
}

func (s *ObjectStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	name, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, name, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	return s.URL(key), nil
}

func (s *ObjectStore) Delete(_ context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	// The per-object directory only ever holds this one file.
	_ = s.fs.Remove(path.Dir(name))
	return nil
}

// Read returns the stored bytes of key
func (s *ObjectStore) Read(key string) ([]byte, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(s.fs, name)
}

// URL returns the public URL of key
func (s *ObjectStore) URL(key string) string {
	segments := strings.Split(strings.Trim(key, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + strings.Join(segments, "/")
}

// FileSystem exposes the objects for serving over HTTP. Directories are
// hidden so nobody can list another tenant's uploads.
func (s *ObjectStore) FileSystem() http.FileSystem {
	return filesOnly{afero.NewHttpFs(s.fs).Dir("/")}
}

type filesOnly struct {
	http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil || info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}

func cleanKey(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") {
		return "", errInvalidKey
	}
	name := path.Clean("/" + key)
	if name == "/" {
		return "", errInvalidKey
	}
	return name, nil
}
