package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"curio/internal/config"
	"curio/internal/models"
	"curio/internal/repository"

	"github.com/oklog/ulid/v2"
)

const imageRefPrefix = "file:"

// PresignedUpload is the response of the presign operation: a registered
// object key plus time-limited upload and download URLs.
type PresignedUpload struct {
	Key         string    `json:"key"`
	UploadURL   string    `json:"upload_url"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// FileService is the disk-backed object store. URLs carry an expiry and an
// HMAC signature so they can be handed to unauthenticated clients, the same
// contract a cloud provider's presigned URL gives.
type FileService interface {
	CreatePresignedUpload(userID uint, name, mime string, size int64) (*PresignedUpload, error)
	StoreUpload(key string, exp int64, sig string, body io.Reader) (*models.StoredFile, error)
	OpenDownload(key string, exp int64, sig string) (string, *models.StoredFile, error)
	SignDownloadURL(key string) string
	ResolveImageRefs(refs []string) []string
}

type fileServiceImpl struct {
	fileRepo      repository.FileRepository
	configuration config.Configuration
}

func NewFileService(fileRepository repository.FileRepository, configuration *config.Configuration) FileService {
	return &fileServiceImpl{
		fileRepo:      fileRepository,
		configuration: *configuration,
	}
}

func (s *fileServiceImpl) CreatePresignedUpload(userID uint, name, mime string, size int64) (*PresignedUpload, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationf("name is required")
	}
	if size < 0 {
		return nil, validationf("size cannot be negative")
	}

	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	key := ulid.MustNew(ulid.Now(), entropy).String()

	file := &models.StoredFile{Key: key, UserID: userID, Name: name, Mime: mime, Size: size}
	if err := s.fileRepo.Create(file); err != nil {
		return nil, err
	}

	exp := time.Now().Add(s.urlTTL()).Unix()
	return &PresignedUpload{
		Key:         key,
		UploadURL:   s.signedURL("put", key, exp),
		DownloadURL: s.signedURL("get", key, exp),
		ExpiresAt:   time.Unix(exp, 0).UTC(),
	}, nil
}

func (s *fileServiceImpl) StoreUpload(key string, exp int64, sig string, body io.Reader) (*models.StoredFile, error) {
	if err := s.verify("put", key, exp, sig); err != nil {
		return nil, err
	}
	file, err := s.fileRepo.FindByKey(key)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, notFoundf("file %s", key)
	}

	if err := os.MkdirAll(s.configuration.Storage.Path, os.ModePerm); err != nil {
		return nil, err
	}
	dst, err := os.Create(s.diskPath(key))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	written, err := io.Copy(dst, body)
	if err != nil {
		return nil, err
	}
	file.Size = written
	if err := s.fileRepo.Update(file); err != nil {
		return nil, err
	}
	return file, nil
}

// OpenDownload verifies the signature and returns the on-disk path for the
// handler to serve.
func (s *fileServiceImpl) OpenDownload(key string, exp int64, sig string) (string, *models.StoredFile, error) {
	if err := s.verify("get", key, exp, sig); err != nil {
		return "", nil, err
	}
	file, err := s.fileRepo.FindByKey(key)
	if err != nil {
		return "", nil, err
	}
	if file == nil {
		return "", nil, notFoundf("file %s", key)
	}
	path := s.diskPath(key)
	if _, err := os.Stat(path); err != nil {
		return "", nil, notFoundf("file %s", key)
	}
	return path, file, nil
}

func (s *fileServiceImpl) SignDownloadURL(key string) string {
	exp := time.Now().Add(s.urlTTL()).Unix()
	return s.signedURL("get", key, exp)
}

// ResolveImageRefs rewrites stored image references for a response:
// `file:<key>` becomes a time-limited signed URL, anything else (legacy
// public URLs) passes through untouched.
func (s *fileServiceImpl) ResolveImageRefs(refs []string) []string {
	if refs == nil {
		return nil
	}
	resolved := make([]string, len(refs))
	for i, ref := range refs {
		if key, ok := strings.CutPrefix(ref, imageRefPrefix); ok {
			resolved[i] = s.SignDownloadURL(key)
			continue
		}
		resolved[i] = ref
	}
	return resolved
}

func (s *fileServiceImpl) urlTTL() time.Duration {
	return time.Duration(s.configuration.Storage.URLTTLMinutes) * time.Minute
}

func (s *fileServiceImpl) diskPath(key string) string {
	return filepath.Join(s.configuration.Storage.Path, key)
}

func (s *fileServiceImpl) signedURL(op, key string, exp int64) string {
	return fmt.Sprintf("%s/files/%s?exp=%d&sig=%s",
		strings.TrimRight(s.configuration.Server.BaseURL, "/"), key, exp, s.sign(op, key, exp))
}

func (s *fileServiceImpl) sign(op, key string, exp int64) string {
	mac := hmac.New(sha256.New, []byte(s.configuration.Storage.SignSecret))
	fmt.Fprintf(mac, "%s\n%s\n%d", op, key, exp)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *fileServiceImpl) verify(op, key string, exp int64, sig string) error {
	if time.Now().Unix() > exp {
		return fmt.Errorf("%w: url expired", ErrUnauthorized)
	}
	expected := s.sign(op, key, exp)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("%w: bad signature", ErrUnauthorized)
	}
	return nil
}
