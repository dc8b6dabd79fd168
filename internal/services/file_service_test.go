package services

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"curio/internal/repository"

	"github.com/stretchr/testify/assert"
)

func newFileService(t *testing.T) (FileService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	return NewFileService(repository.NewFileRepository(env.db), env.configuration), env
}

func signatureParams(t *testing.T, rawURL string) (int64, string) {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	assert.NoError(t, err)
	exp, err := strconv.ParseInt(parsed.Query().Get("exp"), 10, 64)
	assert.NoError(t, err)
	return exp, parsed.Query().Get("sig")
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	svc, _ := newFileService(t)

	presigned, err := svc.CreatePresignedUpload(1, "photo.jpg", "image/jpeg", 3)
	assert.NoError(t, err)
	assert.Len(t, presigned.Key, 26)
	assert.True(t, presigned.ExpiresAt.After(time.Now()))

	exp, sig := signatureParams(t, presigned.UploadURL)
	stored, err := svc.StoreUpload(presigned.Key, exp, sig, strings.NewReader("abc"))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stored.Size)

	exp, sig = signatureParams(t, presigned.DownloadURL)
	path, file, err := svc.OpenDownload(presigned.Key, exp, sig)
	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", file.Mime)

	contents, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "abc", string(contents))
}

func TestUploadRejectsTamperedSignature(t *testing.T) {
	svc, _ := newFileService(t)

	presigned, err := svc.CreatePresignedUpload(1, "photo.jpg", "image/jpeg", 3)
	assert.NoError(t, err)

	exp, _ := signatureParams(t, presigned.UploadURL)
	_, err = svc.StoreUpload(presigned.Key, exp, "deadbeef", strings.NewReader("abc"))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// a download signature cannot be replayed for an upload
	exp, sig := signatureParams(t, presigned.DownloadURL)
	_, err = svc.StoreUpload(presigned.Key, exp, sig, strings.NewReader("abc"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUploadRejectsExpiredURL(t *testing.T) {
	svc, _ := newFileService(t)

	presigned, err := svc.CreatePresignedUpload(1, "photo.jpg", "image/jpeg", 3)
	assert.NoError(t, err)

	_, _, err = svc.OpenDownload(presigned.Key, time.Now().Add(-time.Minute).Unix(), "irrelevant")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDownloadMissingFile(t *testing.T) {
	svc, _ := newFileService(t)

	presigned, err := svc.CreatePresignedUpload(1, "photo.jpg", "image/jpeg", 3)
	assert.NoError(t, err)

	// registered but never uploaded
	exp, sig := signatureParams(t, presigned.DownloadURL)
	_, _, err = svc.OpenDownload(presigned.Key, exp, sig)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPresignValidation(t *testing.T) {
	svc, _ := newFileService(t)

	_, err := svc.CreatePresignedUpload(1, "  ", "image/jpeg", 3)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreatePresignedUpload(1, "photo.jpg", "image/jpeg", -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolveImageRefs(t *testing.T) {
	svc, _ := newFileService(t)

	presigned, err := svc.CreatePresignedUpload(1, "photo.jpg", "image/jpeg", 3)
	assert.NoError(t, err)

	refs := svc.ResolveImageRefs([]string{
		"file:" + presigned.Key,
		"https://cdn.example.com/legacy.jpg",
	})
	assert.Len(t, refs, 2)
	assert.Contains(t, refs[0], "/files/"+presigned.Key)
	assert.Contains(t, refs[0], "sig=")
	assert.Equal(t, "https://cdn.example.com/legacy.jpg", refs[1])

	assert.Nil(t, svc.ResolveImageRefs(nil))
}
