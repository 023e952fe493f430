package filestorage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestValidateContentType(t *testing.T) {
	for _, contentType := range []string{"image/jpeg", "image/jpg", "image/png", "application/pdf"} {
		header := &multipart.FileHeader{Header: textproto.MIMEHeader{"Content-Type": []string{contentType}}}
		assert.NoError(t, ValidateContentType(header), contentType)
	}

	header := &multipart.FileHeader{Header: textproto.MIMEHeader{"Content-Type": []string{"application/zip"}}}
	assert.ErrorIs(t, ValidateContentType(header), ErrUnsupportedFileType)
}

func TestSaveFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	t.Run("stores under the subdirectory with a generated name", func(t *testing.T) {
		header := uploadFileHeader(t, "My Offer Letter.pdf", "application/pdf", "content")

		relPath, err := storage.SaveFile(header, OfferLetterDir)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(relPath, OfferLetterDir+"/"))
		assert.True(t, strings.HasSuffix(relPath, ".pdf"))
		assert.NotContains(t, relPath, " ")

		data, err := os.ReadFile(filepath.Join(storage.basePath, filepath.FromSlash(relPath)))
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("nil upload is a no-op", func(t *testing.T) {
		relPath, err := storage.SaveFile(nil, CertificateDir)
		require.NoError(t, err)
		assert.Empty(t, relPath)
	})

	t.Run("generated names do not collide", func(t *testing.T) {
		header := uploadFileHeader(t, "bill.png", "image/png", "a")
		first, err := storage.SaveFile(header, BillDir)
		require.NoError(t, err)
		second, err := storage.SaveFile(header, BillDir)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestDeleteFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	t.Run("removes a stored file", func(t *testing.T) {
		header := uploadFileHeader(t, "cert.pdf", "application/pdf", "x")
		relPath, err := storage.SaveFile(header, CertificateDir)
		require.NoError(t, err)

		require.NoError(t, storage.DeleteFile(relPath))
		_, statErr := os.Stat(filepath.Join(storage.basePath, filepath.FromSlash(relPath)))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		assert.NoError(t, storage.DeleteFile("certificates/never-existed.pdf"))
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		assert.NoError(t, storage.DeleteFile(""))
	})

	t.Run("rejects paths escaping the storage root", func(t *testing.T) {
		assert.Error(t, storage.DeleteFile("../outside.txt"))
		assert.Error(t, storage.DeleteFile("/etc/passwd"))
	})
}

func TestFileURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/uploads/certificates/a.pdf", storage.FileURL("certificates/a.pdf"))
	assert.Empty(t, storage.FileURL(""))
}
