package filestorage

import (
	"mime/multipart"
)

// Purpose-specific subdirectories under the storage root. The relative path
// ("<subdir>/<filename>") is what gets persisted in the database.
const (
	CertificateDir = "certificates"
	OfferLetterDir = "offerletters"
	BillDir        = "bills"
)

// FileStorage defines the interface for attachment storage operations
type FileStorage interface {
	// SaveFile stores an uploaded file under the given subdirectory and
	// returns the relative path to persist
	SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error)

	// DeleteFile removes a stored file; deleting a missing file is not an error
	DeleteFile(relPath string) error

	// FileURL returns the public URL for a stored relative path
	FileURL(relPath string) string
}
