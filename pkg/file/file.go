package file

import (
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// Upload exposes the metadata of a multipart file that validators read.
// It never opens the file: the content type is the one declared by the client.
type Upload struct {
	fh *multipart.FileHeader
}

// FromHeader wraps a multipart file header.
func FromHeader(fh *multipart.FileHeader) (Upload, error) {
	if fh == nil {
		return Upload{}, ErrNilFileHeader
	}
	return Upload{fh: fh}, nil
}

// ContentType returns the declared Content-Type of the part without parameters,
// e.g. "text/plain" for "text/plain; charset=utf-8". Unparseable values are
// returned trimmed so the MIME validator can still reject them.
func (u Upload) ContentType() string {
	raw := strings.TrimSpace(u.fh.Header.Get("Content-Type"))
	if raw == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return raw
	}
	return mediaType
}

// Size returns the size in bytes reported by the multipart reader.
func (u Upload) Size() int64 {
	return u.fh.Size
}

// Filename returns the sanitized base name of the uploaded file.
func (u Upload) Filename() string {
	return SanitizeFilename(u.fh.Filename)
}

// Extension returns the lowercased extension including the dot.
func (u Upload) Extension() string {
	return strings.ToLower(filepath.Ext(u.Filename()))
}

// Header returns the wrapped file header.
func (u Upload) Header() *multipart.FileHeader {
	return u.fh
}

// SanitizeFilename removes any path components and dangerous characters from a filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
