package users

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/alpha0014/V-Nexus/apperror"
)

// maxImageBytes caps uploaded profile pictures and post images. Images are
// stored inline as data URLs, so an oversized upload would bloat the store.
const maxImageBytes = 5 * 1024 * 1024 // 5MB limit

// DataURLFromUpload reads an uploaded file and converts it into a data-URL
// string. The content type is sniffed from the leading bytes; anything that is
// not an image is rejected. This is the file-to-data-URL loader boundary: it
// accepts a file handle and yields a text-encoded image representation.
func DataURLFromUpload(file io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return "", apperror.NewBadRequestError("failed to read uploaded file", err)
	}
	if len(data) == 0 {
		return "", apperror.NewValidationError("uploaded file is empty", nil)
	}
	if len(data) > maxImageBytes {
		return "", apperror.NewValidationError(fmt.Sprintf("image exceeds the maximum size of %d bytes", maxImageBytes), nil)
	}

	// DetectContentType needs at most the first 512 bytes.
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperror.NewValidationError(fmt.Sprintf("unsupported content type %s: only images are accepted", contentType), nil)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), nil
}
