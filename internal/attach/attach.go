package attach

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"aarogya/internal/models"
)

// MaxImageBytes caps uploads at 5 MiB, matching the provider's practical
// limit for inline images.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrInvalidType = errors.New("please select an image file (JPEG, PNG, etc.)")
	ErrTooLarge    = errors.New("image size should be less than 5MB")
)

// Prepare validates the selected file and encodes it as a base64 data URL
// ready to send to the vision endpoint. The attachment is held in memory
// only; nothing is written anywhere.
func Prepare(path string) (*models.Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxImageBytes {
		return nil, ErrTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	// strip parameters such as "; charset=..."
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrInvalidType
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return &models.Attachment{
		MimeType:  mimeType,
		DataURL:   fmt.Sprintf("data:%s;base64,%s", mimeType, encoded),
		SizeBytes: info.Size(),
	}, nil
}
