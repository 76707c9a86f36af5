// Package upload stores client file uploads for message attachments.
package upload

import (
	"encoding/hex"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/ME-Tii/customer-list/internal/apperr"
	"github.com/ME-Tii/customer-list/internal/chat"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Saver writes uploads under generated names. The client filename only
// contributes its extension; it never reaches a filesystem path.
type Saver struct {
	Dir string
}

func NewSaver(dir string) *Saver {
	return &Saver{Dir: dir}
}

// Save stores the upload and returns its attachment descriptor.
func (s *Saver) Save(c *gin.Context, fh *multipart.FileHeader) (*chat.Attachment, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, apperr.Storage("create uploads dir", err)
	}

	u := uuid.New()
	stored := hex.EncodeToString(u[:]) + filepath.Ext(fh.Filename)

	if err := c.SaveUploadedFile(fh, filepath.Join(s.Dir, stored)); err != nil {
		return nil, apperr.Storage("save upload", err)
	}

	mediaType := fh.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	return &chat.Attachment{
		StoredName:   stored,
		OriginalName: filepath.Base(fh.Filename),
		MediaType:    mediaType,
	}, nil
}
