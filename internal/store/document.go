// Package store persists application state as whole JSON documents: each
// store owns one file, reads it in full at startup, and writes it in full
// after every mutation. There is no partial update and no write-ahead log;
// callers serialize access under their own lock.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/ME-Tii/customer-list/internal/apperr"
)

// Document is one JSON file on disk.
type Document struct {
	path string
}

func NewDocument(path string) *Document {
	return &Document{path: path}
}

func (d *Document) Path() string { return d.path }

// Load decodes the file into v. A missing or unreadable file is treated as
// an empty document: v is left untouched and no error is returned, so the
// service stays available after a lost or corrupt file.
func (d *Document) Load(v interface{}) error {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("document %s unreadable, starting empty: %v", d.path, err)
		}
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("document %s corrupt, starting empty: %v", d.path, err)
		return nil
	}
	return nil
}

// Save writes v as indented JSON. The write goes to a temp file first and
// is renamed into place so a crash mid-write cannot truncate the document.
func (d *Document) Save(v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperr.Storage("encode document", err)
	}

	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return apperr.Storage("create data dir", err)
	}

	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return apperr.Storage("write document", err)
	}
	if err := os.Rename(tmp, d.path); err != nil {
		return apperr.Storage("replace document", err)
	}
	return nil
}
