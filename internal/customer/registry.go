// Package customer keeps the flat customer registry, persisted as a single
// XML document.
package customer

import (
	"encoding/xml"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ME-Tii/customer-list/internal/apperr"
)

// Customer is one registry record.
type Customer struct {
	ID         int    `xml:"id" json:"id"`
	Name       string `xml:"name" json:"name"`
	Surname    string `xml:"surname" json:"surname"`
	Email      string `xml:"email" json:"email"`
	Newsletter bool   `xml:"newsletter" json:"newsletter"`
	Timestamp  string `xml:"timestamp" json:"timestamp"`
}

type document struct {
	XMLName   xml.Name   `xml:"customers"`
	Customers []Customer `xml:"customer"`
}

// Registry is a lock-guarded in-memory list written back in full after each
// add. Ids are assigned max(id)+1 within the document.
type Registry struct {
	mu        sync.Mutex
	path      string
	customers []Customer
}

// NewRegistry loads path, tolerating a missing or unreadable file as an
// empty registry.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("customer registry %s unreadable, starting empty: %v", path, err)
		}
		return r, nil
	}
	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		log.Printf("customer registry %s corrupt, starting empty: %v", path, err)
		return r, nil
	}
	r.customers = doc.Customers
	return r, nil
}

// Add validates c, assigns the next id and timestamp, and persists the
// registry. Returns the stored record.
func (r *Registry) Add(c Customer) (Customer, error) {
	if c.Name == "" || c.Surname == "" || c.Email == "" {
		return Customer{}, apperr.Validation("name, surname, and email are required")
	}
	if c.Timestamp == "" {
		c.Timestamp = time.Now().Format(time.RFC3339)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := 0
	for _, existing := range r.customers {
		if existing.ID > next {
			next = existing.ID
		}
	}
	c.ID = next + 1

	r.customers = append(r.customers, c)
	return c, r.saveLocked()
}

// All returns the registry in insertion order.
func (r *Registry) All() []Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

// XML renders the registry as a standalone XML document.
func (r *Registry) XML() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.xmlLocked()
}

func (r *Registry) xmlLocked() ([]byte, error) {
	raw, err := xml.MarshalIndent(document{Customers: r.customers}, "", "  ")
	if err != nil {
		return nil, apperr.Storage("encode customers", err)
	}
	return append([]byte(xml.Header), raw...), nil
}

func (r *Registry) saveLocked() error {
	raw, err := r.xmlLocked()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return apperr.Storage("create data dir", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return apperr.Storage("write customers", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return apperr.Storage("replace customers", err)
	}
	return nil
}
