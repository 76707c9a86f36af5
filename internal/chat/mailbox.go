package chat

import (
	"sort"
	"sync"
	"time"

	"github.com/ME-Tii/customer-list/internal/apperr"
	"github.com/ME-Tii/customer-list/internal/store"
)

// Mailboxes maps each user to their private message history. A send writes
// two copies under one lock: the recipient's, and a Sent-flagged copy in
// the sender's own box, so reading a single mailbox yields the complete
// conversation view without touching other users' boxes.
//
// Mailboxes grow without bound; the public log cap deliberately does not
// apply here.
type Mailboxes struct {
	mu    sync.Mutex
	doc   *store.Document
	boxes map[string][]PrivateMessage
}

// NewMailboxes loads the persisted mailbox document from doc.
func NewMailboxes(doc *store.Document) (*Mailboxes, error) {
	m := &Mailboxes{doc: doc, boxes: make(map[string][]PrivateMessage)}
	if err := doc.Load(&m.boxes); err != nil {
		return nil, err
	}
	return m, nil
}

// Send validates pm, stamps the current time if the caller did not, and
// appends it to the recipient's and sender's mailboxes. Returns the
// recipient's copy.
func (m *Mailboxes) Send(pm PrivateMessage) (PrivateMessage, error) {
	if pm.To == "" {
		return PrivateMessage{}, apperr.Validation("recipient required")
	}
	if pm.From == "" {
		return PrivateMessage{}, apperr.Validation("sender required")
	}
	if pm.Timestamp.IsZero() {
		pm.Timestamp = time.Now()
	}
	pm.Sent = false

	sent := pm
	sent.Sent = true

	m.mu.Lock()
	defer m.mu.Unlock()

	m.boxes[pm.To] = append(m.boxes[pm.To], pm)
	m.boxes[pm.From] = append(m.boxes[pm.From], sent)
	return pm, m.doc.Save(m.boxes)
}

// For returns every message in userID's mailbox, sorted by timestamp
// ascending. Sent and received copies both live there by construction.
func (m *Mailboxes) For(userID string) []PrivateMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]PrivateMessage, len(m.boxes[userID]))
	copy(out, m.boxes[userID])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
