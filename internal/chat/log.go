package chat

import (
	"fmt"
	"sync"
	"time"

	"github.com/ME-Tii/customer-list/internal/apperr"
	"github.com/ME-Tii/customer-list/internal/store"
)

// Log is the bounded public chat history. Appends past the limit drop the
// oldest entries; append-and-trim runs atomically under one lock, so
// concurrent appenders can never trim past the bound.
//
// A failed document write is surfaced to the caller but the in-memory
// append is not rolled back; memory and disk re-converge on the next
// successful write.
type Log struct {
	mu      sync.Mutex
	doc     *store.Document
	limit   int
	maxBody int
	entries []Message
}

// NewLog loads the persisted history from doc. Zero or negative limits fall
// back to the defaults.
func NewLog(doc *store.Document, limit, maxBody int) (*Log, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyChars
	}

	l := &Log{doc: doc, limit: limit, maxBody: maxBody}
	if err := doc.Load(&l.entries); err != nil {
		return nil, err
	}
	if len(l.entries) > limit {
		l.entries = l.entries[len(l.entries)-limit:]
	}
	return l, nil
}

// Append validates m, stamps defaults and adds it to the tail, trimming the
// head down to the limit. Returns the stored message.
func (l *Log) Append(m Message) (Message, error) {
	if len([]rune(m.Body)) > l.maxBody {
		return Message{}, apperr.Validation(fmt.Sprintf("message too long (max %d characters)", l.maxBody))
	}
	if m.Body == "" && m.Attachment == nil {
		return Message{}, apperr.Validation("message content required")
	}
	if m.Sender == "" {
		m.Sender = AnonymousSender
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, m)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
	return m, l.doc.Save(l.entries)
}

// System appends a server-authored notification.
func (l *Log) System(text string) error {
	_, err := l.Append(Message{Sender: SystemSender, Body: text})
	return err
}

// All returns the history in insertion order, oldest first.
func (l *Log) All() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Message, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the current number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
