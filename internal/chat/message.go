// Package chat holds the public message log and the per-user private
// mailboxes. Both are in-memory stores backed by whole-document JSON files.
package chat

import "time"

// SystemSender marks messages authored by the server itself, e.g. presence
// notifications.
const SystemSender = "SYSTEM"

// AnonymousSender is substituted when a public message arrives without a
// sender identity.
const AnonymousSender = "anonymous"

const (
	DefaultHistoryLimit = 100
	DefaultMaxBodyChars = 500
)

// Attachment describes a stored upload. StoredName is generated server-side;
// the client-supplied OriginalName is kept for display only and never used
// in a storage path.
type Attachment struct {
	StoredName   string `json:"filename"`
	OriginalName string `json:"originalname"`
	MediaType    string `json:"filetype"`
}

// Message is one public chat entry. Immutable once appended.
type Message struct {
	Sender     string      `json:"username"`
	Body       string      `json:"content,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// PrivateMessage is one mailbox entry. Every send stores two copies: the
// recipient's, and the sender's own with Sent set.
type PrivateMessage struct {
	From       string      `json:"from_user"`
	To         string      `json:"to_user"`
	Body       string      `json:"content,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Attachment *Attachment `json:"attachment,omitempty"`
	Sent       bool        `json:"sent,omitempty"`
}
