package chat

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ME-Tii/customer-list/internal/apperr"
	"github.com/ME-Tii/customer-list/internal/store"
)

func newTestMailboxes(t *testing.T) *Mailboxes {
	t.Helper()
	doc := store.NewDocument(filepath.Join(t.TempDir(), "private_messages.json"))
	m, err := NewMailboxes(doc)
	if err != nil {
		t.Fatalf("NewMailboxes() error = %v", err)
	}
	return m
}

func TestSendWritesBothMailboxes(t *testing.T) {
	m := newTestMailboxes(t)

	if _, err := m.Send(PrivateMessage{From: "a", To: "b", Body: "hi"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	forA := m.For("a")
	if len(forA) != 1 {
		t.Fatalf("For(a) = %d entries, want 1", len(forA))
	}
	if !forA[0].Sent {
		t.Error("sender's copy must carry the sent flag")
	}

	forB := m.For("b")
	if len(forB) != 1 {
		t.Fatalf("For(b) = %d entries, want 1", len(forB))
	}
	if forB[0].Sent {
		t.Error("recipient's copy must not carry the sent flag")
	}
	if forB[0].From != "a" || forB[0].To != "b" || forB[0].Body != "hi" {
		t.Errorf("recipient copy = %+v", forB[0])
	}
}

func TestSendRequiresRecipient(t *testing.T) {
	m := newTestMailboxes(t)

	_, err := m.Send(PrivateMessage{From: "a", Body: "hi"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Send without recipient error = %v, want Validation", err)
	}
	if got := m.For("a"); len(got) != 0 {
		t.Errorf("rejected send left entries: %v", got)
	}
}

func TestSendStampsTimestamp(t *testing.T) {
	m := newTestMailboxes(t)

	stored, err := m.Send(PrivateMessage{From: "a", To: "b", Body: "hi"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if stored.Timestamp.IsZero() {
		t.Error("timestamp not defaulted")
	}

	when := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	stored, err = m.Send(PrivateMessage{From: "a", To: "b", Body: "later", Timestamp: when})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !stored.Timestamp.Equal(when) {
		t.Errorf("caller timestamp overwritten: %v", stored.Timestamp)
	}
}

func TestForSortsByTimestamp(t *testing.T) {
	m := newTestMailboxes(t)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	// delivered out of order on purpose
	m.Send(PrivateMessage{From: "b", To: "a", Body: "second", Timestamp: base.Add(time.Minute)})
	m.Send(PrivateMessage{From: "a", To: "b", Body: "first", Timestamp: base})
	m.Send(PrivateMessage{From: "c", To: "a", Body: "third", Timestamp: base.Add(2 * time.Minute)})

	got := m.For("a")
	if len(got) != 3 {
		t.Fatalf("For(a) = %d entries, want 3", len(got))
	}
	want := []string{"first", "second", "third"}
	for i, body := range want {
		if got[i].Body != body {
			t.Errorf("For(a)[%d] = %q, want %q", i, got[i].Body, body)
		}
	}
}

func TestMailboxReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "private_messages.json")

	m, err := NewMailboxes(store.NewDocument(path))
	if err != nil {
		t.Fatalf("NewMailboxes() error = %v", err)
	}
	if _, err := m.Send(PrivateMessage{From: "a", To: "b", Body: "persisted"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	reloaded, err := NewMailboxes(store.NewDocument(path))
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if got := reloaded.For("b"); len(got) != 1 || got[0].Body != "persisted" {
		t.Errorf("reloaded For(b) = %v", got)
	}
	if got := reloaded.For("a"); len(got) != 1 || !got[0].Sent {
		t.Errorf("reloaded For(a) = %v", got)
	}
}
