package presence

import (
	"testing"
	"time"

	"github.com/ME-Tii/customer-list/internal/apperr"
)

type fakeDirectory struct {
	accounts map[string]bool // username -> accessGranted
	seen     map[string]time.Time
}

func newFakeDirectory(usernames ...string) *fakeDirectory {
	d := &fakeDirectory{
		accounts: make(map[string]bool),
		seen:     make(map[string]time.Time),
	}
	for _, u := range usernames {
		d.accounts[u] = false
	}
	return d
}

func (d *fakeDirectory) Find(username string) (*Account, error) {
	granted, ok := d.accounts[username]
	if !ok {
		return nil, nil
	}
	return &Account{Username: username, AccessGranted: granted}, nil
}

func (d *fakeDirectory) MarkSeen(username string, when time.Time) error {
	d.seen[username] = when
	return nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) System(text string) error {
	n.messages = append(n.messages, text)
	return nil
}

func newTestCoordinator(usernames ...string) (*Coordinator, *recordingNotifier, *Store) {
	store := NewStore(2 * time.Minute)
	notes := &recordingNotifier{}
	coord := NewCoordinator(store, notes, newFakeDirectory(usernames...))
	return coord, notes, store
}

func TestLoginNotifiesOncePerEdge(t *testing.T) {
	coord, notes, _ := newTestCoordinator("alice")
	now := time.Now()

	if err := coord.Login("alice", now); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	// second login while already online must not duplicate the message
	if err := coord.Login("alice", now.Add(time.Second)); err != nil {
		t.Fatalf("second Login() error = %v", err)
	}

	if len(notes.messages) != 1 {
		t.Fatalf("got %d system messages, want 1: %v", len(notes.messages), notes.messages)
	}
	if notes.messages[0] != "alice has logged in" {
		t.Errorf("message = %q, want %q", notes.messages[0], "alice has logged in")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	coord, notes, _ := newTestCoordinator("alice")

	err := coord.Login("mallory", time.Now())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Login(unknown) error = %v, want NotFound", err)
	}
	if len(notes.messages) != 0 {
		t.Errorf("unknown login produced messages: %v", notes.messages)
	}
}

func TestHeartbeatNeverNotifies(t *testing.T) {
	coord, notes, store := newTestCoordinator("alice")
	now := time.Now()

	// heartbeat with no prior session recreates it silently
	if _, err := coord.Heartbeat("alice", now); err != nil {
		t.Fatalf("Heartbeat() error = %v", err)
	}
	// refresh of a live session is silent too
	if _, err := coord.Heartbeat("alice", now.Add(time.Second)); err != nil {
		t.Fatalf("Heartbeat() error = %v", err)
	}

	if len(notes.messages) != 0 {
		t.Errorf("heartbeats produced system messages: %v", notes.messages)
	}
	if active := store.Active(now.Add(time.Second)); len(active) != 1 {
		t.Errorf("Active() = %v, want one session", active)
	}
}

func TestHeartbeatUnauthenticated(t *testing.T) {
	coord, _, store := newTestCoordinator("alice")

	if _, err := coord.Heartbeat("", time.Now()); apperr.KindOf(err) != apperr.KindAuthRequired {
		t.Errorf("Heartbeat(\"\") error = %v, want AuthRequired", err)
	}
	if _, err := coord.Heartbeat("mallory", time.Now()); apperr.KindOf(err) != apperr.KindAuthRequired {
		t.Errorf("Heartbeat(unknown) error = %v, want AuthRequired", err)
	}
	if active := store.Active(time.Now()); len(active) != 0 {
		t.Errorf("failed heartbeats mutated state: %v", active)
	}
}

func TestLogoutNotifiesOnlyWithLiveSession(t *testing.T) {
	coord, notes, _ := newTestCoordinator("alice")
	now := time.Now()

	// logout with no session: idempotent, silent
	if err := coord.Logout("alice", now); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if len(notes.messages) != 0 {
		t.Fatalf("logout without session produced messages: %v", notes.messages)
	}

	if err := coord.Login("alice", now); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := coord.Logout("alice", now.Add(time.Second)); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	want := []string{"alice has logged in", "alice has logged out"}
	if len(notes.messages) != len(want) {
		t.Fatalf("messages = %v, want %v", notes.messages, want)
	}
	for i := range want {
		if notes.messages[i] != want[i] {
			t.Errorf("messages[%d] = %q, want %q", i, notes.messages[i], want[i])
		}
	}
}

func TestTimeoutEvictionIsSilent(t *testing.T) {
	coord, notes, store := newTestCoordinator("alice")
	now := time.Now()

	if err := coord.Login("alice", now); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	accounts, err := coord.Online(now.Add(5 * time.Minute))
	if err != nil {
		t.Fatalf("Online() error = %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("Online() after timeout = %v, want empty", accounts)
	}
	if len(notes.messages) != 1 {
		t.Errorf("timeout eviction emitted a notification: %v", notes.messages)
	}

	// eviction then re-login is a fresh edge and notifies again
	if err := coord.Login("alice", now.Add(6*time.Minute)); err != nil {
		t.Fatalf("re-Login() error = %v", err)
	}
	if len(notes.messages) != 2 {
		t.Errorf("re-login after eviction did not notify: %v", notes.messages)
	}
	if active := store.Active(now.Add(6 * time.Minute)); len(active) != 1 {
		t.Errorf("Active() = %v, want one session", active)
	}
}

func TestOnlineReportsAccessFlag(t *testing.T) {
	store := NewStore(2 * time.Minute)
	notes := &recordingNotifier{}
	dir := newFakeDirectory("alice", "bob")
	dir.accounts["bob"] = true
	coord := NewCoordinator(store, notes, dir)
	now := time.Now()

	if err := coord.Login("alice", now); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := coord.Login("bob", now); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	accounts, err := coord.Online(now)
	if err != nil {
		t.Fatalf("Online() error = %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("Online() = %v, want 2 accounts", accounts)
	}
	for _, a := range accounts {
		if a.Username == "bob" && !a.AccessGranted {
			t.Error("bob should report accessGranted")
		}
		if a.Username == "alice" && a.AccessGranted {
			t.Error("alice should not report accessGranted")
		}
	}
}

func TestLoginUpdatesLastSeen(t *testing.T) {
	store := NewStore(2 * time.Minute)
	notes := &recordingNotifier{}
	dir := newFakeDirectory("alice")
	coord := NewCoordinator(store, notes, dir)
	now := time.Now()

	if err := coord.Login("alice", now); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got, ok := dir.seen["alice"]; !ok || !got.Equal(now) {
		t.Errorf("MarkSeen not called with login time, got %v", got)
	}
}
