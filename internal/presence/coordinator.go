package presence

import (
	"log"
	"time"

	"github.com/ME-Tii/customer-list/internal/apperr"
)

// Account is the slice of a user record presence cares about.
type Account struct {
	Username      string
	AccessGranted bool
}

// Directory is the account collaborator consulted before presence changes.
// Find returns nil (and no error) for an unknown user.
type Directory interface {
	Find(username string) (*Account, error)
	MarkSeen(username string, when time.Time) error
}

// Notifier receives the system messages emitted on presence transitions.
// The public chat log implements it.
type Notifier interface {
	System(text string) error
}

// Coordinator drives the per-user OFFLINE/ONLINE machine. Login and
// heartbeat both touch the session store, but only a real offline-to-online
// edge appends a "has logged in" notification; heartbeat refreshes stay
// silent, as does timeout eviction, which has no request context to
// attribute.
type Coordinator struct {
	store *Store
	notes Notifier
	dir   Directory
}

func NewCoordinator(store *Store, notes Notifier, dir Directory) *Coordinator {
	return &Coordinator{store: store, notes: notes, dir: dir}
}

// Login moves username online. The session touch and the notification are
// two separate operations on two stores; there is no atomicity between
// them.
func (c *Coordinator) Login(username string, now time.Time) error {
	acct, err := c.dir.Find(username)
	if err != nil {
		return apperr.Storage("look up user", err)
	}
	if acct == nil {
		return apperr.NotFound("unknown user")
	}

	if err := c.dir.MarkSeen(username, now); err != nil {
		log.Printf("mark last seen for %s: %v", username, err)
	}

	c.store.EvictStale(now)
	created := c.store.Touch(username, now)
	if !created {
		return nil
	}
	return c.notes.System(username + " has logged in")
}

// Heartbeat refreshes username's session. It only ever touches: a session
// evicted between heartbeats is recreated silently, never re-announced.
func (c *Coordinator) Heartbeat(username string, now time.Time) (time.Time, error) {
	if username == "" {
		return time.Time{}, apperr.AuthRequired("no session found")
	}
	acct, err := c.dir.Find(username)
	if err != nil {
		return time.Time{}, apperr.Storage("look up user", err)
	}
	if acct == nil {
		return time.Time{}, apperr.AuthRequired("no session found")
	}

	c.store.Touch(username, now)
	return now, nil
}

// Logout moves username offline. Idempotent: without a live session it
// succeeds with no effect and, unlike a real logout, appends nothing.
func (c *Coordinator) Logout(username string, now time.Time) error {
	if !c.store.Remove(username) {
		return nil
	}
	return c.notes.System(username + " has logged out")
}

// Online evicts stale sessions and returns the accounts still present.
// Sessions whose account has since been deleted are dropped from the view.
func (c *Coordinator) Online(now time.Time) ([]Account, error) {
	ids := c.store.Active(now)

	out := make([]Account, 0, len(ids))
	for _, id := range ids {
		acct, err := c.dir.Find(id)
		if err != nil {
			return nil, apperr.Storage("look up user", err)
		}
		if acct == nil {
			c.store.Remove(id)
			continue
		}
		out = append(out, *acct)
	}
	return out, nil
}
