// Package session implements the browser session store.
//
// A session pairs the bearer token issued by the IAM backend with the
// account record returned alongside it. The durable storage backend holds
// two independent entries per session id (the raw token and the JSON
// account record), so a process restart or another instance sharing the
// storage observes the same session. The in-memory copy lives only for one
// request; Read is the single way to materialize it.
//
// The store never trusts stored content: malformed or partial entries read
// as "no session" and a missing roles list is normalized to an empty set.
package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/rbac"
	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/uniuri"
)

const (
	// DefaultCookieName carries the session id when none is configured.
	DefaultCookieName = "session"

	tokenSuffix = ".token"
	userSuffix  = ".user"

	// idLength of 32 chars over the uniuri standard charset gives ~190
	// bits of entropy.
	idLength = 32
)

// Store owns the durable session storage. It is created once at startup
// and injected into every handler; there is no package-level instance.
type Store struct {
	storage storage.Storage
	expiry  time.Duration
}

// NewStore creates a session store on top of the given storage backend.
func NewStore(st storage.Storage, expiry time.Duration) *Store {
	if st == nil {
		panic("storage is nil")
	}

	return &Store{storage: st, expiry: expiry}
}

// Data is one materialized session. The zero value is "not logged in".
type Data struct {
	Token string
	User  iamapi.Account
}

// IsAuthenticated is true iff a token is held. The token is never verified
// or expiry-checked client-side; the backend rejects stale tokens itself.
func (d Data) IsAuthenticated() bool {
	return d.Token != ""
}

// HasRole reports whether the session's role-name set contains name.
func (d Data) HasRole(name string) bool {
	return rbac.HasRole(d.User.Roles, name)
}

// NewID generates a new random session id.
func (s *Store) NewID() string {
	return uniuri.NewLen(idLength)
}

// Read materializes the session for the given id. Any missing or malformed
// entry yields an empty session, never an error: the visitor is simply
// asked to log in again.
func (s *Store) Read(id string) Data {
	if id == "" {
		return Data{}
	}

	token, err := s.storage.Get(id + tokenSuffix)
	if err != nil || len(token) == 0 {
		return Data{}
	}

	rawUser, err := s.storage.Get(id + userSuffix)
	if err != nil || len(rawUser) == 0 {
		return Data{}
	}

	var account iamapi.Account
	if err := json.Unmarshal(rawUser, &account); err != nil {
		return Data{}
	}

	return Data{Token: string(token), User: normalize(account)}
}

// Login persists a fresh session from a signin response: the token and the
// account record are written as separate entries before the session data is
// handed back, so a concurrent read observes the new state immediately.
func (s *Store) Login(id string, resp *iamapi.SignInResponse) (Data, error) {
	account := normalize(resp.Account)

	rawUser, err := json.Marshal(account)
	if err != nil {
		return Data{}, err
	}

	if err := s.storage.Set(id+tokenSuffix, []byte(resp.AccessToken), s.expiry); err != nil {
		return Data{}, err
	}

	if err := s.storage.Set(id+userSuffix, rawUser, s.expiry); err != nil {
		return Data{}, err
	}

	return Data{Token: resp.AccessToken, User: account}, nil
}

// Logout removes both storage entries. Safe to call for unknown ids or an
// already logged-out session.
func (s *Store) Logout(id string) error {
	if id == "" {
		return nil
	}

	errToken := s.storage.Delete(id + tokenSuffix)
	errUser := s.storage.Delete(id + userSuffix)

	if errToken != nil {
		return errToken
	}

	return errUser
}

// normalize guarantees a non-nil roles list. The backend contract always
// supplies one, but stored records are not trusted blindly. Idempotent.
func normalize(account iamapi.Account) iamapi.Account {
	if account.Roles == nil {
		account.Roles = []string{}
	}

	return account
}

// Cookie builds the session cookie for a fresh login.
func Cookie(name, id string, expiry time.Duration, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    id,
		MaxAge:   int(expiry.Seconds()),
		Secure:   secure,
		HTTPOnly: true,
		SameSite: "Lax",
	}
}

// ClearCookie builds an expired session cookie for logout.
func ClearCookie(name string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    "",
		MaxAge:   -1,
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}
}
