package session

import (
	"sync"
	"testing"
	"time"

	"github.com/gofiber/storage"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/iamapi"
)

// testStorage is a minimal in-memory implementation of storage.Storage.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func newTestStorage() *testStorage {
	return &testStorage{data: make(map[string][]byte)}
}

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func signinResponse(roles []string) *iamapi.SignInResponse {
	return &iamapi.SignInResponse{
		AccessToken: "t1",
		Account: iamapi.Account{
			ID:       1,
			Username: "alice",
			Email:    "a@x.com",
			Roles:    roles,
		},
	}
}

func TestLogin_AuthenticatedAndReadable(t *testing.T) {
	store := NewStore(newTestStorage(), time.Minute)
	id := store.NewID()

	data, err := store.Login(id, signinResponse([]string{"ROLE_USER"}))
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if !data.IsAuthenticated() {
		t.Fatal("expected authenticated session after login")
	}

	// simulated reload: materialize again from storage only
	reloaded := store.Read(id)
	if !reloaded.IsAuthenticated() {
		t.Fatal("expected authenticated session after reload")
	}

	if reloaded.Token != "t1" || reloaded.User.Username != "alice" {
		t.Errorf("unexpected session %+v", reloaded)
	}

	if len(reloaded.User.Roles) != 1 || reloaded.User.Roles[0] != "ROLE_USER" {
		t.Errorf("unexpected roles %v", reloaded.User.Roles)
	}
}

func TestLogout_ClearsBothEntries(t *testing.T) {
	st := newTestStorage()
	store := NewStore(st, time.Minute)
	id := store.NewID()

	if _, err := store.Login(id, signinResponse(nil)); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := store.Logout(id); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if store.Read(id).IsAuthenticated() {
		t.Fatal("expected empty session after logout")
	}

	st.mu.RLock()
	remaining := len(st.data)
	st.mu.RUnlock()

	if remaining != 0 {
		t.Fatalf("expected both storage entries removed, %d left", remaining)
	}

	// idempotent: a second logout must not fail
	if err := store.Logout(id); err != nil {
		t.Fatalf("second Logout() error = %v", err)
	}
}

func TestRead_MissingEntriesYieldEmptySession(t *testing.T) {
	st := newTestStorage()
	store := NewStore(st, time.Minute)

	if store.Read("").IsAuthenticated() {
		t.Error("empty id must read as no session")
	}

	if store.Read("unknown").IsAuthenticated() {
		t.Error("unknown id must read as no session")
	}

	// token present but user record missing
	_ = st.Set("sid.token", []byte("t1"), time.Minute)

	if store.Read("sid").IsAuthenticated() {
		t.Error("token without user record must read as no session")
	}
}

func TestRead_MalformedUserRecordYieldsEmptySession(t *testing.T) {
	st := newTestStorage()
	store := NewStore(st, time.Minute)

	_ = st.Set("sid.token", []byte("t1"), time.Minute)
	_ = st.Set("sid.user", []byte("{not json"), time.Minute)

	data := store.Read("sid")
	if data.IsAuthenticated() {
		t.Fatal("malformed user record must read as no session")
	}

	if data.Token != "" {
		t.Errorf("Token = %q, want empty", data.Token)
	}
}

func TestRolesNormalization_Idempotent(t *testing.T) {
	store := NewStore(newTestStorage(), time.Minute)
	id := store.NewID()

	// signin response without a roles list
	data, err := store.Login(id, signinResponse(nil))
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if data.User.Roles == nil || len(data.User.Roles) != 0 {
		t.Fatalf("expected empty non-nil roles, got %#v", data.User.Roles)
	}

	// passing through storage again must not change the result
	reloaded := store.Read(id)
	if reloaded.User.Roles == nil || len(reloaded.User.Roles) != 0 {
		t.Fatalf("expected empty non-nil roles after reload, got %#v", reloaded.User.Roles)
	}
}

func TestHasRole(t *testing.T) {
	data := Data{
		Token: "t1",
		User:  iamapi.Account{Roles: []string{"ROLE_USER", "ROLE_ADMIN"}},
	}

	if !data.HasRole("ROLE_ADMIN") {
		t.Error("expected HasRole(ROLE_ADMIN) = true")
	}

	if data.HasRole("ROLE_AUDITOR") {
		t.Error("expected HasRole(ROLE_AUDITOR) = false")
	}

	if (Data{}).HasRole("ROLE_USER") {
		t.Error("empty session must have no roles")
	}
}

func TestNewID_LengthAndUniqueness(t *testing.T) {
	store := NewStore(newTestStorage(), time.Minute)

	a, b := store.NewID(), store.NewID()
	if len(a) != idLength || len(b) != idLength {
		t.Fatalf("unexpected id lengths %d, %d", len(a), len(b))
	}

	if a == b {
		t.Fatal("session ids must not repeat")
	}
}
