// Package client is the Go storefront client: an API client for the
// Closet Cater backend plus the view state used to render the catalog.
package client

import (
	"encoding/json"
	"os"
	"sync"
)

// Storage keys, kept from the browser storefront.
const (
	keyAuthToken = "authToken"
	keyAdminInfo = "adminInfo"
)

// Store is a minimal key-value persistence contract for session state.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// AdminInfo is the identity returned by login, minus the token.
type AdminInfo struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Session holds the signed-in identity behind an injected Store, replacing
// ambient browser storage so tests can supply their own backend.
type Session struct {
	store Store
}

func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Token returns the stored bearer credential, empty when signed out.
func (s *Session) Token() string {
	v, _ := s.store.Get(keyAuthToken)
	return v
}

// AdminInfo returns the stored identity, or false when signed out or the
// stored value is unreadable.
func (s *Session) AdminInfo() (AdminInfo, bool) {
	v, ok := s.store.Get(keyAdminInfo)
	if !ok {
		return AdminInfo{}, false
	}
	var info AdminInfo
	if err := json.Unmarshal([]byte(v), &info); err != nil {
		return AdminInfo{}, false
	}
	return info, true
}

// SignIn persists the credential and identity.
func (s *Session) SignIn(token string, info AdminInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return err
	}
	if err := s.store.Set(keyAuthToken, token); err != nil {
		return err
	}
	return s.store.Set(keyAdminInfo, string(raw))
}

// SignOut removes both keys.
func (s *Session) SignOut() error {
	if err := s.store.Delete(keyAuthToken); err != nil {
		return err
	}
	return s.store.Delete(keyAdminInfo)
}

// MemoryStore is an in-process Store, safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// FileStore persists session state as a JSON file, the closest local
// analog to browser local storage.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	m := map[string]string{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *FileStore) save(m map[string]string) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return "", false
	}
	v, ok := m[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	return s.save(m)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	delete(m, key)
	return s.save(m)
}
