// Package upstream talks to the remote MosFood order API and keeps the
// credential it authenticates with.
package upstream

import (
	"strconv"
	"strings"
	"sync"

	"mosfood/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultStudentID = 1001

// KeyStore holds the upstream API key in memory. Persisting the key is
// deliberately out of scope; a rejected key is forgotten and the
// storefront asks for a new one.
type KeyStore struct {
	mu        sync.RWMutex
	key       string
	studentID int
	logger    zerolog.Logger
}

// NewKeyStore creates an empty key store.
func NewKeyStore(logger zerolog.Logger) *KeyStore {
	return &KeyStore{
		logger: logger.With().Str("component", "keystore").Logger(),
	}
}

// Set validates and stores an API key. Anything that is not a UUIDv4
// is rejected locally, before any network call.
func (s *KeyStore) Set(raw string) error {
	key := strings.TrimSpace(raw)
	if key == "" {
		return model.ErrInvalidAPIKey
	}

	id, err := uuid.Parse(key)
	if err != nil || id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		s.logger.Warn().Msg("rejected API key: not a UUIDv4")
		return model.ErrInvalidAPIKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
	s.studentID = deriveStudentID(key)

	s.logger.Info().
		Str("key_prefix", key[:8]).
		Int("student_id", s.studentID).
		Msg("API key set")

	return nil
}

// Key returns the stored key, and whether one is stored at all.
func (s *KeyStore) Key() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key, s.key != ""
}

// StudentID returns the student identifier derived from the key, or
// the default when no key is stored.
func (s *KeyStore) StudentID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.studentID == 0 {
		return defaultStudentID
	}
	return s.studentID
}

// Forget drops the stored key. Called when the upstream rejects it;
// the next operation will demand re-entry.
func (s *KeyStore) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key != "" {
		s.logger.Warn().Msg("forgetting stored API key")
	}
	s.key = ""
	s.studentID = 0
}

// deriveStudentID builds a student identifier from the first four
// digits of the key, falling back to the shared default when the key
// carries fewer.
func deriveStudentID(key string) int {
	var digits strings.Builder
	for _, r := range key {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 4 {
				break
			}
		}
	}
	id, err := strconv.Atoi(digits.String())
	if err != nil || id == 0 {
		return defaultStudentID
	}
	return id
}
