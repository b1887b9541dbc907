package mockdirectory

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"playerid/pkg/directory"
)

// Store is an in-memory profile table. Name lookups are case-insensitive, as
// in the real directory; the stored name keeps its original casing.
type Store struct {
	mu     sync.RWMutex
	byName map[string]directory.Profile
	byID   map[uuid.UUID]directory.Profile
}

// NewStore creates a store seeded with profiles.
func NewStore(profiles ...directory.Profile) *Store {
	s := &Store{
		byName: make(map[string]directory.Profile, len(profiles)),
		byID:   make(map[uuid.UUID]directory.Profile, len(profiles)),
	}
	for _, p := range profiles {
		s.Put(p)
	}
	return s
}

// Put adds or replaces a profile.
func (s *Store) Put(p directory.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.byID[p.ID]; ok {
		delete(s.byName, strings.ToLower(old.Name))
	}
	s.byName[strings.ToLower(p.Name)] = p
	s.byID[p.ID] = p
}

// ByName finds a profile by username.
func (s *Store) ByName(name string) (directory.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byName[strings.ToLower(name)]
	return p, ok
}

// ByID finds a profile by identifier.
func (s *Store) ByID(id uuid.UUID) (directory.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// Len returns the number of stored profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// SeedProfiles returns well-known public profiles.
func SeedProfiles() []directory.Profile {
	return []directory.Profile{
		{Name: "Notch", ID: uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")},
		{Name: "Dinnerbone", ID: uuid.MustParse("61699b2e-d327-4a01-9f1e-0ea8c3f06bc6")},
		{Name: "jeb_", ID: uuid.MustParse("853c80ef-3c37-49fd-aa49-938b674adae6")},
	}
}
