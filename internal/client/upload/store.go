package upload

import "sync"

// Store holds the session's optimistic entries. Removal is idempotent and
// tombstoned: once a key has been removed it can never be re-added, so a
// late reconciliation path cannot resurrect an entry the other path already
// retired.
type Store struct {
	mu      sync.Mutex
	entries map[string]*Entry
	removed map[string]struct{}

	// OnChange, if set, is invoked with a copy of the entry after every
	// mutation. UI layers consume these as a progress/state sequence; the
	// pipeline's correctness never depends on them. The callback runs with
	// the store lock held and must not call back into the Store.
	OnChange func(Entry)
}

// NewStore returns an empty optimistic-entry store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*Entry),
		removed: make(map[string]struct{}),
	}
}

// Add registers a new entry. It reports false for a key that was already
// removed (the entry stays retired) or is already present.
func (s *Store) Add(e Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, gone := s.removed[e.Key]; gone {
		return false
	}
	if _, ok := s.entries[e.Key]; ok {
		return false
	}
	s.entries[e.Key] = &e
	s.notifyLocked(e)
	return true
}

// Get returns a copy of the entry for key.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Update applies fn to the entry for key, if present, and notifies.
func (s *Store) Update(key string, fn func(*Entry)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return
	}
	fn(e)
	s.notifyLocked(*e)
}

// Remove retires the entry for key. Removing an absent or already-removed
// key is a no-op; either reconciliation path may call it first, or both.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removed[key] = struct{}{}
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
}

// Snapshot returns copies of all live entries.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}
	return out
}

// Clear drops all entries and tombstones. Called on sign-out.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*Entry)
	s.removed = make(map[string]struct{})
}

func (s *Store) notifyLocked(e Entry) {
	if s.OnChange != nil {
		s.OnChange(e)
	}
}
