package req

import "sort"

// Store is the in-memory requirement table for one run, keyed by
// requirement id with load order preserved. A re-added id replaces the
// earlier entry in place.
type Store struct {
	order []*Requirement
	byID  map[string]*Requirement
	cal   map[string]struct{}
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]*Requirement),
		cal:  make(map[string]struct{}),
	}
}

// Add inserts a requirement, replacing any earlier one with the same id.
func (s *Store) Add(r *Requirement) {
	if prev, ok := s.byID[r.ID]; ok {
		for i, existing := range s.order {
			if existing == prev {
				s.order[i] = r
				break
			}
		}
	} else {
		s.order = append(s.order, r)
	}
	s.byID[r.ID] = r
}

// Get returns the requirement with the given id.
func (s *Store) Get(id string) (*Requirement, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// All returns requirements in load order.
func (s *Store) All() []*Requirement {
	return s.order
}

// ByCategory returns requirements of one category in load order.
func (s *Store) ByCategory(c Category) []*Requirement {
	var out []*Requirement
	for _, r := range s.order {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

// Len is the number of loaded requirements.
func (s *Store) Len() int {
	return len(s.order)
}

// IDs returns all requirement ids, sorted.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AddCalibrationName records a valid calibration parameter name.
func (s *Store) AddCalibrationName(name string) {
	if name != "" {
		s.cal[name] = struct{}{}
	}
}

// HasCalibrationNames reports whether any valid names were loaded.
// Reference-existence checks only apply when this is true.
func (s *Store) HasCalibrationNames() bool {
	return len(s.cal) > 0
}

// HasCalibrationName reports whether name is in the valid set.
func (s *Store) HasCalibrationName(name string) bool {
	_, ok := s.cal[name]
	return ok
}

// CalibrationNames returns the valid calibration names, sorted.
func (s *Store) CalibrationNames() []string {
	names := make([]string, 0, len(s.cal))
	for n := range s.cal {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
