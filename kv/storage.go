package kv

import "github.com/indigo-web/utils/strcomp"

// Pair is a single header as it was met in the request. The key isn't normalized.
type Pair struct {
	Key, Value string
}

// Storage keeps header pairs in the order they were received. Lookups are linear and
// case-insensitive, which beats a map on the amount of headers a request usually has.
// The strings themselves are owned by whoever added them, the storage never copies them.
type Storage struct {
	pairs  []Pair
	values []string
}

// NewPrealloc returns an empty storage with room for n pairs.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add appends the pair, even if the key is already presented.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{Key: key, Value: value})
	return s
}

// Get returns the first value of the key.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Value is like Get, but returns an empty string if the key is missing.
func (s *Storage) Value(key string) string {
	value, _ := s.Get(key)
	return value
}

// Values returns every value of the key, or nil if there are none. The returned slice
// is reused by the next call.
func (s *Storage) Values(key string) []string {
	s.values = s.values[:0]

	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			s.values = append(s.values, pair.Value)
		}
	}

	if len(s.values) == 0 {
		return nil
	}

	return s.values
}

func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return len(s.pairs) == 0
}

// Expose returns the underlying pairs. They must not be modified.
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Clear drops all the pairs, keeping the allocated memory.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}
