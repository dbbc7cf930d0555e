package kv

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for (string, string) pairs with
// case-insensitive keys. It acts as a map but uses linear search instead,
// which proves to be more efficient on relatively low amounts of entries,
// which header blocks practically always are.
//
// Each key holds exactly one value: Set on an existing key replaces the
// value it had before.
type Storage struct {
	pairs    []Pair
	last     int
	keysBuff []string
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance with already inserted values from the given
// map. As maps are unordered, the resulting entry order is unspecified.
func NewFromMap(m map[string]string) *Storage {
	kv := NewPrealloc(len(m))

	for key, value := range m {
		kv.Set(key, value)
	}

	return kv
}

// Set binds the value to the key. If the key is already present, no matter in
// which case, its previous value is replaced.
func (s *Storage) Set(key, value string) *Storage {
	for i, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			s.pairs[i].Value = value
			s.last = i
			return s
		}
	}

	s.last = len(s.pairs)
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})

	return s
}

// AppendToLast concatenates the passed text straight onto the value of the
// most recently set pair, with no separator in between. An overwrite counts:
// after a duplicate Set, the text lands on the overwritten pair, not on
// whichever one happens to sit at the end. It reports false if the storage
// holds no pairs at all.
func (s *Storage) AppendToLast(text string) bool {
	if len(s.pairs) == 0 {
		return false
	}

	s.pairs[s.last].Value += text

	return true
}

// Value returns the value corresponding to the key, otherwise an empty string.
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or the fallback
// passed via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool indicating whether the key was found at all.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has reports whether the key is present.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Keys returns all the keys in insertion order.
//
// WARNING: calling it twice will override values returned by the first call.
// Consider copying the returned slice for safe use.
func (s *Storage) Keys() []string {
	s.keysBuff = s.keysBuff[:0]

	for _, pair := range s.pairs {
		s.keysBuff = append(s.keysBuff, pair.Key)
	}

	return s.keysBuff
}

// Len returns the number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

// Iter returns an iterator over the pairs in insertion order.
func (s *Storage) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Clear removes all the pairs, keeping the underlying storage for reuse.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}
