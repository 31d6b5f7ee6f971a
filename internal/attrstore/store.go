// Package attrstore provides the per-object extension bag that keeps attribute
// text no builder in a chain recognized, so that a build followed by a
// describe reproduces it verbatim.
package attrstore

import (
	"hash/crc32"
	"sort"
)

// Key is the fixed-size storage key derived from an attribute name.
type Key uint32

// KeyFor derives the storage key for name. The derivation is stable across
// processes.
func KeyFor(name string) Key {
	return Key(crc32.ChecksumIEEE([]byte(name)))
}

// Record is one preserved attribute.
type Record struct {
	Name  string
	Value string
}

// Store maps hashed keys to records. The original name is kept beside the
// hash so colliding names stay distinct and enumeration yields exact names.
// The zero value is ready to use. A Store is not safe for concurrent use.
type Store struct {
	entries map[Key][]Record
	count   int
}

// Set stores value under name, replacing any previous value.
func (s *Store) Set(name, value string) {
	if s.entries == nil {
		s.entries = make(map[Key][]Record)
	}
	key := KeyFor(name)
	bucket := s.entries[key]
	for i := range bucket {
		if bucket[i].Name == name {
			bucket[i].Value = value
			return
		}
	}
	s.entries[key] = append(bucket, Record{Name: name, Value: value})
	s.count++
}

// Get returns the value stored under name.
func (s *Store) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, r := range s.entries[KeyFor(name)] {
		if r.Name == name {
			return r.Value, true
		}
	}
	return "", false
}

// Delete removes name. It reports whether anything was removed.
func (s *Store) Delete(name string) bool {
	if s == nil {
		return false
	}
	key := KeyFor(name)
	bucket := s.entries[key]
	for i := range bucket {
		if bucket[i].Name != name {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(s.entries, key)
		} else {
			s.entries[key] = bucket
		}
		s.count--
		return true
	}
	return false
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Records returns every record ordered by name.
func (s *Store) Records() []Record {
	if s == nil {
		return nil
	}
	records := make([]Record, 0, s.count)
	for _, bucket := range s.entries {
		records = append(records, bucket...)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records
}

// Clear removes every record.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	s.entries = nil
	s.count = 0
}
