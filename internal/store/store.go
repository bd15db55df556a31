package store

import (
	"fmt"
	"regexp"
	"strings"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/record"
)

// Store is the decrypted, ordered collection of records for one backing
// file. A Store lives only for the duration of one command invocation:
// the caller parses it from plaintext, applies exactly one mutation, and
// serializes it straight back for re-encryption.
type Store struct {
	records []record.Record
}

// New returns an empty store. Used for the very first `new` entry, when no
// backing file exists yet.
func New() *Store {
	return &Store{}
}

// Parse reconstructs a store from decrypted plaintext. Blank and
// whitespace-only lines are discarded. A line that cannot be decoded is
// dropped rather than failing the whole store; dropped counts are reported
// so the caller can warn.
func Parse(plaintext []byte) (*Store, int) {
	s := &Store{}
	dropped := 0
	for _, line := range strings.Split(string(plaintext), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := record.Decode(line)
		if err != nil {
			dropped++
			continue
		}
		s.records = append(s.records, rec)
	}
	return s, dropped
}

// Serialize renders the store back into plaintext, one record per line.
// Blank lines are never emitted.
func (s *Store) Serialize() ([]byte, error) {
	var b strings.Builder
	for _, rec := range s.records {
		line, err := rec.Encode()
		if err != nil {
			return nil, fmt.Errorf("serializing record %q: %w", rec.Name, err)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// FindByName returns the record whose name equals name, ignoring case.
// Name matching is exact on the decoded name token, so `foo` never matches
// a record named `foobar`.
func (s *Store) FindByName(name string) (record.Record, bool) {
	for _, rec := range s.records {
		if rec.NameMatches(name) {
			return rec, true
		}
	}
	return record.Record{}, false
}

// Search returns every record whose encoded line matches pattern, compiled
// as a case-insensitive regular expression. The whole line participates, so
// usernames, passwords, and extension text all match. No matches is
// ErrNotFound; a pattern that does not compile is ErrInvalidPattern.
func (s *Store) Search(pattern string) ([]record.Record, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", pattern, pberrors.ErrInvalidPattern)
	}

	var matches []record.Record
	for _, rec := range s.records {
		line, err := rec.Encode()
		if err != nil {
			continue
		}
		if re.MatchString(line) {
			matches = append(matches, rec)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no record matches %q: %w", pattern, pberrors.ErrNotFound)
	}
	return matches, nil
}

// Upsert validates rec, removes every existing record with the same name
// (case-insensitive), and appends rec. After Upsert, FindByName(rec.Name)
// yields exactly one record.
func (s *Store) Upsert(rec record.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	s.Remove(rec.Name)
	s.records = append(s.records, rec)
	return nil
}

// Remove deletes every record whose name matches, ignoring case, and
// reports whether anything was removed.
func (s *Store) Remove(name string) bool {
	kept := s.records[:0]
	removed := false
	for _, rec := range s.records {
		if rec.NameMatches(name) {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept
	return removed
}

// AddField appends an extension field to the named record in place.
func (s *Store) AddField(name, key, value string) error {
	i, ok := s.indexOf(name)
	if !ok {
		return fmt.Errorf("record %q: %w", name, pberrors.ErrNotFound)
	}

	updated := s.records[i]
	updated.Fields = append(append([]record.Field(nil), updated.Fields...), record.Field{Key: key, Value: value})
	if err := updated.Validate(); err != nil {
		return err
	}
	s.records[i] = updated
	return nil
}

// RemoveField removes the first extension field with the given key from the
// named record. The field is removed by index from the decoded token
// sequence, never by substring, so identical text elsewhere in the line is
// untouched. A key that is not present is an explicit ErrFieldNotFound.
func (s *Store) RemoveField(name, key string) error {
	i, ok := s.indexOf(name)
	if !ok {
		return fmt.Errorf("record %q: %w", name, pberrors.ErrNotFound)
	}

	rec := s.records[i]
	for j, f := range rec.Fields {
		if f.Key == key {
			fields := append([]record.Field(nil), rec.Fields[:j]...)
			rec.Fields = append(fields, rec.Fields[j+1:]...)
			s.records[i] = rec
			return nil
		}
	}
	return fmt.Errorf("field %q on record %q: %w", key, name, pberrors.ErrFieldNotFound)
}

// Records returns the records in store order.
func (s *Store) Records() []record.Record {
	return s.records
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) indexOf(name string) (int, bool) {
	for i, rec := range s.records {
		if rec.NameMatches(name) {
			return i, true
		}
	}
	return 0, false
}
