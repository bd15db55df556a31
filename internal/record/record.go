package record

import (
	"fmt"
	"strings"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
)

const (
	// Delimiter separates the name, username, password, and extension tokens
	// of an encoded record line.
	Delimiter = "|"

	// FieldSep joins the key and value of an extension token. Only the first
	// occurrence is significant when decoding; values may contain colons.
	FieldSep = ":"
)

// Field is one extension key/value pair attached to a record. Keys need not
// be unique; retrieval returns the first match.
type Field struct {
	Key   string
	Value string
}

// Record is one stored credential.
type Record struct {
	Name     string
	Username string
	Password string
	Fields   []Field
}

// Decode parses one store line into a Record. Lines with fewer than three
// delimited tokens produce a partial record: a missing username or password
// is the empty string, not an error. Blank lines are an error so callers can
// discard them.
func Decode(line string) (Record, error) {
	if strings.TrimSpace(line) == "" {
		return Record{}, fmt.Errorf("blank line: %w", pberrors.ErrInvalidInput)
	}

	tokens := strings.Split(line, Delimiter)
	rec := Record{Name: tokens[0]}
	if len(tokens) > 1 {
		rec.Username = tokens[1]
	}
	if len(tokens) > 2 {
		rec.Password = tokens[2]
	}
	for _, token := range tokens[3:] {
		key, value, _ := strings.Cut(token, FieldSep)
		rec.Fields = append(rec.Fields, Field{Key: key, Value: value})
	}
	return rec, nil
}

// Encode serializes the record into one store line. Encoding fails if any
// component would corrupt the line structure; Validate applies the same rules
// at input time so a rejected value never reaches the store.
func (r Record) Encode() (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	tokens := make([]string, 0, 3+len(r.Fields))
	tokens = append(tokens, r.Name, r.Username, r.Password)
	for _, f := range r.Fields {
		tokens = append(tokens, f.Key+FieldSep+f.Value)
	}
	return strings.Join(tokens, Delimiter), nil
}

// Validate reports whether the record can be stored without corrupting the
// line format. The delimiter is rejected outright rather than escaped; the
// record format has no escape sequence.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("record name is required: %w", pberrors.ErrInvalidInput)
	}
	for _, v := range []struct{ label, value string }{
		{"name", r.Name},
		{"username", r.Username},
		{"password", r.Password},
	} {
		if strings.Contains(v.value, Delimiter) {
			return fmt.Errorf("%s %q: %w", v.label, v.value, pberrors.ErrDelimiterInField)
		}
	}
	for _, f := range r.Fields {
		if strings.TrimSpace(f.Key) == "" {
			return fmt.Errorf("extension field key is required: %w", pberrors.ErrInvalidInput)
		}
		if strings.Contains(f.Key, Delimiter) || strings.Contains(f.Value, Delimiter) {
			return fmt.Errorf("field %q: %w", f.Key, pberrors.ErrDelimiterInField)
		}
		// A colon in the key would shift everything after it into the value
		// on the next decode.
		if strings.Contains(f.Key, FieldSep) {
			return fmt.Errorf("field key %q: %w", f.Key, pberrors.ErrDelimiterInField)
		}
	}
	return nil
}

// Field returns the value of the first extension field with the given key.
func (r Record) Field(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// NameMatches reports whether the record's name equals name, ignoring case.
// Matching the decoded name token exactly means `foo` can never match a
// record named `foobar`.
func (r Record) NameMatches(name string) bool {
	return strings.EqualFold(r.Name, name)
}
