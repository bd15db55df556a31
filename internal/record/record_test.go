package record

import (
	"errors"
	"reflect"
	"testing"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			"full record",
			"github|alice|secret123",
			Record{Name: "github", Username: "alice", Password: "secret123"},
		},
		{
			"name only",
			"github",
			Record{Name: "github"},
		},
		{
			"name and username",
			"github|alice",
			Record{Name: "github", Username: "alice"},
		},
		{
			"extension fields",
			"github|alice|secret123|url:https://github.com|note:work",
			Record{
				Name: "github", Username: "alice", Password: "secret123",
				Fields: []Field{{"url", "https://github.com"}, {"note", "work"}},
			},
		},
		{
			"value may contain colons",
			"github|alice|secret123|url:https://github.com:8443/x",
			Record{
				Name: "github", Username: "alice", Password: "secret123",
				Fields: []Field{{"url", "https://github.com:8443/x"}},
			},
		},
		{
			"empty middle tokens",
			"github||",
			Record{Name: "github"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.line)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.line, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDecodeBlankLine(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		if _, err := Decode(line); err == nil {
			t.Errorf("Decode(%q) should fail on a blank line", line)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	records := []Record{
		{Name: "github", Username: "alice", Password: "secret123"},
		{Name: "mail"},
		{Name: "db", Username: "admin", Password: "p@ss:word"},
		{
			Name: "vpn", Username: "bob", Password: "hunter2",
			Fields: []Field{{"url", "https://vpn.example.com"}, {"otp", "JBSWY3DP"}},
		},
	}

	for _, rec := range records {
		line, err := rec.Encode()
		if err != nil {
			t.Fatalf("Encode(%+v) failed: %v", rec, err)
		}
		back, err := Decode(line)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", line, err)
		}
		if !reflect.DeepEqual(back, rec) {
			t.Errorf("round trip mismatch: %+v -> %q -> %+v", rec, line, back)
		}
	}
}

func TestValidateRejectsDelimiter(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"pipe in name", Record{Name: "git|hub"}},
		{"pipe in username", Record{Name: "github", Username: "al|ice"}},
		{"pipe in password", Record{Name: "github", Password: "a|b"}},
		{"pipe in field value", Record{Name: "github", Fields: []Field{{"url", "a|b"}}}},
		{"colon in field key", Record{Name: "github", Fields: []Field{{"a:b", "v"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if !errors.Is(err, pberrors.ErrDelimiterInField) {
				t.Errorf("Validate(%+v) = %v, want ErrDelimiterInField", tt.rec, err)
			}
			if _, err := tt.rec.Encode(); err == nil {
				t.Errorf("Encode(%+v) should refuse a reserved delimiter", tt.rec)
			}
		})
	}
}

func TestValidateRequiresName(t *testing.T) {
	for _, rec := range []Record{{}, {Name: "  "}} {
		if err := rec.Validate(); !errors.Is(err, pberrors.ErrInvalidInput) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidInput", rec, err)
		}
	}
}

func TestFieldReturnsFirstMatch(t *testing.T) {
	rec := Record{
		Name:   "github",
		Fields: []Field{{"url", "first"}, {"url", "second"}},
	}

	got, ok := rec.Field("url")
	if !ok || got != "first" {
		t.Errorf("Field(url) = %q, %v; want \"first\", true", got, ok)
	}

	if _, ok := rec.Field("missing"); ok {
		t.Error("Field(missing) should report absence")
	}
}

func TestNameMatches(t *testing.T) {
	rec := Record{Name: "GitHub"}
	if !rec.NameMatches("github") || !rec.NameMatches("GITHUB") {
		t.Error("NameMatches should ignore case")
	}
	if rec.NameMatches("git") {
		t.Error("NameMatches should not prefix match")
	}
}
