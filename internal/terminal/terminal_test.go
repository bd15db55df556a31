package terminal

import (
	"io"
	"os"
	"strings"
	"testing"
)

// feed replaces the package's input source for one test.
func feed(t *testing.T, input string) {
	t.Helper()
	restore := SetInput(strings.NewReader(input))
	t.Cleanup(restore)
}

// captureStderr collects everything fn writes to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	original := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = original
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"explicit yes", "y\n", true},
		{"spelled out yes", "yes\n", true},
		{"uppercase yes", "YES\n", true},
		{"explicit no", "n\n", false},
		{"empty defaults to decline", "\n", false},
		{"garbage declines", "sure\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed(t, tt.input)
			if got := Confirm("Delete record?"); got != tt.want {
				t.Errorf("Confirm with input %q = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	feed(t, "alice\n")
	got, err := ReadLine("Username", "")
	if err != nil || got != "alice" {
		t.Errorf("ReadLine = %q, %v; want alice", got, err)
	}

	feed(t, "\n")
	got, err = ReadLine("Username", "bob")
	if err != nil || got != "bob" {
		t.Errorf("ReadLine with default = %q, %v; want bob", got, err)
	}

	feed(t, "carol\n")
	got, err = ReadLine("Username", "bob")
	if err != nil || got != "carol" {
		t.Errorf("ReadLine overriding default = %q, %v; want carol", got, err)
	}
}

func TestReadLinePromptRendering(t *testing.T) {
	// Callers pass bare labels; ReadLine owns the ": " suffix. A label that
	// already carried punctuation once rendered as "Name: : ".
	feed(t, "example.com\n")
	got := captureStderr(t, func() {
		if _, err := ReadLine("Name", ""); err != nil {
			t.Errorf("ReadLine failed: %v", err)
		}
	})
	if got != "Name: " {
		t.Errorf("rendered prompt %q, want %q", got, "Name: ")
	}

	feed(t, "\n")
	got = captureStderr(t, func() {
		if _, err := ReadLine("Username", "alice"); err != nil {
			t.Errorf("ReadLine failed: %v", err)
		}
	})
	if got != "Username [alice]: " {
		t.Errorf("rendered prompt with default %q, want %q", got, "Username [alice]: ")
	}
}

func TestReadMaskedFallback(t *testing.T) {
	feed(t, "secret123\n")
	got, err := ReadMasked("Password: ")
	if err != nil || got != "secret123" {
		t.Errorf("ReadMasked fallback = %q, %v; want secret123", got, err)
	}
}

func TestReadPassphraseFallback(t *testing.T) {
	feed(t, "correct horse\n")
	got, err := ReadPassphrase("Passphrase: ")
	if err != nil || string(got) != "correct horse" {
		t.Errorf("ReadPassphrase fallback = %q, %v", got, err)
	}
}
