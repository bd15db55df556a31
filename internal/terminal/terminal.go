package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"

	"golang.org/x/term"
)

// Control bytes recognized by the masked read loop.
const (
	ctrlC     = 0x03
	backspace = 0x08
	del       = 0x7f
)

var stdin = bufio.NewReader(os.Stdin)

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// SetInput redirects line-based prompt reads to r and returns a function
// that restores the previous source. Tests use it to script interactive
// commands; test binaries never run on a terminal, so every prompt takes
// the line-based fallback path.
func SetInput(r io.Reader) func() {
	old := stdin
	stdin = bufio.NewReader(r)
	return func() { stdin = old }
}

// ReadMasked reads a secret one character at a time, echoing an asterisk
// per character. Backspace removes the last buffered character and erases
// one displayed asterisk. Enter or EOF terminates the read; Ctrl-C aborts.
// The read is fully blocking with no timeout.
//
// When stdin is not a terminal (tests, pipes), it degrades to a plain line
// read.
func ReadMasked(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !IsTerminal() {
		return readLine()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		term.Restore(fd, oldState)
		fmt.Fprintln(os.Stderr)
	}()

	var buffered []byte
	one := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(one)
		if err != nil || n == 0 {
			break
		}

		switch one[0] {
		case '\r', '\n', 0x00:
			return string(buffered), nil
		case ctrlC:
			return "", pberrors.ErrUserAborted
		case backspace, del:
			if len(buffered) > 0 {
				buffered = buffered[:len(buffered)-1]
				fmt.Fprint(os.Stderr, "\b \b")
			}
		default:
			buffered = append(buffered, one[0])
			fmt.Fprint(os.Stderr, "*")
		}
	}
	return string(buffered), nil
}

// ReadPassphrase prompts for a passphrase without any echo at all. Used for
// the master passphrase, where even the length should stay hidden.
//
// When stdin is not a terminal it degrades to a plain line read.
func ReadPassphrase(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	if !IsTerminal() {
		line, err := readLine()
		return []byte(line), err
	}

	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// ReadLine prompts for one line of input with an optional default value.
// Entering nothing keeps the default.
func ReadLine(prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(os.Stderr, "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(os.Stderr, "%s: ", prompt)
	}

	input, err := readLine()
	if err != nil {
		return "", err
	}
	if input == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return input, nil
}

// Confirm asks a yes/no question. Anything but an explicit yes declines.
func Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)

	input, err := readLine()
	if err != nil {
		return false
	}
	switch strings.ToLower(input) {
	case "y", "yes":
		return true
	}
	return false
}

func readLine() (string, error) {
	input, err := stdin.ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
