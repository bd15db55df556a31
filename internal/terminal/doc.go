// Package terminal handles interactive input for passbox commands.
//
// Two grades of secret entry exist:
//
//   - ReadPassphrase hides input entirely. The master passphrase uses it,
//     keeping even the length off the screen.
//   - ReadMasked echoes one asterisk per character with working backspace,
//     reading the terminal in raw mode one byte at a time. Record passwords
//     use it so the user can see how much they have typed.
//
// Both degrade to a plain buffered line read when stdin is not a terminal,
// which is what lets the command layer be driven by piped input in tests.
//
// All reads are fully blocking with no timeout; the process model is one
// short-lived, single-threaded invocation per command.
package terminal
