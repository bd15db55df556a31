package errors

import "errors"

// Store errors indicate lookup failures against the decrypted store.
var (
	// ErrNotFound indicates no record matched the requested name or pattern.
	ErrNotFound = errors.New("no matching record found")

	// ErrFieldNotFound indicates the record has no extension field with the
	// requested key.
	ErrFieldNotFound = errors.New("record has no such field")

	// ErrStoreMissing indicates the backing file does not exist yet. Only the
	// first `new` entry may proceed past this.
	ErrStoreMissing = errors.New("password store does not exist")
)

// Cryptographic errors indicate failures while unlocking or persisting the store.
var (
	// ErrUnauthorized indicates the passphrase was wrong or the backing file
	// failed authentication.
	ErrUnauthorized = errors.New("wrong passphrase or corrupt store")

	// ErrKeyNotFound indicates the RSA key pair for asymmetric mode could not
	// be located.
	ErrKeyNotFound = errors.New("recipient key pair not found")
)

// Input errors indicate the user supplied something the store cannot hold.
var (
	// ErrInvalidInput indicates a missing or unusable command argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDelimiterInField indicates a name, username, password, or extension
	// field contains a reserved delimiter character.
	ErrDelimiterInField = errors.New("value contains a reserved delimiter character")

	// ErrInvalidPattern indicates the search pattern is not a valid regular
	// expression.
	ErrInvalidPattern = errors.New("invalid search pattern")

	// ErrUserAborted indicates the user declined a confirmation prompt. It is
	// reported through the exit code, not an error message.
	ErrUserAborted = errors.New("aborted by user")
)
