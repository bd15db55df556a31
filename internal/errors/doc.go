// Package errors provides typed error values for the passbox application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Store errors: lookup failures (ErrNotFound, ErrFieldNotFound)
//   - Crypto errors: unlock/persist failures (ErrUnauthorized, ErrKeyNotFound)
//   - Input errors: unusable user input (ErrInvalidInput, ErrDelimiterInField)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(matches) == 0 {
//	    return nil, errors.ErrNotFound
//	}
//
// Handle errors in the CLI layer:
//
//	st, err := v.Unlock(passphrase)
//	if errors.Is(err, pberrors.ErrStoreMissing) {
//	    // Only `new` may continue with an empty store.
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("unlocking %s: %w", path, errors.ErrUnauthorized)
//
// Every error is fatal for the invocation that produced it: the CLI prints a
// single-line message and exits non-zero. A wrong passphrase means re-invoking
// the command; there are no retries.
package errors
