// Package vault performs the passphrase-gated encryption of the backing
// file and owns all of its disk I/O.
//
// # File Format
//
// The backing file is base64 armored ciphertext wrapped at 64 columns.
// Dearmored, it begins with the magic bytes "PBOX1" and one cipher mode
// byte, followed by the mode's payload:
//
//	symmetric (1):   salt(32) | nonce(24) | secretbox
//	asymmetric (2):  len(2) | RSA-OAEP wrapped session key | nonce(24) | secretbox
//
// Symmetric mode derives a NaCl secretbox key from the passphrase with
// scrypt (N=32768, r=8, p=4). Asymmetric mode is a hybrid scheme: a random
// session key seals the plaintext and the recipient's RSA public key wraps
// the session key, so reads need the private key and writes only the
// public half.
//
// Secretbox is authenticated, which is what makes the session gate sound:
// a wrong passphrase or a tampered file fails outright, never yielding
// partial plaintext.
//
// # Lifecycle
//
// There is no unlocked state between invocations and no passphrase cache.
// Every command decrypts, mutates, re-encrypts with a fresh salt and nonce,
// and atomically replaces the backing file (write-to-temp plus rename), so
// an interrupted write never leaves a truncated store behind. A missing
// backing file is reported distinctly from a failed decryption: only the
// very first `new` entry is allowed to start from nothing.
//
// Concurrent invocations against the same backing file are not locked
// against each other. Two simultaneous writers race and the slower one
// wins; passbox is a single-user tool and accepts that.
package vault
