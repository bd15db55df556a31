// Package store holds the in-memory representation of one decrypted
// password store and the mutations the CLI performs on it.
//
// A store has no long-lived instance. Every command reconstructs it
// wholesale from the decrypted backing file, applies one mutation, and
// hands it straight back for re-encryption:
//
//	load -> mutate -> persist
//
// Record names are effectively unique: Upsert removes any prior record with
// the same name (ignoring case) before appending, so a store never carries
// two records answering to one name. Lookups by name match the decoded name
// token exactly; free-text Search matches a case-insensitive regular
// expression anywhere in the encoded line instead.
//
// Nothing in this package touches the disk or the cipher. That is the vault
// package's job.
package store
