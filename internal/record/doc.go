// Package record defines the credential record and its line codec.
//
// One record occupies one line of the decrypted store:
//
//	name|username|password|key:value|key:value
//
// The first three tokens are fixed. Everything after them is an ordered list
// of extension fields, each a key:value pair split on the first colon only,
// so values may themselves contain colons (URLs, for instance).
//
// A line with fewer than three tokens is still a valid partial record; the
// missing username or password decodes as the empty string. A well-formed
// record always has at least a name.
//
// The pipe delimiter has no escape sequence. Values containing it are
// rejected at input time by Validate rather than escaped, which keeps every
// stored line trivially splittable.
package record
