// Package configs manages configuration for passbox.
//
// Configuration is layered, later layers winning:
//
//  1. Built-in defaults (store at ~/.passbox/store.pbx, symmetric cipher,
//     generated passwords 20 characters long)
//  2. The user's config.toml
//  3. Environment variables
//
// # User Configuration
//
// The user config lives at <os config dir>/passbox/config.toml and stores:
//   - The store UUID, auto-generated on first save, identifying this store
//     if it is ever copied between machines
//   - An optional backing file location
//   - The cipher mode (symmetric passphrase or public-key) and recipient
//   - The default generated password length
//
// # Environment Variables
//
//	PASSBOX_LOCATION     backing file path
//	PASSBOX_ASYMMETRIC   "true" switches to public-key mode
//	PASSBOX_RECIPIENT    key pair name for asymmetric mode ("" = encrypt to self)
//
// # Settings
//
// UserPassboxSettings is initialized at startup with the fixed per-user
// paths (config dir, key dir, default store path). Commands call
// ResolveStoreSettings to obtain the per-invocation view with the config
// file and environment applied.
package configs
