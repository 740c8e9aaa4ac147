// Package config resolves dotted keys against configuration groups that are loaded
// lazily and cached for the lifetime of a Store.
//
// A key such as "app.db.host" is split at its first dot: "app" names the group and
// "db.host" the path inside it. The first access to any key of a group asks the
// Loader for that group's data; later accesses use the cached tree.
//
//   - Loader: produces the data of one group for an environment
//   - Store: the group cache with Get, GetOr, Set, Has and the typed getters
//   - Index: map-style view over a Store
//   - ReplaceMerge: the layering strategy used by loaders
//   - Provider: decodes a section into a struct, with Defaulter and Validator hooks
//
// # Missing values
//
// Nothing in this package fails on missing configuration. An absent group, an absent
// path segment or a path running through a scalar all resolve to the default given
// to GetOr (nil for Get).
//
// # Environments
//
// The environment string is handed to the Loader untouched. Loaders built on
// ParseEnvironment treat "prod/us-east" as the layers "", "prod" and "prod/us-east",
// merged in that order with ReplaceMerge so more specific layers win.
//
// # Example
//
//	store := config.NewStore(file.NewLoader("/etc/myapp"), "prod")
//	host := store.GetOr("database.primary.host", "localhost")
//	store.Set("database.primary.port", 5433)
package config
