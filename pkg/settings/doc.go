// Package settings holds the persisted user settings document and the
// stores that keep it.
//
// A [Settings] document carries the layout state of every density
// ([layout.Move]) and the enabled flag of every widget. Stores exchange
// partial updates as [Patch] values so a writer never has to resend data it
// did not change.
//
// # Backends
//
// Five backends are available through [Open]:
//   - memory: process-local, for tests and throwaway sessions
//   - file: one JSON file per profile under a directory
//   - diskv: a [github.com/peterbourgon/diskv/v3] key-value directory
//   - redis: a JSON string per profile in Redis
//   - mongo: one BSON document per profile in a MongoDB collection
//
// Keys have the form "settings:<profile>" and may be scoped with a prefix
// (see [ScopedKeyer]) when several tenants share one backend.
//
// # Asynchronous writes
//
// Editors never wait for storage. They hand patches to a [Writer], whose
// single worker applies them in order. Failures are logged and reported to
// [observability.StoreHooks]; they are not returned to the caller.
package settings
