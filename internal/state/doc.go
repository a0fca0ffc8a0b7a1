// Package state holds the application state tree and its reducers.
//
// AppState is a value. Reduce never mutates its input: every screen state
// that changes is rebuilt and the screen list is copied, so snapshots handed
// to middlewares and subscribers stay valid forever.
//
// Screens are keyed by (screen type, window UUID). Lookups always name the
// window; there is no "first match" lookup.
package state
