// Package szfake is an in-memory stand-in for the native Senzing library
// used by tests. It implements ffi.Lib over a small record and
// configuration model, tracks every buffer it hands out so tests can
// prove the copy-then-free-exactly-once discipline, and records
// per-module init, destroy and exception-clear traffic for lifecycle
// assertions.
//
// The fake resolves nothing: every added record becomes its own entity.
// It exists to exercise plumbing, ordering and memory discipline, not
// entity resolution.
package szfake
