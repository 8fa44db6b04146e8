// Package ffi is the boundary between the SDK and the native Senzing
// library. It defines the callable surface as the Lib interface, the
// result shapes shared with the C helpers, and the call wrappers that
// enforce the memory and error discipline: native buffers are copied and
// released exactly once, failed calls are classified through the failing
// module's exception state, and library-owned buffers are never freed.
//
// The backend is chosen at build time: cgo links the installed Senzing
// SDK, non-cgo and Windows builds get a stub that reports ErrNotBuilt.
// Tests install an in-memory fake through Swap.
package ffi
