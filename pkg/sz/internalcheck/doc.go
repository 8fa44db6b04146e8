// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests enforced across the sz-sdk-go
// sources. It is not intended for external use and the API may change
// without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the SDK. Use the public API provided by
// pkg/sz and its subpackages instead.
package internalcheck
