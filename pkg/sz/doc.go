// Package sz provides a typed, thread-safe Go interface to the Senzing
// entity resolution engine.
//
// The native library keeps one set of module states per process, so the
// package hands out handles to a single shared [Environment]. Obtain one
// with [GetInstance], then create component handles from it:
//
//	env, err := sz.GetInstance("my-app", settings, false)
//	if err != nil {
//		return err
//	}
//	defer env.Close()
//
//	engine, err := env.Engine()
//	if err != nil {
//		return err
//	}
//	_, err = engine.AddRecord(ctx, "CUSTOMERS", "1001", record, sz.AddRecordDefaultFlags)
//
// Each native module is initialized lazily, exactly once, the first time
// a component that needs it is requested. Concurrent callers block until
// initialization completes and all observe the same outcome.
//
// Handles are cheap and safe for concurrent use. Close releases a single
// handle's reference; Destroy tears down the native environment and is
// only permitted when no other handles remain. [Guard] wraps the handle
// lifecycle for the common case.
//
// # Responses
//
// Operations return JSON documents as strings, in the shapes produced by
// the native library. Response detail is controlled by [Flags] values;
// every operation has a matching default constant such as
// [EntityDefaultFlags] or [SearchByAttributesDefaultFlags].
//
// Modifying operations (AddRecord, DeleteRecord, ReevaluateRecord,
// ReevaluateEntity, ProcessRedoRecord) return an empty response unless
// flags include [WithInfo], in which case they return an affected-entity
// document.
//
// # Errors
//
// Failures are classified into the category hierarchy of
// [github.com/brianmacy/sz-sdk-go/pkg/sz/szerror]. Use the predicates
// there (for example szerror.IsRetryable) or errors.Is against the
// sentinel errors in this package; never match on error text.
//
// Context parameters are honored before a native call is issued. A call
// that has already entered the native library cannot be canceled.
package sz
