// Package szerror classifies errors reported by the native Senzing
// library into a stable Go taxonomy.
//
// Every failed native call produces an *Error carrying the category the
// native return code maps to, the raw code, the component that reported
// it, and the exception message retrieved from the library. Categories
// form a small hierarchy (NotFound is a kind of BadInput, Database is a
// kind of Unrecoverable, and so on) and the predicates IsRetryable,
// IsBadInput and IsUnrecoverable honor that hierarchy through wrapped
// errors, so callers dispatch on error class without inspecting message
// text.
//
// The code-to-category table is generated from szerrors.json by gen;
// codes absent from the table classify as Unknown rather than failing.
package szerror
