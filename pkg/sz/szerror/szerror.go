package szerror

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go run ./gen

// Category identifies the class of a Senzing error. Categories form a
// hierarchy: Category.Is reports membership including ancestors, so a
// DatabaseTransient error Is(Retryable) as well.
type Category int

const (
	// Unknown covers native codes absent from the classification table
	// and non-Senzing errors.
	Unknown Category = iota

	// BadInput errors are caused by the data handed to the call and will
	// not succeed on retry with the same input.
	BadInput
	// NotFound reports a record, entity or feature that does not exist.
	NotFound
	// UnknownDataSource reports a DATA_SOURCE value absent from the
	// active configuration.
	UnknownDataSource

	// Configuration errors report invalid, missing or immutable
	// configuration state.
	Configuration

	// Retryable errors are transient; the same call may succeed later.
	Retryable
	// DatabaseConnectionLost reports a dropped datastore connection.
	DatabaseConnectionLost
	// DatabaseTransient reports a temporary datastore condition such as
	// a deadlock.
	DatabaseTransient
	// RetryTimeoutExceeded reports that the library gave up retrying
	// internally.
	RetryTimeoutExceeded

	// Unrecoverable errors require operator intervention.
	Unrecoverable
	// Database reports a critical datastore failure.
	Database
	// License reports a missing, invalid or exceeded license.
	License
	// NotInitialized reports a call against an uninitialized component.
	NotInitialized
	// Unhandled reports an internal error the library did not classify.
	Unhandled

	// ReplaceConflict reports a compare-and-swap failure when replacing
	// the default configuration ID.
	ReplaceConflict
	// EnvironmentDestroyed reports a call through an environment that
	// has already been torn down.
	EnvironmentDestroyed
	// Ffi reports a failure in the native call layer itself.
	Ffi
)

// categoryParent encodes the hierarchy; categories absent here are roots.
var categoryParent = map[Category]Category{
	NotFound:               BadInput,
	UnknownDataSource:      BadInput,
	DatabaseConnectionLost: Retryable,
	DatabaseTransient:      Retryable,
	RetryTimeoutExceeded:   Retryable,
	Database:               Unrecoverable,
	License:                Unrecoverable,
	NotInitialized:         Unrecoverable,
	Unhandled:              Unrecoverable,
}

var categoryName = map[Category]string{
	Unknown:                "unknown",
	BadInput:               "bad input",
	NotFound:               "not found",
	UnknownDataSource:      "unknown data source",
	Configuration:          "configuration",
	Retryable:              "retryable",
	DatabaseConnectionLost: "database connection lost",
	DatabaseTransient:      "database transient",
	RetryTimeoutExceeded:   "retry timeout exceeded",
	Unrecoverable:          "unrecoverable",
	Database:               "database",
	License:                "license",
	NotInitialized:         "not initialized",
	Unhandled:              "unhandled",
	ReplaceConflict:        "replace conflict",
	EnvironmentDestroyed:   "environment destroyed",
	Ffi:                    "ffi",
}

func (c Category) String() string {
	if name, ok := categoryName[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Is reports whether c is target or a descendant of target.
func (c Category) Is(target Category) bool {
	if c == target {
		return true
	}
	parent, ok := categoryParent[c]
	for ok {
		if parent == target {
			return true
		}
		parent, ok = categoryParent[parent]
	}
	return false
}

// Component names the native module an error originated from.
type Component int

const (
	ComponentNone Component = iota
	ComponentEngine
	ComponentConfig
	ComponentConfigManager
	ComponentDiagnostic
	ComponentProduct
)

var componentName = map[Component]string{
	ComponentNone:          "",
	ComponentEngine:        "Sz",
	ComponentConfig:        "SzConfig",
	ComponentConfigManager: "SzConfigMgr",
	ComponentDiagnostic:    "SzDiagnostic",
	ComponentProduct:       "SzProduct",
}

func (c Component) String() string {
	if name, ok := componentName[c]; ok {
		return name
	}
	return fmt.Sprintf("component(%d)", int(c))
}

// Error is a classified Senzing error. Code and Component are zero for
// errors raised on the Go side of the boundary.
type Error struct {
	Category  Category
	Code      int64
	Component Component
	Message   string

	cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Component != ComponentNone {
		b.WriteString(e.Component.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Category.String())
	if e.Code != 0 {
		fmt.Fprintf(&b, " (code %d)", e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches another *Error by category (honoring the hierarchy) and,
// when the target carries one, by code. A zero-category target matches
// any *Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != 0 && t.Code != e.Code {
		return false
	}
	return t.Category == Unknown || e.Category.Is(t.Category)
}

// New returns an *Error with the given category and message.
func New(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error that classifies cause under the given category.
// The cause remains reachable through errors.Is and errors.As.
func Wrap(category Category, message string, cause error) *Error {
	return &Error{Category: category, Message: message, cause: cause}
}

// FromCode classifies a native return code. Codes absent from the
// generated table map to Unknown.
func FromCode(code int64, component Component, message string) *Error {
	category, ok := codeCategory[code]
	if !ok {
		category = Unknown
	}
	return &Error{Category: category, Code: code, Component: component, Message: message}
}

// CategoryOf returns the category of the first *Error in err's chain, or
// Unknown when there is none.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return Unknown
}

// IsCategory reports whether err's chain contains an *Error whose
// category is target or a descendant of target.
func IsCategory(err error, target Category) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Category.Is(target)
	}
	return false
}

// IsRetryable reports whether err represents a transient condition worth
// retrying.
func IsRetryable(err error) bool { return IsCategory(err, Retryable) }

// IsBadInput reports whether err was caused by the supplied data.
func IsBadInput(err error) bool { return IsCategory(err, BadInput) }

// IsNotFound reports whether err represents a missing record, entity or
// feature.
func IsNotFound(err error) bool { return IsCategory(err, NotFound) }

// IsUnrecoverable reports whether err requires operator intervention.
func IsUnrecoverable(err error) bool { return IsCategory(err, Unrecoverable) }
