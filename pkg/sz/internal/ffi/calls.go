package ffi

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// exceptionBufSize bounds the native exception message fetched after a
// failed call.
const exceptionBufSize = 4096

// Check classifies a status-only native return. Zero is success.
func Check(comp szerror.Component, ret int64) error {
	if ret == 0 {
		return nil
	}
	return lastError(comp)
}

// Count interprets a direct-valued return where negative values signal
// an error, as with the redo record counter.
func Count(comp szerror.Component, ret int64) (int64, error) {
	if ret < 0 {
		return 0, lastError(comp)
	}
	return ret, nil
}

// String completes a pointer-result call. On success the native buffer
// is copied, released exactly once, and decoded; a NULL response decodes
// to the empty string. On failure nothing is freed: the library does not
// hand out a buffer alongside a nonzero return code.
func String(comp szerror.Component, res PointerResult) (string, error) {
	if res.ReturnCode != 0 {
		return "", lastError(comp)
	}
	if res.Response == 0 {
		return "", nil
	}
	raw := lib.ReadCString(res.Response)
	lib.Free(res.Response)
	return decodeText(raw), nil
}

// StringNoFree decodes a library-owned buffer, such as the product
// version and license blocks, without releasing it.
func StringNoFree(p Ptr) string {
	if p == 0 {
		return ""
	}
	return decodeText(lib.ReadCString(p))
}

// Long completes an integer-result call.
func Long(comp szerror.Component, res LongResult) (int64, error) {
	if res.ReturnCode != 0 {
		return 0, lastError(comp)
	}
	return res.Response, nil
}

// Handle completes a pointer-result call whose payload is an opaque
// native handle rather than a readable buffer. Nothing is copied or
// freed; the handle is closed through its own native call.
func Handle(comp szerror.Component, res PointerResult) (Ptr, error) {
	if res.ReturnCode != 0 {
		return 0, lastError(comp)
	}
	return res.Response, nil
}

// decodeText interprets native bytes as UTF-8, falling back to a hex
// dump for invalid data so no diagnostic payload is silently lost.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return hex.EncodeToString(raw)
}

// lastError fetches and classifies the pending exception for comp. The
// exception state is keyed per native module, so it must be read before
// any further call against the same module.
func lastError(comp szerror.Component) error {
	code := lib.LastExceptionCode(comp)
	buf := make([]byte, exceptionBufSize)
	ret := lib.LastException(comp, buf)
	msg := ""
	if ret >= 0 {
		msg = cstring(buf)
	}
	if msg == "" {
		msg = fmt.Sprintf("native error code %d", code)
	}
	return szerror.FromCode(code, comp, msg)
}

// cstring decodes the bytes of buf up to the first NUL.
func cstring(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return decodeText(bytes.TrimSpace(buf))
}
