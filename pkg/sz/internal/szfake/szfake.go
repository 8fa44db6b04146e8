package szfake

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// defaultConfigDefinition mirrors the template configuration a freshly
// created repository carries, registered under config ID 1.
const defaultConfigDefinition = `{"G2_CONFIG":{"CFG_DSRC":[{"DSRC_ID":1,"DSRC_CODE":"TEST"},{"DSRC_ID":2,"DSRC_CODE":"SEARCH"}]}}`

type exception struct {
	code    int64
	message string
}

type buffer struct {
	data   []byte
	freed  bool
	noFree bool
}

type recordKey struct {
	dataSource string
	recordID   string
}

type fakeRecord struct {
	definition string
	entityID   int64
}

type storedConfig struct {
	definition string
	comment    string
	createdAt  string
}

type configHandle struct {
	sources []string
	closed  bool
}

type exportCursor struct {
	lines []string
	pos   int
}

// Library is a thread-safe fake implementation of ffi.Lib.
type Library struct {
	mu sync.Mutex

	buffers    map[ffi.Ptr]*buffer
	nextPtr    ffi.Ptr
	violations []string

	lastExc      map[szerror.Component]exception
	clears       map[szerror.Component]int
	inits        map[szerror.Component]int
	destroys     map[szerror.Component]int
	destroyOrder []szerror.Component
	failNext     map[szerror.Component]exception

	initDelay time.Duration

	engineInited    bool
	configInited    bool
	configMgrInited bool
	productInited   bool

	moduleName string
	settings   string
	verbose    bool

	activeConfigID int64
	activeSources  map[string]bool

	records      map[recordKey]*fakeRecord
	entities     map[int64][]recordKey
	nextEntityID int64

	configs         map[int64]storedConfig
	nextConfigID    int64
	defaultConfigID int64

	handles map[ffi.Ptr]*configHandle
	exports map[ffi.Ptr]*exportCursor

	redo []string

	versionPtr ffi.Ptr
	licensePtr ffi.Ptr
}

var _ ffi.Lib = (*Library)(nil)

// New returns an empty fake repository seeded with the template
// configuration as config ID 1 and default.
func New() *Library {
	l := &Library{
		buffers:       make(map[ffi.Ptr]*buffer),
		nextPtr:       0x1000,
		lastExc:       make(map[szerror.Component]exception),
		clears:        make(map[szerror.Component]int),
		inits:         make(map[szerror.Component]int),
		destroys:      make(map[szerror.Component]int),
		failNext:      make(map[szerror.Component]exception),
		activeSources: make(map[string]bool),
		records:       make(map[recordKey]*fakeRecord),
		entities:      make(map[int64][]recordKey),
		nextEntityID:  1,
		configs:       make(map[int64]storedConfig),
		nextConfigID:  2,
		handles:       make(map[ffi.Ptr]*configHandle),
		exports:       make(map[ffi.Ptr]*exportCursor),
	}
	l.configs[1] = storedConfig{
		definition: defaultConfigDefinition,
		comment:    "Initial template configuration",
		createdAt:  "2026-01-01 00:00:00.000",
	}
	l.defaultConfigID = 1
	return l
}

// Install swaps the fake in as the active native library for the
// duration of the test and verifies buffer accounting on cleanup.
func Install(t testing.TB) *Library {
	t.Helper()
	l := New()
	restore := ffi.Swap(l)
	t.Cleanup(func() {
		restore()
		l.AssertBalanced(t)
	})
	return l
}

// Available implements ffi.Lib.
func (l *Library) Available() error { return nil }

// SetInitDelay makes EngineInit sleep before completing, widening the
// window for initialization races.
func (l *Library) SetInitDelay(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.initDelay = d
}

// FailNext arranges for the next call against comp to fail with the
// given native code and message. One-shot per component.
func (l *Library) FailNext(comp szerror.Component, code int64, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failNext[comp] = exception{code: code, message: message}
}

// InitCount reports how many times comp's init entry point ran.
func (l *Library) InitCount(comp szerror.Component) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inits[comp]
}

// DestroyCount reports how many times comp's destroy entry point ran.
func (l *Library) DestroyCount(comp szerror.Component) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destroys[comp]
}

// ClearCount reports how many times comp's exception state was cleared.
func (l *Library) ClearCount(comp szerror.Component) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clears[comp]
}

// DestroyOrder returns the sequence of module destroy calls observed.
func (l *Library) DestroyOrder() []szerror.Component {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]szerror.Component, len(l.destroyOrder))
	copy(out, l.destroyOrder)
	return out
}

// EngineInitialized reports whether the engine module is currently
// initialized.
func (l *Library) EngineInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engineInited
}

// RedoCount reports the pending redo records.
func (l *Library) RedoCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.redo)
}

// EnqueueRedo seeds the redo queue directly.
func (l *Library) EnqueueRedo(record string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.redo = append(l.redo, record)
}

// LiveBuffers reports allocated buffers that are neither freed nor
// library-owned.
func (l *Library) LiveBuffers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, b := range l.buffers {
		if !b.freed && !b.noFree {
			n++
		}
	}
	return n
}

// Violations returns the memory-discipline violations recorded so far.
func (l *Library) Violations() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.violations))
	copy(out, l.violations)
	return out
}

// AssertBalanced fails the test if any buffer was mishandled: double
// frees, use after free, frees of library-owned or unknown pointers, or
// buffers never released.
func (l *Library) AssertBalanced(t testing.TB) {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, v := range l.violations {
		t.Errorf("szfake: %s", v)
	}
	for p, b := range l.buffers {
		if !b.freed && !b.noFree {
			t.Errorf("szfake: buffer %#x leaked: %.60s", uintptr(p), string(b.data))
		}
	}
}

// ReadCString implements ffi.Lib.
func (l *Library) ReadCString(p ffi.Ptr) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buffers[p]
	if !ok {
		l.violatef("read of unknown pointer %#x", uintptr(p))
		return nil
	}
	if b.freed {
		l.violatef("use after free of buffer %#x", uintptr(p))
		return nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Free implements ffi.Lib.
func (l *Library) Free(p ffi.Ptr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buffers[p]
	if !ok {
		l.violatef("free of unknown pointer %#x", uintptr(p))
		return
	}
	if b.noFree {
		l.violatef("free of library-owned buffer %#x", uintptr(p))
		return
	}
	if b.freed {
		l.violatef("double free of buffer %#x", uintptr(p))
		return
	}
	b.freed = true
}

// LastException implements ffi.Lib.
func (l *Library) LastException(comp szerror.Component, buf []byte) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	exc := l.lastExc[comp]
	n := copy(buf, exc.message)
	if n < len(buf) {
		buf[n] = 0
	}
	return int64(n)
}

// LastExceptionCode implements ffi.Lib.
func (l *Library) LastExceptionCode(comp szerror.Component) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastExc[comp].code
}

// ClearLastException implements ffi.Lib.
func (l *Library) ClearLastException(comp szerror.Component) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.lastExc, comp)
	l.clears[comp]++
}

func (l *Library) violatef(format string, args ...any) {
	l.violations = append(l.violations, fmt.Sprintf(format, args...))
}

// allocLocked registers a buffer the caller must free exactly once.
func (l *Library) allocLocked(content string) ffi.Ptr {
	p := l.nextPtr
	l.nextPtr += 0x10
	l.buffers[p] = &buffer{data: []byte(content)}
	return p
}

// allocStaticLocked registers a library-owned buffer that must never be
// freed, as with the product version and license blocks.
func (l *Library) allocStaticLocked(content string) ffi.Ptr {
	p := l.nextPtr
	l.nextPtr += 0x10
	l.buffers[p] = &buffer{data: []byte(content), noFree: true}
	return p
}

// handlePtrLocked mints an opaque token outside the buffer space for
// export cursors and config handles.
func (l *Library) handlePtrLocked() ffi.Ptr {
	p := l.nextPtr
	l.nextPtr += 0x10
	return p
}

// failLocked records an exception against comp and returns the nonzero
// status the native call reports. Messages carry the conventional
// NNNNE| prefix.
func (l *Library) failLocked(comp szerror.Component, code int64, message string) int64 {
	l.lastExc[comp] = exception{code: code, message: fmt.Sprintf("%04dE|%s", code, message)}
	return -2
}

func (l *Library) failPtrLocked(comp szerror.Component, code int64, message string) ffi.PointerResult {
	return ffi.PointerResult{ReturnCode: l.failLocked(comp, code, message)}
}

func (l *Library) failLongLocked(comp szerror.Component, code int64, message string) ffi.LongResult {
	return ffi.LongResult{ReturnCode: l.failLocked(comp, code, message)}
}

// injectedLocked consumes a pending FailNext for comp.
func (l *Library) injectedLocked(comp szerror.Component) (int64, bool) {
	inj, ok := l.failNext[comp]
	if !ok {
		return 0, false
	}
	delete(l.failNext, comp)
	return l.failLocked(comp, inj.code, inj.message), true
}

// encode marshals v for a fake response. The model types cannot fail to
// marshal.
func encode(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// leafStrings collects every string leaf of a decoded JSON document.
func leafStrings(v any, out []string) []string {
	switch t := v.(type) {
	case string:
		out = append(out, t)
	case []any:
		for _, e := range t {
			out = leafStrings(e, out)
		}
	case map[string]any:
		for _, e := range t {
			out = leafStrings(e, out)
		}
	}
	return out
}

// parseSources extracts the DSRC_CODE list from a configuration
// definition.
func parseSources(definition string) ([]string, bool) {
	var doc struct {
		G2Config struct {
			Dsrc []struct {
				Code string `json:"DSRC_CODE"`
			} `json:"CFG_DSRC"`
		} `json:"G2_CONFIG"`
	}
	if err := json.Unmarshal([]byte(definition), &doc); err != nil {
		return nil, false
	}
	sources := make([]string, 0, len(doc.G2Config.Dsrc))
	for _, d := range doc.G2Config.Dsrc {
		if d.Code != "" {
			sources = append(sources, d.Code)
		}
	}
	return sources, true
}

// buildConfigDefinition renders a configuration document for a source
// list in the same shape parseSources consumes.
func buildConfigDefinition(sources []string) string {
	type dsrc struct {
		ID   int    `json:"DSRC_ID"`
		Code string `json:"DSRC_CODE"`
	}
	doc := struct {
		G2Config struct {
			Dsrc []dsrc `json:"CFG_DSRC"`
		} `json:"G2_CONFIG"`
	}{}
	for i, code := range sources {
		doc.G2Config.Dsrc = append(doc.G2Config.Dsrc, dsrc{ID: i + 1, Code: code})
	}
	return encode(doc)
}
