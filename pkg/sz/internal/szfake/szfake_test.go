package szfake

import (
	"strings"
	"testing"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

const validSettings = `{"PIPELINE":{},"SQL":{"CONNECTION":"sqlite3://na:na@/tmp/fake.db"}}`

func initializedEngine(t *testing.T) *Library {
	t.Helper()
	l := New()
	if code := l.EngineInit("test", validSettings, false); code != 0 {
		t.Fatalf("EngineInit returned %d", code)
	}
	return l
}

func TestDoubleFreeDetected(t *testing.T) {
	l := initializedEngine(t)
	res := l.EngineStats()
	if res.ReturnCode != 0 {
		t.Fatalf("EngineStats returned %d", res.ReturnCode)
	}
	l.Free(res.Response)
	l.Free(res.Response)

	violations := l.Violations()
	if len(violations) != 1 || !strings.Contains(violations[0], "double free") {
		t.Fatalf("violations = %v, want one double free", violations)
	}
}

func TestUseAfterFreeDetected(t *testing.T) {
	l := initializedEngine(t)
	res := l.EngineStats()
	l.Free(res.Response)
	if got := l.ReadCString(res.Response); got != nil {
		t.Fatalf("ReadCString after free returned %q", got)
	}
	violations := l.Violations()
	if len(violations) != 1 || !strings.Contains(violations[0], "use after free") {
		t.Fatalf("violations = %v, want one use after free", violations)
	}
}

func TestFreeOfLibraryOwnedBufferDetected(t *testing.T) {
	l := New()
	if code := l.ProductInit("test", validSettings, false); code != 0 {
		t.Fatalf("ProductInit returned %d", code)
	}
	p := l.ProductGetVersion()
	if p == 0 {
		t.Fatal("ProductGetVersion returned NULL")
	}
	l.Free(p)
	violations := l.Violations()
	if len(violations) != 1 || !strings.Contains(violations[0], "library-owned") {
		t.Fatalf("violations = %v, want one library-owned free", violations)
	}
}

func TestLeakVisibleInLiveBuffers(t *testing.T) {
	l := initializedEngine(t)
	if res := l.EngineStats(); res.ReturnCode != 0 {
		t.Fatalf("EngineStats returned %d", res.ReturnCode)
	}
	if got := l.LiveBuffers(); got != 1 {
		t.Fatalf("LiveBuffers = %d, want 1", got)
	}
}

func TestNotInitializedExceptionCode(t *testing.T) {
	l := New()
	res := l.EngineStats()
	if res.ReturnCode == 0 {
		t.Fatal("EngineStats succeeded before init")
	}
	if code := l.LastExceptionCode(szerror.ComponentEngine); code != 48 {
		t.Fatalf("exception code = %d, want 48", code)
	}
	buf := make([]byte, 256)
	l.LastException(szerror.ComponentEngine, buf)
	if !strings.Contains(string(buf), "0048E|") {
		t.Fatalf("exception message = %q, want 0048E prefix", buf)
	}
}

func TestReplaceConflictCode(t *testing.T) {
	l := New()
	if code := l.ConfigMgrInit("test", validSettings, false); code != 0 {
		t.Fatalf("ConfigMgrInit returned %d", code)
	}
	// Default is config 1; claiming it was 999 must conflict.
	if code := l.ConfigMgrReplaceDefaultConfigID(999, 1); code == 0 {
		t.Fatal("replace with stale current succeeded")
	}
	if code := l.LastExceptionCode(szerror.ComponentConfigManager); code != 7245 {
		t.Fatalf("exception code = %d, want 7245", code)
	}
}

func TestUnknownDataSourceCode(t *testing.T) {
	l := initializedEngine(t)
	if code := l.EngineAddRecord("NOPE", "1", `{"NAME_FULL":"A"}`); code == 0 {
		t.Fatal("add to unknown data source succeeded")
	}
	if code := l.LastExceptionCode(szerror.ComponentEngine); code != 27 {
		t.Fatalf("exception code = %d, want 27", code)
	}
}

func TestDeleteEnqueuesRedo(t *testing.T) {
	l := initializedEngine(t)
	if code := l.EngineAddRecord("TEST", "1", `{"NAME_FULL":"Ann"}`); code != 0 {
		t.Fatalf("EngineAddRecord returned %d", code)
	}
	if code := l.EngineDeleteRecord("TEST", "1"); code != 0 {
		t.Fatalf("EngineDeleteRecord returned %d", code)
	}
	if got := l.RedoCount(); got != 1 {
		t.Fatalf("RedoCount = %d, want 1", got)
	}
}
