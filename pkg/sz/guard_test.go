package sz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/logging"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

type captureLogger struct {
	mu      sync.Mutex
	entries []string
}

func (c *captureLogger) record(level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, level+": "+msg)
}

func (c *captureLogger) Debug(_ context.Context, msg string, _ ...any) { c.record("debug", msg) }
func (c *captureLogger) Info(_ context.Context, msg string, _ ...any)  { c.record("info", msg) }
func (c *captureLogger) Warn(_ context.Context, msg string, _ ...any)  { c.record("warn", msg) }
func (c *captureLogger) Error(_ context.Context, msg string, _ ...any) { c.record("error", msg) }
func (c *captureLogger) With(_ ...any) logging.Logger                  { return c }

func (c *captureLogger) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.entries...)
}

func TestGuardDestroysOnClose(t *testing.T) {
	installFake(t)

	guard, err := NewGuard("test", testSettings, false)
	require.NoError(t, err)

	eng, err := guard.Engine()
	require.NoError(t, err)
	_, err = eng.Stats(context.Background())
	require.NoError(t, err)

	require.NoError(t, guard.Close())

	if _, ok := TryGetInstance(); ok {
		t.Fatal("environment still live after guard close")
	}
	assert.Nil(t, guard.Env())
}

func TestGuardCloseBenignWithOtherReferences(t *testing.T) {
	installFake(t)

	other, err := GetInstance("holder", testSettings, false)
	require.NoError(t, err)

	guard, err := NewGuard("guarded", testSettings, false)
	require.NoError(t, err)
	log := &captureLogger{}
	guard.SetLogger(log)

	// The other handle blocks the destroy; the guard shrugs it off.
	require.NoError(t, guard.Close())
	assert.Contains(t, log.all(), "debug: environment cleanup skipped")

	got, ok := TryGetInstance()
	require.True(t, ok, "environment must survive a benign guard close")
	require.NoError(t, got.Close())
	require.NoError(t, other.Destroy())
}

// TestGuardCleanupReportsRawError contrasts Cleanup with Close: Cleanup
// hands back exactly what Destroy said, benign or not.
func TestGuardCleanupReportsRawError(t *testing.T) {
	installFake(t)

	other, err := GetInstance("holder", testSettings, false)
	require.NoError(t, err)
	defer other.Destroy()

	guard, err := NewGuard("guarded", testSettings, false)
	require.NoError(t, err)

	err = guard.Cleanup()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOtherReferences)

	// Consumed either way.
	assert.Nil(t, guard.Env())
	require.NoError(t, guard.Cleanup())
}

func TestGuardDetach(t *testing.T) {
	installFake(t)

	guard, err := NewGuard("test", testSettings, false)
	require.NoError(t, err)

	env := guard.Detach()
	require.NotNil(t, env)
	assert.Nil(t, guard.Env())

	// The inert guard neither destroys nor serves components.
	require.NoError(t, guard.Close())
	_, err = guard.Engine()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandleReleased)
	assert.True(t, szerror.IsCategory(err, szerror.EnvironmentDestroyed))

	_, err = env.Engine()
	require.NoError(t, err)
	require.NoError(t, env.Destroy())
}

func TestGuardFromEnvPassthroughs(t *testing.T) {
	env, _ := newTestEnv(t)
	guard := NewGuardFromEnv(env)
	defer guard.Detach()

	_, err := guard.Engine()
	require.NoError(t, err)
	_, err = guard.Diagnostic()
	require.NoError(t, err)
	_, err = guard.Product()
	require.NoError(t, err)
	_, err = guard.ConfigManager()
	require.NoError(t, err)
}

func TestBenignCleanupError(t *testing.T) {
	assert.True(t, benignCleanupError(ErrOtherReferences))
	assert.True(t, benignCleanupError(ErrDestroyed))
	assert.True(t, benignCleanupError(ErrHandleReleased))
	assert.True(t, benignCleanupError(fmt.Errorf("destroy: %w", ErrOtherReferences)))
	assert.True(t, benignCleanupError(szerror.Wrap(szerror.EnvironmentDestroyed, "gone", errors.New("detail"))))

	assert.False(t, benignCleanupError(errors.New("disk failure")))
	assert.False(t, benignCleanupError(szerror.New(szerror.Database, "lost connection")))
}
