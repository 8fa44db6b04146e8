package sz

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/szfake"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

const testSettings = `{"PIPELINE":{"CONFIGPATH":"/etc/opt/senzing","RESOURCEPATH":"/opt/senzing/er/resources","SUPPORTPATH":"/opt/senzing/data"},"SQL":{"CONNECTION":"sqlite3://na:na@/tmp/sz-test.db"}}`

// installFake swaps the fake native library in and isolates the
// process-wide environment slot for one test. Cleanup runs in reverse
// order: the slot is abandoned before the fake is restored.
func installFake(t *testing.T) *szfake.Library {
	t.Helper()
	fake := szfake.Install(t)
	t.Cleanup(func() {
		registry.mu.Lock()
		defer registry.mu.Unlock()
		registry.core = nil
	})
	return fake
}

// newTestEnv creates an environment against a fresh fake and closes the
// handle when the test ends.
func newTestEnv(t *testing.T) (*Environment, *szfake.Library) {
	t.Helper()
	fake := installFake(t)
	env, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = env.Close() })
	return env, fake
}

func TestGetInstanceSharesOneEnvironment(t *testing.T) {
	fake := installFake(t)

	env1, err := GetInstance("first", testSettings, false)
	require.NoError(t, err)
	defer env1.Close()

	env2, err := GetInstance("second", testSettings, false)
	require.NoError(t, err)
	defer env2.Close()

	require.NotSame(t, env1, env2)
	assert.Same(t, env1.core, env2.core)

	// Handle creation must not touch any native module.
	assert.Equal(t, 0, fake.InitCount(szerror.ComponentEngine))

	_, err = env1.Engine()
	require.NoError(t, err)
	_, err = env2.Engine()
	require.NoError(t, err)
	assert.Equal(t, 1, fake.InitCount(szerror.ComponentEngine))
}

func TestGetInstanceRejectsChangedSettings(t *testing.T) {
	installFake(t)

	env, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)
	defer env.Close()

	_, err = GetInstance("test", `{"SQL":{"CONNECTION":"sqlite3://na:na@/tmp/other.db"}}`, false)
	require.Error(t, err)
	assert.True(t, szerror.IsCategory(err, szerror.Configuration))

	_, err = GetInstance("test", testSettings, true)
	require.Error(t, err)
	assert.True(t, szerror.IsCategory(err, szerror.Configuration))
}

// TestConcurrentEngineInitRunsOnce hammers first-use initialization from
// many goroutines while the fake stretches the init window. Exactly one
// native init may run.
func TestConcurrentEngineInitRunsOnce(t *testing.T) {
	fake := installFake(t)
	fake.SetInitDelay(20 * time.Millisecond)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env, err := GetInstance("race", testSettings, false)
			if err != nil {
				errs[i] = err
				return
			}
			defer env.Close()
			_, errs[i] = env.Engine()
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "goroutine %d", i)
	}
	assert.Equal(t, 1, fake.InitCount(szerror.ComponentEngine))
}

func TestDestroyRequiresSoleOwnership(t *testing.T) {
	fake := installFake(t)

	env1, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)
	env2, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)

	_, err = env1.Engine()
	require.NoError(t, err)

	err = env1.Destroy()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOtherReferences)
	assert.True(t, szerror.IsUnrecoverable(err))
	assert.False(t, env1.Destroyed())

	// The failed destroy must leave the handle usable.
	_, err = env1.Engine()
	require.NoError(t, err)

	require.NoError(t, env2.Close())
	require.NoError(t, env1.Destroy())
	assert.True(t, env1.Destroyed())

	want := []szerror.Component{
		szerror.ComponentDiagnostic,
		szerror.ComponentProduct,
		szerror.ComponentConfig,
		szerror.ComponentConfigManager,
		szerror.ComponentEngine,
	}
	assert.Equal(t, want, fake.DestroyOrder())
	for _, comp := range want {
		assert.Equal(t, 1, fake.ClearCount(comp), "component %v", comp)
	}
}

func TestDestroyThenGetInstanceStartsFresh(t *testing.T) {
	fake := installFake(t)

	env1, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)
	_, err = env1.Engine()
	require.NoError(t, err)
	require.NoError(t, env1.Destroy())

	// A destroyed slot pins nothing: new settings are accepted.
	env2, err := GetInstance("test", `{"SQL":{"CONNECTION":"sqlite3://na:na@/tmp/fresh.db"}}`, true)
	require.NoError(t, err)
	defer env2.Close()

	_, err = env2.Engine()
	require.NoError(t, err)
	assert.Equal(t, 2, fake.InitCount(szerror.ComponentEngine))

	_, err = env1.Engine()
	require.Error(t, err)
	assert.True(t, szerror.IsCategory(err, szerror.EnvironmentDestroyed))
}

func TestGetExistingInstance(t *testing.T) {
	installFake(t)

	_, err := GetExistingInstance()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoInstance)
	assert.True(t, szerror.IsUnrecoverable(err))

	env, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)

	existing, err := GetExistingInstance()
	require.NoError(t, err)
	assert.Same(t, env.core, existing.core)
	require.NoError(t, existing.Close())

	require.NoError(t, env.Destroy())
	_, err = GetExistingInstance()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.True(t, szerror.IsCategory(err, szerror.EnvironmentDestroyed))
}

func TestTryGetInstance(t *testing.T) {
	installFake(t)

	if _, ok := TryGetInstance(); ok {
		t.Fatal("TryGetInstance reported an instance before any was created")
	}

	env, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)

	got, ok := TryGetInstance()
	require.True(t, ok)
	assert.Same(t, env.core, got.core)
	require.NoError(t, got.Close())

	require.NoError(t, env.Destroy())
	if _, ok := TryGetInstance(); ok {
		t.Fatal("TryGetInstance reported an instance after destroy")
	}
}

// TestEngineInitFailureIsPinned verifies that a failed first-use init is
// not silently retried. The injected fault is one-shot, so a second
// native attempt would have succeeded.
func TestEngineInitFailureIsPinned(t *testing.T) {
	env, fake := newTestEnv(t)

	fake.FailNext(szerror.ComponentEngine, 14, "Invalid datastore configuration")

	_, err := env.Engine()
	require.Error(t, err)
	assert.True(t, szerror.IsCategory(err, szerror.Configuration))

	_, err2 := env.Engine()
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
	assert.Equal(t, 0, fake.InitCount(szerror.ComponentEngine))
}

func TestCloseIsIdempotent(t *testing.T) {
	installFake(t)

	env1, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)
	env2, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)
	env3, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)

	require.NoError(t, env2.Close())
	require.NoError(t, env2.Close())

	// A double Close must release exactly one reference: env3 still
	// blocks the destroy.
	err = env1.Destroy()
	assert.ErrorIs(t, err, ErrOtherReferences)

	require.NoError(t, env3.Close())
	require.NoError(t, env1.Destroy())
}

func TestDestroyAfterCloseFails(t *testing.T) {
	installFake(t)

	env, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)
	require.NoError(t, env.Close())

	err = env.Destroy()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandleReleased)
	assert.True(t, szerror.IsCategory(err, szerror.EnvironmentDestroyed))
}

func TestDestroyTwiceSucceeds(t *testing.T) {
	installFake(t)

	env, err := GetInstance("test", testSettings, false)
	require.NoError(t, err)
	require.NoError(t, env.Destroy())
	require.NoError(t, env.Destroy())
}

func TestReinitializeSwitchesActiveConfig(t *testing.T) {
	env, _ := newTestEnv(t)
	ctx := context.Background()

	id, err := env.ActiveConfigID(ctx)
	require.NoError(t, err)
	assert.Equal(t, ConfigID(1), id)

	mgr, err := env.ConfigManager()
	require.NoError(t, err)
	newID, err := mgr.RegisterConfig(ctx,
		`{"G2_CONFIG":{"CFG_DSRC":[{"DSRC_ID":1,"DSRC_CODE":"TEST"}]}}`, "trimmed sources")
	require.NoError(t, err)

	require.NoError(t, env.Reinitialize(ctx, newID))
	id, err = env.ActiveConfigID(ctx)
	require.NoError(t, err)
	assert.Equal(t, newID, id)

	err = env.Reinitialize(ctx, ConfigID(424242))
	require.Error(t, err)
	assert.True(t, szerror.IsNotFound(err))
}

func TestGetInstanceWithConfigID(t *testing.T) {
	fake := installFake(t)

	env, err := GetInstanceWithConfigID("test", testSettings, 1, false)
	require.NoError(t, err)
	defer env.Close()

	id, err := env.ActiveConfigID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ConfigID(1), id)
	assert.Equal(t, 1, fake.InitCount(szerror.ComponentEngine))
}

func TestGetInstanceWithUnknownConfigID(t *testing.T) {
	installFake(t)

	env, err := GetInstanceWithConfigID("test", testSettings, 424242, false)
	require.NoError(t, err)
	defer env.Close()

	// The bad ID surfaces at first engine use, not at handle creation.
	_, err = env.Engine()
	require.Error(t, err)
	assert.True(t, szerror.IsNotFound(err))
}

func TestCanceledContextShortCircuits(t *testing.T) {
	env, fake := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.ActiveConfigID(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, fake.InitCount(szerror.ComponentEngine))
}
