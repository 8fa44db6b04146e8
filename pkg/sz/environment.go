package sz

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

var (
	// ErrNotBuilt reports that the binary was compiled without the native
	// bindings. All environment constructors fail with it in that case.
	ErrNotBuilt = ffi.ErrNotBuilt

	ErrNoInstance      = errors.New("no environment instance has been created")
	ErrDestroyed       = errors.New("environment has been destroyed")
	ErrOtherReferences = errors.New("other environment references still exist")
	ErrHandleReleased  = errors.New("environment handle has been released")
	ErrConfigClosed    = errors.New("config has been closed")
	ErrExportClosed    = errors.New("export report has been closed")
)

// registry is the process-wide environment slot. The native library keeps
// one set of module states per process, so all handles share one core.
var registry struct {
	mu   sync.Mutex
	core *envCore
}

// initGate runs a native module init exactly once and pins the first
// outcome. Concurrent callers block until the init completes; later
// callers observe the stored result without re-running it.
type initGate struct {
	once sync.Once
	err  error
}

func (g *initGate) run(f func() error) error {
	g.once.Do(func() { g.err = f() })
	return g.err
}

// envCore is the shared state behind every Environment handle. Component
// handles keep a reference to the core so their operations can detect
// destruction after the fact.
type envCore struct {
	moduleName string
	settings   string
	verbose    bool
	configID   ConfigID

	// refs counts live handles; guarded by registry.mu.
	refs      int
	destroyed atomic.Bool

	engineInit    initGate
	configInit    initGate
	configMgrInit initGate
	productInit   initGate
}

// Environment is a handle on the process-wide Senzing environment.
// Handles are cheap; obtain one per owner and release it with Close. The
// last owner may tear down the native environment with Destroy.
type Environment struct {
	core     *envCore
	released atomic.Bool
}

// GetInstance returns a handle on the process-wide environment, creating
// it on first use. moduleName labels this process in native diagnostics
// and may differ between callers; settings and verbose are pinned by the
// first creation and must match on every later call.
//
// No native module is initialized here. Initialization happens lazily,
// exactly once, when a component that needs the module is first
// requested.
func GetInstance(moduleName, settings string, verbose bool) (*Environment, error) {
	return getInstance(moduleName, settings, 0, verbose)
}

// GetInstanceWithConfigID is GetInstance pinned to a specific
// configuration instead of the repository default. The configID takes
// effect only when this call is the one that creates the environment.
func GetInstanceWithConfigID(moduleName, settings string, configID ConfigID, verbose bool) (*Environment, error) {
	return getInstance(moduleName, settings, configID, verbose)
}

func getInstance(moduleName, settings string, configID ConfigID, verbose bool) (*Environment, error) {
	if err := ffi.Available(); err != nil {
		return nil, szerror.Wrap(szerror.Ffi, "native library unavailable", err)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if core := registry.core; core != nil && !core.destroyed.Load() {
		if core.settings != settings || core.verbose != verbose {
			return nil, szerror.New(szerror.Configuration,
				"cannot change settings or verbose logging after the environment is created")
		}
		return newHandleLocked(core), nil
	}

	core := &envCore{
		moduleName: moduleName,
		settings:   settings,
		verbose:    verbose,
		configID:   configID,
	}
	registry.core = core
	return newHandleLocked(core), nil
}

// GetExistingInstance returns a handle on the already-created environment
// and fails if none exists.
func GetExistingInstance() (*Environment, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	core := registry.core
	switch {
	case core == nil:
		return nil, szerror.Wrap(szerror.Unrecoverable,
			"no environment has been created; call GetInstance first", ErrNoInstance)
	case core.destroyed.Load():
		return nil, szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment has been destroyed", ErrDestroyed)
	}
	return newHandleLocked(core), nil
}

// TryGetInstance returns a handle on the environment when a live one
// exists. It never creates one and never fails.
func TryGetInstance() (*Environment, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	core := registry.core
	if core == nil || core.destroyed.Load() {
		return nil, false
	}
	return newHandleLocked(core), true
}

func newHandleLocked(core *envCore) *Environment {
	core.refs++
	env := &Environment{core: core}
	runtime.SetFinalizer(env, func(e *Environment) { _ = e.Close() })
	return env
}

// Close releases this handle's reference on the shared environment. It
// never tears down native state; see Destroy. Close is idempotent.
func (e *Environment) Close() error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	e.releaseLocked()
	return nil
}

func (e *Environment) releaseLocked() {
	if e.released.Swap(true) {
		return
	}
	runtime.SetFinalizer(e, nil)
	e.core.refs--
}

// Destroy tears down the native environment. It fails with
// ErrOtherReferences while other handles are open: the native library is
// process-global, and destroying it under a live handle would invalidate
// that handle's components. On success the handle is released and a later
// GetInstance may create a fresh environment with different settings.
// Destroying an already-destroyed environment succeeds.
func (e *Environment) Destroy() error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	core := e.core
	if core.destroyed.Load() {
		e.releaseLocked()
		return nil
	}
	if e.released.Load() {
		return szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment handle has been released", ErrHandleReleased)
	}
	if core.refs > 1 {
		return szerror.Wrap(szerror.Unrecoverable,
			"cannot destroy environment: other references still exist; close all other handles first",
			ErrOtherReferences)
	}

	core.teardownLocked()
	e.releaseLocked()
	if registry.core == core {
		registry.core = nil
	}
	return nil
}

// teardownLocked shuts the native modules down in dependency order:
// diagnostic and product first, then configuration, with the engine
// last. Destroy results are not actionable mid-teardown and are ignored;
// exception state is cleared for every module afterward.
func (c *envCore) teardownLocked() {
	lib := ffi.Native()
	lib.DiagnosticDestroy()
	lib.ProductDestroy()
	lib.ConfigDestroy()
	lib.ConfigMgrDestroy()
	lib.EngineDestroy()
	for _, comp := range []szerror.Component{
		szerror.ComponentEngine,
		szerror.ComponentConfig,
		szerror.ComponentConfigManager,
		szerror.ComponentDiagnostic,
		szerror.ComponentProduct,
	} {
		lib.ClearLastException(comp)
	}
	c.destroyed.Store(true)
}

// Destroyed reports whether the underlying environment has been torn
// down. Handles to a destroyed environment fail all operations.
func (e *Environment) Destroyed() bool {
	return e.core.destroyed.Load()
}

func (e *Environment) liveCore() (*envCore, error) {
	if e.released.Load() {
		return nil, szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment handle has been released", ErrHandleReleased)
	}
	if e.core.destroyed.Load() {
		return nil, szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment has been destroyed", ErrDestroyed)
	}
	return e.core, nil
}

func (c *envCore) ensureEngine() error {
	return c.engineInit.run(func() error {
		lib := ffi.Native()
		if c.configID != 0 {
			return ffi.Check(szerror.ComponentEngine,
				lib.EngineInitWithConfigID(c.moduleName, c.settings, int64(c.configID), c.verbose))
		}
		return ffi.Check(szerror.ComponentEngine,
			lib.EngineInit(c.moduleName, c.settings, c.verbose))
	})
}

func (c *envCore) ensureConfig() error {
	return c.configInit.run(func() error {
		return ffi.Check(szerror.ComponentConfig,
			ffi.Native().ConfigInit(c.moduleName, c.settings, c.verbose))
	})
}

func (c *envCore) ensureConfigMgr() error {
	return c.configMgrInit.run(func() error {
		return ffi.Check(szerror.ComponentConfigManager,
			ffi.Native().ConfigMgrInit(c.moduleName, c.settings, c.verbose))
	})
}

func (c *envCore) ensureProduct() error {
	return c.productInit.run(func() error {
		return ffi.Check(szerror.ComponentProduct,
			ffi.Native().ProductInit(c.moduleName, c.settings, c.verbose))
	})
}

// Engine returns an entity resolution engine handle, initializing the
// native engine module on first use. The first call may block while the
// engine loads its configuration; concurrent callers wait for that same
// initialization and share its outcome.
func (e *Environment) Engine() (*Engine, error) {
	core, err := e.liveCore()
	if err != nil {
		return nil, err
	}
	if err := core.ensureEngine(); err != nil {
		return nil, err
	}
	return &Engine{core: core}, nil
}

// Diagnostic returns a repository diagnostic handle. Diagnostic
// operations ride the engine module, which is initialized on first use.
func (e *Environment) Diagnostic() (*Diagnostic, error) {
	core, err := e.liveCore()
	if err != nil {
		return nil, err
	}
	if err := core.ensureEngine(); err != nil {
		return nil, err
	}
	return &Diagnostic{core: core}, nil
}

// Product returns a product information handle, initializing the native
// product module on first use.
func (e *Environment) Product() (*Product, error) {
	core, err := e.liveCore()
	if err != nil {
		return nil, err
	}
	if err := core.ensureProduct(); err != nil {
		return nil, err
	}
	return &Product{core: core}, nil
}

// ConfigManager returns a configuration manager handle, initializing the
// native config manager module on first use. The config manager does not
// require the engine, so configurations can be prepared before the
// engine ever starts.
func (e *Environment) ConfigManager() (*ConfigManager, error) {
	core, err := e.liveCore()
	if err != nil {
		return nil, err
	}
	if err := core.ensureConfigMgr(); err != nil {
		return nil, err
	}
	return &ConfigManager{core: core}, nil
}

// Reinitialize switches the engine to the given registered
// configuration.
func (e *Environment) Reinitialize(ctx context.Context, configID ConfigID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	core, err := e.liveCore()
	if err != nil {
		return err
	}
	if err := core.ensureEngine(); err != nil {
		return err
	}
	return ffi.Check(szerror.ComponentEngine, ffi.Native().EngineReinit(int64(configID)))
}

// ActiveConfigID reports the configuration the engine is currently
// running with.
func (e *Environment) ActiveConfigID(ctx context.Context) (ConfigID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	core, err := e.liveCore()
	if err != nil {
		return 0, err
	}
	if err := core.ensureEngine(); err != nil {
		return 0, err
	}
	id, err := ffi.Long(szerror.ComponentEngine, ffi.Native().EngineGetActiveConfigID())
	if err != nil {
		return 0, err
	}
	return ConfigID(id), nil
}
