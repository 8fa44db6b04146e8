package sz

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/logging"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// Guard couples an Environment handle to a scope. Create one where the
// environment comes to life and defer Close; the environment is
// destroyed on the way out unless it is still in use elsewhere. Close
// reports nil for cleanup failures that only reflect shared lifecycle
// state, such as other live handles, and surfaces everything else.
type Guard struct {
	mu  sync.Mutex
	env *Environment
	log logging.Logger
}

// NewGuard creates an environment handle and wraps it. The returned
// guard owns the handle until Close, Cleanup, or Detach.
func NewGuard(moduleName, settings string, verbose bool) (*Guard, error) {
	env, err := GetInstance(moduleName, settings, verbose)
	if err != nil {
		return nil, err
	}
	return NewGuardFromEnv(env), nil
}

// NewGuardFromEnv wraps an existing environment handle. The guard takes
// over releasing it.
func NewGuardFromEnv(env *Environment) *Guard {
	g := &Guard{env: env, log: logging.New(nil)}
	runtime.SetFinalizer(g, func(g *Guard) { _ = g.Close() })
	return g
}

// SetLogger replaces the logger used to report cleanup outcomes.
func (g *Guard) SetLogger(log logging.Logger) {
	if log == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.log = log
}

func (g *Guard) logger() logging.Logger {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.log
}

// Env returns the guarded environment handle, or nil once the guard has
// been consumed by Close, Cleanup, or Detach.
func (g *Guard) Env() *Environment {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.env
}

// Detach hands the environment handle back to the caller and leaves the
// guard inert; Close becomes a no-op and the caller owns the handle's
// lifecycle.
func (g *Guard) Detach() *Environment {
	g.mu.Lock()
	defer g.mu.Unlock()
	env := g.env
	g.env = nil
	runtime.SetFinalizer(g, nil)
	return env
}

// Cleanup destroys the environment now and reports the raw result,
// benign or not. The guard is inert afterward and its reference is
// released even when the destroy could not proceed.
func (g *Guard) Cleanup() error {
	env := g.Detach()
	if env == nil {
		return nil
	}
	err := env.Destroy()
	if err != nil {
		_ = env.Close()
	}
	return err
}

// Close destroys the environment, downgrading benign failures to debug
// logging. A failure is benign when the destroy could not proceed for
// expected lifecycle reasons; anything else is logged and returned.
func (g *Guard) Close() error {
	err := g.Cleanup()
	if err == nil {
		return nil
	}
	ctx := context.Background()
	if benignCleanupError(err) {
		g.logger().Debug(ctx, "environment cleanup skipped", "reason", err)
		return nil
	}
	g.logger().Warn(ctx, "environment cleanup failed", "error", err)
	return err
}

// benignCleanupError reports whether a destroy failure is an expected
// lifecycle outcome rather than a fault: other handles still live, or
// the environment already gone. Classification is structural; error
// text is never consulted.
func benignCleanupError(err error) bool {
	if errors.Is(err, ErrOtherReferences) || errors.Is(err, ErrDestroyed) || errors.Is(err, ErrHandleReleased) {
		return true
	}
	return szerror.IsCategory(err, szerror.EnvironmentDestroyed)
}

func (g *Guard) live() (*Environment, error) {
	env := g.Env()
	if env == nil {
		return nil, szerror.Wrap(szerror.EnvironmentDestroyed,
			"guard has been released", ErrHandleReleased)
	}
	return env, nil
}

// Engine returns an engine handle from the guarded environment.
func (g *Guard) Engine() (*Engine, error) {
	env, err := g.live()
	if err != nil {
		return nil, err
	}
	return env.Engine()
}

// Diagnostic returns a diagnostic handle from the guarded environment.
func (g *Guard) Diagnostic() (*Diagnostic, error) {
	env, err := g.live()
	if err != nil {
		return nil, err
	}
	return env.Diagnostic()
}

// Product returns a product handle from the guarded environment.
func (g *Guard) Product() (*Product, error) {
	env, err := g.live()
	if err != nil {
		return nil, err
	}
	return env.Product()
}

// ConfigManager returns a config manager handle from the guarded
// environment.
func (g *Guard) ConfigManager() (*ConfigManager, error) {
	env, err := g.live()
	if err != nil {
		return nil, err
	}
	return env.ConfigManager()
}
