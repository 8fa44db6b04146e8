package sz

import (
	"context"
	"encoding/json"
	"runtime"
	"sync/atomic"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// Config is an in-memory, editable configuration. It starts from a
// template or a registered definition (see ConfigManager), accumulates
// edits such as data source registrations, and is exported back to a
// JSON definition with Export. Nothing takes effect in the repository
// until the exported definition is registered and made the default.
//
// A Config holds a native handle until Close.
type Config struct {
	core   *envCore
	handle ffi.Ptr
	closed atomic.Bool
}

func newConfig(core *envCore, handle ffi.Ptr) *Config {
	c := &Config{core: core, handle: handle}
	runtime.SetFinalizer(c, func(c *Config) { _ = c.Close() })
	return c
}

func (c *Config) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed.Load() {
		return szerror.Wrap(szerror.BadInput, "config has been closed", ErrConfigClosed)
	}
	if c.core.destroyed.Load() {
		return szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment has been destroyed", ErrDestroyed)
	}
	return nil
}

// Export serializes the configuration, including any edits, to a JSON
// definition suitable for ConfigManager.RegisterConfig.
func (c *Config) Export(ctx context.Context) (string, error) {
	if err := c.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentConfig, ffi.Native().ConfigExport(c.handle))
}

// GetDataSourceRegistry lists the data sources this configuration
// defines.
func (c *Config) GetDataSourceRegistry(ctx context.Context) (string, error) {
	if err := c.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentConfig, ffi.Native().ConfigGetDataSourceRegistry(c.handle))
}

// RegisterDataSource adds a data source to the configuration and
// returns a JSON document with its assigned DSRC_ID.
func (c *Config) RegisterDataSource(ctx context.Context, dataSourceCode string) (string, error) {
	if err := c.ready(ctx); err != nil {
		return "", err
	}
	input, err := dataSourceInput(dataSourceCode)
	if err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentConfig, ffi.Native().ConfigRegisterDataSource(c.handle, input))
}

// UnregisterDataSource removes a data source from the configuration.
func (c *Config) UnregisterDataSource(ctx context.Context, dataSourceCode string) error {
	if err := c.ready(ctx); err != nil {
		return err
	}
	input, err := dataSourceInput(dataSourceCode)
	if err != nil {
		return err
	}
	return ffi.Check(szerror.ComponentConfig, ffi.Native().ConfigUnregisterDataSource(c.handle, input))
}

func dataSourceInput(dataSourceCode string) (string, error) {
	input, err := json.Marshal(struct {
		Code string `json:"DSRC_CODE"`
	}{Code: dataSourceCode})
	if err != nil {
		return "", szerror.Wrap(szerror.BadInput, "data source code not serializable", err)
	}
	return string(input), nil
}

// Close releases the native configuration handle. Closing twice, or
// after the environment is destroyed, is a no-op.
func (c *Config) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	runtime.SetFinalizer(c, nil)
	if c.core.destroyed.Load() {
		return nil
	}
	return ffi.Check(szerror.ComponentConfig, ffi.Native().ConfigClose(c.handle))
}
