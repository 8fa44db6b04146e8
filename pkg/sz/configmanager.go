package sz

import (
	"context"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// ConfigManager manages the registry of configurations stored in the
// repository and which of them is the default. Obtain one from
// Environment.ConfigManager. A ConfigManager is safe for concurrent
// use.
//
// The usual flow is CreateConfig (or CreateConfigFromID to start from a
// registered one), edit the Config, Export it, then RegisterConfig and
// SetDefaultConfigID so engines pick it up on their next initialization
// or Reinitialize.
type ConfigManager struct {
	core *envCore
}

func (m *ConfigManager) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.core.destroyed.Load() {
		return szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment has been destroyed", ErrDestroyed)
	}
	return nil
}

// CreateConfig returns a new Config based on the installed template.
func (m *ConfigManager) CreateConfig(ctx context.Context) (*Config, error) {
	if err := m.ready(ctx); err != nil {
		return nil, err
	}
	if err := m.core.ensureConfig(); err != nil {
		return nil, err
	}
	h, err := ffi.Handle(szerror.ComponentConfig, ffi.Native().ConfigCreate())
	if err != nil {
		return nil, err
	}
	return newConfig(m.core, h), nil
}

// CreateConfigFromID returns a Config loaded from the registered
// configuration with the given ID.
func (m *ConfigManager) CreateConfigFromID(ctx context.Context, configID ConfigID) (*Config, error) {
	if err := m.ready(ctx); err != nil {
		return nil, err
	}
	definition, err := ffi.String(szerror.ComponentConfigManager,
		ffi.Native().ConfigMgrGetConfig(int64(configID)))
	if err != nil {
		return nil, err
	}
	return m.CreateConfigFromDefinition(ctx, definition)
}

// CreateConfigFromDefinition returns a Config loaded from a JSON
// definition, such as one produced by Config.Export.
func (m *ConfigManager) CreateConfigFromDefinition(ctx context.Context, configDefinition string) (*Config, error) {
	if err := m.ready(ctx); err != nil {
		return nil, err
	}
	if err := m.core.ensureConfig(); err != nil {
		return nil, err
	}
	h, err := ffi.Handle(szerror.ComponentConfig, ffi.Native().ConfigLoad(configDefinition))
	if err != nil {
		return nil, err
	}
	return newConfig(m.core, h), nil
}

// RegisterConfig stores a configuration definition in the repository and
// returns its assigned ID. Registering does not change the default; see
// SetDefaultConfigID.
func (m *ConfigManager) RegisterConfig(ctx context.Context, configDefinition, configComment string) (ConfigID, error) {
	if err := m.ready(ctx); err != nil {
		return 0, err
	}
	id, err := ffi.Long(szerror.ComponentConfigManager,
		ffi.Native().ConfigMgrRegisterConfig(configDefinition, configComment))
	if err != nil {
		return 0, err
	}
	return ConfigID(id), nil
}

// GetConfigRegistry lists the registered configurations.
func (m *ConfigManager) GetConfigRegistry(ctx context.Context) (string, error) {
	if err := m.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentConfigManager, ffi.Native().ConfigMgrGetConfigRegistry())
}

// GetDefaultConfigID returns the ID of the default configuration, or
// zero when none has been set.
func (m *ConfigManager) GetDefaultConfigID(ctx context.Context) (ConfigID, error) {
	if err := m.ready(ctx); err != nil {
		return 0, err
	}
	id, err := ffi.Long(szerror.ComponentConfigManager, ffi.Native().ConfigMgrGetDefaultConfigID())
	if err != nil {
		return 0, err
	}
	return ConfigID(id), nil
}

// SetDefaultConfigID makes a registered configuration the default.
// Running engines keep their current configuration until Reinitialize.
func (m *ConfigManager) SetDefaultConfigID(ctx context.Context, configID ConfigID) error {
	if err := m.ready(ctx); err != nil {
		return err
	}
	return ffi.Check(szerror.ComponentConfigManager,
		ffi.Native().ConfigMgrSetDefaultConfigID(int64(configID)))
}

// ReplaceDefaultConfigID changes the default configuration only if
// currentConfigID still is the default, guarding against concurrent
// changes.
func (m *ConfigManager) ReplaceDefaultConfigID(ctx context.Context, currentConfigID, newConfigID ConfigID) error {
	if err := m.ready(ctx); err != nil {
		return err
	}
	return ffi.Check(szerror.ComponentConfigManager,
		ffi.Native().ConfigMgrReplaceDefaultConfigID(int64(currentConfigID), int64(newConfigID)))
}

// SetDefaultConfig registers a configuration definition and makes it the
// default in one step, returning the assigned ID.
func (m *ConfigManager) SetDefaultConfig(ctx context.Context, configDefinition, configComment string) (ConfigID, error) {
	id, err := m.RegisterConfig(ctx, configDefinition, configComment)
	if err != nil {
		return 0, err
	}
	if err := m.SetDefaultConfigID(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}
