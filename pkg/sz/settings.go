package sz

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

var validate = validator.New()

// SettingsPipeline locates the configuration, resource, and support
// directories of a Senzing installation.
type SettingsPipeline struct {
	ConfigPath   string `json:"CONFIGPATH" validate:"required"`
	ResourcePath string `json:"RESOURCEPATH" validate:"required"`
	SupportPath  string `json:"SUPPORTPATH" validate:"required"`
}

// SettingsSQL carries the repository database connection string.
type SettingsSQL struct {
	Connection string `json:"CONNECTION" validate:"required"`
}

// Settings is the initialization document passed to GetInstance. Build it
// directly or with a helper such as SQLiteSettings, then serialize it
// with JSON.
type Settings struct {
	Pipeline SettingsPipeline `json:"PIPELINE"`
	SQL      SettingsSQL      `json:"SQL"`
}

// JSON validates the settings and renders them in the form the native
// library expects.
func (s Settings) JSON() (string, error) {
	if err := validate.Struct(s); err != nil {
		return "", szerror.Wrap(szerror.Configuration, "incomplete settings", err)
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", szerror.Wrap(szerror.Configuration, "settings not serializable", err)
	}
	return string(b), nil
}

// SQLiteSettings returns settings for a SQLite repository at databasePath,
// using the standard installation layout under /opt/senzing.
func SQLiteSettings(databasePath string) Settings {
	return Settings{
		Pipeline: SettingsPipeline{
			ConfigPath:   "/etc/opt/senzing",
			ResourcePath: "/opt/senzing/er/resources",
			SupportPath:  "/opt/senzing/data",
		},
		SQL: SettingsSQL{Connection: "sqlite3://na:na@" + databasePath},
	}
}
