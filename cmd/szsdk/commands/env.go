package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brianmacy/sz-sdk-go/pkg/sz"
)

// resolveSettings turns the global connection flags into the settings
// document the SDK expects. A --settings value of @path reads the
// document from a file.
func resolveSettings() (string, error) {
	if settingsJSON != "" {
		if path, ok := strings.CutPrefix(settingsJSON, "@"); ok {
			raw, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("read settings file: %w", err)
			}
			return strings.TrimSpace(string(raw)), nil
		}
		return settingsJSON, nil
	}
	if databasePath != "" {
		return sz.SQLiteSettings(databasePath).JSON()
	}
	return "", fmt.Errorf("no repository selected: pass --settings or --database")
}

// openGuard initializes the SDK against the configured repository. The
// caller must Close the returned guard.
func openGuard() (*sz.Guard, error) {
	settings, err := resolveSettings()
	if err != nil {
		return nil, err
	}

	name := moduleName
	if name == "" {
		name = "szsdk-" + uuid.NewString()
	}

	guard, err := sz.NewGuard(name, settings, verbose)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("module_name", name).Msg("SDK environment ready")
	return guard, nil
}

// printJSON writes doc to the command output, indented when it parses as
// JSON and verbatim otherwise.
func printJSON(cmd *cobra.Command, doc string) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(doc), "", "  "); err != nil {
		_, werr := fmt.Fprintln(cmd.OutOrStdout(), doc)
		return werr
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), buf.String())
	return err
}
