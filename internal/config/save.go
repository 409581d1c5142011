package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigTemplate is written on first run when no config file exists.
const defaultConfigTemplate = `# maplegend configuration
auto_refresh: true
auto_refresh_debounce: 1s

theme:
  # hex colors; leave empty for adaptive defaults
  header: ""
  item: ""
  muted: "#696969"
  selected: "#FFFFFF"

legend:
  indent: 2
  padding_width: 1
  padding_height: 0
  # set either symbol dimension to 0 to disable symbol previews
  symbol_width: 2
  symbol_height: 1
  max_depth: 32

tracing:
  enabled: false
  exporter: file
`

// WriteDefaultConfig creates a default config file at the given path,
// creating parent directories as needed. Fails if the file already exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
