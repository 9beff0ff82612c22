package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Spread Optimizer Configuration

[optimizer]
# Default lot size in contracts per leg
quantity = 100
# Flat fees charged once per spread (profit is reduced, loss increased)
fees_total = 44.00
# Minimum net risk/reward ratio a spread must reach to qualify
min_risk_reward = 1.0

[database]
# Quote store location; defaults to quotes.db next to this file
# path = "/home/user/.config/spread-optimizer/quotes.db"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Write logs to the console
console = true
# Write logs to the rotating log file
file = true
`

// createTemplateConfig writes a commented default config.toml so the
// user has something to edit. The template values match the built-in
// defaults, so the first run behaves the same with or without it.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
