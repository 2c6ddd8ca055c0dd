package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI state: where to talk and the saved session.
// Passwords are never written; only the session token is kept.
type Config struct {
	API      string `json:"api,omitempty"      yaml:"api,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Token    string `json:"token,omitempty"    yaml:"token,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// loadConfig assembles the effective config from viper, which has already
// merged the config file, environment and flags.
func loadConfig() *Config {
	return &Config{
		API:      viper.GetString("api"),
		Username: viper.GetString("username"),
		Token:    viper.GetString("token"),
		Output:   viper.GetString("output"),
	}
}

// saveConfig writes the config back to the active config file, or to the
// default ~/.nano/config.yml when none is in use yet.
func saveConfig(config *Config) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		dir := filepath.Join(home, ".nano")

		err = os.MkdirAll(dir, 0o755)
		if err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		path = filepath.Join(dir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
