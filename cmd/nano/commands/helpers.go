package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
	"github.com/wrimolabs/nanowrimo/pkg/nanoclient"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"

	defaultJSONIndent = 2
)

// newClient builds a client from the persisted config: saved token if
// any, saved API override if any.
func newClient() (nano.Client, error) {
	config := loadConfig()

	client, err := nanoclient.New(&nano.Config{
		BaseURL:  config.API,
		Username: config.Username,
		Token:    config.Token,
		Debug:    viper.GetBool("debug"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderStructured prints data as JSON or YAML and reports whether it
// handled the output; table rendering stays with the caller.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(defaultJSONIndent)

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

func stringOrNA(val *string) string {
	if val == nil || *val == "" {
		return NotAvailable
	}

	return *val
}
