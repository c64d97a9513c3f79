package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// Only the mapping stored under the top-level key name is consulted.
// Flag names with hyphens (e.g., "log-level") may use either hyphens or
// underscores in the config file (e.g., "log_level").
//
// Example config file:
//
//	config:
//	  log_level: debug
//	  log_format: json
//	  log_pretty: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		var root map[string]any

		err := yaml.NewDecoder(r).Decode(&root)
		if err != nil {
			// Decode error (including empty input) - return empty config
			return config{}, nil
		}

		section, ok := root[name].(map[string]any)
		if !ok {
			// Section not found or not a mapping - return empty config
			return config{}, nil
		}

		return config(normalize(section)), nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML identifiers
	// may use underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// normalize converts decoded YAML values into the representation Kong
// expects for flag resolution.
func normalize(section map[string]any) map[string]any {
	result := make(map[string]any, len(section))

	for key, value := range section {
		switch v := value.(type) {
		// Kong requires numbers as strings for parsing
		case int:
			result[key] = strconv.Itoa(v)
		case int64:
			result[key] = strconv.FormatInt(v, 10)
		case uint64:
			result[key] = strconv.FormatUint(v, 10)
		case float64:
			result[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			result[key] = value
		}
	}

	return result
}
