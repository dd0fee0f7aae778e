package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/clog/pkg"
)

// loadYAML is a [kong.ConfigurationLoader] that reads flag defaults from a
// YAML document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML, "/path/to/config.yaml")
//
// Keys are flag names. Nested mappings are flattened by joining keys with a
// hyphen, so both of these set --log-zone:
//
//	log-zone: jst
//
//	log:
//	  zone: jst
//
// Underscores may be used in place of hyphens. Command-line flags override
// config file values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}

	var tree map[string]any

	err = yaml.Unmarshal(data, &tree)
	if err != nil {
		return nil, pkg.ErrParseConfig.Wrap(err)
	}

	cfg := config{}
	cfg.flatten("", tree)

	return cfg, nil
}

// config implements [kong.Resolver] for flattened YAML configs.
type config map[string]any

// flatten copies the leaves of tree into r, keyed by their hyphen-joined
// path below prefix.
func (r config) flatten(prefix string, tree map[string]any) {
	for key, val := range tree {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		switch v := val.(type) {
		case map[string]any:
			r.flatten(name, v)

		case bool, string, nil:
			r[name] = v

		default:
			// Kong parses everything but booleans from strings.
			r[name] = fmt.Sprint(v)
		}
	}
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, ok := r[flag.Name]
	if !ok || value == nil {
		// Not found - return nil to let Kong use defaults
		return nil, nil
	}

	return value, nil
}
