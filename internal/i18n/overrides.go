package i18n

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// ParseOverrides reads a TOML document of message overrides. Nested tables are
// flattened into dotted keys, so
//
//	[service.imdb]
//	prefix = "https://m.imdb.com/title/"
//
// overrides "service.imdb.prefix". Every leaf value must be a string.
func ParseOverrides(data []byte) (map[string]string, error) {
	var root map[string]interface{}
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse overrides: %w", err)
	}

	overrides := make(map[string]string)
	if err := flatten("", root, overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

// LoadOverrides reads and parses the override file at path.
func LoadOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}
	return ParseOverrides(data)
}

func flatten(prefix string, table map[string]interface{}, out map[string]string) error {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch value := table[key].(type) {
		case string:
			out[fullKey] = value
		case map[string]interface{}:
			if err := flatten(fullKey, value, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("override %q must be a string, got %T", fullKey, value)
		}
	}
	return nil
}
