package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverrides(t *testing.T) {
	data := []byte(`
[service.imdb]
prefix = "https://m.imdb.com/title/"
suffix = ""

[cli]
opened = "Launched %s"
`)

	overrides, err := ParseOverrides(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"service.imdb.prefix": "https://m.imdb.com/title/",
		"service.imdb.suffix": "",
		"cli.opened":          "Launched %s",
	}, overrides)
}

func TestParseOverrides_DottedKeys(t *testing.T) {
	overrides, err := ParseOverrides([]byte(`service.wikipedia.separator = "%20"`))
	require.NoError(t, err)

	assert.Equal(t, "%20", overrides["service.wikipedia.separator"])
}

func TestParseOverrides_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Invalid TOML", `[service.imdb`},
		{"Non-string value", "[service.imdb]\nprefix = 42\n"},
		{"Array value", `cli.opened = ["a", "b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverrides([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.toml")
	require.NoError(t, os.WriteFile(path, []byte("[service.imdb]\nsuffix = \"/reference\"\n"), 0o600))

	overrides, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "/reference", overrides["service.imdb.suffix"])

	_, err = LoadOverrides(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
