package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcountryman/auth0-management-codegen/errors"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance, no user or project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Source.BaseURL)
	assert.Equal(t, 30, cfg.Source.TimeoutSeconds)
	assert.Equal(t, 4, cfg.Source.Concurrency)
	assert.Equal(t, "  ", cfg.Render.Indent)
	assert.Equal(t, "auth0-management/src/api.rs", cfg.Output.Path)
	assert.Equal(t, "public", cfg.Naming.Keywords["pub"])
	assert.Equal(t, "kind", cfg.Naming.Keywords["type"])
	assert.Equal(t, "String", cfg.Naming.Types["string"])
	assert.Equal(t, "i32", cfg.Naming.Types["integer"])
	assert.Equal(t, []string{"Debug", "Serialize", "Deserialize"}, cfg.Models.Derives)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"local manifest without base url", func(c *Config) { c.Source.BaseURL = ""; c.Source.Manifest = "listing.json" }, false},
		{"no source at all", func(c *Config) { c.Source.BaseURL = "" }, true},
		{"zero timeout", func(c *Config) { c.Source.TimeoutSeconds = 0 }, true},
		{"zero rate is unthrottled", func(c *Config) { c.Source.RequestsPerSecond = 0 }, false},
		{"negative rate", func(c *Config) { c.Source.RequestsPerSecond = -1 }, true},
		{"zero concurrency", func(c *Config) { c.Source.Concurrency = 0 }, true},
		{"bad constraint", func(c *Config) { c.Swagger.VersionConstraint = "not a version" }, true},
		{"empty indent", func(c *Config) { c.Render.Indent = "" }, true},
		{"empty output path", func(c *Config) { c.Output.Path = "" }, true},
		{"empty mapped type", func(c *Config) { c.Naming.Types["uuid"] = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestValidate_Hint(t *testing.T) {
	cfg := Default()
	cfg.Source.BaseURL = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[source]
manifest = "fixtures/listing.json"
concurrency = 2

[render]
indent = "    "

[naming.types]
string = "String"
integer = "i64"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "fixtures", "listing.json"), cfg.Source.Manifest)
	assert.Equal(t, 2, cfg.Source.Concurrency)
	assert.Equal(t, "    ", cfg.Render.Indent)
	assert.Equal(t, "i64", cfg.Naming.Types["integer"])
	// untouched sections keep defaults
	assert.Equal(t, 30, cfg.Source.TimeoutSeconds)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[output]\npath = \"src/api.rs\"\n"), 0644))
	t.Setenv("CODEGEN_OUTPUT_PATH", "-")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Stdout, cfg.Output.Path)
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(""), 0644))

	t.Chdir(nested)

	found := findProjectConfig()
	// macOS temp dirs resolve through /private
	resolvedRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	resolvedFound, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(resolvedRoot, FileName), resolvedFound)
}

func TestLoad_ManifestRelativeToFoundConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "listing.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("[source]\nmanifest = 'docs/listing.json'\n"), 0644))

	nested := filepath.Join(root, "crates", "api")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	cfg, err := Load("")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(root, "docs", "listing.json"))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cfg.Source.Manifest)
	require.NoError(t, err, "manifest should resolve from the project root, got %s", cfg.Source.Manifest)
	assert.Equal(t, want, got)
}

func TestLoad_ManifestFromEnvStaysRelative(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[source]\nmanifest = 'docs/listing.json'\n"), 0644))
	t.Setenv("CODEGEN_SOURCE_MANIFEST", "local/listing.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "local/listing.json", cfg.Source.Manifest)
}

func TestLoadFromFile_ManifestRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[source]\nmanifest = 'listing.json'\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "listing.json"), cfg.Source.Manifest)
}
