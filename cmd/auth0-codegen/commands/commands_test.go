package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcountryman/auth0-management-codegen/config"
	"github.com/mcountryman/auth0-management-codegen/errors"
)

const (
	fixtureListing = `{"apiVersion":"1.2.0","swaggerVersion":"1.2","apis":[{"path":"/users"}]}`
	fixtureUsers   = `{
  "swaggerVersion": "1.2",
  "resourcePath": "/users",
  "apis": [],
  "models": {"User": {"properties": {"email": {"type": "string"}}}}
}`
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "auth0-codegen", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "", "")
	root.AddCommand(GenerateCmd, CheckCmd, ConfigCmd, VersionCmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// writeProject lays out local descriptions and a config that points at them
func writeProject(t *testing.T) (configPath, outputPath string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "listing.json"), []byte(fixtureListing), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(fixtureUsers), 0644))

	outputPath = filepath.Join(dir, "src", "api.rs")
	configPath = filepath.Join(dir, config.FileName)
	content := fmt.Sprintf("[source]\nmanifest = 'listing.json'\n\n[output]\npath = '%s'\n", outputPath)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath, outputPath
}

func TestGenerate_WritesFile(t *testing.T) {
	configPath, outputPath := writeProject(t)

	_, err := execute(t, "generate", "--config", configPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "// Code generated by auth0-codegen. DO NOT EDIT.\n")
	assert.Contains(t, text, "// Source: listing.json\n")
	assert.Contains(t, text, "// Source version: 1.2.0\n")
	assert.Contains(t, text, "pub mod users {\n  use serde::{Serialize, Deserialize};\n")
	assert.Contains(t, text, "  #[derive(Debug, Serialize, Deserialize)]\n  pub struct User {\n    pub email: String,\n  }\n")
}

func TestCheck(t *testing.T) {
	configPath, outputPath := writeProject(t)

	_, err := execute(t, "check", "--config", configPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutOfDate), "missing file is out of date")

	_, err = execute(t, "generate", "--config", configPath)
	require.NoError(t, err)

	_, err = execute(t, "check", "--config", configPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	edited := bytes.Replace(data, []byte("pub email: String,"), []byte("pub email: i32,"), 1)
	require.NoError(t, os.WriteFile(outputPath, edited, 0644))

	out, err := execute(t, "check", "--config", configPath, "--context", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutOfDate))
	assert.Contains(t, out, "-    pub email: i32,")
	assert.Contains(t, out, "+    pub email: String,")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestConfigShow(t *testing.T) {
	configPath, _ := writeProject(t)

	out, err := execute(t, "config", "show", "--config", configPath, "--format", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, filepath.Join(filepath.Dir(configPath), "listing.json"), cfg.Source.Manifest)
	assert.Equal(t, "String", cfg.Naming.Types["string"])

	out, err = execute(t, "config", "show", "--config", configPath, "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[source]")

	out, err = execute(t, "config", "show", "--config", configPath, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "source:")

	_, err = execute(t, "config", "show", "--config", configPath, "--format", "xml")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = execute(t, "config", "init", path)
	assert.Error(t, err, "refuses to overwrite")

	_, err = execute(t, "config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestVersion_JSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "commit_hash")
	assert.Contains(t, info, "go_version")
}
