package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mcountryman/auth0-management-codegen/errors"
)

// FileName is the project configuration file searched for upward
const FileName = "codegen.toml"

// EnvPrefix prefixes environment overrides, e.g. CODEGEN_SOURCE_BASE_URL
const EnvPrefix = "CODEGEN"

// Load reads configuration from defaults, config files and environment.
// A non-empty explicitPath replaces the file search.
func Load(explicitPath string) (*Config, error) {
	v, err := NewViper(explicitPath)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	resolveManifest(v, cfg)
	return cfg, nil
}

// NewViper builds the Viper instance Load uses.
func NewViper(explicitPath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if explicitPath != "" {
		if err := mergeFile(v, explicitPath); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", explicitPath)
		}
		return v, nil
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := mergeFile(v, path); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}
	return v, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads defaults plus one specific file, without environment overrides
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if err := mergeFile(v, path); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	resolveManifest(v, cfg)
	return cfg, nil
}

// resolveManifest makes a relative source.manifest taken from a config file
// relative to the directory of the last file merged, which is the one with
// the highest precedence. Values from CODEGEN_SOURCE_MANIFEST stay relative
// to the working directory.
func resolveManifest(v *viper.Viper, cfg *Config) {
	manifest := cfg.Source.Manifest
	if manifest == "" || filepath.IsAbs(manifest) || !v.InConfig("source.manifest") {
		return
	}
	if _, fromEnv := os.LookupEnv(EnvPrefix + "_SOURCE_MANIFEST"); fromEnv {
		return
	}
	if used := v.ConfigFileUsed(); used != "" {
		cfg.Source.Manifest = filepath.Join(filepath.Dir(used), manifest)
	}
}

// SearchPaths lists config files in merge order (lowest precedence first)
func SearchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "auth0-codegen", FileName))
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}
	return paths
}

func mergeFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return v.MergeInConfig()
}

// findProjectConfig walks up from the working directory looking for codegen.toml
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
