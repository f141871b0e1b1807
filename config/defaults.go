package config

import (
	"github.com/spf13/viper"
)

// DefaultBaseURL is the Auth0 Management API description root
const DefaultBaseURL = "https://login.auth0.com/api/v2/api-docs"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("source.base_url", DefaultBaseURL)
	v.SetDefault("source.manifest", "")
	v.SetDefault("source.timeout_seconds", 30)
	v.SetDefault("source.requests_per_second", 5.0)
	v.SetDefault("source.concurrency", 4)

	v.SetDefault("swagger.version_constraint", ">= 1.0, < 2.0")

	v.SetDefault("render.indent", "  ")

	v.SetDefault("output.path", "auth0-management/src/api.rs")

	v.SetDefault("naming.keywords", map[string]string{
		"pub":  "public",
		"type": "kind",
	})
	v.SetDefault("naming.types", map[string]string{
		"string":  "String",
		"integer": "i32",
		"boolean": "bool",
		"number":  "f64",
	})

	v.SetDefault("models.derives", []string{"Debug", "Serialize", "Deserialize"})
}

// Default returns the configuration built from defaults alone
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always decode
		panic(err)
	}
	return cfg
}
