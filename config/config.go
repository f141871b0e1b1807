// Package config loads generator settings with Viper.
//
// Sources, lowest to highest precedence: defaults, user config
// (~/.config/auth0-codegen/codegen.toml), project config (codegen.toml found
// by walking up from the working directory), CODEGEN_* environment variables.
package config

// Config represents the generator configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source" toml:"source" json:"source" yaml:"source"`
	Swagger SwaggerConfig `mapstructure:"swagger" toml:"swagger" json:"swagger" yaml:"swagger"`
	Render  RenderConfig  `mapstructure:"render" toml:"render" json:"render" yaml:"render"`
	Output  OutputConfig  `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Naming  NamingConfig  `mapstructure:"naming" toml:"naming" json:"naming" yaml:"naming"`
	Models  ModelsConfig  `mapstructure:"models" toml:"models" json:"models" yaml:"models"`
}

// SourceConfig configures where description documents come from
type SourceConfig struct {
	BaseURL           string  `mapstructure:"base_url" toml:"base_url" json:"base_url" yaml:"base_url"`
	Manifest          string  `mapstructure:"manifest" toml:"manifest" json:"manifest" yaml:"manifest"` // local resource listing; overrides base_url
	TimeoutSeconds    int     `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" yaml:"timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" toml:"requests_per_second" json:"requests_per_second" yaml:"requests_per_second"` // 0 = unthrottled
	Concurrency       int     `mapstructure:"concurrency" toml:"concurrency" json:"concurrency" yaml:"concurrency"`
}

// SwaggerConfig restricts the accepted description format versions
type SwaggerConfig struct {
	VersionConstraint string `mapstructure:"version_constraint" toml:"version_constraint" json:"version_constraint" yaml:"version_constraint"` // semver constraint, e.g. ">= 1.0, < 2.0"
}

// RenderConfig configures text layout
type RenderConfig struct {
	Indent string `mapstructure:"indent" toml:"indent" json:"indent" yaml:"indent"`
}

// OutputConfig configures where rendered text is written
type OutputConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" yaml:"path"` // "-" = stdout
}

// NamingConfig configures identifier and type translation
type NamingConfig struct {
	Keywords map[string]string `mapstructure:"keywords" toml:"keywords" json:"keywords" yaml:"keywords"` // cased field name -> replacement
	Types    map[string]string `mapstructure:"types" toml:"types" json:"types" yaml:"types"`             // description type -> Rust type
}

// ModelsConfig configures generated structs
type ModelsConfig struct {
	Derives []string `mapstructure:"derives" toml:"derives" json:"derives" yaml:"derives"`
}

// Stdout is the output path that selects standard output
const Stdout = "-"
