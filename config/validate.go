package config

import (
	"github.com/Masterminds/semver/v3"

	"github.com/mcountryman/auth0-management-codegen/errors"
)

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Source.Manifest == "" && c.Source.BaseURL == "" {
		return errors.WithHint(
			errors.NewInvalidConfigError("source.base_url cannot be empty when source.manifest is unset"),
			"set source.base_url or point source.manifest at a local resource listing",
		)
	}

	if c.Source.TimeoutSeconds <= 0 {
		return errors.NewInvalidConfigError("source.timeout_seconds must be > 0, got %d", c.Source.TimeoutSeconds)
	}

	// 0 = unthrottled
	if c.Source.RequestsPerSecond < 0 {
		return errors.NewInvalidConfigError("source.requests_per_second must be >= 0, got %f", c.Source.RequestsPerSecond)
	}

	if c.Source.Concurrency < 1 {
		return errors.NewInvalidConfigError("source.concurrency must be >= 1, got %d", c.Source.Concurrency)
	}

	if _, err := semver.NewConstraint(c.Swagger.VersionConstraint); err != nil {
		return errors.Mark(
			errors.Wrapf(err, "swagger.version_constraint %q is not a valid semver constraint", c.Swagger.VersionConstraint),
			errors.ErrInvalidConfig,
		)
	}

	if c.Render.Indent == "" {
		return errors.NewInvalidConfigError("render.indent cannot be empty")
	}

	if c.Output.Path == "" {
		return errors.NewInvalidConfigError("output.path cannot be empty (use %q for stdout)", Stdout)
	}

	for from, to := range c.Naming.Types {
		if to == "" {
			return errors.NewInvalidConfigError("naming.types.%s cannot map to an empty type", from)
		}
	}

	return nil
}
