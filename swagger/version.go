package swagger

import (
	"github.com/Masterminds/semver/v3"

	"github.com/mcountryman/auth0-management-codegen/errors"
)

// CheckVersion fails with ErrUnsupportedSwagger unless swaggerVersion
// satisfies constraint.
func CheckVersion(swaggerVersion, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid swagger version constraint %q", constraint)
	}

	v, err := semver.NewVersion(swaggerVersion)
	if err != nil {
		return errors.Mark(
			errors.Wrapf(err, "unparseable swaggerVersion %q", swaggerVersion),
			errors.ErrUnsupportedSwagger,
		)
	}

	if !c.Check(v) {
		err := errors.Newf("swaggerVersion %s does not satisfy %q", v, constraint)
		err = errors.WithHint(err, "set swagger.version_constraint in codegen.toml to accept it")
		return errors.Mark(err, errors.ErrUnsupportedSwagger)
	}
	return nil
}
