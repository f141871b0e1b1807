package swagger

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcountryman/auth0-management-codegen/errors"
)

// Format selects the document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath guesses the format from a file extension. Anything that
// isn't .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode unmarshals data into out using the given format.
func Decode(data []byte, format Format, out any) error {
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "failed to decode JSON document")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "failed to decode YAML document")
		}
	default:
		return errors.Newf("unknown document format %q", format)
	}
	return nil
}

// DecodeListing decodes a resource listing.
func DecodeListing(data []byte, format Format) (*ResourceListing, error) {
	var listing ResourceListing
	if err := Decode(data, format, &listing); err != nil {
		return nil, errors.Wrap(err, "resource listing")
	}
	return &listing, nil
}

// DecodeDeclaration decodes an API declaration.
func DecodeDeclaration(data []byte, format Format) (*Declaration, error) {
	var decl Declaration
	if err := Decode(data, format, &decl); err != nil {
		return nil, errors.Wrap(err, "api declaration")
	}
	return &decl, nil
}
