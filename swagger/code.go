package swagger

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mcountryman/auth0-management-codegen/errors"
)

// ResponseCode is an HTTP status that documents write either as a number
// or as a string.
type ResponseCode struct {
	Number int
	Text   string
	// IsNumber reports which form the document used.
	IsNumber bool
}

func (c ResponseCode) String() string {
	if c.IsNumber {
		return strconv.Itoa(c.Number)
	}
	return c.Text
}

func (c *ResponseCode) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = ResponseCode{Number: n, IsNumber: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Newf("response code must be a number or string, got %s", data)
	}
	*c = ResponseCode{Text: s}
	return nil
}

func (c ResponseCode) MarshalJSON() ([]byte, error) {
	if c.IsNumber {
		return json.Marshal(c.Number)
	}
	return json.Marshal(c.Text)
}

func (c *ResponseCode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("response code must be a scalar (line %d)", node.Line)
	}
	if node.Tag == "!!int" {
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			return errors.Wrapf(err, "response code %q", node.Value)
		}
		*c = ResponseCode{Number: n, IsNumber: true}
		return nil
	}
	*c = ResponseCode{Text: node.Value}
	return nil
}
