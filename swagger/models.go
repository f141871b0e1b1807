// Package swagger models the Swagger 1.x documents the Auth0 Management API
// publishes: a resource listing that names every API, and one API
// declaration per listed path.
package swagger

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ResourceListing is the document served at the API docs root.
type ResourceListing struct {
	APIVersion     string        `json:"apiVersion" yaml:"apiVersion"`
	SwaggerVersion string        `json:"swaggerVersion" yaml:"swaggerVersion"`
	APIs           []ResourceRef `json:"apis" yaml:"apis"`
}

// ResourceRef points at one API declaration relative to the listing.
type ResourceRef struct {
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Declaration describes the operations and models of one resource.
type Declaration struct {
	APIVersion     string `json:"apiVersion" yaml:"apiVersion"`
	SwaggerVersion string `json:"swaggerVersion" yaml:"swaggerVersion"`
	BasePath       string `json:"basePath" yaml:"basePath"`
	ResourcePath   string `json:"resourcePath" yaml:"resourcePath"`
	APIs           []API  `json:"apis" yaml:"apis"`

	// Models keeps document order so generated output is stable.
	Models *orderedmap.OrderedMap[string, Model] `json:"models,omitempty" yaml:"models,omitempty"`
}

type API struct {
	Path       string      `json:"path" yaml:"path"`
	Operations []Operation `json:"operations" yaml:"operations"`
}

type Operation struct {
	Type       string      `json:"type,omitempty" yaml:"type,omitempty"`
	Method     string      `json:"method" yaml:"method"`
	Summary    string      `json:"summary" yaml:"summary"`
	Notes      string      `json:"notes,omitempty" yaml:"notes,omitempty"`
	Nickname   string      `json:"nickname" yaml:"nickname"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
	Items      *Items      `json:"items,omitempty" yaml:"items,omitempty"`
	Responses  []Response  `json:"responseMessages,omitempty" yaml:"responseMessages,omitempty"`
}

type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	ParamType   string `json:"paramType" yaml:"paramType"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Minimum     *int   `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *int   `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Items       *Items `json:"items,omitempty" yaml:"items,omitempty"`
}

// Response is one entry of an operation's responseMessages.
type Response struct {
	Code    *ResponseCode `json:"code,omitempty" yaml:"code,omitempty"`
	Message string        `json:"message,omitempty" yaml:"message,omitempty"`
}

type Model struct {
	ID         string                                   `json:"id,omitempty" yaml:"id,omitempty"`
	Type       string                                   `json:"type,omitempty" yaml:"type,omitempty"`
	Required   []string                                 `json:"required,omitempty" yaml:"required,omitempty"`
	Properties *orderedmap.OrderedMap[string, Property] `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type Property struct {
	Ref         string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Items       *Items `json:"items,omitempty" yaml:"items,omitempty"`
}

// Items describes the element type of an array.
type Items struct {
	Ref       string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}

// ModelNames returns model names in document order.
func (d *Declaration) ModelNames() []string {
	if d.Models == nil {
		return nil
	}
	names := make([]string, 0, d.Models.Len())
	for pair := d.Models.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Operations flattens every API's operations in document order.
func (d *Declaration) Operations() []Operation {
	var ops []Operation
	for _, api := range d.APIs {
		ops = append(ops, api.Operations...)
	}
	return ops
}
