// Package rustgen builds Rust source text from a tree of declarations.
//
// A tree is rooted at a Scope. Containers (Scope, Module) create Functions,
// Structs and nested Modules; Structs create Fields. Setters return the same
// handle, Add* methods return the new child, and Done returns the parent:
//
//	scope := rustgen.NewScope()
//	scope.AddModule("users").Vis("pub").
//		AddStruct("User").Vis("pub").Attr("#[derive(Debug)]").
//		AddField("user_id").Vis("pub").Type("String").Done().
//		Done().
//		Done()
//	fmt.Print(scope)
//
// Rendering is a read-only traversal; a tree may be rendered at any point
// during construction and renders identically every time.
package rustgen

import (
	"github.com/mcountryman/auth0-management-codegen/errors"
)

// Node is one declaration in the tree. The set of implementations is closed:
// *Scope, *Module, *Struct, *Field and *Function.
type Node interface {
	Name() string
	Visibility() string
	DocLines() []string
	AttrLines() []string
	// Parent returns the containing node, or nil at the root.
	Parent() Node
	// Use records an import on the nearest import-capable node.
	Use(path, symbol string) error
	String() string

	base() *decl
}

// Container is a node that owns functions, structs and modules and holds an
// import table. Implemented by *Scope and *Module.
type Container interface {
	Node
	AddFunction(name string) *Function
	AddStruct(name string) *Struct
	AddModule(name string) *Module
	Imports() *ImportTable
	Functions() []*Function
	Structs() []*Struct
	Modules() []*Module
	// Done returns the enclosing container, or nil at the root.
	Done() Container
}

// UnresolvableImportError is returned by Use when no node up the tree,
// the root included, can hold imports.
type UnresolvableImportError struct {
	Path   string
	Symbol string
}

func (e *UnresolvableImportError) Error() string {
	return "couldn't import '" + e.Path + "::" + e.Symbol + "'"
}

// Is matches errors.ErrUnresolvableImport.
func (e *UnresolvableImportError) Is(target error) bool {
	return target == errors.ErrUnresolvableImport
}

// decl is the state shared by every kind of node.
type decl struct {
	name   string
	vis    string
	docs   []string
	attrs  []string
	parent Node
}

func (d *decl) base() *decl { return d }

// Name returns the declared identifier.
func (d *decl) Name() string { return d.name }

// Visibility returns the visibility marker exactly as set.
func (d *decl) Visibility() string { return d.vis }

// DocLines returns a copy of the documentation lines.
func (d *decl) DocLines() []string { return append([]string(nil), d.docs...) }

// AttrLines returns a copy of the attribute lines.
func (d *decl) AttrLines() []string { return append([]string(nil), d.attrs...) }

// Parent returns the containing node, or nil at the root.
func (d *decl) Parent() Node { return d.parent }

// Use delegates to the parent. Containers override it with their own table.
func (d *decl) Use(path, symbol string) error {
	if d.parent == nil {
		return errors.WithStack(&UnresolvableImportError{Path: path, Symbol: symbol})
	}
	return d.parent.Use(path, symbol)
}

func (d *decl) setDocs(lines []string) {
	d.docs = append([]string(nil), lines...)
}
