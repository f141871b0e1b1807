package rustgen

// container holds the children and imports shared by Scope and Module.
type container struct {
	self    Container
	imports *ImportTable
	fns     []*Function
	structs []*Struct
	mods    []*Module
}

func newContainer(self Container) container {
	return container{self: self, imports: newImportTable()}
}

// AddFunction appends a new function and returns it.
func (c *container) AddFunction(name string) *Function {
	fn := &Function{decl: decl{name: name, parent: c.self}}
	c.fns = append(c.fns, fn)
	return fn
}

// AddStruct appends a new struct and returns it.
func (c *container) AddStruct(name string) *Struct {
	st := &Struct{decl: decl{name: name, parent: c.self}}
	c.structs = append(c.structs, st)
	return st
}

// AddModule appends a new nested module and returns it.
func (c *container) AddModule(name string) *Module {
	mod := &Module{decl: decl{name: name, parent: c.self}}
	mod.container = newContainer(mod)
	c.mods = append(c.mods, mod)
	return mod
}

// Imports returns the container's own import table.
func (c *container) Imports() *ImportTable { return c.imports }

// Functions returns the functions in declaration order.
func (c *container) Functions() []*Function { return append([]*Function(nil), c.fns...) }

// Structs returns the structs in declaration order.
func (c *container) Structs() []*Struct { return append([]*Struct(nil), c.structs...) }

// Modules returns the nested modules in declaration order.
func (c *container) Modules() []*Module { return append([]*Module(nil), c.mods...) }

// Scope is the root of a tree: an unwrapped sequence of imports and items,
// such as the contents of one source file.
type Scope struct {
	decl
	container
}

// NewScope creates an empty root scope.
func NewScope() *Scope {
	s := &Scope{}
	s.container = newContainer(s)
	return s
}

// Vis sets the visibility marker.
func (s *Scope) Vis(marker string) *Scope { s.vis = marker; return s }

// Doc appends one documentation line.
func (s *Scope) Doc(line string) *Scope { s.docs = append(s.docs, line); return s }

// Docs replaces every documentation line.
func (s *Scope) Docs(lines []string) *Scope { s.setDocs(lines); return s }

// Attr appends one attribute line.
func (s *Scope) Attr(line string) *Scope { s.attrs = append(s.attrs, line); return s }

// Use records symbol under path in the scope's import table.
func (s *Scope) Use(path, symbol string) error {
	s.imports.Add(path, symbol)
	return nil
}

// Done returns nil: a scope has no parent.
func (s *Scope) Done() Container { return nil }

func (s *Scope) String() string { return DefaultRenderer.Render(s) }

// Module is a named scope wrapped in a `mod name { ... }` declaration.
// Imports requested inside a module stay in that module.
type Module struct {
	decl
	container
}

// Vis sets the visibility marker.
func (m *Module) Vis(marker string) *Module { m.vis = marker; return m }

// Doc appends one documentation line.
func (m *Module) Doc(line string) *Module { m.docs = append(m.docs, line); return m }

// Docs replaces every documentation line.
func (m *Module) Docs(lines []string) *Module { m.setDocs(lines); return m }

// Attr appends one attribute line.
func (m *Module) Attr(line string) *Module { m.attrs = append(m.attrs, line); return m }

// Use records symbol under path in the module's import table.
func (m *Module) Use(path, symbol string) error {
	m.imports.Add(path, symbol)
	return nil
}

// Done returns the enclosing container.
func (m *Module) Done() Container { return containerOf(m.parent) }

func (m *Module) String() string { return DefaultRenderer.Render(m) }

// containerOf converts a parent link to a Container without producing a
// non-nil interface around a nil pointer.
func containerOf(n Node) Container {
	if c, ok := n.(Container); ok {
		return c
	}
	return nil
}
