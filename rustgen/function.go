package rustgen

// Function is a `fn name(params) -> ret { ... }` declaration. Parameters and
// body statements are raw text emitted as given.
type Function struct {
	decl
	params []string
	lines  []string
	ret    string
}

// NewFunction creates a function that belongs to no container.
func NewFunction(name string) *Function {
	return &Function{decl: decl{name: name}}
}

// Param appends one parameter, e.g. "id: &str".
func (f *Function) Param(text string) *Function { f.params = append(f.params, text); return f }

// Line appends one body statement.
func (f *Function) Line(text string) *Function { f.lines = append(f.lines, text); return f }

// Returns sets the return type. An empty value omits `-> type`.
func (f *Function) Returns(value string) *Function { f.ret = value; return f }

// Params returns the parameters in order.
func (f *Function) Params() []string { return append([]string(nil), f.params...) }

// Lines returns the body statements in order.
func (f *Function) Lines() []string { return append([]string(nil), f.lines...) }

// ReturnType returns the return type, empty when unset.
func (f *Function) ReturnType() string { return f.ret }

// Vis sets the visibility marker.
func (f *Function) Vis(marker string) *Function { f.vis = marker; return f }

// Doc appends one documentation line.
func (f *Function) Doc(line string) *Function { f.docs = append(f.docs, line); return f }

// Docs replaces every documentation line.
func (f *Function) Docs(lines []string) *Function { f.setDocs(lines); return f }

// Attr appends one attribute line.
func (f *Function) Attr(line string) *Function { f.attrs = append(f.attrs, line); return f }

// Done returns the container the function was added to, or nil.
func (f *Function) Done() Container { return containerOf(f.parent) }

func (f *Function) String() string { return DefaultRenderer.Render(f) }
