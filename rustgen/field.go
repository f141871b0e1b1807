package rustgen

// DefaultFieldType is emitted for a field whose type was never set.
const DefaultFieldType = "i32"

// Field is one `name: type,` entry of a struct.
type Field struct {
	decl
	typ     string
	typeSet bool
}

// NewField creates a field that belongs to no struct.
func NewField(name string) *Field {
	return &Field{decl: decl{name: name}}
}

// Type sets the declared type text.
func (f *Field) Type(value string) *Field {
	f.typ = value
	f.typeSet = true
	return f
}

// TypeText returns the type that will be rendered.
func (f *Field) TypeText() string {
	if !f.typeSet {
		return DefaultFieldType
	}
	return f.typ
}

// HasType reports whether Type was called.
func (f *Field) HasType() bool { return f.typeSet }

// Vis sets the visibility marker.
func (f *Field) Vis(marker string) *Field { f.vis = marker; return f }

// Doc appends one documentation line.
func (f *Field) Doc(line string) *Field { f.docs = append(f.docs, line); return f }

// Docs replaces every documentation line.
func (f *Field) Docs(lines []string) *Field { f.setDocs(lines); return f }

// Attr appends one attribute line.
func (f *Field) Attr(line string) *Field { f.attrs = append(f.attrs, line); return f }

// Done returns the owning struct, or nil for a detached field.
func (f *Field) Done() *Struct {
	st, _ := f.parent.(*Struct)
	return st
}

func (f *Field) String() string { return DefaultRenderer.Render(f) }
