package rustgen

// Struct is a `struct name { ... }` declaration holding fields.
type Struct struct {
	decl
	fields []*Field
}

// NewStruct creates a struct that belongs to no container. It can be
// rendered on its own, but Use fails on it and on its fields.
func NewStruct(name string) *Struct {
	return &Struct{decl: decl{name: name}}
}

// AddField appends a new field and returns it.
func (s *Struct) AddField(name string) *Field {
	f := &Field{decl: decl{name: name, parent: s}}
	s.fields = append(s.fields, f)
	return f
}

// Fields returns the fields in declaration order.
func (s *Struct) Fields() []*Field { return append([]*Field(nil), s.fields...) }

// Vis sets the visibility marker.
func (s *Struct) Vis(marker string) *Struct { s.vis = marker; return s }

// Doc appends one documentation line.
func (s *Struct) Doc(line string) *Struct { s.docs = append(s.docs, line); return s }

// Docs replaces every documentation line.
func (s *Struct) Docs(lines []string) *Struct { s.setDocs(lines); return s }

// Attr appends one attribute line.
func (s *Struct) Attr(line string) *Struct { s.attrs = append(s.attrs, line); return s }

// Done returns the container the struct was added to, or nil.
func (s *Struct) Done() Container { return containerOf(s.parent) }

func (s *Struct) String() string { return DefaultRenderer.Render(s) }
