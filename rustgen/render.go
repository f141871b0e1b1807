package rustgen

import (
	"io"
	"strings"
)

// Renderer turns a tree into text. The zero value indents with nothing;
// use DefaultRenderer or set Indent.
type Renderer struct {
	// Indent is repeated once per nesting level.
	Indent string
}

// DefaultRenderer indents with two spaces.
var DefaultRenderer = Renderer{Indent: "  "}

// Render renders n and its subtree starting at depth 0.
func (r Renderer) Render(n Node) string {
	return r.RenderAt(n, 0)
}

// RenderAt renders n and its subtree with its own declaration at depth.
func (r Renderer) RenderAt(n Node, depth int) string {
	if depth < 0 {
		depth = 0
	}
	w := &lineWriter{indent: r.Indent}
	r.render(w, n, depth)
	return w.sb.String()
}

// WriteTo renders n into w.
func (r Renderer) WriteTo(w io.Writer, n Node) (int64, error) {
	k, err := io.WriteString(w, r.Render(n))
	return int64(k), err
}

func (r Renderer) render(w *lineWriter, n Node, depth int) {
	d := n.base()
	for _, doc := range d.docs {
		w.doc(depth, doc)
	}
	for _, attr := range d.attrs {
		w.line(depth, attr)
	}

	switch n := n.(type) {
	case *Scope:
		r.body(w, &n.container, depth)

	case *Module:
		w.line(depth, declLine(n.vis, "mod", n.name, "{"))
		r.body(w, &n.container, depth+1)
		w.line(depth, "}")
		w.blank()

	case *Struct:
		w.line(depth, declLine(n.vis, "struct", n.name, "{"))
		for _, f := range n.fields {
			r.render(w, f, depth+1)
		}
		w.line(depth, "}")
		w.blank()

	case *Field:
		w.line(depth, declLine(n.vis, n.name+":", n.TypeText())+",")

	case *Function:
		sig := n.name + "(" + strings.Join(n.params, ", ") + ")"
		if n.ret != "" {
			sig += " -> " + n.ret
		}
		w.line(depth, declLine(n.vis, "fn", sig, "{"))
		for _, l := range n.lines {
			w.line(depth+1, l)
		}
		w.line(depth, "}")
		w.blank()
	}
}

// body emits imports, then functions, structs and modules in declaration order.
func (r Renderer) body(w *lineWriter, c *container, depth int) {
	if c.imports.Len() > 0 {
		for _, path := range c.imports.paths {
			w.line(depth, "use "+path+"::{"+strings.Join(c.imports.symbols[path], ", ")+"};")
		}
		w.blank()
	}
	for _, fn := range c.fns {
		r.render(w, fn, depth)
	}
	for _, st := range c.structs {
		r.render(w, st, depth)
	}
	for _, mod := range c.mods {
		r.render(w, mod, depth)
	}
}

// declLine joins the non-empty tokens with single spaces.
func declLine(tokens ...string) string {
	parts := tokens[:0:0]
	for _, t := range tokens {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

type lineWriter struct {
	indent string
	sb     strings.Builder
}

// line writes text at depth, one output line per physical line.
func (w *lineWriter) line(depth int, text string) {
	for _, l := range strings.Split(text, "\n") {
		if l == "" {
			w.blank()
			continue
		}
		w.sb.WriteString(strings.Repeat(w.indent, depth))
		w.sb.WriteString(l)
		w.sb.WriteByte('\n')
	}
}

func (w *lineWriter) doc(depth int, text string) {
	for _, l := range strings.Split(text, "\n") {
		if l == "" {
			w.line(depth, "///")
			continue
		}
		w.line(depth, "/// "+l)
	}
}

func (w *lineWriter) blank() {
	w.sb.WriteByte('\n')
}
