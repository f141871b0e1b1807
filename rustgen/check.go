package rustgen

import "fmt"

// Issue is a problem Check found. Rendering ignores issues; the text for
// the offending node is still produced verbatim.
type Issue struct {
	Node    Node
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Check walks the subtree under n and reports fields without an explicit
// type, unnamed declarations and sibling declarations sharing a name.
func Check(n Node) []Issue {
	var issues []Issue
	check(n, "", &issues)
	return issues
}

func check(n Node, prefix string, issues *[]Issue) {
	path := prefix
	if _, root := n.(*Scope); !root {
		path = joinPath(prefix, n.Name())
		if n.Name() == "" {
			*issues = append(*issues, Issue{Node: n, Path: path, Message: "empty name"})
		}
	}

	switch n := n.(type) {
	case *Scope:
		checkContainer(&n.container, path, issues)
	case *Module:
		checkContainer(&n.container, path, issues)
	case *Struct:
		duplicates(fieldNodes(n.fields), path, "field", issues)
		for _, f := range n.fields {
			check(f, path, issues)
		}
	case *Field:
		if !n.typeSet {
			*issues = append(*issues, Issue{
				Node:    n,
				Path:    path,
				Message: fmt.Sprintf("type not set, defaulting to %s", DefaultFieldType),
			})
		}
	}
}

func checkContainer(c *container, path string, issues *[]Issue) {
	var fns, items []Node
	for _, fn := range c.fns {
		fns = append(fns, fn)
	}
	// structs and modules share the type namespace
	for _, st := range c.structs {
		items = append(items, st)
	}
	for _, mod := range c.mods {
		items = append(items, mod)
	}
	duplicates(fns, path, "function", issues)
	duplicates(items, path, "item", issues)

	for _, fn := range c.fns {
		check(fn, path, issues)
	}
	for _, st := range c.structs {
		check(st, path, issues)
	}
	for _, mod := range c.mods {
		check(mod, path, issues)
	}
}

func duplicates(nodes []Node, path, kind string, issues *[]Issue) {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.Name() == "" {
			continue
		}
		if seen[n.Name()] {
			*issues = append(*issues, Issue{
				Node:    n,
				Path:    joinPath(path, n.Name()),
				Message: fmt.Sprintf("duplicate %s name %q", kind, n.Name()),
			})
			continue
		}
		seen[n.Name()] = true
	}
}

func fieldNodes(fields []*Field) []Node {
	nodes := make([]Node, len(fields))
	for i, f := range fields {
		nodes[i] = f
	}
	return nodes
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "::" + name
}
