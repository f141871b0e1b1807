package rustgen

// ImportTable maps a module path to the symbols imported from it. Paths keep
// first-insertion order; symbols keep insertion order within a path and a
// repeated (path, symbol) pair is recorded once.
type ImportTable struct {
	paths   []string
	symbols map[string][]string
}

func newImportTable() *ImportTable {
	return &ImportTable{symbols: make(map[string][]string)}
}

// Add records symbol under path. It reports false when the pair was
// already present.
func (t *ImportTable) Add(path, symbol string) bool {
	existing, ok := t.symbols[path]
	if !ok {
		t.paths = append(t.paths, path)
	}
	for _, s := range existing {
		if s == symbol {
			return false
		}
	}
	t.symbols[path] = append(existing, symbol)
	return true
}

// Paths returns the recorded paths in first-insertion order.
func (t *ImportTable) Paths() []string {
	return append([]string(nil), t.paths...)
}

// Symbols returns the symbols recorded under path.
func (t *ImportTable) Symbols(path string) []string {
	return append([]string(nil), t.symbols[path]...)
}

// Len returns the number of distinct paths.
func (t *ImportTable) Len() int {
	return len(t.paths)
}
