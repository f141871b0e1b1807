package typegen

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Rust keywords that need raw identifier prefix (r#)
var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "yield": true,
}

// toRustIdent adds the r# prefix to Rust keywords
func toRustIdent(s string) string {
	if rustKeywords[s] {
		return "r#" + s
	}
	return s
}

// moduleName turns an API path such as "/Client Grants" into "client_grants"
func moduleName(path string) string {
	name := strings.ReplaceAll(path, "/", "")
	name = strings.ReplaceAll(name, " ", "_")
	return toRustIdent(strcase.ToSnake(name))
}

// typeName turns a model name or $ref into UpperCamelCase
func typeName(name string) string {
	return strcase.ToCamel(name)
}

// fieldName returns the snake_cased name after keyword replacement, before
// any r# escaping. Callers compare it to the original to decide on a rename.
func (g *Generator) fieldName(name string) string {
	cased := strcase.ToSnake(name)
	if replacement, ok := g.opts.Keywords[cased]; ok {
		return replacement
	}
	return cased
}
