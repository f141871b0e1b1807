// Package typegen builds a rustgen tree of Rust modules, structs and
// functions from fetched Swagger API declarations.
package typegen

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
	"go.uber.org/zap"

	"github.com/mcountryman/auth0-management-codegen/config"
	"github.com/mcountryman/auth0-management-codegen/errors"
	"github.com/mcountryman/auth0-management-codegen/fetch"
	"github.com/mcountryman/auth0-management-codegen/logger"
	"github.com/mcountryman/auth0-management-codegen/rustgen"
	"github.com/mcountryman/auth0-management-codegen/swagger"
)

// Options controls naming and output shape
type Options struct {
	Keywords map[string]string // snake_cased name -> replacement
	Types    map[string]string // swagger type -> Rust type
	Derives  []string
}

// OptionsFromConfig reads the naming and models sections
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Keywords: cfg.Naming.Keywords,
		Types:    cfg.Naming.Types,
		Derives:  cfg.Models.Derives,
	}
}

// Stats counts what Generate emitted and skipped
type Stats struct {
	Modules   int
	Structs   int
	Fields    int
	Functions int
	Skipped   int // properties whose type could not be resolved
}

// Generator builds trees from API declarations
type Generator struct {
	opts Options
	log  *zap.SugaredLogger
}

// New creates a generator
func New(opts Options) *Generator {
	return &Generator{opts: opts, log: logger.ComponentLogger("typegen")}
}

// Generate builds one public module per manifest, ordered by path.
func (g *Generator) Generate(ctx context.Context, manifests []fetch.Manifest) (*rustgen.Scope, Stats, error) {
	var stats Stats
	scope := rustgen.NewScope()

	sorted := slices.Clone(manifests)
	slices.SortFunc(sorted, func(a, b fetch.Manifest) int { return strings.Compare(a.Path, b.Path) })

	for _, m := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		if m.Declaration == nil {
			continue
		}
		if err := g.buildModule(scope, m, &stats); err != nil {
			return nil, stats, errors.Wrapf(err, "failed to build module for %s", m.Path)
		}
	}

	for _, issue := range rustgen.Check(scope) {
		g.log.Warnw("generated tree issue", logger.FieldPath, issue.Path, "issue", issue.Message)
	}

	g.log.Infow("generated tree",
		"modules", stats.Modules,
		"structs", stats.Structs,
		"fields", stats.Fields,
		"functions", stats.Functions,
		"skipped", stats.Skipped,
	)
	return scope, stats, nil
}

func (g *Generator) buildModule(scope *rustgen.Scope, m fetch.Manifest, stats *Stats) error {
	name := moduleName(m.Path)
	mod := scope.AddModule(name).Vis("pub")
	stats.Modules++

	if err := mod.Use("serde", "Serialize"); err != nil {
		return err
	}
	if err := mod.Use("serde", "Deserialize"); err != nil {
		return err
	}

	log := logger.ChildLogger(g.log, logger.FieldModule, name)
	decl := m.Declaration
	for _, op := range decl.Operations() {
		g.buildOperation(mod, op)
		stats.Functions++
	}

	for _, modelName := range decl.ModelNames() {
		model, _ := decl.Models.Get(modelName)
		g.buildModel(log, mod, modelName, model, stats)
		stats.Structs++
	}
	log.Debugw("built module", logger.FieldPath, m.Path, logger.FieldCount, len(mod.Structs()))
	return nil
}

func (g *Generator) buildModel(log *zap.SugaredLogger, mod *rustgen.Module, name string, model swagger.Model, stats *Stats) {
	structName := typeName(name)
	st := mod.AddStruct(structName).Vis("pub")
	if len(g.opts.Derives) > 0 {
		st.Attr("#[derive(" + strings.Join(g.opts.Derives, ", ") + ")]")
	}

	if model.Properties == nil {
		return
	}
	for pair := model.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if g.buildField(log, st, structName, pair.Key, pair.Value) {
			stats.Fields++
		} else {
			stats.Skipped++
		}
	}
}

// buildField reports false when the property type can't be resolved and
// the field is left out.
func (g *Generator) buildField(log *zap.SugaredLogger, st *rustgen.Struct, structName, original string, prop swagger.Property) bool {
	kind, ok := g.propertyType(prop)
	if !ok {
		log.Warnw("skipped property with unresolvable type",
			logger.FieldModel, structName,
			logger.FieldProperty, original,
			"type", prop.Type,
		)
		return false
	}

	cased := g.fieldName(original)
	field := st.AddField(toRustIdent(cased)).Vis("pub").Type(kind)

	if prop.Description != "" {
		field.Docs(strings.Split(prop.Description, "\n"))
	}
	if cased != original || cased == "type" {
		field.Attr(fmt.Sprintf("#[serde(rename = %q)]", original))
	}
	return true
}

func (g *Generator) buildOperation(mod *rustgen.Module, op swagger.Operation) {
	fn := mod.AddFunction(toRustIdent(strcase.ToSnake(op.Nickname))).Vis("pub")

	docs := []string{op.Summary}
	if len(op.Parameters) > 0 {
		docs = append(docs, "", "# Arguments")
	}
	for _, p := range op.Parameters {
		if p.Description != "" {
			docs = append(docs, fmt.Sprintf("* `%s` - %s", p.Name, p.Description))
		} else {
			docs = append(docs, fmt.Sprintf("* `%s`", p.Name))
		}
		fn.Param(toRustIdent(g.fieldName(p.Name)) + ": " + g.declaredType(p.Type, p.Items))
	}
	fn.Docs(docs)

	if op.Type != "" && op.Type != "void" {
		fn.Returns(g.declaredType(op.Type, op.Items))
	}
	fn.Line("todo!()")
}

// propertyType resolves a model property. Mapped primitive types win, then
// arrays, then $ref. Anything else is unresolvable.
func (g *Generator) propertyType(prop swagger.Property) (string, bool) {
	if prop.Type == "array" {
		elem, ok := g.itemsType(prop.Items)
		if !ok && prop.Ref != "" {
			elem, ok = typeName(prop.Ref), true
		}
		if !ok {
			return "", false
		}
		return "Vec<" + elem + ">", true
	}
	if mapped, ok := g.opts.Types[prop.Type]; ok {
		return mapped, true
	}
	if prop.Ref != "" {
		return typeName(prop.Ref), true
	}
	return "", false
}

func (g *Generator) itemsType(items *swagger.Items) (string, bool) {
	if items == nil {
		return "", false
	}
	if items.Ref != "" {
		return typeName(items.Ref), true
	}
	if mapped, ok := g.opts.Types[items.Type]; ok {
		return mapped, true
	}
	return "", false
}

// declaredType resolves parameter and operation types. Swagger 1.x lets
// these name a model directly, so unmapped names are treated as models.
func (g *Generator) declaredType(kind string, items *swagger.Items) string {
	if kind == "array" {
		if elem, ok := g.itemsType(items); ok {
			return "Vec<" + elem + ">"
		}
		return "Vec<" + rustgen.DefaultFieldType + ">"
	}
	if mapped, ok := g.opts.Types[kind]; ok {
		return mapped
	}
	if kind == "" {
		return rustgen.DefaultFieldType
	}
	return typeName(kind)
}
