package schema

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"

	"go.appointy.com/fedcore/ferrors"
	"go.appointy.com/fedcore/link"
)

// Schema is a validated GraphQL schema paired with the two structures the
// rest of fedcore is built on: its LinksMetadata (nil if the schema does not
// bootstrap `@link`) and its Referencers inverse index. A Schema and its
// index together form one unit of mutation (spec.md §5): every Remove*
// operation keeps both consistent.
type Schema struct {
	AST   *ast.Schema
	Index *Referencers
	Meta  *link.LinksMetadata
}

// SchemaDefinitionDirectives merges the directive applications of every
// `schema { ... }` and `extend schema @...` block in a parsed document.
// gqlparser's validated *ast.Schema does not expose schema-definition-level
// directive applications (only directive *definitions*), so callers that
// need them, such as the `@link` bootstrap resolver, read them off the
// pre-validation document instead.
func SchemaDefinitionDirectives(doc *ast.SchemaDocument) ast.DirectiveList {
	var dirs ast.DirectiveList
	for _, sd := range doc.Schema {
		dirs = append(dirs, sd.Directives...)
	}
	for _, sd := range doc.SchemaExtension {
		dirs = append(dirs, sd.Directives...)
	}
	return dirs
}

// Parse parses and validates a single SDL source, then computes its
// LinksMetadata and Referencers index.
func Parse(src *ast.Source) (*Schema, error) {
	doc, err := parser.ParseSchema(src)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

// ParseMany parses several SDL sources, merges their documents, and
// validates the result as one schema.
func ParseMany(sources ...*ast.Source) (*Schema, error) {
	merged := &ast.SchemaDocument{}
	for _, src := range sources {
		doc, err := parser.ParseSchema(src)
		if err != nil {
			return nil, err
		}
		merged.Schema = append(merged.Schema, doc.Schema...)
		merged.SchemaExtension = append(merged.SchemaExtension, doc.SchemaExtension...)
		merged.Directives = append(merged.Directives, doc.Directives...)
		merged.Definitions = append(merged.Definitions, doc.Definitions...)
		merged.Extensions = append(merged.Extensions, doc.Extensions...)
	}
	return fromDocument(merged)
}

// FromDocument validates a hand-assembled *ast.SchemaDocument (e.g. one
// built incrementally by the supergraph extractor) and computes its
// LinksMetadata and Referencers index, exactly as Parse/ParseMany do.
func FromDocument(doc *ast.SchemaDocument) (*Schema, error) {
	return fromDocument(doc)
}

func fromDocument(doc *ast.SchemaDocument) (*Schema, error) {
	// ValidateSchemaDocument does not add the built-in scalars, introspection
	// types and directives itself; they come from gqlparser's prelude.
	prelude, err := parser.ParseSchema(validator.Prelude)
	if err != nil {
		return nil, err
	}
	withPrelude := &ast.SchemaDocument{
		Schema:          doc.Schema,
		SchemaExtension: doc.SchemaExtension,
		Directives:      append(prelude.Directives, doc.Directives...),
		Definitions:     append(prelude.Definitions, doc.Definitions...),
		Extensions:      doc.Extensions,
	}
	validated, err := validator.ValidateSchemaDocument(withPrelude)
	if err != nil {
		return nil, err
	}

	directiveDefs := make(map[string]*ast.DirectiveDefinition, len(validated.Directives))
	for name, dd := range validated.Directives {
		directiveDefs[name] = dd
	}
	meta, err := link.BuildMetadata(directiveDefs, SchemaDefinitionDirectives(doc))
	if err != nil {
		// link.BuildMetadata's error is always a *link.Bootstrap: schema.Parse
		// and schema.FromDocument are fedcore's externally-facing entry points
		// (spec.md §6), so callers doing errors.As(err, &ferrors.Bootstrap{})
		// per spec.md §7's two-surface contract need to see that kind here,
		// not the unwrapped *link.Bootstrap.
		return nil, ferrors.NewBootstrap("invalid @link usage", err)
	}

	return &Schema{
		AST:   validated,
		Index: BuildReferencers(validated),
		Meta:  meta,
	}, nil
}
