package link

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// Link is one `@link` application: the spec it imports, the local alias (if
// any) under which the spec itself is known, the elements it imports, and
// the declared purpose.
type Link struct {
	Url       Url
	SpecAlias *string
	Imports   []*Import
	Purpose   *Purpose
}

// SpecNameInSchema is the name under which the linked spec itself is known
// in the schema: the `as:` alias if one was given, else the spec's own name.
func (l *Link) SpecNameInSchema() string {
	if l.SpecAlias != nil {
		return *l.SpecAlias
	}
	return l.Url.Identity.Name
}

func (l *Link) importFor(name string, directive bool) *Import {
	for _, imp := range l.Imports {
		if imp.IsDirective == directive && imp.Element == name {
			return imp
		}
	}
	return nil
}

// DirectiveNameInSchema returns the name under which directive `name` of
// this link's spec is known in the schema.
func (l *Link) DirectiveNameInSchema(name string) string {
	if imp := l.importFor(name, true); imp != nil {
		return imp.ImportedName()
	}
	if name == l.Url.Identity.Name {
		return l.SpecNameInSchema()
	}
	return l.SpecNameInSchema() + "__" + name
}

// TypeNameInSchema returns the name under which type `name` of this link's
// spec is known in the schema. Unlike directives, a type never matches the
// spec's own name as a special case.
func (l *Link) TypeNameInSchema(name string) string {
	if imp := l.importFor(name, false); imp != nil {
		return imp.ImportedName()
	}
	return l.SpecNameInSchema() + "__" + name
}

// Bootstrap is returned when a schema's `@link` usage is itself malformed:
// a duplicate bootstrap application, a name collision between two links, an
// invalid import entry, or an unknown purpose. See spec.md §7.
type Bootstrap struct {
	Reason string
}

func (e *Bootstrap) Error() string {
	return e.Reason
}

// FromDirectiveApplication builds a Link from one `@link(...)` application.
func FromDirectiveApplication(app *ast.Directive) (*Link, error) {
	urlArg := app.Arguments.ForName("url")
	if urlArg == nil || urlArg.Value == nil || urlArg.Value.Raw == "" {
		return nil, &Bootstrap{Reason: "the @link directive requires a \"url\" argument"}
	}
	u, err := ParseUrl(urlArg.Value.Raw)
	if err != nil {
		return nil, &Bootstrap{Reason: fmt.Sprintf("invalid @link url %q: %v", urlArg.Value.Raw, err)}
	}

	var alias *string
	if asArg := app.Arguments.ForName("as"); asArg != nil && asArg.Value != nil {
		s := asArg.Value.Raw
		alias = &s
	}

	var purpose *Purpose
	if forArg := app.Arguments.ForName("for"); forArg != nil && forArg.Value != nil {
		p, err := ParsePurpose(forArg.Value.Raw)
		if err != nil {
			return nil, err
		}
		purpose = &p
	}

	var imports []*Import
	if importArg := app.Arguments.ForName("import"); importArg != nil && importArg.Value != nil {
		for _, child := range importArg.Value.Children {
			imp, err := importFromValue(child.Value)
			if err != nil {
				return nil, err
			}
			imports = append(imports, imp)
		}
	}

	return &Link{
		Url:       u,
		SpecAlias: alias,
		Imports:   imports,
		Purpose:   purpose,
	}, nil
}
