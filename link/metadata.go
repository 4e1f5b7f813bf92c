package link

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// SourceLink is the result of looking up which link is responsible for a
// name visible in the schema, together with the import (if any) that
// brought it in under that name.
type SourceLink struct {
	Link   *Link
	Import *Import
}

// LinksMetadata is the fully resolved set of `@link` applications on one
// schema, plus the indices needed to answer "who owns this name" in O(1).
type LinksMetadata struct {
	Links                    []*Link
	ByIdentity                map[Identity]*Link
	ByNameInSchema            map[string]*Link
	TypesByImportedName       map[string]SourceLink
	DirectivesByImportedName  map[string]SourceLink
}

// AllLinks returns every link in schema order.
func (m *LinksMetadata) AllLinks() []*Link {
	return m.Links
}

// ForIdentity returns the link that imports the given spec identity, or nil.
func (m *LinksMetadata) ForIdentity(id Identity) *Link {
	return m.ByIdentity[id]
}

// SourceLinkOfType resolves which link (and, if applicable, which import)
// brought a type name into the schema.
func (m *LinksMetadata) SourceLinkOfType(name string) *SourceLink {
	if sl, ok := m.TypesByImportedName[name]; ok {
		return &sl
	}
	spec, tail, ok := splitSpecTail(name)
	if !ok {
		return nil
	}
	if l, ok := m.ByNameInSchema[spec]; ok {
		_ = tail
		return &SourceLink{Link: l}
	}
	return nil
}

// SourceLinkOfDirective resolves which link (and, if applicable, which
// import) brought a directive name into the schema.
func (m *LinksMetadata) SourceLinkOfDirective(name string) *SourceLink {
	if sl, ok := m.DirectivesByImportedName[name]; ok {
		return &sl
	}
	if l, ok := m.ByNameInSchema[name]; ok {
		return &SourceLink{Link: l}
	}
	spec, _, ok := splitSpecTail(name)
	if !ok {
		return nil
	}
	if l, ok := m.ByNameInSchema[spec]; ok {
		return &SourceLink{Link: l}
	}
	return nil
}

// splitSpecTail parses a "spec__tail" formatted name, the fallback encoding
// used for elements that were not explicitly imported.
func splitSpecTail(name string) (spec, tail string, ok bool) {
	parts := strings.SplitN(name, "__", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// BuildMetadata computes LinksMetadata for a schema, given its directive
// definitions and the set of directive applications on its schema
// definition(s). It returns (nil, nil) if the schema does not bootstrap
// `@link` at all.
func BuildMetadata(directiveDefs map[string]*ast.DirectiveDefinition, schemaDirectives ast.DirectiveList) (*LinksMetadata, error) {
	var bootstrapNames []string
	for _, d := range schemaDirectives {
		if isBootstrapDirective(directiveDefs, d) {
			bootstrapNames = append(bootstrapNames, d.Name)
		}
	}
	if len(bootstrapNames) == 0 {
		return nil, nil
	}
	first := bootstrapNames[0]
	for _, n := range bootstrapNames[1:] {
		if n != first {
			// Different bootstrap names used concurrently: treat as a
			// duplicate inclusion of the link spec itself.
			return nil, &Bootstrap{Reason: fmt.Sprintf(
				"the @link specification itself (%q) is applied multiple times", LinkIdentity(),
			)}
		}
	}
	linkNameInSchema := first

	var (
		links                    []*Link
		byIdentity               = make(map[Identity]*Link)
		byNameInSchema           = make(map[string]*Link)
		typesByImportedName      = make(map[string]SourceLink)
		directivesByImportedName = make(map[string]SourceLink)
	)

	var applications ast.DirectiveList
	for _, d := range schemaDirectives {
		if d.Name == linkNameInSchema {
			applications = append(applications, d)
		}
	}
	if len(applications) > 1 {
		seenLink := false
		for _, d := range applications {
			if urlArg := d.Arguments.ForName("url"); urlArg != nil && urlArg.Value != nil {
				if u, err := ParseUrl(urlArg.Value.Raw); err == nil && u.Identity == LinkIdentity() {
					if seenLink {
						return nil, &Bootstrap{Reason: fmt.Sprintf(
							"the @link specification itself (%q) is applied multiple times", LinkIdentity(),
						)}
					}
					seenLink = true
				}
			}
		}
	}

	for _, app := range applications {
		l, err := FromDirectiveApplication(app)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
		if _, exists := byIdentity[l.Url.Identity]; exists {
			return nil, &Bootstrap{Reason: fmt.Sprintf(
				"duplicate @link inclusion of specification %q", l.Url.Identity,
			)}
		}
		byIdentity[l.Url.Identity] = l

		nameInSchema := l.SpecNameInSchema()
		if other, exists := byNameInSchema[nameInSchema]; exists {
			return nil, &Bootstrap{Reason: fmt.Sprintf(
				"name conflict: %s and %s are imported under the same name (consider using the `@link(as:)` argument to disambiguate)",
				other.Url, l.Url,
			)}
		}
		byNameInSchema[nameInSchema] = l
	}

	for _, l := range links {
		for _, imp := range l.Imports {
			importedName := imp.ImportedName()
			if imp.IsDirective {
				if other, exists := byNameInSchema[importedName]; exists {
					return nil, &Bootstrap{Reason: fmt.Sprintf(
						"import for %q of %s conflicts with spec %s",
						imp.ImportedDisplayName(), l.Url, other.Url,
					)}
				}
				if other, exists := directivesByImportedName[importedName]; exists {
					return nil, &Bootstrap{Reason: fmt.Sprintf(
						"name conflict: both %s and %s import %s",
						l.Url, other.Link.Url, imp.ImportedDisplayName(),
					)}
				}
				directivesByImportedName[importedName] = SourceLink{Link: l, Import: imp}
			} else {
				if other, exists := typesByImportedName[importedName]; exists {
					return nil, &Bootstrap{Reason: fmt.Sprintf(
						"name conflict: both %s and %s import %s",
						l.Url, other.Link.Url, imp.ImportedDisplayName(),
					)}
				}
				typesByImportedName[importedName] = SourceLink{Link: l, Import: imp}
			}
		}
	}

	return &LinksMetadata{
		Links:                    links,
		ByIdentity:               byIdentity,
		ByNameInSchema:           byNameInSchema,
		TypesByImportedName:      typesByImportedName,
		DirectivesByImportedName: directivesByImportedName,
	}, nil
}

// isBootstrapDirective checks whether a schema-level directive application
// is a valid bootstrap of the `@link` spec: its definition must be a
// repeatable, schema-only directive with `as: String` and `url: String` (or
// `String!`) arguments, and its `url` argument must itself resolve to the
// `link` identity under the name this application uses.
func isBootstrapDirective(defs map[string]*ast.DirectiveDefinition, d *ast.Directive) bool {
	def, ok := defs[d.Name]
	if !ok {
		return false
	}
	if !def.IsRepeatable || len(def.Locations) != 1 || def.Locations[0] != ast.LocationSchema {
		return false
	}
	if !hasStringArg(def, "as", false) || !hasStringArg(def, "url", true) {
		return false
	}
	urlArg := d.Arguments.ForName("url")
	if urlArg == nil || urlArg.Value == nil {
		return false
	}
	u, err := ParseUrl(urlArg.Value.Raw)
	if err != nil || u.Identity != LinkIdentity() {
		return false
	}
	expectedName := DefaultLinkName
	if asArg := d.Arguments.ForName("as"); asArg != nil && asArg.Value != nil && asArg.Value.Raw != "" {
		expectedName = asArg.Value.Raw
	}
	return d.Name == expectedName
}

// hasStringArg reports whether def has an argument named `name` typed
// `String`; if allowNonNull, `String!` is accepted too.
func hasStringArg(def *ast.DirectiveDefinition, name string, allowNonNull bool) bool {
	for _, arg := range def.Arguments {
		if arg.Name != name {
			continue
		}
		t := arg.Type
		if t.NamedType == "String" && t.Elem == nil {
			if !t.NonNull || allowNonNull {
				return true
			}
		}
	}
	return false
}
