// Package supergraph implements federation subgraph extraction: recovering
// the individual subgraph schemas that were composed into a supergraph SDL,
// using the `@join__*` provenance directives composition left behind.
package supergraph

import (
	"sort"

	"go.appointy.com/fedcore/ferrors"
	"go.appointy.com/fedcore/link"
	"go.appointy.com/fedcore/schema"
	"go.appointy.com/fedcore/specs"
)

// Subgraph is one subgraph recovered from a supergraph: its external name,
// its serving URL, and its own validated schema.
type Subgraph struct {
	Name   string
	URL    string
	Schema *schema.Schema
}

// SDL renders the subgraph's schema back to GraphQL SDL text, the form a
// real subgraph server would serve from `_service { sdl }`.
func (s *Subgraph) SDL() string {
	return s.Schema.SDL()
}

// Extract recovers every subgraph composed into sg. sg must be a fed2
// supergraph: it must bootstrap `@link`, link a supported join spec version,
// and carry the `@join__*` directives that version defines.
func Extract(sg *schema.Schema) ([]*Subgraph, error) {
	v, err := Validate(sg)
	if err != nil {
		return nil, err
	}

	gs, err := collectGraphs(v)
	if err != nil {
		return nil, err
	}

	filtered := filterTypeNames(v)

	infos, err := addAllEmptySubgraphTypes(v, gs, filtered)
	if err != nil {
		return nil, err
	}

	if err := extractObjectTypeContent(v, gs, infos.objects); err != nil {
		return nil, err
	}
	if err := extractInterfaceTypeContent(v, gs, infos.interfaces); err != nil {
		return nil, err
	}
	if err := extractUnionTypeContent(v, gs, infos.unions); err != nil {
		return nil, err
	}
	if err := extractEnumTypeContent(v, gs, infos.enums); err != nil {
		return nil, err
	}
	if err := extractInputObjectTypeContent(v, gs, infos.inputObjects); err != nil {
		return nil, err
	}

	copyExecutableDirectiveDefinitions(v, gs)

	subgraphs := make([]*Subgraph, 0, len(gs.order))
	for _, enumValue := range gs.order {
		g := gs.byEnumValue[enumValue]

		pruneEmptyTypes(g.doc)
		addFederationOperations(g)

		built, err := schema.FromDocument(g.doc.doc)
		if err != nil {
			return nil, ferrors.NewInvalidSubgraph(g.doc.name, "extracted subgraph does not validate", err)
		}

		subgraphs = append(subgraphs, &Subgraph{Name: g.doc.name, URL: g.doc.url, Schema: built})
	}

	return subgraphs, nil
}

// filterTypeNames returns every supergraph type name not owned by the link
// or join spec itself: the types composition actually distributed across
// subgraphs, as opposed to the bookkeeping types the specs introduced to
// carry provenance.
func filterTypeNames(v *Validated) []string {
	linkIdentity := link.LinkIdentity()
	joinIdentity := specs.JoinIdentity()

	var out []string
	for name := range v.Schema.AST.Types {
		if isBuiltinType(name) {
			continue
		}
		if owner := v.Schema.Meta.SourceLinkOfType(name); owner != nil {
			if owner.Link.Url.Identity == linkIdentity || owner.Link.Url.Identity == joinIdentity {
				continue
			}
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func isBuiltinType(name string) bool {
	switch name {
	case "String", "Int", "Float", "Boolean", "ID",
		"__Schema", "__Type", "__Field", "__InputValue", "__EnumValue", "__Directive",
		"__TypeKind", "__DirectiveLocation":
		return true
	default:
		return len(name) >= 2 && name[0] == '_' && name[1] == '_'
	}
}
