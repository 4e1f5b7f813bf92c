package supergraph

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"go.appointy.com/fedcore/ferrors"
	"go.appointy.com/fedcore/link"
	"go.appointy.com/fedcore/schema"
	"go.appointy.com/fedcore/specs"
)

// stockFederationVersion is the federation version the stock subgraph
// skeleton links (see skeleton.go).
var stockFederationVersion = link.Version{Major: 2, Minor: 5}

// graph is one subgraph being carved out: its supergraph-facing enum value
// name plus the growing document it accumulates content into.
type graph struct {
	enumValue string
	doc       *subgraphDoc
	federation *specs.FederationSpecDefinition
}

// graphSet is every graph known to one extraction, in join__Graph enum
// declaration order, indexed by enum value name.
type graphSet struct {
	order []string
	byEnumValue map[string]*graph
}

func newGraphSet() *graphSet {
	return &graphSet{byEnumValue: map[string]*graph{}}
}

func (gs *graphSet) add(g *graph) {
	gs.order = append(gs.order, g.enumValue)
	gs.byEnumValue[g.enumValue] = g
}

func (gs *graphSet) get(enumValue string) (*graph, error) {
	g, ok := gs.byEnumValue[enumValue]
	if !ok {
		return nil, fmt.Errorf("invalid graph enum value %q: does not match a join__Graph value", enumValue)
	}
	return g, nil
}

// collectGraphs walks the join__Graph enum, allocating one empty, stock
// subgraph per enum value. Each value's `@join__graph(name, url)` supplies
// the subgraph's external name (the subgraph-set key) and URL.
func collectGraphs(v *Validated) (*graphSet, error) {
	joinLink := v.JoinLink
	graphEnumName := joinLink.TypeNameInSchema(specs.JoinGraphEnumName)
	graphDirectiveName := joinLink.DirectiveNameInSchema(specs.JoinGraphDirectiveName)

	enumDef, ok := v.Schema.AST.Types[graphEnumName]
	if !ok || enumDef.Kind != ast.Enum {
		return nil, ferrors.NewInvalidSupergraph(fmt.Sprintf("missing %s enum", graphEnumName), nil)
	}

	gs := newGraphSet()
	seenNames := map[string]string{}
	for _, value := range enumDef.EnumValues {
		app := findDirective(value.Directives, graphDirectiveName)
		if app == nil {
			return nil, ferrors.NewInvalidSupergraph(fmt.Sprintf(
				"value %q of %s has no @%s directive", value.Name, graphEnumName, graphDirectiveName,
			), nil)
		}
		name := schema.DirectiveRequiredStringArgument(app, specs.JoinGraphNameArgName)
		url := schema.DirectiveRequiredStringArgument(app, specs.JoinGraphURLArgName)
		if other, exists := seenNames[name]; exists {
			return nil, ferrors.NewInvalidSupergraph(fmt.Sprintf(
				"a subgraph named %q already exists (enum values %q and %q)", name, other, value.Name,
			), nil)
		}
		seenNames[name] = value.Name

		doc, err := newSubgraphDoc(name, url)
		if err != nil {
			return nil, fmt.Errorf("allocating subgraph %q: %w", name, err)
		}
		gs.add(&graph{
			enumValue:  value.Name,
			doc:        doc,
			federation: specs.NewFederationSpecDefinition(stockFederationVersion),
		})
	}
	return gs, nil
}

func findDirective(dirs ast.DirectiveList, name string) *ast.Directive {
	for _, d := range dirs {
		if d.Name == name {
			return d
		}
	}
	return nil
}
