package supergraph

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"go.appointy.com/fedcore/link"
	"go.appointy.com/fedcore/specs"
)

// stockSubgraphSDL is the empty subgraph every `join__Graph` enum value
// starts from: the link spec's own bootstrap plus a federation v2.5 link.
// Unlike the upstream fixture this adapts, the federation directives are
// explicitly imported unprefixed (`@key`, not `@federation__key`) so that
// extracted subgraph SDL reads the way a hand-written Apollo subgraph does.
const stockSubgraphSDL = `
extend schema
	@link(url: "https://specs.apollo.dev/link/v1.0")
	@link(url: "https://specs.apollo.dev/federation/v2.5", import: [
		"@key", "@requires", "@provides", "@external", "@shareable",
		"@override", "@interfaceObject", "FieldSet"
	])

directive @link(url: String, as: String, for: link__Purpose, import: [link__Import]) repeatable on SCHEMA

scalar link__Import

enum link__Purpose {
	SECURITY
	EXECUTION
}

directive @key(fields: FieldSet!, resolvable: Boolean = true) repeatable on OBJECT | INTERFACE
directive @requires(fields: FieldSet!) on FIELD_DEFINITION
directive @provides(fields: FieldSet!) on FIELD_DEFINITION
directive @external(reason: String) on OBJECT | FIELD_DEFINITION
directive @shareable on OBJECT | FIELD_DEFINITION
directive @override(from: String!) on FIELD_DEFINITION
directive @interfaceObject on OBJECT

scalar FieldSet
`

// federationLinkInSubgraph is the *link.Link the stock skeleton bootstraps
// for the federation spec: the directive builders in specs.FederationSpecDefinition
// need it to resolve in-schema directive names, which for the stock skeleton
// are always the unprefixed names imported above.
func federationLinkInSubgraph() *link.Link {
	return &link.Link{
		Url: link.Url{Identity: specs.FederationIdentity(), Version: link.Version{Major: 2, Minor: 5}},
		Imports: []*link.Import{
			{Element: specs.FederationKeyDirectiveName, IsDirective: true},
			{Element: specs.FederationRequiresDirectiveName, IsDirective: true},
			{Element: specs.FederationProvidesDirectiveName, IsDirective: true},
			{Element: specs.FederationExternalDirectiveName, IsDirective: true},
			{Element: specs.FederationShareableDirectiveName, IsDirective: true},
			{Element: specs.FederationOverrideDirectiveName, IsDirective: true},
			{Element: specs.FederationInterfaceObjectDirectiveName, IsDirective: true},
			{Element: "FieldSet"},
		},
	}
}

// newSkeletonDocument parses the stock SDL once per subgraph; callers append
// extracted content to the returned document's Definitions before building
// the final validated schema.Schema from it.
func newSkeletonDocument(name string) (*ast.SchemaDocument, error) {
	return parser.ParseSchema(&ast.Source{Name: name + "-skeleton.graphql", Input: stockSubgraphSDL})
}
