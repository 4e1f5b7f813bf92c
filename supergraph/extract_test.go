package supergraph_test

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"go.appointy.com/fedcore/schema"
	"go.appointy.com/fedcore/supergraph"
)

// mixedSupergraphSDL composes two subgraphs sharing an entity type (T,
// keyed on "k"), plus a subgraph-local object (S), an enum (E) and a union
// (U) of S and T. Grounded directly on apollo-federation's own
// can_extract_subgraph fixture.
const mixedSupergraphSDL = `
schema
  @link(url: "https://specs.apollo.dev/link/v1.0")
  @link(url: "https://specs.apollo.dev/join/v0.3", for: EXECUTION)
{
  query: Query
}

directive @link(url: String, as: String, for: link__Purpose, import: [link__Import]) repeatable on SCHEMA

scalar link__Import

enum link__Purpose {
  SECURITY
  EXECUTION
}

directive @join__enumValue(graph: join__Graph!) repeatable on ENUM_VALUE
directive @join__field(graph: join__Graph, requires: join__FieldSet, provides: join__FieldSet, type: String, external: Boolean, override: String, usedOverridden: Boolean) repeatable on FIELD_DEFINITION | INPUT_FIELD_DEFINITION
directive @join__graph(name: String!, url: String!) on ENUM_VALUE
directive @join__implements(graph: join__Graph!, interface: String!) repeatable on OBJECT | INTERFACE
directive @join__type(graph: join__Graph!, key: join__FieldSet, extension: Boolean! = false, resolvable: Boolean! = true, isInterfaceObject: Boolean! = false) repeatable on OBJECT | INTERFACE | UNION | ENUM | INPUT_OBJECT | SCALAR
directive @join__unionMember(graph: join__Graph!, member: String!) repeatable on UNION

scalar join__FieldSet

enum join__Graph {
  SUBGRAPH1 @join__graph(name: "Subgraph1", url: "https://Subgraph1")
  SUBGRAPH2 @join__graph(name: "Subgraph2", url: "https://Subgraph2")
}

enum E
  @join__type(graph: SUBGRAPH2)
{
  V1 @join__enumValue(graph: SUBGRAPH2)
  V2 @join__enumValue(graph: SUBGRAPH2)
}

type Query
  @join__type(graph: SUBGRAPH1)
  @join__type(graph: SUBGRAPH2)
{
  t: T @join__field(graph: SUBGRAPH1)
}

type S
  @join__type(graph: SUBGRAPH1)
{
  x: Int
}

type T
  @join__type(graph: SUBGRAPH1, key: "k")
  @join__type(graph: SUBGRAPH2, key: "k")
{
  k: ID
  a: Int @join__field(graph: SUBGRAPH2)
  b: String @join__field(graph: SUBGRAPH2)
}

union U
  @join__type(graph: SUBGRAPH1)
  @join__unionMember(graph: SUBGRAPH1, member: "S")
  @join__unionMember(graph: SUBGRAPH1, member: "T")
 = S | T
`

func parseSupergraph(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(&ast.Source{Name: "supergraph.graphql", Input: sdl})
	require.NoError(t, err)
	return s
}

func subgraphNamed(t *testing.T, subgraphs []*supergraph.Subgraph, name string) *supergraph.Subgraph {
	t.Helper()
	for _, sg := range subgraphs {
		if sg.Name == name {
			return sg
		}
	}
	t.Fatalf("no subgraph named %q among %d extracted", name, len(subgraphs))
	return nil
}

func TestExtractMixedScalarObjectUnion(t *testing.T) {
	sg := parseSupergraph(t, mixedSupergraphSDL)

	subgraphs, err := supergraph.Extract(sg)
	require.NoError(t, err)
	require.Len(t, subgraphs, 2)

	sub1 := subgraphNamed(t, subgraphs, "Subgraph1")
	assert.Equal(t, "https://Subgraph1", sub1.URL)

	sType := sub1.Schema.AST.Types["S"]
	require.NotNil(t, sType)
	assert.NotNil(t, sType.Fields.ForName("x"))

	tType1 := sub1.Schema.AST.Types["T"]
	require.NotNil(t, tType1)
	assert.NotNil(t, tType1.Fields.ForName("k"))
	assert.Nil(t, tType1.Fields.ForName("a"), "a is only join__field'd into Subgraph2")
	assert.Nil(t, tType1.Fields.ForName("b"), "b is only join__field'd into Subgraph2")

	uType := sub1.Schema.AST.Types["U"]
	require.NotNil(t, uType)
	assert.ElementsMatch(t, []string{"S", "T"}, uType.Types)

	queryType1 := sub1.Schema.AST.Types["Query"]
	require.NotNil(t, queryType1)
	assert.NotNil(t, queryType1.Fields.ForName("t"))
	assert.NotNil(t, queryType1.Fields.ForName("_service"))
	assert.NotNil(t, queryType1.Fields.ForName("_entities"), "Subgraph1 has a @key'd type, so it's an entity subgraph")

	sub2 := subgraphNamed(t, subgraphs, "Subgraph2")
	assert.Equal(t, "https://Subgraph2", sub2.URL)

	eType := sub2.Schema.AST.Types["E"]
	require.NotNil(t, eType)
	assert.NotNil(t, eType.EnumValues.ForName("V1"))
	assert.NotNil(t, eType.EnumValues.ForName("V2"))

	tType2 := sub2.Schema.AST.Types["T"]
	require.NotNil(t, tType2)
	assert.NotNil(t, tType2.Fields.ForName("k"))
	assert.NotNil(t, tType2.Fields.ForName("a"))
	assert.NotNil(t, tType2.Fields.ForName("b"))

	_, hasS := sub2.Schema.AST.Types["S"]
	assert.False(t, hasS, "S was never join__type'd into Subgraph2")

	queryType2 := sub2.Schema.AST.Types["Query"]
	require.NotNil(t, queryType2)
	assert.Nil(t, queryType2.Fields.ForName("t"), "t was only join__field'd into Subgraph1")
	assert.NotNil(t, queryType2.Fields.ForName("_service"))
	assert.NotNil(t, queryType2.Fields.ForName("_entities"))
}

// TestExtractIsDeterministic exercises P6: extracting the same supergraph
// twice must print byte-identical SDL per subgraph, in the same subgraph
// order: subgraphs follow join__Graph enum order and supergraph types are
// walked in sorted name order.
func TestExtractIsDeterministic(t *testing.T) {
	first, err := supergraph.Extract(parseSupergraph(t, mixedSupergraphSDL))
	require.NoError(t, err)
	second, err := supergraph.Extract(parseSupergraph(t, mixedSupergraphSDL))
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		if diff := pretty.Compare(first[i].SDL(), second[i].SDL()); diff != "" {
			t.Errorf("subgraph %q SDL differs between extraction runs:\n%s", first[i].Name, diff)
		}
	}
}

func TestExtractRejectsUnsupportedJoinVersion(t *testing.T) {
	sdl := `
schema
  @link(url: "https://specs.apollo.dev/link/v1.0")
  @link(url: "https://specs.apollo.dev/join/v99.0", for: EXECUTION)
{
  query: Query
}

directive @link(url: String, as: String, for: link__Purpose, import: [link__Import]) repeatable on SCHEMA

scalar link__Import

enum link__Purpose {
  SECURITY
  EXECUTION
}

directive @join__graph(name: String!, url: String!) on ENUM_VALUE
directive @join__type(graph: join__Graph!, key: join__FieldSet, extension: Boolean! = false, resolvable: Boolean! = true, isInterfaceObject: Boolean! = false) repeatable on OBJECT | INTERFACE | UNION | ENUM | INPUT_OBJECT | SCALAR

scalar join__FieldSet

enum join__Graph {
  SUBGRAPH1 @join__graph(name: "Subgraph1", url: "https://Subgraph1")
}

type Query
  @join__type(graph: SUBGRAPH1)
{
  x: Int
}
`
	sg := parseSupergraph(t, sdl)

	_, err := supergraph.Extract(sg)
	require.Error(t, err)
}

func TestExtractRejectsNonCoreSchema(t *testing.T) {
	sdl := `
type Query {
  x: Int
}
`
	sg := parseSupergraph(t, sdl)

	_, err := supergraph.Extract(sg)
	require.Error(t, err)
}
