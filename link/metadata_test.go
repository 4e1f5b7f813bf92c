package link_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"go.appointy.com/fedcore/link"
)

const testSchemaSDL = `
  extend schema
    @link(url: "https://specs.apollo.dev/link/v1.0", import: ["Import"])
    @link(url: "https://specs.apollo.dev/federation/v2.3", import: ["@key", { name: "@tag", as: "@myTag" }])
    @link(url: "https://custom.com/someSpec/v0.2", as: "mySpec")
    @link(url: "https://megacorp.com/auth/v1.0", for: SECURITY)

  type Query {
    x: Int
  }

  enum link__Purpose {
    SECURITY
    EXECUTION
  }

  scalar Import

  directive @link(url: String, as: String, import: [Import], for: link__Purpose) repeatable on SCHEMA
`

func parseTestSchema(t *testing.T) (map[string]*ast.DirectiveDefinition, ast.DirectiveList) {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "testSchema", Input: testSchemaSDL})
	require.NoError(t, err)

	defs := make(map[string]*ast.DirectiveDefinition)
	for _, d := range doc.Directives {
		defs[d.Name] = d
	}

	var schemaDirectives ast.DirectiveList
	for _, sd := range doc.Schema {
		schemaDirectives = append(schemaDirectives, sd.Directives...)
	}
	for _, sd := range doc.SchemaExtension {
		schemaDirectives = append(schemaDirectives, sd.Directives...)
	}
	return defs, schemaDirectives
}

func TestComputesLinkMetadata(t *testing.T) {
	defs, schemaDirectives := parseTestSchema(t)

	meta, err := link.BuildMetadata(defs, schemaDirectives)
	require.NoError(t, err)
	require.NotNil(t, meta)
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("built metadata:\n%s", spew.Sdump(meta))
		}
	})

	var namesInSchema []string
	for _, l := range meta.AllLinks() {
		namesInSchema = append(namesInSchema, l.SpecNameInSchema())
	}
	assert.Equal(t, []string{"link", "federation", "mySpec", "auth"}, namesInSchema)

	linkSpec := meta.ForIdentity(link.LinkIdentity())
	require.NotNil(t, linkSpec)
	require.Len(t, linkSpec.Imports, 1)
	assert.Equal(t, "Import", linkSpec.Imports[0].Element)
	assert.False(t, linkSpec.Imports[0].IsDirective)
	assert.Nil(t, linkSpec.Imports[0].Alias)

	fedSpec := meta.ForIdentity(link.Identity{Domain: link.ApolloSpecDomain, Name: "federation"})
	require.NotNil(t, fedSpec)
	assert.Equal(t, link.Version{Major: 2, Minor: 3}, fedSpec.Url.Version)
	assert.Nil(t, fedSpec.Purpose)

	require.Len(t, fedSpec.Imports, 2)
	assert.Equal(t, "key", fedSpec.Imports[0].Element)
	assert.True(t, fedSpec.Imports[0].IsDirective)
	assert.Nil(t, fedSpec.Imports[0].Alias)

	assert.Equal(t, "tag", fedSpec.Imports[1].Element)
	assert.True(t, fedSpec.Imports[1].IsDirective)
	require.NotNil(t, fedSpec.Imports[1].Alias)
	assert.Equal(t, "myTag", *fedSpec.Imports[1].Alias)

	authSpec := meta.ForIdentity(link.Identity{Domain: "https://megacorp.com", Name: "auth"})
	require.NotNil(t, authSpec)
	require.NotNil(t, authSpec.Purpose)
	assert.Equal(t, link.PurposeSecurity, *authSpec.Purpose)

	importSource := meta.SourceLinkOfType("Import")
	require.NotNil(t, importSource)
	assert.Equal(t, "link", importSource.Link.Url.Identity.Name)
	require.NotNil(t, importSource.Import)
	assert.False(t, importSource.Import.IsDirective)
	assert.Nil(t, importSource.Import.Alias)

	assert.Nil(t, meta.SourceLinkOfType("Purpose"))

	purposeSource := meta.SourceLinkOfType("link__Purpose")
	require.NotNil(t, purposeSource)
	assert.Equal(t, "link", purposeSource.Link.Url.Identity.Name)
	assert.Nil(t, purposeSource.Import)

	keySource := meta.SourceLinkOfDirective("key")
	require.NotNil(t, keySource)
	assert.Equal(t, "federation", keySource.Link.Url.Identity.Name)
	require.NotNil(t, keySource.Import)
	assert.True(t, keySource.Import.IsDirective)
	assert.Nil(t, keySource.Import.Alias)

	assert.Nil(t, meta.SourceLinkOfDirective("tag"))

	tagSource := meta.SourceLinkOfDirective("myTag")
	require.NotNil(t, tagSource)
	assert.Equal(t, "federation", tagSource.Link.Url.Identity.Name)
	require.NotNil(t, tagSource.Import)
	assert.Equal(t, "tag", tagSource.Import.Element)
	assert.True(t, tagSource.Import.IsDirective)
	require.NotNil(t, tagSource.Import.Alias)
	assert.Equal(t, "myTag", *tagSource.Import.Alias)
}

func TestBootstrapErrorDuplicateLink(t *testing.T) {
	sdl := `
      extend schema
        @link(url: "https://specs.apollo.dev/link/v1.0")
        @link(url: "https://specs.apollo.dev/link/v1.0")

      directive @link(url: String, as: String, import: [String], for: String) repeatable on SCHEMA
      type Query { x: Int }
    `
	doc, err := parser.ParseSchema(&ast.Source{Name: "dup", Input: sdl})
	require.NoError(t, err)
	defs := make(map[string]*ast.DirectiveDefinition)
	for _, d := range doc.Directives {
		defs[d.Name] = d
	}
	var schemaDirectives ast.DirectiveList
	for _, sd := range doc.Schema {
		schemaDirectives = append(schemaDirectives, sd.Directives...)
	}
	for _, sd := range doc.SchemaExtension {
		schemaDirectives = append(schemaDirectives, sd.Directives...)
	}

	_, err = link.BuildMetadata(defs, schemaDirectives)
	require.Error(t, err)
	var bootstrap *link.Bootstrap
	require.ErrorAs(t, err, &bootstrap)
}

func TestBootstrapErrorImportCollision(t *testing.T) {
	sdl := `
      extend schema
        @link(url: "https://specs.apollo.dev/link/v1.0", import: ["Foo"])
        @link(url: "https://custom.com/other/v1.0", as: "other2", import: ["Foo"])

      directive @link(url: String, as: String, import: [String], for: String) repeatable on SCHEMA
      type Query { x: Int }
    `
	doc, err := parser.ParseSchema(&ast.Source{Name: "collide", Input: sdl})
	require.NoError(t, err)
	defs := make(map[string]*ast.DirectiveDefinition)
	for _, d := range doc.Directives {
		defs[d.Name] = d
	}
	var schemaDirectives ast.DirectiveList
	for _, sd := range doc.Schema {
		schemaDirectives = append(schemaDirectives, sd.Directives...)
	}
	for _, sd := range doc.SchemaExtension {
		schemaDirectives = append(schemaDirectives, sd.Directives...)
	}

	_, err = link.BuildMetadata(defs, schemaDirectives)
	require.Error(t, err)
}
