package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"go.appointy.com/fedcore/schema"
)

const removalFixture = `
  directive @key(fields: String) on OBJECT

  type Query {
    f: T
  }

  type T @key(fields: "id") {
    id: ID!
  }
`

func TestBuildIndexAndRemoveRecursive(t *testing.T) {
	s, err := schema.Parse(&ast.Source{Name: "removal", Input: removalFixture})
	require.NoError(t, err)

	tBucket, ok := s.Index.ObjectTypes["T"]
	require.True(t, ok)
	assert.Equal(t, 1, tBucket.ObjectFields.Len())

	s.RemoveRecursive(schema.ObjectTypePosition{Name: "T"})

	_, stillHasT := s.AST.Types["T"]
	assert.False(t, stillHasT)
	_, stillIndexedT := s.Index.ObjectTypes["T"]
	assert.False(t, stillIndexedT)

	queryDef, ok := s.AST.Types["Query"]
	require.True(t, ok)
	assert.Nil(t, queryDef.Fields.ForName("f"))

	assert.NotNil(t, s.AST.Types["Query"])
}

func TestRemoveDirectiveNamePurgesIndex(t *testing.T) {
	s, err := schema.Parse(&ast.Source{Name: "removal2", Input: removalFixture})
	require.NoError(t, err)

	keyBucket, ok := s.Index.Directives["key"]
	require.True(t, ok)
	assert.Equal(t, 1, keyBucket.ObjectTypes.Len())

	s.RemoveDirectiveName(schema.ObjectTypePosition{Name: "T"}, "key")

	assert.Equal(t, 0, keyBucket.ObjectTypes.Len())
	tDef := s.AST.Types["T"]
	require.NotNil(t, tDef)
	assert.Nil(t, tDef.Directives.ForName("key"))
}
