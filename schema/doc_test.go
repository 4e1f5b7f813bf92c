package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"go.appointy.com/fedcore/ferrors"
	"go.appointy.com/fedcore/schema"
)

const duplicateBootstrapFixture = `
  directive @link(url: String, as: String, for: link__Purpose, import: [link__Import]) repeatable on SCHEMA

  scalar link__Import

  enum link__Purpose {
    SECURITY
    EXECUTION
  }

  extend schema
    @link(url: "https://specs.apollo.dev/link/v1.0")
    @link(url: "https://specs.apollo.dev/link/v1.0")

  type Query {
    x: Int
  }
`

// TestParseWrapsBootstrapError exercises spec.md §7's two-surface contract
// from schema.Parse itself, fedcore's externally-facing entry point: a
// malformed `@link` bootstrap must be recoverable via errors.As(err,
// &ferrors.Bootstrap{}), not just from link.BuildMetadata in isolation.
func TestParseWrapsBootstrapError(t *testing.T) {
	_, err := schema.Parse(&ast.Source{Name: "dup-bootstrap", Input: duplicateBootstrapFixture})
	require.Error(t, err)

	var bootstrap *ferrors.Bootstrap
	assert.True(t, errors.As(err, &bootstrap), "expected *ferrors.Bootstrap in err's chain, got %T: %v", err, err)
}
