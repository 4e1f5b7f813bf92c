package specs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.appointy.com/fedcore/link"
	"go.appointy.com/fedcore/specs"
)

func TestJoinVersionsExactFind(t *testing.T) {
	def, ok := specs.JoinVersions.Find(link.Version{Major: 0, Minor: 2})
	require.True(t, ok)
	assert.True(t, def.SupportsImplements())
	assert.False(t, def.SupportsUnionMemberAndEnumValue())

	_, ok = specs.JoinVersions.Find(link.Version{Major: 0, Minor: 9})
	assert.False(t, ok, "Find is exact: it must not round down to the nearest known version")
}

func TestFederationVersionsHighestSupporting(t *testing.T) {
	def, err := specs.FederationVersions.HighestSupporting(link.Version{Major: 2, Minor: 9})
	require.NoError(t, err)
	assert.Equal(t, uint32(5), def.SpecURL().Version.Minor, "should clamp down to the highest known v2.x")

	_, err = specs.FederationVersions.HighestSupporting(link.Version{Major: 3, Minor: 0})
	assert.Error(t, err, "a different major version is never compatible")
}

func TestInterfaceObjectRequiresFederationV2_3(t *testing.T) {
	early := specs.NewFederationSpecDefinition(link.Version{Major: 2, Minor: 2})
	assert.False(t, early.SupportsInterfaceObject())
	assert.Error(t, early.RequireInterfaceObjectSupport())

	later := specs.NewFederationSpecDefinition(link.Version{Major: 2, Minor: 3})
	assert.True(t, later.SupportsInterfaceObject())
	assert.NoError(t, later.RequireInterfaceObjectSupport())
}
