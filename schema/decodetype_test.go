package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.appointy.com/fedcore/schema"
)

func TestDecodeTypeAccepted(t *testing.T) {
	typ, err := schema.DecodeType("[Int!]!")
	require.NoError(t, err)
	assert.Equal(t, "[Int!]!", typ.String())
}

func TestDecodeTypeRejectsEscapeCharacters(t *testing.T) {
	_, err := schema.DecodeType("bad}hack")
	require.Error(t, err)

	_, err = schema.DecodeType("bad:hack")
	require.Error(t, err)
}
