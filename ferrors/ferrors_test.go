package ferrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.appointy.com/fedcore/ferrors"
)

func TestBootstrapUnwrap(t *testing.T) {
	cause := errors.New("duplicate identity")
	err := ferrors.NewBootstrap("bad link", cause)

	var bootstrap *ferrors.Bootstrap
	assert.True(t, errors.As(err, &bootstrap))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "bad link")
}

func TestInvalidSupergraphSubgraphScoped(t *testing.T) {
	err := ferrors.NewInvalidSubgraph("Subgraph1", "join not linked", nil)
	assert.Contains(t, err.Error(), "Subgraph1")
	assert.Contains(t, err.Error(), "join not linked")
}
