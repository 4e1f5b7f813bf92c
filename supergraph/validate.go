package supergraph

import (
	"fmt"

	"go.appointy.com/fedcore/ferrors"
	"go.appointy.com/fedcore/link"
	"go.appointy.com/fedcore/schema"
	"go.appointy.com/fedcore/specs"
)

// Validated is a supergraph schema confirmed to bootstrap the link and join
// specs at versions this package knows how to extract. Every extraction step
// downstream of Validate takes a *Validated instead of a raw *schema.Schema.
type Validated struct {
	Schema   *schema.Schema
	JoinLink *link.Link
	Join     *specs.JoinSpecDefinition
}

// Validate checks that s looks like a fed2 supergraph: it must bootstrap
// `@link` at all, must link the join spec, and that join spec version must
// be one this package supports. This is the one gate every extraction must
// pass through before touching `@join__*` directives.
func Validate(s *schema.Schema) (*Validated, error) {
	if s.Meta == nil {
		return nil, ferrors.NewInvalidSupergraph("supergraph schema does not apply @link at all", nil)
	}

	joinLink := s.Meta.ForIdentity(specs.JoinIdentity())
	if joinLink == nil {
		return nil, ferrors.NewInvalidSupergraph(
			fmt.Sprintf("supergraph schema does not link the %s specification", specs.JoinIdentity()), nil,
		)
	}

	joinDef, ok := specs.JoinVersions.Find(joinLink.Url.Version)
	if !ok {
		return nil, ferrors.NewInvalidSupergraph(fmt.Sprintf(
			"supergraph schema uses unsupported join spec version %s", joinLink.Url.Version,
		), nil)
	}

	return &Validated{Schema: s, JoinLink: joinLink, Join: joinDef}, nil
}
