package specs

import "go.appointy.com/fedcore/link"

// LinkSpecDefinition is one supported version of the `link` spec itself.
type LinkSpecDefinition struct {
	url link.Url
}

func NewLinkSpecDefinition(v link.Version) *LinkSpecDefinition {
	return &LinkSpecDefinition{url: link.Url{Identity: link.LinkIdentity(), Version: v}}
}

func (d *LinkSpecDefinition) SpecURL() link.Url                      { return d.url }
func (d *LinkSpecDefinition) MinimumFederationVersion() *link.Version { return nil }

// LinkVersions is the registry of every supported `link` spec version.
var LinkVersions = buildLinkVersions()

func buildLinkVersions() *Registry[*LinkSpecDefinition] {
	r := NewRegistry[*LinkSpecDefinition](link.LinkIdentity())
	r.Add(NewLinkSpecDefinition(link.Version{Major: 1, Minor: 0}))
	return r
}
