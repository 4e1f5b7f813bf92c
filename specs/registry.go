// Package specs is the versioned catalog of known link specifications
// (`link`, `federation`, `join`), their supported versions, and the
// per-version feature gates and directive builders the supergraph extractor
// needs.
package specs

import (
	"fmt"
	"sort"

	"go.appointy.com/fedcore/link"
)

// Definition is implemented by every versioned spec definition kept in a
// Registry.
type Definition interface {
	SpecURL() link.Url
	MinimumFederationVersion() *link.Version
}

// Registry is a versioned catalog of spec definitions, analogous to the
// original's `SpecDefinitions<T>`: one entry per supported version of a
// single spec identity, kept sorted, with lookup by exact version or by the
// highest version satisfying a range.
type Registry[T Definition] struct {
	identity link.Identity
	versions []T
}

// NewRegistry creates an empty registry for the given spec identity.
func NewRegistry[T Definition](identity link.Identity) *Registry[T] {
	return &Registry[T]{identity: identity}
}

// Identity returns the spec identity this registry catalogs.
func (r *Registry[T]) Identity() link.Identity {
	return r.identity
}

// Add registers a definition, keeping the registry sorted by version.
func (r *Registry[T]) Add(def T) {
	r.versions = append(r.versions, def)
	sort.Slice(r.versions, func(i, j int) bool {
		return r.versions[i].SpecURL().Version.Compare(r.versions[j].SpecURL().Version) < 0
	})
}

// Versions returns every registered version, ascending.
func (r *Registry[T]) Versions() []T {
	return r.versions
}

// Find returns the definition for an exact version, or false.
func (r *Registry[T]) Find(v link.Version) (T, bool) {
	for _, d := range r.versions {
		if d.SpecURL().Version == v {
			return d, true
		}
	}
	var zero T
	return zero, false
}

// ErrUnsupportedVersion is returned when a schema links a version of a spec
// this registry does not carry a definition for.
type ErrUnsupportedVersion struct {
	Identity link.Identity
	Version  link.Version
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported %s version %s", e.Identity, e.Version)
}

// HighestSupporting returns the latest registered version that is itself <=
// the requested version and whose major version matches (per semver-style
// spec compatibility: same major, at-most-requested minor).
func (r *Registry[T]) HighestSupporting(v link.Version) (T, error) {
	var best T
	found := false
	for _, d := range r.versions {
		dv := d.SpecURL().Version
		if dv.Major != v.Major || dv.Compare(v) > 0 {
			continue
		}
		if !found || dv.Compare(best.SpecURL().Version) > 0 {
			best = d
			found = true
		}
	}
	if !found {
		return best, &ErrUnsupportedVersion{Identity: r.identity, Version: v}
	}
	return best, nil
}

// FederationIdentity is the identity of the `federation` spec.
func FederationIdentity() link.Identity {
	return link.Identity{Domain: link.ApolloSpecDomain, Name: "federation"}
}

// JoinIdentity is the identity of the `join` spec.
func JoinIdentity() link.Identity {
	return link.Identity{Domain: link.ApolloSpecDomain, Name: "join"}
}
