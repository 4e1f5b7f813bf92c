package specs

import (
	"fmt"

	"go.appointy.com/fedcore/link"
)

const (
	JoinGraphDirectiveName        = "graph"
	JoinTypeDirectiveName         = "type"
	JoinFieldDirectiveName        = "field"
	JoinImplementsDirectiveName   = "implements"
	JoinUnionMemberDirectiveName  = "unionMember"
	JoinEnumValueDirectiveName    = "enumValue"
	JoinGraphEnumName             = "Graph"

	JoinGraphNameArgName        = "name"
	JoinGraphURLArgName         = "url"
	JoinTypeGraphArgName        = "graph"
	JoinTypeKeyArgName          = "key"
	JoinTypeExtensionArgName    = "extension"
	JoinTypeResolvableArgName   = "resolvable"
	JoinTypeIsInterfaceObjectArgName = "isInterfaceObject"
	JoinFieldGraphArgName       = "graph"
	JoinFieldRequiresArgName    = "requires"
	JoinFieldProvidesArgName    = "provides"
	JoinFieldTypeArgName        = "type"
	JoinFieldExternalArgName    = "external"
	JoinFieldOverrideArgName    = "override"
	JoinFieldUsedOverriddenArgName = "usedOverridden"
	JoinImplementsGraphArgName     = "graph"
	JoinImplementsInterfaceArgName = "interface"
	JoinUnionMemberGraphArgName    = "graph"
	JoinUnionMemberMemberArgName   = "member"
	JoinEnumValueGraphArgName      = "graph"
)

// JoinSpecDefinition is one supported version of the `join` spec, gating
// which `@join__*` directives are meaningful at that version.
type JoinSpecDefinition struct {
	url                     link.Url
	minimumFederationVersion *link.Version
}

func NewJoinSpecDefinition(v link.Version, minFed *link.Version) *JoinSpecDefinition {
	return &JoinSpecDefinition{url: link.Url{Identity: JoinIdentity(), Version: v}, minimumFederationVersion: minFed}
}

func (d *JoinSpecDefinition) SpecURL() link.Url { return d.url }
func (d *JoinSpecDefinition) MinimumFederationVersion() *link.Version {
	return d.minimumFederationVersion
}

// SupportsImplements reports whether `@join__implements` is part of this
// join version (introduced in v0.2).
func (d *JoinSpecDefinition) SupportsImplements() bool {
	return d.url.Version.Compare(link.Version{Major: 0, Minor: 2}) >= 0
}

// SupportsUnionMemberAndEnumValue reports whether `@join__unionMember` and
// `@join__enumValue` are part of this join version (introduced in v0.3).
func (d *JoinSpecDefinition) SupportsUnionMemberAndEnumValue() bool {
	return d.url.Version.Compare(link.Version{Major: 0, Minor: 3}) >= 0
}

func fed(major, minor uint32) *link.Version {
	return &link.Version{Major: major, Minor: minor}
}

// JoinVersions is the registry of every supported join version.
var JoinVersions = buildJoinVersions()

func buildJoinVersions() *Registry[*JoinSpecDefinition] {
	r := NewRegistry[*JoinSpecDefinition](JoinIdentity())
	r.Add(NewJoinSpecDefinition(link.Version{Major: 0, Minor: 1}, fed(2, 0)))
	r.Add(NewJoinSpecDefinition(link.Version{Major: 0, Minor: 2}, fed(2, 0)))
	r.Add(NewJoinSpecDefinition(link.Version{Major: 0, Minor: 3}, fed(2, 0)))
	return r
}

// ErrFeatureNotSupported is returned when a `@join__*` directive is used at
// a join version that does not yet define it.
type ErrFeatureNotSupported struct {
	Feature string
	Version link.Version
}

func (e *ErrFeatureNotSupported) Error() string {
	return fmt.Sprintf("%s is not supported by join spec version %s", e.Feature, e.Version)
}
