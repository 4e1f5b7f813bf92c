package specs

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"go.appointy.com/fedcore/link"
)

const (
	FederationKeyDirectiveName            = "key"
	FederationInterfaceObjectDirectiveName = "interfaceObject"
	FederationExternalDirectiveName        = "external"
	FederationRequiresDirectiveName        = "requires"
	FederationProvidesDirectiveName        = "provides"
	FederationShareableDirectiveName       = "shareable"
	FederationOverrideDirectiveName        = "override"

	FederationFieldsArgumentName     = "fields"
	FederationResolvableArgumentName = "resolvable"
	FederationReasonArgumentName     = "reason"
	FederationFromArgumentName       = "from"
)

// Federation-surface type names used by the subgraph extractor.
const (
	FederationAnyTypeName             = "_Any"
	FederationServiceTypeName          = "_Service"
	FederationSDLFieldName             = "sdl"
	FederationEntityTypeName           = "_Entity"
	FederationServiceFieldName         = "_service"
	FederationEntitiesFieldName        = "_entities"
	FederationRepresentationsArgName   = "representations"
)

// FederationSpecDefinition is one supported version of the `federation`
// spec, able to build the directive applications the subgraph extractor
// attaches: `@key`, `@requires`, `@provides`, `@external`, `@shareable`,
// `@override`, and (federation >= v2.3) `@interfaceObject`.
type FederationSpecDefinition struct {
	url link.Url
}

// NewFederationSpecDefinition builds the definition for one federation
// version.
func NewFederationSpecDefinition(v link.Version) *FederationSpecDefinition {
	return &FederationSpecDefinition{url: link.Url{Identity: FederationIdentity(), Version: v}}
}

func (d *FederationSpecDefinition) SpecURL() link.Url                    { return d.url }
func (d *FederationSpecDefinition) MinimumFederationVersion() *link.Version { return nil }

func (d *FederationSpecDefinition) nameInSchema(l *link.Link, name string) string {
	return l.DirectiveNameInSchema(name)
}

// KeyDirective builds a `@key(fields: ..., resolvable: ...)` application.
func (d *FederationSpecDefinition) KeyDirective(l *link.Link, fields string, resolvable bool) *ast.Directive {
	return &ast.Directive{
		Name: d.nameInSchema(l, FederationKeyDirectiveName),
		Arguments: ast.ArgumentList{
			{Name: FederationFieldsArgumentName, Value: &ast.Value{Kind: ast.StringValue, Raw: fields}},
			{Name: FederationResolvableArgumentName, Value: boolValue(resolvable)},
		},
	}
}

// InterfaceObjectDirective builds a bare `@interfaceObject` application. It
// panics if this definition predates federation v2.3 — callers must check
// the linked federation version before reaching for it, exactly as the
// original does.
func (d *FederationSpecDefinition) InterfaceObjectDirective(l *link.Link) *ast.Directive {
	if d.url.Version.Compare(link.Version{Major: 2, Minor: 3}) < 0 {
		panic("must be using federation >= v2.3 to use interface object")
	}
	return &ast.Directive{Name: d.nameInSchema(l, FederationInterfaceObjectDirectiveName)}
}

// ExternalDirective builds `@external` or, with a reason, `@external(reason: ...)`.
func (d *FederationSpecDefinition) ExternalDirective(l *link.Link, reason *string) *ast.Directive {
	dir := &ast.Directive{Name: d.nameInSchema(l, FederationExternalDirectiveName)}
	if reason != nil {
		dir.Arguments = ast.ArgumentList{
			{Name: FederationReasonArgumentName, Value: &ast.Value{Kind: ast.StringValue, Raw: *reason}},
		}
	}
	return dir
}

// RequiresDirective builds `@requires(fields: ...)`.
func (d *FederationSpecDefinition) RequiresDirective(l *link.Link, fields string) *ast.Directive {
	return &ast.Directive{
		Name: d.nameInSchema(l, FederationRequiresDirectiveName),
		Arguments: ast.ArgumentList{
			{Name: FederationFieldsArgumentName, Value: &ast.Value{Kind: ast.StringValue, Raw: fields}},
		},
	}
}

// ProvidesDirective builds `@provides(fields: ...)`.
func (d *FederationSpecDefinition) ProvidesDirective(l *link.Link, fields string) *ast.Directive {
	return &ast.Directive{
		Name: d.nameInSchema(l, FederationProvidesDirectiveName),
		Arguments: ast.ArgumentList{
			{Name: FederationFieldsArgumentName, Value: &ast.Value{Kind: ast.StringValue, Raw: fields}},
		},
	}
}

// ShareableDirective builds a bare `@shareable` application.
func (d *FederationSpecDefinition) ShareableDirective(l *link.Link) *ast.Directive {
	return &ast.Directive{Name: d.nameInSchema(l, FederationShareableDirectiveName)}
}

// OverrideDirective builds `@override(from: ...)`.
func (d *FederationSpecDefinition) OverrideDirective(l *link.Link, from string) *ast.Directive {
	return &ast.Directive{
		Name: d.nameInSchema(l, FederationOverrideDirectiveName),
		Arguments: ast.ArgumentList{
			{Name: FederationFromArgumentName, Value: &ast.Value{Kind: ast.StringValue, Raw: from}},
		},
	}
}

func boolValue(b bool) *ast.Value {
	raw := "false"
	if b {
		raw = "true"
	}
	return &ast.Value{Kind: ast.BooleanValue, Raw: raw}
}

// FederationVersions is the registry of every supported federation version.
var FederationVersions = buildFederationVersions()

func buildFederationVersions() *Registry[*FederationSpecDefinition] {
	r := NewRegistry[*FederationSpecDefinition](FederationIdentity())
	for _, minor := range []uint32{0, 1, 2, 3, 4, 5} {
		r.Add(NewFederationSpecDefinition(link.Version{Major: 2, Minor: minor}))
	}
	return r
}

// SupportsInterfaceObject reports whether this federation version supports
// `@interfaceObject` (introduced in v2.3).
func (d *FederationSpecDefinition) SupportsInterfaceObject() bool {
	return d.url.Version.Compare(link.Version{Major: 2, Minor: 3}) >= 0
}

// RequireInterfaceObjectSupport returns an error if this version predates
// v2.3, for call sites that would rather return an error than panic.
func (d *FederationSpecDefinition) RequireInterfaceObjectSupport() error {
	if !d.SupportsInterfaceObject() {
		return fmt.Errorf("interface objects require federation >= v2.3, have %s", d.url.Version)
	}
	return nil
}
