package supergraph

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"go.appointy.com/fedcore/ferrors"
	"go.appointy.com/fedcore/schema"
	"go.appointy.com/fedcore/specs"
)

// typeJoinInfo is one subgraph's participation in a type: the subgraph's
// join__Graph enum value, and whether the type was materialized there as an
// interface-object (only meaningful for interface types). A typeInfo lists
// its members in the order of the type's `@join__type` applications.
type typeJoinInfo struct {
	enumValue         string
	isInterfaceObject bool
}

// typeInfo records, for one supergraph type, every subgraph it was placed
// into by `@join__type`. The content extractors consume this instead of
// re-reading `@join__type` applications themselves.
type typeInfo struct {
	name    string
	members []typeJoinInfo
}

func (t *typeInfo) has(enumValue string) (typeJoinInfo, bool) {
	for _, m := range t.members {
		if m.enumValue == enumValue {
			return m, true
		}
	}
	return typeJoinInfo{}, false
}

type typeInfos struct {
	objects      []*typeInfo
	interfaces   []*typeInfo
	unions       []*typeInfo
	enums        []*typeInfo
	inputObjects []*typeInfo
}

type joinTypeApplication struct {
	graph             string
	key               *string
	extension         bool
	resolvable        bool
	isInterfaceObject bool
}

func decodeJoinTypeApplications(d *ast.Directive) joinTypeApplication {
	return joinTypeApplication{
		graph:             schema.DirectiveRequiredStringArgument(d, specs.JoinTypeGraphArgName),
		key:               schema.DirectiveOptionalFieldSetArgument(d, specs.JoinTypeKeyArgName),
		extension:         schema.DirectiveRequiredBooleanArgument(d, specs.JoinTypeExtensionArgName, false),
		resolvable:        schema.DirectiveRequiredBooleanArgument(d, specs.JoinTypeResolvableArgName, true),
		isInterfaceObject: schema.DirectiveRequiredBooleanArgument(d, specs.JoinTypeIsInterfaceObjectArgName, false),
	}
}

// addAllEmptySubgraphTypes is the shape pass of extraction: for every
// filtered supergraph type, it materializes an empty shell of the right
// kind in every subgraph named by that type's `@join__type` applications,
// returning the per-kind worklists the content extractors then fill in.
func addAllEmptySubgraphTypes(v *Validated, gs *graphSet, filtered []string) (*typeInfos, error) {
	typeDirectiveName := v.JoinLink.DirectiveNameInSchema(specs.JoinTypeDirectiveName)

	infos := &typeInfos{}
	for _, typeName := range filtered {
		def := v.Schema.AST.Types[typeName]
		var apps []joinTypeApplication
		for _, d := range def.Directives {
			if d.Name == typeDirectiveName {
				apps = append(apps, decodeJoinTypeApplications(d))
			}
		}

		switch def.Kind {
		case ast.Scalar:
			for _, app := range apps {
				g, err := gs.get(app.graph)
				if err != nil {
					return nil, err
				}
				if err := g.doc.addType(&ast.Definition{Kind: ast.Scalar, Name: typeName}); err != nil {
					return nil, err
				}
			}
		case ast.Object:
			info, err := addEmptyType(gs, typeName, def, apps)
			if err != nil {
				return nil, err
			}
			infos.objects = append(infos.objects, info)
		case ast.Interface:
			info, err := addEmptyType(gs, typeName, def, apps)
			if err != nil {
				return nil, err
			}
			infos.interfaces = append(infos.interfaces, info)
		case ast.Union:
			info, err := addEmptyType(gs, typeName, def, apps)
			if err != nil {
				return nil, err
			}
			infos.unions = append(infos.unions, info)
		case ast.Enum:
			info, err := addEmptyType(gs, typeName, def, apps)
			if err != nil {
				return nil, err
			}
			infos.enums = append(infos.enums, info)
		case ast.InputObject:
			info, err := addEmptyType(gs, typeName, def, apps)
			if err != nil {
				return nil, err
			}
			infos.inputObjects = append(infos.inputObjects, info)
		}
	}
	return infos, nil
}

// addEmptyType materializes one type's shell across every subgraph named by
// its `@join__type` applications, returning its accumulated subgraph
// membership. A fed2 supergraph always carries at least one `@join__type`
// per type; an absent one is a malformed supergraph.
func addEmptyType(gs *graphSet, typeName string, def *ast.Definition, apps []joinTypeApplication) (*typeInfo, error) {
	if len(apps) == 0 {
		return nil, ferrors.NewInvalidSupergraph(fmt.Sprintf("missing @join__type on %q", typeName), nil)
	}
	info := &typeInfo{name: typeName}

	for _, app := range apps {
		g, err := gs.get(app.graph)
		if err != nil {
			return nil, err
		}

		if _, ok := info.has(app.graph); ok {
			if app.key != nil {
				if err := attachKey(g, typeName, *app.key, app.resolvable); err != nil {
					return nil, err
				}
			}
			continue
		}

		subgraphDef, err := materializeShell(g, typeName, def, app)
		if err != nil {
			return nil, err
		}
		if app.extension {
			if err := g.doc.addExtensionType(subgraphDef); err != nil {
				return nil, err
			}
		} else {
			if err := g.doc.addType(subgraphDef); err != nil {
				return nil, err
			}
		}
		if app.key != nil {
			if err := attachKeyToDefinition(g, subgraphDef, typeName, *app.key, app.resolvable); err != nil {
				return nil, err
			}
		}
		info.members = append(info.members, typeJoinInfo{enumValue: app.graph, isInterfaceObject: app.isInterfaceObject})
	}
	return info, nil
}

// materializeShell builds the empty subgraph-kind definition for one
// `@join__type` application, handling the interface/interface-object
// distinction.
func materializeShell(g *graph, typeName string, def *ast.Definition, app joinTypeApplication) (*ast.Definition, error) {
	switch def.Kind {
	case ast.Object:
		return &ast.Definition{Kind: ast.Object, Name: typeName}, nil
	case ast.Interface:
		if app.isInterfaceObject {
			if err := g.federation.RequireInterfaceObjectSupport(); err != nil {
				return nil, err
			}
			return &ast.Definition{
				Kind:       ast.Object,
				Name:       typeName,
				Directives: ast.DirectiveList{g.federation.InterfaceObjectDirective(federationLinkInSubgraph())},
			}, nil
		}
		return &ast.Definition{Kind: ast.Interface, Name: typeName}, nil
	case ast.Union:
		return &ast.Definition{Kind: ast.Union, Name: typeName}, nil
	case ast.Enum:
		return &ast.Definition{Kind: ast.Enum, Name: typeName}, nil
	case ast.InputObject:
		return &ast.Definition{Kind: ast.InputObject, Name: typeName}, nil
	default:
		return nil, fmt.Errorf("addAllEmptySubgraphTypes: unexpected kind for %q", typeName)
	}
}

// attachKeyToDefinition adds a `@key` application to def, a type already
// registered in subgraph g's document. Which of the document's
// Definitions/Extensions lists def lives in was decided when it was first
// materialized (see addEmptyType); a `@key` is just another directive
// application on that same *ast.Definition, wherever it sits.
func attachKeyToDefinition(g *graph, def *ast.Definition, typeName, fields string, resolvable bool) error {
	key := g.federation.KeyDirective(federationLinkInSubgraph(), fields, resolvable)
	def.Directives = append(def.Directives, key)
	return nil
}

// attachKey adds a second (or later) `@key` application to a type already
// materialized in subgraph g.
func attachKey(g *graph, typeName, fields string, resolvable bool) error {
	def := g.doc.typeOf(typeName)
	if def == nil {
		return fmt.Errorf("attachKey: %q not yet present in subgraph %q", typeName, g.doc.name)
	}
	return attachKeyToDefinition(g, def, typeName, fields, resolvable)
}
