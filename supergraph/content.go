package supergraph

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"go.appointy.com/fedcore/ferrors"
	"go.appointy.com/fedcore/schema"
	"go.appointy.com/fedcore/specs"
)

type joinFieldApplication struct {
	graph          *string
	requires       *string
	provides       *string
	typeOverride   *string
	external       bool
	override       *string
	usedOverridden bool
}

func decodeJoinFieldApplication(d *ast.Directive) joinFieldApplication {
	return joinFieldApplication{
		graph:          schema.DirectiveOptionalStringArgument(d, specs.JoinFieldGraphArgName),
		requires:       schema.DirectiveOptionalFieldSetArgument(d, specs.JoinFieldRequiresArgName),
		provides:       schema.DirectiveOptionalFieldSetArgument(d, specs.JoinFieldProvidesArgName),
		typeOverride:   schema.DirectiveOptionalStringArgument(d, specs.JoinFieldTypeArgName),
		external:       schema.DirectiveRequiredBooleanArgument(d, specs.JoinFieldExternalArgName, false),
		override:       schema.DirectiveOptionalStringArgument(d, specs.JoinFieldOverrideArgName),
		usedOverridden: schema.DirectiveRequiredBooleanArgument(d, specs.JoinFieldUsedOverriddenArgName, false),
	}
}

// extractObjectTypeContent fills in every object type's fields and
// `implements` edges across the subgraphs it was placed into.
func extractObjectTypeContent(v *Validated, gs *graphSet, infos []*typeInfo) error {
	fieldDirectiveName := v.JoinLink.DirectiveNameInSchema(specs.JoinFieldDirectiveName)
	implementsDirectiveName := v.JoinLink.DirectiveNameInSchema(specs.JoinImplementsDirectiveName)

	for _, info := range infos {
		def := v.Schema.AST.Types[info.name]

		if err := extractImplements(gs, info, def, implementsDirectiveName); err != nil {
			return err
		}
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				// __schema/__type, added to the query root by gqlparser's validator.
				continue
			}
			if err := extractField(gs, info, f, fieldDirectiveName, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractInterfaceTypeContent mirrors extractObjectTypeContent for interface
// types, which are never marked shareable (shareability is meaningless on an
// interface field) and may materialize as interface-object types.
func extractInterfaceTypeContent(v *Validated, gs *graphSet, infos []*typeInfo) error {
	fieldDirectiveName := v.JoinLink.DirectiveNameInSchema(specs.JoinFieldDirectiveName)
	implementsDirectiveName := v.JoinLink.DirectiveNameInSchema(specs.JoinImplementsDirectiveName)

	for _, info := range infos {
		def := v.Schema.AST.Types[info.name]

		if err := extractImplements(gs, info, def, implementsDirectiveName); err != nil {
			return err
		}
		for _, f := range def.Fields {
			if err := extractField(gs, info, f, fieldDirectiveName, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func extractImplements(gs *graphSet, info *typeInfo, def *ast.Definition, implementsDirectiveName string) error {
	for _, d := range def.Directives {
		if d.Name != implementsDirectiveName {
			continue
		}
		graphName := schema.DirectiveRequiredStringArgument(d, specs.JoinImplementsGraphArgName)
		iface := schema.DirectiveRequiredStringArgument(d, specs.JoinImplementsInterfaceArgName)
		if _, ok := info.has(graphName); !ok {
			return ferrors.NewInvalidSupergraph(fmt.Sprintf(
				"@join__implements cannot exist on %s for subgraph %s without type-level @join__type", info.name, graphName,
			), nil)
		}
		g, err := gs.get(graphName)
		if err != nil {
			return err
		}
		subgraphDef := g.doc.typeOf(info.name)
		subgraphDef.Interfaces = appendUnique(subgraphDef.Interfaces, iface)
	}
	return nil
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

func extractField(gs *graphSet, info *typeInfo, f *ast.FieldDefinition, fieldDirectiveName string, shareableEligible bool) error {
	var apps []joinFieldApplication
	for _, d := range f.Directives {
		if d.Name == fieldDirectiveName {
			apps = append(apps, decodeJoinFieldApplication(d))
		}
	}

	if len(apps) == 0 {
		isShareable := shareableEligible && len(info.members) > 1
		for _, m := range info.members {
			g, err := gs.get(m.enumValue)
			if err != nil {
				return err
			}
			if err := addSubgraphField(g, info.name, f, isShareable, nil); err != nil {
				return err
			}
		}
		return nil
	}

	isShareable := false
	if shareableEligible {
		count := 0
		for _, app := range apps {
			if !app.external && !app.usedOverridden {
				count++
			}
		}
		isShareable = count > 1
	}

	for _, app := range apps {
		if app.graph == nil {
			continue
		}
		if _, ok := info.has(*app.graph); !ok {
			return ferrors.NewInvalidSupergraph(fmt.Sprintf(
				"@join__field cannot exist on %s.%s for subgraph %s without type-level @join__type", info.name, f.Name, *app.graph,
			), nil)
		}
		g, err := gs.get(*app.graph)
		if err != nil {
			return err
		}
		if err := addSubgraphField(g, info.name, f, isShareable, &app); err != nil {
			return err
		}
	}
	return nil
}

// addSubgraphField materializes one field of a type already present in
// subgraph g, applying the field-level directives a @join__field
// application (if any) calls for.
func addSubgraphField(g *graph, typeName string, f *ast.FieldDefinition, isShareable bool, app *joinFieldApplication) error {
	fieldType := f.Type
	if app != nil && app.typeOverride != nil {
		t, err := schema.DecodeType(*app.typeOverride)
		if err != nil {
			return err
		}
		fieldType = t
	}

	subgraphField := &ast.FieldDefinition{Name: f.Name, Type: fieldType}
	for _, arg := range f.Arguments {
		subgraphField.Arguments = append(subgraphField.Arguments, &ast.ArgumentDefinition{
			Name: arg.Name, Type: arg.Type, DefaultValue: arg.DefaultValue,
		})
	}

	fedLink := federationLinkInSubgraph()
	external := app != nil && app.external
	usedOverridden := app != nil && app.usedOverridden

	if app != nil && app.requires != nil {
		subgraphField.Directives = append(subgraphField.Directives, g.federation.RequiresDirective(fedLink, *app.requires))
	}
	if app != nil && app.provides != nil {
		subgraphField.Directives = append(subgraphField.Directives, g.federation.ProvidesDirective(fedLink, *app.provides))
	}
	if external {
		subgraphField.Directives = append(subgraphField.Directives, g.federation.ExternalDirective(fedLink, nil))
	}
	if usedOverridden {
		overriddenReason := "[overridden]"
		subgraphField.Directives = append(subgraphField.Directives, g.federation.ExternalDirective(fedLink, &overriddenReason))
	}
	if app != nil && app.override != nil {
		subgraphField.Directives = append(subgraphField.Directives, g.federation.OverrideDirective(fedLink, *app.override))
	}
	if isShareable && !external && !usedOverridden {
		subgraphField.Directives = append(subgraphField.Directives, g.federation.ShareableDirective(fedLink))
	}

	def := g.doc.typeOf(typeName)
	if def == nil {
		return fmt.Errorf("addSubgraphField: %q not yet present in subgraph %q", typeName, g.doc.name)
	}
	if def.Fields.ForName(f.Name) != nil {
		return fmt.Errorf("field %q already exists in type %q (subgraph %q)", f.Name, typeName, g.doc.name)
	}
	def.Fields = append(def.Fields, subgraphField)
	return nil
}

// extractUnionTypeContent fills in union membership: explicit
// `@join__unionMember` applications if the linked join spec carries them,
// else every member present in that subgraph.
func extractUnionTypeContent(v *Validated, gs *graphSet, infos []*typeInfo) error {
	supportsUnionMember := v.Join.SupportsUnionMemberAndEnumValue()
	var unionMemberDirectiveName string
	if supportsUnionMember {
		unionMemberDirectiveName = v.JoinLink.DirectiveNameInSchema(specs.JoinUnionMemberDirectiveName)
	}

	for _, info := range infos {
		def := v.Schema.AST.Types[info.name]

		var apps []struct {
			graph  string
			member string
		}
		if supportsUnionMember {
			for _, d := range def.Directives {
				if d.Name != unionMemberDirectiveName {
					continue
				}
				apps = append(apps, struct {
					graph  string
					member string
				}{
					graph:  schema.DirectiveRequiredStringArgument(d, specs.JoinUnionMemberGraphArgName),
					member: schema.DirectiveRequiredStringArgument(d, specs.JoinUnionMemberMemberArgName),
				})
			}
		}

		if len(apps) == 0 {
			for _, m := range info.members {
				g, err := gs.get(m.enumValue)
				if err != nil {
					return err
				}
				subgraphDef := g.doc.typeOf(info.name)
				for _, member := range def.Types {
					if g.doc.typeOf(member) != nil {
						subgraphDef.Types = appendUnique(subgraphDef.Types, member)
					}
				}
			}
			continue
		}

		for _, app := range apps {
			if _, ok := info.has(app.graph); !ok {
				return ferrors.NewInvalidSupergraph(fmt.Sprintf(
					"@join__unionMember cannot exist on %s for subgraph %s without type-level @join__type", info.name, app.graph,
				), nil)
			}
			g, err := gs.get(app.graph)
			if err != nil {
				return err
			}
			subgraphDef := g.doc.typeOf(info.name)
			subgraphDef.Types = appendUnique(subgraphDef.Types, app.member)
		}
	}
	return nil
}

// extractEnumTypeContent fills in enum value membership: explicit
// `@join__enumValue` applications if the linked join spec carries them,
// else every value.
func extractEnumTypeContent(v *Validated, gs *graphSet, infos []*typeInfo) error {
	supportsEnumValue := v.Join.SupportsUnionMemberAndEnumValue()
	var enumValueDirectiveName string
	if supportsEnumValue {
		enumValueDirectiveName = v.JoinLink.DirectiveNameInSchema(specs.JoinEnumValueDirectiveName)
	}

	for _, info := range infos {
		def := v.Schema.AST.Types[info.name]

		for _, value := range def.EnumValues {
			var graphs []string
			if supportsEnumValue {
				for _, d := range value.Directives {
					if d.Name != enumValueDirectiveName {
						continue
					}
					graphs = append(graphs, schema.DirectiveRequiredStringArgument(d, specs.JoinEnumValueGraphArgName))
				}
			}
			if len(graphs) == 0 {
				for _, m := range info.members {
					graphs = append(graphs, m.enumValue)
				}
			}
			for _, graphName := range graphs {
				if _, ok := info.has(graphName); !ok {
					return ferrors.NewInvalidSupergraph(fmt.Sprintf(
						"@join__enumValue cannot exist on %s.%s for subgraph %s without type-level @join__type", info.name, value.Name, graphName,
					), nil)
				}
				g, err := gs.get(graphName)
				if err != nil {
					return err
				}
				subgraphDef := g.doc.typeOf(info.name)
				if subgraphDef.EnumValues.ForName(value.Name) != nil {
					continue
				}
				subgraphDef.EnumValues = append(subgraphDef.EnumValues, &ast.EnumValueDefinition{Name: value.Name})
			}
		}
	}
	return nil
}

// extractInputObjectTypeContent fills in input-object fields, using the
// same `@join__field` placement rules as object/interface fields (minus
// shareability, which does not apply to input fields).
func extractInputObjectTypeContent(v *Validated, gs *graphSet, infos []*typeInfo) error {
	fieldDirectiveName := v.JoinLink.DirectiveNameInSchema(specs.JoinFieldDirectiveName)

	for _, info := range infos {
		def := v.Schema.AST.Types[info.name]

		for _, f := range def.Fields {
			var apps []joinFieldApplication
			for _, d := range f.Directives {
				if d.Name == fieldDirectiveName {
					apps = append(apps, decodeJoinFieldApplication(d))
				}
			}

			if len(apps) == 0 {
				for _, m := range info.members {
					g, err := gs.get(m.enumValue)
					if err != nil {
						return err
					}
					if err := addSubgraphInputField(g, info.name, f, nil); err != nil {
						return err
					}
				}
				continue
			}

			for _, app := range apps {
				if app.graph == nil {
					continue
				}
				if _, ok := info.has(*app.graph); !ok {
					return ferrors.NewInvalidSupergraph(fmt.Sprintf(
						"@join__field cannot exist on %s.%s for subgraph %s without type-level @join__type", info.name, f.Name, *app.graph,
					), nil)
				}
				g, err := gs.get(*app.graph)
				if err != nil {
					return err
				}
				if err := addSubgraphInputField(g, info.name, f, &app); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func addSubgraphInputField(g *graph, typeName string, f *ast.FieldDefinition, app *joinFieldApplication) error {
	fieldType := f.Type
	if app != nil && app.typeOverride != nil {
		t, err := schema.DecodeType(*app.typeOverride)
		if err != nil {
			return err
		}
		fieldType = t
	}

	def := g.doc.typeOf(typeName)
	if def == nil {
		return fmt.Errorf("addSubgraphInputField: %q not yet present in subgraph %q", typeName, g.doc.name)
	}
	if def.Fields.ForName(f.Name) != nil {
		return fmt.Errorf("input field %q already exists in type %q (subgraph %q)", f.Name, typeName, g.doc.name)
	}
	def.Fields = append(def.Fields, &ast.FieldDefinition{
		Name: f.Name, Type: fieldType, DefaultValue: f.DefaultValue,
	})
	return nil
}
