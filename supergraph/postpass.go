package supergraph

import (
	"github.com/vektah/gqlparser/v2/ast"

	"go.appointy.com/fedcore/specs"
)

// executableDirectiveLocations is the set of locations a directive
// definition must target at least one of to be considered "executable":
// usable inside an operation, as opposed to only annotating the type
// system. Only executable directives are copied into subgraphs, since
// subgraph schemas never carry type-system directive applications for
// directives they didn't themselves define.
var executableDirectiveLocations = map[ast.DirectiveLocation]bool{
	ast.LocationQuery:              true,
	ast.LocationMutation:           true,
	ast.LocationSubscription:       true,
	ast.LocationField:              true,
	ast.LocationFragmentDefinition: true,
	ast.LocationFragmentSpread:     true,
	ast.LocationInlineFragment:     true,
	ast.LocationVariableDefinition: true,
}

// copyExecutableDirectiveDefinitions copies every executable directive
// definition from the supergraph into every subgraph, stripped down to only
// its executable locations. Subgraph operations may use any of these
// directives, so every subgraph needs to know they exist.
func copyExecutableDirectiveDefinitions(v *Validated, gs *graphSet) {
	var defs []*ast.DirectiveDefinition
	for _, dd := range v.Schema.AST.Directives {
		var locations []ast.DirectiveLocation
		for _, loc := range dd.Locations {
			if executableDirectiveLocations[loc] {
				locations = append(locations, loc)
			}
		}
		if len(locations) == 0 {
			continue
		}
		copied := &ast.DirectiveDefinition{
			Name:         dd.Name,
			IsRepeatable: dd.IsRepeatable,
			Locations:    locations,
		}
		for _, arg := range dd.Arguments {
			copied.Arguments = append(copied.Arguments, &ast.ArgumentDefinition{
				Name: arg.Name, Type: arg.Type, DefaultValue: arg.DefaultValue,
			})
		}
		defs = append(defs, copied)
	}

	for _, enumValue := range gs.order {
		g := gs.byEnumValue[enumValue]
		g.doc.doc.Directives = append(g.doc.doc.Directives, defs...)
	}
}

// pruneEmptyTypes removes every object, interface, union or input-object
// type left with no fields (or, for unions, no members) after content
// extraction: a type @join__type placed in a subgraph without ever placing
// any of its fields there didn't really belong to that subgraph.
//
// This walks the subgraph's own raw definitions directly rather than going
// through a validated schema.Schema/Referencers index: at this point in
// extraction the document is not yet guaranteed to validate (a subgraph may
// still be missing its Query root), so there is nothing to build an index
// from yet. Removal cascades: a type left empty only because something it
// referenced was itself removed is pruned in the same pass.
func pruneEmptyTypes(doc *subgraphDoc) {
	for {
		removed := false
		var name string
		for n, def := range doc.types {
			if isEmptyType(def) {
				name, removed = n, true
				break
			}
		}
		if !removed {
			return
		}
		removeTypeRecursive(doc, name)
	}
}

func isEmptyType(def *ast.Definition) bool {
	switch def.Kind {
	case ast.Object, ast.Interface, ast.InputObject:
		return len(def.Fields) == 0
	case ast.Union:
		return len(def.Types) == 0
	default:
		return false
	}
}

// removeTypeRecursive deletes a type and, transitively, every type that is
// now empty as a result (an object whose last field referenced the removed
// type, a union whose last member was removed, and so on). A removed type
// may live in either doc.doc.Definitions or doc.doc.Extensions, depending on
// whether its `@join__type` set extension: true.
func removeTypeRecursive(doc *subgraphDoc, name string) {
	if _, ok := doc.types[name]; !ok {
		return
	}
	delete(doc.types, name)

	doc.doc.Definitions = removeDefinition(doc.doc.Definitions, name)
	doc.doc.Extensions = removeDefinition(doc.doc.Extensions, name)

	pruneDanglingReferences(doc.doc.Definitions, name)
	pruneDanglingReferences(doc.doc.Extensions, name)

	for n, def := range doc.types {
		if isEmptyType(def) {
			removeTypeRecursive(doc, n)
			return
		}
	}
}

func removeDefinition(defs []*ast.Definition, name string) []*ast.Definition {
	var kept []*ast.Definition
	for _, def := range defs {
		if def.Name == name {
			continue
		}
		kept = append(kept, def)
	}
	return kept
}

// pruneDanglingReferences strips any field or union member in defs that
// pointed at the just-removed type name.
func pruneDanglingReferences(defs []*ast.Definition, name string) {
	for _, def := range defs {
		switch def.Kind {
		case ast.Object, ast.Interface, ast.InputObject:
			var fields ast.FieldList
			for _, f := range def.Fields {
				if f.Type.Name() == name {
					continue
				}
				fields = append(fields, f)
			}
			if len(fields) != len(def.Fields) {
				def.Fields = fields
			}
		case ast.Union:
			def.Types = removeString(def.Types, name)
		}
	}
}

func removeString(list []string, item string) []string {
	var out []string
	for _, s := range list {
		if s != item {
			out = append(out, s)
		}
	}
	return out
}

// addFederationOperations adds the federation surface every subgraph needs:
// `_Any`, `_Service { sdl }`, `_service`, and (only if the subgraph defines
// at least one `@key`-bearing type) `_Entity` and `_entities`. Guarantees a
// Query root exists.
func addFederationOperations(g *graph) {
	doc := g.doc

	doc.ensureType(specs.FederationAnyTypeName, ast.Scalar)

	serviceType := doc.ensureType(specs.FederationServiceTypeName, ast.Object)
	if serviceType.Fields.ForName(specs.FederationSDLFieldName) == nil {
		serviceType.Fields = append(serviceType.Fields, &ast.FieldDefinition{
			Name: specs.FederationSDLFieldName,
			Type: ast.NamedType("String", nil),
		})
	}

	keyDirectiveName := specs.FederationKeyDirectiveName
	var entityMembers []string
	collectEntityMembers := func(defs []*ast.Definition) {
		for _, def := range defs {
			if def.Kind != ast.Object {
				continue
			}
			for _, d := range def.Directives {
				if d.Name == keyDirectiveName {
					entityMembers = append(entityMembers, def.Name)
					break
				}
			}
		}
	}
	collectEntityMembers(doc.doc.Definitions)
	collectEntityMembers(doc.doc.Extensions)
	isEntityType := len(entityMembers) > 0
	if isEntityType {
		entityType := doc.ensureType(specs.FederationEntityTypeName, ast.Union)
		entityType.Types = entityMembers
	}

	queryType := doc.ensureType("Query", ast.Object)

	if isEntityType {
		if queryType.Fields.ForName(specs.FederationEntitiesFieldName) == nil {
			queryType.Fields = append(queryType.Fields, &ast.FieldDefinition{
				Name: specs.FederationEntitiesFieldName,
				Arguments: ast.ArgumentDefinitionList{{
					Name: specs.FederationRepresentationsArgName,
					Type: ast.NonNullListType(ast.NonNullNamedType(specs.FederationAnyTypeName, nil), nil),
				}},
				Type: ast.NonNullListType(ast.NamedType(specs.FederationEntityTypeName, nil), nil),
			})
		}
	} else {
		var fields ast.FieldList
		for _, f := range queryType.Fields {
			if f.Name == specs.FederationEntitiesFieldName {
				continue
			}
			fields = append(fields, f)
		}
		queryType.Fields = fields
	}

	if queryType.Fields.ForName(specs.FederationServiceFieldName) == nil {
		queryType.Fields = append(queryType.Fields, &ast.FieldDefinition{
			Name: specs.FederationServiceFieldName,
			Type: ast.NonNullNamedType(specs.FederationServiceTypeName, nil),
		})
	}
}
