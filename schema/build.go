package schema

import "github.com/vektah/gqlparser/v2/ast"

func kindOfSchema(s *ast.Schema) func(string) TypeKind {
	return func(name string) TypeKind {
		def, ok := s.Types[name]
		if !ok {
			return KindUnknown
		}
		switch def.Kind {
		case ast.Scalar:
			return KindScalar
		case ast.Object:
			return KindObject
		case ast.Interface:
			return KindInterface
		case ast.Union:
			return KindUnion
		case ast.Enum:
			return KindEnum
		case ast.InputObject:
			return KindInputObject
		default:
			return KindUnknown
		}
	}
}

// BuildReferencers walks a validated schema and builds its Referencers
// index in two phases: a shallow pass allocating one empty bucket per named
// type/directive, then a deep pass recording every directive application
// and type reference. See spec.md §4.3.
func BuildReferencers(s *ast.Schema) *Referencers {
	r := newReferencers()
	kindOf := kindOfSchema(s)

	for name, def := range s.Types {
		switch def.Kind {
		case ast.Scalar:
			r.ensureScalar(name)
		case ast.Object:
			r.ensureObject(name)
		case ast.Interface:
			r.ensureInterface(name)
		case ast.Union:
			r.ensureUnion(name)
		case ast.Enum:
			r.ensureEnum(name)
		case ast.InputObject:
			r.ensureInputObject(name)
		}
	}
	for name := range s.Directives {
		r.ensureDirective(name)
	}

	for name, def := range s.Types {
		switch def.Kind {
		case ast.Scalar:
			walkDirectives(r, def.Directives, ScalarTypePosition{Name: name})
		case ast.Object:
			walkObject(r, kindOf, name, def)
		case ast.Interface:
			walkInterface(r, kindOf, name, def)
		case ast.Union:
			walkUnion(r, kindOf, name, def)
		case ast.Enum:
			walkEnum(r, name, def)
		case ast.InputObject:
			walkInputObject(r, kindOf, name, def)
		}
	}
	for name, dd := range s.Directives {
		for _, arg := range dd.Arguments {
			r.registerTypeReference(kindOf, arg.Type.Name(), DirectiveArgPosition{Directive: name, Arg: arg.Name})
		}
	}

	if s.Query != nil {
		registerRoot(r, RootQuery, s.Query.Name)
	}
	if s.Mutation != nil {
		registerRoot(r, RootMutation, s.Mutation.Name)
	}
	if s.Subscription != nil {
		registerRoot(r, RootSubscription, s.Subscription.Name)
	}

	return r
}

func registerRoot(r *Referencers, root RootKind, typeName string) {
	b := r.ensureObject(typeName)
	b.SchemaRoots.Add(SchemaRootPosition{Root: root})
}

func walkDirectives(r *Referencers, dirs ast.DirectiveList, owner Position) {
	for _, d := range dirs {
		r.registerDirectiveApplication(d.Name, owner)
	}
}

func walkObject(r *Referencers, kindOf func(string) TypeKind, name string, def *ast.Definition) {
	owner := ObjectTypePosition{Name: name}
	walkDirectives(r, def.Directives, owner)
	for _, iface := range def.Interfaces {
		b := r.ensureInterface(iface)
		b.ObjectTypes.Add(owner)
	}
	for _, f := range def.Fields {
		fieldPos := ObjectFieldPosition{Type: name, Field: f.Name}
		walkDirectives(r, f.Directives, fieldPos)
		r.registerTypeReference(kindOf, f.Type.Name(), fieldPos)
		for _, arg := range f.Arguments {
			argPos := ObjectFieldArgPosition{Type: name, Field: f.Name, Arg: arg.Name}
			walkDirectives(r, arg.Directives, argPos)
			r.registerTypeReference(kindOf, arg.Type.Name(), argPos)
		}
	}
}

func walkInterface(r *Referencers, kindOf func(string) TypeKind, name string, def *ast.Definition) {
	owner := InterfaceTypePosition{Name: name}
	walkDirectives(r, def.Directives, owner)
	for _, iface := range def.Interfaces {
		b := r.ensureInterface(iface)
		b.InterfaceTypes.Add(owner)
	}
	for _, f := range def.Fields {
		fieldPos := InterfaceFieldPosition{Type: name, Field: f.Name}
		walkDirectives(r, f.Directives, fieldPos)
		r.registerTypeReference(kindOf, f.Type.Name(), fieldPos)
		for _, arg := range f.Arguments {
			argPos := InterfaceFieldArgPosition{Type: name, Field: f.Name, Arg: arg.Name}
			walkDirectives(r, arg.Directives, argPos)
			r.registerTypeReference(kindOf, arg.Type.Name(), argPos)
		}
	}
}

func walkUnion(r *Referencers, kindOf func(string) TypeKind, name string, def *ast.Definition) {
	owner := UnionTypePosition{Name: name}
	walkDirectives(r, def.Directives, owner)
	for _, member := range def.Types {
		r.registerTypeReference(kindOf, member, owner)
	}
}

func walkEnum(r *Referencers, name string, def *ast.Definition) {
	owner := EnumTypePosition{Name: name}
	walkDirectives(r, def.Directives, owner)
	for _, v := range def.EnumValues {
		walkDirectives(r, v.Directives, EnumValuePosition{Type: name, Value: v.Name})
	}
}

func walkInputObject(r *Referencers, kindOf func(string) TypeKind, name string, def *ast.Definition) {
	owner := InputObjectTypePosition{Name: name}
	walkDirectives(r, def.Directives, owner)
	for _, f := range def.Fields {
		fieldPos := InputObjectFieldPosition{Type: name, Field: f.Name}
		walkDirectives(r, f.Directives, fieldPos)
		r.registerTypeReference(kindOf, f.Type.Name(), fieldPos)
	}
}
