// Package schema is the in-memory schema model: a thin wrapper around
// gqlparser's validated *ast.Schema augmented with a LinksMetadata and a
// Referencers inverse index, plus the mutation operations (Remove,
// RemoveRecursive, RemoveDirective, RemoveDirectiveName) that keep that
// index consistent as the schema changes.
package schema

import "fmt"

// RootKind names one of the three schema root operation types.
type RootKind int

const (
	RootQuery RootKind = iota
	RootMutation
	RootSubscription
)

func (k RootKind) String() string {
	switch k {
	case RootQuery:
		return "query"
	case RootMutation:
		return "mutation"
	case RootSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// Position uniquely names a location within a schema: a type, field,
// argument, directive, enum value, or the schema definition itself. It is a
// value type, safe to use as a map/set key.
type Position interface {
	fmt.Stringer
	isPosition()
}

type SchemaDefinitionPosition struct{}

func (SchemaDefinitionPosition) isPosition() {}
func (SchemaDefinitionPosition) String() string { return "schema" }

type SchemaRootPosition struct{ Root RootKind }

func (SchemaRootPosition) isPosition() {}
func (p SchemaRootPosition) String() string { return fmt.Sprintf("schema.%s", p.Root) }
func (p SchemaRootPosition) Parent() Position { return SchemaDefinitionPosition{} }

type ScalarTypePosition struct{ Name string }

func (ScalarTypePosition) isPosition()        {}
func (p ScalarTypePosition) String() string { return p.Name }

type ObjectTypePosition struct{ Name string }

func (ObjectTypePosition) isPosition()        {}
func (p ObjectTypePosition) String() string { return p.Name }

type ObjectFieldPosition struct{ Type, Field string }

func (ObjectFieldPosition) isPosition() {}
func (p ObjectFieldPosition) String() string { return fmt.Sprintf("%s.%s", p.Type, p.Field) }
func (p ObjectFieldPosition) Parent() Position { return ObjectTypePosition{Name: p.Type} }

type ObjectFieldArgPosition struct{ Type, Field, Arg string }

func (ObjectFieldArgPosition) isPosition() {}
func (p ObjectFieldArgPosition) String() string {
	return fmt.Sprintf("%s.%s(%s:)", p.Type, p.Field, p.Arg)
}
func (p ObjectFieldArgPosition) Parent() Position {
	return ObjectFieldPosition{Type: p.Type, Field: p.Field}
}

type InterfaceTypePosition struct{ Name string }

func (InterfaceTypePosition) isPosition()        {}
func (p InterfaceTypePosition) String() string { return p.Name }

type InterfaceFieldPosition struct{ Type, Field string }

func (InterfaceFieldPosition) isPosition() {}
func (p InterfaceFieldPosition) String() string { return fmt.Sprintf("%s.%s", p.Type, p.Field) }
func (p InterfaceFieldPosition) Parent() Position { return InterfaceTypePosition{Name: p.Type} }

type InterfaceFieldArgPosition struct{ Type, Field, Arg string }

func (InterfaceFieldArgPosition) isPosition() {}
func (p InterfaceFieldArgPosition) String() string {
	return fmt.Sprintf("%s.%s(%s:)", p.Type, p.Field, p.Arg)
}
func (p InterfaceFieldArgPosition) Parent() Position {
	return InterfaceFieldPosition{Type: p.Type, Field: p.Field}
}

type UnionTypePosition struct{ Name string }

func (UnionTypePosition) isPosition()        {}
func (p UnionTypePosition) String() string { return p.Name }

type EnumTypePosition struct{ Name string }

func (EnumTypePosition) isPosition()        {}
func (p EnumTypePosition) String() string { return p.Name }

type EnumValuePosition struct{ Type, Value string }

func (EnumValuePosition) isPosition() {}
func (p EnumValuePosition) String() string { return fmt.Sprintf("%s.%s", p.Type, p.Value) }
func (p EnumValuePosition) Parent() Position { return EnumTypePosition{Name: p.Type} }

type InputObjectTypePosition struct{ Name string }

func (InputObjectTypePosition) isPosition()        {}
func (p InputObjectTypePosition) String() string { return p.Name }

type InputObjectFieldPosition struct{ Type, Field string }

func (InputObjectFieldPosition) isPosition() {}
func (p InputObjectFieldPosition) String() string { return fmt.Sprintf("%s.%s", p.Type, p.Field) }
func (p InputObjectFieldPosition) Parent() Position {
	return InputObjectTypePosition{Name: p.Type}
}

type DirectiveDefinitionPosition struct{ Name string }

func (DirectiveDefinitionPosition) isPosition()        {}
func (p DirectiveDefinitionPosition) String() string { return "@" + p.Name }

type DirectiveArgPosition struct{ Directive, Arg string }

func (DirectiveArgPosition) isPosition() {}
func (p DirectiveArgPosition) String() string { return fmt.Sprintf("@%s(%s:)", p.Directive, p.Arg) }
func (p DirectiveArgPosition) Parent() Position {
	return DirectiveDefinitionPosition{Name: p.Directive}
}
