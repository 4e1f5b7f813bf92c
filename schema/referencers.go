package schema

import "go.appointy.com/fedcore/orderedset"

// ScalarTypeReferencers is every position that references a scalar type.
type ScalarTypeReferencers struct {
	ObjectFields       *orderedset.Set[ObjectFieldPosition]
	ObjectFieldArgs    *orderedset.Set[ObjectFieldArgPosition]
	InterfaceFields    *orderedset.Set[InterfaceFieldPosition]
	InterfaceFieldArgs *orderedset.Set[InterfaceFieldArgPosition]
	InputObjectFields  *orderedset.Set[InputObjectFieldPosition]
	DirectiveArgs      *orderedset.Set[DirectiveArgPosition]
}

func newScalarTypeReferencers() *ScalarTypeReferencers {
	return &ScalarTypeReferencers{
		ObjectFields:       orderedset.New[ObjectFieldPosition](),
		ObjectFieldArgs:    orderedset.New[ObjectFieldArgPosition](),
		InterfaceFields:    orderedset.New[InterfaceFieldPosition](),
		InterfaceFieldArgs: orderedset.New[InterfaceFieldArgPosition](),
		InputObjectFields:  orderedset.New[InputObjectFieldPosition](),
		DirectiveArgs:      orderedset.New[DirectiveArgPosition](),
	}
}

func (r *ScalarTypeReferencers) isEmpty() bool {
	return r.ObjectFields.Len() == 0 && r.ObjectFieldArgs.Len() == 0 &&
		r.InterfaceFields.Len() == 0 && r.InterfaceFieldArgs.Len() == 0 &&
		r.InputObjectFields.Len() == 0 && r.DirectiveArgs.Len() == 0
}

// ObjectTypeReferencers is every position that references an object type.
type ObjectTypeReferencers struct {
	SchemaRoots     *orderedset.Set[SchemaRootPosition]
	ObjectFields    *orderedset.Set[ObjectFieldPosition]
	InterfaceFields *orderedset.Set[InterfaceFieldPosition]
	UnionTypes      *orderedset.Set[UnionTypePosition]
}

func newObjectTypeReferencers() *ObjectTypeReferencers {
	return &ObjectTypeReferencers{
		SchemaRoots:     orderedset.New[SchemaRootPosition](),
		ObjectFields:    orderedset.New[ObjectFieldPosition](),
		InterfaceFields: orderedset.New[InterfaceFieldPosition](),
		UnionTypes:      orderedset.New[UnionTypePosition](),
	}
}

func (r *ObjectTypeReferencers) isEmpty() bool {
	return r.SchemaRoots.Len() == 0 && r.ObjectFields.Len() == 0 &&
		r.InterfaceFields.Len() == 0 && r.UnionTypes.Len() == 0
}

// InterfaceTypeReferencers is every position that references an interface type.
type InterfaceTypeReferencers struct {
	ObjectTypes     *orderedset.Set[ObjectTypePosition]
	ObjectFields    *orderedset.Set[ObjectFieldPosition]
	InterfaceTypes  *orderedset.Set[InterfaceTypePosition]
	InterfaceFields *orderedset.Set[InterfaceFieldPosition]
}

func newInterfaceTypeReferencers() *InterfaceTypeReferencers {
	return &InterfaceTypeReferencers{
		ObjectTypes:     orderedset.New[ObjectTypePosition](),
		ObjectFields:    orderedset.New[ObjectFieldPosition](),
		InterfaceTypes:  orderedset.New[InterfaceTypePosition](),
		InterfaceFields: orderedset.New[InterfaceFieldPosition](),
	}
}

func (r *InterfaceTypeReferencers) isEmpty() bool {
	return r.ObjectTypes.Len() == 0 && r.ObjectFields.Len() == 0 &&
		r.InterfaceTypes.Len() == 0 && r.InterfaceFields.Len() == 0
}

// UnionTypeReferencers is every position that references a union type.
type UnionTypeReferencers struct {
	ObjectFields    *orderedset.Set[ObjectFieldPosition]
	InterfaceFields *orderedset.Set[InterfaceFieldPosition]
}

func newUnionTypeReferencers() *UnionTypeReferencers {
	return &UnionTypeReferencers{
		ObjectFields:    orderedset.New[ObjectFieldPosition](),
		InterfaceFields: orderedset.New[InterfaceFieldPosition](),
	}
}

func (r *UnionTypeReferencers) isEmpty() bool {
	return r.ObjectFields.Len() == 0 && r.InterfaceFields.Len() == 0
}

// EnumTypeReferencers is every position that references an enum type.
type EnumTypeReferencers struct {
	ObjectFields       *orderedset.Set[ObjectFieldPosition]
	ObjectFieldArgs    *orderedset.Set[ObjectFieldArgPosition]
	InterfaceFields    *orderedset.Set[InterfaceFieldPosition]
	InterfaceFieldArgs *orderedset.Set[InterfaceFieldArgPosition]
	InputObjectFields  *orderedset.Set[InputObjectFieldPosition]
	DirectiveArgs      *orderedset.Set[DirectiveArgPosition]
}

func newEnumTypeReferencers() *EnumTypeReferencers {
	return &EnumTypeReferencers{
		ObjectFields:       orderedset.New[ObjectFieldPosition](),
		ObjectFieldArgs:    orderedset.New[ObjectFieldArgPosition](),
		InterfaceFields:    orderedset.New[InterfaceFieldPosition](),
		InterfaceFieldArgs: orderedset.New[InterfaceFieldArgPosition](),
		InputObjectFields:  orderedset.New[InputObjectFieldPosition](),
		DirectiveArgs:      orderedset.New[DirectiveArgPosition](),
	}
}

func (r *EnumTypeReferencers) isEmpty() bool {
	return r.ObjectFields.Len() == 0 && r.ObjectFieldArgs.Len() == 0 &&
		r.InterfaceFields.Len() == 0 && r.InterfaceFieldArgs.Len() == 0 &&
		r.InputObjectFields.Len() == 0 && r.DirectiveArgs.Len() == 0
}

// InputObjectTypeReferencers is every position that references an input object type.
type InputObjectTypeReferencers struct {
	ObjectFieldArgs    *orderedset.Set[ObjectFieldArgPosition]
	InterfaceFieldArgs *orderedset.Set[InterfaceFieldArgPosition]
	InputObjectFields  *orderedset.Set[InputObjectFieldPosition]
	DirectiveArgs      *orderedset.Set[DirectiveArgPosition]
}

func newInputObjectTypeReferencers() *InputObjectTypeReferencers {
	return &InputObjectTypeReferencers{
		ObjectFieldArgs:    orderedset.New[ObjectFieldArgPosition](),
		InterfaceFieldArgs: orderedset.New[InterfaceFieldArgPosition](),
		InputObjectFields:  orderedset.New[InputObjectFieldPosition](),
		DirectiveArgs:      orderedset.New[DirectiveArgPosition](),
	}
}

func (r *InputObjectTypeReferencers) isEmpty() bool {
	return r.ObjectFieldArgs.Len() == 0 && r.InterfaceFieldArgs.Len() == 0 &&
		r.InputObjectFields.Len() == 0 && r.DirectiveArgs.Len() == 0
}

// DirectiveReferencers is every position that applies a given directive.
type DirectiveReferencers struct {
	Schema             bool
	ScalarTypes        *orderedset.Set[ScalarTypePosition]
	ObjectTypes        *orderedset.Set[ObjectTypePosition]
	ObjectFields       *orderedset.Set[ObjectFieldPosition]
	ObjectFieldArgs    *orderedset.Set[ObjectFieldArgPosition]
	InterfaceTypes     *orderedset.Set[InterfaceTypePosition]
	InterfaceFields    *orderedset.Set[InterfaceFieldPosition]
	InterfaceFieldArgs *orderedset.Set[InterfaceFieldArgPosition]
	UnionTypes         *orderedset.Set[UnionTypePosition]
	EnumTypes          *orderedset.Set[EnumTypePosition]
	EnumValues         *orderedset.Set[EnumValuePosition]
	InputObjectTypes   *orderedset.Set[InputObjectTypePosition]
	InputObjectFields  *orderedset.Set[InputObjectFieldPosition]
	DirectiveArgs      *orderedset.Set[DirectiveArgPosition]
}

func newDirectiveReferencers() *DirectiveReferencers {
	return &DirectiveReferencers{
		ScalarTypes:        orderedset.New[ScalarTypePosition](),
		ObjectTypes:        orderedset.New[ObjectTypePosition](),
		ObjectFields:       orderedset.New[ObjectFieldPosition](),
		ObjectFieldArgs:    orderedset.New[ObjectFieldArgPosition](),
		InterfaceTypes:     orderedset.New[InterfaceTypePosition](),
		InterfaceFields:    orderedset.New[InterfaceFieldPosition](),
		InterfaceFieldArgs: orderedset.New[InterfaceFieldArgPosition](),
		UnionTypes:         orderedset.New[UnionTypePosition](),
		EnumTypes:          orderedset.New[EnumTypePosition](),
		EnumValues:         orderedset.New[EnumValuePosition](),
		InputObjectTypes:   orderedset.New[InputObjectTypePosition](),
		InputObjectFields:  orderedset.New[InputObjectFieldPosition](),
		DirectiveArgs:      orderedset.New[DirectiveArgPosition](),
	}
}

// Referencers is the inverse index: every named type/directive maps to the
// set of positions that reference it, one bucket per role. See spec.md §3.
type Referencers struct {
	ScalarTypes      map[string]*ScalarTypeReferencers
	ObjectTypes      map[string]*ObjectTypeReferencers
	InterfaceTypes   map[string]*InterfaceTypeReferencers
	UnionTypes       map[string]*UnionTypeReferencers
	EnumTypes        map[string]*EnumTypeReferencers
	InputObjectTypes map[string]*InputObjectTypeReferencers
	Directives       map[string]*DirectiveReferencers
}

func newReferencers() *Referencers {
	return &Referencers{
		ScalarTypes:      make(map[string]*ScalarTypeReferencers),
		ObjectTypes:      make(map[string]*ObjectTypeReferencers),
		InterfaceTypes:   make(map[string]*InterfaceTypeReferencers),
		UnionTypes:       make(map[string]*UnionTypeReferencers),
		EnumTypes:        make(map[string]*EnumTypeReferencers),
		InputObjectTypes: make(map[string]*InputObjectTypeReferencers),
		Directives:       make(map[string]*DirectiveReferencers),
	}
}

func (r *Referencers) ensureScalar(name string) *ScalarTypeReferencers {
	b, ok := r.ScalarTypes[name]
	if !ok {
		b = newScalarTypeReferencers()
		r.ScalarTypes[name] = b
	}
	return b
}

func (r *Referencers) ensureObject(name string) *ObjectTypeReferencers {
	b, ok := r.ObjectTypes[name]
	if !ok {
		b = newObjectTypeReferencers()
		r.ObjectTypes[name] = b
	}
	return b
}

func (r *Referencers) ensureInterface(name string) *InterfaceTypeReferencers {
	b, ok := r.InterfaceTypes[name]
	if !ok {
		b = newInterfaceTypeReferencers()
		r.InterfaceTypes[name] = b
	}
	return b
}

func (r *Referencers) ensureUnion(name string) *UnionTypeReferencers {
	b, ok := r.UnionTypes[name]
	if !ok {
		b = newUnionTypeReferencers()
		r.UnionTypes[name] = b
	}
	return b
}

func (r *Referencers) ensureEnum(name string) *EnumTypeReferencers {
	b, ok := r.EnumTypes[name]
	if !ok {
		b = newEnumTypeReferencers()
		r.EnumTypes[name] = b
	}
	return b
}

func (r *Referencers) ensureInputObject(name string) *InputObjectTypeReferencers {
	b, ok := r.InputObjectTypes[name]
	if !ok {
		b = newInputObjectTypeReferencers()
		r.InputObjectTypes[name] = b
	}
	return b
}

func (r *Referencers) ensureDirective(name string) *DirectiveReferencers {
	b, ok := r.Directives[name]
	if !ok {
		b = newDirectiveReferencers()
		r.Directives[name] = b
	}
	return b
}

// registerTypeReference records that `owner`, in role determined by its own
// concrete position type, refers to the named type `target`, whose kind is
// looked up via kindOf.
func (r *Referencers) registerTypeReference(kindOf func(string) TypeKind, target string, owner Position) {
	switch kindOf(target) {
	case KindScalar:
		b := r.ensureScalar(target)
		registerInto(b, owner)
	case KindObject:
		b := r.ensureObject(target)
		registerInto(b, owner)
	case KindInterface:
		b := r.ensureInterface(target)
		registerInto(b, owner)
	case KindUnion:
		b := r.ensureUnion(target)
		registerInto(b, owner)
	case KindEnum:
		b := r.ensureEnum(target)
		registerInto(b, owner)
	case KindInputObject:
		b := r.ensureInputObject(target)
		registerInto(b, owner)
	}
}

// TypeKind identifies which of the six type-definition kinds a name resolves to.
type TypeKind int

const (
	KindUnknown TypeKind = iota
	KindScalar
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
)

func registerInto(bucket any, owner Position) {
	switch b := bucket.(type) {
	case *ScalarTypeReferencers:
		switch p := owner.(type) {
		case ObjectFieldPosition:
			b.ObjectFields.Add(p)
		case ObjectFieldArgPosition:
			b.ObjectFieldArgs.Add(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Add(p)
		case InterfaceFieldArgPosition:
			b.InterfaceFieldArgs.Add(p)
		case InputObjectFieldPosition:
			b.InputObjectFields.Add(p)
		case DirectiveArgPosition:
			b.DirectiveArgs.Add(p)
		}
	case *ObjectTypeReferencers:
		switch p := owner.(type) {
		case SchemaRootPosition:
			b.SchemaRoots.Add(p)
		case ObjectFieldPosition:
			b.ObjectFields.Add(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Add(p)
		case UnionTypePosition:
			b.UnionTypes.Add(p)
		}
	case *InterfaceTypeReferencers:
		switch p := owner.(type) {
		case ObjectTypePosition:
			b.ObjectTypes.Add(p)
		case ObjectFieldPosition:
			b.ObjectFields.Add(p)
		case InterfaceTypePosition:
			b.InterfaceTypes.Add(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Add(p)
		}
	case *UnionTypeReferencers:
		switch p := owner.(type) {
		case ObjectFieldPosition:
			b.ObjectFields.Add(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Add(p)
		}
	case *EnumTypeReferencers:
		switch p := owner.(type) {
		case ObjectFieldPosition:
			b.ObjectFields.Add(p)
		case ObjectFieldArgPosition:
			b.ObjectFieldArgs.Add(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Add(p)
		case InterfaceFieldArgPosition:
			b.InterfaceFieldArgs.Add(p)
		case InputObjectFieldPosition:
			b.InputObjectFields.Add(p)
		case DirectiveArgPosition:
			b.DirectiveArgs.Add(p)
		}
	case *InputObjectTypeReferencers:
		switch p := owner.(type) {
		case ObjectFieldArgPosition:
			b.ObjectFieldArgs.Add(p)
		case InterfaceFieldArgPosition:
			b.InterfaceFieldArgs.Add(p)
		case InputObjectFieldPosition:
			b.InputObjectFields.Add(p)
		case DirectiveArgPosition:
			b.DirectiveArgs.Add(p)
		}
	}
}

func unregisterFrom(bucket any, owner Position) {
	switch b := bucket.(type) {
	case *ScalarTypeReferencers:
		switch p := owner.(type) {
		case ObjectFieldPosition:
			b.ObjectFields.Remove(p)
		case ObjectFieldArgPosition:
			b.ObjectFieldArgs.Remove(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Remove(p)
		case InterfaceFieldArgPosition:
			b.InterfaceFieldArgs.Remove(p)
		case InputObjectFieldPosition:
			b.InputObjectFields.Remove(p)
		case DirectiveArgPosition:
			b.DirectiveArgs.Remove(p)
		}
	case *ObjectTypeReferencers:
		switch p := owner.(type) {
		case SchemaRootPosition:
			b.SchemaRoots.Remove(p)
		case ObjectFieldPosition:
			b.ObjectFields.Remove(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Remove(p)
		case UnionTypePosition:
			b.UnionTypes.Remove(p)
		}
	case *InterfaceTypeReferencers:
		switch p := owner.(type) {
		case ObjectTypePosition:
			b.ObjectTypes.Remove(p)
		case ObjectFieldPosition:
			b.ObjectFields.Remove(p)
		case InterfaceTypePosition:
			b.InterfaceTypes.Remove(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Remove(p)
		}
	case *UnionTypeReferencers:
		switch p := owner.(type) {
		case ObjectFieldPosition:
			b.ObjectFields.Remove(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Remove(p)
		}
	case *EnumTypeReferencers:
		switch p := owner.(type) {
		case ObjectFieldPosition:
			b.ObjectFields.Remove(p)
		case ObjectFieldArgPosition:
			b.ObjectFieldArgs.Remove(p)
		case InterfaceFieldPosition:
			b.InterfaceFields.Remove(p)
		case InterfaceFieldArgPosition:
			b.InterfaceFieldArgs.Remove(p)
		case InputObjectFieldPosition:
			b.InputObjectFields.Remove(p)
		case DirectiveArgPosition:
			b.DirectiveArgs.Remove(p)
		}
	case *InputObjectTypeReferencers:
		switch p := owner.(type) {
		case ObjectFieldArgPosition:
			b.ObjectFieldArgs.Remove(p)
		case InterfaceFieldArgPosition:
			b.InterfaceFieldArgs.Remove(p)
		case InputObjectFieldPosition:
			b.InputObjectFields.Remove(p)
		case DirectiveArgPosition:
			b.DirectiveArgs.Remove(p)
		}
	}
}

// registerDirectiveApplication records that `owner` applies directive `name`.
func (r *Referencers) registerDirectiveApplication(name string, owner Position) {
	b := r.ensureDirective(name)
	if _, ok := owner.(SchemaDefinitionPosition); ok {
		b.Schema = true
		return
	}
	switch p := owner.(type) {
	case ScalarTypePosition:
		b.ScalarTypes.Add(p)
	case ObjectTypePosition:
		b.ObjectTypes.Add(p)
	case ObjectFieldPosition:
		b.ObjectFields.Add(p)
	case ObjectFieldArgPosition:
		b.ObjectFieldArgs.Add(p)
	case InterfaceTypePosition:
		b.InterfaceTypes.Add(p)
	case InterfaceFieldPosition:
		b.InterfaceFields.Add(p)
	case InterfaceFieldArgPosition:
		b.InterfaceFieldArgs.Add(p)
	case UnionTypePosition:
		b.UnionTypes.Add(p)
	case EnumTypePosition:
		b.EnumTypes.Add(p)
	case EnumValuePosition:
		b.EnumValues.Add(p)
	case InputObjectTypePosition:
		b.InputObjectTypes.Add(p)
	case InputObjectFieldPosition:
		b.InputObjectFields.Add(p)
	case DirectiveArgPosition:
		b.DirectiveArgs.Add(p)
	}
}

func (r *Referencers) unregisterDirectiveApplication(name string, owner Position) {
	b, ok := r.Directives[name]
	if !ok {
		return
	}
	switch p := owner.(type) {
	case ScalarTypePosition:
		b.ScalarTypes.Remove(p)
	case ObjectTypePosition:
		b.ObjectTypes.Remove(p)
	case ObjectFieldPosition:
		b.ObjectFields.Remove(p)
	case ObjectFieldArgPosition:
		b.ObjectFieldArgs.Remove(p)
	case InterfaceTypePosition:
		b.InterfaceTypes.Remove(p)
	case InterfaceFieldPosition:
		b.InterfaceFields.Remove(p)
	case InterfaceFieldArgPosition:
		b.InterfaceFieldArgs.Remove(p)
	case UnionTypePosition:
		b.UnionTypes.Remove(p)
	case EnumTypePosition:
		b.EnumTypes.Remove(p)
	case EnumValuePosition:
		b.EnumValues.Remove(p)
	case InputObjectTypePosition:
		b.InputObjectTypes.Remove(p)
	case InputObjectFieldPosition:
		b.InputObjectFields.Remove(p)
	case DirectiveArgPosition:
		b.DirectiveArgs.Remove(p)
	}
}
