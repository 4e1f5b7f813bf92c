package schema

import "github.com/vektah/gqlparser/v2/ast"

func flattenScalarRefs(b *ScalarTypeReferencers) []Position {
	var out []Position
	for _, p := range b.ObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.ObjectFieldArgs.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFieldArgs.Items() {
		out = append(out, p)
	}
	for _, p := range b.InputObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.DirectiveArgs.Items() {
		out = append(out, p)
	}
	return out
}

func flattenObjectRefs(b *ObjectTypeReferencers) []Position {
	var out []Position
	for _, p := range b.SchemaRoots.Items() {
		out = append(out, p)
	}
	for _, p := range b.ObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.UnionTypes.Items() {
		out = append(out, p)
	}
	return out
}

func flattenInterfaceRefs(b *InterfaceTypeReferencers) []Position {
	var out []Position
	for _, p := range b.ObjectTypes.Items() {
		out = append(out, p)
	}
	for _, p := range b.ObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceTypes.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFields.Items() {
		out = append(out, p)
	}
	return out
}

func flattenUnionRefs(b *UnionTypeReferencers) []Position {
	var out []Position
	for _, p := range b.ObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFields.Items() {
		out = append(out, p)
	}
	return out
}

func flattenEnumRefs(b *EnumTypeReferencers) []Position {
	var out []Position
	for _, p := range b.ObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.ObjectFieldArgs.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFieldArgs.Items() {
		out = append(out, p)
	}
	for _, p := range b.InputObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.DirectiveArgs.Items() {
		out = append(out, p)
	}
	return out
}

func flattenInputObjectRefs(b *InputObjectTypeReferencers) []Position {
	var out []Position
	for _, p := range b.ObjectFieldArgs.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFieldArgs.Items() {
		out = append(out, p)
	}
	for _, p := range b.InputObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.DirectiveArgs.Items() {
		out = append(out, p)
	}
	return out
}

func flattenDirectiveRefs(b *DirectiveReferencers) []Position {
	var out []Position
	if b.Schema {
		out = append(out, SchemaDefinitionPosition{})
	}
	for _, p := range b.ScalarTypes.Items() {
		out = append(out, p)
	}
	for _, p := range b.ObjectTypes.Items() {
		out = append(out, p)
	}
	for _, p := range b.ObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.ObjectFieldArgs.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceTypes.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.InterfaceFieldArgs.Items() {
		out = append(out, p)
	}
	for _, p := range b.UnionTypes.Items() {
		out = append(out, p)
	}
	for _, p := range b.EnumTypes.Items() {
		out = append(out, p)
	}
	for _, p := range b.EnumValues.Items() {
		out = append(out, p)
	}
	for _, p := range b.InputObjectTypes.Items() {
		out = append(out, p)
	}
	for _, p := range b.InputObjectFields.Items() {
		out = append(out, p)
	}
	for _, p := range b.DirectiveArgs.Items() {
		out = append(out, p)
	}
	return out
}

// purgeOutboundForDefinition removes, from the index, every reference that
// definition `def` (about to be deleted) made outward: its own directive
// applications and its fields'/members'/values' type references and
// directive applications.
func (s *Schema) purgeOutboundForDefinition(name string, def *ast.Definition) {
	kindOf := kindOfSchema(s.AST)
	switch def.Kind {
	case ast.Scalar:
		for _, d := range def.Directives {
			s.Index.unregisterDirectiveApplication(d.Name, ScalarTypePosition{Name: name})
		}
	case ast.Object:
		owner := ObjectTypePosition{Name: name}
		for _, d := range def.Directives {
			s.Index.unregisterDirectiveApplication(d.Name, owner)
		}
		for _, iface := range def.Interfaces {
			if b, ok := s.Index.InterfaceTypes[iface]; ok {
				b.ObjectTypes.Remove(owner)
			}
		}
		for _, f := range def.Fields {
			s.purgeObjectField(name, f, kindOf)
		}
	case ast.Interface:
		owner := InterfaceTypePosition{Name: name}
		for _, d := range def.Directives {
			s.Index.unregisterDirectiveApplication(d.Name, owner)
		}
		for _, iface := range def.Interfaces {
			if b, ok := s.Index.InterfaceTypes[iface]; ok {
				b.InterfaceTypes.Remove(owner)
			}
		}
		for _, f := range def.Fields {
			s.purgeInterfaceField(name, f, kindOf)
		}
	case ast.Union:
		owner := UnionTypePosition{Name: name}
		for _, d := range def.Directives {
			s.Index.unregisterDirectiveApplication(d.Name, owner)
		}
		for _, member := range def.Types {
			s.unregisterTypeRef(kindOf, member, owner)
		}
	case ast.Enum:
		owner := EnumTypePosition{Name: name}
		for _, d := range def.Directives {
			s.Index.unregisterDirectiveApplication(d.Name, owner)
		}
		for _, v := range def.EnumValues {
			valuePos := EnumValuePosition{Type: name, Value: v.Name}
			for _, d := range v.Directives {
				s.Index.unregisterDirectiveApplication(d.Name, valuePos)
			}
		}
	case ast.InputObject:
		owner := InputObjectTypePosition{Name: name}
		for _, d := range def.Directives {
			s.Index.unregisterDirectiveApplication(d.Name, owner)
		}
		for _, f := range def.Fields {
			fieldPos := InputObjectFieldPosition{Type: name, Field: f.Name}
			for _, d := range f.Directives {
				s.Index.unregisterDirectiveApplication(d.Name, fieldPos)
			}
			s.unregisterTypeRef(kindOf, f.Type.Name(), fieldPos)
		}
	}
}

func (s *Schema) purgeObjectField(typeName string, f *ast.FieldDefinition, kindOf func(string) TypeKind) {
	fieldPos := ObjectFieldPosition{Type: typeName, Field: f.Name}
	for _, d := range f.Directives {
		s.Index.unregisterDirectiveApplication(d.Name, fieldPos)
	}
	s.unregisterTypeRef(kindOf, f.Type.Name(), fieldPos)
	for _, arg := range f.Arguments {
		argPos := ObjectFieldArgPosition{Type: typeName, Field: f.Name, Arg: arg.Name}
		for _, d := range arg.Directives {
			s.Index.unregisterDirectiveApplication(d.Name, argPos)
		}
		s.unregisterTypeRef(kindOf, arg.Type.Name(), argPos)
	}
}

func (s *Schema) purgeInterfaceField(typeName string, f *ast.FieldDefinition, kindOf func(string) TypeKind) {
	fieldPos := InterfaceFieldPosition{Type: typeName, Field: f.Name}
	for _, d := range f.Directives {
		s.Index.unregisterDirectiveApplication(d.Name, fieldPos)
	}
	s.unregisterTypeRef(kindOf, f.Type.Name(), fieldPos)
	for _, arg := range f.Arguments {
		argPos := InterfaceFieldArgPosition{Type: typeName, Field: f.Name, Arg: arg.Name}
		for _, d := range arg.Directives {
			s.Index.unregisterDirectiveApplication(d.Name, argPos)
		}
		s.unregisterTypeRef(kindOf, arg.Type.Name(), argPos)
	}
}

func (s *Schema) unregisterTypeRef(kindOf func(string) TypeKind, target string, owner Position) {
	switch kindOf(target) {
	case KindScalar:
		if b, ok := s.Index.ScalarTypes[target]; ok {
			unregisterFrom(b, owner)
		}
	case KindObject:
		if b, ok := s.Index.ObjectTypes[target]; ok {
			unregisterFrom(b, owner)
		}
	case KindInterface:
		if b, ok := s.Index.InterfaceTypes[target]; ok {
			unregisterFrom(b, owner)
		}
	case KindUnion:
		if b, ok := s.Index.UnionTypes[target]; ok {
			unregisterFrom(b, owner)
		}
	case KindEnum:
		if b, ok := s.Index.EnumTypes[target]; ok {
			unregisterFrom(b, owner)
		}
	case KindInputObject:
		if b, ok := s.Index.InputObjectTypes[target]; ok {
			unregisterFrom(b, owner)
		}
	}
}

// RemoveDirectiveName deletes every application of directive `name` on the
// element at pos, and removes pos from the directive's referencer bucket.
func (s *Schema) RemoveDirectiveName(pos Position, name string) {
	removeDirectivesMatching(s.typeDirectivesOf(pos), name)
	s.Index.unregisterDirectiveApplication(name, pos)
}

// RemoveDirective deletes one specific directive application by identity.
// The bucket entry for pos is only cleared if no other application of that
// directive name remains on pos.
func (s *Schema) RemoveDirective(pos Position, app *ast.Directive) {
	list := s.typeDirectivesOf(pos)
	if list == nil {
		return
	}
	found := false
	remaining := false
	out := (*list)[:0]
	for _, d := range *list {
		if d == app {
			found = true
			continue
		}
		out = append(out, d)
		if d.Name == app.Name {
			remaining = true
		}
	}
	*list = out
	if found && !remaining {
		s.Index.unregisterDirectiveApplication(app.Name, pos)
	}
}

func removeDirectivesMatching(list *ast.DirectiveList, name string) {
	if list == nil {
		return
	}
	out := (*list)[:0]
	for _, d := range *list {
		if d.Name != name {
			out = append(out, d)
		}
	}
	*list = out
}

// typeDirectivesOf returns a pointer to the directive list backing pos, so
// callers can mutate it in place; nil if pos has no directive list or does
// not exist.
func (s *Schema) typeDirectivesOf(pos Position) *ast.DirectiveList {
	switch p := pos.(type) {
	case ScalarTypePosition:
		if d, ok := s.AST.Types[p.Name]; ok {
			return &d.Directives
		}
	case ObjectTypePosition:
		if d, ok := s.AST.Types[p.Name]; ok {
			return &d.Directives
		}
	case InterfaceTypePosition:
		if d, ok := s.AST.Types[p.Name]; ok {
			return &d.Directives
		}
	case UnionTypePosition:
		if d, ok := s.AST.Types[p.Name]; ok {
			return &d.Directives
		}
	case EnumTypePosition:
		if d, ok := s.AST.Types[p.Name]; ok {
			return &d.Directives
		}
	case InputObjectTypePosition:
		if d, ok := s.AST.Types[p.Name]; ok {
			return &d.Directives
		}
	case ObjectFieldPosition:
		if f := fieldOf(s.AST, p.Type, p.Field); f != nil {
			return &f.Directives
		}
	case InterfaceFieldPosition:
		if f := fieldOf(s.AST, p.Type, p.Field); f != nil {
			return &f.Directives
		}
	case InputObjectFieldPosition:
		if f := fieldOf(s.AST, p.Type, p.Field); f != nil {
			return &f.Directives
		}
	case ObjectFieldArgPosition:
		if f := fieldOf(s.AST, p.Type, p.Field); f != nil && f.Arguments.ForName(p.Arg) != nil {
			return &f.Arguments.ForName(p.Arg).Directives
		}
	case InterfaceFieldArgPosition:
		if f := fieldOf(s.AST, p.Type, p.Field); f != nil && f.Arguments.ForName(p.Arg) != nil {
			return &f.Arguments.ForName(p.Arg).Directives
		}
	case EnumValuePosition:
		if d, ok := s.AST.Types[p.Type]; ok {
			if v := d.EnumValues.ForName(p.Value); v != nil {
				return &v.Directives
			}
		}
	}
	return nil
}

func fieldOf(s *ast.Schema, typeName, fieldName string) *ast.FieldDefinition {
	d, ok := s.Types[typeName]
	if !ok {
		return nil
	}
	return d.Fields.ForName(fieldName)
}

// Remove deletes the schema element named by pos, purges every outbound
// reference it held, and returns the snapshot of positions that referenced
// it (its "referencers") before deletion, in insertion order. Removing a
// position that does not exist is a silent no-op returning nil.
func (s *Schema) Remove(pos Position) []Position {
	switch p := pos.(type) {
	case ScalarTypePosition:
		return s.removeScalarTypeImpl(p)
	case ObjectTypePosition:
		return s.removeObjectTypeImpl(p)
	case InterfaceTypePosition:
		return s.removeInterfaceTypeImpl(p)
	case UnionTypePosition:
		return s.removeUnionTypeImpl(p)
	case EnumTypePosition:
		return s.removeEnumTypeImpl(p)
	case InputObjectTypePosition:
		return s.removeInputObjectTypeImpl(p)
	case DirectiveDefinitionPosition:
		return s.removeDirectiveDefinitionImpl(p)
	case ObjectFieldPosition:
		return s.removeObjectFieldImpl(p)
	case ObjectFieldArgPosition:
		return s.removeObjectFieldArgImpl(p)
	case InterfaceFieldPosition:
		return s.removeInterfaceFieldImpl(p)
	case InterfaceFieldArgPosition:
		return s.removeInterfaceFieldArgImpl(p)
	case InputObjectFieldPosition:
		return s.removeInputObjectFieldImpl(p)
	case EnumValuePosition:
		return s.removeEnumValueImpl(p)
	case SchemaRootPosition:
		return s.removeSchemaRootImpl(p)
	case DirectiveArgPosition:
		if dd, ok := s.AST.Directives[p.Directive]; ok && dd.Arguments.ForName(p.Arg) != nil {
			s.unregisterTypeRef(kindOfSchema(s.AST), dd.Arguments.ForName(p.Arg).Type.Name(), p)
			var out ast.ArgumentDefinitionList
			for _, existing := range dd.Arguments {
				if existing.Name != p.Arg {
					out = append(out, existing)
				}
			}
			dd.Arguments = out
		}
	}
	return nil
}

func (s *Schema) removeObjectTypeImpl(p ObjectTypePosition) []Position {
	def, ok := s.AST.Types[p.Name]
	if !ok {
		return nil
	}
	bucket := s.Index.ensureObject(p.Name)
	refs := flattenObjectRefs(bucket)
	s.purgeOutboundForDefinition(p.Name, def)
	delete(s.AST.Types, p.Name)
	delete(s.Index.ObjectTypes, p.Name)
	return refs
}

func (s *Schema) removeInterfaceTypeImpl(p InterfaceTypePosition) []Position {
	def, ok := s.AST.Types[p.Name]
	if !ok {
		return nil
	}
	bucket := s.Index.ensureInterface(p.Name)
	refs := flattenInterfaceRefs(bucket)
	s.purgeOutboundForDefinition(p.Name, def)
	delete(s.AST.Types, p.Name)
	delete(s.Index.InterfaceTypes, p.Name)
	return refs
}

func (s *Schema) removeUnionTypeImpl(p UnionTypePosition) []Position {
	def, ok := s.AST.Types[p.Name]
	if !ok {
		return nil
	}
	bucket := s.Index.ensureUnion(p.Name)
	refs := flattenUnionRefs(bucket)
	s.purgeOutboundForDefinition(p.Name, def)
	delete(s.AST.Types, p.Name)
	delete(s.Index.UnionTypes, p.Name)
	return refs
}

func (s *Schema) removeEnumTypeImpl(p EnumTypePosition) []Position {
	def, ok := s.AST.Types[p.Name]
	if !ok {
		return nil
	}
	bucket := s.Index.ensureEnum(p.Name)
	refs := flattenEnumRefs(bucket)
	s.purgeOutboundForDefinition(p.Name, def)
	delete(s.AST.Types, p.Name)
	delete(s.Index.EnumTypes, p.Name)
	return refs
}

func (s *Schema) removeInputObjectTypeImpl(p InputObjectTypePosition) []Position {
	def, ok := s.AST.Types[p.Name]
	if !ok {
		return nil
	}
	bucket := s.Index.ensureInputObject(p.Name)
	refs := flattenInputObjectRefs(bucket)
	s.purgeOutboundForDefinition(p.Name, def)
	delete(s.AST.Types, p.Name)
	delete(s.Index.InputObjectTypes, p.Name)
	return refs
}

func (s *Schema) removeScalarTypeImpl(p ScalarTypePosition) []Position {
	def, ok := s.AST.Types[p.Name]
	if !ok {
		return nil
	}
	bucket := s.Index.ensureScalar(p.Name)
	refs := flattenScalarRefs(bucket)
	s.purgeOutboundForDefinition(p.Name, def)
	delete(s.AST.Types, p.Name)
	delete(s.Index.ScalarTypes, p.Name)
	return refs
}

func (s *Schema) removeDirectiveDefinitionImpl(p DirectiveDefinitionPosition) []Position {
	if _, ok := s.AST.Directives[p.Name]; !ok {
		return nil
	}
	bucket := s.Index.ensureDirective(p.Name)
	refs := flattenDirectiveRefs(bucket)
	for _, arg := range s.AST.Directives[p.Name].Arguments {
		s.unregisterTypeRef(kindOfSchema(s.AST), arg.Type.Name(), DirectiveArgPosition{Directive: p.Name, Arg: arg.Name})
	}
	delete(s.AST.Directives, p.Name)
	delete(s.Index.Directives, p.Name)
	return refs
}

func (s *Schema) removeObjectFieldImpl(p ObjectFieldPosition) []Position {
	def, ok := s.AST.Types[p.Type]
	if !ok {
		return nil
	}
	f := def.Fields.ForName(p.Field)
	if f == nil {
		return nil
	}
	kindOf := kindOfSchema(s.AST)
	s.purgeObjectField(p.Type, f, kindOf)
	var out ast.FieldList
	for _, existing := range def.Fields {
		if existing.Name != p.Field {
			out = append(out, existing)
		}
	}
	def.Fields = out
	return nil
}

func (s *Schema) removeInterfaceFieldImpl(p InterfaceFieldPosition) []Position {
	def, ok := s.AST.Types[p.Type]
	if !ok {
		return nil
	}
	f := def.Fields.ForName(p.Field)
	if f == nil {
		return nil
	}
	kindOf := kindOfSchema(s.AST)
	s.purgeInterfaceField(p.Type, f, kindOf)
	var out ast.FieldList
	for _, existing := range def.Fields {
		if existing.Name != p.Field {
			out = append(out, existing)
		}
	}
	def.Fields = out
	return nil
}

func (s *Schema) removeObjectFieldArgImpl(p ObjectFieldArgPosition) []Position {
	def, ok := s.AST.Types[p.Type]
	if !ok {
		return nil
	}
	f := def.Fields.ForName(p.Field)
	if f == nil {
		return nil
	}
	arg := f.Arguments.ForName(p.Arg)
	if arg == nil {
		return nil
	}
	kindOf := kindOfSchema(s.AST)
	argPos := ObjectFieldArgPosition{Type: p.Type, Field: p.Field, Arg: p.Arg}
	for _, d := range arg.Directives {
		s.Index.unregisterDirectiveApplication(d.Name, argPos)
	}
	s.unregisterTypeRef(kindOf, arg.Type.Name(), argPos)
	var out ast.ArgumentDefinitionList
	for _, existing := range f.Arguments {
		if existing.Name != p.Arg {
			out = append(out, existing)
		}
	}
	f.Arguments = out
	return nil
}

func (s *Schema) removeInterfaceFieldArgImpl(p InterfaceFieldArgPosition) []Position {
	def, ok := s.AST.Types[p.Type]
	if !ok {
		return nil
	}
	f := def.Fields.ForName(p.Field)
	if f == nil {
		return nil
	}
	arg := f.Arguments.ForName(p.Arg)
	if arg == nil {
		return nil
	}
	kindOf := kindOfSchema(s.AST)
	argPos := InterfaceFieldArgPosition{Type: p.Type, Field: p.Field, Arg: p.Arg}
	for _, d := range arg.Directives {
		s.Index.unregisterDirectiveApplication(d.Name, argPos)
	}
	s.unregisterTypeRef(kindOf, arg.Type.Name(), argPos)
	var out ast.ArgumentDefinitionList
	for _, existing := range f.Arguments {
		if existing.Name != p.Arg {
			out = append(out, existing)
		}
	}
	f.Arguments = out
	return nil
}

func (s *Schema) removeInputObjectFieldImpl(p InputObjectFieldPosition) []Position {
	def, ok := s.AST.Types[p.Type]
	if !ok {
		return nil
	}
	f := def.Fields.ForName(p.Field)
	if f == nil {
		return nil
	}
	kindOf := kindOfSchema(s.AST)
	fieldPos := InputObjectFieldPosition{Type: p.Type, Field: p.Field}
	for _, d := range f.Directives {
		s.Index.unregisterDirectiveApplication(d.Name, fieldPos)
	}
	s.unregisterTypeRef(kindOf, f.Type.Name(), fieldPos)
	var out ast.FieldList
	for _, existing := range def.Fields {
		if existing.Name != p.Field {
			out = append(out, existing)
		}
	}
	def.Fields = out
	return nil
}

func (s *Schema) removeEnumValueImpl(p EnumValuePosition) []Position {
	def, ok := s.AST.Types[p.Type]
	if !ok {
		return nil
	}
	v := def.EnumValues.ForName(p.Value)
	if v == nil {
		return nil
	}
	valuePos := EnumValuePosition{Type: p.Type, Value: p.Value}
	for _, d := range v.Directives {
		s.Index.unregisterDirectiveApplication(d.Name, valuePos)
	}
	var out ast.EnumValueList
	for _, existing := range def.EnumValues {
		if existing.Name != p.Value {
			out = append(out, existing)
		}
	}
	def.EnumValues = out
	return nil
}

func (s *Schema) removeSchemaRootImpl(p SchemaRootPosition) []Position {
	typeName := s.rootTypeName(p.Root)
	if typeName == "" {
		return nil
	}
	if b, ok := s.Index.ObjectTypes[typeName]; ok {
		b.SchemaRoots.Remove(p)
	}
	s.clearSchemaRoot(p.Root)
	return nil
}

func (s *Schema) rootTypeName(root RootKind) string {
	switch root {
	case RootQuery:
		if s.AST.Query != nil {
			return s.AST.Query.Name
		}
	case RootMutation:
		if s.AST.Mutation != nil {
			return s.AST.Mutation.Name
		}
	case RootSubscription:
		if s.AST.Subscription != nil {
			return s.AST.Subscription.Name
		}
	}
	return ""
}

func (s *Schema) clearSchemaRoot(root RootKind) {
	switch root {
	case RootQuery:
		s.AST.Query = nil
	case RootMutation:
		s.AST.Mutation = nil
	case RootSubscription:
		s.AST.Subscription = nil
	}
}

// RemoveRecursive removes pos, then cascades the removal to every position
// that referenced it, per the cascade rules of spec.md §4.4: a removed type
// cascades to the fields/arguments/members/implements-edges that named it; a
// field or union member removal that empties its parent cascades to the
// parent too; a removed directive definition cascades to every application.
func (s *Schema) RemoveRecursive(pos Position) []Position {
	refs := s.Remove(pos)
	for _, ref := range refs {
		s.cascade(pos, ref)
	}
	return refs
}

func (s *Schema) cascade(removed, ref Position) {
	if rd, ok := removed.(DirectiveDefinitionPosition); ok {
		// ref is a position that applied the now-deleted directive; strip
		// just that application, the position itself survives.
		if _, isSchema := ref.(SchemaDefinitionPosition); isSchema {
			return
		}
		removeDirectivesMatching(s.typeDirectivesOf(ref), rd.Name)
		return
	}
	switch p := ref.(type) {
	case SchemaRootPosition:
		s.clearSchemaRoot(p.Root)
	case ObjectFieldPosition:
		s.RemoveRecursive(p)
		if def, ok := s.AST.Types[p.Type]; ok && len(def.Fields) == 0 {
			s.RemoveRecursive(ObjectTypePosition{Name: p.Type})
		}
	case InterfaceFieldPosition:
		s.RemoveRecursive(p)
		if def, ok := s.AST.Types[p.Type]; ok && len(def.Fields) == 0 {
			s.RemoveRecursive(InterfaceTypePosition{Name: p.Type})
		}
	case ObjectFieldArgPosition:
		s.RemoveRecursive(p)
	case InterfaceFieldArgPosition:
		s.RemoveRecursive(p)
	case InputObjectFieldPosition:
		s.RemoveRecursive(p)
		if def, ok := s.AST.Types[p.Type]; ok && len(def.Fields) == 0 {
			s.RemoveRecursive(InputObjectTypePosition{Name: p.Type})
		}
	case DirectiveArgPosition:
		s.RemoveRecursive(p)
	case ObjectTypePosition:
		// The removed element was an interface; p implemented it.
		if iface, ok := removed.(InterfaceTypePosition); ok {
			s.removeImplements(p.Name, iface.Name)
		}
	case InterfaceTypePosition:
		if iface, ok := removed.(InterfaceTypePosition); ok {
			s.removeImplements(p.Name, iface.Name)
		}
	case UnionTypePosition:
		// The removed element was an object/interface that was a union member.
		if obj, ok := removed.(ObjectTypePosition); ok {
			s.removeUnionMember(p.Name, obj.Name)
		}
	case EnumValuePosition:
		s.RemoveRecursive(p)
	}
}

func (s *Schema) removeImplements(typeName, iface string) {
	def, ok := s.AST.Types[typeName]
	if !ok {
		return
	}
	var out []string
	for _, i := range def.Interfaces {
		if i != iface {
			out = append(out, i)
		}
	}
	def.Interfaces = out
}

func (s *Schema) removeUnionMember(unionName, member string) {
	def, ok := s.AST.Types[unionName]
	if !ok {
		return
	}
	var out []string
	for _, t := range def.Types {
		if t != member {
			out = append(out, t)
		}
	}
	def.Types = out
	if len(out) == 0 {
		s.RemoveRecursive(UnionTypePosition{Name: unionName})
	}
}
