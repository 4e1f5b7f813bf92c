package schema

import "github.com/vektah/gqlparser/v2/ast"

// DirectiveOptionalStringArgument returns the raw text of argument `name`
// on d, or nil if absent or null. Any other value is returned as written,
// so enum values (such as a join__Graph member) are read through it too.
func DirectiveOptionalStringArgument(d *ast.Directive, name string) *string {
	arg := d.Arguments.ForName(name)
	if arg == nil || arg.Value == nil || arg.Value.Kind == ast.NullValue {
		return nil
	}
	v := arg.Value.Raw
	return &v
}

// DirectiveRequiredStringArgument is DirectiveOptionalStringArgument but
// returns "" instead of nil when absent, for call sites that always supply
// a default.
func DirectiveRequiredStringArgument(d *ast.Directive, name string) string {
	if v := DirectiveOptionalStringArgument(d, name); v != nil {
		return *v
	}
	return ""
}

// DirectiveOptionalFieldSetArgument is an alias of
// DirectiveOptionalStringArgument: a `FieldSet` is just a string at the
// wire level.
func DirectiveOptionalFieldSetArgument(d *ast.Directive, name string) *string {
	return DirectiveOptionalStringArgument(d, name)
}

// DirectiveOptionalBooleanArgument returns the boolean value of argument
// `name`, or nil if absent or null.
func DirectiveOptionalBooleanArgument(d *ast.Directive, name string) *bool {
	arg := d.Arguments.ForName(name)
	if arg == nil || arg.Value == nil || arg.Value.Kind == ast.NullValue {
		return nil
	}
	b := arg.Value.Raw == "true"
	return &b
}

// DirectiveRequiredBooleanArgument returns the boolean value of argument
// `name`, defaulting to defaultValue if absent.
func DirectiveRequiredBooleanArgument(d *ast.Directive, name string, defaultValue bool) bool {
	if b := DirectiveOptionalBooleanArgument(d, name); b != nil {
		return *b
	}
	return defaultValue
}

// DirectiveOptionalEnumArgument returns the raw enum value name of argument
// `name`, or nil if absent or null.
func DirectiveOptionalEnumArgument(d *ast.Directive, name string) *string {
	arg := d.Arguments.ForName(name)
	if arg == nil || arg.Value == nil || arg.Value.Kind == ast.NullValue {
		return nil
	}
	v := arg.Value.Raw
	return &v
}
