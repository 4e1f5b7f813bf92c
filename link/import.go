package link

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Purpose is the optional `for:` argument of a `@link` application.
type Purpose int

const (
	// PurposeUnknown marks a link with no declared purpose.
	PurposeUnknown Purpose = iota
	PurposeSecurity
	PurposeExecution
)

func (p Purpose) String() string {
	switch p {
	case PurposeSecurity:
		return "SECURITY"
	case PurposeExecution:
		return "EXECUTION"
	default:
		return ""
	}
}

// ParsePurpose parses the `link__Purpose` enum value of a `for:` argument.
func ParsePurpose(s string) (Purpose, error) {
	switch s {
	case "SECURITY":
		return PurposeSecurity, nil
	case "EXECUTION":
		return PurposeExecution, nil
	default:
		return PurposeUnknown, &Bootstrap{Reason: fmt.Sprintf("unknown link purpose %q", s)}
	}
}

// Import is a single `(element, alias?, is_directive)` request made by a
// link, describing one symbol made available under a local name.
type Import struct {
	Element     string
	IsDirective bool
	Alias       *string
}

// ImportedName is the local name under which this import is visible: the
// alias if one was given, else the element name itself.
func (i *Import) ImportedName() string {
	if i.Alias != nil {
		return *i.Alias
	}
	return i.Element
}

// ImportedDisplayName is ImportedName prefixed with `@` for directives.
func (i *Import) ImportedDisplayName() string {
	if i.IsDirective {
		return "@" + i.ImportedName()
	}
	return i.ImportedName()
}

// importFromValue decodes one entry of a `@link(import: [...])` list, which
// may be a bare string (`"Name"` or `"@directive"`) or an object form
// (`{name: "@directive", as: "@alias"}`).
func importFromValue(v *ast.Value) (*Import, error) {
	switch v.Kind {
	case ast.StringValue, ast.BlockValue:
		return importFromString(v.Raw)
	case ast.ObjectValue:
		return importFromObject(v)
	default:
		return nil, &Bootstrap{Reason: fmt.Sprintf("invalid @link import %q: expected a string or object", v.Raw)}
	}
}

func importFromString(raw string) (*Import, error) {
	if strings.HasPrefix(raw, "@") {
		return &Import{Element: strings.TrimPrefix(raw, "@"), IsDirective: true}, nil
	}
	return &Import{Element: raw}, nil
}

func importFromObject(v *ast.Value) (*Import, error) {
	var name, as *string
	for _, child := range v.Children {
		switch child.Name {
		case "name":
			s := child.Value.Raw
			name = &s
		case "as":
			s := child.Value.Raw
			as = &s
		default:
			return nil, &Bootstrap{Reason: fmt.Sprintf("invalid @link import entry: unknown field %q", child.Name)}
		}
	}
	if name == nil {
		return nil, &Bootstrap{Reason: "invalid @link import entry: missing \"name\""}
	}
	imp, err := importFromString(*name)
	if err != nil {
		return nil, err
	}
	if as != nil {
		if imp.IsDirective != strings.HasPrefix(*as, "@") {
			return nil, &Bootstrap{Reason: fmt.Sprintf(
				"invalid alias %q for import of %q: should start with '@' if and only if the imported element is a directive", *as, imp.Element,
			)}
		}
		alias := strings.TrimPrefix(*as, "@")
		imp.Alias = &alias
	}
	return imp, nil
}
