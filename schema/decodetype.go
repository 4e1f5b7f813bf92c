package schema

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ErrInvalidTypeReference is returned when a `@join__field(type: "...")`
// override string cannot be parsed as a type reference.
type ErrInvalidTypeReference struct {
	Raw string
}

func (e *ErrInvalidTypeReference) Error() string {
	return fmt.Sprintf("invalid graphql type reference %q", e.Raw)
}

// DecodeType parses a type-reference string (e.g. "[Int!]!") the way the
// external parser would parse a field's declared type, by embedding it in a
// throwaway field declaration and reparsing. `}` and `:` are rejected
// up front since either would let the string escape the single field's type
// position and smuggle in additional schema content.
func DecodeType(raw string) (*ast.Type, error) {
	if strings.ContainsAny(raw, "}:") {
		return nil, &ErrInvalidTypeReference{Raw: raw}
	}
	doc, err := parser.ParseSchema(&ast.Source{
		Name:  "decodeType",
		Input: fmt.Sprintf("type Query { field: %s }", raw),
	})
	if err != nil {
		return nil, &ErrInvalidTypeReference{Raw: raw}
	}
	for _, def := range doc.Definitions {
		if def.Name != "Query" {
			continue
		}
		f := def.Fields.ForName("field")
		if f == nil {
			continue
		}
		return f.Type, nil
	}
	return nil, &ErrInvalidTypeReference{Raw: raw}
}
