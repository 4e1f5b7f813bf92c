package schema

import (
	"bytes"

	"github.com/vektah/gqlparser/v2/formatter"
)

// SDL renders the schema back to GraphQL SDL text via gqlparser's own
// formatter, the same printer that round-trips `ast.Schema` in gqlgen and
// other gqlparser-based tools. spec.md §6 requires every subgraph schema to
// print to valid SDL through "the external formatter"; this is that call.
func (s *Schema) SDL() string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchema(s.AST)
	return buf.String()
}
