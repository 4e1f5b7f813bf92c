package supergraph

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// subgraphDoc accumulates one subgraph's schema document as it is carved out
// of the supergraph: a mutable *ast.SchemaDocument plus a name-indexed view
// of its type definitions, so callers don't have to linear-scan
// doc.Definitions on every lookup.
type subgraphDoc struct {
	name  string
	url   string
	doc   *ast.SchemaDocument
	types map[string]*ast.Definition
}

func newSubgraphDoc(name, url string) (*subgraphDoc, error) {
	doc, err := newSkeletonDocument(name)
	if err != nil {
		return nil, err
	}
	sd := &subgraphDoc{name: name, url: url, doc: doc, types: map[string]*ast.Definition{}}
	for _, def := range doc.Definitions {
		sd.types[def.Name] = def
	}
	return sd, nil
}

// typeOf returns the existing definition named `name`, or nil.
func (s *subgraphDoc) typeOf(name string) *ast.Definition {
	return s.types[name]
}

// ensureType returns the definition named `name`, creating an empty one of
// the given kind on first use.
func (s *subgraphDoc) ensureType(name string, kind ast.DefinitionKind) *ast.Definition {
	if def, ok := s.types[name]; ok {
		return def
	}
	def := &ast.Definition{Kind: kind, Name: name}
	s.types[name] = def
	s.doc.Definitions = append(s.doc.Definitions, def)
	return def
}

// addType inserts a freshly built type, erroring if one of that name already
// exists (mirrors the original's "Type already exists in schema" panics,
// which in fedcore are reported instead of crashed on).
func (s *subgraphDoc) addType(def *ast.Definition) error {
	if _, exists := s.types[def.Name]; exists {
		return fmt.Errorf("type %q already exists in subgraph %q", def.Name, s.name)
	}
	s.types[def.Name] = def
	s.doc.Definitions = append(s.doc.Definitions, def)
	return nil
}

// addExtensionType inserts a freshly built type as a schema extension
// (`extend type ...` / `extend interface ...` / ...), for a `@join__type`
// application that set `extension: true`. It is otherwise identical to
// addType: same name-collision check, same s.types index, only the target
// list within the SchemaDocument differs.
func (s *subgraphDoc) addExtensionType(def *ast.Definition) error {
	if _, exists := s.types[def.Name]; exists {
		return fmt.Errorf("type %q already exists in subgraph %q", def.Name, s.name)
	}
	s.types[def.Name] = def
	s.doc.Extensions = append(s.doc.Extensions, def)
	return nil
}
