package graphql

import (
	"fmt"
)

// Type ref kinds that need unwrapping before selection.
const (
	kindNonNull = "NON_NULL"
	kindList    = "LIST"
	kindObject  = "OBJECT"
	kindScalar  = "SCALAR"
	kindEnum    = "ENUM"
)

type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// Unwrap strips NON_NULL and LIST wrappers down to the named type.
func (r *TypeRef) Unwrap() *TypeRef {
	ref := r
	for ref.OfType != nil && (ref.Kind == kindNonNull || ref.Kind == kindList) {
		ref = ref.OfType
	}
	return ref
}

// String renders the ref in SDL notation, e.g. "[String!]!".
func (r *TypeRef) String() string {
	switch r.Kind {
	case kindNonNull:
		return r.OfType.String() + "!"
	case kindList:
		return "[" + r.OfType.String() + "]"
	}
	return r.Name
}

type InputValue struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
}

type Field struct {
	Name string       `json:"name"`
	Args []InputValue `json:"args"`
	Type TypeRef      `json:"type"`
}

type TypeDef struct {
	Kind   string  `json:"kind"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Schema is the introspected shape of a backend module: the root operation
// type names plus every named type with its fields.
type Schema struct {
	QueryType    string
	MutationType string

	types map[string]*TypeDef
}

func (s *Schema) TypeByName(name string) *TypeDef {
	return s.types[name]
}

// RootField locates the root field backing an operation name, e.g. the
// "questionGroupList" field on the query root type.
func (s *Schema) RootField(opType OperationType, name string) (*Field, error) {
	rootName := s.QueryType
	if opType == Mutation {
		rootName = s.MutationType
	}
	if rootName == "" {
		return nil, fmt.Errorf("schema defines no %s root type", opType)
	}
	root := s.TypeByName(rootName)
	if root == nil {
		return nil, fmt.Errorf("schema root type %s has no definition", rootName)
	}
	for i := range root.Fields {
		if root.Fields[i].Name == name {
			return &root.Fields[i], nil
		}
	}
	return nil, fmt.Errorf("operation %s is not defined on %s", name, rootName)
}

// The introspection document, built the way the hand-written documents are:
// a type-ref fragment plus the query proper. Nested ofType depth covers the
// usual NON_NULL/LIST wrapping.
var typeRefFragment = `
fragment TypeRefFields on __Type {
	kind
	name
	ofType {
		kind
		name
		ofType {
			kind
			name
			ofType {
				kind
				name
				ofType {
					kind
					name
				}
			}
		}
	}
}
`

var introspectionQuery = typeRefFragment + `
query IntrospectionQuery {
	__schema {
		queryType {
			name
		}
		mutationType {
			name
		}
		types {
			kind
			name
			fields(includeDeprecated: true) {
				name
				args {
					name
					type {
						...TypeRefFields
					}
				}
				type {
					...TypeRefFields
				}
			}
		}
	}
}
`

type schemaPayload struct {
	QueryType    *struct{ Name string } `json:"queryType"`
	MutationType *struct{ Name string } `json:"mutationType"`
	Types        []TypeDef              `json:"types"`
}

// ParseSchema builds a Schema from the decoded "__schema" introspection
// payload.
func ParseSchema(v any) (*Schema, error) {
	payload, err := Decode[schemaPayload](v)
	if err != nil {
		return nil, fmt.Errorf("error decoding introspection payload:\n>>> %w", err)
	}
	schema := &Schema{types: make(map[string]*TypeDef, len(payload.Types))}
	if payload.QueryType != nil {
		schema.QueryType = payload.QueryType.Name
	}
	if payload.MutationType != nil {
		schema.MutationType = payload.MutationType.Name
	}
	for i := range payload.Types {
		typeDef := payload.Types[i]
		schema.types[typeDef.Name] = &typeDef
	}
	return schema, nil
}
