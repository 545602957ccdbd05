package graphql

import (
	"fmt"
	"strings"
)

// How deep generated selections follow nested object fields below the root
// field. Beyond this, object subfields are dropped from the document.
const selectionDepth = 3

// GenerateOperation synthesizes the document for the root field named name:
// one declared variable per schema-defined argument, each passed through, and
// the full field tree of the result type selected down to selectionDepth.
// Subfields that take arguments of their own are skipped.
func GenerateOperation(name string, opType OperationType, schema *Schema) (string, error) {
	field, err := schema.RootField(opType, name)
	if err != nil {
		return "", fmt.Errorf("error generating %s operation:\n>>> %w", name, err)
	}

	var builder strings.Builder
	builder.WriteString(string(opType))
	builder.WriteString(" ")
	builder.WriteString(name)
	if len(field.Args) > 0 {
		declarations := make([]string, len(field.Args))
		for i, arg := range field.Args {
			declarations[i] = fmt.Sprintf("$%s: %s", arg.Name, arg.Type.String())
		}
		builder.WriteString("(" + strings.Join(declarations, ", ") + ")")
	}
	builder.WriteString(" {\n\t")
	builder.WriteString(name)
	if len(field.Args) > 0 {
		arguments := make([]string, len(field.Args))
		for i, arg := range field.Args {
			arguments[i] = fmt.Sprintf("%s: $%s", arg.Name, arg.Name)
		}
		builder.WriteString("(" + strings.Join(arguments, ", ") + ")")
	}

	selection := selectFields(schema, &field.Type, selectionDepth, "\t\t")
	if len(selection) > 0 {
		builder.WriteString(" {\n")
		builder.WriteString(strings.Join(selection, "\n"))
		builder.WriteString("\n\t}")
	}
	builder.WriteString("\n}")
	return builder.String(), nil
}

// selectFields renders the selection lines for the named type behind ref.
// Anything that is not an object definition is a leaf. Object subfields
// recurse while the depth budget lasts; ones whose own selection comes up
// empty are dropped, since an empty selection set is not a valid document.
func selectFields(schema *Schema, ref *TypeRef, depth int, indent string) []string {
	def := schema.TypeByName(ref.Unwrap().Name)
	if def == nil || def.Kind != kindObject {
		return nil
	}
	var lines []string
	for i := range def.Fields {
		field := &def.Fields[i]
		if len(field.Args) > 0 {
			continue
		}
		fieldDef := schema.TypeByName(field.Type.Unwrap().Name)
		if fieldDef == nil || fieldDef.Kind != kindObject {
			lines = append(lines, indent+field.Name)
			continue
		}
		if depth <= 1 {
			continue
		}
		subLines := selectFields(schema, &field.Type, depth-1, indent+"\t")
		if len(subLines) == 0 {
			continue
		}
		lines = append(lines, indent+field.Name+" {")
		lines = append(lines, subLines...)
		lines = append(lines, indent+"}")
	}
	return lines
}
