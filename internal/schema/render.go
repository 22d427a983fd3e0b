package schema

import (
	"sort"
	"strings"

	language "github.com/hanpama/sdlcheck/internal/language"
)

// Render produces SDL from the Schema's merged view.
// Deterministic ordering: type/directive names sorted lexicographically.
// Built-in definitions are omitted.
func Render(s *Schema) string {
	if s == nil {
		return ""
	}
	var b strings.Builder

	renderSchemaDefinition(&b, s)

	types := make([]NamedType, 0, len(s.Types))
	for _, typ := range s.Types {
		if typ == nil || isBuiltinDefinition(typ.Def()) {
			continue
		}
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Def().Name < types[j].Def().Name })

	for _, typ := range types {
		switch typ := typ.(type) {
		case *Scalar:
			renderScalar(&b, typ)
		case *Enum:
			renderEnum(&b, typ)
		case *InputObject:
			renderInputObject(&b, typ)
		case *Object:
			renderObject(&b, typ)
		case *Interface:
			renderInterface(&b, typ)
		case *Union:
			renderUnion(&b, typ)
		default:
			panic("unreachable")
		}
	}

	directives := make([]*Directive, 0, len(s.Directives))
	for _, d := range s.Directives {
		if d == nil || (d.AST != nil && isBuiltin(d.AST.Position)) {
			continue
		}
		directives = append(directives, d)
	}
	sort.Slice(directives, func(i, j int) bool { return directives[i].Name < directives[j].Name })
	for _, d := range directives {
		renderDirective(&b, d)
	}

	out := strings.TrimRight(b.String(), "\n") + "\n"
	return out
}

// ----- render helpers -----

// renderSchemaDefinition prints a schema block only when the roots differ
// from the conventional type names.
func renderSchemaDefinition(b *strings.Builder, s *Schema) {
	roots := []struct {
		op   string
		typ  NamedType
		name string
	}{
		{"query", s.Query, "Query"},
		{"mutation", s.Mutation, "Mutation"},
		{"subscription", s.Subscription, "Subscription"},
	}
	conventional := true
	for _, r := range roots {
		if r.typ != nil && r.typ.Def().Name != r.name {
			conventional = false
		}
	}
	if conventional {
		return
	}
	b.WriteString("schema {\n")
	for _, r := range roots {
		if r.typ == nil {
			continue
		}
		b.WriteString("  ")
		b.WriteString(r.op)
		b.WriteString(": ")
		b.WriteString(r.typ.Def().Name)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderDescription(b *strings.Builder, desc, indent string) {
	if desc == "" {
		return
	}
	b.WriteString(indent)
	b.WriteString("\"\"\"\n")
	escaped := strings.ReplaceAll(desc, `"""`, `\"""`)
	for _, line := range strings.Split(escaped, "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString("\"\"\"\n")
}

func renderDeprecation(b *strings.Builder, directives language.DirectiveList) {
	d := directives.ForName("deprecated")
	if d == nil {
		return
	}
	b.WriteString(" @deprecated")
	if reason := d.Arguments.ForName("reason"); reason != nil && reason.Value != nil {
		b.WriteString("(reason: ")
		b.WriteString(reason.Value.String())
		b.WriteString(")")
	}
}

func renderScalar(b *strings.Builder, typ *Scalar) {
	renderDescription(b, typ.Description, "")
	b.WriteString("scalar ")
	b.WriteString(typ.Name)
	for _, node := range typ.Nodes() {
		if d := node.Directives.ForName("specifiedBy"); d != nil {
			if url := d.Arguments.ForName("url"); url != nil && url.Value != nil {
				b.WriteString(" @specifiedBy(url: ")
				b.WriteString(url.Value.String())
				b.WriteString(")")
			}
			break
		}
	}
	b.WriteString("\n\n")
}

func renderEnum(b *strings.Builder, typ *Enum) {
	renderDescription(b, typ.Description, "")
	b.WriteString("enum ")
	b.WriteString(typ.Name)
	if len(typ.Values) == 0 {
		b.WriteString("\n\n")
		return
	}
	b.WriteString(" {\n")
	for _, val := range typ.Values {
		renderDescription(b, val.Description, "  ")
		b.WriteString("  ")
		b.WriteString(val.Name)
		if val.AST != nil {
			renderDeprecation(b, val.AST.Directives)
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderInputObject(b *strings.Builder, typ *InputObject) {
	renderDescription(b, typ.Description, "")
	b.WriteString("input ")
	b.WriteString(typ.Name)
	if len(typ.Fields) == 0 {
		b.WriteString("\n\n")
		return
	}
	b.WriteString(" {\n")
	for _, field := range typ.Fields {
		renderDescription(b, field.Description, "  ")
		b.WriteString("  ")
		b.WriteString(field.Name)
		b.WriteString(": ")
		b.WriteString(renderTypeRef(field.Type))
		if field.DefaultValue != nil {
			b.WriteString(" = ")
			b.WriteString(field.DefaultValue.String())
		}
		if field.AST != nil {
			renderDeprecation(b, field.AST.Directives)
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderObject(b *strings.Builder, typ *Object) {
	renderDescription(b, typ.Description, "")
	b.WriteString("type ")
	b.WriteString(typ.Name)
	if len(typ.Interfaces) > 0 {
		b.WriteString(" implements ")
		for i, iface := range typ.Interfaces {
			if i > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(iface.Def().Name)
		}
	}
	renderFields(b, typ.Fields)
}

func renderInterface(b *strings.Builder, typ *Interface) {
	renderDescription(b, typ.Description, "")
	b.WriteString("interface ")
	b.WriteString(typ.Name)
	renderFields(b, typ.Fields)
}

func renderFields(b *strings.Builder, fields []*Field) {
	if len(fields) == 0 {
		b.WriteString("\n\n")
		return
	}
	b.WriteString(" {\n")
	for _, field := range fields {
		renderField(b, field)
	}
	b.WriteString("}\n\n")
}

func renderUnion(b *strings.Builder, typ *Union) {
	renderDescription(b, typ.Description, "")
	b.WriteString("union ")
	b.WriteString(typ.Name)
	if len(typ.Types) > 0 {
		b.WriteString(" = ")
	}
	for i, member := range typ.Types {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(member.Def().Name)
	}
	b.WriteString("\n\n")
}

func renderField(b *strings.Builder, field *Field) {
	renderDescription(b, field.Description, "  ")
	b.WriteString("  ")
	b.WriteString(field.Name)
	renderArguments(b, field.Args)
	b.WriteString(": ")
	b.WriteString(renderTypeRef(field.Type))
	if field.AST != nil {
		renderDeprecation(b, field.AST.Directives)
	}
	b.WriteString("\n")
}

func renderArguments(b *strings.Builder, args []*Argument) {
	if len(args) == 0 {
		return
	}
	b.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		b.WriteString(": ")
		b.WriteString(renderTypeRef(arg.Type))
		if arg.DefaultValue != nil {
			b.WriteString(" = ")
			b.WriteString(arg.DefaultValue.String())
		}
	}
	b.WriteString(")")
}

func renderDirective(b *strings.Builder, directive *Directive) {
	renderDescription(b, directive.Description, "")
	b.WriteString("directive @")
	b.WriteString(directive.Name)
	renderArguments(b, directive.Args)
	if directive.IsRepeatable {
		b.WriteString(" repeatable")
	}
	b.WriteString(" on ")
	for i, location := range directive.Locations {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(string(location))
	}
	b.WriteString("\n\n")
}

func renderTypeRef(typeRef Type) string {
	if typeRef == nil {
		return ""
	}
	return typeRef.String()
}
