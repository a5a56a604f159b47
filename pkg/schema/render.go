package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eladbash/jdx/pkg/value"
)

// Render formats a Schema as an indented, annotated sketch: `key: type  #
// annotation`, two spaces of indent per nesting level, optional keys
// suffixed with `?`.
func Render(s *Schema) string {
	var b strings.Builder
	writeType(&b, s, 0)
	return b.String()
}

func writeType(b *strings.Builder, s *Schema, indent int) {
	if s.Kind == KindObject {
		writeObject(b, s, indent)
		return
	}
	b.WriteString(typeName(s))
	if ann := annotation(s); ann != "" {
		b.WriteString("  # ")
		b.WriteString(ann)
	}
}

func writeObject(b *strings.Builder, s *Schema, indent int) {
	pad := strings.Repeat("  ", indent)
	closePad := ""
	if indent > 0 {
		closePad = strings.Repeat("  ", indent-1)
	}

	b.WriteString("{\n")
	for _, k := range s.Order {
		f := s.Fields[k]
		name := k
		if !f.Required {
			name += "?"
		}
		b.WriteString(pad)
		b.WriteString(name)
		b.WriteString(": ")
		writeType(b, f.Schema, indent+1)
		b.WriteString("\n")
	}
	b.WriteString(closePad)
	b.WriteString("}")
}

// typeName renders a non-Object Schema's type as a single inline token:
// "null", "bool", "number", "string", "[<elem>]", "{...}" (nested object,
// handled by writeObject above), or a "A | B | ..." union with a trailing
// null last.
func typeName(s *Schema) string {
	switch s.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindAny:
		return "any"
	case KindArray:
		return "[" + typeName(s.Element) + "]"
	case KindObject:
		var b strings.Builder
		writeObject(&b, s, 0)
		return b.String()
	case KindUnion:
		return unionName(s)
	default:
		return "any"
	}
}

func unionName(s *Schema) string {
	var parts []string
	var hasNull bool
	for _, o := range s.Options {
		if o.Kind == KindNull {
			hasNull = true
			continue
		}
		parts = append(parts, typeName(o))
	}
	sort.Strings(parts)
	if hasNull {
		parts = append(parts, "null")
	}
	return strings.Join(parts, " | ")
}

// annotation supplies the short "# ..." note attached to a field:
// observed length for an array, key count for an object, observed range
// for a number, and the sampled value for a string, but only when every
// sampled occurrence agreed — merging two distinct numbers or strings
// widens the range or drops the sample rather than picking one.
func annotation(s *Schema) string {
	switch s.Kind {
	case KindArray:
		if s.LenMin == s.LenMax {
			return fmt.Sprintf("array of %d", s.LenMin)
		}
		return fmt.Sprintf("array of %d-%d", s.LenMin, s.LenMax)
	case KindObject:
		return fmt.Sprintf("%d keys", len(s.Fields))
	case KindNumber:
		if s.NumMin == s.NumMax {
			return value.CanonicalNumberString(s.NumMin)
		}
		return fmt.Sprintf("%s..%s", value.CanonicalNumberString(s.NumMin), value.CanonicalNumberString(s.NumMax))
	case KindString:
		if s.StrConstant {
			return fmt.Sprintf("%q", s.StrSample)
		}
		return ""
	default:
		return ""
	}
}
