package grammar

import (
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/multierr"

	"github.com/akjkmeagabase/hhvm/internal/nast"
)

// kindTypes maps manifest kind names to the compiled node structs that
// carry per-field hooks.
var kindTypes = map[string]reflect.Type{
	"class":     reflect.TypeOf(nast.Class{}),
	"fun":       reflect.TypeOf(nast.Fun{}),
	"method":    reflect.TypeOf(nast.Method{}),
	"class_var": reflect.TypeOf(nast.ClassVar{}),
	"hint_fun":  reflect.TypeOf(nast.HintFun{}),
	"gconst":    reflect.TypeOf(nast.Gconst{}),
}

var nastPkgPath = reflect.TypeOf(nast.Class{}).PkgPath()

// Verify compares the manifest's per-kind field inventory against the
// compiled node definitions: every composite kind must be declared, and
// its recursive fields must match the struct's structural fields in
// name and declaration order. All mismatches are reported at once.
func (m *Manifest) Verify() error {
	var errs error

	for name := range m.Kinds {
		if _, known := kindTypes[name]; !known {
			errs = multierr.Append(errs, fmt.Errorf("manifest kind %q has no compiled node struct", name))
		}
	}

	for name, typ := range kindTypes {
		kind, declared := m.Kinds[name]
		if !declared {
			errs = multierr.Append(errs, fmt.Errorf("kind %q missing from manifest", name))
			continue
		}

		want := structuralFields(typ)
		got := make([]string, len(kind.Fields))
		for i, f := range kind.Fields {
			got[i] = goName(f)
		}

		if !reflect.DeepEqual(got, want) {
			errs = multierr.Append(errs, fmt.Errorf(
				"kind %q: manifest fields %v do not match compiled recursive fields %v",
				name, got, want))
		}
	}

	return errs
}

// structuralFields returns the names of t's structurally-recursive
// fields in declaration order. Leaf data (names, flags, spans, opaque
// annotation slots) is excluded.
func structuralFields(t reflect.Type) []string {
	var fields []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if isStructural(f.Type) {
			fields = append(fields, f.Name)
		}
	}
	return fields
}

// isStructural reports whether a field of this type participates in
// recursive traversal. Id is positioned leaf data despite being a nast
// struct; pairs are structural when either component is.
func isStructural(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice:
		return isStructural(t.Elem())
	case reflect.Struct:
		if t.PkgPath() != nastPkgPath {
			return false
		}
		if t.Name() == "Id" {
			return false
		}
		if strings.HasPrefix(t.Name(), "Pair[") {
			first, _ := t.FieldByName("First")
			second, _ := t.FieldByName("Second")
			return isStructural(first.Type) || isStructural(second.Type)
		}
		return true
	case reflect.Interface:
		// Closed node unions live in the nast package; the opaque
		// annotation slots are plain interfaces with no package.
		return t.PkgPath() == nastPkgPath
	default:
		return false
	}
}

// goName converts a manifest snake_case field name to the exported Go
// field name, e.g. "xhp_attr_uses" to "XhpAttrUses".
func goName(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
