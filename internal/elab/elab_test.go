package elab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akjkmeagabase/hhvm/internal/nast"
	"github.com/akjkmeagabase/hhvm/internal/position"
)

func espan(line, col int) position.Span {
	return position.Span{
		Start: position.Position{Filename: "e.hack", Line: line, Column: col, Offset: (line-1)*80 + col - 1},
		End:   position.Position{Filename: "e.hack", Line: line, Column: col + 1, Offset: (line-1)*80 + col},
	}
}

func hint(name string) *nast.Hint {
	return &nast.Hint{
		Span: espan(1, 1),
		Node: &nast.HApply{Class: nast.Id{Span: espan(1, 1), Name: name}},
	}
}

func attr(name string) *nast.UserAttribute {
	return &nast.UserAttribute{Name: nast.Id{Span: espan(1, 1), Name: name}}
}

func hintName(t *testing.T, h *nast.Hint) string {
	t.Helper()
	ap, ok := h.Node.(*nast.HApply)
	require.True(t, ok, "expected HApply hint")
	return ap.Class.Name
}

func sampleClass() *nast.Class {
	return &nast.Class{
		Span:       espan(1, 1),
		Kind:       nast.KindClass,
		Name:       nast.Id{Span: espan(1, 7), Name: "Widget"},
		Extends:    []*nast.Hint{hint("Base")},
		Implements: []*nast.Hint{hint(`\Fully\Qualified`)},
		Methods: []*nast.Method{{
			Span:       espan(3, 3),
			Visibility: nast.Public,
			Name:       nast.Id{Span: espan(3, 10), Name: "render"},
			Ctxs: &nast.Contexts{
				Span: espan(3, 20),
				Ctxs: []*nast.Hint{hint("rx"), hint("Base")},
			},
			UserAttributes: []*nast.UserAttribute{attr("Memoize"), attr("Memoize"), attr("Override")},
		}},
		UserAttributes: []*nast.UserAttribute{attr("Sealed")},
	}
}

func TestQualifyNames(t *testing.T) {
	prog := nast.Program{sampleClass()}

	out := QualifyNames("App\\UI", prog)
	cls := out[0].(*nast.Class)

	assert.Equal(t, `\App\UI\Base`, hintName(t, cls.Extends[0]))
	assert.Equal(t, `\Fully\Qualified`, hintName(t, cls.Implements[0]), "qualified names stay untouched")

	// Contexts resolve in their own namespace and must not be qualified,
	// even when a context shares its spelling with a class name.
	ctxs := cls.Methods[0].Ctxs.Ctxs
	assert.Equal(t, "rx", hintName(t, ctxs[0]))
	assert.Equal(t, "Base", hintName(t, ctxs[1]))
}

func TestQualifyNamesLeavesInputIntact(t *testing.T) {
	cls := sampleClass()
	QualifyNames("App", nast.Program{cls})

	assert.Equal(t, "Base", hintName(t, cls.Extends[0]), "input tree must not be mutated")
}

func TestDedupeAttributes(t *testing.T) {
	prog := nast.Program{sampleClass()}

	out := DedupeAttributes(prog)
	method := out[0].(*nast.Class).Methods[0]

	require.Len(t, method.UserAttributes, 2)
	assert.Equal(t, "Memoize", method.UserAttributes[0].Name.Name)
	assert.Equal(t, "Override", method.UserAttributes[1].Name.Name, "survivor order preserved")
}

func TestCanonicalizeContexts(t *testing.T) {
	prog := nast.Program{sampleClass()}

	out := CanonicalizeContexts(map[string]string{"rx": "rx_shallow"}, prog)
	cls := out[0].(*nast.Class)

	assert.Equal(t, "rx_shallow", hintName(t, cls.Methods[0].Ctxs.Ctxs[0]))
	// Type-position hints keep their spelling even if aliased.
	assert.Equal(t, "Base", hintName(t, cls.Extends[0]))
	// The contexts position tag is leaf data.
	assert.Equal(t, espan(3, 20), cls.Methods[0].Ctxs.Span)
}
