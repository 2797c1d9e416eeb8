// Package elab implements elaboration passes over the nast tree. Each
// pass is a small visitor that overrides the minimal hook set it needs
// and inherits identity behavior everywhere else.
package elab

import (
	"strings"

	"github.com/akjkmeagabase/hhvm/internal/nast"
)

// ===== Namespace qualification =====

// nsEnv carries the namespace prefix for name qualification.
type nsEnv struct {
	prefix string
}

type nsQualifier struct {
	nast.Rewriter[nsEnv]
}

// TransformHint qualifies bare class-name applications with the current
// namespace. Already-qualified names (leading backslash) are untouched.
func (q *nsQualifier) TransformHint(env nsEnv, h *nast.Hint) *nast.Hint {
	out := q.Rewriter.TransformHint(env, h)
	if out == nil {
		return nil
	}
	if ap, ok := out.Node.(*nast.HApply); ok && !strings.HasPrefix(ap.Class.Name, `\`) {
		ap.Class.Name = env.prefix + ap.Class.Name
	}
	return out
}

// TransformContext keeps context-position hints out of the rewrite:
// context names resolve in their own namespace, not the declaring one.
func (q *nsQualifier) TransformContext(env nsEnv, h *nast.Hint) *nast.Hint {
	return h
}

// QualifyNames rewrites every bare class-name hint in the program to be
// fully qualified under the given namespace. The namespace is given
// without leading or trailing backslashes; an empty namespace qualifies
// into the global one.
func QualifyNames(namespace string, prog nast.Program) nast.Program {
	prefix := `\`
	if ns := strings.Trim(namespace, `\`); ns != "" {
		prefix = `\` + ns + `\`
	}

	q := &nsQualifier{}
	q.Bind(q)
	return q.TransformProgram(nsEnv{prefix: prefix}, prog)
}

// ===== Duplicate attribute pruning =====

type attrDeduper struct {
	nast.Rewriter[struct{}]
}

// TransformUserAttributes keeps the first occurrence of each attribute
// name and drops later duplicates, preserving the order of survivors.
// Grouped interception means every attribute list in the tree is pruned:
// class, member, parameter and file level.
func (d *attrDeduper) TransformUserAttributes(env struct{}, uas []*nast.UserAttribute) []*nast.UserAttribute {
	if len(uas) < 2 {
		return d.Rewriter.TransformUserAttributes(env, uas)
	}

	seen := make(map[string]bool, len(uas))
	kept := make([]*nast.UserAttribute, 0, len(uas))
	for _, ua := range uas {
		if seen[ua.Name.Name] {
			continue
		}
		seen[ua.Name.Name] = true
		kept = append(kept, ua)
	}
	return d.Rewriter.TransformUserAttributes(env, kept)
}

// DedupeAttributes removes duplicate user attributes from every
// attribute list in the program, keeping first occurrences.
func DedupeAttributes(prog nast.Program) nast.Program {
	d := &attrDeduper{}
	d.Bind(d)
	return d.TransformProgram(struct{}{}, prog)
}

// ===== Context alias canonicalization =====

// ctxEnv carries the alias table for context canonicalization.
type ctxEnv struct {
	aliases map[string]string
}

type ctxCanonicalizer struct {
	nast.Rewriter[ctxEnv]
}

// TransformContext rewrites aliased context names to their canonical
// form. Only context-position hints are affected; type-position hints
// with the same names keep their spelling.
func (c *ctxCanonicalizer) TransformContext(env ctxEnv, h *nast.Hint) *nast.Hint {
	if ap, ok := h.Node.(*nast.HApply); ok {
		if canonical, aliased := env.aliases[ap.Class.Name]; aliased {
			out := *h
			out.Node = &nast.HApply{
				Class: nast.Id{Span: ap.Class.Span, Name: canonical},
				Args:  ap.Args,
			}
			return &out
		}
	}
	return c.Rewriter.TransformContext(env, h)
}

// CanonicalizeContexts rewrites every context in the program through the
// alias table (alias name to canonical name). Hints outside context
// position are never touched.
func CanonicalizeContexts(aliases map[string]string, prog nast.Program) nast.Program {
	c := &ctxCanonicalizer{}
	c.Bind(c)
	return c.TransformProgram(ctxEnv{aliases: aliases}, prog)
}
