package nast

// Rewriter layers field-granular override points on top of Traversal.
// For each composite declaration kind it shadows the raw deep transform
// with a decomposition that reads every recursive field, routes it
// through a dedicated hook, and reconstructs the node as a copy of the
// input with exactly those fields replaced. Leaf fields are never passed
// to a hook.
//
// Field hooks of one node run left-to-right in field declaration order;
// no hook observes a sibling's rewritten value, each receives the same
// env.
//
// A pass embeds Rewriter, overrides the hooks it cares about, then
// installs itself with Bind so the traversal dispatches to the
// overrides at every depth:
//
//	type upcase struct{ nast.Rewriter[myEnv] }
//
//	func (u *upcase) ClassImplements(env myEnv, hs []*nast.Hint) []*nast.Hint {
//		...
//	}
//
//	u := &upcase{}
//	u.Bind(u)
//	out := u.TransformClass(env, in)
//
// A Rewriter holds no state of its own between invocations; one
// transformation is a pure function of (env, input tree).
type Rewriter[Env any] struct {
	Traversal[Env]
}

// NewRewriter returns a rewriter with every hook at its default, i.e.
// the identity transformation.
func NewRewriter[Env any]() *Rewriter[Env] {
	r := &Rewriter[Env]{}
	r.Bind(r)
	return r
}

// ===== Opaque metadata hooks =====

// ExprAnnot passes the expression-level annotation through unexamined.
func (r *Rewriter[Env]) ExprAnnot(env Env, annot any) any { return annot }

// DeclAnnot passes the declaration-level annotation through unexamined.
func (r *Rewriter[Env]) DeclAnnot(env Env, annot any) any { return annot }

// ===== Role-distinguishing hooks =====

// TransformContext rewrites a hint appearing in context position.
// Contexts share the hint representation, so the default delegates to
// the plain hint transform; override this to special-case
// context-position hints without affecting type-position ones.
func (r *Rewriter[Env]) TransformContext(env Env, h *Hint) *Hint {
	return r.self.TransformHint(env, h)
}

// TransformContexts rewrites the inner context sequence, leaving the
// position tag untouched.
func (r *Rewriter[Env]) TransformContexts(env Env, c *Contexts) *Contexts {
	if c == nil {
		return nil
	}

	out := *c
	out.Ctxs = MapSlice(r.self.TransformContext, env, c.Ctxs)

	return &out
}

// ===== Grouped-sequence hooks =====

// TransformUserAttributes intercepts every user-attribute list in the
// tree as a whole sequence. Overriding here is the place for passes that
// must see the full set at once, e.g. duplicate detection.
func (r *Rewriter[Env]) TransformUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute {
	return MapSlice(r.self.TransformUserAttribute, env, uas)
}

// TransformFileAttributes intercepts every file-attribute list as a
// whole sequence.
func (r *Rewriter[Env]) TransformFileAttributes(env Env, fas []*FileAttribute) []*FileAttribute {
	return MapSlice(r.self.TransformFileAttribute, env, fas)
}

// TransformFileAttribute routes the group's inner list through the
// grouped hook, so an override sees file-level lists too.
func (r *Rewriter[Env]) TransformFileAttribute(env Env, fa *FileAttribute) *FileAttribute {
	if fa == nil {
		return nil
	}

	out := *fa
	out.UserAttributes = r.self.TransformUserAttributes(env, fa.UserAttributes)

	return &out
}

// TransformTparam routes the parameter's attribute list through the
// grouped hook; constraints keep the base behavior.
func (r *Rewriter[Env]) TransformTparam(env Env, tp *Tparam) *Tparam {
	if tp == nil {
		return nil
	}

	out := *tp
	out.Constraints = MapSlice(func(env Env, p Pair[ConstraintKind, *Hint]) Pair[ConstraintKind, *Hint] {
		return MapSecond(r.self.TransformHint, env, p)
	}, env, tp.Constraints)
	out.UserAttributes = r.self.TransformUserAttributes(env, tp.UserAttributes)

	return &out
}

// TransformFunParam routes the parameter's attribute list through the
// grouped hook; type, default and annotation keep the base behavior.
func (r *Rewriter[Env]) TransformFunParam(env Env, fp *FunParam) *FunParam {
	if fp == nil {
		return nil
	}

	out := *fp
	out.Annot = r.self.ExprAnnot(env, fp.Annot)
	out.TypeHint = MapOption(r.self.TransformHint, env, fp.TypeHint)
	out.Expr = MapOption(r.self.TransformExpr, env, fp.Expr)
	out.UserAttributes = r.self.TransformUserAttributes(env, fp.UserAttributes)

	return &out
}

// ===== Class decomposition =====

// TransformClass reconstructs the class with each recursive field routed
// through its field hook; every other field is copied verbatim.
func (r *Rewriter[Env]) TransformClass(env Env, c *Class) *Class {
	if c == nil {
		return nil
	}

	out := *c
	out.Annot = r.self.DeclAnnot(env, c.Annot)
	out.Tparams = r.self.ClassTparams(env, c.Tparams)
	out.Extends = r.self.ClassExtends(env, c.Extends)
	out.Uses = r.self.ClassUses(env, c.Uses)
	out.XhpAttrUses = r.self.ClassXhpAttrUses(env, c.XhpAttrUses)
	out.XhpAttrs = r.self.ClassXhpAttrs(env, c.XhpAttrs)
	out.Reqs = r.self.ClassReqs(env, c.Reqs)
	out.Implements = r.self.ClassImplements(env, c.Implements)
	out.WhereConstraints = r.self.ClassWhereConstraints(env, c.WhereConstraints)
	out.Consts = r.self.ClassConsts(env, c.Consts)
	out.TypeConsts = r.self.ClassTypeConsts(env, c.TypeConsts)
	out.Vars = r.self.ClassVars(env, c.Vars)
	out.Enum = r.self.ClassEnum(env, c.Enum)
	out.Methods = r.self.ClassMethods(env, c.Methods)
	out.UserAttributes = r.self.ClassUserAttributes(env, c.UserAttributes)
	out.FileAttributes = r.self.ClassFileAttributes(env, c.FileAttributes)

	return &out
}

func (r *Rewriter[Env]) ClassTparams(env Env, tps []*Tparam) []*Tparam {
	return MapSlice(r.self.TransformTparam, env, tps)
}

func (r *Rewriter[Env]) ClassExtends(env Env, hs []*Hint) []*Hint {
	return MapSlice(r.self.TransformHint, env, hs)
}

func (r *Rewriter[Env]) ClassUses(env Env, hs []*Hint) []*Hint {
	return MapSlice(r.self.TransformHint, env, hs)
}

func (r *Rewriter[Env]) ClassXhpAttrUses(env Env, hs []*Hint) []*Hint {
	return MapSlice(r.self.TransformHint, env, hs)
}

func (r *Rewriter[Env]) ClassXhpAttrs(env Env, xas []*XhpAttr) []*XhpAttr {
	return MapSlice(r.self.TransformXhpAttr, env, xas)
}

// ClassReqs rewrites the class-reference side of each requirement pair;
// the requirement kind is leaf data.
func (r *Rewriter[Env]) ClassReqs(env Env, reqs []Pair[*Hint, RequireKind]) []Pair[*Hint, RequireKind] {
	return MapSlice(func(env Env, p Pair[*Hint, RequireKind]) Pair[*Hint, RequireKind] {
		return MapFirst(r.self.TransformHint, env, p)
	}, env, reqs)
}

func (r *Rewriter[Env]) ClassImplements(env Env, hs []*Hint) []*Hint {
	return MapSlice(r.self.TransformHint, env, hs)
}

func (r *Rewriter[Env]) ClassWhereConstraints(env Env, wcs []*WhereConstraint) []*WhereConstraint {
	return MapSlice(r.self.TransformWhereConstraint, env, wcs)
}

func (r *Rewriter[Env]) ClassConsts(env Env, ccs []*ClassConst) []*ClassConst {
	return MapSlice(r.self.TransformClassConst, env, ccs)
}

func (r *Rewriter[Env]) ClassTypeConsts(env Env, tcs []*ClassTypeConst) []*ClassTypeConst {
	return MapSlice(r.self.TransformClassTypeConst, env, tcs)
}

func (r *Rewriter[Env]) ClassVars(env Env, cvs []*ClassVar) []*ClassVar {
	return MapSlice(r.self.TransformClassVar, env, cvs)
}

func (r *Rewriter[Env]) ClassEnum(env Env, e *Enum) *Enum {
	return MapOption(r.self.TransformEnum, env, e)
}

func (r *Rewriter[Env]) ClassMethods(env Env, ms []*Method) []*Method {
	return MapSlice(r.self.TransformMethod, env, ms)
}

func (r *Rewriter[Env]) ClassUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute {
	return r.self.TransformUserAttributes(env, uas)
}

func (r *Rewriter[Env]) ClassFileAttributes(env Env, fas []*FileAttribute) []*FileAttribute {
	return r.self.TransformFileAttributes(env, fas)
}

// ===== Function decomposition =====

// TransformFun reconstructs the function with each recursive field
// routed through its field hook.
func (r *Rewriter[Env]) TransformFun(env Env, f *Fun) *Fun {
	if f == nil {
		return nil
	}

	out := *f
	out.Annot = r.self.DeclAnnot(env, f.Annot)
	out.ReturnType = r.self.FunReturnType(env, f.ReturnType)
	out.Tparams = r.self.FunTparams(env, f.Tparams)
	out.WhereConstraints = r.self.FunWhereConstraints(env, f.WhereConstraints)
	out.Params = r.self.FunParams(env, f.Params)
	out.Ctxs = r.self.FunCtxs(env, f.Ctxs)
	out.UnsafeCtxs = r.self.FunUnsafeCtxs(env, f.UnsafeCtxs)
	out.Body = r.self.FunBody(env, f.Body)
	out.UserAttributes = r.self.FunUserAttributes(env, f.UserAttributes)

	return &out
}

func (r *Rewriter[Env]) FunReturnType(env Env, h *Hint) *Hint {
	return MapOption(r.self.TransformHint, env, h)
}

func (r *Rewriter[Env]) FunTparams(env Env, tps []*Tparam) []*Tparam {
	return MapSlice(r.self.TransformTparam, env, tps)
}

func (r *Rewriter[Env]) FunWhereConstraints(env Env, wcs []*WhereConstraint) []*WhereConstraint {
	return MapSlice(r.self.TransformWhereConstraint, env, wcs)
}

func (r *Rewriter[Env]) FunParams(env Env, fps []*FunParam) []*FunParam {
	return MapSlice(r.self.TransformFunParam, env, fps)
}

func (r *Rewriter[Env]) FunCtxs(env Env, c *Contexts) *Contexts {
	return MapOption(r.self.TransformContexts, env, c)
}

func (r *Rewriter[Env]) FunUnsafeCtxs(env Env, c *Contexts) *Contexts {
	return MapOption(r.self.TransformContexts, env, c)
}

func (r *Rewriter[Env]) FunBody(env Env, b FuncBody) FuncBody {
	return r.self.TransformBody(env, b)
}

func (r *Rewriter[Env]) FunUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute {
	return r.self.TransformUserAttributes(env, uas)
}

// ===== Method decomposition =====

// TransformMethod reconstructs the method with each recursive field
// routed through its field hook; the return type hook runs last,
// matching the field order of the kind.
func (r *Rewriter[Env]) TransformMethod(env Env, m *Method) *Method {
	if m == nil {
		return nil
	}

	out := *m
	out.Annot = r.self.DeclAnnot(env, m.Annot)
	out.Tparams = r.self.MethodTparams(env, m.Tparams)
	out.WhereConstraints = r.self.MethodWhereConstraints(env, m.WhereConstraints)
	out.Params = r.self.MethodParams(env, m.Params)
	out.Ctxs = r.self.MethodCtxs(env, m.Ctxs)
	out.UnsafeCtxs = r.self.MethodUnsafeCtxs(env, m.UnsafeCtxs)
	out.Body = r.self.MethodBody(env, m.Body)
	out.UserAttributes = r.self.MethodUserAttributes(env, m.UserAttributes)
	out.ReturnType = r.self.MethodReturnType(env, m.ReturnType)

	return &out
}

func (r *Rewriter[Env]) MethodTparams(env Env, tps []*Tparam) []*Tparam {
	return MapSlice(r.self.TransformTparam, env, tps)
}

func (r *Rewriter[Env]) MethodWhereConstraints(env Env, wcs []*WhereConstraint) []*WhereConstraint {
	return MapSlice(r.self.TransformWhereConstraint, env, wcs)
}

func (r *Rewriter[Env]) MethodParams(env Env, fps []*FunParam) []*FunParam {
	return MapSlice(r.self.TransformFunParam, env, fps)
}

func (r *Rewriter[Env]) MethodCtxs(env Env, c *Contexts) *Contexts {
	return MapOption(r.self.TransformContexts, env, c)
}

func (r *Rewriter[Env]) MethodUnsafeCtxs(env Env, c *Contexts) *Contexts {
	return MapOption(r.self.TransformContexts, env, c)
}

func (r *Rewriter[Env]) MethodBody(env Env, b FuncBody) FuncBody {
	return r.self.TransformBody(env, b)
}

func (r *Rewriter[Env]) MethodUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute {
	return r.self.TransformUserAttributes(env, uas)
}

func (r *Rewriter[Env]) MethodReturnType(env Env, h *Hint) *Hint {
	return MapOption(r.self.TransformHint, env, h)
}

// ===== Class variable decomposition =====

// TransformClassVar reconstructs the property with each recursive field
// routed through its field hook.
func (r *Rewriter[Env]) TransformClassVar(env Env, cv *ClassVar) *ClassVar {
	if cv == nil {
		return nil
	}

	out := *cv
	out.UserAttributes = r.self.ClassVarUserAttributes(env, cv.UserAttributes)
	out.Expr = r.self.ClassVarExpr(env, cv.Expr)
	out.TypeHint = r.self.ClassVarTypeHint(env, cv.TypeHint)

	return &out
}

func (r *Rewriter[Env]) ClassVarUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute {
	return r.self.TransformUserAttributes(env, uas)
}

func (r *Rewriter[Env]) ClassVarExpr(env Env, e *Expr) *Expr {
	return MapOption(r.self.TransformExpr, env, e)
}

func (r *Rewriter[Env]) ClassVarTypeHint(env Env, h *Hint) *Hint {
	return MapOption(r.self.TransformHint, env, h)
}

// ===== Function-type hint decomposition =====

// TransformHintFun reconstructs the function-type hint with each
// recursive field routed through its field hook.
func (r *Rewriter[Env]) TransformHintFun(env Env, hf *HintFun) *HintFun {
	if hf == nil {
		return nil
	}

	out := *hf
	out.ParamTypes = r.self.HintFunParamTypes(env, hf.ParamTypes)
	out.Variadic = r.self.HintFunVariadic(env, hf.Variadic)
	out.Ctxs = r.self.HintFunCtxs(env, hf.Ctxs)
	out.Return = r.self.HintFunReturn(env, hf.Return)

	return &out
}

func (r *Rewriter[Env]) HintFunParamTypes(env Env, hs []*Hint) []*Hint {
	return MapSlice(r.self.TransformHint, env, hs)
}

func (r *Rewriter[Env]) HintFunVariadic(env Env, h *Hint) *Hint {
	return MapOption(r.self.TransformHint, env, h)
}

func (r *Rewriter[Env]) HintFunCtxs(env Env, c *Contexts) *Contexts {
	return MapOption(r.self.TransformContexts, env, c)
}

func (r *Rewriter[Env]) HintFunReturn(env Env, h *Hint) *Hint {
	return r.self.TransformHint(env, h)
}

// ===== Global constant decomposition =====

// TransformGconst reconstructs the constant with each recursive field
// routed through its field hook.
func (r *Rewriter[Env]) TransformGconst(env Env, gc *Gconst) *Gconst {
	if gc == nil {
		return nil
	}

	out := *gc
	out.Annot = r.self.DeclAnnot(env, gc.Annot)
	out.TypeHint = r.self.GconstTypeHint(env, gc.TypeHint)
	out.Value = r.self.GconstValue(env, gc.Value)

	return &out
}

func (r *Rewriter[Env]) GconstTypeHint(env Env, h *Hint) *Hint {
	return MapOption(r.self.TransformHint, env, h)
}

func (r *Rewriter[Env]) GconstValue(env Env, e *Expr) *Expr {
	return r.self.TransformExpr(env, e)
}
