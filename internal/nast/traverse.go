package nast

// Visitor is the full hook surface seen by the traversal. It combines the
// per-node-kind transforms of the base traversal with the field-level,
// sequence-level, role-level and annotation hooks added by Rewriter.
//
// Overriding works by explicit dispatch rather than virtual lookup: the
// traversal never calls its own methods directly, it always goes through
// the Visitor reference installed with Bind, so an override on the
// concrete implementation is visible wherever the traversal recurses.
type Visitor[Env any] interface {
	// Opaque metadata hooks, identity by default.
	ExprAnnot(env Env, annot any) any
	DeclAnnot(env Env, annot any) any

	// Per-node-kind transforms.
	TransformProgram(env Env, p Program) Program
	TransformDef(env Env, d Def) Def
	TransformClass(env Env, c *Class) *Class
	TransformFun(env Env, f *Fun) *Fun
	TransformMethod(env Env, m *Method) *Method
	TransformClassVar(env Env, cv *ClassVar) *ClassVar
	TransformClassConst(env Env, cc *ClassConst) *ClassConst
	TransformClassTypeConst(env Env, tc *ClassTypeConst) *ClassTypeConst
	TransformXhpAttr(env Env, xa *XhpAttr) *XhpAttr
	TransformEnum(env Env, e *Enum) *Enum
	TransformGconst(env Env, gc *Gconst) *Gconst
	TransformTparam(env Env, tp *Tparam) *Tparam
	TransformWhereConstraint(env Env, wc *WhereConstraint) *WhereConstraint
	TransformFunParam(env Env, fp *FunParam) *FunParam
	TransformBody(env Env, b FuncBody) FuncBody
	TransformStmt(env Env, s *Stmt) *Stmt
	TransformExpr(env Env, e *Expr) *Expr
	TransformHint(env Env, h *Hint) *Hint
	TransformHintFun(env Env, hf *HintFun) *HintFun

	// Role-distinguishing hooks: contexts share the hint representation
	// but are overridable independently of type-position hints.
	TransformContext(env Env, h *Hint) *Hint
	TransformContexts(env Env, c *Contexts) *Contexts

	// Grouped-sequence hooks: intercept whole attribute lists at once.
	TransformUserAttribute(env Env, ua *UserAttribute) *UserAttribute
	TransformUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute
	TransformFileAttribute(env Env, fa *FileAttribute) *FileAttribute
	TransformFileAttributes(env Env, fas []*FileAttribute) []*FileAttribute

	// Field-level hooks for composite declaration kinds.
	ClassTparams(env Env, tps []*Tparam) []*Tparam
	ClassExtends(env Env, hs []*Hint) []*Hint
	ClassUses(env Env, hs []*Hint) []*Hint
	ClassXhpAttrUses(env Env, hs []*Hint) []*Hint
	ClassXhpAttrs(env Env, xas []*XhpAttr) []*XhpAttr
	ClassReqs(env Env, reqs []Pair[*Hint, RequireKind]) []Pair[*Hint, RequireKind]
	ClassImplements(env Env, hs []*Hint) []*Hint
	ClassWhereConstraints(env Env, wcs []*WhereConstraint) []*WhereConstraint
	ClassConsts(env Env, ccs []*ClassConst) []*ClassConst
	ClassTypeConsts(env Env, tcs []*ClassTypeConst) []*ClassTypeConst
	ClassVars(env Env, cvs []*ClassVar) []*ClassVar
	ClassEnum(env Env, e *Enum) *Enum
	ClassMethods(env Env, ms []*Method) []*Method
	ClassUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute
	ClassFileAttributes(env Env, fas []*FileAttribute) []*FileAttribute

	FunReturnType(env Env, h *Hint) *Hint
	FunTparams(env Env, tps []*Tparam) []*Tparam
	FunWhereConstraints(env Env, wcs []*WhereConstraint) []*WhereConstraint
	FunParams(env Env, fps []*FunParam) []*FunParam
	FunCtxs(env Env, c *Contexts) *Contexts
	FunUnsafeCtxs(env Env, c *Contexts) *Contexts
	FunBody(env Env, b FuncBody) FuncBody
	FunUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute

	MethodTparams(env Env, tps []*Tparam) []*Tparam
	MethodWhereConstraints(env Env, wcs []*WhereConstraint) []*WhereConstraint
	MethodParams(env Env, fps []*FunParam) []*FunParam
	MethodCtxs(env Env, c *Contexts) *Contexts
	MethodUnsafeCtxs(env Env, c *Contexts) *Contexts
	MethodBody(env Env, b FuncBody) FuncBody
	MethodUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute
	MethodReturnType(env Env, h *Hint) *Hint

	ClassVarUserAttributes(env Env, uas []*UserAttribute) []*UserAttribute
	ClassVarExpr(env Env, e *Expr) *Expr
	ClassVarTypeHint(env Env, h *Hint) *Hint

	HintFunParamTypes(env Env, hs []*Hint) []*Hint
	HintFunVariadic(env Env, h *Hint) *Hint
	HintFunCtxs(env Env, c *Contexts) *Contexts
	HintFunReturn(env Env, h *Hint) *Hint

	GconstTypeHint(env Env, h *Hint) *Hint
	GconstValue(env Env, e *Expr) *Expr
}

// Traversal supplies the default deep-copying recursion for every node
// kind. It never mutates its input: each method reconstructs a new node,
// sharing only leaf data with the original. Recursion into children goes
// through the self reference so that an effective visitor's overrides are
// honored at every depth.
type Traversal[Env any] struct {
	self Visitor[Env]
}

// Bind installs v as the effective visitor for all recursive dispatch.
// It must be called before the first transform, and again whenever the
// traversal is embedded into a new concrete visitor.
func (t *Traversal[Env]) Bind(v Visitor[Env]) {
	t.self = v
}

// TransformProgram rewrites every top-level definition in order.
func (t *Traversal[Env]) TransformProgram(env Env, p Program) Program {
	return Program(MapSlice(t.self.TransformDef, env, []Def(p)))
}

// TransformDef dispatches on the definition kind.
func (t *Traversal[Env]) TransformDef(env Env, d Def) Def {
	switch n := d.(type) {
	case *Class:
		return t.self.TransformClass(env, n)
	case *Fun:
		return t.self.TransformFun(env, n)
	case *Gconst:
		return t.self.TransformGconst(env, n)
	default:
		return d
	}
}

// TransformClass is the raw deep default: every recursive field is
// rewritten with its element transform. Rewriter shadows this with the
// field-hook decomposition.
func (t *Traversal[Env]) TransformClass(env Env, c *Class) *Class {
	if c == nil {
		return nil
	}

	out := *c
	out.Annot = t.self.DeclAnnot(env, c.Annot)
	out.Tparams = MapSlice(t.self.TransformTparam, env, c.Tparams)
	out.Extends = MapSlice(t.self.TransformHint, env, c.Extends)
	out.Uses = MapSlice(t.self.TransformHint, env, c.Uses)
	out.XhpAttrUses = MapSlice(t.self.TransformHint, env, c.XhpAttrUses)
	out.XhpAttrs = MapSlice(t.self.TransformXhpAttr, env, c.XhpAttrs)
	out.Reqs = MapSlice(func(env Env, p Pair[*Hint, RequireKind]) Pair[*Hint, RequireKind] {
		return MapFirst(t.self.TransformHint, env, p)
	}, env, c.Reqs)
	out.Implements = MapSlice(t.self.TransformHint, env, c.Implements)
	out.WhereConstraints = MapSlice(t.self.TransformWhereConstraint, env, c.WhereConstraints)
	out.Consts = MapSlice(t.self.TransformClassConst, env, c.Consts)
	out.TypeConsts = MapSlice(t.self.TransformClassTypeConst, env, c.TypeConsts)
	out.Vars = MapSlice(t.self.TransformClassVar, env, c.Vars)
	out.Enum = MapOption(t.self.TransformEnum, env, c.Enum)
	out.Methods = MapSlice(t.self.TransformMethod, env, c.Methods)
	out.UserAttributes = MapSlice(t.self.TransformUserAttribute, env, c.UserAttributes)
	out.FileAttributes = MapSlice(t.self.TransformFileAttribute, env, c.FileAttributes)

	return &out
}

// TransformFun is the raw deep default for function declarations.
func (t *Traversal[Env]) TransformFun(env Env, f *Fun) *Fun {
	if f == nil {
		return nil
	}

	out := *f
	out.Annot = t.self.DeclAnnot(env, f.Annot)
	out.ReturnType = MapOption(t.self.TransformHint, env, f.ReturnType)
	out.Tparams = MapSlice(t.self.TransformTparam, env, f.Tparams)
	out.WhereConstraints = MapSlice(t.self.TransformWhereConstraint, env, f.WhereConstraints)
	out.Params = MapSlice(t.self.TransformFunParam, env, f.Params)
	out.Ctxs = MapOption(t.self.TransformContexts, env, f.Ctxs)
	out.UnsafeCtxs = MapOption(t.self.TransformContexts, env, f.UnsafeCtxs)
	out.Body = t.self.TransformBody(env, f.Body)
	out.UserAttributes = MapSlice(t.self.TransformUserAttribute, env, f.UserAttributes)

	return &out
}

// TransformMethod is the raw deep default for method declarations.
func (t *Traversal[Env]) TransformMethod(env Env, m *Method) *Method {
	if m == nil {
		return nil
	}

	out := *m
	out.Annot = t.self.DeclAnnot(env, m.Annot)
	out.Tparams = MapSlice(t.self.TransformTparam, env, m.Tparams)
	out.WhereConstraints = MapSlice(t.self.TransformWhereConstraint, env, m.WhereConstraints)
	out.Params = MapSlice(t.self.TransformFunParam, env, m.Params)
	out.Ctxs = MapOption(t.self.TransformContexts, env, m.Ctxs)
	out.UnsafeCtxs = MapOption(t.self.TransformContexts, env, m.UnsafeCtxs)
	out.Body = t.self.TransformBody(env, m.Body)
	out.UserAttributes = MapSlice(t.self.TransformUserAttribute, env, m.UserAttributes)
	out.ReturnType = MapOption(t.self.TransformHint, env, m.ReturnType)

	return &out
}

// TransformClassVar is the raw deep default for property declarations.
func (t *Traversal[Env]) TransformClassVar(env Env, cv *ClassVar) *ClassVar {
	if cv == nil {
		return nil
	}

	out := *cv
	out.UserAttributes = MapSlice(t.self.TransformUserAttribute, env, cv.UserAttributes)
	out.Expr = MapOption(t.self.TransformExpr, env, cv.Expr)
	out.TypeHint = MapOption(t.self.TransformHint, env, cv.TypeHint)

	return &out
}

// TransformClassConst walks the optional type and value.
func (t *Traversal[Env]) TransformClassConst(env Env, cc *ClassConst) *ClassConst {
	if cc == nil {
		return nil
	}

	out := *cc
	out.TypeHint = MapOption(t.self.TransformHint, env, cc.TypeHint)
	out.Expr = MapOption(t.self.TransformExpr, env, cc.Expr)

	return &out
}

// TransformClassTypeConst walks the optional constraint and assigned type.
func (t *Traversal[Env]) TransformClassTypeConst(env Env, tc *ClassTypeConst) *ClassTypeConst {
	if tc == nil {
		return nil
	}

	out := *tc
	out.Constraint = MapOption(t.self.TransformHint, env, tc.Constraint)
	out.Type = MapOption(t.self.TransformHint, env, tc.Type)

	return &out
}

// TransformXhpAttr walks the declared type, backing property and inline
// enum values.
func (t *Traversal[Env]) TransformXhpAttr(env Env, xa *XhpAttr) *XhpAttr {
	if xa == nil {
		return nil
	}

	out := *xa
	out.TypeHint = MapOption(t.self.TransformHint, env, xa.TypeHint)
	out.Var = t.self.TransformClassVar(env, xa.Var)
	out.Enum = MapSlice(t.self.TransformExpr, env, xa.Enum)

	return &out
}

// TransformEnum walks the base, constraint and includes of an enum
// definition.
func (t *Traversal[Env]) TransformEnum(env Env, e *Enum) *Enum {
	if e == nil {
		return nil
	}

	out := *e
	out.Base = t.self.TransformHint(env, e.Base)
	out.Constraint = MapOption(t.self.TransformHint, env, e.Constraint)
	out.Includes = MapSlice(t.self.TransformHint, env, e.Includes)

	return &out
}

// TransformGconst is the raw deep default for global constants.
func (t *Traversal[Env]) TransformGconst(env Env, gc *Gconst) *Gconst {
	if gc == nil {
		return nil
	}

	out := *gc
	out.Annot = t.self.DeclAnnot(env, gc.Annot)
	out.TypeHint = MapOption(t.self.TransformHint, env, gc.TypeHint)
	out.Value = t.self.TransformExpr(env, gc.Value)

	return &out
}

// TransformTparam walks constraint bounds and attributes; variance,
// name and reification are leaf data.
func (t *Traversal[Env]) TransformTparam(env Env, tp *Tparam) *Tparam {
	if tp == nil {
		return nil
	}

	out := *tp
	out.Constraints = MapSlice(func(env Env, p Pair[ConstraintKind, *Hint]) Pair[ConstraintKind, *Hint] {
		return MapSecond(t.self.TransformHint, env, p)
	}, env, tp.Constraints)
	out.UserAttributes = MapSlice(t.self.TransformUserAttribute, env, tp.UserAttributes)

	return &out
}

// TransformWhereConstraint walks both sides of the clause.
func (t *Traversal[Env]) TransformWhereConstraint(env Env, wc *WhereConstraint) *WhereConstraint {
	if wc == nil {
		return nil
	}

	out := *wc
	out.Left = t.self.TransformHint(env, wc.Left)
	out.Right = t.self.TransformHint(env, wc.Right)

	return &out
}

// TransformFunParam walks the declared type, default value and attributes.
func (t *Traversal[Env]) TransformFunParam(env Env, fp *FunParam) *FunParam {
	if fp == nil {
		return nil
	}

	out := *fp
	out.Annot = t.self.ExprAnnot(env, fp.Annot)
	out.TypeHint = MapOption(t.self.TransformHint, env, fp.TypeHint)
	out.Expr = MapOption(t.self.TransformExpr, env, fp.Expr)
	out.UserAttributes = MapSlice(t.self.TransformUserAttribute, env, fp.UserAttributes)

	return &out
}

// TransformBody rewrites every statement of a body in order.
func (t *Traversal[Env]) TransformBody(env Env, b FuncBody) FuncBody {
	return FuncBody{Stmts: MapSlice(t.self.TransformStmt, env, b.Stmts)}
}

// TransformStmt dispatches on the statement shape.
func (t *Traversal[Env]) TransformStmt(env Env, s *Stmt) *Stmt {
	if s == nil {
		return nil
	}

	out := *s
	switch n := s.Node.(type) {
	case *SExpr:
		out.Node = &SExpr{Expr: t.self.TransformExpr(env, n.Expr)}
	case *SReturn:
		out.Node = &SReturn{Expr: MapOption(t.self.TransformExpr, env, n.Expr)}
	case *SIf:
		out.Node = &SIf{
			Cond: t.self.TransformExpr(env, n.Cond),
			Then: MapSlice(t.self.TransformStmt, env, n.Then),
			Else: MapSlice(t.self.TransformStmt, env, n.Else),
		}
	case *SBlock:
		out.Node = &SBlock{Stmts: MapSlice(t.self.TransformStmt, env, n.Stmts)}
	case *SNoop:
		out.Node = &SNoop{}
	}

	return &out
}

// TransformExpr rewrites the annotation slot, then dispatches on the
// expression shape.
func (t *Traversal[Env]) TransformExpr(env Env, e *Expr) *Expr {
	if e == nil {
		return nil
	}

	out := *e
	out.Annot = t.self.ExprAnnot(env, e.Annot)
	switch n := e.Node.(type) {
	case *EInt:
		out.Node = &EInt{Value: n.Value}
	case *EString:
		out.Node = &EString{Value: n.Value}
	case *EBool:
		out.Node = &EBool{Value: n.Value}
	case *ENull:
		out.Node = &ENull{}
	case *ELvar:
		out.Node = &ELvar{Name: n.Name}
	case *EId:
		out.Node = &EId{Id: n.Id}
	case *ECall:
		out.Node = &ECall{
			Callee: t.self.TransformExpr(env, n.Callee),
			Args:   MapSlice(t.self.TransformExpr, env, n.Args),
		}
	case *EBinop:
		out.Node = &EBinop{
			Op:    n.Op,
			Left:  t.self.TransformExpr(env, n.Left),
			Right: t.self.TransformExpr(env, n.Right),
		}
	case *ENew:
		out.Node = &ENew{
			Class: n.Class,
			Args:  MapSlice(t.self.TransformExpr, env, n.Args),
		}
	case *ECast:
		out.Node = &ECast{
			Hint: t.self.TransformHint(env, n.Hint),
			Expr: t.self.TransformExpr(env, n.Expr),
		}
	}

	return &out
}

// TransformHint dispatches on the hint shape. Contexts never arrive
// here directly; they come in through TransformContext, which delegates
// to this transform unless a pass overrides it.
func (t *Traversal[Env]) TransformHint(env Env, h *Hint) *Hint {
	if h == nil {
		return nil
	}

	out := *h
	switch n := h.Node.(type) {
	case *HApply:
		out.Node = &HApply{
			Class: n.Class,
			Args:  MapSlice(t.self.TransformHint, env, n.Args),
		}
	case *HOption:
		out.Node = &HOption{Inner: t.self.TransformHint(env, n.Inner)}
	case *HTuple:
		out.Node = &HTuple{Elems: MapSlice(t.self.TransformHint, env, n.Elems)}
	case *HFun:
		out.Node = &HFun{Fun: t.self.TransformHintFun(env, n.Fun)}
	case *HPrim:
		out.Node = &HPrim{Prim: n.Prim}
	}

	return &out
}

// TransformHintFun is the raw deep default for function-type hints.
func (t *Traversal[Env]) TransformHintFun(env Env, hf *HintFun) *HintFun {
	if hf == nil {
		return nil
	}

	out := *hf
	out.ParamTypes = MapSlice(t.self.TransformHint, env, hf.ParamTypes)
	out.Variadic = MapOption(t.self.TransformHint, env, hf.Variadic)
	out.Ctxs = MapOption(t.self.TransformContexts, env, hf.Ctxs)
	out.Return = t.self.TransformHint(env, hf.Return)

	return &out
}

// TransformContexts at the base layer treats every context as a plain
// hint. Rewriter shadows this to route contexts through the
// context-position hook instead.
func (t *Traversal[Env]) TransformContexts(env Env, c *Contexts) *Contexts {
	if c == nil {
		return nil
	}

	out := *c
	out.Ctxs = MapSlice(t.self.TransformHint, env, c.Ctxs)

	return &out
}

// TransformUserAttribute walks the argument expressions; the name is leaf.
func (t *Traversal[Env]) TransformUserAttribute(env Env, ua *UserAttribute) *UserAttribute {
	if ua == nil {
		return nil
	}

	out := *ua
	out.Params = MapSlice(t.self.TransformExpr, env, ua.Params)

	return &out
}

// TransformFileAttribute walks the attribute group.
func (t *Traversal[Env]) TransformFileAttribute(env Env, fa *FileAttribute) *FileAttribute {
	if fa == nil {
		return nil
	}

	out := *fa
	out.UserAttributes = MapSlice(t.self.TransformUserAttribute, env, fa.UserAttributes)

	return &out
}
