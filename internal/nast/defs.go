// Package nast defines the elaborated AST ("nast") node kinds operated on by
// the front end's elaboration passes, together with a customizable
// tree-rewriting layer: a deep-copying base traversal (traverse.go) and a
// field-hook mapping visitor built on top of it (rewrite.go).
//
// Non-recursive leaf data (names, flags, literals, spans) is always copied
// unchanged by the rewriting layer; only the structurally-recursive fields
// listed on each composite kind participate in hook dispatch.
package nast

import (
	"github.com/akjkmeagabase/hhvm/internal/position"
)

// Id is a positioned name. It is leaf data everywhere it appears.
type Id struct {
	Span position.Span // Source span of the name
	Name string        // The name itself, fully qualified if elaborated
}

// ===== Hints =====

// Hint is a type hint: a positioned reference to a type-level shape.
// The identical representation is reused in context position (capability
// annotations); the rewriting layer distinguishes the two roles by
// dispatching context-position hints through a separate hook.
type Hint struct {
	Span position.Span // Source span of the hint
	Node HintNode      // The hint shape
}

// HintNode is the closed set of hint shapes.
type HintNode interface {
	hintNode()
}

// HApply is a (possibly parameterized) class or type name application,
// e.g. `Vector<int>` or a bare `MyClass`.
type HApply struct {
	Class Id      // Applied class/type name
	Args  []*Hint // Type arguments (empty for bare names)
}

// HOption is a nullable hint, e.g. `?int`.
type HOption struct {
	Inner *Hint // The wrapped hint
}

// HTuple is a tuple hint, e.g. `(int, string)`.
type HTuple struct {
	Elems []*Hint // Element hints in order
}

// HFun is a function-type hint, e.g. `(function(int): string)`.
type HFun struct {
	Fun *HintFun // The function shape
}

// HPrim is a primitive type hint.
type HPrim struct {
	Prim PrimKind // Which primitive
}

func (*HApply) hintNode()  {}
func (*HOption) hintNode() {}
func (*HTuple) hintNode()  {}
func (*HFun) hintNode()    {}
func (*HPrim) hintNode()   {}

// PrimKind enumerates primitive type hints.
type PrimKind int

const (
	PrimInt PrimKind = iota
	PrimFloat
	PrimString
	PrimBool
	PrimVoid
	PrimNull
)

func (p PrimKind) String() string {
	switch p {
	case PrimInt:
		return "int"
	case PrimFloat:
		return "float"
	case PrimString:
		return "string"
	case PrimBool:
		return "bool"
	case PrimVoid:
		return "void"
	case PrimNull:
		return "null"
	default:
		return "unknown"
	}
}

// HintFun is the decomposed shape of a function-type hint.
// Recursive fields: parameter types, optional variadic type, optional
// contexts, return type.
type HintFun struct {
	ParamTypes []*Hint   // Parameter type list
	Variadic   *Hint     // Variadic parameter type (nil if none)
	Ctxs       *Contexts // Context list (nil if unannotated)
	Return     *Hint     // Return type
	IsReadonly bool      // Readonly return marker (leaf)
}

// Contexts is an ordered sequence of hints used in context position,
// wrapped in a source-position tag. The tag is leaf data: the rewriting
// layer rewrites only the inner sequence.
type Contexts struct {
	Span position.Span // Source span of the context list (leaf)
	Ctxs []*Hint       // The contexts, each dispatched as a context
}

// ===== Expressions and statements =====

// Expr is an expression node. Annot is the opaque expression-level
// metadata slot ('ex): type or position information attached by earlier
// phases, passed through unexamined unless a pass overrides the
// expression-annotation hook.
type Expr struct {
	Annot any           // Opaque expression annotation (identity by default)
	Span  position.Span // Source span of the expression
	Node  ExprNode      // The expression shape
}

// ExprNode is the closed set of expression shapes.
type ExprNode interface {
	exprNode()
}

// EInt is an integer literal (textual form preserved).
type EInt struct {
	Value string // Literal text
}

// EString is a string literal.
type EString struct {
	Value string // Decoded literal value
}

// EBool is a boolean literal.
type EBool struct {
	Value bool
}

// ENull is the null literal.
type ENull struct{}

// ELvar is a local variable reference, e.g. `$x`.
type ELvar struct {
	Name string // Variable name including the sigil
}

// EId is a global name reference (function or constant).
type EId struct {
	Id Id // Referenced name
}

// ECall is a call expression.
type ECall struct {
	Callee *Expr   // Called expression
	Args   []*Expr // Arguments in order
}

// EBinop is a binary operation.
type EBinop struct {
	Op    string // Operator text (leaf)
	Left  *Expr  // Left operand
	Right *Expr  // Right operand
}

// ENew is an object instantiation `new C(...)`.
type ENew struct {
	Class Id      // Instantiated class name (leaf reference)
	Args  []*Expr // Constructor arguments
}

// ECast is a cast expression carrying a type-position hint.
type ECast struct {
	Hint *Hint // Target type, dispatched as a plain hint
	Expr *Expr // Operand
}

func (*EInt) exprNode()    {}
func (*EString) exprNode() {}
func (*EBool) exprNode()   {}
func (*ENull) exprNode()   {}
func (*ELvar) exprNode()   {}
func (*EId) exprNode()     {}
func (*ECall) exprNode()   {}
func (*EBinop) exprNode()  {}
func (*ENew) exprNode()    {}
func (*ECast) exprNode()   {}

// Stmt is a statement node.
type Stmt struct {
	Span position.Span // Source span of the statement
	Node StmtNode      // The statement shape
}

// StmtNode is the closed set of statement shapes.
type StmtNode interface {
	stmtNode()
}

// SExpr is an expression statement.
type SExpr struct {
	Expr *Expr
}

// SReturn is a return statement with an optional value.
type SReturn struct {
	Expr *Expr // Returned expression (nil for bare return)
}

// SIf is a conditional statement.
type SIf struct {
	Cond *Expr   // Condition
	Then []*Stmt // Then branch
	Else []*Stmt // Else branch (empty if absent)
}

// SBlock is a nested block.
type SBlock struct {
	Stmts []*Stmt
}

// SNoop is an empty statement.
type SNoop struct{}

func (*SExpr) stmtNode()   {}
func (*SReturn) stmtNode() {}
func (*SIf) stmtNode()     {}
func (*SBlock) stmtNode()  {}
func (*SNoop) stmtNode()   {}

// FuncBody is a function or method body.
type FuncBody struct {
	Stmts []*Stmt // Body statements in order
}

// ===== Attributes =====

// UserAttribute is a single user attribute, e.g. `<<Deprecated("msg")>>`.
type UserAttribute struct {
	Name   Id      // Attribute name (leaf)
	Params []*Expr // Attribute arguments
}

// FileAttribute is a file-level attribute group.
type FileAttribute struct {
	Span           position.Span    // Source span of the group (leaf)
	UserAttributes []*UserAttribute // Attributes in the group
}

// ===== Declaration components =====

// Variance is the declared variance of a type parameter (leaf data).
type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

// ConstraintKind is the kind of a type-parameter or where constraint
// (leaf data).
type ConstraintKind int

const (
	ConstraintAs ConstraintKind = iota
	ConstraintSuper
	ConstraintEq
)

func (c ConstraintKind) String() string {
	switch c {
	case ConstraintAs:
		return "as"
	case ConstraintSuper:
		return "super"
	case ConstraintEq:
		return "="
	default:
		return "unknown"
	}
}

// Tparam is a declared type parameter.
// Recursive fields: constraints, user attributes.
type Tparam struct {
	Variance       Variance                      // Declared variance (leaf)
	Name           Id                            // Parameter name (leaf)
	Constraints    []Pair[ConstraintKind, *Hint] // Constraint kind and bound hint
	Reified        bool                          // Reification marker (leaf)
	UserAttributes []*UserAttribute              // Attributes on the parameter
}

// WhereConstraint is a single clause of a where-constraint list.
type WhereConstraint struct {
	Left  *Hint          // Left hint
	Kind  ConstraintKind // Relation (leaf)
	Right *Hint          // Right hint
}

// FunParam is a declared function or method parameter.
type FunParam struct {
	Annot          any              // Opaque expression annotation (leaf slot)
	Span           position.Span    // Source span (leaf)
	Name           string           // Parameter name (leaf)
	IsVariadic     bool             // Variadic marker (leaf)
	TypeHint       *Hint            // Declared type (nil if untyped)
	Expr           *Expr            // Default value (nil if required)
	UserAttributes []*UserAttribute // Attributes on the parameter
}

// ===== Class members =====

// Visibility of a class member (leaf data).
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

// ClassVar is an instance or static property declaration.
// Recursive fields: user attributes, optional initializer, type hint.
type ClassVar struct {
	Span           position.Span    // Source span (leaf)
	Abstract       bool             // Abstract marker (leaf)
	Visibility     Visibility       // Member visibility (leaf)
	IsStatic       bool             // Static marker (leaf)
	Name           Id               // Property name (leaf)
	UserAttributes []*UserAttribute // Attributes on the property
	Expr           *Expr            // Initializer (nil if none)
	TypeHint       *Hint            // Declared type (nil if untyped)
}

// ClassConst is a class constant declaration.
type ClassConst struct {
	Span     position.Span // Source span (leaf)
	Name     Id            // Constant name (leaf)
	TypeHint *Hint         // Declared type (nil if untyped)
	Expr     *Expr         // Value (nil for abstract constants)
}

// ClassTypeConst is a type constant declaration.
type ClassTypeConst struct {
	Span       position.Span // Source span (leaf)
	Name       Id            // Type constant name (leaf)
	Constraint *Hint         // `as` constraint (nil if none)
	Type       *Hint         // Assigned type (nil for abstract)
}

// XhpAttrTag is the required/late-init marker on an xhp attribute (leaf).
type XhpAttrTag int

const (
	XhpAttrNone XhpAttrTag = iota
	XhpAttrRequired
	XhpAttrLateInit
)

// XhpAttr is an xhp attribute declaration on a class.
type XhpAttr struct {
	TypeHint *Hint      // Declared type (nil if enum-typed or untyped)
	Var      *ClassVar  // Backing property
	Tag      XhpAttrTag // Required/late-init marker (leaf)
	Enum     []*Expr    // Inline enum values (empty if none)
}

// RequireKind is the kind of a class requirement (leaf data).
type RequireKind int

const (
	RequireExtends RequireKind = iota
	RequireImplements
	RequireClass
)

// Enum is the enum definition attached to an enum class.
// Recursive fields: base hint, optional constraint, includes.
type Enum struct {
	Base       *Hint   // Underlying type
	Constraint *Hint   // `as` constraint (nil if none)
	Includes   []*Hint // Included enumerations
}

// ===== Declarations =====

// ClassKind is the flavor of a class-like declaration (leaf data).
type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindTrait
	KindEnum
)

// Class is a class-like declaration. Annot is the opaque
// declaration-level metadata slot ('en).
//
// Recursive fields, in declaration order: Tparams, Extends, Uses,
// XhpAttrUses, XhpAttrs, Reqs, Implements, WhereConstraints, Consts,
// TypeConsts, Vars, Enum, Methods, UserAttributes, FileAttributes.
type Class struct {
	Annot            any                        // Opaque declaration annotation
	Span             position.Span              // Source span (leaf)
	Final            bool                       // Final marker (leaf)
	IsXhp            bool                       // Xhp class marker (leaf)
	Kind             ClassKind                  // Class flavor (leaf)
	Name             Id                         // Class name (leaf)
	Tparams          []*Tparam                  // Type parameters
	Extends          []*Hint                    // Extended classes
	Uses             []*Hint                    // Used traits
	XhpAttrUses      []*Hint                    // Xhp attribute inclusions
	XhpAttrs         []*XhpAttr                 // Xhp attribute declarations
	Reqs             []Pair[*Hint, RequireKind] // Class reference × requirement kind
	Implements       []*Hint                    // Implemented interfaces
	WhereConstraints []*WhereConstraint         // Where clauses
	Consts           []*ClassConst              // Class constants
	TypeConsts       []*ClassTypeConst          // Type constants
	Vars             []*ClassVar                // Properties
	Enum             *Enum                      // Enum definition (nil unless enum)
	Methods          []*Method                  // Methods
	UserAttributes   []*UserAttribute           // Attributes on the class
	FileAttributes   []*FileAttribute           // File-level attribute groups
}

// FunKind marks sync/async functions (leaf data).
type FunKind int

const (
	FunSync FunKind = iota
	FunAsync
)

// Fun is a top-level function declaration. Annot is the opaque
// declaration-level metadata slot ('en).
//
// Recursive fields, in declaration order: ReturnType, Tparams,
// WhereConstraints, Params, Ctxs, UnsafeCtxs, Body, UserAttributes.
type Fun struct {
	Annot            any                // Opaque declaration annotation
	Span             position.Span      // Source span (leaf)
	Name             Id                 // Function name (leaf)
	Kind             FunKind            // Sync/async marker (leaf)
	ReturnType       *Hint              // Declared return type (nil if untyped)
	Tparams          []*Tparam          // Type parameters
	WhereConstraints []*WhereConstraint // Where clauses
	Params           []*FunParam        // Parameters
	Ctxs             *Contexts          // Declared contexts (nil if none)
	UnsafeCtxs       *Contexts          // Unsafe contexts (nil if none)
	Body             FuncBody           // Function body
	UserAttributes   []*UserAttribute   // Attributes on the function
}

// Method is a method declaration. It has the same recursive shape as Fun
// with the return type ordered last.
//
// Recursive fields, in declaration order: Tparams, WhereConstraints,
// Params, Ctxs, UnsafeCtxs, Body, UserAttributes, ReturnType.
type Method struct {
	Annot            any                // Opaque declaration annotation
	Span             position.Span      // Source span (leaf)
	Final            bool               // Final marker (leaf)
	Abstract         bool               // Abstract marker (leaf)
	IsStatic         bool               // Static marker (leaf)
	Visibility       Visibility         // Member visibility (leaf)
	Name             Id                 // Method name (leaf)
	Kind             FunKind            // Sync/async marker (leaf)
	Tparams          []*Tparam          // Type parameters
	WhereConstraints []*WhereConstraint // Where clauses
	Params           []*FunParam        // Parameters
	Ctxs             *Contexts          // Declared contexts (nil if none)
	UnsafeCtxs       *Contexts          // Unsafe contexts (nil if none)
	Body             FuncBody           // Method body
	UserAttributes   []*UserAttribute   // Attributes on the method
	ReturnType       *Hint              // Declared return type (nil if untyped)
}

// Gconst is a global constant declaration.
// Recursive fields: optional type hint, value expression.
type Gconst struct {
	Annot    any           // Opaque declaration annotation
	Span     position.Span // Source span (leaf)
	Name     Id            // Constant name (leaf)
	TypeHint *Hint         // Declared type (nil if untyped)
	Value    *Expr         // Constant value
}

// Def is a top-level definition.
type Def interface {
	defNode()
}

func (*Class) defNode()  {}
func (*Fun) defNode()    {}
func (*Gconst) defNode() {}

// Program is an ordered sequence of top-level definitions.
type Program []Def
