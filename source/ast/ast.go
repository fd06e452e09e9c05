package ast

import (
	"bytes"
	"strings"

	"github.com/Bux42/leekscript-vscode-sub000/source/token"
)

// The base Node interface. Every node keeps a reference to the token that
// produced it, for diagnostics.
type Node interface {
	Children() []Node
	GetToken() *token.Token
	String() string
}

// Nodes in alphabetical order. Helper structures are in a separate section
// at the bottom.

type ArrayLiteral struct {
	Token    token.Token
	Elements []Node
}

func (al *ArrayLiteral) Children() []Node       { return al.Elements }
func (al *ArrayLiteral) GetToken() *token.Token { return &al.Token }
func (al *ArrayLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, el := range al.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.String())
	}
	out.WriteString("]")
	return out.String()
}

type AssignmentExpression struct {
	Token    token.Token // the operator token
	Operator string      // "=", "+=", ...
	Left     Node
	Right    Node
}

func (ae *AssignmentExpression) Children() []Node       { return []Node{ae.Left, ae.Right} }
func (ae *AssignmentExpression) GetToken() *token.Token { return &ae.Token }
func (ae *AssignmentExpression) String() string {
	return "(" + ae.Left.String() + " " + ae.Operator + " " + ae.Right.String() + ")"
}

type BinaryExpression struct {
	Token    token.Token
	Operator string
	Left     Node
	Right    Node
}

func (be *BinaryExpression) Children() []Node       { return []Node{be.Left, be.Right} }
func (be *BinaryExpression) GetToken() *token.Token { return &be.Token }
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}

type BlockStatement struct {
	Token      token.Token
	Statements []Node
	// Synthetic blocks group the declarations desugared from one
	// multi-variable statement; they don't open a lexical scope.
	Synthetic bool
}

func (bs *BlockStatement) Children() []Node       { return bs.Statements }
func (bs *BlockStatement) GetToken() *token.Token { return &bs.Token }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) Children() []Node       { return []Node{} }
func (b *BooleanLiteral) GetToken() *token.Token { return &b.Token }
func (b *BooleanLiteral) String() string         { return b.Token.Literal }

type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) Children() []Node       { return []Node{} }
func (bs *BreakStatement) GetToken() *token.Token { return &bs.Token }
func (bs *BreakStatement) String() string         { return "break" }

type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Node
	Arguments []Node
}

func (ce *CallExpression) Children() []Node       { return append([]Node{ce.Function}, ce.Arguments...) }
func (ce *CallExpression) GetToken() *token.Token { return &ce.Token }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Function.String() + "(" + strings.Join(args, ", ") + ")"
}

type ClassDeclaration struct {
	Token        token.Token
	Name         token.Token
	Parent       *token.Token // nil if the class extends nothing
	Fields       []*FieldDeclaration
	Methods      []*FunctionDeclaration
	Constructors []*FunctionDeclaration
}

func (cd *ClassDeclaration) Children() []Node {
	result := []Node{}
	for _, f := range cd.Fields {
		result = append(result, f)
	}
	for _, c := range cd.Constructors {
		result = append(result, c)
	}
	for _, m := range cd.Methods {
		result = append(result, m)
	}
	return result
}
func (cd *ClassDeclaration) GetToken() *token.Token { return &cd.Token }
func (cd *ClassDeclaration) String() string {
	s := "class " + cd.Name.Literal
	if cd.Parent != nil {
		s = s + " extends " + cd.Parent.Literal
	}
	return s
}

type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) Children() []Node       { return []Node{} }
func (cs *ContinueStatement) GetToken() *token.Token { return &cs.Token }
func (cs *ContinueStatement) String() string         { return "continue" }

type DoWhileStatement struct {
	Token     token.Token
	Body      Node
	Condition Node
}

func (dw *DoWhileStatement) Children() []Node       { return []Node{dw.Body, dw.Condition} }
func (dw *DoWhileStatement) GetToken() *token.Token { return &dw.Token }
func (dw *DoWhileStatement) String() string {
	return "do " + dw.Body.String() + " while (" + dw.Condition.String() + ")"
}

type ExpressionStatement struct {
	Token      token.Token
	Expression Node
}

func (es *ExpressionStatement) Children() []Node       { return []Node{es.Expression} }
func (es *ExpressionStatement) GetToken() *token.Token { return &es.Token }
func (es *ExpressionStatement) String() string         { return es.Expression.String() }

type FieldDeclaration struct {
	Token    token.Token
	Name     token.Token
	TypeAnn  *TypeAnnotation // nil if untyped
	Value    Node            // nil if uninitialized
	IsStatic bool
}

func (fd *FieldDeclaration) Children() []Node {
	if fd.Value == nil {
		return []Node{}
	}
	return []Node{fd.Value}
}
func (fd *FieldDeclaration) GetToken() *token.Token { return &fd.Token }
func (fd *FieldDeclaration) String() string {
	s := fd.Name.Literal
	if fd.Value != nil {
		s = s + " = " + fd.Value.String()
	}
	return s
}

type ForInStatement struct {
	Token      token.Token
	Key        *token.Token // nil in the single-variable form
	Value      token.Token
	Collection Node
	Body       Node
}

func (fi *ForInStatement) Children() []Node       { return []Node{fi.Collection, fi.Body} }
func (fi *ForInStatement) GetToken() *token.Token { return &fi.Token }
func (fi *ForInStatement) String() string {
	s := "for (" + fi.Value.Literal + " in " + fi.Collection.String() + ") "
	if fi.Key != nil {
		s = "for (" + fi.Key.Literal + " : " + fi.Value.Literal + " in " + fi.Collection.String() + ") "
	}
	return s + fi.Body.String()
}

type ForStatement struct {
	Token     token.Token
	Init      Node // may be nil
	Condition Node // may be nil
	Update    Node // may be nil
	Body      Node
}

func (fs *ForStatement) Children() []Node {
	result := []Node{}
	for _, n := range []Node{fs.Init, fs.Condition, fs.Update, fs.Body} {
		if n != nil {
			result = append(result, n)
		}
	}
	return result
}
func (fs *ForStatement) GetToken() *token.Token { return &fs.Token }
func (fs *ForStatement) String() string {
	parts := []string{"", "", ""}
	if fs.Init != nil {
		parts[0] = fs.Init.String()
	}
	if fs.Condition != nil {
		parts[1] = fs.Condition.String()
	}
	if fs.Update != nil {
		parts[2] = fs.Update.String()
	}
	return "for (" + strings.Join(parts, "; ") + ") " + fs.Body.String()
}

type FunctionDeclaration struct {
	Token      token.Token
	Name       token.Token
	Parameters []*Parameter
	ReturnAnn  *TypeAnnotation // nil if undeclared
	Body       *BlockStatement
	IsStatic   bool
}

func (fd *FunctionDeclaration) Children() []Node       { return []Node{fd.Body} }
func (fd *FunctionDeclaration) GetToken() *token.Token { return &fd.Token }
func (fd *FunctionDeclaration) String() string {
	params := make([]string, len(fd.Parameters))
	for i, p := range fd.Parameters {
		params[i] = p.String()
	}
	return "function " + fd.Name.Literal + "(" + strings.Join(params, ", ") + ") " + fd.Body.String()
}

type FunctionExpression struct {
	Token      token.Token
	Parameters []*Parameter
	ReturnAnn  *TypeAnnotation
	Body       *BlockStatement
}

func (fe *FunctionExpression) Children() []Node       { return []Node{fe.Body} }
func (fe *FunctionExpression) GetToken() *token.Token { return &fe.Token }
func (fe *FunctionExpression) String() string {
	params := make([]string, len(fe.Parameters))
	for i, p := range fe.Parameters {
		params[i] = p.String()
	}
	return "function(" + strings.Join(params, ", ") + ") " + fe.Body.String()
}

type GlobalDeclaration struct {
	Token token.Token
	Name  token.Token
	Value Node // may be nil
}

func (gd *GlobalDeclaration) Children() []Node {
	if gd.Value == nil {
		return []Node{}
	}
	return []Node{gd.Value}
}
func (gd *GlobalDeclaration) GetToken() *token.Token { return &gd.Token }
func (gd *GlobalDeclaration) String() string {
	s := "global " + gd.Name.Literal
	if gd.Value != nil {
		s = s + " = " + gd.Value.String()
	}
	return s
}

type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Children() []Node       { return []Node{} }
func (i *Identifier) GetToken() *token.Token { return &i.Token }
func (i *Identifier) String() string         { return i.Value }

type IfStatement struct {
	Token       token.Token
	Condition   Node
	Consequence Node
	Alternative Node // may be nil
}

func (is *IfStatement) Children() []Node {
	result := []Node{is.Condition, is.Consequence}
	if is.Alternative != nil {
		result = append(result, is.Alternative)
	}
	return result
}
func (is *IfStatement) GetToken() *token.Token { return &is.Token }
func (is *IfStatement) String() string {
	s := "if (" + is.Condition.String() + ") " + is.Consequence.String()
	if is.Alternative != nil {
		s = s + " else " + is.Alternative.String()
	}
	return s
}

type IndexExpression struct {
	Token token.Token // the '[' token
	Left  Node
	Index Node
}

func (ie *IndexExpression) Children() []Node       { return []Node{ie.Left, ie.Index} }
func (ie *IndexExpression) GetToken() *token.Token { return &ie.Token }
func (ie *IndexExpression) String() string {
	return "(" + ie.Left.String() + "[" + ie.Index.String() + "])"
}

type MemberExpression struct {
	Token  token.Token // the '.' token
	Object Node
	Member token.Token
}

func (me *MemberExpression) Children() []Node       { return []Node{me.Object} }
func (me *MemberExpression) GetToken() *token.Token { return &me.Token }
func (me *MemberExpression) String() string {
	return "(" + me.Object.String() + "." + me.Member.Literal + ")"
}

type NewExpression struct {
	Token     token.Token
	Class     token.Token
	Arguments []Node
}

func (ne *NewExpression) Children() []Node       { return ne.Arguments }
func (ne *NewExpression) GetToken() *token.Token { return &ne.Token }
func (ne *NewExpression) String() string {
	args := make([]string, len(ne.Arguments))
	for i, a := range ne.Arguments {
		args[i] = a.String()
	}
	return "new " + ne.Class.Literal + "(" + strings.Join(args, ", ") + ")"
}

type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) Children() []Node       { return []Node{} }
func (nl *NullLiteral) GetToken() *token.Token { return &nl.Token }
func (nl *NullLiteral) String() string         { return "null" }

type NumberLiteral struct {
	Token     token.Token
	IsInteger bool
	Int       int64
	Real      float64
}

func (nl *NumberLiteral) Children() []Node       { return []Node{} }
func (nl *NumberLiteral) GetToken() *token.Token { return &nl.Token }
func (nl *NumberLiteral) String() string         { return nl.Token.Literal }

type PostfixExpression struct {
	Token    token.Token
	Operator string // "++" or "--"
	Left     Node
}

func (pe *PostfixExpression) Children() []Node       { return []Node{pe.Left} }
func (pe *PostfixExpression) GetToken() *token.Token { return &pe.Token }
func (pe *PostfixExpression) String() string {
	return "(" + pe.Left.String() + pe.Operator + ")"
}

type ReturnStatement struct {
	Token token.Token
	Value Node // nil for a bare 'return;'
}

func (rs *ReturnStatement) Children() []Node {
	if rs.Value == nil {
		return []Node{}
	}
	return []Node{rs.Value}
}
func (rs *ReturnStatement) GetToken() *token.Token { return &rs.Token }
func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "return"
	}
	return "return " + rs.Value.String()
}

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Children() []Node       { return []Node{} }
func (sl *StringLiteral) GetToken() *token.Token { return &sl.Token }
func (sl *StringLiteral) String() string         { return "\"" + sl.Value + "\"" }

type TernaryExpression struct {
	Token       token.Token // the '?' token
	Condition   Node
	Consequence Node
	Alternative Node
}

func (te *TernaryExpression) Children() []Node {
	return []Node{te.Condition, te.Consequence, te.Alternative}
}
func (te *TernaryExpression) GetToken() *token.Token { return &te.Token }
func (te *TernaryExpression) String() string {
	return "(" + te.Condition.String() + " ? " + te.Consequence.String() + " : " + te.Alternative.String() + ")"
}

type UnaryExpression struct {
	Token    token.Token
	Operator string
	Right    Node
}

func (ue *UnaryExpression) Children() []Node       { return []Node{ue.Right} }
func (ue *UnaryExpression) GetToken() *token.Token { return &ue.Token }
func (ue *UnaryExpression) String() string {
	return "(" + ue.Operator + ue.Right.String() + ")"
}

type VariableDeclaration struct {
	Token      token.Token // the declarator: var, let, const, or a type name
	Name       token.Token
	TypeAnn    *TypeAnnotation // nil if untyped
	Value      Node            // nil if uninitialized
	IsConstant bool
}

func (vd *VariableDeclaration) Children() []Node {
	if vd.Value == nil {
		return []Node{}
	}
	return []Node{vd.Value}
}
func (vd *VariableDeclaration) GetToken() *token.Token { return &vd.Token }
func (vd *VariableDeclaration) String() string {
	s := vd.Token.Literal + " " + vd.Name.Literal
	if vd.Value != nil {
		s = s + " = " + vd.Value.String()
	}
	return s
}

type WhileStatement struct {
	Token     token.Token
	Condition Node
	Body      Node
}

func (ws *WhileStatement) Children() []Node       { return []Node{ws.Condition, ws.Body} }
func (ws *WhileStatement) GetToken() *token.Token { return &ws.Token }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}

// Helper structures.

// A parameter of a function or method. The '@' marker makes it a reference
// parameter.
type Parameter struct {
	Name    token.Token
	TypeAnn *TypeAnnotation // nil if untyped
	IsRef   bool
}

func (p *Parameter) String() string {
	s := p.Name.Literal
	if p.IsRef {
		s = "@" + s
	}
	if p.TypeAnn != nil {
		s = p.TypeAnn.String() + " " + s
	}
	return s
}

// A type annotation as written in source: a name plus optional bracketed
// arguments, e.g. Array<integer>. The analyzer resolves it against the
// type bank; the parser only records the shape.
type TypeAnnotation struct {
	Token token.Token
	Name  string
	Args  []*TypeAnnotation
}

func (ta *TypeAnnotation) String() string {
	if len(ta.Args) == 0 {
		return ta.Name
	}
	args := make([]string, len(ta.Args))
	for i, a := range ta.Args {
		args[i] = a.String()
	}
	return ta.Name + "<" + strings.Join(args, ", ") + ">"
}
