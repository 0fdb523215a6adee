package ast

// Prefix is a node that may be indexed, called or parenthesized further:
// Identifier, Call, Field, Index, Parenthese.
type Prefix interface {
	isPrefix()
}

// Variable is an assignable left-hand side: Identifier, Field, Index.
type Variable interface {
	isVariable()
}

// IdentifierExpression is a bare name. It doubles as an Expression (reading
// the variable), a Prefix (the receiver of `.field`, `[key]` or a call) and
// a Variable (an assignment target) — the three node categories that share
// this single shape in the source grammar.
type IdentifierExpression struct {
	Name     string
	Location Location
}

func (*IdentifierExpression) isExpression() {}
func (*IdentifierExpression) isPrefix()     {}
func (*IdentifierExpression) isVariable()   {}

// LocalVariable is the richer, canonical identifier form used by
// LocalAssignStatement, NumericForStatement and GenericForStatement: a bare
// name plus whatever trivia is attached to its position in the variable
// list (e.g. the following comma).
type LocalVariable struct {
	Name     string
	Attribute string // Lua 5.4 <const>/<close>, empty otherwise
	Trivia   *Trivia
	Location Location
}

// FieldExpression is `prefix.field`. It is simultaneously an Expression, a
// Prefix and a Variable.
type FieldExpression struct {
	Object   Prefix
	Field    string
	Trivia   *Trivia
	Location Location
}

func (*FieldExpression) isExpression() {}
func (*FieldExpression) isPrefix()     {}
func (*FieldExpression) isVariable()   {}

// IndexExpression is `prefix[key]`. It is simultaneously an Expression, a
// Prefix and a Variable.
type IndexExpression struct {
	Object   Prefix
	Key      Expression
	Trivia   *Trivia
	Location Location
}

func (*IndexExpression) isExpression() {}
func (*IndexExpression) isPrefix()     {}
func (*IndexExpression) isVariable()   {}

// ParentheseExpression is `(expression)`. A parenthese truncates a call's
// multiple return values to one, so it is kept distinct from its inner
// expression rather than unwrapped.
type ParentheseExpression struct {
	Inner    Expression
	Trivia   *Trivia
	Location Location
}

func (*ParentheseExpression) isExpression() {}
func (*ParentheseExpression) isPrefix()     {}
