package ast

// Statement is one node in a block's statement list: Assign, Do, Call,
// Function, GenericFor, If, LocalAssign, LocalFunction, NumericFor,
// Repeat, While.
type Statement interface {
	isStatement()
}

// LastStatement is the optional terminal of a block: Break or Return.
type LastStatement interface {
	isLastStatement()
}

// BreakStatement ends the enclosing loop.
type BreakStatement struct {
	Location Location
}

func (*BreakStatement) isLastStatement() {}

// ReturnStatement ends the enclosing function, yielding zero or more
// expressions.
type ReturnStatement struct {
	Expressions []Expression
	Trivia      *Trivia
	Location    Location
}

func (*ReturnStatement) isLastStatement() {}

// AssignStatement is `variables = values`. |variables| >= 1, |values| >= 1.
type AssignStatement struct {
	Variables []Variable
	Values    []Expression
	Trivia    *Trivia
	Location  Location
}

func (*AssignStatement) isStatement() {}

// DoStatement is a bare `do ... end` scope with no control-flow semantics
// of its own.
type DoStatement struct {
	Body     *Block
	Location Location
}

func (*DoStatement) isStatement() {}

// CallStatement is a function call used for its side effects, its return
// value discarded.
type CallStatement struct {
	Call     *FunctionCall
	Location Location
}

func (*CallStatement) isStatement() {}

// FunctionStatement is a named function definition, possibly dotted and/or
// a method (`function a.b:c() end`).
type FunctionStatement struct {
	Name     *FunctionName
	Body     *FunctionBody
	Location Location
}

func (*FunctionStatement) isStatement() {}

// GenericForStatement is `for <identifiers> in <expressions> do <body> end`.
// |identifiers| >= 1, |expressions| >= 1.
type GenericForStatement struct {
	Identifiers []*LocalVariable
	Expressions []Expression
	Body        *Block
	Trivia      *Trivia
	Location    Location
}

func (*GenericForStatement) isStatement() {}

// IfBranch is one `condition then body` arm of an IfStatement.
type IfBranch struct {
	Condition Expression
	Body      *Block
}

// IfStatement has at least one branch and an optional else block.
type IfStatement struct {
	Branches []*IfBranch
	Else     *Block
	Trivia   *Trivia
	Location Location
}

func (*IfStatement) isStatement() {}

// LocalAssignStatement is `local <variables> = <values>`. |variables| >= 1,
// |values| >= 0; fewer values than variables leaves a variable
// uninitialized, more values than variables discards the extras. This is
// the richer canonical variant: variables are LocalVariable objects
// carrying their own optional trivia, not bare strings.
type LocalAssignStatement struct {
	Variables []*LocalVariable
	Values    []Expression
	Trivia    *Trivia
	Location  Location
}

func (*LocalAssignStatement) isStatement() {}

// HasValues reports whether any value expressions are present.
func (s *LocalAssignStatement) HasValues() bool {
	return len(s.Values) > 0
}

// AppendAssignment appends a (variable, optional value) pair.
func (s *LocalAssignStatement) AppendAssignment(variable *LocalVariable, value Expression) {
	s.Variables = append(s.Variables, variable)
	if value != nil {
		for len(s.Values) < len(s.Variables)-1 {
			s.Values = append(s.Values, nil)
		}
		s.Values = append(s.Values, value)
	}
}

// ForEachAssignment iterates (variable, optional value) pairs, one per
// variable, so rules can operate symmetrically on the shorter of the two
// lists.
func (s *LocalAssignStatement) ForEachAssignment(fn func(variable *LocalVariable, value Expression, hasValue bool)) {
	for i, variable := range s.Variables {
		if i < len(s.Values) {
			fn(variable, s.Values[i], true)
		} else {
			fn(variable, nil, false)
		}
	}
}

// VariableCount reports the number of declared variables.
func (s *LocalAssignStatement) VariableCount() int {
	return len(s.Variables)
}

// ValueCount reports the number of provided value expressions.
func (s *LocalAssignStatement) ValueCount() int {
	return len(s.Values)
}

// LocalFunctionStatement is `local function name() ... end`, distinct from
// a LocalAssignStatement assigning a FunctionExpression so the function
// can refer to itself recursively by name.
type LocalFunctionStatement struct {
	Name     string
	Body     *FunctionBody
	Location Location
}

func (*LocalFunctionStatement) isStatement() {}

// NumericForStatement carries start, end, optional step, a loop variable
// identifier, and a body block.
type NumericForStatement struct {
	Variable *LocalVariable
	Start    Expression
	End      Expression
	Step     Expression // nil if absent
	Body     *Block
	Trivia   *Trivia
	Location Location
}

func (*NumericForStatement) isStatement() {}

// RepeatStatement is `repeat <body> until <condition>`; unlike While, the
// condition may reference locals declared in the body.
type RepeatStatement struct {
	Body      *Block
	Condition Expression
	Location  Location
}

func (*RepeatStatement) isStatement() {}

// WhileStatement is `while <condition> do <body> end`.
type WhileStatement struct {
	Condition Expression
	Body      *Block
	Location  Location
}

func (*WhileStatement) isStatement() {}
