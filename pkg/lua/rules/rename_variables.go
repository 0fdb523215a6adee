package rules

import (
	"github.com/darklua-go/darklua/pkg/lua/ast"
)

// RenameVariables replaces every local variable and function parameter
// name with a short generated name, following the language's shadowing
// rules. Free (global) names are never renamed. The generator avoids only
// keywords and the configured globals, so a free name that is not listed
// in globals can be shadowed by a generated local. It walks the tree itself rather than
// through a MutatingProcessor, since the shared walker has no scope-exit
// hook and a correct renamer must pop a scope the moment its block ends.
type RenameVariables struct {
	globals []string
}

// NewRenameVariables constructs a default-configured rule: no reserved
// globals beyond what the renamer already avoids by construction.
func NewRenameVariables() *RenameVariables {
	return &RenameVariables{}
}

func (*RenameVariables) Name() string { return "rename_variables" }

// Configure accepts a single optional property, "globals": a list of
// names the generator must never produce, so a generated local can never
// shadow a name the rule is told is meaningful as a global.
func (r *RenameVariables) Configure(properties RuleProperties) error {
	for key := range properties {
		if key != "globals" {
			return UnexpectedProperty(key)
		}
	}
	globals, present, err := properties.StringListProperty("globals")
	if err != nil {
		return err
	}
	if present {
		r.globals = globals
	}
	return nil
}

func (r *RenameVariables) SerializeToProperties() RuleProperties {
	if len(r.globals) == 0 {
		return RuleProperties{}
	}
	return RuleProperties{"globals": StringListValue(r.globals)}
}

func (r *RenameVariables) Process(block *ast.Block, context *Context) error {
	renamer := newRenamer(r.globals)
	renamer.renameBlock(block)
	return nil
}

// renamer tracks a stack of lexical scopes, each mapping an original name
// to its generated replacement, plus the set of names the generator must
// never produce.
type renamer struct {
	scopes   []map[string]string
	reserved map[string]bool
	counter  int
}

func newRenamer(globals []string) *renamer {
	reserved := make(map[string]bool, len(globals)+len(luaKeywords))
	for _, g := range globals {
		reserved[g] = true
	}
	for keyword := range luaKeywords {
		reserved[keyword] = true
	}
	return &renamer{reserved: reserved}
}

func (r *renamer) push() {
	r.scopes = append(r.scopes, map[string]string{})
}

func (r *renamer) pop() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// bind introduces name into the current scope, generating and returning
// its replacement.
func (r *renamer) bind(name string) string {
	generated := r.generate()
	r.scopes[len(r.scopes)-1][name] = generated
	return generated
}

// lookup resolves name against the scope stack innermost-first, returning
// the original name unchanged if it is free (not bound anywhere).
func (r *renamer) lookup(name string) string {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if generated, ok := r.scopes[i][name]; ok {
			return generated
		}
	}
	return name
}

// generate returns the next short name in spreadsheet-column order
// (a, b, ..., z, aa, ab, ...), skipping any reserved name.
func (r *renamer) generate() string {
	for {
		name := shortName(r.counter)
		r.counter++
		if !r.reserved[name] {
			return name
		}
	}
}

func shortName(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	if n < 26 {
		return string(alphabet[n])
	}
	return shortName(n/26-1) + string(alphabet[n%26])
}

func (r *renamer) renameBlock(block *ast.Block) {
	r.push()
	r.renameBlockContents(block)
	r.pop()
}

// renameBlockContents renames a block's statements and terminal without
// pushing its own scope; used for a function body's block, whose scope
// also hosts the parameter bindings.
func (r *renamer) renameBlockContents(block *ast.Block) {
	for _, statement := range block.Statements {
		r.renameStatement(statement)
	}
	if block.Terminal != nil {
		r.renameLastStatement(block.Terminal)
	}
}

func (r *renamer) renameStatement(statement ast.Statement) {
	switch s := statement.(type) {
	case *ast.AssignStatement:
		for _, variable := range s.Variables {
			r.renameVariable(variable)
		}
		for _, value := range s.Values {
			r.renameExpression(value)
		}
	case *ast.DoStatement:
		r.renameBlock(s.Body)
	case *ast.CallStatement:
		r.renameFunctionCall(s.Call)
	case *ast.FunctionStatement:
		// The name's dotted fields and method name are not local bindings,
		// but the base identifier is an ordinary prefix access and must be
		// resolved the same as any other variable reference.
		s.Name.Base = r.lookup(s.Name.Base)
		r.renameFunctionBody(s.Body)
	case *ast.GenericForStatement:
		for _, expression := range s.Expressions {
			r.renameExpression(expression)
		}
		r.push()
		for _, identifier := range s.Identifiers {
			identifier.Name = r.bind(identifier.Name)
		}
		r.renameBlockContents(s.Body)
		r.pop()
	case *ast.IfStatement:
		for _, branch := range s.Branches {
			r.renameExpression(branch.Condition)
			r.renameBlock(branch.Body)
		}
		if s.Else != nil {
			r.renameBlock(s.Else)
		}
	case *ast.LocalAssignStatement:
		for _, value := range s.Values {
			r.renameExpression(value)
		}
		for _, variable := range s.Variables {
			variable.Name = r.bind(variable.Name)
		}
	case *ast.LocalFunctionStatement:
		// Bind before descending into the body, so a recursive call can
		// resolve the function's own new name.
		s.Name = r.bind(s.Name)
		r.renameFunctionBody(s.Body)
	case *ast.NumericForStatement:
		r.renameExpression(s.Start)
		r.renameExpression(s.End)
		if s.Step != nil {
			r.renameExpression(s.Step)
		}
		r.push()
		s.Variable.Name = r.bind(s.Variable.Name)
		r.renameBlockContents(s.Body)
		r.pop()
	case *ast.RepeatStatement:
		// The until-condition can see locals from the body, so it is
		// renamed inside the body's scope rather than after it closes.
		r.push()
		r.renameBlockContents(s.Body)
		r.renameExpression(s.Condition)
		r.pop()
	case *ast.WhileStatement:
		r.renameExpression(s.Condition)
		r.renameBlock(s.Body)
	case *ast.BreakStatement:
	}
}

func (r *renamer) renameLastStatement(last ast.LastStatement) {
	if ret, ok := last.(*ast.ReturnStatement); ok {
		for _, expression := range ret.Expressions {
			r.renameExpression(expression)
		}
	}
}

func (r *renamer) renameFunctionBody(body *ast.FunctionBody) {
	r.push()
	renamedParameters := make([]string, len(body.Parameters))
	for i, parameter := range body.Parameters {
		renamedParameters[i] = r.bind(parameter)
	}
	body.Parameters = renamedParameters
	r.renameBlockContents(body.Block)
	r.pop()
}

func (r *renamer) renameExpression(expression ast.Expression) {
	switch e := expression.(type) {
	case *ast.IdentifierExpression:
		e.Name = r.lookup(e.Name)
	case *ast.BinaryExpression:
		r.renameExpression(e.Left)
		r.renameExpression(e.Right)
	case *ast.UnaryExpression:
		r.renameExpression(e.Operand)
	case *ast.ParentheseExpression:
		r.renameExpression(e.Inner)
	case *ast.FunctionExpression:
		r.renameFunctionBody(e.Body)
	case *ast.FieldExpression:
		r.renamePrefix(e.Object)
	case *ast.IndexExpression:
		r.renamePrefix(e.Object)
		r.renameExpression(e.Key)
	case *ast.FunctionCall:
		r.renameFunctionCall(e)
	case *ast.TableExpression:
		for _, entry := range e.Entries {
			r.renameTableEntry(entry)
		}
	}
}

func (r *renamer) renamePrefix(prefix ast.Prefix) {
	switch p := prefix.(type) {
	case *ast.IdentifierExpression:
		p.Name = r.lookup(p.Name)
	case *ast.FieldExpression:
		r.renamePrefix(p.Object)
	case *ast.IndexExpression:
		r.renamePrefix(p.Object)
		r.renameExpression(p.Key)
	case *ast.ParentheseExpression:
		r.renameExpression(p.Inner)
	case *ast.FunctionCall:
		r.renameFunctionCall(p)
	}
}

func (r *renamer) renameVariable(variable ast.Variable) {
	switch v := variable.(type) {
	case *ast.IdentifierExpression:
		v.Name = r.lookup(v.Name)
	case *ast.FieldExpression:
		r.renamePrefix(v.Object)
	case *ast.IndexExpression:
		r.renamePrefix(v.Object)
		r.renameExpression(v.Key)
	}
}

func (r *renamer) renameFunctionCall(call *ast.FunctionCall) {
	r.renamePrefix(call.Prefix)
	r.renameArguments(call.Arguments)
}

func (r *renamer) renameArguments(arguments ast.Arguments) {
	switch a := arguments.(type) {
	case *ast.TupleArguments:
		for _, expression := range a.Expressions {
			r.renameExpression(expression)
		}
	case *ast.TableArguments:
		r.renameExpression(a.Table)
	case *ast.StringArguments:
	}
}

func (r *renamer) renameTableEntry(entry ast.TableEntry) {
	switch e := entry.(type) {
	case *ast.FieldEntry:
		r.renameExpression(e.Value)
	case *ast.IndexEntry:
		r.renameExpression(e.Key)
		r.renameExpression(e.Value)
	case *ast.ValueEntry:
		r.renameExpression(e.Value)
	}
}
