package lang

import (
	"context"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/ardnew/wbd/log"
)

// DefaultMaxDepth is the default limit on nested user function calls.
const DefaultMaxDepth = 10000

// Interpreter evaluates snippets against persistent session state: the
// top-level bindings and the user function table. Both grow as definitions
// arrive and are never pruned.
//
// An Interpreter is not safe for concurrent use. Independent Interpreters
// share nothing except an optional [Cache].
type Interpreter struct {
	env      *Environment
	funcs    map[Ident]*Function
	cache    *Cache
	logger   log.Logger
	maxDepth int
}

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithLogger sets the logger used to trace definitions and calls.
func WithLogger(logger log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// WithCache memoizes parsed snippets in c.
func WithCache(c *Cache) Option {
	return func(in *Interpreter) {
		in.cache = c
	}
}

// WithMaxDepth limits nested user function calls to depth. A runaway
// recursion then fails with [ErrMaxDepthExceeded] instead of exhausting the
// goroutine stack. Zero or less removes the limit.
func WithMaxDepth(depth int) Option {
	return func(in *Interpreter) {
		in.maxDepth = depth
	}
}

// New returns an Interpreter with empty state.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		env:      NewEnvironment(),
		funcs:    make(map[Ident]*Function),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Definition parses code as a definition and binds it.
func (in *Interpreter) Definition(ctx context.Context, code Code) error {
	def, err := in.parseDefinition(ctx, code)
	if err != nil {
		return err
	}

	return in.Define(ctx, def)
}

// Expr parses code as an expression and evaluates it. Evaluation never
// changes the session's bindings.
func (in *Interpreter) Expr(ctx context.Context, code Code) (Value, error) {
	expr, err := in.parseExpr(ctx, code)
	if err != nil {
		return Nil, err
	}

	return in.Evaluate(ctx, expr)
}

// Eval classifies code and runs it as a definition or an expression. A
// definition evaluates to [Nil].
func (in *Interpreter) Eval(ctx context.Context, code Code) (Value, error) {
	if Classify(code) == SnippetDefinition {
		return Nil, in.Definition(ctx, code)
	}

	return in.Expr(ctx, code)
}

// Define binds a parsed definition. A value definition is evaluated in the
// current scope and bound there; a function definition is stored without
// evaluating its body. Existing bindings of the same name are replaced.
func (in *Interpreter) Define(ctx context.Context, def *Definition) error {
	in.logger.TraceContext(ctx, "define",
		slog.String("name", string(def.Name)),
		slog.String("kind", def.Kind.String()))

	switch def.Kind {
	case DefineFunction:
		in.funcs[def.Name] = &Function{Params: def.Params, Body: def.Body}

	default:
		v, err := in.eval(ctx, def.Value)
		if err != nil {
			return err
		}

		in.env.Put(def.Name, v)
	}

	return nil
}

// Evaluate reduces a parsed expression to a value.
func (in *Interpreter) Evaluate(ctx context.Context, expr *Expr) (Value, error) {
	return in.eval(ctx, expr)
}

// Bindings returns the top-level variable bindings in name order.
func (in *Interpreter) Bindings() iter.Seq2[Ident, Value] {
	return in.env.Globals()
}

// Functions returns the user-defined functions in name order.
func (in *Interpreter) Functions() iter.Seq2[Ident, *Function] {
	return func(yield func(Ident, *Function) bool) {
		for _, name := range slices.Sorted(maps.Keys(in.funcs)) {
			if !yield(name, in.funcs[name]) {
				return
			}
		}
	}
}

// eval reduces expr in the current scope.
func (in *Interpreter) eval(ctx context.Context, expr *Expr) (Value, error) {
	switch expr.Kind {
	case ExprInt:
		return Int(expr.Int), nil

	case ExprIdent:
		return in.env.Get(expr.Ident), nil

	case ExprCall:
		return in.call(ctx, expr.Ident, expr.Args)

	default:
		return Nil, nil
	}
}

// call dispatches on the head identifier: built-in operators first, then
// user functions.
func (in *Interpreter) call(
	ctx context.Context,
	head Ident,
	args []*Expr,
) (Value, error) {
	switch head {
	case "+":
		return accumulate(ctx, in, args, 0, add, Int)

	case "*":
		return accumulate(ctx, in, args, 1, mul, Int)

	case "-":
		return accumulate(ctx, in, args, running{}, sub, orDefault(0))

	case "/":
		return accumulate(ctx, in, args, running{}, div, orDefault(1))

	case "if":
		return in.branch(ctx, args)
	}

	values := make([]Value, len(args))

	for i, arg := range args {
		v, err := in.eval(ctx, arg)
		if err != nil {
			return Nil, err
		}

		values[i] = v
	}

	return in.callFunction(ctx, head, values)
}

// branch evaluates the condition and then exactly one branch. The other
// branch is never evaluated. Missing branches are nil.
func (in *Interpreter) branch(ctx context.Context, args []*Expr) (Value, error) {
	arg := func(i int) (Value, error) {
		if i >= len(args) {
			return Nil, nil
		}

		return in.eval(ctx, args[i])
	}

	cond, err := arg(0)
	if err != nil {
		return Nil, err
	}

	if cond.Truthy() {
		return arg(1)
	}

	return arg(2)
}

// callFunction binds values to the parameters of the named function in a
// fresh scope and evaluates its body there. Missing arguments bind to nil;
// extra arguments are ignored. Unknown functions evaluate to nil.
func (in *Interpreter) callFunction(
	ctx context.Context,
	name Ident,
	values []Value,
) (Value, error) {
	fn, ok := in.funcs[name]
	if !ok {
		in.logger.TraceContext(ctx, "call unknown function",
			slog.String("function", string(name)))

		return Nil, nil
	}

	if in.maxDepth > 0 && in.env.Depth() > in.maxDepth {
		return Nil, ErrMaxDepthExceeded.
			With(slog.String("function", string(name))).
			With(slog.Int("max_depth", in.maxDepth))
	}

	in.logger.TraceContext(ctx, "call",
		slog.String("function", string(name)),
		slog.Int("args", len(values)),
		slog.Int("depth", in.env.Depth()))

	in.env.Enter()
	defer in.env.Exit()

	for i, param := range fn.Params {
		v := Nil
		if i < len(values) {
			v = values[i]
		}

		in.env.Put(param, v)
	}

	return in.eval(ctx, fn.Body)
}

func (in *Interpreter) parseExpr(ctx context.Context, code Code) (*Expr, error) {
	if in.cache != nil {
		return in.cache.Expr(ctx, code, in.logger)
	}

	return ParseExpr(string(code))
}

func (in *Interpreter) parseDefinition(
	ctx context.Context,
	code Code,
) (*Definition, error) {
	if in.cache != nil {
		return in.cache.Definition(ctx, code, in.logger)
	}

	return ParseDefinition(string(code))
}
