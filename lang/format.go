package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Node is a parsed snippet, either an [*Expr] or a [*Definition].
type Node interface {
	fmt.Stringer

	// ToNative converts the node to nested Go maps, slices and scalars.
	ToNative() any

	print(w io.Writer, depth int) error
}

var (
	_ Node = (*Expr)(nil)
	_ Node = (*Definition)(nil)
)

// ToNative converts the expression to a native Go value:
// nil for Nil, int64 for Int, string for Ident, and a single-key map from the
// head name to the argument list for Call.
func (e *Expr) ToNative() any {
	switch e.Kind {
	case ExprInt:
		return e.Int

	case ExprIdent:
		return string(e.Ident)

	case ExprCall:
		args := make([]any, len(e.Args))
		for i, arg := range e.Args {
			args[i] = arg.ToNative()
		}

		return map[string]any{string(e.Ident): args}

	default:
		return nil
	}
}

// ToNative converts the definition to a single-key map from its name to
// either the value expression or, for functions, its parameters and body.
func (d *Definition) ToNative() any {
	if d.Kind != DefineFunction {
		return map[string]any{string(d.Name): d.Value.ToNative()}
	}

	params := make([]any, len(d.Params))
	for i, p := range d.Params {
		params[i] = string(p)
	}

	return map[string]any{
		string(d.Name): map[string]any{
			"(parameters)": params,
			"(body)":       d.Body.ToNative(),
		},
	}
}

// Format writes the node in canonical source syntax.
func Format(w io.Writer, node Node) error {
	_, err := fmt.Fprintln(w, node.String())

	return err
}

// FormatJSON writes the node as JSON.
func FormatJSON(w io.Writer, node Node, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(
			node.ToNative(), "", strings.Repeat(" ", indent),
		)
	} else {
		jsonData, err = json.Marshal(node.ToNative())
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the node as YAML. An indent of zero selects flow style.
func FormatYAML(ctx context.Context, w io.Writer, node Node, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, node.ToNative(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// Print writes an indented tree of the node, one line per AST node.
func Print(w io.Writer, node Node) error {
	return node.print(w, 0)
}

func (e *Expr) print(w io.Writer, depth int) error {
	pad := strings.Repeat("  ", depth)

	var err error

	switch e.Kind {
	case ExprInt:
		_, err = fmt.Fprintf(w, "%sInt %d\n", pad, e.Int)

	case ExprIdent:
		_, err = fmt.Fprintf(w, "%sIdent %s\n", pad, e.Ident)

	case ExprCall:
		_, err = fmt.Fprintf(w, "%sCall %s\n", pad, e.Ident)

	default:
		_, err = fmt.Fprintf(w, "%sNil\n", pad)
	}

	if err != nil {
		return err
	}

	for _, arg := range e.Args {
		if err := arg.print(w, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (d *Definition) print(w io.Writer, depth int) error {
	pad := strings.Repeat("  ", depth)

	if d.Kind != DefineFunction {
		if _, err := fmt.Fprintf(w, "%sDefinition %s\n", pad, d.Name); err != nil {
			return err
		}

		return d.Value.print(w, depth+1)
	}

	params := make([]string, len(d.Params))
	for i, p := range d.Params {
		params[i] = string(p)
	}

	_, err := fmt.Fprintf(w, "%sFunction %s (%s)\n",
		pad, d.Name, strings.Join(params, " "))
	if err != nil {
		return err
	}

	return d.Body.print(w, depth+1)
}
