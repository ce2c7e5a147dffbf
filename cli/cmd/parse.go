package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/wbd/lang"
)

// Parse parses a snippet and prints its syntax tree in the chosen format.
type Parse struct {
	Native Native `cmd:"" default:"withargs" help:"Print canonical source (default)."`
	JSON   JSON   `cmd:""                    help:"Print as JSON."`
	YAML   YAML   `cmd:""                    help:"Print as YAML."`
	Tree   Tree   `cmd:""                    help:"Print as an indented tree."`
}

// Input is the positional argument shared by the parse subcommands.
type Input struct {
	Snippet string `arg:"" help:"Expression or definition to parse" name:"snippet"`
}

func (s Input) parse(format string) (lang.Node, error) {
	node, err := lang.Parse(lang.Code(s.Snippet))
	if err != nil {
		return nil, ErrParse.
			With(slog.String("format", format)).
			With(slog.String("snippet", s.Snippet)).
			Wrap(err)
	}

	return node, nil
}

// Native prints the snippet in canonical source form.
type Native struct {
	Input
}

// Run executes the native command.
func (n *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	node, err := n.parse("native")
	if err != nil {
		return err
	}

	return lang.Format(outputFrom(ctx), node)
}

// JSON prints the syntax tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Input
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	node, err := j.parse("json")
	if err != nil {
		return err
	}

	if err := lang.FormatJSON(outputFrom(ctx), node, j.Indent); err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return nil
}

// YAML prints the syntax tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output; 0 selects flow style" short:"i"`

	Input
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	node, err := y.parse("yaml")
	if err != nil {
		return err
	}

	if err := lang.FormatYAML(ctx, outputFrom(ctx), node, y.Indent); err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return nil
}

// Tree prints the syntax tree with one node per line.
type Tree struct {
	Input
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	node, err := t.parse("tree")
	if err != nil {
		return err
	}

	return lang.Print(outputFrom(ctx), node)
}
