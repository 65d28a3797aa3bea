package template

import (
	"fmt"
	"slices"
	"strings"
)

// Option configures parsing and execution.
type Option func(*config)

type config struct {
	strict bool
}

// WithStrictVariables makes Execute fail with ErrMissingBinding when a
// rendered {{name}} has no value. By default such tokens are written as-is.
func WithStrictVariables() Option {
	return func(c *config) {
		c.strict = true
	}
}

// Template is a parsed template. It is immutable and safe for concurrent use.
type Template struct {
	source       string
	nodes        []Node
	variables    []string
	conditionals []string
	cfg          config
}

// Parse parses src. Malformed conditional markup is reported as *SyntaxError.
func Parse(src string, opts ...Option) (*Template, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	nodes, err := parse(tokens)
	if err != nil {
		return nil, err
	}

	t := &Template{source: src, nodes: nodes, cfg: cfg}
	t.variables, t.conditionals = collectNames(nodes)
	return t, nil
}

// MustParse is like Parse but panics on error. Intended for templates
// compiled into the binary.
func MustParse(src string, opts ...Option) *Template {
	t, err := Parse(src, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the original template text.
func (t *Template) Source() string {
	return t.source
}

// Nodes returns the parsed tree. Callers must not modify it.
func (t *Template) Nodes() []Node {
	return t.nodes
}

// Variables returns the sorted, unique variable names referenced anywhere
// in the template, including inside conditionals.
func (t *Template) Variables() []string {
	return slices.Clone(t.variables)
}

// Conditionals returns the sorted, unique names used by {{#if}} blocks.
func (t *Template) Conditionals() []string {
	return slices.Clone(t.conditionals)
}

// Execute renders the template with b. Output depends only on the template
// and b. Bound values are written verbatim and never re-scanned for tags.
func (t *Template) Execute(b *Bindings) (string, error) {
	var sb strings.Builder
	sb.Grow(len(t.source))
	if err := t.write(&sb, t.nodes, b); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (t *Template) write(sb *strings.Builder, nodes []Node, b *Bindings) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			sb.WriteString(n.Value)
		case Variable:
			if v, ok := b.Lookup(n.Name); ok {
				sb.WriteString(v)
				continue
			}
			if t.cfg.strict {
				return fmt.Errorf("%w: %s at offset %d", ErrMissingBinding, n.raw(), n.Offset)
			}
			sb.WriteString(n.raw())
		case *Conditional:
			if !b.Truthy(n.Name) {
				continue
			}
			if err := t.write(sb, n.Body, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// Render parses src and executes it with b in one step.
//
// Example:
//
//	out, err := template.Render("Hello {{name}}{{#if note}}: {{note}}{{/if}}",
//	    template.FromMap(map[string]string{"name": "Jane"}))
//	// out == "Hello Jane"
func Render(src string, b *Bindings, opts ...Option) (string, error) {
	t, err := Parse(src, opts...)
	if err != nil {
		return "", err
	}
	return t.Execute(b)
}

func collectNames(nodes []Node) (vars, conds []string) {
	var walk func([]Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			switch n := n.(type) {
			case Variable:
				vars = append(vars, n.Name)
			case *Conditional:
				conds = append(conds, n.Name)
				walk(n.Body)
			}
		}
	}
	walk(nodes)

	slices.Sort(vars)
	slices.Sort(conds)
	return slices.Compact(vars), slices.Compact(conds)
}
