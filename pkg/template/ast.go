package template

// Node is an element of a parsed template.
type Node interface {
	node()
}

// Text is literal output, including any {{...}} sequence that is not a
// recognized tag.
type Text struct {
	Value string
}

// Variable is a {{name}} token.
type Variable struct {
	Name   string
	Offset int
}

// Conditional is a {{#if name}}...{{/if}} block.
type Conditional struct {
	Name   string
	Body   []Node
	Offset int
}

func (Text) node()         {}
func (Variable) node()     {}
func (*Conditional) node() {}

// raw returns the source form of the variable token.
func (v Variable) raw() string {
	return openDelim + v.Name + closeDelim
}
