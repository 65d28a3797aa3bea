package template

// parse turns the token stream into a node tree. Conditionals may nest;
// every {{#if}} must be closed by a matching {{/if}}.
func parse(tokens []token) ([]Node, error) {
	type frame struct {
		cond *Conditional
		raw  string
	}

	var (
		root  []Node
		stack []frame
	)

	appendNode := func(n Node) {
		if len(stack) == 0 {
			root = appendMerged(root, n)
			return
		}
		top := stack[len(stack)-1].cond
		top.Body = appendMerged(top.Body, n)
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokenText:
			appendNode(Text{Value: tok.value})
		case tokenVariable:
			appendNode(Variable{Name: tok.value, Offset: tok.offset})
		case tokenIf:
			stack = append(stack, frame{
				cond: &Conditional{Name: tok.value, Offset: tok.offset},
				raw:  tok.raw,
			})
		case tokenEndIf:
			if len(stack) == 0 {
				return nil, &SyntaxError{Tag: tok.raw, Offset: tok.offset, Reason: reasonUnexpected}
			}
			closed := stack[len(stack)-1].cond
			stack = stack[:len(stack)-1]
			appendNode(closed)
		}
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, &SyntaxError{Tag: open.raw, Offset: open.cond.Offset, Reason: reasonUnterminated}
	}
	return root, nil
}

// appendMerged joins adjacent text nodes.
func appendMerged(nodes []Node, n Node) []Node {
	if t, ok := n.(Text); ok && len(nodes) > 0 {
		if prev, ok := nodes[len(nodes)-1].(Text); ok {
			nodes[len(nodes)-1] = Text{Value: prev.Value + t.Value}
			return nodes
		}
	}
	return append(nodes, n)
}
