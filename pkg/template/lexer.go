package template

import "strings"

const (
	openDelim    = "{{"
	closeDelim   = "}}"
	ifKeyword    = "#if"
	endIfKeyword = "/if"
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenVariable
	tokenIf
	tokenEndIf
)

type token struct {
	kind   tokenKind
	value  string // text, or the identifier for variables and conditionals
	raw    string // source form of a tag
	offset int
}

// lex splits src into tokens in a single left-to-right pass.
//
// A "{{" that does not start a recognized tag is kept as text and scanning
// resumes at the next "{{", so "{{{name}}}" still yields the {{name}} token.
// The position of the nearest "}}" is reused by every "{{" before it,
// which keeps the scan linear in len(src).
func lex(src string) ([]token, error) {
	var (
		tokens  []token
		text    strings.Builder
		start   int // offset of pending text
		pos     int
		closeAt = -1 // index of the nearest "}}" at or after the last search
	)

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, token{kind: tokenText, value: text.String(), offset: start})
			text.Reset()
		}
	}
	appendText := func(from, to int) {
		if from >= to {
			return
		}
		if text.Len() == 0 {
			start = from
		}
		text.WriteString(src[from:to])
	}

	for pos < len(src) {
		idx := strings.Index(src[pos:], openDelim)
		if idx < 0 {
			appendText(pos, len(src))
			break
		}

		open := pos + idx
		appendText(pos, open)

		if closeAt < open+len(openDelim) {
			end := strings.Index(src[open+len(openDelim):], closeDelim)
			if end < 0 {
				// no closing delimiter anywhere: the rest is plain text
				appendText(open, len(src))
				break
			}
			closeAt = open + len(openDelim) + end
		}

		// a tag body never contains "{{": restart from the inner one
		if next := strings.Index(src[open+1:closeAt], openDelim); next >= 0 {
			appendText(open, open+1+next)
			pos = open + 1 + next
			continue
		}

		inner := src[open+len(openDelim) : closeAt]
		raw := src[open : closeAt+len(closeDelim)]

		tok, ok, err := classify(inner, raw, open)
		if err != nil {
			return nil, err
		}
		if !ok {
			// nothing before closeAt can open a tag
			appendText(open, closeAt)
			pos = closeAt
			continue
		}

		flush()
		tokens = append(tokens, tok)
		pos = closeAt + len(closeDelim)
	}

	flush()
	return tokens, nil
}

// classify recognizes the content between delimiters. It reports ok=false
// for sequences that are not tags and should stay literal.
func classify(inner, raw string, offset int) (token, bool, error) {
	switch {
	case inner == endIfKeyword:
		return token{kind: tokenEndIf, raw: raw, offset: offset}, true, nil

	case isIfHeader(inner):
		name := strings.TrimSpace(inner[len(ifKeyword):])
		if !isIdentifier(name) {
			return token{}, false, &SyntaxError{Tag: raw, Offset: offset, Reason: reasonMalformed}
		}
		return token{kind: tokenIf, value: name, raw: raw, offset: offset}, true, nil

	case strings.HasPrefix(inner, ifKeyword):
		return token{}, false, &SyntaxError{Tag: raw, Offset: offset, Reason: reasonMalformed}

	case isIdentifier(inner):
		return token{kind: tokenVariable, value: inner, raw: raw, offset: offset}, true, nil
	}
	return token{}, false, nil
}

// isIfHeader matches "#if" alone or followed by whitespace. "#iffy" is not a header.
func isIfHeader(inner string) bool {
	rest, ok := strings.CutPrefix(inner, ifKeyword)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// isIdentifier reports whether s is one or more ASCII word characters.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}
