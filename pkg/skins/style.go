package skins

import "strings"

// Kind separates printable invoice documents from notification emails.
type Kind string

const (
	KindDocument Kind = "document"
	KindEmail    Kind = "email"
)

// Style identifies one skin. The set is closed: only the constants below
// are valid, and each belongs to exactly one Kind.
type Style string

const (
	Classic Style = "classic"
	Modern  Style = "modern"
	Minimal Style = "minimal"
	Nordic  Style = "nordic"

	Plain   Style = "plain"
	Branded Style = "branded"
)

// Defaults used when a requested style is unknown or of the wrong kind.
const (
	DefaultDocument = Classic
	DefaultEmail    = Plain
)

var styleKinds = map[Style]Kind{
	Classic: KindDocument,
	Modern:  KindDocument,
	Minimal: KindDocument,
	Nordic:  KindDocument,
	Plain:   KindEmail,
	Branded: KindEmail,
}

// ParseStyle maps an identifier to a known Style, ignoring case and
// surrounding whitespace.
func ParseStyle(id string) (Style, bool) {
	s := Style(strings.ToLower(strings.TrimSpace(id)))
	_, ok := styleKinds[s]
	return s, ok
}

// Kind reports which kind of skin the style belongs to. Unknown styles
// return "".
func (s Style) Kind() Kind {
	return styleKinds[s]
}

func (s Style) String() string {
	return string(s)
}

// DocumentStyles lists document styles in display order.
func DocumentStyles() []Style {
	return []Style{Classic, Modern, Minimal, Nordic}
}

// EmailStyles lists email styles in display order.
func EmailStyles() []Style {
	return []Style{Plain, Branded}
}

func defaultFor(k Kind) Style {
	if k == KindEmail {
		return DefaultEmail
	}
	return DefaultDocument
}
