package invoice

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// itemRow is a line item with every cell already formatted.
type itemRow struct {
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
}

// itemRows renders table rows for the {{lineItems}} binding. Cell text is
// HTML-escaped by templ.
func itemRows(rows []itemRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, r := range rows {
			if _, err := io.WriteString(w, "<tr><td>"+templ.EscapeString(r.Description)+
				`</td><td class="num">`+templ.EscapeString(r.Quantity)+
				`</td><td class="num">`+templ.EscapeString(r.UnitPrice)+
				`</td><td class="num">`+templ.EscapeString(r.Amount)+
				"</td></tr>\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// itemLines is the plain-text counterpart of itemRows.
func itemLines(rows []itemRow) string {
	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.Description + ": " + r.Quantity + " x " + r.UnitPrice + " = " + r.Amount)
	}
	return sb.String()
}

// htmlText escapes s and turns line breaks into <br> so multi-line input
// keeps its shape in HTML output.
func htmlText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(templ.EscapeString(s), "\n", "<br>")
}
