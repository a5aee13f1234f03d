package dot

import (
	"regexp"
	"strings"
)

// idRe is the DOT bare-identifier grammar: an alphabetic/underscore word
// that may continue with digits, or a numeral literal.
var idRe = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*|-?(\.[0-9]+|[0-9]+(\.[0-9]*)?))$`)

// keywords are reserved by the DOT grammar. They match the bare
// identifier grammar but must still be quoted when used as names.
var keywords = map[string]struct{}{
	"graph":    {},
	"digraph":  {},
	"subgraph": {},
	"node":     {},
	"edge":     {},
	"strict":   {},
}

// isHTML reports whether s is an HTML-like label (<...>), which DOT
// accepts verbatim without quoting.
func isHTML(s string) bool {
	return len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>'
}

// Quote returns id in a form safe to embed in DOT source.
//
// Identifiers matching the bare grammar pass through unchanged,
// HTML-like labels are never quoted, and everything else (including the
// empty string and DOT keywords) is wrapped in double quotes with
// unescaped inner quotes escaped. Quote cannot fail: every input has a
// valid textual representation.
func Quote(id string) string {
	if isHTML(id) {
		return id
	}
	if _, kw := keywords[strings.ToLower(id)]; kw || !idRe.MatchString(id) {
		return `"` + escapeUnescapedQuotes(id) + `"`
	}
	return id
}

// escapeUnescapedQuotes backslash-escapes every double quote that is not
// already escaped. Other backslash sequences (\n, \l, \:) pass through
// so DOT escape codes keep working inside quoted strings.
func escapeUnescapedQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == '"' && (i == 0 || s[i-1] != '\\') {
			b.WriteString(`\"`)
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// QuoteEdge quotes an edge endpoint of the form node[:port[:compass]].
// Each component is quoted independently via [Quote] and the components
// are rejoined with colons.
func QuoteEdge(endpoint string) string {
	parts := splitEndpoint(endpoint)
	for i, p := range parts {
		parts[i] = Quote(p)
	}
	return strings.Join(parts, ":")
}

// splitEndpoint splits an endpoint into at most three components on
// structurally significant colons. Colons inside an HTML-like <...>
// segment or escaped with a backslash do not split. A trailing colon
// with nothing after it is dropped rather than producing an empty
// component.
func splitEndpoint(s string) []string {
	parts := make([]string, 0, 3)
	start := 0
	depth := 0
	for i := 0; i < len(s) && len(parts) < 2; i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case '\\':
			i++ // skip the escaped byte
		case ':':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if rest := s[start:]; rest != "" || len(parts) == 0 {
		parts = append(parts, rest)
	}
	return parts
}
