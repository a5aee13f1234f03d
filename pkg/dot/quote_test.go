package dot

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"BareWord", "spam", "spam"},
		{"BareUnderscore", "_private", "_private"},
		{"BareMixed", "node_1", `node_1`},
		{"Integer", "42", "42"},
		{"NegativeInteger", "-13", "-13"},
		{"Float", "3.14", "3.14"},
		{"LeadingDotFloat", ".5", ".5"},
		{"NegativeLeadingDotFloat", "-.5", "-.5"},
		{"TrailingDotFloat", "2.", "2."},
		{"Empty", "", `""`},
		{"Space", "spam spam", `"spam spam"`},
		{"LeadingDigit", "1st", `"1st"`},
		{"Dash", "a-b", `"a-b"`},
		{"Unicode", "künstlich", `"künstlich"`},
		{"InnerQuote", `say "hi"`, `"say \"hi\""`},
		{"AlreadyEscapedQuote", `say \"hi\"`, `"say \"hi\""`},
		{"BackslashCode", `line\nbreak`, `"line\nbreak"`},
		{"KeywordGraph", "graph", `"graph"`},
		{"KeywordStrictUpper", "Strict", `"Strict"`},
		{"KeywordNode", "NODE", `"NODE"`},
		{"HTMLLabel", "<<b>bold</b>>", "<<b>bold</b>>"},
		{"HTMLTable", "<<TABLE><TR><TD>x</TD></TR></TABLE>>", "<<TABLE><TR><TD>x</TD></TR></TABLE>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.in); got != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuoteEdge(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "spam", "spam"},
		{"Port", "spam:eggs", "spam:eggs"},
		{"PortCompass", "spam:eggs:sw", "spam:eggs:sw"},
		{"QuotedNode", "spam spam:eggs", `"spam spam":eggs`},
		{"QuotedPort", "spam:egg basket", `spam:"egg basket"`},
		{"EmptyNode", ":port", `"":port`},
		{"TrailingColonDropped", "spam:", "spam"},
		{"EmptyPortKept", "spam::n", `spam:"":n`},
		{"OnlyColon", ":", `""`},
		{"Empty", "", `""`},
		{"ExtraColonsStayInCompass", "a:b:c:d", `a:b:"c:d"`},
		{"HTMLColonNotSplit", "<x:y>", "<x:y>"},
		{"HTMLThenPort", "<x:y>:p", "<x:y>:p"},
		{"EscapedColonNotSplit", `a\:b`, `"a\:b"`},
		{"EscapedColonThenPort", `a\:b:p`, `"a\:b":p`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteEdge(tt.in); got != tt.want {
				t.Errorf("QuoteEdge(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
