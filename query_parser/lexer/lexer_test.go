package lex

import "testing"

func TestNextToken(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"insert 1 -2", []Token{{INSERT, "insert"}, {INT, "1"}, {INT, "-2"}, {END, ""}}},
		{"  lookup\t+7  ", []Token{{LOOKUP, "lookup"}, {INT, "+7"}, {END, ""}}},
		{"lowerbound 3\r\n", []Token{{LOWERBOUND, "lowerbound"}, {INT, "3"}, {END, ""}}},
		{"remove 12abc", []Token{{REMOVE, "remove"}, {IDENT, "12abc"}, {END, ""}}},
		{"Remove - 1.5", []Token{{IDENT, "Remove"}, {IDENT, "-"}, {IDENT, "1.5"}, {END, ""}}},
		{"lookup \x01", []Token{{LOOKUP, "lookup"}, {INVALID, "\x01"}, {END, ""}}},
		{"", []Token{{END, ""}}},
	}
	for _, tt := range tests {
		got := New(tt.input).Tokens()
		if len(got) != len(tt.want) {
			t.Fatalf("Tokens(%q) = %v, want %v", tt.input, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokens(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTokenKindString(t *testing.T) {
	if LOWERBOUND.String() != "LOWERBOUND" {
		t.Errorf("LOWERBOUND.String() = %q", LOWERBOUND.String())
	}
	if TokenKind(99).String() != "UNKNOWN" {
		t.Errorf("TokenKind(99).String() = %q", TokenKind(99).String())
	}
	if !INSERT.IsVerb() || INT.IsVerb() {
		t.Error("IsVerb misclassified INSERT or INT")
	}
}
