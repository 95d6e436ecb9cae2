package parser

import (
	lex "BPlusIndex/query_parser/lexer"
	"errors"
	"reflect"
	"testing"
)

// TestParseStatement_Invalid_ReturnsError ensures malformed commands return the matching sentinel.
func TestParseStatement_Invalid_ReturnsError(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"unknown verb", "select 1", ErrUnknownCommand},
		{"upper case verb", "INSERT 1 2", ErrUnknownCommand},
		{"number first", "12 insert", ErrUnknownCommand},
		{"exit is not special", "exit", ErrUnknownCommand},
		{"empty", "", ErrEmptyCommand},
		{"blank", "   \t ", ErrEmptyCommand},
		{"insert odd", "insert 1 2 3", ErrOddArguments},
		{"insert word", "insert 1 x", ErrInvalidInteger},
		{"insert float", "insert 1 2.5", ErrInvalidInteger},
		{"insert overflow", "insert 99999999999999999999 1", ErrInvalidInteger},
		{"remove nothing", "remove", ErrMissingArgument},
		{"remove word", "remove 1 two", ErrInvalidInteger},
		{"lookup nothing", "lookup", ErrMissingArgument},
		{"lookup word", "lookup k", ErrInvalidInteger},
		{"lowerbound nothing", "lowerbound  ", ErrMissingArgument},
		{"lowerbound sign only", "lowerbound -", ErrInvalidInteger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(lex.New(tt.line))
			stmt, err := p.ParseStatement()
			if err == nil {
				t.Fatalf("ParseStatement(%q) expected error, got stmt %#v", tt.line, stmt)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseStatement(%q) error = %v, want %v", tt.line, err, tt.want)
			}
			if stmt != nil {
				t.Errorf("ParseStatement(%q) expected nil statement on error, got %#v", tt.line, stmt)
			}
		})
	}
}

// TestParseStatement_Valid ensures well-formed commands produce the expected statement.
func TestParseStatement_Valid(t *testing.T) {
	tests := []struct {
		line string
		want Statement
	}{
		{"insert 5 50", &InsertStmt{Pairs: []KeyValue{{5, 50}}}},
		{"insert 1 10 2 20 3 30", &InsertStmt{Pairs: []KeyValue{{1, 10}, {2, 20}, {3, 30}}}},
		{"insert", &InsertStmt{Pairs: []KeyValue{}}},
		{"insert -4 +7", &InsertStmt{Pairs: []KeyValue{{-4, 7}}}},
		{"  remove 10   11 ", &RemoveStmt{Keys: []int64{10, 11}}},
		{"lookup 99", &LookupStmt{Key: 99}},
		{"lookup 1 ignored trailing", &LookupStmt{Key: 1}},
		{"lowerbound -9223372036854775808", &LowerBoundStmt{Key: -9223372036854775808}},
		{"lowerbound 6\r", &LowerBoundStmt{Key: 6}},
	}
	for _, tt := range tests {
		stmt, err := Parse(tt.line)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.line, err)
			continue
		}
		if !reflect.DeepEqual(stmt, tt.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.line, stmt, tt.want)
		}
	}
}

func TestStatementVerb(t *testing.T) {
	for line, verb := range map[string]string{
		"insert 1 1":   "insert",
		"remove 1":     "remove",
		"lookup 1":     "lookup",
		"lowerbound 1": "lowerbound",
	} {
		stmt, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q): %v", line, err)
		}
		if stmt.Verb() != verb {
			t.Errorf("Parse(%q).Verb() = %q, want %q", line, stmt.Verb(), verb)
		}
	}
}
