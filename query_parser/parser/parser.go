package parser

import (
	lex "BPlusIndex/query_parser/lexer"
	"fmt"
	"strconv"
)

type Parser struct {
	l         *lex.Lexer
	curToken  lex.Token
	peekToken lex.Token
}

func New(l *lex.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Entry point. A statement is returned only when the whole line is valid,
// so a malformed command never reaches the tree half applied.
func (p *Parser) ParseStatement() (Statement, error) {
	switch p.curToken.Kind {
	case lex.INSERT:
		return p.parseInsert()
	case lex.REMOVE:
		return p.parseRemove()
	case lex.LOOKUP:
		key, err := p.parseSingleKey()
		if err != nil {
			return nil, err
		}
		return &LookupStmt{Key: key}, nil
	case lex.LOWERBOUND:
		key, err := p.parseSingleKey()
		if err != nil {
			return nil, err
		}
		return &LowerBoundStmt{Key: key}, nil
	case lex.END:
		return nil, ErrEmptyCommand
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, p.curToken.Value)
}

/*


-------------------parser functions implementation-------------------



*/

// --- INSERT ---
func (p *Parser) parseInsert() (*InsertStmt, error) {
	verb := p.curToken.Value
	args, err := p.parseIntegers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", verb, err)
	}
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d arguments", ErrOddArguments, len(args))
	}

	stmt := &InsertStmt{Pairs: make([]KeyValue, 0, len(args)/2)}
	for i := 0; i < len(args); i += 2 {
		stmt.Pairs = append(stmt.Pairs, KeyValue{Key: args[i], Value: args[i+1]})
	}
	return stmt, nil
}

// --- REMOVE ---
func (p *Parser) parseRemove() (*RemoveStmt, error) {
	verb := p.curToken.Value
	keys, err := p.parseIntegers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", verb, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: %w: at least one key", verb, ErrMissingArgument)
	}
	return &RemoveStmt{Keys: keys}, nil
}

// --- LOOKUP / LOWERBOUND ---
// Only the first argument is read; anything after it is ignored.
func (p *Parser) parseSingleKey() (int64, error) {
	verb := p.curToken.Value
	p.nextToken()
	if p.curToken.Kind == lex.END {
		return 0, fmt.Errorf("%s: %w: key", verb, ErrMissingArgument)
	}
	key, err := parseInteger(p.curToken)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", verb, err)
	}
	return key, nil
}

// parseIntegers consumes every remaining token as an integer.
func (p *Parser) parseIntegers() ([]int64, error) {
	var out []int64
	p.nextToken()
	for p.curToken.Kind != lex.END {
		n, err := parseInteger(p.curToken)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
		p.nextToken()
	}
	return out, nil
}

func parseInteger(tok lex.Token) (int64, error) {
	if tok.Kind != lex.INT {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, tok.Value)
	}
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidInteger, tok.Value)
	}
	return n, nil
}

// Parse is a shorthand for lexing and parsing one line.
func Parse(line string) (Statement, error) {
	return New(lex.New(line)).ParseStatement()
}
