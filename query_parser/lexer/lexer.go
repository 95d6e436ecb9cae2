package lex

// Lexer splits one protocol line into whitespace separated words and
// classifies each one. Integers are recognized by shape only (optional sign
// followed by digits); range checking is left to the parser.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

func New(input string) *Lexer {
	l := &Lexer{
		input:   input,
		pos:     0,
		readPos: 0,
		ch:      0,
	}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() Token {
	l.skipWhiteSpaces()

	if l.ch == 0 {
		return Token{Kind: END, Value: ""}
	}

	word := l.readWord()
	switch {
	case isInteger(word):
		return Token{Kind: INT, Value: word}
	case isPrintable(word):
		return Token{Kind: KeyIdentKind(word), Value: word}
	default:
		return Token{Kind: INVALID, Value: word}
	}
}

// Tokens drains the lexer, END included.
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == END {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func isWhiteSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func (l *Lexer) skipWhiteSpaces() {
	for isWhiteSpace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readWord() string {
	start := l.pos
	for l.ch != 0 && !isWhiteSpace(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isNumber(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isInteger(word string) bool {
	if word == "" {
		return false
	}
	if word[0] == '-' || word[0] == '+' {
		word = word[1:]
	}
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !isNumber(word[i]) {
			return false
		}
	}
	return true
}

func isPrintable(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 0x20 || word[i] == 0x7f {
			return false
		}
	}
	return true
}

// KeyIdentKind maps a word to its verb kind. Verbs are lower case only.
func KeyIdentKind(str string) TokenKind {
	switch str {
	case "insert":
		return INSERT
	case "remove":
		return REMOVE
	case "lookup":
		return LOOKUP
	case "lowerbound":
		return LOWERBOUND
	default:
		return IDENT
	}
}
