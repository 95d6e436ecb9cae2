package lex

type TokenKind int

const (
	// identifier: any word that is neither a verb nor an integer
	IDENT TokenKind = iota

	// verbs
	INSERT
	REMOVE
	LOOKUP
	LOWERBOUND

	// literals
	INT

	END
	INVALID
)

type Token struct {
	Kind  TokenKind
	Value string
}

func (tk TokenKind) String() string {
	switch tk {
	case IDENT:
		return "IDENT"
	case INSERT:
		return "INSERT"
	case REMOVE:
		return "REMOVE"
	case LOOKUP:
		return "LOOKUP"
	case LOWERBOUND:
		return "LOWERBOUND"
	case INT:
		return "INT"
	case END:
		return "END"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// IsVerb reports whether the kind starts a command.
func (tk TokenKind) IsVerb() bool {
	switch tk {
	case INSERT, REMOVE, LOOKUP, LOWERBOUND:
		return true
	}
	return false
}
