package parser

// Statement is a generic interface for all statements
type Statement interface {
	Verb() string
}

type KeyValue struct {
	Key   int64
	Value int64
}

// insert k1 v1 [k2 v2 ...]
type InsertStmt struct {
	Pairs []KeyValue
}

// remove k1 [k2 ...]
type RemoveStmt struct {
	Keys []int64
}

// lookup k
type LookupStmt struct {
	Key int64
}

// lowerbound k
type LowerBoundStmt struct {
	Key int64
}

func (*InsertStmt) Verb() string     { return "insert" }
func (*RemoveStmt) Verb() string     { return "remove" }
func (*LookupStmt) Verb() string     { return "lookup" }
func (*LowerBoundStmt) Verb() string { return "lowerbound" }
