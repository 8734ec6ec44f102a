package gmlparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenIdentifier           // [A-Za-z_][A-Za-z0-9_]*
	TokenString               // "..." with escape processing
	TokenInteger              // -?[0-9]+
	TokenLBracket             // [
	TokenRBracket             // ]
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "identifier",
	TokenString:     "string",
	TokenInteger:    "integer",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for strings, raw for others)
	Pos     Position
}

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}
