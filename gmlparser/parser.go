package gmlparser

import (
	"fmt"
	"strconv"
)

// Parse parses GML source text into the root attribute tree. The root is an
// Object whose entries are the document's top-level key/value pairs; for a
// graph document that is a single "graph" entry holding a nested object.
// Returns a *LexError, *SyntaxError, *ValueError, or *MissingKeyError on
// failure; no partial tree is ever returned.
func Parse(src []byte) (*Object, error) {
	p := &parser{lex: NewLexer(src)}
	obj, err := p.parseObjectBody(true)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

type parser struct {
	lex *Lexer
}

// parseObjectBody consumes one object body: a sequence of key/value entries
// terminated by ']' (or EOF at the top level). A pending-key slot drives the
// state machine: identifiers set (and overwrite) the key, values append an
// entry under it. A dangling key at the end of a body is dropped.
func (p *parser) parseObjectBody(topLevel bool) (*Object, error) {
	obj := &Object{}
	var pendingKey string
	var pendingPos Position
	hasKey := false

	for {
		tok, err := p.lex.Next()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokenEOF:
			if !topLevel {
				return nil, &SyntaxError{
					ParseError: ParseError{Pos: tok.Pos},
					Expected:   "']'",
					Got:        "EOF",
				}
			}
			return obj, nil

		case TokenRBracket:
			if topLevel {
				return nil, &SyntaxError{
					ParseError: ParseError{Pos: tok.Pos},
					Expected:   "identifier",
					Got:        "']'",
				}
			}
			return obj, nil

		case TokenIdentifier:
			pendingKey = tok.Literal
			pendingPos = tok.Pos
			hasKey = true

		case TokenString:
			if !hasKey {
				return nil, missingKey(tok)
			}
			obj.Attrs = append(obj.Attrs, Attr{
				Key:   pendingKey,
				Value: Value{Kind: ValueString, Str: tok.Literal, Raw: tok.Literal},
				Pos:   pendingPos,
			})
			hasKey = false

		case TokenInteger:
			if !hasKey {
				return nil, missingKey(tok)
			}
			n, err := strconv.ParseInt(tok.Literal, 10, 64)
			if err != nil {
				return nil, &ValueError{ParseError{
					Message: fmt.Sprintf("invalid integer %q: %v", tok.Literal, err),
					Pos:     tok.Pos,
					Cause:   err,
				}}
			}
			obj.Attrs = append(obj.Attrs, Attr{
				Key:   pendingKey,
				Value: Value{Kind: ValueInt, Int: n, Raw: tok.Literal},
				Pos:   pendingPos,
			})
			hasKey = false

		case TokenLBracket:
			if !hasKey {
				return nil, missingKey(tok)
			}
			child, err := p.parseObjectBody(false)
			if err != nil {
				return nil, err
			}
			obj.Attrs = append(obj.Attrs, Attr{
				Key:   pendingKey,
				Value: Value{Kind: ValueObject, Obj: child},
				Pos:   pendingPos,
			})
			hasKey = false

		default:
			// Unreachable with the current lexer; a token kind without a
			// case here means the lexer and builder disagree.
			return nil, &SyntaxError{
				ParseError: ParseError{Pos: tok.Pos},
				Expected:   "entry",
				Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
			}
		}
	}
}

func missingKey(tok Token) error {
	return &MissingKeyError{ParseError{
		Message: fmt.Sprintf("%s value with no preceding key", tok.Kind),
		Pos:     tok.Pos,
	}}
}
