package bvh

// Lexer splits BVH input into whitespace-delimited tokens. Braces are
// always their own tokens even when a file omits the surrounding
// whitespace.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.Position()
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	switch l.peek() {
	case '{':
		l.advance()
		return l.token(TokenLBrace, start)
	case '}':
		l.advance()
		return l.token(TokenRBrace, start)
	}

	return l.scanWord(start)
}

func (l *Lexer) scanWord(start Position) Token {
	for l.pos < len(l.input) {
		ch := l.peek()
		if isSpace(ch) || ch == '{' || ch == '}' {
			break
		}
		l.advance()
	}
	end := l.Position()
	literal := string(l.input[start.Offset:end.Offset])
	return Token{
		Kind:    LookupKeyword(literal),
		Span:    Span{Start: start, End: end},
		Literal: literal,
	}
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
