package bvh

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Keywords
	TokenHierarchy
	TokenRoot
	TokenJoint
	TokenEnd
	TokenSite
	TokenOffset
	TokenChannels
	TokenMotion
	TokenFrames // the literal "Frames:"
	TokenFrame  // the literal "Frame" of the "Frame Time:" header
	TokenTime   // the literal "Time:"

	// Literals
	TokenNumber
	TokenWord

	// Punctuation
	TokenLBrace
	TokenRBrace
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:       "EOF",
	TokenHierarchy: "HIERARCHY",
	TokenRoot:      "ROOT",
	TokenJoint:     "JOINT",
	TokenEnd:       "End",
	TokenSite:      "Site",
	TokenOffset:    "OFFSET",
	TokenChannels:  "CHANNELS",
	TokenMotion:    "MOTION",
	TokenFrames:    "Frames:",
	TokenFrame:     "Frame",
	TokenTime:      "Time:",
	TokenNumber:    "number",
	TokenWord:      "word",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"HIERARCHY": TokenHierarchy,
	"ROOT":      TokenRoot,
	"JOINT":     TokenJoint,
	"End":       TokenEnd,
	"Site":      TokenSite,
	"OFFSET":    TokenOffset,
	"CHANNELS":  TokenChannels,
	"MOTION":    TokenMotion,
	"Frames:":   TokenFrames,
	"Frame":     TokenFrame,
	"Time:":     TokenTime,
}

// LookupKeyword classifies a whitespace-delimited word. Words that are not
// keywords come back as numbers or bare words; joint names that happen to
// look numeric are not a concern because the grammar never needs to
// distinguish them before a keyword position.
func LookupKeyword(literal string) TokenKind {
	if kind, ok := keywords[literal]; ok {
		return kind
	}
	if looksNumeric(literal) {
		return TokenNumber
	}
	return TokenWord
}

func looksNumeric(literal string) bool {
	if literal == "" {
		return false
	}
	i := 0
	if literal[0] == '+' || literal[0] == '-' {
		i++
	}
	if i >= len(literal) {
		return false
	}
	ch := literal[i]
	return (ch >= '0' && ch <= '9') || ch == '.'
}
