package bvh

import "fmt"

type ErrorKind int

const (
	// ErrMalformedHeader covers a missing or misspelled HIERARCHY,
	// MOTION, "Frames:" or "Frame Time:" keyword.
	ErrMalformedHeader ErrorKind = iota
	// ErrMalformedNodeGrammar covers a broken ROOT/JOINT body: missing
	// brace, OFFSET or CHANNELS keyword, or a channel list that does not
	// match the declared count.
	ErrMalformedNodeGrammar
	// ErrMalformedEndSite covers a broken "End Site" block.
	ErrMalformedEndSite
	// ErrNumericParse covers a token that should be a number but is not.
	ErrNumericParse
	// ErrTruncatedMotion means the motion section ended before all
	// declared frames were read.
	ErrTruncatedMotion
	// ErrTrailingMotion means the motion section holds more values than
	// the declared frames account for.
	ErrTrailingMotion
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedHeader:
		return "malformed header"
	case ErrMalformedNodeGrammar:
		return "malformed node"
	case ErrMalformedEndSite:
		return "malformed end site"
	case ErrNumericParse:
		return "invalid number"
	case ErrTruncatedMotion:
		return "truncated motion data"
	case ErrTrailingMotion:
		return "trailing motion data"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned for any structural or numeric failure. Parsing
// stops at the first error; no partial clip is handed to the caller.
type ParseError struct {
	Kind    ErrorKind
	Pos     Position
	Token   string
	Message string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s (got %q)", e.Pos, e.Kind, e.Message, e.Token)
}
