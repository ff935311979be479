package bvh

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

type Option func(*Parser)

// WithFile sets the file name reported in token positions and errors.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// Parser reads a BVH document in two phases: the HIERARCHY section builds
// the joint forest, then the MOTION section streams frame values back onto
// it. The tree shape is fixed once the hierarchy phase finishes.
type Parser struct {
	file   string
	tokens []Token
	pos    int
}

// ParseFile opens and parses a BVH file.
func ParseFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bvh file: %w", err)
	}
	defer f.Close()
	return Parse(f, WithFile(path))
}

// Parse reads a complete BVH document from r. On any structural or numeric
// failure it returns a *ParseError and no clip.
func Parse(r io.Reader, opts ...Option) (*Clip, error) {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bvh input: %w", err)
	}
	p.tokenize(data)
	return p.parseClip()
}

func (p *Parser) tokenize(input []byte) {
	lexer := NewLexer(input, p.file)
	for {
		tok := lexer.NextToken()
		p.tokens = append(p.tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) errorf(kind ErrorKind, tok Token, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Pos:     tok.Span.Start,
		Token:   tok.Literal,
		Message: fmt.Sprintf(format, args...),
	}
}

func (p *Parser) parseClip() (*Clip, error) {
	if tok := p.advance(); tok.Kind != TokenHierarchy {
		return nil, p.errorf(ErrMalformedHeader, tok, "expected HIERARCHY")
	}
	roots, err := p.parseHierarchy()
	if err != nil {
		return nil, err
	}
	clip := &Clip{Roots: roots}
	if err := p.parseMotion(clip); err != nil {
		return nil, err
	}
	return clip, nil
}

// parseHierarchy reads consecutive ROOT blocks until the MOTION keyword,
// which it leaves for parseMotion to consume.
func (p *Parser) parseHierarchy() ([]*Node, error) {
	var roots []*Node
	for p.check(TokenRoot) {
		p.advance()
		root, err := p.parseNodeBody(KindRoot)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)

		// open tracks nodes whose closing brace is still pending. It
		// exists purely for brace scope; motion traversal uses the
		// separate pre-order list, never this stack.
		open := []*Node{root}
		for len(open) > 0 {
			tok := p.advance()
			switch tok.Kind {
			case TokenJoint:
				node, err := p.parseNodeBody(KindJoint)
				if err != nil {
					return nil, err
				}
				top := open[len(open)-1]
				node.Parent = top
				top.Children = append(top.Children, node)
				open = append(open, node)
			case TokenEnd:
				node, err := p.parseEndSite()
				if err != nil {
					return nil, err
				}
				top := open[len(open)-1]
				node.Parent = top
				top.Children = append(top.Children, node)
			case TokenRBrace:
				open = open[:len(open)-1]
			default:
				return nil, p.errorf(ErrMalformedNodeGrammar, tok, "expected JOINT, End Site or }")
			}
		}
	}
	return roots, nil
}

// parseNodeBody reads the shared grammar of ROOT and JOINT declarations:
// <name> { OFFSET x y z CHANNELS n <n channel names>. The caller handles
// everything after the channel list.
func (p *Parser) parseNodeBody(kind NodeKind) (*Node, error) {
	name := p.advance()
	if name.Kind != TokenWord && name.Kind != TokenNumber {
		return nil, p.errorf(ErrMalformedNodeGrammar, name, "expected joint name")
	}
	node := &Node{Name: name.Literal, Kind: kind}

	if tok := p.advance(); tok.Kind != TokenLBrace {
		return nil, p.errorf(ErrMalformedNodeGrammar, tok, "expected { after joint name %s", node.Name)
	}
	if tok := p.advance(); tok.Kind != TokenOffset {
		return nil, p.errorf(ErrMalformedNodeGrammar, tok, "expected OFFSET in joint %s", node.Name)
	}
	for i := range node.Offset {
		v, err := p.expectFloat()
		if err != nil {
			return nil, err
		}
		node.Offset[i] = v
	}
	if tok := p.advance(); tok.Kind != TokenChannels {
		return nil, p.errorf(ErrMalformedNodeGrammar, tok, "expected CHANNELS in joint %s", node.Name)
	}

	countTok := p.advance()
	count, err := strconv.Atoi(countTok.Literal)
	if err != nil {
		return nil, p.errorf(ErrNumericParse, countTok, "expected channel count")
	}
	if count < 0 {
		return nil, p.errorf(ErrMalformedNodeGrammar, countTok, "negative channel count")
	}
	for i := 0; i < count; i++ {
		tok := p.advance()
		ch, ok := validChannels[tok.Literal]
		if !ok {
			return nil, p.errorf(ErrMalformedNodeGrammar, tok, "joint %s declares %d channels but names %d", node.Name, count, i)
		}
		node.Channels = append(node.Channels, ch)
	}
	return node, nil
}

// parseEndSite reads the block following an End token: Site { OFFSET x y z }.
// End Sites carry no channels and no body of their own.
func (p *Parser) parseEndSite() (*Node, error) {
	name := p.advance()
	if name.Kind != TokenSite {
		return nil, p.errorf(ErrMalformedEndSite, name, "expected Site after End")
	}
	node := &Node{Name: name.Literal, Kind: KindEndSite}

	if tok := p.advance(); tok.Kind != TokenLBrace {
		return nil, p.errorf(ErrMalformedEndSite, tok, "expected { after End Site")
	}
	if tok := p.advance(); tok.Kind != TokenOffset {
		return nil, p.errorf(ErrMalformedEndSite, tok, "expected OFFSET in End Site")
	}
	for i := range node.Offset {
		v, err := p.expectFloat()
		if err != nil {
			return nil, err
		}
		node.Offset[i] = v
	}
	if tok := p.advance(); tok.Kind != TokenRBrace {
		return nil, p.errorf(ErrMalformedEndSite, tok, "expected } closing End Site")
	}
	return node, nil
}

// parseMotion reads the MOTION header and exactly FrameCount frames of
// channel values. Nodes are visited in pre-order matching the declaration
// order of the hierarchy; the order is computed once and reused for every
// frame so that values always land on the same node.
func (p *Parser) parseMotion(clip *Clip) error {
	if tok := p.advance(); tok.Kind != TokenMotion {
		return p.errorf(ErrMalformedHeader, tok, "expected MOTION")
	}
	if tok := p.advance(); tok.Kind != TokenFrames {
		return p.errorf(ErrMalformedHeader, tok, `expected "Frames:"`)
	}
	countTok := p.advance()
	count, err := strconv.Atoi(countTok.Literal)
	if err != nil || count < 0 {
		return p.errorf(ErrNumericParse, countTok, "expected frame count")
	}
	if tok := p.advance(); tok.Kind != TokenFrame {
		return p.errorf(ErrMalformedHeader, tok, `expected "Frame Time:"`)
	}
	if tok := p.advance(); tok.Kind != TokenTime {
		return p.errorf(ErrMalformedHeader, tok, `expected "Time:" after "Frame"`)
	}
	frameTime, err := p.expectFloat()
	if err != nil {
		return err
	}
	clip.FrameCount = count
	clip.FrameTime = frameTime

	order := clip.Nodes()
	for frame := 0; frame < count; frame++ {
		for _, node := range order {
			if len(node.Channels) == 0 {
				continue
			}
			values := make([]float64, len(node.Channels))
			for i := range values {
				tok := p.advance()
				if tok.Kind == TokenEOF {
					return p.errorf(ErrTruncatedMotion, tok, "motion data ends inside frame %d of %d", frame+1, count)
				}
				v, err := strconv.ParseFloat(tok.Literal, 64)
				if err != nil {
					return p.errorf(ErrNumericParse, tok, "expected channel value for joint %s", node.Name)
				}
				values[i] = v
			}
			node.Frames = append(node.Frames, values)
		}
	}

	if tok := p.peek(); tok.Kind != TokenEOF {
		return p.errorf(ErrTrailingMotion, tok, "unexpected data after frame %d", count)
	}
	return nil
}

func (p *Parser) expectFloat() (float64, error) {
	tok := p.advance()
	if tok.Kind == TokenEOF {
		return 0, p.errorf(ErrNumericParse, tok, "expected number, found end of input")
	}
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return 0, p.errorf(ErrNumericParse, tok, "expected number")
	}
	return v, nil
}
