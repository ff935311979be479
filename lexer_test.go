package bvh

import "testing"

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"HIERARCHY", []TokenKind{TokenHierarchy, TokenEOF}},
		{"ROOT Hips {", []TokenKind{TokenRoot, TokenWord, TokenLBrace, TokenEOF}},
		{"OFFSET 0.0 0.0 0.0", []TokenKind{TokenOffset, TokenNumber, TokenNumber, TokenNumber, TokenEOF}},
		{"CHANNELS 3 Xposition", []TokenKind{TokenChannels, TokenNumber, TokenWord, TokenEOF}},
		{"End Site", []TokenKind{TokenEnd, TokenSite, TokenEOF}},
		{"MOTION\nFrames: 2", []TokenKind{TokenMotion, TokenFrames, TokenNumber, TokenEOF}},
		{"Frame Time: 0.0333", []TokenKind{TokenFrame, TokenTime, TokenNumber, TokenEOF}},
		{"{}", []TokenKind{TokenLBrace, TokenRBrace, TokenEOF}},
		{"Hips{", []TokenKind{TokenWord, TokenLBrace, TokenEOF}},
		{"-12.5 +3 1e-4 .5", []TokenKind{TokenNumber, TokenNumber, TokenNumber, TokenNumber, TokenEOF}},
		{"\t \r\n  JOINT", []TokenKind{TokenJoint, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.bvh")
			var got []TokenKind
			for {
				tok := lexer.NextToken()
				got = append(got, tok.Kind)
				if tok.Kind == TokenEOF {
					break
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"HIERARCHY", TokenHierarchy},
		{"ROOT", TokenRoot},
		{"JOINT", TokenJoint},
		{"End", TokenEnd},
		{"Site", TokenSite},
		{"OFFSET", TokenOffset},
		{"CHANNELS", TokenChannels},
		{"MOTION", TokenMotion},
		{"Frames:", TokenFrames},
		{"Frame", TokenFrame},
		{"Time:", TokenTime},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.bvh")
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerCaseSensitive(t *testing.T) {
	// The grammar keywords are case-sensitive; "motion" is a plain word.
	tests := []string{"hierarchy", "root", "motion", "offset", "channels", "end", "site"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lexer := NewLexer([]byte(input), "test.bvh")
			tok := lexer.NextToken()
			if tok.Kind != TokenWord {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenWord)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	input := "ROOT Hips\n{\n"
	lexer := NewLexer([]byte(input), "walk.bvh")

	tok := lexer.NextToken()
	if tok.Span.Start.Line != 1 || tok.Span.Start.Column != 1 {
		t.Errorf("ROOT starts at %d:%d, want 1:1", tok.Span.Start.Line, tok.Span.Start.Column)
	}
	tok = lexer.NextToken()
	if tok.Span.Start.Line != 1 || tok.Span.Start.Column != 6 {
		t.Errorf("Hips starts at %d:%d, want 1:6", tok.Span.Start.Line, tok.Span.Start.Column)
	}
	if tok.Span.Start.File != "walk.bvh" {
		t.Errorf("File = %q, want %q", tok.Span.Start.File, "walk.bvh")
	}
	tok = lexer.NextToken()
	if tok.Kind != TokenLBrace {
		t.Fatalf("Kind = %v, want %v", tok.Kind, TokenLBrace)
	}
	if tok.Span.Start.Line != 2 || tok.Span.Start.Column != 1 {
		t.Errorf("{ starts at %d:%d, want 2:1", tok.Span.Start.Line, tok.Span.Start.Column)
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		literal string
		kind    TokenKind
	}{
		{"ROOT", TokenRoot},
		{"Hips", TokenWord},
		{"Xposition", TokenWord},
		{"42", TokenNumber},
		{"-0.5", TokenNumber},
		{"+1", TokenNumber},
		{"1e-4", TokenNumber},
		{".25", TokenNumber},
		{"-", TokenWord},
		{"LeftToe2", TokenWord},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			if got := LookupKeyword(tt.literal); got != tt.kind {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.literal, got, tt.kind)
			}
		})
	}
}
