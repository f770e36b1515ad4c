package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `var x = 5;
x = x + 10;
`

	tests := []struct {
		expectedType    TokenType
		expectedLexeme  string
	}{
		{VAR, "var"},
		{IDENTIFIER, "x"},
		{EQUAL, "="},
		{NUMBER, "5"},
		{SEMICOLON, ";"},
		{IDENTIFIER, "x"},
		{EQUAL, "="},
		{IDENTIFIER, "x"},
		{PLUS, "+"},
		{NUMBER, "10"},
		{SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (lexeme=%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `and class else false fun for if nil or print return super this true var while`
	expected := []TokenType{AND, CLASS, ELSE, FALSE, FUN, FOR, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE, EOF}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected=%s, got=%s", i, want, tok.Type)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"123", 123},
		{"123.456", 123.456},
		{"0", 0},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != NUMBER {
			t.Fatalf("input %q: expected NUMBER, got %s", tt.input, tok.Type)
		}
		if tok.Literal.(float64) != tt.want {
			t.Fatalf("input %q: expected %v, got %v", tt.input, tt.want, tok.Literal)
		}
	}
}

func TestLeadingAndTrailingDotAreNotNumbers(t *testing.T) {
	l := New(".5")
	tok := l.NextToken()
	if tok.Type != DOT {
		t.Fatalf("expected DOT, got %s", tok.Type)
	}

	l = New("5.")
	tok = l.NextToken()
	if tok.Type != NUMBER || tok.Lexeme != "5" {
		t.Fatalf("expected NUMBER '5', got %s %q", tok.Type, tok.Lexeme)
	}
	tok = l.NextToken()
	if tok.Type != DOT {
		t.Fatalf("expected trailing DOT, got %s", tok.Type)
	}
}

func TestStringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal.(string) != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"hello`)
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
	if l.Errors()[0].Pos.Line != 1 {
		t.Fatalf("expected error on line 1, got %d", l.Errors()[0].Pos.Line)
	}
}

func TestCommentsAreTokenized(t *testing.T) {
	l := New("// a comment\nvar")
	tok := l.NextToken()
	if tok.Type != COMMENT {
		t.Fatalf("expected COMMENT, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != VAR {
		t.Fatalf("expected VAR after comment, got %s", tok.Type)
	}
}

func TestLineTracking(t *testing.T) {
	l := New("var\nx\n=\n1")
	var lines []int
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		lines = append(lines, tok.Pos.Line)
	}
	want := []int{1, 2, 3, 4}
	if len(lines) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("token %d: expected line %d, got %d", i, want[i], lines[i])
		}
	}
}

func TestUnknownCharacterRecoversAndContinues(t *testing.T) {
	l := New("var @ x")
	tokens, errs := l.ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	want := []TokenType{VAR, IDENTIFIER, EOF}
	if len(types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types)
	}
}

func TestScanTokensAlwaysEndsWithEOF(t *testing.T) {
	tokens, _ := New("print 1 + 2 * 3;").ScanTokens()
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		t.Fatalf("expected final token EOF, got %v", tokens)
	}
	eofCount := 0
	for _, tok := range tokens {
		if tok.Type == EOF {
			eofCount++
		}
	}
	if eofCount != 1 {
		t.Fatalf("expected exactly one EOF token, got %d", eofCount)
	}
}
