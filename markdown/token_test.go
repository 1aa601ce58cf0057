package markdown

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{"Blank", Token{Type: TypeBlank}, "Blank"},
		{"Header", Token{Type: TypeHeader, Level: 3}, "Header(3)"},
		{"Opening fence", Token{Type: TypeCodeBlock, Label: "rust"}, `CodeBlock("rust")`},
		{"Closing fence", Token{Type: TypeCodeBlock}, `CodeBlock("")`},
		{"Literal", Token{Type: TypeLiteral, Val: "hi"}, `Literal("hi")`},
		{"Bold", Token{Type: TypeBold, Val: "**"}, "Bold"},
		{"Rule", Token{Type: TypeHorizontalRule, Val: "---"}, "HorizontalRule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeString_OutOfRange(t *testing.T) {
	if got := Type(42).String(); got != "Type(42)" {
		t.Errorf("got %q", got)
	}
}
