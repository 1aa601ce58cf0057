package markdown

import "fmt"

// Type defines the kind of token, e.g. header, list item, bold, literal text, etc.
type Type int

const (
	TypeBlank Type = iota
	TypeHorizontalRule
	TypeUnorderedList
	TypeHeader
	TypeParagraph
	TypeBold
	TypeItalic
	TypeStrikethrough
	TypeCodeBlock
	TypeLiteral
)

// typeNames maps token types to human-readable names used by Token.String.
var typeNames = [...]string{
	TypeBlank:          "Blank",
	TypeHorizontalRule: "HorizontalRule",
	TypeUnorderedList:  "UnorderedList",
	TypeHeader:         "Header",
	TypeParagraph:      "Paragraph",
	TypeBold:           "Bold",
	TypeItalic:         "Italic",
	TypeStrikethrough:  "Strikethrough",
	TypeCodeBlock:      "CodeBlock",
	TypeLiteral:        "Literal",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// MaxHeaderLevel caps header recognition: a run of 7+ '#' is ordinary text.
const MaxHeaderLevel = 6

// Symbol defines single characters with structural or inline meaning.
//
// WARNING: The tokenizer works with ONLY 1-byte ASCII characters as special symbols.
// Using multi-byte special symbols will cause unexpected behaviour.
type Symbol byte

const (
	SymbolHeader        Symbol = '#'
	SymbolItalic        Symbol = '*'
	SymbolUnderline     Symbol = '_'
	SymbolStrikethrough Symbol = '~'
	SymbolFence         Symbol = '`'
	SymbolListDash      Symbol = '-'
	SymbolListPlus      Symbol = '+'
)

// Tag defines the string representation of multi-character markers,
// e.g. "**" for bold, "```" for a code fence.
const (
	TagBold          = "**"
	TagBoldAlt       = "__"
	TagStrikethrough = "~~"
	TagFence         = "```"
)

// Token represents a single token produced from the current line.
type Token struct {
	Type Type `json:"type"` // Token type: header, bold, literal, etc.

	// Pos is the starting byte position of the token in the current line.
	Pos int `json:"pos"`

	// Len is the number of bytes of the line consumed by the token.
	//
	// WARNING: This is not the visible text length.
	//
	// It is the byte length as used internally by the tokenizer. Structural
	// tokens that do not consume input (Paragraph, Blank) carry Len 0.
	Len int `json:"len"`

	// Val is the exact consumed substring of the line:
	// - for markers: the literal marker text ("**", "- ", "# ", etc.),
	// - for literal runs: the raw text content.
	Val string `json:"val"`

	// Level is the header level, 1 to MaxHeaderLevel. Zero for non-header tokens.
	Level int `json:"level,omitempty"`

	// Label is the trimmed language label of an opening code fence.
	// Empty for a closing fence and for non-fence tokens.
	Label string `json:"label,omitempty"`
}

func (t Token) String() string {
	switch t.Type {
	case TypeHeader:
		return fmt.Sprintf("Header(%d)", t.Level)
	case TypeCodeBlock:
		return fmt.Sprintf("CodeBlock(%q)", t.Label)
	case TypeLiteral:
		return fmt.Sprintf("Literal(%q)", t.Val)
	}
	return t.Type.String()
}

// isLineSpace reports whether b is intra-line whitespace. Lines arrive already
// split, so line terminators are not part of the input domain.
func isLineSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// isInlineDelimiter reports whether b starts an inline marker. All delimiters are
// single-byte ASCII, so a byte-wise check is safe inside UTF-8 text.
func isInlineDelimiter(b byte) bool {
	switch Symbol(b) {
	case SymbolItalic, SymbolUnderline, SymbolStrikethrough:
		return true
	}
	return false
}
