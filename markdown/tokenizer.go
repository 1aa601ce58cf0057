package markdown

// mode represents the Tokenizer's position in the per-line scanning cycle.
type mode int

const (
	// modeStart - a fresh line; structural recognizers have not run yet.
	modeStart mode = iota
	// modeInline - inside the line body, alternating delimiters and literal runs.
	modeInline
	// modeFence - inside an open code fence, current line not yet consumed.
	modeFence
	// modeFenceDone - inside an open code fence, current line fully consumed.
	// Kept distinct from modeEnd so SetLine knows the fence is still open.
	modeFenceDone
	// modeEnd - line exhausted; only the sentinel remains until the next SetLine.
	modeEnd
)

// Tokenizer scans one line at a time and emits tokens incrementally via Next.
// The zero value is ready to use. A Tokenizer must not be shared between
// goroutines; the caller is the sole mutator through SetLine and Next.
type Tokenizer struct {
	line   string
	cursor int
	mode   mode
}

// New returns a Tokenizer ready for the first SetLine call.
func New() *Tokenizer {
	return &Tokenizer{}
}

// SetLine replaces the current line and resets the cursor. Scanning state resets
// too, with one exception: an open code fence survives the line boundary, so the
// following line is still treated as fence content.
//
// The line must not contain a trailing line terminator.
func (t *Tokenizer) SetLine(line string) {
	t.line = line
	t.cursor = 0

	switch t.mode {
	case modeFence, modeFenceDone:
		t.mode = modeFence
	default:
		t.mode = modeStart
	}
}

// Next returns the next token of the current line, or nil once the line is
// exhausted. After nil is returned, further calls keep returning nil until
// SetLine is called again. Next never fails: every input line, however
// malformed, produces some token sequence.
func (t *Tokenizer) Next() *Token {
	switch t.mode {
	case modeStart:
		return t.scanStart()
	case modeInline:
		return t.scanInline()
	case modeFence:
		return t.scanFence()
	}

	// modeFenceDone and modeEnd: the line is consumed
	return nil
}

// scanStart consults the structural recognizers in fixed priority order:
// blank, code fence, header, horizontal rule, unordered list. The first match
// wins; a line matching none of them starts a paragraph with the cursor left
// at 0 so the whole line goes through inline scanning.
func (t *Tokenizer) scanStart() *Token {
	if len(t.line) == 0 {
		t.mode = modeEnd
		return &Token{Type: TypeBlank}
	}

	if token, stride, ok := actFenceOpen(t.line); ok {
		t.cursor += stride
		t.mode = modeFenceDone
		return &token
	}

	if token, stride, ok := actHeader(t.line); ok {
		t.cursor += stride
		t.mode = modeInline
		return &token
	}

	if token, ok := actHorizontalRule(t.line); ok {
		t.cursor = len(t.line)
		t.mode = modeEnd
		return &token
	}

	if token, stride, ok := actUnorderedList(t.line); ok {
		t.cursor += stride
		t.mode = modeInline
		return &token
	}

	t.mode = modeInline
	return &Token{Type: TypeParagraph}
}

// scanInline emits one token per call: either an inline delimiter via the
// doubling rule, or the longest literal run up to the next delimiter.
func (t *Tokenizer) scanInline() *Token {
	if t.cursor >= len(t.line) {
		t.mode = modeEnd
		return nil
	}

	if token, stride, ok := actDelimiter(t.line, t.cursor); ok {
		t.cursor += stride
		return &token
	}

	token, stride := actLiteral(t.line, t.cursor)
	t.cursor += stride
	return &token
}

// scanFence handles a line while a code fence is open. A closing fence ends the
// block; any other content, including an empty line, is one verbatim literal.
// Structural and inline recognition is fully suppressed here.
func (t *Tokenizer) scanFence() *Token {
	if token, ok := actFenceClose(t.line); ok {
		t.cursor = len(t.line)
		t.mode = modeEnd
		return &token
	}

	token := Token{
		Type: TypeLiteral,
		Pos:  0,
		Len:  len(t.line),
		Val:  t.line,
	}

	t.cursor = len(t.line)
	t.mode = modeFenceDone
	return &token
}

// TokenizeLine tokenizes a single line with a throwaway Tokenizer. It is the
// non-persistent variant: code fence state cannot carry over, so callers that
// feed multi-line documents should reuse one Tokenizer via SetLine instead.
func TokenizeLine(line string) []Token {
	t := New()
	t.SetLine(line)

	var tokens []Token
	for token := t.Next(); token != nil; token = t.Next() {
		tokens = append(tokens, *token)
	}

	return tokens
}

// TokenizeLines feeds lines through a single Tokenizer in order and collects
// the per-line token sequences. Fence state persists between lines, so interior
// lines of a fenced block come back as verbatim literals.
func TokenizeLines(lines []string) [][]Token {
	t := New()

	out := make([][]Token, 0, len(lines))

	for _, line := range lines {
		t.SetLine(line)

		var tokens []Token
		for token := t.Next(); token != nil; token = t.Next() {
			tokens = append(tokens, *token)
		}

		out = append(out, tokens)
	}

	return out
}
