package markdown

// actDelimiter applies the doubling rule at an inline marker position: a doubled
// '*' or '_' is bold, a doubled '~' is strikethrough, any single marker is
// italic. The same rule runs whether the marker opens or closes a span; pairing
// is by position in the stream, not tracked here.
//
// WARNING: actDelimiter assumes all inline markers are 1-byte ASCII characters.
func actDelimiter(line string, i int) (token Token, stride int, ok bool) {
	b := Symbol(line[i])

	var doubled Type

	switch b {
	case SymbolItalic, SymbolUnderline:
		doubled = TypeBold
	case SymbolStrikethrough:
		doubled = TypeStrikethrough
	default:
		return
	}

	// finalWidth is the width of the deduced marker in bytes: 1 for a single
	// marker, 2 when the next byte repeats it
	finalWidth := 1
	t := TypeItalic

	if i+1 < len(line) && Symbol(line[i+1]) == b {
		finalWidth = 2
		t = doubled
	}

	token = Token{
		Type: t,
		Pos:  i,
		Len:  finalWidth,
		Val:  line[i : i+finalWidth],
	}

	stride = finalWidth
	ok = true
	return
}
