package markdown

// actUnorderedList matches optional leading whitespace, one list marker ('-',
// '*' or '+'), then one or more whitespace characters. The token consumes the
// whole matched prefix; the item text stays for inline scanning.
//
// On failure it returns ok = false with the cursor untouched, so a line like
// "*emphasis*" degrades to a paragraph and the '*' is handled inline.
func actUnorderedList(line string) (token Token, stride int, ok bool) {
	n := len(line)

	i := 0
	for i < n && isLineSpace(line[i]) {
		i++
	}

	if i >= n || !isListMarker(line[i]) {
		return
	}
	i++

	// the marker must be followed by at least one whitespace character
	if i >= n || !isLineSpace(line[i]) {
		return
	}
	for i < n && isLineSpace(line[i]) {
		i++
	}

	token = Token{
		Type: TypeUnorderedList,
		Pos:  0,
		Len:  i,
		Val:  line[:i],
	}

	stride = i
	ok = true
	return
}

func isListMarker(b byte) bool {
	switch Symbol(b) {
	case SymbolListDash, SymbolItalic, SymbolListPlus:
		return true
	}
	return false
}
