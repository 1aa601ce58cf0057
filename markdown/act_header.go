package markdown

// actHeader is the anchored header recognizer: 1 to MaxHeaderLevel leading '#'
// characters, then a single non-'#' character, then optional whitespace, then at
// least one more character. The token consumes the marker run, the non-'#'
// character and the whitespace; the rest of the line stays for inline scanning.
//
// On failure it returns ok = false and the line degrades to a paragraph.
func actHeader(line string) (token Token, stride int, ok bool) {
	n := len(line)

	level := 0
	for level < n && Symbol(line[level]) == SymbolHeader {
		level++
	}

	if level == 0 || level > MaxHeaderLevel {
		return
	}

	// the single character after the marker run only has to exist; the run
	// counted above guarantees it is not '#'
	i := level
	if i >= n {
		return
	}
	i++

	for i < n && isLineSpace(line[i]) {
		i++
	}

	// at least one character of content must remain after the whitespace
	if i >= n {
		return
	}

	token = Token{
		Type:  TypeHeader,
		Pos:   0,
		Len:   i,
		Val:   line[:i],
		Level: level,
	}

	stride = i
	ok = true
	return
}
