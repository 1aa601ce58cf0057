package markdown

// actLiteral consumes the longest run of plain text starting at i, stopping at
// the next inline delimiter or the end of the line. The run itself is never
// re-scanned for markers.
//
// Delimiters are single ASCII bytes and UTF-8 continuation bytes are all
// >= 0x80, so the byte-wise scan cannot split a multi-byte rune.
func actLiteral(line string, i int) (token Token, stride int) {
	end := len(line)

	for idx := i; idx < len(line); idx++ {
		if isInlineDelimiter(line[idx]) {
			end = idx
			break
		}
	}

	token = Token{
		Type: TypeLiteral,
		Pos:  i,
		Len:  end - i,
		Val:  line[i:end],
	}

	stride = end - i
	return
}
