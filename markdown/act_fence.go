package markdown

import "strings"

// actFenceOpen opens a code block when the first three characters of the line
// are the fence sequence. The whole line is consumed; everything after the
// fence, trimmed, becomes the language label.
func actFenceOpen(line string) (token Token, stride int, ok bool) {
	if !strings.HasPrefix(line, TagFence) {
		return
	}

	token = Token{
		Type:  TypeCodeBlock,
		Pos:   0,
		Len:   len(line),
		Val:   line,
		Label: strings.TrimSpace(line[len(TagFence):]),
	}

	stride = len(line)
	ok = true
	return
}

// actFenceClose reports whether the line ends an open fence. Only the last
// three characters are checked, so a line whose entire content is the fence
// also closes. The closing token carries an empty label.
func actFenceClose(line string) (token Token, ok bool) {
	if !strings.HasSuffix(line, TagFence) {
		return
	}

	token = Token{
		Type: TypeCodeBlock,
		Pos:  0,
		Len:  len(line),
		Val:  line,
	}

	ok = true
	return
}
