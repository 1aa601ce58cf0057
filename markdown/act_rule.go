package markdown

// horizontalRules are the three canonical rule lines, compared verbatim.
var horizontalRules = [...]string{"---", "___", "***"}

// actHorizontalRule matches the entire line against the canonical rule strings.
// No trimming happens: a line like "--- " falls through to list and paragraph
// handling, and "----" is ordinary text.
func actHorizontalRule(line string) (token Token, ok bool) {
	for _, rule := range horizontalRules {
		if line == rule {
			token = Token{
				Type: TypeHorizontalRule,
				Pos:  0,
				Len:  len(rule),
				Val:  rule,
			}

			ok = true
			return
		}
	}

	return
}
