package parser

// readString reads a string literal. A doubled quote ("") stands for one
// quote character; literals may not span lines.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // skip opening "

	var result []byte
	for {
		switch l.ch {
		case 0, '\n':
			return string(result), false
		case '"':
			if l.peekChar() == '"' {
				result = append(result, '"')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing "
			return string(result), true
		default:
			result = append(result, l.ch)
			l.readChar()
		}
	}
}

// quoteString renders s as a literal that readString accepts
func quoteString(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			out = append(out, '"')
		}
		out = append(out, s[i])
	}
	return string(append(out, '"'))
}
