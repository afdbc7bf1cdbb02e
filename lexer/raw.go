package lexer

// PeekChar returns the raw source byte at the lexer's current scan
// position (ignoring tokenization — whitespace included), used by the
// parser when scanning HTML text and template-string content where
// whitespace is significant. It must only be called when no token has
// been peeked without being consumed (Consume, GetUntil, and Revert all
// leave the lexer in that state).
func (l *Lexer) PeekChar() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

// HasPrefix reports whether the raw source at the current scan position
// starts with s.
func (l *Lexer) HasPrefix(s string) bool {
	return len(l.src)-l.pos >= len(s) && l.src[l.pos:l.pos+len(s)] == s
}
