// Package shellargs splits raw shell-like argument strings into tokens.
//
// The splitting is deliberately naive: an opening ' or " suppresses
// whitespace splitting until the matching close quote, and the quote
// characters are kept in the token rather than stripped. Downstream
// consumers rely on that exact behavior, so this must not be swapped for
// POSIX-compliant quoting.
package shellargs

import (
	"strings"
	"unicode"
)

// Split tokenizes a raw argument string on runs of unquoted whitespace.
// Leading and trailing whitespace is trimmed first; an empty string yields
// no tokens.
func Split(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var tokens []string
	var cur strings.Builder
	var quote rune

	for _, r := range s {
		switch {
		case quote != 0:
			cur.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}
