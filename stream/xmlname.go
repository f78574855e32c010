package stream

import (
	"unicode"
	"unicode/utf8"
)

func isNameStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == ':' || r == '_' || ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
	}
	return unicode.IsLetter(r)
}

func isNameRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isNameStartRune(r) || r == '-' || r == '.' || ('0' <= r && r <= '9')
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || r == 0xB7
}

// isName reports whether s is an XML Name.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !isNameStartRune(r) {
				return false
			}
			continue
		}
		if !isNameRune(r) {
			return false
		}
	}
	return true
}
