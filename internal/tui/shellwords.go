package tui

import "unicode"

// splitShellWords splits the add prompt into words, honoring single quotes,
// double quotes and backslash escapes (outside single quotes).
func splitShellWords(s string) []string {
	var out []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false
	quoted := false

	flush := func() {
		if len(cur) == 0 && !quoted {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
		quoted = false
	}

	for _, r := range s {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == '\\' && !inSingle:
			escaped = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true
		case !inSingle && !inDouble && unicode.IsSpace(r):
			flush()
		default:
			cur = append(cur, r)
		}
	}

	flush()
	return out
}
