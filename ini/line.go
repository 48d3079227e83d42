package ini

import "strings"

// A line records what the item scanner needs to know about the next logical
// line of a remainder: the trimmed content bounds, the position of the first
// '=' before the terminator (-1 when there is none), the offset of the
// terminator, and the offset where the following line starts. All offsets are
// relative to the remainder handed to nextLine.
type line struct {
	trimLo, trimHi int
	eq             int
	end            int
	next           int
}

// nextLine scans the next logical line of s, reporting false only when s is
// empty. Terminators are \n, \r, and \r\n; the final line may have none, in
// which case end and next are both len(s).
func nextLine(s string) (line, bool) {
	if s == "" {
		return line{}, false
	}

	eq := -1
	end := len(s)
	var term byte
	hasTerm := false
	if i := strings.IndexAny(s, "\r\n="); i >= 0 {
		if s[i] == '=' {
			eq = i
			rest := s[i+1:]
			if j := strings.IndexAny(rest, "\r\n"); j >= 0 {
				end = i + 1 + j
				term = rest[j]
				hasTerm = true
			}
		} else {
			end = i
			term = s[i]
			hasTerm = true
		}
	}

	next := len(s)
	if hasTerm {
		next = end + 1
		if term == '\r' && end+1 < len(s) && s[end+1] == '\n' {
			next = end + 2
		}
		if next > len(s) {
			next = len(s)
		}
	}

	trimLo, trimHi := trimmedRange(s[:end])
	return line{trimLo: trimLo, trimHi: trimHi, eq: eq, end: end, next: next}, true
}

// Trimming throughout the scanner strips ASCII space (0x20) only. The legacy
// format treats tabs and other whitespace as content.

func trimStart(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			return i
		}
	}
	return len(s)
}

func trimEnd(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != ' ' {
			return i + 1
		}
	}
	return 0
}

func trimmedRange(s string) (int, int) {
	lo := trimStart(s)
	if lo == len(s) {
		return len(s), len(s)
	}
	return lo, trimEnd(s)
}
