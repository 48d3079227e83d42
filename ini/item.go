package ini

import "strings"

type itemKind uint8

const (
	itemError itemKind = iota
	itemSection
	itemProperty
	itemComment
	itemBlank
)

// An item is one parsed line. Every byte of the line lands in exactly one
// span, so rendering an untouched item reproduces it byte for byte:
//
//	Error, Blank   raw line including its terminator, in key
//	Section        pad[0] "[" key "]" pad[1]
//	Comment        pad[0] ";" key pad[1]
//	Property       pad[0] key pad[1] "=" pad[2] value pad[3]
//
// The last padding slot of a line holds everything after the content,
// including the terminator.
type item struct {
	kind  itemKind
	key   span
	value span
	pad   [4]span
}

func newProp(key, value string) item {
	return item{
		kind:  itemProperty,
		key:   ownedSpan(key),
		value: ownedSpan(value),
	}
}

func (it *item) render(sb *strings.Builder, src string) {
	switch it.kind {
	case itemError, itemBlank:
		sb.WriteString(it.key.resolve(src))
	case itemSection:
		sb.WriteString(it.pad[0].resolve(src))
		sb.WriteByte('[')
		sb.WriteString(it.key.resolve(src))
		sb.WriteByte(']')
		sb.WriteString(it.pad[1].resolve(src))
	case itemComment:
		sb.WriteString(it.pad[0].resolve(src))
		sb.WriteByte(';')
		sb.WriteString(it.key.resolve(src))
		sb.WriteString(it.pad[1].resolve(src))
	case itemProperty:
		sb.WriteString(it.pad[0].resolve(src))
		sb.WriteString(it.key.resolve(src))
		sb.WriteString(it.pad[1].resolve(src))
		sb.WriteByte('=')
		sb.WriteString(it.pad[2].resolve(src))
		sb.WriteString(it.value.resolve(src))
		sb.WriteString(it.pad[3].resolve(src))
	}
}

// equalKey compares keys case-insensitively over ASCII letters only, matching
// the legacy engine.
func equalKey(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerByte(a[i]) != lowerByte(b[i]) {
			return false
		}
	}
	return true
}

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func lowerKey(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = lowerByte(b[j])
			}
			return string(b)
		}
	}
	return s
}
