package ini

// A scanner classifies each line of a source text into one item. It is a
// single-pass, non-restartable sequence; Parse drains it once. Spans in the
// produced items are absolute offsets into the full source.
//
// Classification is total. A line that opens a bracket without closing it, or
// that has content but no '=', becomes an error item holding the raw line;
// malformed input is data here, not failure.
type scanner struct {
	src string
	off int
}

func (sc *scanner) next() (item, bool) {
	ln, ok := nextLine(sc.src[sc.off:])
	if !ok {
		return item{}, false
	}
	base := sc.off
	trimLo, trimHi := base+ln.trimLo, base+ln.trimHi
	eq := -1
	if ln.eq >= 0 {
		eq = base + ln.eq
	}
	next := base + ln.next
	sc.off = next

	raw := sliced(base, next)
	if trimLo == trimHi {
		return item{kind: itemBlank, key: raw}, true
	}
	leading := sliced(base, trimLo)
	trailing := sliced(trimHi, next)

	switch sc.src[trimLo] {
	case '[':
		if trimHi-trimLo > 2 && sc.src[trimHi-1] == ']' {
			it := item{kind: itemSection, key: sliced(trimLo+1, trimHi-1)}
			it.pad[0], it.pad[1] = leading, trailing
			return it, true
		}
		return item{kind: itemError, key: raw}, true
	case ';':
		it := item{kind: itemComment, key: sliced(trimLo+1, trimHi)}
		it.pad[0], it.pad[1] = leading, trailing
		return it, true
	}
	if eq >= 0 {
		// Key and value are re-trimmed from their own side of the '=';
		// the space between them becomes padding of its own.
		keyHi := trimLo + trimEnd(sc.src[trimLo:eq])
		valLo := eq + 1 + trimStart(sc.src[eq+1:trimHi])
		it := item{
			kind:  itemProperty,
			key:   sliced(trimLo, keyHi),
			value: sliced(valLo, trimHi),
		}
		it.pad[0], it.pad[1] = leading, sliced(keyHi, eq)
		it.pad[2], it.pad[3] = sliced(eq+1, valLo), trailing
		return it, true
	}
	return item{kind: itemError, key: raw}, true
}
