package ini

// A span designates the text of one syntactic piece of a document: either a
// half-open byte range into the original source, or an owned string for
// content introduced by an edit. Range spans always index the source they
// were cut from; edits swap a span wholesale rather than rewriting it.
type span struct {
	lo, hi int
	text   string
	owned  bool
}

func sliced(lo, hi int) span {
	return span{lo: lo, hi: hi}
}

func ownedSpan(s string) span {
	return span{text: s, owned: true}
}

func (s span) resolve(src string) string {
	if s.owned {
		return s.text
	}
	return src[s.lo:s.hi]
}
