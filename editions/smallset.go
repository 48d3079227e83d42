package editions

import "strings"

// maxLinearLen is the size above which membership tests switch from a linear
// scan to a map. Most fingerprint lists are a handful of entries; scanning a
// short slice beats hashing for those.
const maxLinearLen = 20

// smallSet is a case-insensitive string set. Lookups expect already-lowered
// keys.
type smallSet struct {
	linear []string
	hashed map[string]struct{}
}

func newSmallSet(entries []string) smallSet {
	lowered := make([]string, len(entries))
	for i, e := range entries {
		lowered[i] = strings.ToLower(e)
	}
	if len(lowered) <= maxLinearLen {
		return smallSet{linear: lowered}
	}
	hashed := make(map[string]struct{}, len(lowered))
	for _, e := range lowered {
		hashed[e] = struct{}{}
	}
	return smallSet{hashed: hashed}
}

// has reports whether lowered is in the set. The argument must already be
// lowercase.
func (s smallSet) has(lowered string) bool {
	if s.hashed != nil {
		_, ok := s.hashed[lowered]
		return ok
	}
	for _, e := range s.linear {
		if e == lowered {
			return true
		}
	}
	return false
}
