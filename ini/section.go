package ini

import "strings"

// A section is one physical [Header] block: its header item followed by every
// item up to the next header. The global section, holding whatever precedes
// the first header, has no header item and is never key-addressable.
type section struct {
	items []item
}

// key returns the header key as written. Only valid for non-global sections.
func (s *section) key(src string) string {
	return s.items[0].key.resolve(src)
}

// setKey relabels the header, keeping its padding.
func (s *section) setKey(to string) {
	s.items[0].key = ownedSpan(to)
}

// findProp locates the last property matching key. Duplicate keys within a
// section coexist; the most recent definition wins.
func (s *section) findProp(src, key string) *item {
	for i := len(s.items) - 1; i >= 0; i-- {
		it := &s.items[i]
		if it.kind == itemProperty && equalKey(it.key.resolve(src), key) {
			return it
		}
	}
	return nil
}

func (s *section) has(src, key string) bool {
	return s.findProp(src, key) != nil
}

func (s *section) get(src, key string) (string, bool) {
	if it := s.findProp(src, key); it != nil {
		return it.value.resolve(src), true
	}
	return "", false
}

// set overwrites the last match's value in place, preserving its padding, or
// appends a new property when the key is absent.
func (s *section) set(src, key, value string) {
	if it := s.findProp(src, key); it != nil {
		it.value = ownedSpan(value)
		return
	}
	s.items = append(s.items, newProp(key, value))
}

// replace is set without the append fallback: it reports whether an existing
// property took the value, letting group writes probe a member without
// committing to it.
func (s *section) replace(src, key, value string) bool {
	if it := s.findProp(src, key); it != nil {
		it.value = ownedSpan(value)
		return true
	}
	return false
}

// remove deletes every property matching key.
func (s *section) remove(src, key string) {
	kept := s.items[:0]
	for i := range s.items {
		it := s.items[i]
		if it.kind == itemProperty && equalKey(it.key.resolve(src), key) {
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
}

// rename relabels every property matching from, deleting any existing
// properties under to first so no stale duplicate survives. A pure case
// change skips the delete; the relabel alone covers it.
func (s *section) rename(src, from, to string) {
	if !equalKey(from, to) {
		s.remove(src, to)
	}
	for i := range s.items {
		it := &s.items[i]
		if it.kind == itemProperty && equalKey(it.key.resolve(src), from) {
			it.key = ownedSpan(to)
		}
	}
}

func (s *section) render(sb *strings.Builder, src string) {
	for i := range s.items {
		s.items[i].render(sb, src)
	}
}
