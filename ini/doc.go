// Package ini is a format-preserving key/value document engine for the
// line-oriented configuration format used by legacy world-definition files.
//
// The format permits duplicate section headers and duplicate keys; lookups
// are case-insensitive and resolve to the most recent definition. Parsing
// never fails: lines that fit no recognized shape are carried verbatim as
// opaque items. Serializing an unmodified document reproduces its source
// byte for byte, and edits disturb only the lines they touch.
package ini

import "strings"

// Doc is a parsed document: the immutable source text, the items before the
// first header (the global section), every physical section in source order,
// and an index grouping section positions by lowercased header key. Index
// positions always point into the section slice; removal rebuilds the index,
// appends extend it.
type Doc struct {
	src      string
	global   section
	sections []section
	index    map[string][]int
}

// Parse builds a Doc from source text. It cannot fail; any text is accepted.
func Parse(src string) *Doc {
	d := &Doc{src: src, index: make(map[string][]int)}
	sc := &scanner{src: src}
	cur := -1
	for {
		it, ok := sc.next()
		if !ok {
			break
		}
		if it.kind == itemSection {
			d.sections = append(d.sections, section{items: []item{it}})
			cur = len(d.sections) - 1
			k := lowerKey(it.key.resolve(src))
			d.index[k] = append(d.index[k], cur)
			continue
		}
		if cur < 0 {
			d.global.items = append(d.global.items, it)
		} else {
			d.sections[cur].items = append(d.sections[cur].items, it)
		}
	}
	return d
}

// HasSection reports whether any physical section carries the key.
func (d *Doc) HasSection(key string) bool {
	_, ok := d.index[lowerKey(key)]
	return ok
}

// Section returns the group of physical sections sharing key, or nil when the
// key is absent.
func (d *Doc) Section(key string) *Section {
	pos, ok := d.index[lowerKey(key)]
	if !ok {
		return nil
	}
	return &Section{doc: d, pos: pos}
}

// AppendSection returns the section group for key, first creating a new empty
// physical section with that header at the end of the document when the key
// is absent.
func (d *Doc) AppendSection(key string) *Section {
	if s := d.Section(key); s != nil {
		return s
	}
	hdr := item{kind: itemSection, key: ownedSpan(key)}
	d.sections = append(d.sections, section{items: []item{hdr}})
	k := lowerKey(key)
	d.index[k] = append(d.index[k], len(d.sections)-1)
	return &Section{doc: d, pos: d.index[k]}
}

// RemoveSection deletes every physical section in the key's group. Positions
// shift, so the index is rebuilt.
func (d *Doc) RemoveSection(key string) {
	pos, ok := d.index[lowerKey(key)]
	if !ok {
		return
	}
	d.deletePositions(pos)
}

// RenameSection relabels every header in the from group to the new key,
// removing any existing group under to so the name is not left ambiguous.
// A pure case change only relabels.
func (d *Doc) RenameSection(from, to string) {
	fk, tk := lowerKey(from), lowerKey(to)
	pos, ok := d.index[fk]
	if !ok {
		return
	}
	for _, p := range pos {
		d.sections[p].setKey(to)
	}
	if fk == tk {
		return
	}
	if old, ok := d.index[tk]; ok {
		// deletePositions reindexes, which also re-keys the relabeled group.
		d.deletePositions(old)
		return
	}
	d.index[tk] = pos
	delete(d.index, fk)
}

// Has reports whether the named section group defines key.
func (d *Doc) Has(sectionKey, key string) bool {
	s := d.Section(sectionKey)
	return s != nil && s.Has(key)
}

// Get returns the value of key within the named section group, preferring
// later physical sections over earlier ones and, within a section, later
// definitions over earlier ones.
func (d *Doc) Get(sectionKey, key string) (string, bool) {
	pos, ok := d.index[lowerKey(sectionKey)]
	if !ok {
		return "", false
	}
	for i := len(pos) - 1; i >= 0; i-- {
		if v, ok := d.sections[pos[i]].get(d.src, key); ok {
			return v, true
		}
	}
	return "", false
}

// Set writes value under sectionKey/key, creating the section when absent.
// Mutation never fails.
func (d *Doc) Set(sectionKey, key, value string) {
	d.AppendSection(sectionKey).Set(key, value)
}

// Delete removes key from every physical section in the group. Missing
// sections are a no-op.
func (d *Doc) Delete(sectionKey, key string) {
	if s := d.Section(sectionKey); s != nil {
		s.Delete(key)
	}
}

// Rename relabels key from -> to in every physical section of the group.
func (d *Doc) Rename(sectionKey, from, to string) {
	if s := d.Section(sectionKey); s != nil {
		s.Rename(from, to)
	}
}

// Sections returns each section group once, in order of first appearance.
func (d *Doc) Sections() []*Section {
	seen := make(map[string]bool, len(d.index))
	groups := make([]*Section, 0, len(d.index))
	for i := range d.sections {
		k := lowerKey(d.sections[i].key(d.src))
		if seen[k] {
			continue
		}
		seen[k] = true
		groups = append(groups, &Section{doc: d, pos: d.index[k]})
	}
	return groups
}

// Malformed describes one line the scanner could not classify.
type Malformed struct {
	// Offset is the byte offset of the line in the source text.
	Offset int
	// Raw is the line exactly as written, terminator included.
	Raw string
}

// Malformed returns every unclassifiable line in document order. Edits never
// introduce malformed lines, so offsets always refer to the original source.
func (d *Doc) Malformed() []Malformed {
	var out []Malformed
	collect := func(s *section) {
		for i := range s.items {
			it := &s.items[i]
			if it.kind == itemError {
				out = append(out, Malformed{Offset: it.key.lo, Raw: it.key.resolve(d.src)})
			}
		}
	}
	collect(&d.global)
	for i := range d.sections {
		collect(&d.sections[i])
	}
	return out
}

// String serializes the document: the global section, then every physical
// section in original source order. Grouping never reorders sections, so an
// untouched document round-trips byte for byte.
func (d *Doc) String() string {
	var sb strings.Builder
	sb.Grow(len(d.src))
	d.global.render(&sb, d.src)
	for i := range d.sections {
		d.sections[i].render(&sb, d.src)
	}
	return sb.String()
}

func (d *Doc) deletePositions(pos []int) {
	drop := make(map[int]bool, len(pos))
	for _, p := range pos {
		drop[p] = true
	}
	kept := d.sections[:0]
	for i := range d.sections {
		if drop[i] {
			continue
		}
		kept = append(kept, d.sections[i])
	}
	d.sections = kept
	d.reindex()
}

func (d *Doc) reindex() {
	d.index = make(map[string][]int, len(d.index))
	for i := range d.sections {
		k := lowerKey(d.sections[i].key(d.src))
		d.index[k] = append(d.index[k], i)
	}
}
