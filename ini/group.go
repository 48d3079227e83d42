package ini

// A Section addresses every physical section sharing one case-insensitive
// header key as a single logical unit. The legacy format permits the same
// [Header] to appear several times; readers see the union, with later blocks
// shadowing earlier ones.
//
// A Section holds the owning Doc plus the ascending, duplicate-free list of
// positions into the Doc's section slice. Because positions are sorted and
// unique, every member denotes a distinct entry of the backing array and
// mutations through the view never alias.
type Section struct {
	doc *Doc
	pos []int
}

// Prop is one key/value pair as written in the source.
type Prop struct {
	Key   string
	Value string
}

// Key returns the header key of the group's first physical section, as
// written.
func (s *Section) Key() string {
	return s.doc.sections[s.pos[0]].key(s.doc.src)
}

// Has reports whether any member defines key.
func (s *Section) Has(key string) bool {
	d := s.doc
	for i := len(s.pos) - 1; i >= 0; i-- {
		if d.sections[s.pos[i]].has(d.src, key) {
			return true
		}
	}
	return false
}

// Get scans members from most recently declared to least and returns the
// first hit: a later duplicate section shadows an earlier one, and within a
// section the last definition wins.
func (s *Section) Get(key string) (string, bool) {
	d := s.doc
	for i := len(s.pos) - 1; i >= 0; i-- {
		if v, ok := d.sections[s.pos[i]].get(d.src, key); ok {
			return v, true
		}
	}
	return "", false
}

// Set writes value under key. An existing definition in a member other than
// the first is updated in place, newest member first, so subsequent reads
// observe the new value through the same shadowing Get uses. When no such
// member has the key, the write lands on the first (earliest-declared)
// member, appending the property if it is absent there too.
func (s *Section) Set(key, value string) {
	d := s.doc
	for i := len(s.pos) - 1; i >= 1; i-- {
		if d.sections[s.pos[i]].replace(d.src, key, value) {
			return
		}
	}
	d.sections[s.pos[0]].set(d.src, key, value)
}

// Delete removes key from every member, so no physical duplicate retains it.
func (s *Section) Delete(key string) {
	d := s.doc
	for _, p := range s.pos {
		d.sections[p].remove(d.src, key)
	}
}

// Rename relabels key from -> to in every member.
func (s *Section) Rename(from, to string) {
	d := s.doc
	for _, p := range s.pos {
		d.sections[p].rename(d.src, from, to)
	}
}

// Props returns the group's properties in declaration order: members in
// ascending document position, each member's own item order. This is
// deliberately not the shadowing order Get resolves in.
func (s *Section) Props() []Prop {
	d := s.doc
	var props []Prop
	for _, p := range s.pos {
		sec := &d.sections[p]
		for i := range sec.items {
			it := &sec.items[i]
			if it.kind != itemProperty {
				continue
			}
			props = append(props, Prop{
				Key:   it.key.resolve(d.src),
				Value: it.value.resolve(d.src),
			})
		}
	}
	return props
}
