package editions

import (
	"strconv"
	"strings"

	"github.com/knyttools/libks/ini"
	"github.com/knyttools/libks/mapbin"
)

// checkIniFormat looks for an explicit Format stamp in the [World] section.
// Only KS Plus (Format=4) and KS Ex (Format=3, or FormatEx) write one.
func checkIniFormat(doc *ini.Doc) (Edition, Reason, bool) {
	world := doc.Section("World")
	if world == nil {
		return Vanilla, Reason{}, false
	}
	switch v, _ := world.Get("Format"); v {
	case "4":
		return Plus, reasonf("World.ini specifies Format = 4"), true
	case "3":
		return Extended, reasonf("World.ini specifies Format = 3"), true
	}
	if world.Has("FormatEx") {
		return Extended, reasonf("the [World] section of World.ini has the property FormatEx"), true
	}
	return Vanilla, Reason{}, false
}

// checkIniBasic looks for fork-specific sections and [World] properties.
func checkIniBasic(doc *ini.Doc, fp *fingerprints) (Edition, Reason, bool) {
	for _, key := range fp.extendedSections {
		if doc.HasSection(key) {
			return Extended, reasonf("World.ini contains the section [%s]", key), true
		}
	}
	for _, key := range fp.plusSections {
		if doc.HasSection(key) {
			return Plus, reasonf("World.ini contains the section [%s]", key), true
		}
	}

	world := doc.Section("World")
	if world == nil {
		return Vanilla, Reason{}, false
	}
	for _, p := range world.Props() {
		if fp.plusWorldProps.has(strings.ToLower(p.Key)) {
			return Plus, reasonf("the [World] section of World.ini has the property %s", p.Key), true
		}
	}
	for _, p := range world.Props() {
		if fp.advWorldProps.has(strings.ToLower(p.Key)) {
			return Advanced, reasonf("the [World] section of World.ini has the property %s", p.Key), true
		}
	}
	return Vanilla, Reason{}, false
}

// checkIniThorough scans every object and screen section for fork-specific
// properties. KS Plus evidence is conclusive on first sight; Advanced and
// ACO share map object banks with each other, so their property sightings
// are tallied and the larger count wins.
func checkIniThorough(doc *ini.Doc, fp *fingerprints) (Edition, Reason, bool) {
	advSeen := newTally()
	acoSeen := newTally()

	for _, section := range doc.Sections() {
		key := section.Key()
		lowerKey := strings.ToLower(key)

		switch {
		case numberedAffix(lowerKey, "custom object b", "", 1, 255):
			// The B object bank only exists in KS Plus.
			return Plus, reasonf("World.ini contains the section [%s]", key), true

		case numberedAffix(lowerKey, "custom object ", "", 1, 255):
			for _, p := range section.Props() {
				lower := strings.ToLower(p.Key)
				if fp.plusObjectProps.has(lower) {
					return Plus, reasonf("in World.ini, the object section [%s] has the property %s", key, p.Key), true
				}
				if fp.acoObjectProps.has(lower) {
					acoSeen.add(p.Key)
				}
			}

		case isScreenKey(lowerKey):
			for _, p := range section.Props() {
				lower := strings.ToLower(p.Key)
				switch {
				case fp.plusScreenProps.has(lower):
					return Plus, reasonf("in World.ini, the screen section [%s] has the property %s", key, p.Key), true
				case fp.flagProps.has(lower) && isCoinFlag(p.Value):
					return Plus, reasonf("in World.ini, the screen section [%s] has a coin flag", key), true
				case fp.flagWarpProps.has(lower) && isArtifactWarp(p.Value):
					return Plus, reasonf("in World.ini, the screen section [%s] has an artifact warp", key), true
				case fp.advScreenProps.has(lower):
					advSeen.add(p.Key)
				case fp.acoScreenProps.has(lower):
					acoSeen.add(p.Key)
				}
			}
		}
	}

	switch {
	case advSeen.count > acoSeen.count:
		return Advanced, reasonf("World.ini uses these KS Advanced properties %d time(s): %s",
			advSeen.count, strings.Join(advSeen.keys, ", ")), true
	case acoSeen.count > 0:
		return AdvancedCustomObjects, reasonf("World.ini uses these KS ACO properties %d time(s): %s",
			acoSeen.count, strings.Join(acoSeen.keys, ", ")), true
	}
	return Vanilla, Reason{}, false
}

func isScreenKey(lowered string) bool {
	_, _, ok := mapbin.ParseXY(lowered)
	return ok
}

func isCoinFlag(value string) bool {
	return numberedAffix(strings.ToLower(value), "coin", "", 1, 100)
}

func isArtifactWarp(value string) bool {
	return numberedAffix(strings.ToLower(value), "artifact", "", 1, 7)
}

// numberedAffix reports whether s is prefix + n + suffix for an integer n in
// [lo, hi].
func numberedAffix(s, prefix, suffix string, lo, hi int) bool {
	mid, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return false
	}
	mid, ok = strings.CutSuffix(mid, suffix)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(mid)
	return err == nil && n >= lo && n <= hi
}

// tally counts sightings of properties, remembering each distinct key once.
type tally struct {
	count int
	keys  []string
	seen  map[string]bool
}

func newTally() *tally {
	return &tally{seen: map[string]bool{}}
}

func (t *tally) add(key string) {
	t.count++
	if !t.seen[key] {
		t.seen[key] = true
		t.keys = append(t.keys, key)
	}
}
