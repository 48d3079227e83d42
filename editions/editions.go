// Package editions identifies which fork of the game a world was made for.
//
// Besides the vanilla release there are several community forks, each adding
// its own World.ini properties, map objects, and companion files. Worlds do
// not declare which fork they target (only KS Plus and KS Extended stamp a
// Format property, and only in recent versions), so the edition has to be
// guessed from the features a world actually uses.
package editions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knyttools/libks/debug"
	"github.com/knyttools/libks/mapbin"
	"github.com/knyttools/libks/worldini"
)

// Edition is one of the known game forks.
type Edition int

const (
	// Vanilla is the original, unmodified game.
	Vanilla Edition = iota
	// Plus is KS Plus.
	Plus
	// Extended is KS Ex, scriptable via Script.lua.
	Extended
	// Advanced is KS Advanced.
	Advanced
	// AdvancedCustomObjects is the KS Advanced Custom Objects fork.
	AdvancedCustomObjects
)

func (e Edition) String() string {
	switch e {
	case Vanilla:
		return "vanilla"
	case Plus:
		return "KS Plus"
	case Extended:
		return "KS Ex"
	case Advanced:
		return "KS Advanced"
	case AdvancedCustomObjects:
		return "KS ACO"
	}
	return "unknown"
}

// Executable is a game binary found in an installation directory.
type Executable struct {
	Edition Edition
	Path    string
}

// Reason is the human-readable evidence behind an edition guess.
type Reason struct {
	msg string
}

func (r Reason) String() string { return r.msg }

func reasonf(format string, args ...any) Reason {
	return Reason{msg: fmt.Sprintf(format, args...)}
}

// defaultReason is returned when no fork features were detected.
var defaultReason = Reason{msg: "no features from any mods were detected"}

// IsKSDir reports whether dir looks like a game installation: a Worlds
// folder, a Data folder, and at least one known executable.
func IsKSDir(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	for _, sub := range []string{"Worlds", "Data"} {
		if _, err := os.Stat(filepath.Join(dir, sub)); err != nil {
			return false
		}
	}
	return len(ListExecutables(dir)) > 0
}

// ListExecutables returns the known game executables present in ksDir.
func ListExecutables(ksDir string) []Executable {
	known := []struct {
		edition Edition
		name    string
	}{
		{Vanilla, "Knytt Stories.exe"},
		{Plus, "Knytt Stories Plus.exe"},
		{Plus, "Knytt Stories Plus 1080.exe"},
		{Extended, "Knytt Stories Ex.exe"},
		{Advanced, "KSAdvanced.exe"},
	}
	var exes []Executable
	for _, k := range known {
		path := filepath.Join(ksDir, k.name)
		if _, err := os.Stat(path); err == nil {
			exes = append(exes, Executable{Edition: k.edition, Path: path})
		}
	}
	return exes
}

// GuessFast determines the edition the world in worldDir targets, trading
// accuracy for speed. It only inspects World.ini and the top of the world
// directory, so it can miss Advanced and ACO worlds. Defaults to Vanilla.
func GuessFast(worldDir string) (Edition, Reason, error) {
	doc, err := worldini.Load(worldDir)
	if err != nil {
		return Vanilla, Reason{}, err
	}
	fp := loadFingerprints()

	if e, r, ok := checkIniFormat(doc); ok {
		return traced("ini format", e, r), r, nil
	}
	if e, r, ok, err := checkFilesBasic(worldDir); err != nil {
		return Vanilla, Reason{}, err
	} else if ok {
		return traced("files basic", e, r), r, nil
	}
	if e, r, ok := checkIniBasic(doc, fp); ok {
		return traced("ini basic", e, r), r, nil
	}
	return Vanilla, defaultReason, nil
}

// GuessAccurate determines the edition the world in worldDir targets,
// trading speed for accuracy. It reads all of World.ini, walks the asset
// directories, and decodes Map.bin. Vanilla worlds take the longest since
// every other edition has to be ruled out first. Defaults to Vanilla.
func GuessAccurate(worldDir string) (Edition, Reason, error) {
	doc, err := worldini.Load(worldDir)
	if err != nil {
		return Vanilla, Reason{}, err
	}
	fp := loadFingerprints()

	if e, r, ok := checkIniFormat(doc); ok {
		return traced("ini format", e, r), r, nil
	}
	if e, r, ok, err := checkFilesBasic(worldDir); err != nil {
		return Vanilla, Reason{}, err
	} else if ok {
		return traced("files basic", e, r), r, nil
	}
	if e, r, ok := checkIniBasic(doc, fp); ok {
		return traced("ini basic", e, r), r, nil
	}
	if e, r, ok := checkIniThorough(doc, fp); ok {
		return traced("ini thorough", e, r), r, nil
	}
	if e, r, ok, err := checkFilesThorough(worldDir, fp); err != nil {
		return Vanilla, Reason{}, err
	} else if ok {
		return traced("files thorough", e, r), r, nil
	}

	screens, _, err := mapbin.ReadFile(filepath.Join(worldDir, "Map.bin"))
	if err != nil {
		return Vanilla, Reason{}, err
	}
	if e, r, ok := checkMapBin(screens, fp); ok {
		return traced("map bin", e, r), r, nil
	}
	return Vanilla, defaultReason, nil
}

func traced(heuristic string, e Edition, r Reason) Edition {
	if debug.Editions() {
		debug.Logf("editions: %s heuristic chose %s: %s\n", heuristic, e, r)
	}
	return e
}
