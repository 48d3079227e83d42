package editions

import (
	"os"
	"path/filepath"
	"strings"
)

// checkFilesBasic probes the two cheap file markers: Script.lua (KS Ex) and
// Info+.png (KS Plus) at the top of the world directory.
func checkFilesBasic(worldDir string) (Edition, Reason, bool, error) {
	ok, err := fileExists(filepath.Join(worldDir, "Script.lua"))
	if err != nil {
		return Vanilla, Reason{}, false, err
	}
	if ok {
		return Extended, reasonf("Script.lua is present in the world directory"), true, nil
	}

	ok, err = fileExists(filepath.Join(worldDir, "Info+.png"))
	if err != nil {
		return Vanilla, Reason{}, false, err
	}
	if ok {
		return Plus, reasonf("Info+.png is present in the world directory"), true, nil
	}
	return Vanilla, Reason{}, false, nil
}

// checkFilesThorough walks the world's asset directories for KS Advanced
// scene definitions, KS Plus icon overrides, and KS Plus song intros.
func checkFilesThorough(worldDir string, fp *fingerprints) (Edition, Reason, bool, error) {
	isAdvScene := func(name string) bool {
		return numberedAffix(strings.ToLower(name), "scene", ".ini", 1, 1<<31-1)
	}
	isPlusIcon := func(name string) bool {
		return fp.plusIconOverrides.has(strings.ToLower(name))
	}
	isPlusIntro := func(name string) bool {
		return numberedAffix(strings.ToLower(name), "intro", ".ogg", 1, 255)
	}

	// Scene#.ini files live in custom subdirectories, one per scene set, so
	// every non-vanilla directory has to be checked.
	entries, err := os.ReadDir(worldDir)
	if err != nil {
		return Vanilla, Reason{}, false, err
	}
	for _, entry := range entries {
		if !entry.IsDir() || fp.vanillaDirs.has(strings.ToLower(entry.Name())) {
			continue
		}
		name, err := findInDir(filepath.Join(worldDir, entry.Name()), isAdvScene)
		if err != nil {
			return Vanilla, Reason{}, false, err
		}
		if name != "" {
			return Advanced, reasonf("a KS Advanced scene definition exists at %s",
				filepath.Join(entry.Name(), name)), true, nil
		}
	}

	name, err := findInDir(filepath.Join(worldDir, "Custom Objects"), isPlusIcon)
	if err != nil {
		return Vanilla, Reason{}, false, err
	}
	if name != "" {
		return Plus, reasonf("a KS Plus icon override exists at %s",
			filepath.Join("Custom Objects", name)), true, nil
	}

	name, err = findInDir(filepath.Join(worldDir, "Music"), isPlusIntro)
	if err != nil {
		return Vanilla, Reason{}, false, err
	}
	if name != "" {
		return Plus, reasonf("a KS Plus song intro exists at %s",
			filepath.Join("Music", name)), true, nil
	}
	return Vanilla, Reason{}, false, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

// findInDir returns the name of the first entry in dir matching pred, or ""
// when there is none. A missing dir is not an error.
func findInDir(dir string, pred func(string) bool) (string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			return "", nil
		}
		return "", err
	}
	for _, entry := range entries {
		if pred(entry.Name()) {
			return entry.Name(), nil
		}
	}
	return "", nil
}
