package editions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knyttools/libks/mapbin"
)

func makeWorld(t *testing.T, worldINI string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "World.ini"), []byte(worldINI), 0o644); err != nil {
		t.Fatal(err)
	}
	for name, contents := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func writeMapBin(t *testing.T, dir string, screens []mapbin.Screen) {
	t.Helper()
	if err := mapbin.WriteFile(filepath.Join(dir, "Map.bin"), screens); err != nil {
		t.Fatal(err)
	}
}

const vanillaINI = "[World]\nName=Test World\nAuthor=Someone\nSize=20\n"

func TestGuessFast(t *testing.T) {
	tests := []struct {
		name  string
		ini   string
		files map[string]string
		want  Edition
	}{
		{"vanilla", vanillaINI, nil, Vanilla},
		{"plus format stamp", "[World]\nName=W\nFormat=4\n", nil, Plus},
		{"extended format stamp", "[World]\nName=W\nFormat=3\n", nil, Extended},
		{"extended format ex", "[World]\nName=W\nFormatEx=1\n", nil, Extended},
		{"extended script lua", vanillaINI, map[string]string{"Script.lua": "-- lua"}, Extended},
		{"plus info png", vanillaINI, map[string]string{"Info+.png": "png"}, Plus},
		{"extended section", vanillaINI + "[KS Ex]\nX=1\n", nil, Extended},
		{"plus section", vanillaINI + "[Loop Music]\nX=1\n", nil, Plus},
		{"plus world prop", "[World]\nName=W\nCoin=30\n", nil, Plus},
		{"plus world prop case", "[World]\nName=W\nALTDIE=True\n", nil, Plus},
		{"advanced world prop", "[World]\nName=W\nDeathByFalling=True\n", nil, Advanced},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := makeWorld(t, test.ini, test.files)
			got, reason, err := GuessFast(dir)
			if err != nil {
				t.Fatalf("GuessFast: %v", err)
			}
			if got != test.want {
				t.Errorf("GuessFast = %s (%s), want %s", got, reason, test.want)
			}
		})
	}
}

func TestGuessFastMissingWorldINI(t *testing.T) {
	if _, _, err := GuessFast(t.TempDir()); err == nil {
		t.Error("GuessFast succeeded without a World.ini")
	}
}

func TestGuessAccurateScreenProps(t *testing.T) {
	tests := []struct {
		name string
		ini  string
		want Edition
	}{
		{"plus screen prop", vanillaINI + "[x1000y1000]\nOverlay=True\n", Plus},
		{"plus b bank object", vanillaINI + "[Custom Object B3]\nImage=x.png\n", Plus},
		{"plus object prop", vanillaINI + "[Custom Object 3]\nHurts=True\n", Plus},
		{"plus coin flag", vanillaINI + "[x10y10]\nFlag(A)=Coin3\n", Plus},
		{"plus artifact warp", vanillaINI + "[x10y10]\nFlagWarpX(B)=Artifact5\n", Plus},
		{
			"advanced outnumbers aco",
			vanillaINI + "[x1y1]\nChangeToColor=5\nReplace(R)=100\n[x2y1]\nWarpSave=1\n",
			Advanced,
		},
		{
			"aco screen prop",
			vanillaINI + "[x1y1]\nWarpSave=1\n",
			AdvancedCustomObjects,
		},
		{
			"aco object prop",
			vanillaINI + "[Custom Object 9]\nDoes kill=1\nType=3\n",
			AdvancedCustomObjects,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := makeWorld(t, test.ini, nil)
			got, reason, err := GuessAccurate(dir)
			if err != nil {
				t.Fatalf("GuessAccurate: %v", err)
			}
			if got != test.want {
				t.Errorf("GuessAccurate = %s (%s), want %s", got, reason, test.want)
			}
		})
	}
}

func TestGuessAccurateFiles(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  Edition
	}{
		{"plus icon override", map[string]string{"Custom Objects/CoinIcon.png": "png"}, Plus},
		{"plus song intro", map[string]string{"Music/Intro12.ogg": "ogg"}, Plus},
		{"advanced scene", map[string]string{"Scenes/Scene1.ini": "[Scene]\n"}, Advanced},
		{"vanilla dir ignored", map[string]string{"Tilesets/Scene1.ini": "[Scene]\n"}, Vanilla},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := makeWorld(t, vanillaINI, test.files)
			writeMapBin(t, dir, nil)
			got, reason, err := GuessAccurate(dir)
			if err != nil {
				t.Fatalf("GuessAccurate: %v", err)
			}
			if got != test.want {
				t.Errorf("GuessAccurate = %s (%s), want %s", got, reason, test.want)
			}
		})
	}
}

func TestGuessAccurateMapBin(t *testing.T) {
	objectTile := func(tile mapbin.Tile) mapbin.Screen {
		var s mapbin.Screen
		s.X, s.Y = 1000, 1000
		s.Layers[4][0] = tile
		return s
	}
	tests := []struct {
		name string
		tile mapbin.Tile
		want Edition
	}{
		{"plus object", mapbin.Tile{Bank: 19, Index: 50}, Plus},
		{"advanced object", mapbin.Tile{Bank: 254, Index: 10}, Advanced},
		{"aco object", mapbin.Tile{Bank: 253, Index: 4}, AdvancedCustomObjects},
		{"vanilla object", mapbin.Tile{Bank: 3, Index: 8}, Vanilla},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := makeWorld(t, vanillaINI, nil)
			writeMapBin(t, dir, []mapbin.Screen{objectTile(test.tile)})
			got, reason, err := GuessAccurate(dir)
			if err != nil {
				t.Fatalf("GuessAccurate: %v", err)
			}
			if got != test.want {
				t.Errorf("GuessAccurate = %s (%s), want %s", got, reason, test.want)
			}
		})
	}
}

func TestGuessAccurateReasonMentionsEvidence(t *testing.T) {
	dir := makeWorld(t, vanillaINI+"[x7y9]\nOverlay=True\n", nil)
	_, reason, err := GuessAccurate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reason.String(), "x7y9") || !strings.Contains(reason.String(), "Overlay") {
		t.Errorf("reason %q does not name the screen and property", reason)
	}
}

func TestListExecutables(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Knytt Stories.exe", "KSAdvanced.exe"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("MZ"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	exes := ListExecutables(dir)
	if len(exes) != 2 {
		t.Fatalf("found %d executables, want 2", len(exes))
	}
	if exes[0].Edition != Vanilla || exes[1].Edition != Advanced {
		t.Errorf("editions = %s, %s; want vanilla, KS Advanced", exes[0].Edition, exes[1].Edition)
	}
}

func TestIsKSDir(t *testing.T) {
	dir := t.TempDir()
	if IsKSDir(dir) {
		t.Error("empty dir reported as a KS installation")
	}
	for _, sub := range []string{"Worlds", "Data"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if IsKSDir(dir) {
		t.Error("dir without executables reported as a KS installation")
	}
	if err := os.WriteFile(filepath.Join(dir, "Knytt Stories.exe"), []byte("MZ"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !IsKSDir(dir) {
		t.Error("complete installation not recognized")
	}
}

func TestSmallSet(t *testing.T) {
	linear := newSmallSet([]string{"Alpha", "Beta"})
	if linear.hashed != nil {
		t.Error("two entries should use the linear representation")
	}
	if !linear.has("alpha") || linear.has("gamma") {
		t.Error("linear membership wrong")
	}

	var many []string
	for i := 0; i < maxLinearLen+1; i++ {
		many = append(many, strings.Repeat("x", i+1))
	}
	hashed := newSmallSet(many)
	if hashed.hashed == nil {
		t.Errorf("%d entries should use the hashed representation", len(many))
	}
	if !hashed.has("xxx") || hashed.has("y") {
		t.Error("hashed membership wrong")
	}
}
