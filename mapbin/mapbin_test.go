package mapbin

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleScreen(x, y int64) Screen {
	s := Screen{X: x, Y: y}
	for l := range s.Layers {
		for i := range s.Layers[l] {
			if l < 4 {
				s.Layers[l][i] = Tile{Bank: uint8((i + l) % 2), Index: uint8((i + l) % 128)}
			} else {
				s.Layers[l][i] = Tile{Bank: uint8(i % 7), Index: uint8(i % 250)}
			}
		}
	}
	s.Assets = AssetIDs{TilesetA: 1, TilesetB: 2, AmbianceA: 3, AmbianceB: 4, Music: 5, Gradient: 6}
	return s
}

func TestWriteReadRoundTrip(t *testing.T) {
	want := []Screen{sampleScreen(1000, 1000), sampleScreen(999, 1002)}
	var buf bytes.Buffer
	if err := Write(&buf, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, warnings, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("screens mismatch (-want +got):\n%s", diff)
	}
}

func writeEntry(w *bytes.Buffer, name string, data []byte) {
	w.WriteString(name)
	w.WriteByte(0)
	binary.Write(w, binary.LittleEndian, uint32(len(data)))
	w.Write(data)
}

func TestReadUncompressedWarnings(t *testing.T) {
	var raw bytes.Buffer
	writeEntry(&raw, "", []byte("editor junk"))
	writeEntry(&raw, "x1y1", make([]byte, 10))
	writeEntry(&raw, "x2y2", make([]byte, 3006))

	screens, warnings, err := ReadUncompressed(&raw)
	if err != nil {
		t.Fatalf("ReadUncompressed: %v", err)
	}
	if len(screens) != 1 || screens[0].X != 2 || screens[0].Y != 2 {
		t.Errorf("screens = %+v, want one screen at x2y2", screens)
	}
	kinds := make([]WarningKind, len(warnings))
	for i, w := range warnings {
		kinds[i] = w.Kind
	}
	want := []WarningKind{UnrecognizedEntry, IncompleteScreen}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("warning kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestReadUncompressedExtraScreenData(t *testing.T) {
	var raw bytes.Buffer
	writeEntry(&raw, "x5y5", make([]byte, 3010))
	screens, warnings, err := ReadUncompressed(&raw)
	if err != nil {
		t.Fatalf("ReadUncompressed: %v", err)
	}
	if len(screens) != 1 {
		t.Fatalf("got %d screens, want 1", len(screens))
	}
	if len(warnings) != 1 || warnings[0].Kind != ExtraScreenData {
		t.Errorf("warnings = %v, want one ExtraScreenData", warnings)
	}
}

func TestReadUncompressedTruncated(t *testing.T) {
	var raw bytes.Buffer
	writeEntry(&raw, "junk", make([]byte, 10))
	raw.Truncate(raw.Len() - 5)
	_, _, err := ReadUncompressed(&raw)
	if !errors.Is(err, ErrMissingData) {
		t.Errorf("ReadUncompressed = %v, want ErrMissingData", err)
	}
}

func TestReadRejectsNonGzip(t *testing.T) {
	if _, _, err := Read(bytes.NewReader([]byte("not gzip"))); err == nil {
		t.Error("Read accepted non-gzip input")
	}
}

func TestReadCStringTooLong(t *testing.T) {
	br := bufio.NewReader(bytes.NewReader(bytes.Repeat([]byte{'a'}, maxNameLen+1)))
	if _, err := readCString(br, maxNameLen); !errors.Is(err, ErrBadName) {
		t.Errorf("readCString = %v, want ErrBadName", err)
	}
}

func TestParseXY(t *testing.T) {
	tests := []struct {
		in   string
		x, y int64
		ok   bool
	}{
		{"x1000y1000", 1000, 1000, true},
		{"x-3y7", -3, 7, true},
		{"x1000", 0, 0, false},
		{"y1000", 0, 0, false},
		{"1000y1000", 0, 0, false},
		{"xAyB", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, test := range tests {
		x, y, ok := ParseXY(test.in)
		if x != test.x || y != test.y || ok != test.ok {
			t.Errorf("ParseXY(%q) = (%d, %d, %t), want (%d, %d, %t)",
				test.in, x, y, ok, test.x, test.y, test.ok)
		}
	}
}

func TestGzipFraming(t *testing.T) {
	// Write produces a plain gzip stream readable by the stdlib reader.
	var buf bytes.Buffer
	if err := Write(&buf, []Screen{sampleScreen(0, 0)}); err != nil {
		t.Fatal(err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer zr.Close()
}
