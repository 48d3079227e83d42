// Package mapbin reads and writes Map.bin, the gzipped screen database of a
// level. The file is a flat series of named entries: a NUL-terminated
// Windows-1252 name such as "x1000y1000", a little-endian uint32 length, and
// the entry data. Screen entries carry exactly 3006 bytes: four tile layers
// of 250 bytes, four object layers of 500 bytes, and six asset IDs.
package mapbin

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/knyttools/libks/debug"
)

const (
	ScreenWidth   = 25
	ScreenHeight  = 10
	TilesPerLayer = ScreenWidth * ScreenHeight
	LayerCount    = 8

	screenDataLen = 3006
	maxNameLen    = 256
)

// A Tile is one cell of a layer: the bank (or tileset) it draws from and the
// index within that bank.
type Tile struct {
	Bank  uint8
	Index uint8
}

// A Layer holds one tile per cell, top left first, row by row.
type Layer [TilesPerLayer]Tile

// AssetIDs are the per-screen asset selections, one byte each.
type AssetIDs struct {
	TilesetA  uint8
	TilesetB  uint8
	AmbianceA uint8
	AmbianceB uint8
	Music     uint8
	Gradient  uint8
}

// A Screen is one decoded screen entry. Layers 0-3 are tile layers, 4-7 are
// object layers.
type Screen struct {
	X, Y   int64
	Layers [LayerCount]Layer
	Assets AssetIDs
}

// ParseXY parses a screen coordinate of the form "x#y#".
func ParseXY(s string) (x, y int64, ok bool) {
	rest, found := strings.CutPrefix(s, "x")
	if !found {
		return 0, 0, false
	}
	xs, ys, found := strings.Cut(rest, "y")
	if !found {
		return 0, 0, false
	}
	x, err := strconv.ParseInt(xs, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	y, err = strconv.ParseInt(ys, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

// ReadFile parses every screen from the gzipped Map.bin at path.
func ReadFile(path string) ([]Screen, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses every screen from r, which must yield gzipped Map.bin data.
func Read(r io.Reader) ([]Screen, []Warning, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer zr.Close()
	return ReadUncompressed(zr)
}

// ReadUncompressed parses every screen from r, which must yield raw Map.bin
// data. Entries that are not well-formed screens are skipped and reported as
// warnings; only truncation is an error.
func ReadUncompressed(r io.Reader) ([]Screen, []Warning, error) {
	br := bufio.NewReader(r)
	var screens []Screen
	var warnings []Warning

	for {
		if _, err := br.Peek(1); err == io.EOF {
			break
		} else if err != nil {
			return screens, warnings, err
		}

		name, length, err := readEntryHeader(br)
		if err != nil {
			return screens, warnings, err
		}

		read := 0
		x, y, isScreen := ParseXY(name)
		switch {
		case isScreen && length < screenDataLen:
			warnings = append(warnings, Warning{Kind: IncompleteScreen, Entry: name, Len: length})
		case isScreen:
			if length > screenDataLen {
				warnings = append(warnings, Warning{Kind: ExtraScreenData, Entry: name, Len: length})
			}
			screen, err := readScreen(br, x, y)
			if err != nil {
				return screens, warnings, err
			}
			screens = append(screens, screen)
			read = screenDataLen
		default:
			// Most likely level editor garbage under the empty name.
			warnings = append(warnings, Warning{Kind: UnrecognizedEntry, Entry: name, Len: length})
		}

		if skip := length - read; skip > 0 {
			if debug.MapBin() {
				debug.Logf("mapbin: skipping %d bytes of entry %q\n", skip, name)
			}
			n, err := io.CopyN(io.Discard, br, int64(skip))
			if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) || (err == nil && n < int64(skip)) {
				return screens, warnings, fmt.Errorf("%w: entry %q has %d/%d bytes",
					ErrMissingData, name, read+int(n), length)
			} else if err != nil {
				return screens, warnings, err
			}
		}
	}
	return screens, warnings, nil
}

func readEntryHeader(br *bufio.Reader) (string, int, error) {
	name, err := readCString(br, maxNameLen)
	if err != nil {
		return "", 0, err
	}
	var length uint32
	if err := binary.Read(br, binary.LittleEndian, &length); err != nil {
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", 0, fmt.Errorf("%w: entry %q has no length", ErrMissingData, name)
		}
		return "", 0, err
	}
	return name, int(length), nil
}

// readCString decodes Windows-1252 bytes up to the first NUL (consumed, not
// returned) or maxLen bytes.
func readCString(br *bufio.Reader, maxLen int) (string, error) {
	raw := make([]byte, 0, 32)
	for len(raw) < maxLen {
		b, err := br.ReadByte()
		if err == io.EOF {
			return "", fmt.Errorf("%w: unterminated name", ErrBadName)
		} else if err != nil {
			return "", err
		}
		if b == 0 {
			name, err := charmap.Windows1252.NewDecoder().Bytes(raw)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrBadName, err)
			}
			return string(name), nil
		}
		raw = append(raw, b)
	}
	return "", fmt.Errorf("%w: name exceeds %d bytes", ErrBadName, maxLen)
}

func readScreen(br *bufio.Reader, x, y int64) (Screen, error) {
	screen := Screen{X: x, Y: y}
	var buf [2 * TilesPerLayer]byte
	for i := range screen.Layers {
		if i < 4 {
			// Tile layer: one byte per cell, high bit selects tileset B.
			if _, err := io.ReadFull(br, buf[:TilesPerLayer]); err != nil {
				return screen, screenTruncated(x, y, err)
			}
			for j, raw := range buf[:TilesPerLayer] {
				screen.Layers[i][j] = Tile{Bank: raw >> 7, Index: raw & 0x7F}
			}
			continue
		}
		// Object layer: 250 object indices then 250 bank indices.
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return screen, screenTruncated(x, y, err)
		}
		for j := 0; j < TilesPerLayer; j++ {
			screen.Layers[i][j] = Tile{Bank: buf[TilesPerLayer+j], Index: buf[j]}
		}
	}
	var assets [6]byte
	if _, err := io.ReadFull(br, assets[:]); err != nil {
		return screen, screenTruncated(x, y, err)
	}
	screen.Assets = AssetIDs{
		TilesetA:  assets[0],
		TilesetB:  assets[1],
		AmbianceA: assets[2],
		AmbianceB: assets[3],
		Music:     assets[4],
		Gradient:  assets[5],
	}
	return screen, nil
}

func screenTruncated(x, y int64, err error) error {
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: screen x%dy%d", ErrMissingData, x, y)
	}
	return err
}

// WriteFile compresses and writes screens to the file at path.
func WriteFile(path string, screens []Screen) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, screens); err != nil {
		return err
	}
	return f.Close()
}

// Write encodes screens as gzipped Map.bin data.
func Write(w io.Writer, screens []Screen) error {
	zw := gzip.NewWriter(w)
	var buf [screenDataLen]byte
	for i := range screens {
		screen := &screens[i]
		n := 0
		for l := 0; l < 4; l++ {
			for _, tile := range screen.Layers[l] {
				buf[n] = tile.Index | tile.Bank<<7
				n++
			}
		}
		for l := 4; l < LayerCount; l++ {
			for _, tile := range screen.Layers[l] {
				buf[n] = tile.Index
				buf[n+TilesPerLayer] = tile.Bank
				n++
			}
			n += TilesPerLayer
		}
		buf[n] = screen.Assets.TilesetA
		buf[n+1] = screen.Assets.TilesetB
		buf[n+2] = screen.Assets.AmbianceA
		buf[n+3] = screen.Assets.AmbianceB
		buf[n+4] = screen.Assets.Music
		buf[n+5] = screen.Assets.Gradient

		name := fmt.Sprintf("x%dy%d\x00", screen.X, screen.Y)
		if _, err := zw.Write([]byte(name)); err != nil {
			return err
		}
		if err := binary.Write(zw, binary.LittleEndian, uint32(screenDataLen)); err != nil {
			return err
		}
		if _, err := zw.Write(buf[:]); err != nil {
			return err
		}
	}
	return zw.Close()
}
