// Package worldini reads and writes a level's World.ini. The file is stored
// in Windows-1252; this package owns the decode/encode boundary so the ini
// engine only ever sees Unicode text.
package worldini

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/knyttools/libks/debug"
	"github.com/knyttools/libks/ini"
)

// FileName is the name of the world definition file inside a level directory.
const FileName = "World.ini"

// Load reads and parses the World.ini of the level in worldDir.
func Load(worldDir string) (*ini.Doc, error) {
	return LoadFile(filepath.Join(worldDir, FileName))
}

// LoadFile reads and parses the world definition file at path.
func LoadFile(path string) (*ini.Doc, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	doc := ini.Parse(text)
	if debug.Ini() {
		debug.Logf("worldini: parsed %s: %d sections, %d unparseable lines\n",
			path, len(doc.Sections()), len(doc.Malformed()))
	}
	return doc, nil
}

// Save serializes doc back to Windows-1252 and writes it to the World.ini of
// the level in worldDir.
func Save(worldDir string, doc *ini.Doc) error {
	return SaveFile(filepath.Join(worldDir, FileName), doc)
}

// SaveFile serializes doc back to Windows-1252 and writes it to path.
func SaveFile(path string, doc *ini.Doc) error {
	b, err := Encode(doc.String())
	if err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}
	return os.WriteFile(path, b, 0o644)
}

// Decode converts Windows-1252 bytes to text. The five code points the
// encoding leaves undefined decode to the replacement character; their
// presence means the file is not actually Windows-1252.
func Decode(b []byte) (string, error) {
	text, err := charmap.Windows1252.NewDecoder().String(string(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	if strings.ContainsRune(text, '�') {
		return "", ErrBadEncoding
	}
	return text, nil
}

// Encode converts text back to Windows-1252 bytes. Text containing runes the
// encoding cannot represent is an error rather than silently mangled.
func Encode(text string) ([]byte, error) {
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return b, nil
}
