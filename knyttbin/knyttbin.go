// Package knyttbin packs and unpacks .knytt.bin archives, the distribution
// format for third-party worlds.
//
// An archive is a flat sequence of entries. Each entry is the two byte
// signature "NF", a NUL-terminated Windows-1252 file path relative to the
// world directory, a little-endian uint32 byte count, and that many bytes of
// file contents. The first entry is special: its path names the enclosing
// world directory and its byte count is the number of files that follow. The
// count written by the original game tool follows arcane rules and may be off
// in either direction, so unpacking ignores it.
package knyttbin

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/knyttools/libks/debug"
)

const entrySignature = "NF"

const mb = 1 << 20

// Default limits applied by DefaultUnpackOptions.
const (
	DefaultMaxFileSize = 256 * mb
	DefaultMaxPathLen  = 256
)

// UnpackOptions configures UnpackWithOptions.
type UnpackOptions struct {
	// AllowOverwrite deletes a nonempty output directory before unpacking
	// instead of failing with ErrOutputExists.
	AllowOverwrite bool
	// CreateTopLevelDir unpacks into a subdirectory of the output directory
	// named after the archive's enclosing directory. When false the files
	// land directly in the output directory.
	CreateTopLevelDir bool
	// MaxFileSize bounds the size of a single unpacked file in bytes.
	MaxFileSize int
	// MaxPathLen bounds the encoded length of a single entry path in bytes.
	MaxPathLen int
}

// DefaultUnpackOptions returns the options used by Unpack.
func DefaultUnpackOptions() UnpackOptions {
	return UnpackOptions{
		AllowOverwrite:    false,
		CreateTopLevelDir: true,
		MaxFileSize:       DefaultMaxFileSize,
		MaxPathLen:        DefaultMaxPathLen,
	}
}

// Pack writes the files under inputDir to a new archive at binPath and
// returns the number of files packed. The archive's enclosing directory is
// the base name of inputDir. binPath must not already exist.
func Pack(inputDir, binPath string) (int, error) {
	out, err := os.OpenFile(binPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	enclosing := filepath.Base(filepath.Clean(inputDir))
	w := bufio.NewWriter(out)

	// The file count is not known yet. Write a zero placeholder and patch
	// it after the walk; the header length only depends on the name.
	if err := writeEntryHeader(w, enclosing, 0); err != nil {
		return 0, err
	}

	packed := 0
	err = filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		if err := packFile(w, filepath.ToSlash(rel), path); err != nil {
			return err
		}
		packed++
		return nil
	})
	if err != nil {
		return 0, err
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}

	if _, err := out.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	header := bufio.NewWriter(out)
	if err := writeEntryHeader(header, enclosing, packed); err != nil {
		return 0, err
	}
	if err := header.Flush(); err != nil {
		return 0, err
	}
	return packed, out.Close()
}

func packFile(w *bufio.Writer, name, path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if debug.Pack() {
		debug.Logf("knyttbin: packing %q (%d bytes)\n", name, len(contents))
	}
	if err := writeEntryHeader(w, name, len(contents)); err != nil {
		return err
	}
	_, err = w.Write(contents)
	return err
}

func writeEntryHeader(w *bufio.Writer, name string, length int) error {
	raw, err := charmap.Windows1252.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return fmt.Errorf("%w: %q is not Windows-1252", ErrBadPath, name)
	}
	if _, err := w.WriteString(entrySignature); err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := w.WriteByte(0); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint32(length))
}

// Unpack extracts the archive at binPath into a subdirectory of outputDir
// named by the archive, using DefaultUnpackOptions. It returns the directory
// the files were unpacked into.
func Unpack(binPath, outputDir string) (string, error) {
	return UnpackWithOptions(binPath, outputDir, DefaultUnpackOptions())
}

// UnpackWithOptions extracts the archive at binPath into outputDir, or a
// subdirectory of it when opts.CreateTopLevelDir is set, and returns the
// directory the files were unpacked into.
func UnpackWithOptions(binPath, outputDir string, opts UnpackOptions) (string, error) {
	in, err := os.Open(binPath)
	if err != nil {
		return "", err
	}
	defer in.Close()
	br := bufio.NewReader(in)

	levelName, _, err := readEntryHeader(br, opts.MaxPathLen)
	if err != nil {
		return "", err
	}

	dest := outputDir
	if opts.CreateTopLevelDir {
		dest = filepath.Join(outputDir, filepath.FromSlash(levelName))
	}
	if err := prepareOutputDir(dest, opts.AllowOverwrite); err != nil {
		return "", err
	}

	for {
		if _, err := br.Peek(1); err == io.EOF {
			break
		} else if err != nil {
			return dest, err
		}
		if err := unpackEntry(br, dest, opts); err != nil {
			return dest, err
		}
	}
	return dest, nil
}

// prepareOutputDir ensures dest exists and is an empty directory, removing a
// nonempty one first when overwrite is set.
func prepareOutputDir(dest string, overwrite bool) error {
	info, err := os.Lstat(dest)
	switch {
	case os.IsNotExist(err):
		return os.MkdirAll(dest, 0o755)
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("%w: %s", ErrOutputExists, dest)
	}
	entries, err := os.ReadDir(dest)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if !overwrite {
		return fmt.Errorf("%w: %s", ErrOutputExists, dest)
	}
	if err := os.RemoveAll(dest); err != nil {
		return err
	}
	return os.MkdirAll(dest, 0o755)
}

func unpackEntry(br *bufio.Reader, dest string, opts UnpackOptions) error {
	name, length, err := readEntryHeader(br, opts.MaxPathLen)
	if err != nil {
		return err
	}
	if length > opts.MaxFileSize {
		return fmt.Errorf("%w: %q is %d bytes", ErrOversizedFile, name, length)
	}
	if debug.Unpack() {
		debug.Logf("knyttbin: unpacking %q (%d bytes)\n", name, length)
	}

	contents := make([]byte, length)
	if n, err := io.ReadFull(br, contents); err != nil {
		return fmt.Errorf("%w: %q has %d/%d bytes", ErrMissingData, name, n, length)
	}

	path := filepath.Join(dest, filepath.FromSlash(name))
	if dir := filepath.Dir(path); dir != dest {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := out.Write(contents); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// readEntryHeader parses one entry header and returns the path normalized to
// forward slashes plus the entry length. The path is validated against
// escaping the output directory.
func readEntryHeader(br *bufio.Reader, maxPathLen int) (string, int, error) {
	var sig [2]byte
	if _, err := io.ReadFull(br, sig[:]); err != nil {
		return "", 0, fmt.Errorf("%w: truncated signature", ErrMissingData)
	}
	if string(sig[:]) != entrySignature {
		return "", 0, fmt.Errorf("%w: %q", ErrBadSignature, sig[:])
	}

	name, err := readPath(br, maxPathLen)
	if err != nil {
		return "", 0, err
	}

	var length uint32
	if err := binary.Read(br, binary.LittleEndian, &length); err != nil {
		return "", 0, fmt.Errorf("%w: entry %q has no length", ErrMissingData, name)
	}
	return name, int(length), nil
}

// readPath decodes a NUL-terminated Windows-1252 path. Archives written on
// Windows use backslash separators; they are normalized to forward slashes.
func readPath(br *bufio.Reader, maxLen int) (string, error) {
	raw := make([]byte, 0, 32)
	for {
		if len(raw) > maxLen {
			return "", fmt.Errorf("%w: path exceeds %d bytes", ErrBadPath, maxLen)
		}
		b, err := br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("%w: unterminated path", ErrMissingData)
		}
		if b == 0 {
			break
		}
		raw = append(raw, b)
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil || strings.ContainsRune(string(decoded), '�') {
		return "", fmt.Errorf("%w: undecodable bytes in %q", ErrBadPath, raw)
	}
	name := strings.ReplaceAll(string(decoded), `\`, "/")

	if name == "" {
		return "", fmt.Errorf("%w: empty path", ErrBadPath)
	}
	if strings.HasPrefix(name, "/") || filepath.IsAbs(filepath.FromSlash(name)) {
		return "", fmt.Errorf("%w: absolute path %q", ErrBadPath, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q escapes the output directory", ErrBadPath, name)
		}
	}
	return name, nil
}
