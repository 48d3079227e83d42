package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Ini      bool
	Editions bool
	Unpack   bool
	Pack     bool
	MapBin   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Ini = boolEnv("KS_DEBUG_INI")
	d.Editions = boolEnv("KS_DEBUG_EDITIONS")
	d.Unpack = boolEnv("KS_DEBUG_UNPACK")
	d.Pack = boolEnv("KS_DEBUG_PACK")
	d.MapBin = boolEnv("KS_DEBUG_MAPBIN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Ini() bool {
	return d.Ini
}
func Editions() bool {
	return d.Editions
}
func Unpack() bool {
	return d.Unpack
}
func Pack() bool {
	return d.Pack
}
func MapBin() bool {
	return d.MapBin
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func JSON(v any) string {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
