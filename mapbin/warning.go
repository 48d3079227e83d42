package mapbin

import "fmt"

type WarningKind uint8

const (
	// UnrecognizedEntry is an entry whose name is not a screen coordinate.
	UnrecognizedEntry WarningKind = iota
	// IncompleteScreen is a screen entry shorter than the screen data length;
	// it is skipped.
	IncompleteScreen
	// ExtraScreenData is a screen entry longer than the screen data length;
	// the excess is ignored.
	ExtraScreenData
)

// A Warning reports an abnormal entry that did not stop parsing.
type Warning struct {
	Kind  WarningKind
	Entry string
	Len   int
}

func (w Warning) String() string {
	switch w.Kind {
	case IncompleteScreen:
		return fmt.Sprintf("screen entry %q skipped: only %d/%d bytes", w.Entry, w.Len, screenDataLen)
	case ExtraScreenData:
		return fmt.Sprintf("screen entry %q has %d extra bytes", w.Entry, w.Len-screenDataLen)
	default:
		return fmt.Sprintf("unrecognized entry %q with %d bytes", w.Entry, w.Len)
	}
}
