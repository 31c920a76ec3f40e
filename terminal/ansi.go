package terminal

import (
	"io"
	"os"
)

var (
	csiRIS            = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0           = []byte("\x1b[0m")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiAutoWrapOn     = []byte("\x1b[?7h")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiFocusOff       = []byte("\x1b[?1004l")
)

// EmergencyReset restores a sane terminal when the screen could not be finalized normally
// Used from panic recovery, where tcell's own Fini may not run
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{
		csiMouseMotionOff,
		csiMouseDragOff,
		csiMouseClickOff,
		csiMouseSGROff,
		csiFocusOff,
		csiCursorShow,
		csiAltScreenExit,
		csiSGR0,
		csiAutoWrapOn,
		csiRIS,
	} {
		w.Write(seq)
	}

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
