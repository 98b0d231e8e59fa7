package tempfile

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/srevinsaju/templog/v1/internal/meta"
	"io"
)

// diagnostics prints straight to a writer. The definer runs while the
// logging system is being set up, so there is no logger to report through.
type diagnostics struct {
	w    io.Writer
	red  *color.Color
	grey *color.Color
}

func newDiagnostics(w io.Writer) *diagnostics {
	d := &diagnostics{
		w:    w,
		red:  color.New(color.FgRed),
		grey: color.New(color.FgHiBlack),
	}
	if isTerminal(w) {
		d.red.EnableColor()
		d.grey.EnableColor()
	} else {
		d.red.DisableColor()
		d.grey.DisableColor()
	}
	return d
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (d *diagnostics) using(path string) {
	fmt.Fprintln(d.w, d.grey.Sprint("Using log file"), path)
}

func (d *diagnostics) failure(err error) {
	fmt.Fprintln(d.w, d.red.Sprintf("%s: %s", meta.AppName, err))
}
